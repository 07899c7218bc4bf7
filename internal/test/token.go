package test

import (
	"github.com/dgrijalva/jwt-go"

	"github.com/butcherynv/posdesk/internal/domain/model"
)

// SignedToken mints a token carrying the given role claim. The gateway only
// decodes tokens structurally, so the signing key is irrelevant.
func SignedToken(role model.Role) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": string(role)})
	signed, err := token.SignedString([]byte("test-key"))
	if err != nil {
		panic(err)
	}
	return signed
}

// RolelessToken mints a structurally valid token without a role claim.
func RolelessToken() string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "someone"})
	signed, err := token.SignedString([]byte("test-key"))
	if err != nil {
		panic(err)
	}
	return signed
}
