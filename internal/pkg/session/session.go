package session

import (
	"github.com/dgrijalva/jwt-go"

	domainErrors "github.com/butcherynv/posdesk/internal/domain/errors"
	"github.com/butcherynv/posdesk/internal/domain/model"
)

// Context is the explicit session object: created at login, cleared at
// logout, read by the route guard. It carries the opaque upstream credential
// and the role claim decoded from it.
type Context struct {
	Token string
	Role  model.Role
}

// FromCredential decodes the role claim out of a stored credential. The token
// is only structurally decoded, not signature-verified; the upstream API is
// the trust boundary. Expired-but-well-formed credentials are therefore not
// distinguished from valid ones here.
func FromCredential(token string) (*Context, error) {
	if token == "" {
		return nil, domainErrors.ErrNoCredential
	}

	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return nil, domainErrors.ErrBadCredential
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return nil, domainErrors.ErrBadCredential
	}

	return &Context{Token: token, Role: model.Role(role)}, nil
}

// Gate is the route guard decision: given the stored credential and the
// route's role allow-list, either return the session context or the denial
// reason. An empty allow-list admits any decodable credential.
func Gate(credential string, allowed []model.Role) (*Context, error) {
	sess, err := FromCredential(credential)
	if err != nil {
		return nil, err
	}

	if len(allowed) == 0 {
		return sess, nil
	}

	for _, role := range allowed {
		if sess.Role == role {
			return sess, nil
		}
	}

	return nil, domainErrors.ErrRoleNotAllowed
}
