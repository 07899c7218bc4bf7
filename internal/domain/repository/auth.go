package repository

import (
	"context"

	"github.com/butcherynv/posdesk/internal/domain/model"
)

// AuthGateway forwards credential operations to the upstream API. The gateway
// never hashes or stores passwords.
type AuthGateway interface {
	Login(ctx context.Context, username, password string) (*model.Credential, error)
	Register(ctx context.Context, reg model.Registration) error
}
