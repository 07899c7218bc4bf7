package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/butcherynv/posdesk/internal/adapter/backend"
	domainErrors "github.com/butcherynv/posdesk/internal/domain/errors"
	"github.com/butcherynv/posdesk/internal/domain/model"
	"github.com/butcherynv/posdesk/internal/domain/repository"
	"github.com/butcherynv/posdesk/internal/pkg/session"
)

// AuthUseCase signs staff in against the upstream service and provisions new
// accounts. The gateway never checks passwords itself; it forwards them and
// interprets the upstream verdict.
type AuthUseCase struct {
	gateway repository.AuthGateway
	logger  *slog.Logger
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(gateway repository.AuthGateway, logger *slog.Logger) *AuthUseCase {
	return &AuthUseCase{gateway: gateway, logger: logger}
}

// Login exchanges credentials for a session context. A rejected login maps
// to ErrLoginRejected regardless of whether the upstream said 401 or 403.
func (u *AuthUseCase) Login(ctx context.Context, username, password string) (*session.Context, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domainErrors.ErrLoginRejected
	}

	cred, err := u.gateway.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			return nil, domainErrors.ErrLoginRejected
		}
		return nil, err
	}

	sess, err := session.FromCredential(cred.Token)
	if err != nil {
		u.logger.Warn("login token missing role claim", slog.String("user", username))
		return nil, err
	}
	return sess, nil
}

// Register provisions a staff account. Only the two operational roles can be
// created through the gateway; admins are provisioned out of band.
func (u *AuthUseCase) Register(ctx context.Context, reg model.Registration) error {
	reg.FullName = strings.TrimSpace(reg.FullName)
	reg.Email = strings.TrimSpace(reg.Email)
	if reg.FullName == "" || reg.Email == "" {
		return domainErrors.ErrEmptyName
	}
	if reg.Password == "" {
		return domainErrors.ErrLoginRejected
	}
	if reg.Role != model.RoleButcher && reg.Role != model.RoleCooker {
		return domainErrors.ErrInvalidRole
	}
	return u.gateway.Register(ctx, reg)
}
