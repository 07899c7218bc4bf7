package usecase_test

import (
	"context"
	"testing"

	"github.com/butcherynv/posdesk/internal/adapter/backend"
	domainErrors "github.com/butcherynv/posdesk/internal/domain/errors"
	"github.com/butcherynv/posdesk/internal/domain/model"
	"github.com/butcherynv/posdesk/internal/test"
	"github.com/butcherynv/posdesk/internal/usecase"
)

func TestAuthUseCaseLoginDecodesRole(t *testing.T) {
	gateway := &test.AuthGatewayStub{
		LoginFn: func(context.Context, string, string) (*model.Credential, error) {
			return &model.Credential{Token: test.SignedToken(model.RoleCooker)}, nil
		},
	}
	uc := usecase.NewAuthUseCase(gateway, discardLogger())

	sess, err := uc.Login(context.Background(), "chef", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Role != model.RoleCooker {
		t.Fatalf("unexpected role %q", sess.Role)
	}
	if sess.Token == "" {
		t.Fatalf("expected the upstream credential on the session")
	}
}

func TestAuthUseCaseLoginMapsUpstreamRejection(t *testing.T) {
	gateway := &test.AuthGatewayStub{
		LoginFn: func(context.Context, string, string) (*model.Credential, error) {
			return nil, backend.ErrUnauthorized
		},
	}
	uc := usecase.NewAuthUseCase(gateway, discardLogger())

	if _, err := uc.Login(context.Background(), "chef", "wrong"); err != domainErrors.ErrLoginRejected {
		t.Fatalf("expected login rejected, got %v", err)
	}
}

func TestAuthUseCaseLoginRejectsBlankCredentials(t *testing.T) {
	gateway := &test.AuthGatewayStub{
		LoginFn: func(context.Context, string, string) (*model.Credential, error) {
			t.Fatal("upstream must not be called for blank credentials")
			return nil, nil
		},
	}
	uc := usecase.NewAuthUseCase(gateway, discardLogger())

	if _, err := uc.Login(context.Background(), "  ", "pw"); err != domainErrors.ErrLoginRejected {
		t.Fatalf("expected login rejected, got %v", err)
	}
}

func TestAuthUseCaseLoginRejectsRolelessToken(t *testing.T) {
	gateway := &test.AuthGatewayStub{
		LoginFn: func(context.Context, string, string) (*model.Credential, error) {
			return &model.Credential{Token: test.RolelessToken()}, nil
		},
	}
	uc := usecase.NewAuthUseCase(gateway, discardLogger())

	if _, err := uc.Login(context.Background(), "chef", "secret"); err != domainErrors.ErrBadCredential {
		t.Fatalf("expected bad credential error, got %v", err)
	}
}

func TestAuthUseCaseRegisterAllowsOperationalRolesOnly(t *testing.T) {
	gateway := &test.AuthGatewayStub{}
	uc := usecase.NewAuthUseCase(gateway, discardLogger())

	reg := model.Registration{FullName: "Ann Smith", Email: "ann@example.com", Password: "pw", Role: model.RoleButcher}
	if err := uc.Register(context.Background(), reg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gateway.Registered) != 1 {
		t.Fatalf("registration did not reach the gateway")
	}

	reg.Role = model.RoleAdmin
	if err := uc.Register(context.Background(), reg); err != domainErrors.ErrInvalidRole {
		t.Fatalf("expected invalid role error for admin provisioning, got %v", err)
	}
}

func TestAuthUseCaseRegisterValidatesFields(t *testing.T) {
	uc := usecase.NewAuthUseCase(&test.AuthGatewayStub{}, discardLogger())

	reg := model.Registration{FullName: " ", Email: "ann@example.com", Password: "pw", Role: model.RoleCooker}
	if err := uc.Register(context.Background(), reg); err != domainErrors.ErrEmptyName {
		t.Fatalf("expected empty name error, got %v", err)
	}

	reg = model.Registration{FullName: "Ann", Email: "ann@example.com", Role: model.RoleCooker}
	if err := uc.Register(context.Background(), reg); err != domainErrors.ErrLoginRejected {
		t.Fatalf("expected rejection for blank password, got %v", err)
	}
}
