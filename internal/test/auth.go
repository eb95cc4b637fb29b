package test

import (
	"context"
	"errors"
	"time"

	"github.com/polkiloo/userauth/internal/domain/model"
	pkgAuth "github.com/polkiloo/userauth/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(_ context.Context, password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(_ context.Context, hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return pkgAuth.ErrPasswordMismatch
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(*model.User) (string, error)
	ParseFn func(string) (*model.TokenClaims, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(user *model.User) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(user)
	}
	return "token", nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (*model.TokenClaims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return &model.TokenClaims{UserID: "1", Email: "test@email.com", ExpiresAt: time.Now().Add(time.Hour)}, nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// TokenParserStub implements middleware token parsing contract.
type TokenParserStub struct {
	Claims  *model.TokenClaims
	Err     error
	ParseFn func(string) (*model.TokenClaims, error)
}

// ParseToken either delegates to override or returns predefined result.
func (s TokenParserStub) ParseToken(token string) (*model.TokenClaims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Claims == nil {
		return nil, errors.New("no claims configured")
	}
	return s.Claims, nil
}

// AuthFacadeStub simulates account facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string) (*model.User, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseFn        func(string) (*model.TokenClaims, error)
	ProfileFn      func(context.Context, string) (*model.User, error)
	HealthFn       func(context.Context) error
}

// Register returns stored user for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, email, password)
	}
	return &model.User{ID: "1", Name: name, Email: email, PasswordHash: "hash:" + password, CreatedAt: time.Unix(0, 0).UTC()}, nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return "token", nil
}

// ParseToken returns claims of authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (*model.TokenClaims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return &model.TokenClaims{UserID: "1", Email: "test@email.com", ExpiresAt: time.Now().Add(time.Hour)}, nil
}

// Profile returns user for the supplied identifier.
func (s AuthFacadeStub) Profile(ctx context.Context, id string) (*model.User, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, id)
	}
	return &model.User{ID: id, Name: "Test", Email: "test@email.com", CreatedAt: time.Unix(0, 0).UTC()}, nil
}

// HealthCheck reports storage availability.
func (s AuthFacadeStub) HealthCheck(ctx context.Context) error {
	if s.HealthFn != nil {
		return s.HealthFn(ctx)
	}
	return nil
}
