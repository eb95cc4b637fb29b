package app

import (
	"context"

	"github.com/polkiloo/userauth/internal/domain/model"
	"github.com/polkiloo/userauth/internal/domain/repository"
	"github.com/polkiloo/userauth/internal/usecase"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type AccountFacade struct {
	auth   *usecase.AuthUseCase
	health HealthChecker
}

func NewAccountFacade(auth *usecase.AuthUseCase, storage repository.Factory) *AccountFacade {
	return &AccountFacade{auth: auth, health: storage}
}

func (f *AccountFacade) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	return f.auth.Register(ctx, name, email, password)
}

func (f *AccountFacade) Authenticate(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, email, password)
	return token, err
}

func (f *AccountFacade) ParseToken(token string) (*model.TokenClaims, error) {
	return f.auth.ParseToken(token)
}

func (f *AccountFacade) Profile(ctx context.Context, userID string) (*model.User, error) {
	return f.auth.GetByID(ctx, userID)
}

func (f *AccountFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
