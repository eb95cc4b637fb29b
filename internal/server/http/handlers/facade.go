package handlers

import (
	"context"

	"github.com/polkiloo/userauth/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, email, password string) (*model.User, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	ParseToken(token string) (*model.TokenClaims, error)
}

// ProfileFacade exposes read access to the authenticated account.
type ProfileFacade interface {
	Profile(ctx context.Context, userID string) (*model.User, error)
}

// HealthFacade reports storage availability.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// AccountFacade aggregates the full set of operations used across handlers.
type AccountFacade interface {
	AuthFacade
	ProfileFacade
	HealthFacade
}

// AuthRecorder counts authentication outcomes.
type AuthRecorder interface {
	RecordAuth(operation, outcome string)
}

type nopRecorder struct{}

func (nopRecorder) RecordAuth(string, string) {}
