package repository

import "context"

// Factory describes access to a storage backend and its repositories.
type Factory interface {
	Users() UserRepository
	HealthCheck(ctx context.Context) error
	Close(ctx context.Context) error
}
