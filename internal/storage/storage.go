// Package storage selects the user store backend from the database URI.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/polkiloo/userauth/internal/domain/repository"
	"github.com/polkiloo/userauth/internal/storage/mongodb"
	"github.com/polkiloo/userauth/internal/storage/postgres"
)

// Open connects to the backend named by the URI scheme.
func Open(ctx context.Context, uri, database string, logger *slog.Logger) (repository.Factory, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("parse database uri: %w", err)
	}

	switch u.Scheme {
	case "mongodb", "mongodb+srv":
		logger.Info("using mongodb user store", slog.String("database", database))
		return mongodb.New(ctx, uri, database, logger)
	case "postgres", "postgresql":
		logger.Info("using postgres user store")
		return postgres.New(ctx, uri, logger)
	default:
		return nil, fmt.Errorf("unsupported database scheme %q", u.Scheme)
	}
}
