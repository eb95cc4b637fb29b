package auth

import (
	"errors"
	"time"

	"github.com/polkiloo/userauth/internal/domain/model"
)

var ErrInvalidToken = errors.New("invalid auth token")

type Strategy interface {
	IssueToken(user *model.User) (string, error)
	ParseToken(token string) (*model.TokenClaims, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
