package auth

import (
	"testing"
	"time"

	"github.com/polkiloo/userauth/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func TestNewPasswordHasher(t *testing.T) {
	hasher := newPasswordHasher(hasherParams{Config: &config.Config{BcryptCost: bcrypt.MinCost, HashConcurrency: 3}})
	bounded, ok := hasher.(*BoundedHasher)
	if !ok {
		t.Fatalf("expected *BoundedHasher, got %T", hasher)
	}
	if bounded.size != 3 {
		t.Fatalf("unexpected concurrency: %d", bounded.size)
	}
	inner, ok := bounded.next.(*BcryptHasher)
	if !ok {
		t.Fatalf("expected *BcryptHasher, got %T", bounded.next)
	}
	if inner.cost != bcrypt.MinCost {
		t.Fatalf("unexpected cost: %d", inner.cost)
	}
}

func TestNewTokenStrategy(t *testing.T) {
	strategy := newTokenStrategy(strategyParams{Config: &config.Config{JWTSecret: "top-secret", TokenTTL: 30 * time.Minute}})
	jwtStrategy, ok := strategy.(*JWTStrategy)
	if !ok {
		t.Fatalf("expected *JWTStrategy, got %T", strategy)
	}
	if string(jwtStrategy.secret) != "top-secret" {
		t.Fatalf("unexpected secret: %q", string(jwtStrategy.secret))
	}
	if jwtStrategy.ttl != 30*time.Minute {
		t.Fatalf("unexpected ttl: %s", jwtStrategy.ttl)
	}
}
