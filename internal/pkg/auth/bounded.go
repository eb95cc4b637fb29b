package auth

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"
)

// BoundedHasher caps the number of hash computations running at once.
// Callers waiting for a slot give up when their context is done.
type BoundedHasher struct {
	next PasswordHasher
	sem  *semaphore.Weighted
	size int64
}

// NewBoundedHasher wraps hasher with a concurrency limit of n.
func NewBoundedHasher(next PasswordHasher, n int) *BoundedHasher {
	if n <= 0 {
		n = 1
	}
	return &BoundedHasher{next: next, sem: semaphore.NewWeighted(int64(n)), size: int64(n)}
}

// Hash computes hash once a slot is available.
func (h *BoundedHasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("acquire hash slot: %w", err)
	}
	defer h.sem.Release(1)
	return h.next.Hash(ctx, password)
}

// Compare verifies password once a slot is available.
func (h *BoundedHasher) Compare(ctx context.Context, hash string, password string) error {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("acquire hash slot: %w", err)
	}
	defer h.sem.Release(1)
	return h.next.Compare(ctx, hash, password)
}
