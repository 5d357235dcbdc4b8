package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptKeyHasher hashes API key secrets with bcrypt. The same hasher serves
// seeding (Hash) and request authentication (Verify).
type BcryptKeyHasher struct {
	cost int
}

func NewBcryptKeyHasher(cost int) *BcryptKeyHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptKeyHasher{cost: cost}
}

func (h *BcryptKeyHasher) Hash(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to generate key hash: %w", err)
	}
	return string(hash), nil
}

// Verify returns a generic error regardless of the actual cause so callers
// cannot distinguish a wrong secret from a malformed hash.
func (h *BcryptKeyHasher) Verify(secret, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)); err != nil {
		return fmt.Errorf("key verification failed")
	}
	return nil
}
