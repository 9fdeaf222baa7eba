// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"

	"cms/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

var _ service.SecretField = (*bcryptSecret)(nil)

// bcryptSecret is the SecretField implementation backing password fields.
type bcryptSecret struct {
	cost int
}

// NewBcryptSecret is the constructor for bcryptSecret using bcrypt.DefaultCost.
func NewBcryptSecret() service.SecretField {
	return &bcryptSecret{cost: bcrypt.DefaultCost}
}

// NewBcryptSecretWithCost returns a bcrypt secret field with the given cost.
// Costs outside bcrypt's accepted range fall back to bcrypt.DefaultCost.
func NewBcryptSecretWithCost(cost int) service.SecretField {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptSecret{cost: cost}
}

// GenerateHash generates a salted hash from a plaintext secret.
// bcrypt automatically handles salt generation.
func (s *bcryptSecret) GenerateHash(_ context.Context, plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), s.cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash secret")
	}

	return string(bytes), nil
}

// Compare reports whether plain matches a bcrypt hash.
// A mismatch is not an error; a malformed hash is.
func (s *bcryptSecret) Compare(_ context.Context, plain, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, errors.Wrap(err, "failed to compare secret")
	}
}
