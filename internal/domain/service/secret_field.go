// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "context"

// SecretField is the capability a field type declares when it stores hashed secrets.
// Password authentication only accepts secret fields whose implementation satisfies it.
type SecretField interface {
	// GenerateHash produces a salted hash of a plaintext secret.
	GenerateHash(ctx context.Context, plain string) (string, error)

	// Compare reports whether plain matches hash.
	Compare(ctx context.Context, plain, hash string) (bool, error)
}
