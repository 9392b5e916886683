// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "profilehub/internal/domain/entity"

// PasswordCodec turns a plaintext password into a storable credential and
// verifies candidates against the stored form. Implementations own the byte
// layout of the stored hash; callers treat it as opaque.
type PasswordCodec interface {
	// Hash derives a credential from a plaintext password. An empty password
	// is a contract violation and returns an error.
	Hash(password string) (*entity.Credential, error)

	// Verify reports whether candidate matches the stored hash. It never
	// fails: any malformed or mismatched input simply yields false.
	Verify(storedHash, candidate string) bool
}
