// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher derives and checks password hashes on the server. Plaintext
// passwords are never stored.
type PasswordHasher interface {
	// Hash derives an encoded Argon2id hash of password with a fresh random
	// salt. The result is self-describing and safe to persist.
	Hash(password string) (string, error)

	// Verify reports whether password matches encoded. A malformed encoded
	// value yields false and an error.
	Verify(password, encoded string) (bool, error)
}
