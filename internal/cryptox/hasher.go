// Package cryptox implements the password digest used by the user store.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Hasher turns a plaintext password into a storable digest.
//
// Implementations must be deterministic: authentication looks rows up by
// digest equality, so hashing the same plaintext twice has to produce the
// same digest. A salted scheme cannot satisfy this contract without also
// changing the lookup.
type Hasher interface {
	Hash(plaintext string) string
}

// SHA256Hasher digests passwords as hex-encoded SHA-256. No salt and no
// tunable cost: the digest doubles as a lookup key.
type SHA256Hasher struct{}

// NewSHA256Hasher returns the default hasher.
func NewSHA256Hasher() SHA256Hasher { return SHA256Hasher{} }

func (SHA256Hasher) Hash(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// EqualDigests compares two digests without leaking timing differences.
func EqualDigests(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
