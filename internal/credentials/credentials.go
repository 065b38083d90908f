package credentials

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// saltSize is the number of random bytes behind a salt or a bearer token
// (128 bits before encoding).
const saltSize = 16

// GenerateSalt returns a random opaque string used once per account to salt
// the password digest.
func GenerateSalt() (string, error) {
	return randomString(saltSize)
}

// NewToken returns a random opaque bearer token. Tokens are issued once at
// signup and never rotated.
func NewToken() (string, error) {
	return randomString(saltSize)
}

// Hash computes the deterministic digest stored for a password: SHA-256 of
// the password concatenated with the salt, base64 encoded. Login recomputes
// this exact value for verification.
func Hash(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// Verify recomputes the digest and compares it to the stored hash. Plain
// string equality; the scheme makes no timing-safety claim.
func Verify(password, salt, storedHash string) bool {
	return Hash(password, salt) == storedHash
}

func randomString(size int) (string, error) {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
