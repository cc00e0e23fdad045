package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const tokenCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateToken returns a random string of the given length drawn from an
// alphanumeric charset. Tokens are used as public share hashes, so they are
// sampled from crypto/rand.
func GenerateToken(length int) (string, error) {
	b := make([]byte, length)
	max := big.NewInt(int64(len(tokenCharset)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		b[i] = tokenCharset[n.Int64()]
	}
	return string(b), nil
}
