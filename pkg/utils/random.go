package utils

import (
	"crypto/rand"
	"math/big"
)

const (
	// Alphabet for join codes; ambiguous characters (0, O, l, 1) excluded.
	alphanumeric = "abcdefghjkmnpqrstuvwxyz23456789"

	joinCodeLength = 12
)

// GenerateRandomString returns a random string of n characters from the
// join-code alphabet.
func GenerateRandomString(n int) string {
	result := make([]byte, n)
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphanumeric))))
		if err != nil {
			// fallback if crypto/rand is unavailable
			result[i] = alphanumeric[i%len(alphanumeric)]
			continue
		}
		result[i] = alphanumeric[num.Int64()]
	}
	return string(result)
}

// GenerateJoinCode returns a fresh opaque project join code. Uniqueness is
// enforced by the database index on projects.join_code.
func GenerateJoinCode() string {
	return GenerateRandomString(joinCodeLength)
}
