package utils

import (
	"math/rand/v2"
	"strings"
)

const (
	UpperAlphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	LowerBase36       = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// RandomString draws n symbols from alphabet. Tokens are opaque and not
// security sensitive.
func RandomString(alphabet string, n int) string {
	var b strings.Builder
	b.Grow(n)

	for range n {
		b.WriteByte(alphabet[rand.IntN(len(alphabet))])
	}

	return b.String()
}
