// Package randompkg provides functionality for generating random application common items.
package randompkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// IntBetween generates a random integer between min and max.
func IntBetween(min, max int) int32 {
	return int32(Intn(max-min)) + int32(min)
}

// String generates a random string of length n.
func String(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// Username generates a random username.
func Username() string {
	return String(6)
}

// Email generates a random email.
func Email() string {
	return fmt.Sprintf("%s@email.com", String(10))
}

// ISBN generates a random 13-digit ISBN.
func ISBN() string {
	var sb strings.Builder

	sb.WriteString("978")

	for i := 0; i < 10; i++ {
		sb.WriteByte(byte('0' + Intn(10)))
	}

	return sb.String()
}

// BookTitle generates a random book title.
func BookTitle() string {
	return fmt.Sprintf("%s %s", String(5), String(7))
}

// Author generates a random author name.
func Author() string {
	return fmt.Sprintf("%s %s", String(6), String(8))
}
