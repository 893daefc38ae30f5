// Package random holds a few functions for making random test data
package random

import (
	cryptorand "crypto/rand"
	"math/rand"

	"github.com/pkg/errors"
)

// String create a random string for test purposes.
//
// Do not use these for passwords.
func String(n int) string {
	const (
		vowel     = "aeiou"
		consonant = "bcdfghjklmnpqrstvwxyz"
		digit     = "0123456789"
	)
	pattern := []string{consonant, vowel, consonant, vowel, consonant, vowel, consonant, digit}
	out := make([]byte, n)
	p := 0
	for i := range out {
		source := pattern[p]
		p = (p + 1) % len(pattern)
		out[i] = source[rand.Intn(len(source))]
	}
	return string(out)
}

// Bytes returns n crypto strong random bytes.
func Bytes(n int) ([]byte, error) {
	b := make([]byte, n)
	read, err := cryptorand.Read(b)
	if err != nil {
		return nil, errors.Wrap(err, "random read failed")
	}
	if read != n {
		return nil, errors.Errorf("random short read: %d", read)
	}
	return b, nil
}
