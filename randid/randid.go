// Package randid generates random alphanumeric identifiers.
package randid

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// Alphabet is the character set ids are drawn from.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// ErrBadLength is returned by Make for a negative length.
var ErrBadLength = errors.New("randid: length must be >= 0")

var alphabetSize = big.NewInt(int64(len(Alphabet)))

// Make returns an id of n characters drawn uniformly from Alphabet using
// crypto/rand. n == 0 yields "".
func Make(n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("randid.Make(%d): %w", n, ErrBadLength)
	}

	buf := make([]byte, n)
	for i := range buf {
		k, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("randid.Make(%d): %w", n, err)
		}
		buf[i] = Alphabet[k.Int64()]
	}

	return string(buf), nil
}

// MustMake is like Make but panics on error. Intended for package-level
// initialisation with a constant length.
func MustMake(n int) string {
	id, err := Make(n)
	if err != nil {
		panic(err)
	}

	return id
}
