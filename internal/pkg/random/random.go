package random

import (
	"crypto/rand"
	"math/big"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// AlphanumericToken returns a random [A-Za-z0-9] string of the given length,
// used as a payment confirmation id correlating webhook deliveries.
func AlphanumericToken(length int) string {
	max := big.NewInt(int64(len(alphanumeric)))

	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the platform source is broken
			panic(err)
		}
		out[i] = alphanumeric[n.Int64()]
	}

	return string(out)
}
