package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// TemporaryPasswordAlphabet has no 0, O, 1, l or I.
const TemporaryPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// TemporaryPassword draws length characters from TemporaryPasswordAlphabet.
func TemporaryPassword(length int) (string, error) {
	return RandomString(length, TemporaryPasswordAlphabet)
}

func RandomString(length int, alphabet string) (string, error) {
	switch {
	case length < 0:
		return "", errNegativeLength
	case length == 0:
		return "", nil
	case alphabet == "":
		return "", errEmptyAlphabet
	}

	upperBound := big.NewInt(int64(len(alphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, upperBound)
		if err != nil {
			return "", err
		}
		out[i] = alphabet[n.Int64()]
	}
	return string(out), nil
}
