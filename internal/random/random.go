package random

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
	mathrand "math/rand/v2"
)

var allowedLetters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

// Source makes uniform choices. IntN returns a value in [0, n) and panics if n <= 0.
type Source interface {
	IntN(n int) int
}

// NewSeeded returns a reproducible Source. The same seed always yields the same sequence of choices.
func NewSeeded(seed uint64) Source {
	return mathrand.New(mathrand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec // game randomness
}

// NewSecure returns a Source backed by crypto/rand.
func NewSecure() Source {
	return mathrand.New(cryptoSource{})
}

type cryptoSource struct{}

func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b[:])
}

// Choice picks one of values uniformly. values must not be empty.
func Choice[T any](src Source, values []T) T {
	return values[src.IntN(len(values))]
}

// Shuffle permutes n elements uniformly with the Fisher-Yates algorithm using swap to exchange elements.
func Shuffle(src Source, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		swap(i, j)
	}
}

// Letters returns a string of n random ASCII letters.
func Letters(n uint) (string, error) {
	letters := make([]rune, n)
	for i := range letters {
		letterIndex, err := rand.Int(rand.Reader, big.NewInt(int64(len(allowedLetters))))
		if err != nil {
			return "", err
		}
		letters[i] = allowedLetters[letterIndex.Int64()]
	}
	return string(letters), nil
}
