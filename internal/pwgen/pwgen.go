// Package pwgen generates random passwords from a configurable character
// set using a cryptographically secure entropy source.
package pwgen

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	// The ASCII punctuation block, in code point order.
	specialChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

var (
	ErrInvalidLength = errors.New("password length must be at least 1")
	ErrEmptyAlphabet = errors.New("character set is empty, enable at least one character type")
)

// Options selects which character classes the alphabet contains beyond
// lowercase letters, which are always included.
type Options struct {
	Uppercase bool
	Numbers   bool
	Special   bool
}

// A Generator draws password characters uniformly from a fixed alphabet.
// The zero value is not usable; construct one with New.
type Generator struct {
	alphabet string
	rand     io.Reader
}

// New returns a Generator whose alphabet is assembled from the enabled
// character classes, in the order lowercase, uppercase, digits, special.
// It draws entropy from crypto/rand.
func New(opts Options) *Generator {
	alphabet := lowercaseChars
	if opts.Uppercase {
		alphabet += uppercaseChars
	}
	if opts.Numbers {
		alphabet += digitChars
	}
	if opts.Special {
		alphabet += specialChars
	}
	return &Generator{
		alphabet: alphabet,
		rand:     rand.Reader,
	}
}

// Alphabet returns the characters the Generator draws from.
func (g *Generator) Alphabet() string {
	return g.alphabet
}

// Generate returns a password of exactly n characters, each drawn
// independently and uniformly from the Generator's alphabet.
func (g *Generator) Generate(n int) (string, error) {
	if n < 1 {
		return "", ErrInvalidLength
	}
	if len(g.alphabet) == 0 {
		// Unreachable while lowercase letters are unconditional, but the
		// guard stays so that toggling all classes off can never panic.
		return "", ErrEmptyAlphabet
	}
	pw := make([]byte, n)
	for i := range pw {
		c, err := g.randomChar()
		if err != nil {
			return "", err
		}
		pw[i] = c
	}
	return string(pw), nil
}

func (g *Generator) randomChar() (byte, error) {
	bn, err := rand.Int(g.rand, big.NewInt(int64(len(g.alphabet))))
	if err != nil {
		return 0, err
	}
	return g.alphabet[bn.Int64()], nil
}
