// Package alphabet implements the conversion between the 26 letters a rotor machine can type
// and the 0-based symbols the machine works with internally.
package alphabet

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the number of symbols in the alphabet
const Size = 26

// ErrInvalidSymbol is the error raised when a character does not belong to the alphabet
var ErrInvalidSymbol = errors.New("invalid symbol")

// Symbol is the 0-based position of a letter in the alphabet ('A' is 0, 'Z' is 25)
type Symbol uint8

// FromLetter converts an upper case ASCII letter to its symbol
func FromLetter(b byte) (Symbol, error) {
	if b < 'A' || b > 'Z' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, b)
	}
	return Symbol(b - 'A'), nil
}

// FromRune converts an upper case letter to its symbol.
// Lower case letters are rejected. Case folding is the caller's business.
func FromRune(r rune) (Symbol, error) {
	if r < 'A' || r > 'Z' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, r)
	}
	return Symbol(r - 'A'), nil
}

// Valid returns true if the symbol is within the alphabet
func (s Symbol) Valid() bool {
	return s < Size
}

// Letter returns the upper case ASCII letter of the symbol
func (s Symbol) Letter() byte {
	return byte(s) + 'A'
}

// Rune returns the upper case letter of the symbol as a rune
func (s Symbol) Rune() rune {
	return rune(s) + 'A'
}

func (s Symbol) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Symbol(%d)", uint8(s))
	}
	return string(s.Rune())
}

// Add shifts the symbol by n positions around the alphabet. n may be negative.
func (s Symbol) Add(n int) Symbol {
	v := (int(s) + n) % Size
	if v < 0 {
		v += Size
	}
	return Symbol(v)
}

// Parse converts a word of upper case letters into symbols
func Parse(word string) ([]Symbol, error) {
	symbols := make([]Symbol, 0, len(word))
	for _, r := range word {
		s, err := FromRune(r)
		if err != nil {
			return nil, err
		}
		symbols = append(symbols, s)
	}
	return symbols, nil
}

// Format converts the symbols back into a word of upper case letters
func Format(symbols []Symbol) string {
	var sb strings.Builder
	sb.Grow(len(symbols))
	for _, s := range symbols {
		sb.WriteByte(s.Letter())
	}
	return sb.String()
}
