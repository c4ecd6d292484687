package enigma

import (
	"github.com/xitonix/xenigma/alphabet"
)

// Wiring is a fixed substitution of the alphabet. Index i is wired to Wiring[i].
type Wiring [alphabet.Size]alphabet.Symbol

// IdentityWiring returns a wiring that connects every contact to itself
func IdentityWiring() Wiring {
	var w Wiring
	for i := range w {
		w[i] = alphabet.Symbol(i)
	}
	return w
}

// ParseWiring reads a wiring table written as the 26 letters the contacts 'A' to 'Z' are connected to,
// for example "EKMFLGDQVZNTOWYHXUSPAIBRCJ".
// The table must be a permutation of the alphabet.
func ParseWiring(letters string) (Wiring, error) {
	var w Wiring
	symbols, err := alphabet.Parse(letters)
	if err != nil {
		return w, configError("wiring %q: %v", letters, err)
	}
	if len(symbols) != alphabet.Size {
		return w, configError("wiring %q has %d contacts, expected %d", letters, len(symbols), alphabet.Size)
	}
	copy(w[:], symbols)
	if err := w.validate(); err != nil {
		return w, err
	}
	return w, nil
}

// Inverse returns the wiring seen from the other side of the component
func (w Wiring) Inverse() Wiring {
	var inv Wiring
	for i, s := range w {
		inv[s] = alphabet.Symbol(i)
	}
	return inv
}

func (w Wiring) String() string {
	return alphabet.Format(w[:])
}

// validate makes sure the wiring is a bijection
func (w Wiring) validate() error {
	var seen [alphabet.Size]bool
	for i, s := range w {
		if !s.Valid() {
			return configError("contact %s is wired to out of range symbol %d", alphabet.Symbol(i), uint8(s))
		}
		if seen[s] {
			return configError("wiring is not a permutation: %s is used more than once", s)
		}
		seen[s] = true
	}
	return nil
}
