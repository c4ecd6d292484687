package enigma

import (
	"strings"

	"github.com/xitonix/xenigma/alphabet"
)

// Pair is a plugboard cable connecting two letters
type Pair struct {
	A, B alphabet.Symbol
}

func (p Pair) String() string {
	return string([]byte{p.A.Letter(), p.B.Letter()})
}

// Plugboard (Steckerbrett) swaps the letters of every connected pair on the way in and on the way out
type Plugboard struct {
	wiring Wiring
}

// NewPlugboard creates a new plugboard from the cable pairs.
// No pairs means no cables, so every letter maps to itself.
func NewPlugboard(pairs ...Pair) (*Plugboard, error) {
	wiring := IdentityWiring()
	var used [alphabet.Size]bool
	for _, p := range pairs {
		if !p.A.Valid() || !p.B.Valid() {
			return nil, configError("plugboard pair (%d, %d) is out of range", uint8(p.A), uint8(p.B))
		}
		if p.A == p.B {
			return nil, configError("plugboard pair %s connects a letter to itself", p)
		}
		for _, s := range []alphabet.Symbol{p.A, p.B} {
			if used[s] {
				return nil, configError("plugboard letter %s is used by more than one pair", s)
			}
			used[s] = true
		}
		wiring[p.A] = p.B
		wiring[p.B] = p.A
	}
	return &Plugboard{wiring: wiring}, nil
}

// Swap returns the partner of a connected letter or the letter itself if it's not plugged
func (p *Plugboard) Swap(s alphabet.Symbol) alphabet.Symbol {
	return p.wiring[s]
}

// Pairs returns the connected pairs ordered by their first letter
func (p *Plugboard) Pairs() []Pair {
	var pairs []Pair
	for i, s := range p.wiring {
		a := alphabet.Symbol(i)
		if a < s {
			pairs = append(pairs, Pair{A: a, B: s})
		}
	}
	return pairs
}

// String returns the pairs in key sheet notation, for example "AV BS CG"
func (p *Plugboard) String() string {
	pairs := p.Pairs()
	parts := make([]string, len(pairs))
	for i, pair := range pairs {
		parts[i] = pair.String()
	}
	return strings.Join(parts, " ")
}
