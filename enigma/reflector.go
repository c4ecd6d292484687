package enigma

import (
	"github.com/xitonix/xenigma/alphabet"
)

// Reflector (Umkehrwalze) sends the signal back through the rotors.
// Its wiring is an involution with no fixed points, which makes the whole machine self-inverse
// and is also why a letter can never be enciphered to itself.
type Reflector struct {
	name   string
	wiring Wiring
}

// NewReflector creates a new reflector
func NewReflector(name string, w Wiring) (*Reflector, error) {
	if err := w.validate(); err != nil {
		return nil, configError("reflector %s: %v", name, err)
	}
	for i, s := range w {
		x := alphabet.Symbol(i)
		if s == x {
			return nil, configError("reflector %s: %s is wired to itself", name, x)
		}
		if w[s] != x {
			return nil, configError("reflector %s: %s is wired to %s, but %s is wired to %s", name, x, s, s, w[s])
		}
	}
	return &Reflector{
		name:   name,
		wiring: w,
	}, nil
}

// Name returns the name of the reflector
func (r *Reflector) Name() string {
	return r.name
}

// Reflect returns the symbol the input is wired to
func (r *Reflector) Reflect(s alphabet.Symbol) alphabet.Symbol {
	return r.wiring[s]
}
