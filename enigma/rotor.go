package enigma

import (
	"github.com/xitonix/xenigma/alphabet"
)

// RotorSpec describes a rotor as it is placed into the machine
type RotorSpec struct {
	// Name the name of the rotor model, for example "III"
	Name string
	// Wiring the fixed internal wiring of the rotor, as seen from the entry side
	Wiring Wiring
	// Notches the window positions at which the rotor pushes its left neighbour on the next key press
	Notches []alphabet.Symbol
	// Ring the ring setting (Ringstellung). 'A' (zero) is the neutral setting.
	Ring alphabet.Symbol
	// Position the starting position shown in the window (Grundstellung)
	Position alphabet.Symbol
	// Fixed rotors never step. The greek rotors of the naval M4 are fixed.
	Fixed bool
}

// Rotor is a wired wheel with a rotational position, a ring setting and zero or more notches
type Rotor struct {
	name     string
	forward  Wiring
	backward Wiring
	notches  [alphabet.Size]bool
	ring     alphabet.Symbol
	position alphabet.Symbol
	fixed    bool
}

// NewRotor creates a new rotor.
// It returns ErrInvalidConfiguration if the wiring is not a bijection or any setting is out of range.
func NewRotor(spec RotorSpec) (*Rotor, error) {
	if err := spec.Wiring.validate(); err != nil {
		return nil, configError("rotor %s: %v", spec.Name, err)
	}
	if !spec.Ring.Valid() {
		return nil, configError("rotor %s: ring setting %d is out of range", spec.Name, uint8(spec.Ring))
	}
	if !spec.Position.Valid() {
		return nil, configError("rotor %s: position %d is out of range", spec.Name, uint8(spec.Position))
	}

	r := &Rotor{
		name:     spec.Name,
		forward:  spec.Wiring,
		backward: spec.Wiring.Inverse(),
		ring:     spec.Ring,
		position: spec.Position,
		fixed:    spec.Fixed,
	}

	for _, n := range spec.Notches {
		if !n.Valid() {
			return nil, configError("rotor %s: notch %d is out of range", spec.Name, uint8(n))
		}
		r.notches[n] = true
	}
	return r, nil
}

// Name returns the name of the rotor model
func (r *Rotor) Name() string {
	return r.name
}

// Position returns the current window position
func (r *Rotor) Position() alphabet.Symbol {
	return r.position
}

// Ring returns the ring setting
func (r *Rotor) Ring() alphabet.Symbol {
	return r.ring
}

// Steppable returns false for fixed rotors
func (r *Rotor) Steppable() bool {
	return !r.fixed
}

// IsAtNotch returns true if the rotor is at one of its notch positions
func (r *Rotor) IsAtNotch() bool {
	return r.notches[r.position]
}

// Advance moves the rotor one position forward
func (r *Rotor) Advance() {
	r.position = r.position.Add(1)
}

// Forward maps a symbol entering from the right (the plugboard side) towards the reflector
func (r *Rotor) Forward(s alphabet.Symbol) alphabet.Symbol {
	return substitute(s, r.position, r.ring, &r.forward)
}

// Backward maps a symbol coming back from the reflector. It is the inverse of Forward.
func (r *Rotor) Backward(s alphabet.Symbol) alphabet.Symbol {
	return substitute(s, r.position, r.ring, &r.backward)
}

// substitute applies the wiring to a symbol with the wheel rotated by (position - ring).
func substitute(s, position, ring alphabet.Symbol, w *Wiring) alphabet.Symbol {
	shift := int(position) - int(ring)
	return w[s.Add(shift)].Add(-shift)
}
