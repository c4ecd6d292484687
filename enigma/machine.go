package enigma

import (
	"github.com/xitonix/xenigma/alphabet"
)

// MaxRotors is the largest rotor stack a machine accepts
const MaxRotors = 8

// Machine is a rotor cipher machine.
// The machine owns copies of its rotors. Their positions change on every key press.
type Machine struct {
	// rotors are stored from the fastest (rightmost) to the slowest (leftmost)
	rotors    []*Rotor
	reflector *Reflector
	plugboard *Plugboard
}

// NewMachine assembles a machine.
//
// The rotors are listed from left to right, the way they are written on a key sheet ("I II III").
// The rightmost rotor is the fastest and must be steppable. Fixed rotors can only sit on the left
// of all the steppable ones. A nil plugboard means no cables.
func NewMachine(reflector *Reflector, plugboard *Plugboard, rotors ...*Rotor) (*Machine, error) {
	if reflector == nil {
		return nil, configError("a reflector is required")
	}
	if len(rotors) == 0 || len(rotors) > MaxRotors {
		return nil, configError("%d rotors, expected between 1 and %d", len(rotors), MaxRotors)
	}
	if plugboard == nil {
		plugboard, _ = NewPlugboard()
	}

	m := &Machine{
		rotors:    make([]*Rotor, len(rotors)),
		reflector: reflector,
		plugboard: plugboard,
	}

	for i, r := range rotors {
		if r == nil {
			return nil, configError("rotor %d is missing", i+1)
		}
		own := *r
		m.rotors[len(rotors)-1-i] = &own
	}

	if !m.rotors[0].Steppable() {
		return nil, configError("the rightmost rotor %s must be steppable", m.rotors[0].Name())
	}
	for i := 1; i < len(m.rotors); i++ {
		if m.rotors[i].Steppable() && !m.rotors[i-1].Steppable() {
			return nil, configError("steppable rotor %s cannot sit on the left of fixed rotor %s", m.rotors[i].Name(), m.rotors[i-1].Name())
		}
	}
	return m, nil
}

// Encipher presses one key: the rotors step, then the symbol travels the full signal path.
// The symbol must be valid. Use EncipherString to validate letters first.
func (m *Machine) Encipher(s alphabet.Symbol) alphabet.Symbol {
	m.step()

	x := m.plugboard.Swap(s)
	for _, r := range m.rotors {
		x = r.Forward(x)
	}
	x = m.reflector.Reflect(x)
	for i := len(m.rotors) - 1; i >= 0; i-- {
		x = m.rotors[i].Backward(x)
	}
	return m.plugboard.Swap(x)
}

// Transform enciphers src into dst and returns the number of symbols written,
// which is the length of the shorter slice.
func (m *Machine) Transform(dst, src []alphabet.Symbol) int {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		dst[i] = m.Encipher(src[i])
	}
	return n
}

// EncipherString enciphers a word of upper case letters.
// If the text contains anything but 'A' to 'Z', the machine is left untouched and
// an error wrapping alphabet.ErrInvalidSymbol is returned.
func (m *Machine) EncipherString(text string) (string, error) {
	symbols, err := alphabet.Parse(text)
	if err != nil {
		return "", err
	}
	m.Transform(symbols, symbols)
	return alphabet.Format(symbols), nil
}

// Positions returns the window positions from left to right
func (m *Machine) Positions() []alphabet.Symbol {
	positions := make([]alphabet.Symbol, len(m.rotors))
	for i, r := range m.rotors {
		positions[len(m.rotors)-1-i] = r.Position()
	}
	return positions
}

// String returns the letters shown in the windows, for example "ADU"
func (m *Machine) String() string {
	return alphabet.Format(m.Positions())
}

// step advances the rotors for one key press.
//
// All decisions are taken from the notch states before the key press:
// the rightmost rotor always steps, a rotor at its notch steps its left neighbour, and
// a rotor other than the rightmost one that steps its neighbour steps itself as well (double step).
// The carry stops at the first fixed rotor. A rotor steps at most once per key press.
func (m *Machine) step() {
	var atNotch, advance [MaxRotors]bool
	for i, r := range m.rotors {
		atNotch[i] = r.IsAtNotch()
	}

	advance[0] = true
	for i := 0; i+1 < len(m.rotors) && m.rotors[i+1].Steppable(); i++ {
		if !atNotch[i] {
			continue
		}
		advance[i+1] = true
		if i > 0 {
			advance[i] = true
		}
	}

	for i, r := range m.rotors {
		if advance[i] {
			r.Advance()
		}
	}
}
