package enigma

import (
	"strings"
	"testing"

	"github.com/xitonix/xenigma/alphabet"
)

var testRotors = map[string]struct {
	wiring, notches string
	fixed           bool
}{
	"I":    {wiring: "EKMFLGDQVZNTOWYHXUSPAIBRCJ", notches: "Q"},
	"II":   {wiring: "AJDKSIRUXBLHWTMCQGZNPYFVOE", notches: "E"},
	"III":  {wiring: "BDFHJLCPRTXVZNYEIWGAKMUSQO", notches: "V"},
	"IV":   {wiring: "ESOVPZJAYQUIRHXLNFTGKDCMWB", notches: "J"},
	"V":    {wiring: "VZBRGITYUPSDNHLXAWMJQOFECK", notches: "Z"},
	"VI":   {wiring: "JPGVOUMFYQBENHZRDKASXLICTW", notches: "ZM"},
	"VIII": {wiring: "FKQHTLXOCBJSPDZRAMEWNIUYGV", notches: "ZM"},
	"Beta": {wiring: "LEYJVCNIXWPBQMDRTAKZGFUHOS", fixed: true},
}

var testReflectors = map[string]string{
	"B":      "YRUHQSLDPXNGOKMIEBFZCWVJAT",
	"C":      "FVPJIAOYEDRZXWGCTKUQSBNMHL",
	"B-thin": "ENKQAUYWJICOPBLMDXZVFTHRGS",
}

func symbol(t testing.TB, b byte) alphabet.Symbol {
	t.Helper()
	s, err := alphabet.FromLetter(b)
	if err != nil {
		t.Fatalf("invalid test letter: %v", err)
	}
	return s
}

func wiring(t testing.TB, letters string) Wiring {
	t.Helper()
	w, err := ParseWiring(letters)
	if err != nil {
		t.Fatalf("invalid test wiring: %v", err)
	}
	return w
}

func newTestRotor(t testing.TB, name string, ring, position byte) *Rotor {
	t.Helper()
	model, ok := testRotors[name]
	if !ok {
		t.Fatalf("unknown test rotor %s", name)
	}
	notches, err := alphabet.Parse(model.notches)
	if err != nil {
		t.Fatalf("invalid test notches: %v", err)
	}
	r, err := NewRotor(RotorSpec{
		Name:     name,
		Wiring:   wiring(t, model.wiring),
		Notches:  notches,
		Ring:     symbol(t, ring),
		Position: symbol(t, position),
		Fixed:    model.fixed,
	})
	if err != nil {
		t.Fatalf("failed to create rotor %s: %v", name, err)
	}
	return r
}

func newTestPlugboard(t testing.TB, plugs string) *Plugboard {
	t.Helper()
	var pairs []Pair
	for _, p := range strings.Fields(plugs) {
		pairs = append(pairs, Pair{A: symbol(t, p[0]), B: symbol(t, p[1])})
	}
	pb, err := NewPlugboard(pairs...)
	if err != nil {
		t.Fatalf("failed to create plugboard %q: %v", plugs, err)
	}
	return pb
}

// newTestMachine builds a machine from key sheet notation. rotors, rings and positions
// are listed from left to right.
func newTestMachine(t testing.TB, reflector, rotors, rings, positions, plugs string) *Machine {
	t.Helper()
	names := strings.Fields(rotors)
	if len(names) != len(rings) || len(names) != len(positions) {
		t.Fatalf("mismatched test settings %q %q %q", rotors, rings, positions)
	}
	stack := make([]*Rotor, len(names))
	for i, name := range names {
		stack[i] = newTestRotor(t, name, rings[i], positions[i])
	}
	ref, err := NewReflector(reflector, wiring(t, testReflectors[reflector]))
	if err != nil {
		t.Fatalf("failed to create reflector %s: %v", reflector, err)
	}
	m, err := NewMachine(ref, newTestPlugboard(t, plugs), stack...)
	if err != nil {
		t.Fatalf("failed to create machine: %v", err)
	}
	return m
}
