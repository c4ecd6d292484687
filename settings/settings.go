// Package settings implements the daily key of a rotor machine, the way it is printed on a key sheet:
// the reflector, the rotor order, the ring settings, the start positions and the plugboard cables.
//
// A key sheet line looks like this:
//
//	B | II IV V | 02 21 12 | BLA | AV BS CG DL FU HZ IN KM OW RX
//
// Settings are plain values. Every call to Machine builds a new machine, so the same Settings
// can serve any number of independent sessions.
package settings

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/xitonix/xenigma/alphabet"
	"github.com/xitonix/xenigma/catalog"
	"github.com/xitonix/xenigma/enigma"
)

const (
	fingerprintLength = 12
	sheetSeparator    = "|"
)

// Rotor a rotor slot of the machine
type Rotor struct {
	// Model the catalog name of the rotor
	Model string
	// Ring the ring setting
	Ring alphabet.Symbol
	// Position the start position
	Position alphabet.Symbol
}

// Settings the complete configuration of a machine
type Settings struct {
	// Reflector the catalog name of the reflector
	Reflector string
	// Rotors the rotor slots from left to right
	Rotors []Rotor
	// Plugs the plugboard cables
	Plugs []enigma.Pair
	// Catalog the catalog the models are looked up in. The historical catalog is used if it's nil.
	Catalog *catalog.Catalog
}

// Machine builds a new machine from the settings
func (s Settings) Machine() (*enigma.Machine, error) {
	cat := s.catalog()

	rm, err := cat.Reflector(s.Reflector)
	if err != nil {
		return nil, err
	}
	reflector, err := rm.Build()
	if err != nil {
		return nil, err
	}

	rotors := make([]*enigma.Rotor, len(s.Rotors))
	for i, slot := range s.Rotors {
		model, err := cat.Rotor(slot.Model)
		if err != nil {
			return nil, err
		}
		spec, err := model.Spec(slot.Ring, slot.Position)
		if err != nil {
			return nil, err
		}
		if rotors[i], err = enigma.NewRotor(spec); err != nil {
			return nil, err
		}
	}

	plugboard, err := enigma.NewPlugboard(s.Plugs...)
	if err != nil {
		return nil, err
	}
	return enigma.NewMachine(reflector, plugboard, rotors...)
}

// Validate returns an error if no machine can be built from the settings
func (s Settings) Validate() error {
	_, err := s.Machine()
	return err
}

// WithPositions returns a copy of the settings with new start positions (the message key).
func (s Settings) WithPositions(positions []alphabet.Symbol) (Settings, error) {
	if len(positions) != len(s.Rotors) {
		return s, fmt.Errorf("%w: %d positions for %d rotors", enigma.ErrInvalidConfiguration, len(positions), len(s.Rotors))
	}
	rotors := make([]Rotor, len(s.Rotors))
	copy(rotors, s.Rotors)
	for i := range rotors {
		rotors[i].Position = positions[i]
	}
	s.Rotors = rotors
	return s, nil
}

// String renders the settings as a key sheet line
func (s Settings) String() string {
	models := make([]string, len(s.Rotors))
	rings := make([]string, len(s.Rotors))
	positions := make([]alphabet.Symbol, len(s.Rotors))
	for i, r := range s.Rotors {
		models[i] = r.Model
		rings[i] = fmt.Sprintf("%02d", int(r.Ring)+1)
		positions[i] = r.Position
	}
	plugs := make([]string, len(s.Plugs))
	for i, p := range s.Plugs {
		plugs[i] = p.String()
	}

	parts := []string{
		s.Reflector,
		strings.Join(models, " "),
		strings.Join(rings, " "),
		alphabet.Format(positions),
	}
	if len(plugs) > 0 {
		parts = append(parts, strings.Join(plugs, " "))
	}
	return strings.Join(parts, " "+sheetSeparator+" ")
}

// Fingerprint returns a short digest of the settings and of the wiring of every model they use.
// Two operators holding the same key and the same catalog get the same fingerprint.
func (s Settings) Fingerprint() (string, error) {
	cat := s.catalog()
	h := sha256.New224()
	fmt.Fprintln(h, s.String())

	rm, err := cat.Reflector(s.Reflector)
	if err != nil {
		return "", err
	}
	fmt.Fprintln(h, rm.Wiring)
	for _, r := range s.Rotors {
		m, err := cat.Rotor(r.Model)
		if err != nil {
			return "", err
		}
		fmt.Fprintln(h, m.Wiring, m.Notches, m.Fixed)
	}
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))[:fingerprintLength], nil
}

func (s Settings) catalog() *catalog.Catalog {
	if s.Catalog == nil {
		return historical
	}
	return s.Catalog
}

var historical = catalog.Historical()
