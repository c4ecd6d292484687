package settings

import (
	"fmt"

	"github.com/NebulousLabs/fastrand"
	"github.com/xitonix/xenigma/alphabet"
	"github.com/xitonix/xenigma/catalog"
	"github.com/xitonix/xenigma/enigma"
)

const maxPlugs = alphabet.Size / 2

// RandomOptions controls the keys generated by Random
type RandomOptions struct {
	// Catalog the catalog to draw the models from. The historical catalog is used if it's nil.
	Catalog *catalog.Catalog
	// Reflector the reflector of the machine. Defaults to "B".
	Reflector string
	// Pool the rotor models to choose from. Defaults to the five army rotors I to V.
	Pool []string
	// Rotors the number of rotors. Defaults to three.
	Rotors int
	// Plugs the number of plugboard cables, between 0 and 13
	Plugs int
}

// Random generates a key with distinct rotors, random ring settings, random start positions
// and random plugboard cables.
func Random(opts RandomOptions) (Settings, error) {
	if opts.Reflector == "" {
		opts.Reflector = "B"
	}
	if len(opts.Pool) == 0 {
		opts.Pool = []string{"I", "II", "III", "IV", "V"}
	}
	if opts.Rotors <= 0 {
		opts.Rotors = 3
	}
	if opts.Rotors > len(opts.Pool) {
		return Settings{}, fmt.Errorf("%w: cannot choose %d distinct rotors out of %d", enigma.ErrInvalidConfiguration, opts.Rotors, len(opts.Pool))
	}
	if opts.Plugs < 0 || opts.Plugs > maxPlugs {
		return Settings{}, fmt.Errorf("%w: %d plugs, expected between 0 and %d", enigma.ErrInvalidConfiguration, opts.Plugs, maxPlugs)
	}

	s := Settings{
		Reflector: opts.Reflector,
		Rotors:    make([]Rotor, opts.Rotors),
		Catalog:   opts.Catalog,
	}

	order := fastrand.Perm(len(opts.Pool))
	for i := range s.Rotors {
		s.Rotors[i] = Rotor{
			Model:    opts.Pool[order[i]],
			Ring:     alphabet.Symbol(fastrand.Intn(alphabet.Size)),
			Position: alphabet.Symbol(fastrand.Intn(alphabet.Size)),
		}
	}

	letters := fastrand.Perm(alphabet.Size)
	for i := 0; i < opts.Plugs; i++ {
		a, b := alphabet.Symbol(letters[2*i]), alphabet.Symbol(letters[2*i+1])
		if b < a {
			a, b = b, a
		}
		s.Plugs = append(s.Plugs, enigma.Pair{A: a, B: b})
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// RandomPositions draws a random message key for n rotors
func RandomPositions(n int) []alphabet.Symbol {
	positions := make([]alphabet.Symbol, n)
	for i := range positions {
		positions[i] = alphabet.Symbol(fastrand.Intn(alphabet.Size))
	}
	return positions
}
