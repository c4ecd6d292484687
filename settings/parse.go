package settings

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/xitonix/xenigma/alphabet"
	"github.com/xitonix/xenigma/enigma"
)

// Parse reads the settings from the key sheet columns.
//
// rotors is a list of model names ("I II III"). rings and positions accept a word of letters ("AAA"),
// separate letters ("A A A") or 1-based numbers ("01 01 01"). plugs is a list of letter pairs ("AV BS").
// The input is not case sensitive.
func Parse(reflector, rotors, rings, positions, plugs string) (Settings, error) {
	models := fields(rotors)
	if len(models) == 0 {
		return Settings{}, fmt.Errorf("%w: no rotors", enigma.ErrInvalidConfiguration)
	}

	r, err := ParseSymbols(rings, len(models))
	if err != nil {
		return Settings{}, fmt.Errorf("ring settings: %w", err)
	}
	p, err := ParseSymbols(positions, len(models))
	if err != nil {
		return Settings{}, fmt.Errorf("positions: %w", err)
	}
	pairs, err := ParsePlugs(plugs)
	if err != nil {
		return Settings{}, err
	}

	s := Settings{
		Reflector: strings.TrimSpace(reflector),
		Rotors:    make([]Rotor, len(models)),
		Plugs:     pairs,
	}
	for i, m := range models {
		s.Rotors[i] = Rotor{Model: m, Ring: r[i], Position: p[i]}
	}
	return s, nil
}

// ParseSheet reads a key sheet line as rendered by Settings.String
func ParseSheet(line string) (Settings, error) {
	parts := strings.Split(line, sheetSeparator)
	if len(parts) == 4 {
		parts = append(parts, "")
	}
	if len(parts) != 5 {
		return Settings{}, fmt.Errorf("%w: key sheet line %q must have 4 or 5 columns", enigma.ErrInvalidConfiguration, line)
	}
	return Parse(parts[0], parts[1], parts[2], parts[3], parts[4])
}

// ParseSymbols reads exactly n ring settings or positions
func ParseSymbols(input string, n int) ([]alphabet.Symbol, error) {
	tokens := fields(strings.ToUpper(input))
	if len(tokens) == 1 && len(tokens[0]) > 1 && isLetters(tokens[0]) {
		tokens = strings.Split(tokens[0], "")
	}
	if len(tokens) != n {
		return nil, fmt.Errorf("%w: %q has %d values, expected %d", enigma.ErrInvalidConfiguration, input, len(tokens), n)
	}

	symbols := make([]alphabet.Symbol, n)
	for i, token := range tokens {
		if number, err := strconv.Atoi(token); err == nil {
			if number < 1 || number > alphabet.Size {
				return nil, fmt.Errorf("%w: %d is not between 1 and %d", enigma.ErrInvalidConfiguration, number, alphabet.Size)
			}
			symbols[i] = alphabet.Symbol(number - 1)
			continue
		}
		if len(token) != 1 {
			return nil, fmt.Errorf("%w: %q is neither a letter nor a number", enigma.ErrInvalidConfiguration, token)
		}
		s, err := alphabet.FromLetter(token[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", enigma.ErrInvalidConfiguration, err)
		}
		symbols[i] = s
	}
	return symbols, nil
}

// ParsePlugs reads the plugboard cables written as letter pairs ("AV BS CG")
func ParsePlugs(input string) ([]enigma.Pair, error) {
	var pairs []enigma.Pair
	for _, token := range fields(strings.ToUpper(input)) {
		if len(token) != 2 {
			return nil, fmt.Errorf("%w: plug %q must be two letters", enigma.ErrInvalidConfiguration, token)
		}
		a, err := alphabet.FromLetter(token[0])
		if err != nil {
			return nil, fmt.Errorf("%w: plug %q: %w", enigma.ErrInvalidConfiguration, token, err)
		}
		b, err := alphabet.FromLetter(token[1])
		if err != nil {
			return nil, fmt.Errorf("%w: plug %q: %w", enigma.ErrInvalidConfiguration, token, err)
		}
		pairs = append(pairs, enigma.Pair{A: a, B: b})
	}
	return pairs, nil
}

func fields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
}

func isLetters(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
