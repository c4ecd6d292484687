package operator

import (
	"fmt"
	"strings"
)

// Filter decides what happens to the input characters which are not in the alphabet
type Filter int8

const (
	// Strip drops the characters silently
	Strip Filter = iota
	// Keep copies the characters to the output unchanged. The rotors do not move.
	Keep
	// Strict fails the operation on the first character other than white space
	Strict
)

func (f Filter) String() string {
	switch f {
	case Strip:
		return "strip"
	case Keep:
		return "keep"
	case Strict:
		return "strict"
	}
	return "unknown"
}

// ParseFilter converts a filter name into a Filter. An empty name selects Strip.
func ParseFilter(name string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "strip", "":
		return Strip, nil
	case "keep":
		return Keep, nil
	case "strict":
		return Strict, nil
	}
	return Strip, fmt.Errorf("unknown filter %q", name)
}

// Options controls how the text around the letters is treated
type Options struct {
	Filter Filter
	// GroupSize splits the encoder output into blocks of the given number of letters.
	// Zero disables grouping. The decoder ignores it.
	GroupSize int
}
