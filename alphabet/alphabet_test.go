package alphabet

import (
	"errors"
	"testing"

	"github.com/xitonix/xenigma/assert"
)

func TestLetterRoundTrip(t *testing.T) {
	for b := byte('A'); b <= 'Z'; b++ {
		s, err := FromLetter(b)
		if !assert.Errors(t, false, err, assert.Fields{"letter": string(b)}) {
			return
		}
		if s.Letter() != b {
			t.Errorf("expected '%c', actual '%c'", b, s.Letter())
		}
		if s.Rune() != rune(b) {
			t.Errorf("expected rune '%c', actual '%c'", b, s.Rune())
		}
		if int(s) != int(b-'A') {
			t.Errorf("expected symbol %d for '%c', actual %d", b-'A', b, s)
		}
	}
}

func TestInvalidSymbols(t *testing.T) {
	testCases := []struct {
		title string
		input rune
	}{
		{title: "lower_case_letter", input: 'a'},
		{title: "digit", input: '7'},
		{title: "whitespace", input: ' '},
		{title: "before_a", input: '@'},
		{title: "after_z", input: '['},
		{title: "umlaut", input: 'Ä'},
		{title: "null", input: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			_, err := FromRune(tc.input)
			assert.ErrorIs(t, ErrInvalidSymbol, err, assert.Fields{"input": tc.input})
			if tc.input < 256 {
				_, err = FromLetter(byte(tc.input))
				assert.ErrorIs(t, ErrInvalidSymbol, err, assert.Fields{"input": tc.input})
			}
		})
	}
}

func TestAdd(t *testing.T) {
	testCases := []struct {
		title    string
		symbol   Symbol
		shift    int
		expected Symbol
	}{
		{title: "zero_shift", symbol: 3, shift: 0, expected: 3},
		{title: "forward", symbol: 3, shift: 4, expected: 7},
		{title: "wrap_forward", symbol: 25, shift: 1, expected: 0},
		{title: "backward", symbol: 3, shift: -2, expected: 1},
		{title: "wrap_backward", symbol: 0, shift: -1, expected: 25},
		{title: "large_negative", symbol: 5, shift: -57, expected: 0},
		{title: "full_turn", symbol: 11, shift: Size, expected: 11},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			actual := tc.symbol.Add(tc.shift)
			if actual != tc.expected {
				t.Errorf("expected %d, actual %d", tc.expected, actual)
			}
			if !actual.Valid() {
				t.Errorf("symbol %d is out of range", actual)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	testCases := []struct {
		title       string
		input       string
		expectError bool
	}{
		{title: "empty_word", input: ""},
		{title: "single_letter", input: "Q"},
		{title: "full_alphabet", input: "ABCDEFGHIJKLMNOPQRSTUVWXYZ"},
		{title: "lower_case_is_rejected", input: "Abc", expectError: true},
		{title: "space_is_rejected", input: "AB CD", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			symbols, err := Parse(tc.input)
			if !assert.Errors(t, tc.expectError, err, assert.Fields{"input": tc.input}) {
				if !errors.Is(err, ErrInvalidSymbol) {
					t.Errorf("expected '%v', actual '%v'", ErrInvalidSymbol, err)
				}
				return
			}
			if actual := Format(symbols); actual != tc.input {
				t.Errorf("expected '%s', actual '%s'", tc.input, actual)
			}
		})
	}
}

func TestSymbolString(t *testing.T) {
	if s := Symbol(25).String(); s != "Z" {
		t.Errorf("expected 'Z', actual '%s'", s)
	}
	if s := Symbol(26).String(); s != "Symbol(26)" {
		t.Errorf("expected 'Symbol(26)', actual '%s'", s)
	}
}
