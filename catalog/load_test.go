package catalog

import (
	"strings"
	"testing"

	"github.com/xitonix/xenigma/assert"
	"github.com/xitonix/xenigma/enigma"
)

func TestLoad(t *testing.T) {
	testCases := []struct {
		title       string
		input       string
		expectError bool
		rotor       string
		reflector   string
		wiring      string
	}{
		{
			title:  "empty_document_keeps_the_historical_tables",
			input:  "",
			rotor:  "III",
			wiring: "BDFHJLCPRTXVZNYEIWGAKMUSQO",
		},
		{
			title: "new_rotor",
			input: `
rotors:
  - name: X
    wiring: QWERTZUIOASDFGHJKPYXCVBNML
    notches: AN
`,
			rotor:  "X",
			wiring: "QWERTZUIOASDFGHJKPYXCVBNML",
		},
		{
			title: "historical_rotor_is_replaced",
			input: `
rotors:
  - name: I
    wiring: ABCDEFGHIJKLMNOPQRSTUVWXYZ
`,
			rotor:  "I",
			wiring: "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
		},
		{
			title: "new_reflector",
			input: `
reflectors:
  - name: D
    wiring: ZYXWVUTSRQPONMLKJIHGFEDCBA
`,
			reflector: "D",
			wiring:    "ZYXWVUTSRQPONMLKJIHGFEDCBA",
		},
		{
			title: "rotor_wiring_is_not_a_permutation",
			input: `
rotors:
  - name: X
    wiring: AACDEFGHIJKLMNOPQRSTUVWXYZ
`,
			expectError: true,
		},
		{
			title: "invalid_notch",
			input: `
rotors:
  - name: X
    wiring: ABCDEFGHIJKLMNOPQRSTUVWXYZ
    notches: "1"
`,
			expectError: true,
		},
		{
			title: "reflector_with_fixed_point",
			input: `
reflectors:
  - name: D
    wiring: ABCDEFGHIJKLMNOPQRSTUVWXYZ
`,
			expectError: true,
		},
		{
			title: "rotor_without_name",
			input: `
rotors:
  - wiring: ABCDEFGHIJKLMNOPQRSTUVWXYZ
`,
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			c, err := Load(strings.NewReader(tc.input))
			if !assert.Errors(t, tc.expectError, err, assert.Fields{"input": tc.input}) {
				assert.ErrorIs(t, enigma.ErrInvalidConfiguration, err, nil)
				return
			}
			var wiring string
			if tc.rotor != "" {
				m, err := c.Rotor(tc.rotor)
				if !assert.Errors(t, false, err, nil) {
					return
				}
				wiring = m.Wiring
			} else {
				m, err := c.Reflector(tc.reflector)
				if !assert.Errors(t, false, err, nil) {
					return
				}
				wiring = m.Wiring
			}
			if wiring != tc.wiring {
				t.Errorf("expected wiring '%s', actual '%s'", tc.wiring, wiring)
			}
		})
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	testCases := []struct {
		title string
		input string
	}{
		{title: "unknown_field", input: "rotors:\n  - name: X\n    colour: red\n"},
		{title: "not_a_list", input: "rotors: 12\n"},
		{title: "broken_indentation", input: "rotors:\n- name: X\n  wiring: [\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			c, err := Load(strings.NewReader(tc.input))
			assert.Errors(t, true, err, nil)
			if c != nil {
				t.Error("no catalog was expected")
			}
		})
	}
}

func TestLoadKeepsOrder(t *testing.T) {
	c, err := Load(strings.NewReader("rotors:\n  - name: X\n    wiring: ABCDEFGHIJKLMNOPQRSTUVWXYZ\n  - name: II\n    wiring: ABCDEFGHIJKLMNOPQRSTUVWXYZ\n"))
	if !assert.Errors(t, false, err, nil) {
		return
	}
	names := c.RotorNames()
	if names[1] != "II" || names[len(names)-1] != "X" {
		t.Errorf("unexpected order %v", names)
	}
}
