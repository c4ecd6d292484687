package catalog

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type document struct {
	Rotors     []RotorModel     `yaml:"rotors"`
	Reflectors []ReflectorModel `yaml:"reflectors"`
}

// Load reads rotor and reflector models from a YAML document and adds them to the historical catalog.
// A model named after a historical one replaces it. Every model is validated before Load returns.
func Load(r io.Reader) (*Catalog, error) {
	var doc document
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read the catalog: %w", err)
	}

	c := Historical()
	for _, m := range doc.Rotors {
		if err := c.addRotor(m); err != nil {
			return nil, err
		}
	}
	for _, m := range doc.Reflectors {
		if err := c.addReflector(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}
