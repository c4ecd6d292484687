// Package catalog holds the wiring tables of historical rotors and reflectors.
//
// The enigma package knows nothing about historical machines. A Catalog maps a rotor or
// reflector name, as written on a key sheet, to the wiring the machine is built from.
// Alternative tables can be loaded from YAML without touching the code:
//
//	rotors:
//	  - name: X
//	    wiring: QWERTZUIOASDFGHJKPYXCVBNML
//	    notches: Q
//	reflectors:
//	  - name: D
//	    wiring: ...
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/xitonix/xenigma/alphabet"
	"github.com/xitonix/xenigma/enigma"
)

var (
	// ErrUnknownRotor is raised when a rotor name is not in the catalog
	ErrUnknownRotor = errors.New("unknown rotor")
	// ErrUnknownReflector is raised when a reflector name is not in the catalog
	ErrUnknownReflector = errors.New("unknown reflector")
)

// RotorModel describes a rotor type
type RotorModel struct {
	Name    string `yaml:"name"`
	Wiring  string `yaml:"wiring"`
	Notches string `yaml:"notches"`
	Fixed   bool   `yaml:"fixed"`

	// order keeps the models in the order they were added
	order int
}

// ReflectorModel describes a reflector type
type ReflectorModel struct {
	Name   string `yaml:"name"`
	Wiring string `yaml:"wiring"`

	order int
}

// Spec returns the settings the enigma package needs to build a rotor of this model
func (m RotorModel) Spec(ring, position alphabet.Symbol) (enigma.RotorSpec, error) {
	w, err := enigma.ParseWiring(m.Wiring)
	if err != nil {
		return enigma.RotorSpec{}, fmt.Errorf("rotor %s: %w", m.Name, err)
	}
	notches, err := alphabet.Parse(m.Notches)
	if err != nil {
		return enigma.RotorSpec{}, fmt.Errorf("rotor %s notches: %w: %v", m.Name, enigma.ErrInvalidConfiguration, err)
	}
	return enigma.RotorSpec{
		Name:     m.Name,
		Wiring:   w,
		Notches:  notches,
		Ring:     ring,
		Position: position,
		Fixed:    m.Fixed,
	}, nil
}

// Build creates a reflector of this model
func (m ReflectorModel) Build() (*enigma.Reflector, error) {
	w, err := enigma.ParseWiring(m.Wiring)
	if err != nil {
		return nil, fmt.Errorf("reflector %s: %w", m.Name, err)
	}
	return enigma.NewReflector(m.Name, w)
}

// Catalog is a read-only set of rotor and reflector models.
// It is safe for concurrent use once it's been built.
type Catalog struct {
	rotors     map[string]RotorModel
	reflectors map[string]ReflectorModel
}

func newCatalog() *Catalog {
	return &Catalog{
		rotors:     make(map[string]RotorModel),
		reflectors: make(map[string]ReflectorModel),
	}
}

// Rotor looks up a rotor model by name
func (c *Catalog) Rotor(name string) (RotorModel, error) {
	m, ok := c.rotors[name]
	if !ok {
		return RotorModel{}, fmt.Errorf("%w: %q", ErrUnknownRotor, name)
	}
	return m, nil
}

// Reflector looks up a reflector model by name
func (c *Catalog) Reflector(name string) (ReflectorModel, error) {
	m, ok := c.reflectors[name]
	if !ok {
		return ReflectorModel{}, fmt.Errorf("%w: %q", ErrUnknownReflector, name)
	}
	return m, nil
}

// RotorNames returns the rotor names in the order they were added to the catalog
func (c *Catalog) RotorNames() []string {
	models := make([]RotorModel, 0, len(c.rotors))
	for _, m := range c.rotors {
		models = append(models, m)
	}
	sort.Slice(models, func(i, j int) bool { return models[i].order < models[j].order })
	names := make([]string, len(models))
	for i, m := range models {
		names[i] = m.Name
	}
	return names
}

// ReflectorNames returns the reflector names in the order they were added to the catalog
func (c *Catalog) ReflectorNames() []string {
	models := make([]ReflectorModel, 0, len(c.reflectors))
	for _, m := range c.reflectors {
		models = append(models, m)
	}
	sort.Slice(models, func(i, j int) bool { return models[i].order < models[j].order })
	names := make([]string, len(models))
	for i, m := range models {
		names[i] = m.Name
	}
	return names
}

func (c *Catalog) addRotor(m RotorModel) error {
	if m.Name == "" {
		return fmt.Errorf("%w: rotor without a name", enigma.ErrInvalidConfiguration)
	}
	if _, err := m.Spec(0, 0); err != nil {
		return err
	}
	if old, ok := c.rotors[m.Name]; ok {
		m.order = old.order
	} else {
		m.order = len(c.rotors)
	}
	c.rotors[m.Name] = m
	return nil
}

func (c *Catalog) addReflector(m ReflectorModel) error {
	if m.Name == "" {
		return fmt.Errorf("%w: reflector without a name", enigma.ErrInvalidConfiguration)
	}
	if _, err := m.Build(); err != nil {
		return err
	}
	if old, ok := c.reflectors[m.Name]; ok {
		m.order = old.order
	} else {
		m.order = len(c.reflectors)
	}
	c.reflectors[m.Name] = m
	return nil
}
