package enigma

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is raised at construction time by any rotor, reflector, plugboard
	// or machine that cannot be built from the given settings
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

func configError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}
