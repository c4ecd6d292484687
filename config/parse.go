package config

import (
	"errors"
	"flag"
	"fmt"
)

// Parse loads the environment into target, lets register bind the flags and then parses args.
// Flags override the environment.
func Parse(target any, fs *flag.FlagSet, args []string, register func(*flag.FlagSet)) error {
	if err := ParseEnv(target); err != nil {
		return err
	}
	if register != nil {
		register(fs)
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
