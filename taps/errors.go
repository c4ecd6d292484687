package taps

import "errors"

var (
	// ErrInvalidDirectory raised if the specified path is not a valid path to a directory
	ErrInvalidDirectory = errors.New("the specified path is not a directory")
	// ErrOverlappingDirectories raised if the target directory lives inside the source directory,
	// which would make the tap pick up its own output
	ErrOverlappingDirectories = errors.New("the target directory cannot be inside the source directory")
	// ErrNoKeyring raised if the tap has no key to hand over to the engine
	ErrNoKeyring = errors.New("no keyring has been provided")
)
