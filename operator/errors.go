package operator

import "errors"

var (
	errNoMachine = errors.New("no machine has been provided")
	errNoKeyring = errors.New("no keyring has been provided")

	// ErrOperationInProgress is the result of any invalid operation on an entity which is already being processed
	ErrOperationInProgress = errors.New("the operation is in progress")
)
