// Package assert includes some helper methods used for testing
package assert

import (
	"errors"
	"testing"
)

// Errors checks the validity of the expected error and returns false if no error was expected.
func Errors(t *testing.T, expectError bool, err error, fields Fields) bool {
	t.Helper()

	if expectError && err == nil {
		t.Errorf("Expected an error, but received 'nil' (%s)", fields.String())
	}

	if !expectError && err != nil {
		t.Errorf("No error was expected, but received '%v' (%s)", err, fields.String())
	}

	return !expectError
}

// ErrorIs fails the test if err does not wrap the target error.
// It returns true if the assertion holds.
func ErrorIs(t *testing.T, target, err error, fields Fields) bool {
	t.Helper()

	if err == nil {
		t.Errorf("Expected '%v', but received 'nil' (%s)", target, fields.String())
		return false
	}

	if !errors.Is(err, target) {
		t.Errorf("Expected '%v', but received '%v' (%s)", target, err, fields.String())
		return false
	}
	return true
}
