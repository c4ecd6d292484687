package operator

import (
	"errors"
	"testing"

	"github.com/xitonix/xenigma/enigma"
	"github.com/xitonix/xenigma/settings"
)

var errJammed = errors.New("jammed")

type brokenKeyring struct{}

func (brokenKeyring) Machine() (*enigma.Machine, error) {
	return nil, errJammed
}

// dailyKey B | I II III | 01 01 01 | AAA
func dailyKey(t testing.TB) settings.Settings {
	t.Helper()
	key, err := settings.Parse("B", "I II III", "AAA", "AAA", "")
	if err != nil {
		t.Fatalf("failed to parse the key: %v", err)
	}
	return key
}

func testMachine(t testing.TB) *enigma.Machine {
	t.Helper()
	m, err := dailyKey(t).Machine()
	if err != nil {
		t.Fatalf("failed to build the machine: %v", err)
	}
	return m
}
