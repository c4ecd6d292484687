package operator

import "github.com/xitonix/xenigma/enigma"

// Keyring builds a machine set up with a daily key.
// settings.Settings is the usual implementation.
type Keyring interface {
	Machine() (*enigma.Machine, error)
}

// CallbackFunc is a callback function which will get called by the engine once
// the processing of a work unit has been finished
type CallbackFunc func(*WorkUnit)

// MetadataMap free form details the tap attaches to a work unit
type MetadataMap map[string]interface{}

// WorkUnit is a unit of encipher/decipher work
type WorkUnit struct {
	Task     *Task
	Metadata MetadataMap
	// Error the error the processing of the task has been finished with
	Error error

	keyring  Keyring
	callback CallbackFunc
}

// NewWorkUnit creates a new work unit
func NewWorkUnit(t *Task, keyring Keyring, c CallbackFunc) *WorkUnit {
	return &WorkUnit{
		Task:     t,
		Metadata: make(MetadataMap),
		keyring:  keyring,
		callback: c,
	}
}

func (w *WorkUnit) callBack() {
	if w.callback != nil {
		w.callback(w)
	}
}
