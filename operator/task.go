package operator

import (
	"io"
	"sync"
)

// Operation represents the operation which needs to be done by a Task
type Operation int8

const (
	// Encode encipher mode
	Encode Operation = iota
	// Decode decipher mode
	Decode
)

func (o Operation) String() string {
	if o == Decode {
		return "decode"
	}
	return "encode"
}

// Task is a unit of encipher/decipher work
type Task struct {
	mode    Operation
	options Options
	input   io.Reader

	status Status

	mux        sync.Mutex
	inProgress bool
	outputs    []io.Writer
}

// NewTask creates a new Task object
func NewTask(mode Operation, options Options, input io.Reader, output io.Writer) *Task {
	return &Task{
		mode:    mode,
		options: options,
		input:   input,
		outputs: []io.Writer{output},
		status:  Queued,
	}
}

// Mode returns the operation of the task
func (t *Task) Mode() Operation {
	return t.mode
}

// AddOutput adds a new new output to the Task
// Calling this function on an in-progress Task will return ErrOperationInProgress error
func (t *Task) AddOutput(output io.Writer) error {
	t.mux.Lock()
	defer t.mux.Unlock()
	if t.inProgress {
		return ErrOperationInProgress
	}
	t.outputs = append(t.outputs, output)
	return nil
}

// CloseInput closes the input Reader.
// If the reader is not a io.Closer, calling this function will have no effect
// Calling this function on an in-progress Task will return ErrOperationInProgress error
func (t *Task) CloseInput() error {
	t.mux.Lock()
	defer t.mux.Unlock()
	if t.inProgress {
		return ErrOperationInProgress
	}
	if input, ok := t.input.(io.Closer); ok && input != nil {
		return input.Close()
	}
	return nil
}

// CloseOutputs closes all the output Writers.
// If the output is not a io.Closer, calling this function will have no effect
// Calling this function on an in-progress Task will return ErrOperationInProgress error
func (t *Task) CloseOutputs() error {
	t.mux.Lock()
	defer t.mux.Unlock()
	if t.inProgress {
		return ErrOperationInProgress
	}
	for _, out := range t.outputs {
		if output, ok := out.(io.Closer); ok && output != nil {
			if err := output.Close(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Status returns the current status of the task
func (t *Task) Status() Status {
	t.mux.Lock()
	defer t.mux.Unlock()
	return t.status
}

func (t *Task) markAsInProgress() {
	t.mux.Lock()
	defer t.mux.Unlock()
	t.inProgress = true
	t.status = InProgress
}

func (t *Task) markAsComplete(status Status) {
	t.mux.Lock()
	defer t.mux.Unlock()
	t.status = status
	t.inProgress = false
}

func (t *Task) writers() []io.Writer {
	t.mux.Lock()
	defer t.mux.Unlock()
	return append([]io.Writer(nil), t.outputs...)
}
