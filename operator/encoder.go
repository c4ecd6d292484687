package operator

import (
	"context"
	"io"

	"github.com/xitonix/xenigma/enigma"
)

// Encoder is the type that enciphers an io.Reader into one or more io.Writer outputs using the specified machine
type Encoder struct {
	input      io.Reader
	output     io.Writer
	bufferSize int
	machine    *enigma.Machine
	options    Options
}

// NewEncoder creates a new Encoder object.
// The machine keeps stepping, so the encoder must be its only user for the duration of the operation.
func NewEncoder(bufferSize int, machine *enigma.Machine, options Options, input io.Reader, outputs ...io.Writer) *Encoder {
	return &Encoder{
		input:      input,
		output:     io.MultiWriter(outputs...),
		bufferSize: fixBufferSize(bufferSize),
		machine:    machine,
		options:    options,
	}
}

// Encode enciphers the io.Reader into the specified io.Writer outputs.
// This methods will return an error if there is no machine, the input contains an invalid character in Strict mode,
// or reading/writing fails
func (e *Encoder) Encode() (Status, error) {
	return e.EncodeContext(context.Background())
}

// EncodeContext enciphers the io.Reader into the specified io.Writer outputs and receives cancellation signal on the context parameter.
// Everything enciphered before the cancellation is flushed to the outputs.
func (e *Encoder) EncodeContext(ctx context.Context) (Status, error) {
	return processData(ctx, e.input, e.output, e.bufferSize, e.machine, e.options)
}
