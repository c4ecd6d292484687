package operator

import (
	"context"
	"io"

	"github.com/xitonix/xenigma/enigma"
)

// Decoder is the type that deciphers an io.Reader into one or more io.Writer outputs.
// The machine must be set up with the same key the message was enciphered with.
type Decoder struct {
	input      io.Reader
	output     io.Writer
	bufferSize int
	machine    *enigma.Machine
	options    Options
}

// NewDecoder creates a new Decoder object. The grouping option is ignored.
func NewDecoder(bufferSize int, machine *enigma.Machine, options Options, input io.Reader, outputs ...io.Writer) *Decoder {
	options.GroupSize = 0
	return &Decoder{
		input:      input,
		output:     io.MultiWriter(outputs...),
		bufferSize: fixBufferSize(bufferSize),
		machine:    machine,
		options:    options,
	}
}

// Decode deciphers the io.Reader into the specified io.Writer outputs
func (d *Decoder) Decode() (Status, error) {
	return d.DecodeContext(context.Background())
}

// DecodeContext deciphers the io.Reader into the specified io.Writer outputs and receives cancellation signal on the context parameter
func (d *Decoder) DecodeContext(ctx context.Context) (Status, error) {
	return processData(ctx, d.input, d.output, d.bufferSize, d.machine, d.options)
}
