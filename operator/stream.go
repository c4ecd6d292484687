package operator

import (
	"bufio"
	"context"
	"io"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/xitonix/xenigma/alphabet"
	"github.com/xitonix/xenigma/enigma"
)

const defaultBufferSize = 1024

// foldAccents turns "Ä" into "A" and "é" into "e" by dropping the combining marks
func foldAccents() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

func processData(ctx context.Context, input io.Reader, output io.Writer, bufferSize int, machine *enigma.Machine, options Options) (Status, error) {
	if machine == nil {
		return Failed, errNoMachine
	}
	reader := bufio.NewReaderSize(transform.NewReader(input, foldAccents()), bufferSize)
	writer := bufio.NewWriterSize(output, bufferSize)

	group := options.GroupSize
	if options.Filter == Keep {
		group = 0
	}

	var read, letters int
	for {
		if read%bufferSize == 0 && ctx.Err() != nil {
			if err := writer.Flush(); err != nil {
				return Failed, err
			}
			return Cancelled, nil
		}
		r, _, err := reader.ReadRune()
		if err != nil {
			if err == io.EOF {
				break
			}
			return Failed, err
		}
		read++

		s, err := alphabet.FromRune(unicode.ToUpper(r))
		if err != nil {
			if options.Filter == Keep {
				writer.WriteRune(r)
			} else if options.Filter == Strict && !unicode.IsSpace(r) {
				writer.Flush()
				return Failed, err
			}
			continue
		}

		if group > 0 && letters > 0 && letters%group == 0 {
			writer.WriteByte(' ')
		}
		// bufio.Writer errors are sticky and surface on Flush
		writer.WriteByte(machine.Encipher(s).Letter())
		letters++
	}

	if err := writer.Flush(); err != nil {
		return Failed, err
	}
	return Completed, nil
}

func fixBufferSize(bufferSize int) int {
	if bufferSize <= 0 {
		return defaultBufferSize
	}
	return bufferSize
}
