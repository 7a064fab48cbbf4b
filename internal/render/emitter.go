package render

import (
	"io"

	"github.com/nao1215/salesreport/internal/model"
)

// Emitter delivers a rendered report to a destination.
// Rendering has already happened; an Emitter only moves bytes.
type Emitter interface {
	// Emit writes the report body. Withheld and empty reports produce no output.
	Emit(report *model.Report) (int, error)
}

// StreamEmitter writes report bodies to an io.Writer, one per line.
type StreamEmitter struct {
	output io.Writer
}

// NewStreamEmitter creates an Emitter for w.
func NewStreamEmitter(w io.Writer) *StreamEmitter {
	return &StreamEmitter{output: w}
}

// Emit implements Emitter.
func (e *StreamEmitter) Emit(report *model.Report) (int, error) {
	if report.IsEmpty() {
		return 0, nil
	}
	body := report.Body
	if body[len(body)-1] != '\n' {
		body += "\n"
	}
	return io.WriteString(e.output, body)
}

// MultiEmitter emits to several Emitters in order.
// This is useful for writing to both the terminal and a file.
type MultiEmitter struct {
	emitters []Emitter
}

// NewMultiEmitter creates an Emitter that forwards to all provided Emitters.
func NewMultiEmitter(emitters ...Emitter) *MultiEmitter {
	return &MultiEmitter{emitters: emitters}
}

// Emit writes the report to every Emitter and returns the total bytes written.
// Stops on the first error.
func (m *MultiEmitter) Emit(report *model.Report) (int, error) {
	var total int
	for _, e := range m.emitters {
		n, err := e.Emit(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
