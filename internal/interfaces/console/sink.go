package console

import (
	"fmt"
	"io"
	"os"

	"mbxcall/internal/application/port"
	"mbxcall/internal/application/usecase/call"
)

type Sink struct {
	out io.Writer
}

func NewSink() port.Sink { return &Sink{out: os.Stdout} }

// NewSinkTo writes to w instead of stdout.
func NewSinkTo(w io.Writer) port.Sink { return &Sink{out: w} }

func (s *Sink) WriteResult(label string, res *port.Result) error {
	_, err := fmt.Fprintf(s.out, "\n!! %s response:\n%s\n", label, call.Render(res))
	return err
}

func (s *Sink) WriteCommand(line string) error {
	_, err := fmt.Fprintln(s.out, line)
	return err
}
