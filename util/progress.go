package util

import (
	"io"
	"os"

	"github.com/gosuri/uilive"
	"github.com/mattn/go-isatty"
)

// ProgressWriter receives the progress lines of a running experiment
type ProgressWriter struct {
	io.Writer
	live *uilive.Writer
}

// NewProgressWriter returns a writer for progress lines on out. On a
// terminal every line replaces the previous one through a live writer,
// otherwise lines are passed through. A nil out discards everything.
func NewProgressWriter(out *os.File) *ProgressWriter {
	if out == nil {
		return &ProgressWriter{Writer: io.Discard}
	}
	if !isatty.IsTerminal(out.Fd()) && !isatty.IsCygwinTerminal(out.Fd()) {
		return &ProgressWriter{Writer: out}
	}
	writer := uilive.New()
	writer.Out = out
	return &ProgressWriter{Writer: writer, live: writer}
}

func (p *ProgressWriter) Start() {
	if p.live != nil {
		p.live.Start()
	}
}

// Stop flushes pending output and stops the live writer
func (p *ProgressWriter) Stop() {
	if p.live != nil {
		p.live.Stop()
	}
}

func (p *ProgressWriter) Live() bool {
	return p.live != nil
}
