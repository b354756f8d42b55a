package logfan

import (
	"io"
	"os"
	"sync"
)

type sinkKind int

const (
	sinkWriter sinkKind = iota
	sinkFactory
	sinkStdout
)

// Sink is one output destination of a Journal: a ready writer, a factory
// invoked on first use, or the process standard output stream. The standard
// output stream carries an explicit tag so dispatch can recognize it without
// comparing writer identities against os.Stdout.
type Sink struct {
	kind    sinkKind
	w       io.Writer
	factory func() io.Writer
}

// Writer returns a sink backed by a ready writer.
func Writer(w io.Writer) Sink {
	return Sink{kind: sinkWriter, w: w}
}

// Lazy returns a sink whose writer is produced by factory on first use. The
// factory is invoked at most once per Journal; the produced writer is stored
// back into the sink list and reused for every later write. A sink never
// reached by any Log call is never invoked.
func Lazy(factory func() io.Writer) Sink {
	return Sink{kind: sinkFactory, factory: factory}
}

// Stdout returns the default destination: the process standard output
// stream.
func Stdout() Sink {
	return Sink{kind: sinkStdout, w: os.Stdout}
}

// hasDefault reports whether the list contains the standard output sink.
func hasDefault(sinks []Sink) bool {
	for i := range sinks {
		if sinks[i].kind == sinkStdout {
			return true
		}
	}
	return false
}

// writeAll delivers text to every sink in insertion order, materializing
// factory sinks in place as they are first reached. When skipDefault is set
// the standard output sink is excluded; forward mode delivers to it through
// the collaborator instead. Write errors propagate unchanged.
//
// Callers must hold the owning Journal's mutex so the at-most-once factory
// invariant survives concurrent first use.
func writeAll(sinks []Sink, text string, skipDefault bool) error {
	for i := range sinks {
		s := &sinks[i]
		if s.kind == sinkStdout && skipDefault {
			continue
		}
		if s.kind == sinkFactory {
			s.w = s.factory()
			s.factory = nil
			s.kind = sinkWriter
		}
		if _, err := io.WriteString(s.w, text); err != nil {
			return err
		}
	}
	return nil
}

// Capture is an in-memory sink that records every line written to it. One is
// installed as the sole sink when a Journal is configured under the Go test
// harness without a suppression override, so suppressed output stays
// inspectable through Lines.
type Capture struct {
	mu    sync.Mutex
	lines []string
}

func (c *Capture) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, string(p))
	return len(p), nil
}

// Lines returns a copy of every recorded line in write order.
func (c *Capture) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len reports how many lines have been recorded.
func (c *Capture) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// Reset discards everything recorded so far.
func (c *Capture) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}
