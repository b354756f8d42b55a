package logfan

import (
	"reflect"
	"strings"

	"github.com/jonboulle/clockwork"
)

// defaultTimeLayout produces "[2012-02-29 09:00:00] " style prefixes.
const defaultTimeLayout = "[2006-01-02 15:04:05] "

// TimePart is the timestamp component of a Format: a Go reference-time
// layout. Its zero value is "unset" and inherits the default layout at
// configure time; an explicitly empty layout produces no timestamp at all.
type TimePart struct {
	set    bool
	layout string
}

// TimeLayout sets the timestamp layout. TimeLayout("") explicitly disables
// the timestamp, which is distinct from leaving the field unset.
func TimeLayout(layout string) TimePart {
	return TimePart{set: true, layout: layout}
}

// CallerPart is the caller component of a Format: either a fixed string or
// a function of the owning instance. The zero value inherits the default
// caller function, which renders the owner's type name followed by ": ".
type CallerPart struct {
	set  bool
	text string
	fn   func(owner any) string
}

// CallerText sets a fixed caller label, used verbatim.
func CallerText(s string) CallerPart {
	return CallerPart{set: true, text: s}
}

// CallerFunc sets a caller function invoked with the owning instance on
// every emitted line.
func CallerFunc(fn func(owner any) string) CallerPart {
	return CallerPart{set: true, fn: fn}
}

// SeverityPart is the severity component of a Format: either a fixed string
// or a function of the integer rank. The zero value inherits the default
// severity function (uppercase labels for named ranks, "Log level <N>: "
// otherwise).
type SeverityPart struct {
	set  bool
	text string
	fn   func(rank int) string
}

// SeverityText sets a fixed severity label, used verbatim.
func SeverityText(s string) SeverityPart {
	return SeverityPart{set: true, text: s}
}

// SeverityFunc sets a severity function invoked with the message rank on
// every emitted line.
func SeverityFunc(fn func(rank int) string) SeverityPart {
	return SeverityPart{set: true, fn: fn}
}

// Format describes the line layout of a Journal. Fields left unset inherit
// the corresponding DefaultFormat value when the Journal is configured.
type Format struct {
	Timestamp TimePart
	Caller    CallerPart
	Severity  SeverityPart
}

// DefaultFormat returns the canonical format:
//
//	[2012-02-29 09:00:00] Dummy: INFO: Hello, world!
func DefaultFormat() Format {
	return Format{
		Timestamp: TimeLayout(defaultTimeLayout),
		Caller:    CallerFunc(ownerTypeName),
		Severity:  SeverityFunc(levelLabel),
	}
}

// ownerTypeName is the default caller function. A nil owner (the package
// default Journal, for instance) renders nothing.
func ownerTypeName(owner any) string {
	if owner == nil {
		return ""
	}
	t := reflect.TypeOf(owner)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name() + ": "
}

// merge fills any unset part of f from def. Explicitly set parts, including
// explicit empty strings, are preserved.
func (f Format) merge(def Format) Format {
	if !f.Timestamp.set {
		f.Timestamp = def.Timestamp
	}
	if !f.Caller.set {
		f.Caller = def.Caller
	}
	if !f.Severity.set {
		f.Severity = def.Severity
	}
	return f
}

// render concatenates timestamp, caller, severity and the raw message, in
// that order with no extra separators, and terminates the line with a
// newline. The clock is the only external input.
func (f Format) render(clock clockwork.Clock, owner any, rank int, msg string) string {
	var b strings.Builder
	b.Grow(len(msg) + 64)
	if f.Timestamp.layout != "" {
		b.WriteString(clock.Now().Format(f.Timestamp.layout))
	}
	if f.Caller.fn != nil {
		b.WriteString(f.Caller.fn(owner))
	} else {
		b.WriteString(f.Caller.text)
	}
	if f.Severity.fn != nil {
		b.WriteString(f.Severity.fn(rank))
	} else {
		b.WriteString(f.Severity.text)
	}
	b.WriteString(msg)
	b.WriteByte('\n')
	return b.String()
}
