// Package logfan provides a minimalist, embeddable logging facility with
// configurable severity levels, formatted output, and lazy multi-destination
// fan-out.
//
// Key features:
//   - Five named severity ranks (critical, error, warning, info, debug) plus
//     arbitrary integer "custom" ranks
//   - Per-field formatting: timestamp layout, caller label, and severity
//     label, each a fixed string or a computed function
//   - Ordered sink lists with lazily-materialized destinations
//   - Automatic in-memory capture under `go test`, so suppressed output
//     stays inspectable
//   - Forward mode delegating to an external structured logger such as
//     *zap.SugaredLogger
//   - Package-level default Journal and embeddable instances
package logfan

import (
	"fmt"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
)

// ErrNotConfigured is reported by Log when the Journal has never been
// configured. It indicates an integration error, not a transient condition.
var ErrNotConfigured = errors.New("logfan: journal not configured")

// Journal is a logging dispatcher: an ordered sink list, a filtering
// threshold, and a line format. The zero value is unconfigured and rejects
// Log calls; embed one and call Configure, or build a ready instance with
// New. A Journal owns its sinks and format exclusively.
type Journal struct {
	mu         sync.Mutex
	owner      any
	configured bool
	sinks      []Sink
	threshold  any
	format     Format
	env        Environment
	clock      clockwork.Clock
	capture    *Capture
}

type config struct {
	sinks       []Sink
	threshold   any
	format      Format
	suppression bool
	owner       any
	ownerSet    bool
	env         Environment
	clock       clockwork.Clock
}

// Option customizes a single Configure call. Options not supplied fall back
// to their defaults on every call, so re-configuring re-applies defaults for
// anything left out.
type Option func(*config)

// WithSinks sets the ordered sink list. The default is the single standard
// output sink. An empty list is legal and discards all output. The list is
// ignored when the environment is a test environment and suppression is not
// overridden.
func WithSinks(sinks ...Sink) Option {
	return func(c *config) {
		c.sinks = sinks
	}
}

// WithThreshold sets the filtering threshold: a Severity, an integer rank,
// or a level name. Messages with a rank numerically above it are discarded.
// The default is LevelInfo.
func WithThreshold(level any) Option {
	return func(c *config) {
		c.threshold = level
	}
}

// WithFormat sets the line format. Parts left unset inherit DefaultFormat;
// explicitly empty parts are kept as given.
func WithFormat(f Format) Option {
	return func(c *config) {
		c.format = f
	}
}

// WithSuppressionOverride, when true, installs the supplied sink list even
// under a test environment instead of the in-memory Capture sink.
func WithSuppressionOverride(override bool) Option {
	return func(c *config) {
		c.suppression = override
	}
}

// WithOwner sets the instance the Journal is attached to. The default caller
// function renders the owner's type name. When absent, a previously
// configured owner is kept.
func WithOwner(owner any) Option {
	return func(c *config) {
		c.owner = owner
		c.ownerSet = true
	}
}

// WithEnvironment replaces the detected environment, including the forward
// mode collaborator.
func WithEnvironment(env Environment) Option {
	return func(c *config) {
		c.env = env
	}
}

// WithClock replaces the clock used for timestamps. The default is the real
// clock; tests install a clockwork fake.
func WithClock(clock clockwork.Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// New returns a Journal attached to owner, already configured with the given
// options. Types that embed a Journal directly must call Configure on it
// themselves before logging.
func New(owner any, opts ...Option) *Journal {
	j := &Journal{}
	j.Configure(append([]Option{WithOwner(owner)}, opts...)...)
	return j
}

// Configure installs the Journal's sinks, threshold, and format, and marks
// it configured. Calling it again is allowed and simply re-applies
// configuration.
//
// Under a test environment without a suppression override, the supplied sink
// list is ignored and a single Capture sink is installed instead, reachable
// through Captured. Threshold and format are installed regardless.
func (j *Journal) Configure(opts ...Option) {
	cfg := config{
		sinks:     []Sink{Stdout()},
		threshold: LevelInfo,
		env:       DetectEnvironment(),
		clock:     clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if cfg.ownerSet {
		j.owner = cfg.owner
	}
	j.threshold = cfg.threshold
	j.format = cfg.format.merge(DefaultFormat())
	j.env = cfg.env
	j.clock = cfg.clock
	if cfg.env.Testing && !cfg.suppression {
		j.capture = &Capture{}
		j.sinks = []Sink{Writer(j.capture)}
	} else {
		j.capture = nil
		j.sinks = cfg.sinks
	}
	j.configured = true
}

// SetThreshold replaces the filtering threshold for all subsequent Log
// calls. The value is stored as given and canonicalized on each call, so
// both names and integer ranks are accepted; already-emitted output is
// unaffected.
func (j *Journal) SetThreshold(level any) {
	j.mu.Lock()
	j.threshold = level
	j.mu.Unlock()
}

// Threshold returns the current threshold as it was stored.
func (j *Journal) Threshold() any {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.threshold
}

// Captured returns the in-memory sink installed under test capture, or nil
// when the Journal writes to real destinations.
func (j *Journal) Captured() *Capture {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.capture
}

// Log emits msg at the given level, which may be a Severity, an integer
// rank, or a level name. Messages ranked numerically above the threshold are
// discarded silently.
//
// In forward mode the standard output sink is served by the collaborator:
// the rank is clamped into the named range and the unformatted message goes
// to the rank-named method, but only when the standard output sink is
// present in the configured list. All other sinks receive the formatted line
// through the lazy fan-out. Sink write errors propagate unchanged.
func (j *Journal) Log(level any, msg string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if !j.configured {
		return errors.Wrap(ErrNotConfigured, "log before configure")
	}
	rank, err := LevelToInt(level)
	if err != nil {
		return err
	}
	limit, err := LevelToInt(j.threshold)
	if err != nil {
		return err
	}
	if rank > limit {
		return nil
	}
	line := j.format.render(j.clock, j.owner, rank, msg)
	forwarding := j.env.Forwarder != nil
	if forwarding && hasDefault(j.sinks) {
		forward(j.env.Forwarder, rank, msg)
	}
	return writeAll(j.sinks, line, forwarding)
}

// Logf emits a formatted message at the given level.
func (j *Journal) Logf(level any, format string, args ...any) error {
	return j.Log(level, fmt.Sprintf(format, args...))
}

// Debug logs msg at the debug rank.
func (j *Journal) Debug(msg string) error {
	return j.Log(LevelDebug, msg)
}

// Debugf logs a formatted message at the debug rank.
func (j *Journal) Debugf(format string, args ...any) error {
	return j.Log(LevelDebug, fmt.Sprintf(format, args...))
}

// Info logs msg at the info rank.
func (j *Journal) Info(msg string) error {
	return j.Log(LevelInfo, msg)
}

// Infof logs a formatted message at the info rank.
func (j *Journal) Infof(format string, args ...any) error {
	return j.Log(LevelInfo, fmt.Sprintf(format, args...))
}

// Warn logs msg at the warning rank.
func (j *Journal) Warn(msg string) error {
	return j.Log(LevelWarning, msg)
}

// Warnf logs a formatted message at the warning rank.
func (j *Journal) Warnf(format string, args ...any) error {
	return j.Log(LevelWarning, fmt.Sprintf(format, args...))
}

// Error logs msg at the error rank.
func (j *Journal) Error(msg string) error {
	return j.Log(LevelError, msg)
}

// Errorf logs a formatted message at the error rank.
func (j *Journal) Errorf(format string, args ...any) error {
	return j.Log(LevelError, fmt.Sprintf(format, args...))
}

// Fatal logs msg at the critical rank. Despite the name it does not
// terminate the process; in forward mode the collaborator's Fatal method
// decides what happens next.
func (j *Journal) Fatal(msg string) error {
	return j.Log(LevelCritical, msg)
}

// Fatalf logs a formatted message at the critical rank.
func (j *Journal) Fatalf(format string, args ...any) error {
	return j.Log(LevelCritical, fmt.Sprintf(format, args...))
}

var (
	defaultMu      sync.Mutex
	defaultJournal *Journal
)

// Default returns the shared package-level Journal, configuring it with
// defaults on first use. Ad hoc logging not tied to any instance goes
// through it.
func Default() *Journal {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultJournal == nil {
		defaultJournal = &Journal{}
		defaultJournal.Configure()
	}
	return defaultJournal
}

// Configure reconfigures the shared package-level Journal.
func Configure(opts ...Option) {
	Default().Configure(opts...)
}

// SetThreshold replaces the shared Journal's threshold.
func SetThreshold(level any) {
	Default().SetThreshold(level)
}

// Log emits msg at the given level through the shared Journal.
func Log(level any, msg string) error {
	return Default().Log(level, msg)
}

// Logf emits a formatted message through the shared Journal.
func Logf(level any, format string, args ...any) error {
	return Default().Logf(level, format, args...)
}

// Debug logs msg at the debug rank through the shared Journal.
func Debug(msg string) error {
	return Default().Debug(msg)
}

// Debugf logs a formatted message at the debug rank through the shared Journal.
func Debugf(format string, args ...any) error {
	return Default().Debugf(format, args...)
}

// Info logs msg at the info rank through the shared Journal.
func Info(msg string) error {
	return Default().Info(msg)
}

// Infof logs a formatted message at the info rank through the shared Journal.
func Infof(format string, args ...any) error {
	return Default().Infof(format, args...)
}

// Warn logs msg at the warning rank through the shared Journal.
func Warn(msg string) error {
	return Default().Warn(msg)
}

// Warnf logs a formatted message at the warning rank through the shared Journal.
func Warnf(format string, args ...any) error {
	return Default().Warnf(format, args...)
}

// Error logs msg at the error rank through the shared Journal.
func Error(msg string) error {
	return Default().Error(msg)
}

// Errorf logs a formatted message at the error rank through the shared Journal.
func Errorf(format string, args ...any) error {
	return Default().Errorf(format, args...)
}

// Fatal logs msg at the critical rank through the shared Journal.
func Fatal(msg string) error {
	return Default().Fatal(msg)
}

// Fatalf logs a formatted message at the critical rank through the shared Journal.
func Fatalf(format string, args ...any) error {
	return Default().Fatalf(format, args...)
}
