package logfan

import (
	"flag"
	"os"
	"strings"
	"sync"
)

// Forwarder is the external structured-logging collaborator used in forward
// mode, exposing one method per named rank. *zap.SugaredLogger satisfies it;
// the facility never constructs a Forwarder, only calls the one it is given.
type Forwarder interface {
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Fatal(args ...any)
}

// Environment carries the ambient conditions a Journal is configured under.
// It is injected at Configure time rather than read from mutable process
// globals, so tests can vary it freely.
type Environment struct {
	// Testing routes output into an in-memory Capture sink unless the
	// configuration overrides suppression.
	Testing bool

	// Forwarder, when non-nil, activates forward mode: messages bound for
	// the standard output sink go to this collaborator instead of the
	// generic fan-out.
	Forwarder Forwarder
}

var (
	detectOnce sync.Once
	detected   Environment
)

// DetectEnvironment returns the ambient environment, probing for the Go test
// harness exactly once per process. It is the default environment installed
// by Configure.
func DetectEnvironment() Environment {
	detectOnce.Do(func() {
		detected = Environment{Testing: underGoTest()}
	})
	return detected
}

func underGoTest() bool {
	if flag.Lookup("test.v") != nil {
		return true
	}
	return strings.HasSuffix(os.Args[0], ".test") ||
		strings.HasSuffix(os.Args[0], ".test.exe")
}

// forward clamps rank into the named range and calls the collaborator's
// rank-named method with the unformatted message.
func forward(f Forwarder, rank int, msg string) {
	if rank < int(LevelCritical) {
		rank = int(LevelCritical)
	}
	if rank > int(LevelDebug) {
		rank = int(LevelDebug)
	}
	switch Severity(rank) {
	case LevelCritical:
		f.Fatal(msg)
	case LevelError:
		f.Error(msg)
	case LevelWarning:
		f.Warn(msg)
	case LevelInfo:
		f.Info(msg)
	default:
		f.Debug(msg)
	}
}
