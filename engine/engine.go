// Package engine defines the matching-engine capability consumed by the
// rxreg registry: pattern compilation, capture metadata, execution, an
// optional deferred optimization ("study") step, and resource release.
//
// The registry treats every engine as a black box behind two interfaces:
//   - Engine: compiles patterns and reports whether its matchers can be studied
//   - Matcher: executes a compiled pattern and exposes capture metadata
//
// Adapters for concrete engines live in subpackages (stdre, pcre, coreg,
// re2) and register themselves by name so a configuration surface can
// select a backend the way database/sql selects a driver:
//
//	import _ "github.com/coregx/rxreg/engine/pcre"
//
//	eng, err := engine.Open("pcre")
package engine

import (
	"fmt"
	"sort"
	"time"
)

// Options carries the portable compile-time flags every adapter understands.
// Flags an engine cannot express are reported as a compile error by that
// adapter rather than silently ignored.
type Options struct {
	// CaseInsensitive makes letters match both cases ((?i)).
	CaseInsensitive bool

	// Multiline makes ^ and $ match at line boundaries ((?m)).
	Multiline bool

	// DotAll makes . match newlines ((?s)).
	DotAll bool

	// MatchTimeout bounds a single Execute call for engines that support
	// execution deadlines (the pcre adapter). Zero means no bound.
	// Engines without deadline support ignore it.
	MatchTimeout time.Duration
}

// InlineFlags renders the boolean options as an inline flag group ("(?ims)")
// suitable for prefixing onto a pattern in stdlib-compatible syntax.
// Returns "" when no flag is set.
func (o Options) InlineFlags() string {
	flags := ""
	if o.CaseInsensitive {
		flags += "i"
	}
	if o.Multiline {
		flags += "m"
	}
	if o.DotAll {
		flags += "s"
	}
	if flags == "" {
		return ""
	}
	return "(?" + flags + ")"
}

// Engine compiles patterns into matchers.
type Engine interface {
	// Name returns the backend name used for registration and diagnostics.
	Name() string

	// Compile turns a pattern plus options into a Matcher.
	// Malformed patterns are reported as *CompileError; the pattern need
	// not be pre-validated by the caller.
	Compile(pattern string, opts Options) (Matcher, error)

	// StudySupported reports whether matchers produced by this engine
	// implement the Studier optimization step. It is a capability probe,
	// not a per-pattern promise: Study may still fail for individual
	// patterns.
	StudySupported() bool
}

// Matcher is one compiled pattern. A Matcher is owned by whoever received
// it from Compile until Close is called. Once the startup study phase has
// completed, a Matcher must be treated as read-only and is then safe for
// concurrent Execute calls unless the adapter documents otherwise.
type Matcher interface {
	// Execute runs the matcher against subject and reports whether it
	// matched. A non-nil error is an engine execution failure (wrapped in
	// *ExecError when the engine supplies a numeric code), never "no match".
	Execute(subject string) (bool, error)

	// CaptureCount returns the number of capturing groups in the pattern,
	// not counting the implicit whole-match group.
	CaptureCount() int

	// NamedCaptures returns a name-to-group-index table, or nil when the
	// pattern has no named groups. Building the table may be expensive;
	// callers should skip it when CaptureCount is zero.
	NamedCaptures() map[string]int

	// Close releases the compiled pattern. The Matcher must not be used
	// afterwards.
	Close() error
}

// Studier is implemented by matchers whose engine supports the deferred
// post-compile optimization step. A Study failure leaves the matcher fully
// usable in its unoptimized form.
type Studier interface {
	Study() error
}

// ExecError is an engine execution failure carrying the engine-specific
// numeric code, when one exists.
type ExecError struct {
	// Code is the engine's numeric error code, or CodeUnknown.
	Code int

	// Err is the underlying engine error.
	Err error
}

// CodeUnknown marks execution failures whose engine reports no numeric code.
const CodeUnknown = -1

func (e *ExecError) Error() string {
	if e.Code != CodeUnknown {
		return fmt.Sprintf("engine execution failed: %v (code %d)", e.Err, e.Code)
	}
	return fmt.Sprintf("engine execution failed: %v", e.Err)
}

// Unwrap returns the underlying engine error.
func (e *ExecError) Unwrap() error {
	return e.Err
}

var backends = make(map[string]func() Engine)

// Register makes an engine constructor available under name. It is called
// from adapter init functions and panics on duplicate registration.
func Register(name string, factory func() Engine) {
	if _, dup := backends[name]; dup {
		panic("engine: Register called twice for backend " + name)
	}
	backends[name] = factory
}

// Open returns a new engine for a registered backend name.
func Open(name string) (Engine, error) {
	factory, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("engine: unknown backend %q (registered: %v)", name, Backends())
	}
	return factory(), nil
}

// Backends returns the registered backend names, sorted.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
