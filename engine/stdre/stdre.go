// Package stdre adapts the standard library regexp engine.
//
// This is the default backend: always available, stdlib RE2 semantics, and
// the only bundled backend whose matchers support the deferred study step
// (a literal prefilter attached at process start; see internal/study).
package stdre

import (
	"regexp"
	"regexp/syntax"
	"strings"

	"github.com/coregx/rxreg/engine"
	"github.com/coregx/rxreg/internal/study"
)

func init() {
	engine.Register("std", func() engine.Engine { return New() })
}

// Engine compiles patterns with stdlib regexp.
type Engine struct{}

// New returns the stdlib engine.
func New() *Engine {
	return &Engine{}
}

// Name implements engine.Engine.
func (*Engine) Name() string { return "std" }

// StudySupported implements engine.Engine. Stdlib matchers accept a
// literal-prefilter study.
func (*Engine) StudySupported() bool { return true }

// Compile implements engine.Engine.
func (*Engine) Compile(pattern string, opts engine.Options) (engine.Matcher, error) {
	full := opts.InlineFlags() + pattern
	re, err := regexp.Compile(full)
	if err != nil {
		return nil, compileError(pattern, err)
	}
	return &Matcher{re: re, source: full}, nil
}

// compileError maps a stdlib syntax error onto engine.CompileError,
// recovering a byte offset where the offending subexpression text can be
// located in the pattern.
func compileError(pattern string, err error) *engine.CompileError {
	ce := &engine.CompileError{
		Pattern: pattern,
		Message: err.Error(),
		Offset:  engine.NoOffset,
		Err:     err,
	}
	serr, ok := err.(*syntax.Error)
	if !ok {
		return ce
	}
	ce.Message = string(serr.Code)
	switch {
	case serr.Code == syntax.ErrTrailingBackslash:
		// The failure is at the very end of the pattern.
		ce.Offset = len(pattern)
	case serr.Expr != "":
		if i := strings.Index(pattern, serr.Expr); i >= 0 {
			ce.Offset = i
		}
	}
	return ce
}

// Matcher is a compiled stdlib pattern, optionally carrying a prefilter
// attached by Study. The prefilter is written only during the
// single-threaded startup phase; afterwards the matcher is read-only and
// safe for concurrent Execute calls.
type Matcher struct {
	re     *regexp.Regexp
	source string
	pf     *study.Prefilter
}

// Execute implements engine.Matcher. It never fails: stdlib execution has
// no error conditions.
func (m *Matcher) Execute(subject string) (bool, error) {
	if m.pf != nil && !m.pf.MaybeMatch(subject) {
		return false, nil
	}
	return m.re.MatchString(subject), nil
}

// CaptureCount implements engine.Matcher.
func (m *Matcher) CaptureCount() int {
	return m.re.NumSubexp()
}

// NamedCaptures implements engine.Matcher.
func (m *Matcher) NamedCaptures() map[string]int {
	var names map[string]int
	for i, name := range m.re.SubexpNames() {
		if name == "" {
			continue
		}
		if names == nil {
			names = make(map[string]int)
		}
		names[name] = i
	}
	return names
}

// Study implements engine.Studier by attaching a literal prefilter.
// Patterns without required literals return study.ErrNoLiterals and remain
// usable unoptimized.
func (m *Matcher) Study() error {
	pf, err := study.Compile(m.source)
	if err != nil {
		return err
	}
	m.pf = pf
	return nil
}

// Studied reports whether a prefilter is attached, for diagnostics and
// tests.
func (m *Matcher) Studied() bool {
	return m.pf != nil
}

// Close implements engine.Matcher. Stdlib patterns are garbage collected;
// Close only severs the reference.
func (m *Matcher) Close() error {
	m.re = nil
	m.pf = nil
	return nil
}
