// Package pcre adapts github.com/dlclark/regexp2, a Perl/.NET-compatible
// backtracking engine.
//
// Unlike the stdlib backend, execution here can actually fail: regexp2
// enforces an optional per-match deadline (Options.MatchTimeout) and
// reports exceeding it as an error, which rxreg surfaces as an engine
// execution failure. The engine does not support the study step.
//
// regexp2 matchers serialize their internal runner; concurrent Execute
// calls on one Matcher are safe but run one at a time.
package pcre

import (
	"strconv"

	"github.com/dlclark/regexp2"

	"github.com/coregx/rxreg/engine"
)

func init() {
	engine.Register("pcre", func() engine.Engine { return New() })
}

// Engine compiles patterns with regexp2.
type Engine struct{}

// New returns the regexp2-backed engine.
func New() *Engine {
	return &Engine{}
}

// Name implements engine.Engine.
func (*Engine) Name() string { return "pcre" }

// StudySupported implements engine.Engine. A backtracking engine gains
// nothing from the literal-prefilter study, so the capability is absent.
func (*Engine) StudySupported() bool { return false }

// Compile implements engine.Engine.
func (*Engine) Compile(pattern string, opts engine.Options) (engine.Matcher, error) {
	var ropts regexp2.RegexOptions
	if opts.CaseInsensitive {
		ropts |= regexp2.IgnoreCase
	}
	if opts.Multiline {
		ropts |= regexp2.Multiline
	}
	if opts.DotAll {
		ropts |= regexp2.Singleline
	}
	re, err := regexp2.Compile(pattern, ropts)
	if err != nil {
		return nil, &engine.CompileError{
			Pattern: pattern,
			Message: err.Error(),
			Offset:  engine.NoOffset,
			Err:     err,
		}
	}
	if opts.MatchTimeout > 0 {
		re.MatchTimeout = opts.MatchTimeout
	}
	return &Matcher{re: re}, nil
}

// Matcher is a compiled regexp2 pattern.
type Matcher struct {
	re *regexp2.Regexp
}

// Execute implements engine.Matcher. A timeout or internal engine failure
// is returned as *engine.ExecError.
func (m *Matcher) Execute(subject string) (bool, error) {
	ok, err := m.re.MatchString(subject)
	if err != nil {
		return false, &engine.ExecError{Code: engine.CodeUnknown, Err: err}
	}
	return ok, nil
}

// CaptureCount implements engine.Matcher. Group 0 (the whole match) is not
// counted.
func (m *Matcher) CaptureCount() int {
	return len(m.re.GetGroupNumbers()) - 1
}

// NamedCaptures implements engine.Matcher. regexp2 reports unnamed groups
// under their number's decimal spelling; only genuinely named groups enter
// the table.
func (m *Matcher) NamedCaptures() map[string]int {
	var names map[string]int
	for _, name := range m.re.GetGroupNames() {
		n := m.re.GroupNumberFromName(name)
		if name == strconv.Itoa(int(n)) {
			continue
		}
		if names == nil {
			names = make(map[string]int)
		}
		names[name] = int(n)
	}
	return names
}

// Close implements engine.Matcher.
func (m *Matcher) Close() error {
	m.re = nil
	return nil
}
