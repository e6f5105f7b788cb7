// Package coreg adapts github.com/coregx/coregex, a multi-engine regex
// implementation with literal prefiltering and a lazy DFA built in.
//
// Because coregex selects and builds its own acceleration strategies at
// compile time, there is nothing left for the deferred study step to add;
// the engine reports the capability as absent.
package coreg

import (
	"github.com/coregx/coregex"

	"github.com/coregx/rxreg/engine"
)

func init() {
	engine.Register("coregex", func() engine.Engine { return New() })
}

// Engine compiles patterns with coregex.
type Engine struct{}

// New returns the coregex-backed engine.
func New() *Engine {
	return &Engine{}
}

// Name implements engine.Engine.
func (*Engine) Name() string { return "coregex" }

// StudySupported implements engine.Engine.
func (*Engine) StudySupported() bool { return false }

// Compile implements engine.Engine. Option flags are applied as an inline
// flag group; coregex shares stdlib syntax.
func (*Engine) Compile(pattern string, opts engine.Options) (engine.Matcher, error) {
	re, err := coregex.Compile(opts.InlineFlags() + pattern)
	if err != nil {
		return nil, &engine.CompileError{
			Pattern: pattern,
			Message: err.Error(),
			Offset:  engine.NoOffset,
			Err:     err,
		}
	}
	return &Matcher{re: re}, nil
}

// Matcher is a compiled coregex pattern.
type Matcher struct {
	re *coregex.Regex
}

// Execute implements engine.Matcher. coregex execution has no error
// conditions.
func (m *Matcher) Execute(subject string) (bool, error) {
	return m.re.MatchString(subject), nil
}

// CaptureCount implements engine.Matcher. coregex's NumSubexp counts the
// implicit whole-match group 0, unlike stdlib regexp; subtract it so only
// explicit capture groups are reported.
func (m *Matcher) CaptureCount() int {
	return m.re.NumSubexp() - 1
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

// Close implements engine.Matcher.
func (m *Matcher) Close() error {
	m.re = nil
	return nil
}
