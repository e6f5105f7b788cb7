//go:build re2

// Package re2 adapts github.com/wasilibs/go-re2, which runs Google's RE2
// compiled to WebAssembly.
//
// The backend is heavyweight (it embeds a multi-megabyte wasm module), so
// like a cgo-gated engine it is only compiled in when explicitly requested:
//
//	go build -tags re2
//
// Default builds do not register the backend and engine.Open("re2") fails.
package re2

import (
	re2 "github.com/wasilibs/go-re2"

	"github.com/coregx/rxreg/engine"
)

func init() {
	engine.Register("re2", func() engine.Engine { return New() })
}

// Engine compiles patterns with go-re2.
type Engine struct{}

// New returns the go-re2 backed engine.
func New() *Engine {
	return &Engine{}
}

// Name implements engine.Engine.
func (*Engine) Name() string { return "re2" }

// StudySupported implements engine.Engine. RE2 optimizes at compile time.
func (*Engine) StudySupported() bool { return false }

// Compile implements engine.Engine.
func (*Engine) Compile(pattern string, opts engine.Options) (engine.Matcher, error) {
	re, err := re2.Compile(opts.InlineFlags() + pattern)
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

// Matcher is a compiled go-re2 pattern.
type Matcher struct {
	re *re2.Regexp
}

// Execute implements engine.Matcher.
func (m *Matcher) Execute(subject string) (bool, error) {
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

// Close implements engine.Matcher. The wasm-side pattern is released by a
// finalizer; Close only severs the reference.
func (m *Matcher) Close() error {
	m.re = nil
	return nil
}
