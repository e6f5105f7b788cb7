package rxreg

import "github.com/coregx/rxreg/engine"

// Compiled is the result of compiling one pattern: the matcher plus its
// capture-group metadata.
type Compiled struct {
	// Matcher is the compiled pattern. The caller owns it until it is
	// registered or closed.
	Matcher engine.Matcher

	// Source is the pattern text, retained for diagnostics.
	Source string

	// CaptureCount is the number of capturing groups (0 if none).
	CaptureCount int

	// NamedCount is the number of named capturing groups (0 if none).
	NamedCount int

	// Names maps capture names to group indices. Nil unless NamedCount > 0.
	Names map[string]int
}

// Compile turns a pattern plus options into a Compiled via eng.
//
// A pattern with zero captures short-circuits: the name-table query is
// skipped entirely, since it is meaningless there and potentially expensive.
// Compile failures are returned as *CompileError.
func Compile(eng engine.Engine, pattern string, opts engine.Options) (*Compiled, error) {
	m, err := eng.Compile(pattern, opts)
	if err != nil {
		return nil, err
	}

	c := &Compiled{Matcher: m, Source: pattern}

	c.CaptureCount = m.CaptureCount()
	if c.CaptureCount == 0 {
		return c, nil
	}

	c.Names = m.NamedCaptures()
	c.NamedCount = len(c.Names)
	return c, nil
}
