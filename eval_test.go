package rxreg

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/coregx/rxreg/engine"
	"github.com/coregx/rxreg/engine/stdre"
)

// TestFirstMatch tests the ordered first-match-wins evaluation over fake
// matchers, including the short-circuit and engine-failure paths.
func TestFirstMatch(t *testing.T) {
	eng := newFakeEngine(false)
	mk := func(source string) *fakeMatcher {
		m, err := eng.Compile(source, engine.Options{})
		if err != nil {
			t.Fatal(err)
		}
		return m.(*fakeMatcher)
	}

	a := mk("abc") // no match on "xyz"
	b := mk("xyz") // matches "xyz"
	c := mk("qqq") // no match on "xyz"
	bad := mk("boom")
	bad.execErr = &engine.ExecError{Code: -10, Err: errors.New("scratch exhausted")}

	tests := []struct {
		name     string
		matchers []Labeled
		subject  string
		want     Outcome
		wantErr  bool
	}{
		{
			"second matches",
			[]Labeled{{a, "A"}, {b, "B"}},
			"xyz", Matched, false,
		},
		{
			"none match",
			[]Labeled{{a, "A"}, {c, "C"}},
			"xyz", NoMatch, false,
		},
		{
			"empty sequence",
			nil,
			"xyz", NoMatch, false,
		},
		{
			"error stops iteration",
			[]Labeled{{bad, "BAD"}, {b, "B"}},
			"xyz", EngineError, true,
		},
		{
			"match wins before error",
			[]Labeled{{b, "B"}, {bad, "BAD"}},
			"xyz", Matched, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FirstMatch(tt.matchers, tt.subject, zerolog.Nop())
			if got != tt.want {
				t.Errorf("FirstMatch() = %v, want %v", got, tt.want)
			}
			if (err != nil) != tt.wantErr {
				t.Errorf("FirstMatch() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestFirstMatchError tests the error detail: index, label and engine code
// are reported and the failure is logged at error level.
func TestFirstMatchError(t *testing.T) {
	eng := newFakeEngine(false)
	m, _ := eng.Compile("boom", engine.Options{})
	bad := m.(*fakeMatcher)
	bad.execErr = &engine.ExecError{Code: -27, Err: errors.New("backtrack limit")}

	var buf bytes.Buffer
	got, err := FirstMatch([]Labeled{{bad, "rewrite-rule-1"}}, "subject", zerolog.New(&buf))
	if got != EngineError {
		t.Fatalf("FirstMatch() = %v, want EngineError", got)
	}

	var ee *ExecError
	if !errors.As(err, &ee) {
		t.Fatalf("error type = %T, want *ExecError", err)
	}
	if ee.Index != 0 || ee.Label != "rewrite-rule-1" || ee.Code != -27 {
		t.Errorf("ExecError = {Index:%d Label:%q Code:%d}", ee.Index, ee.Label, ee.Code)
	}
	if !strings.Contains(buf.String(), `"level":"error"`) {
		t.Errorf("failure should log at error level, got %s", buf.String())
	}
	if !strings.Contains(buf.String(), "rewrite-rule-1") {
		t.Errorf("log should carry the label, got %s", buf.String())
	}
}

// TestFirstMatchStdre tests the evaluator end to end over real stdlib
// matchers.
func TestFirstMatchStdre(t *testing.T) {
	eng := stdre.New()
	compile := func(p string) engine.Matcher {
		m, err := eng.Compile(p, engine.Options{})
		if err != nil {
			t.Fatalf("Compile(%q) error = %v", p, err)
		}
		return m
	}

	ms := []Labeled{
		{compile(`^/static/`), "static"},
		{compile(`^/api/v\d+/`), "api"},
	}
	defer func() {
		for _, lm := range ms {
			lm.Matcher.Close()
		}
	}()

	tests := []struct {
		subject string
		want    Outcome
	}{
		{"/api/v2/users", Matched},
		{"/static/app.css", Matched},
		{"/healthz", NoMatch},
	}
	for _, tt := range tests {
		got, err := FirstMatch(ms, tt.subject, zerolog.Nop())
		if err != nil {
			t.Fatalf("FirstMatch(%q) error = %v", tt.subject, err)
		}
		if got != tt.want {
			t.Errorf("FirstMatch(%q) = %v, want %v", tt.subject, got, tt.want)
		}
	}
}

// TestOutcomeString tests outcome formatting.
func TestOutcomeString(t *testing.T) {
	tests := []struct {
		o    Outcome
		want string
	}{
		{NoMatch, "no match"},
		{Matched, "matched"},
		{EngineError, "engine error"},
		{Outcome(42), "Outcome(42)"},
	}
	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("Outcome(%d).String() = %q, want %q", int(tt.o), got, tt.want)
		}
	}
}

// BenchmarkFirstMatch measures the evaluator over a small stdlib matcher
// set, studied and unstudied.
func BenchmarkFirstMatch(b *testing.B) {
	eng := stdre.New()
	patterns := []string{`^/static/`, `^/api/v\d+/`, `\.(png|jpg|gif)$`}
	subject := "/api/v3/accounts/42"

	build := func(study bool) []Labeled {
		var ms []Labeled
		for _, p := range patterns {
			m, err := eng.Compile(p, engine.Options{})
			if err != nil {
				b.Fatal(err)
			}
			if study {
				if st, ok := m.(engine.Studier); ok {
					st.Study() // best effort; some patterns have no literals
				}
			}
			ms = append(ms, Labeled{m, p})
		}
		return ms
	}

	b.Run("unstudied", func(b *testing.B) {
		ms := build(false)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			FirstMatch(ms, subject, zerolog.Nop())
		}
	})
	b.Run("studied", func(b *testing.B) {
		ms := build(true)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			FirstMatch(ms, subject, zerolog.Nop())
		}
	})
}
