package pcre

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/coregx/rxreg/engine"
)

// TestCompile tests compilation and error reporting.
func TestCompile(t *testing.T) {
	eng := New()
	if eng.StudySupported() {
		t.Fatal("StudySupported() = true, want false for a backtracking engine")
	}

	tests := []struct {
		name    string
		pattern string
		wantErr bool
	}{
		{"literal", "hello", false},
		{"backreference", `(\w+) \1`, false}, // regexp2 extends stdlib syntax
		{"lookahead", `foo(?=bar)`, false},
		{"unclosed paren", "(", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := eng.Compile(tt.pattern, engine.Options{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Compile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var ce *engine.CompileError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want *engine.CompileError", err)
				}
				if ce.Message == "" {
					t.Error("CompileError.Message is empty")
				}
				return
			}
			m.Close()
		})
	}
}

// TestOptions tests option flag mapping onto regexp2.
func TestOptions(t *testing.T) {
	eng := New()

	tests := []struct {
		name    string
		pattern string
		opts    engine.Options
		subject string
		want    bool
	}{
		{"case insensitive", "hello", engine.Options{CaseInsensitive: true}, "HELLO", true},
		{"multiline", "^two$", engine.Options{Multiline: true}, "one\ntwo", true},
		{"dotall", "a.b", engine.Options{DotAll: true}, "a\nb", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := eng.Compile(tt.pattern, tt.opts)
			if err != nil {
				t.Fatalf("Compile() error = %v", err)
			}
			defer m.Close()
			got, err := m.Execute(tt.subject)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Execute(%q) = %v, want %v", tt.subject, got, tt.want)
			}
		})
	}
}

// TestCaptureMetadata tests capture counts and named-group filtering:
// regexp2 lists unnamed groups under their decimal number, which must not
// leak into the name table.
func TestCaptureMetadata(t *testing.T) {
	eng := New()

	tests := []struct {
		name      string
		pattern   string
		wantCount int
		wantNames map[string]int
	}{
		{"no captures", `\d+`, 0, nil},
		{"two positional", `(\d+)-(\d+)`, 2, nil},
		{"named", `(?<major>\d+)\.(?<minor>\d+)`, 2,
			map[string]int{"major": 1, "minor": 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := eng.Compile(tt.pattern, engine.Options{})
			if err != nil {
				t.Fatalf("Compile() error = %v", err)
			}
			defer m.Close()

			if got := m.CaptureCount(); got != tt.wantCount {
				t.Errorf("CaptureCount() = %d, want %d", got, tt.wantCount)
			}
			if got := m.NamedCaptures(); !reflect.DeepEqual(got, tt.wantNames) {
				t.Errorf("NamedCaptures() = %v, want %v", got, tt.wantNames)
			}
		})
	}
}

// TestExecuteTimeout tests the engine execution failure path: exceeding the
// match deadline surfaces as *engine.ExecError, not as "no match".
func TestExecuteTimeout(t *testing.T) {
	eng := New()
	m, err := eng.Compile(`(a|aa)+$`, engine.Options{MatchTimeout: time.Nanosecond})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	defer m.Close()

	subject := strings.Repeat("a", 50000) + "b"
	_, err = m.Execute(subject)
	if err == nil {
		t.Skip("engine finished before the deadline fired")
	}
	var ee *engine.ExecError
	if !errors.As(err, &ee) {
		t.Fatalf("error type = %T, want *engine.ExecError", err)
	}
	if ee.Code != engine.CodeUnknown {
		t.Errorf("Code = %d, want CodeUnknown", ee.Code)
	}
}
