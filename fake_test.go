package rxreg

import (
	"strings"

	"github.com/coregx/rxreg/engine"
)

// fakeEngine scripts compile results and records lifecycle events so tests
// can assert sweep and disposal ordering.
type fakeEngine struct {
	studyOK    bool
	compileErr map[string]error // pattern -> error
	events     []string         // "study:<p>", "close:<p>" in call order
}

func newFakeEngine(studyOK bool) *fakeEngine {
	return &fakeEngine{studyOK: studyOK, compileErr: make(map[string]error)}
}

func (e *fakeEngine) Name() string         { return "fake" }
func (e *fakeEngine) StudySupported() bool { return e.studyOK }

func (e *fakeEngine) Compile(pattern string, opts engine.Options) (engine.Matcher, error) {
	if err := e.compileErr[pattern]; err != nil {
		return nil, err
	}
	return &fakeMatcher{eng: e, source: pattern}, nil
}

// fakeMatcher matches any subject containing its source text as a
// substring. Failure behavior is scripted per matcher.
type fakeMatcher struct {
	eng    *fakeEngine
	source string

	captures   int
	names      map[string]int
	namedCalls int

	execErr  error
	studyErr error
	studied  bool
	closed   int
}

func (m *fakeMatcher) Execute(subject string) (bool, error) {
	if m.execErr != nil {
		return false, m.execErr
	}
	return strings.Contains(subject, m.source), nil
}

func (m *fakeMatcher) CaptureCount() int { return m.captures }

func (m *fakeMatcher) NamedCaptures() map[string]int {
	m.namedCalls++
	return m.names
}

func (m *fakeMatcher) Study() error {
	m.eng.events = append(m.eng.events, "study:"+m.source)
	if m.studyErr != nil {
		return m.studyErr
	}
	m.studied = true
	return nil
}

func (m *fakeMatcher) Close() error {
	m.eng.events = append(m.eng.events, "close:"+m.source)
	m.closed++
	return nil
}
