package rxreg

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/coregx/rxreg/engine"
)

// registry lifecycle states. Registration is only legal while collecting;
// the study sweep transitions collecting -> sweeping -> closed.
type registryState int

const (
	stateCollecting registryState = iota
	stateSweeping
	stateClosed
)

// Entry is one registered pattern: the compiled matcher plus its source
// text. Entries are immutable after creation and destroyed only by their
// Disposal.
type Entry struct {
	m      engine.Matcher
	source string
}

// Matcher returns the compiled matcher.
func (e Entry) Matcher() engine.Matcher { return e.m }

// Source returns the pattern text the matcher was compiled from.
func (e Entry) Source() string { return e.source }

// RegistryConfig tunes a Registry.
type RegistryConfig struct {
	// MaxEntries caps how many patterns may be registered; registration
	// beyond the cap fails with ErrNoMemory. Zero means no cap.
	MaxEntries int
}

// Registry is the insertion-ordered, append-only collection of every
// pattern compiled during one configuration lifetime. One Registry exists
// per configuration lifetime; create it at configuration start and thread
// it explicitly through the compile, study and disposal steps.
//
// A Registry is not internally synchronized: the lifecycle phases it serves
// (configuration parsing, startup sweep, shutdown) do not overlap.
type Registry struct {
	eng     engine.Engine
	log     zerolog.Logger
	state   registryState
	entries []Entry
	max     int
}

// NewRegistry creates an empty registry compiling through eng and
// reporting diagnostics through log.
func NewRegistry(eng engine.Engine, log zerolog.Logger) *Registry {
	return NewRegistryWithConfig(eng, log, RegistryConfig{})
}

// NewRegistryWithConfig is NewRegistry with tuning options.
func NewRegistryWithConfig(eng engine.Engine, log zerolog.Logger, cfg RegistryConfig) *Registry {
	return &Registry{eng: eng, log: log, max: cfg.MaxEntries}
}

// Engine returns the engine this registry compiles through.
func (r *Registry) Engine() engine.Engine { return r.eng }

// Len returns the number of registered entries.
func (r *Registry) Len() int { return len(r.entries) }

// Register appends an already-compiled matcher to the registry. It fails
// with ErrRegistryClosed once the startup sweep has run, and with
// ErrNoMemory when the entry cap is exhausted. On failure the matcher is
// NOT closed; ownership stays with the caller.
func (r *Registry) Register(m engine.Matcher, source string) error {
	if r.state != stateCollecting {
		return ErrRegistryClosed
	}
	if r.max > 0 && len(r.entries) >= r.max {
		return ErrNoMemory
	}
	r.entries = append(r.entries, Entry{m: m, source: source})
	return nil
}

// Compile compiles pattern through the registry's engine and registers the
// result: the one-call configuration-time operation.
//
// Compile failures surface as *CompileError. A registration failure after a
// successful compile closes the matcher here (it is compiled, but nothing
// will ever dispose it otherwise) and reports the pattern's configuration
// operation as failed.
func (r *Registry) Compile(pattern string, opts engine.Options) (*Compiled, error) {
	c, err := Compile(r.eng, pattern, opts)
	if err != nil {
		return nil, err
	}
	if err := r.Register(c.Matcher, pattern); err != nil {
		c.Matcher.Close()
		if errors.Is(err, ErrNoMemory) {
			return nil, fmt.Errorf("regex %q compilation failed: %w", pattern, err)
		}
		return nil, err
	}
	return c, nil
}

// detach hands the entry sequence to a Disposal and closes the registry.
// The registry keeps no reference to the entries afterwards.
func (r *Registry) detach() *Disposal {
	d := &Disposal{entries: r.entries}
	r.entries = nil
	r.state = stateClosed
	return d
}
