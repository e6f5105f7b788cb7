package rxreg

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/coregx/rxreg/engine"
	"github.com/coregx/rxreg/engine/stdre"
)

// Config is the YAML configuration surface for one registry lifetime.
//
// Example document:
//
//	engine: std
//	study: true
//	patterns:
//	  - name: api
//	    pattern: '^/api/(v\d+)/'
//	  - name: health
//	    pattern: '^/healthz$'
//	    case_insensitive: true
type Config struct {
	// Engine selects a backend by registered name. Empty means the
	// default stdlib backend.
	Engine string `yaml:"engine"`

	// Study requests the deferred optimization sweep at process start.
	// Defaults to false; subject to the capability gate.
	Study bool `yaml:"study"`

	// MaxPatterns caps the registry size. Zero means no cap.
	MaxPatterns int `yaml:"max_patterns"`

	// Patterns is the ordered pattern list; registration preserves this
	// order.
	Patterns []PatternConfig `yaml:"patterns"`
}

// PatternConfig is one pattern declaration.
type PatternConfig struct {
	// Name labels the pattern in diagnostics. Empty defaults to the
	// pattern text.
	Name string `yaml:"name"`

	// Pattern is the regex source.
	Pattern string `yaml:"pattern"`

	CaseInsensitive bool `yaml:"case_insensitive"`
	Multiline       bool `yaml:"multiline"`
	DotAll          bool `yaml:"dot_all"`
}

// Label returns the diagnostic label for this pattern.
func (p PatternConfig) Label() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Pattern
}

// options maps the per-pattern flags onto engine options.
func (p PatternConfig) options() engine.Options {
	return engine.Options{
		CaseInsensitive: p.CaseInsensitive,
		Multiline:       p.Multiline,
		DotAll:          p.DotAll,
	}
}

// ParseConfig decodes a YAML configuration. Unknown fields are rejected.
func ParseConfig(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	for i, p := range cfg.Patterns {
		if p.Pattern == "" {
			return nil, fmt.Errorf("parse config: pattern %d (%s) is empty", i, p.Label())
		}
	}
	return &cfg, nil
}

// LoadConfig reads and decodes a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(bytes.NewReader(data))
}

// Build compiles and registers every configured pattern into a fresh
// registry and applies the optimization-capability gate. It returns the
// registry still in its collecting phase and the effective study flag to
// pass to StudyAll or Attach.
//
// A pattern that fails to compile aborts the build; matchers registered
// before the failure are disposed so nothing leaks.
func (c *Config) Build(log zerolog.Logger) (*Registry, bool, error) {
	eng, err := c.openEngine()
	if err != nil {
		return nil, false, err
	}

	reg := NewRegistryWithConfig(eng, log, RegistryConfig{MaxEntries: c.MaxPatterns})
	for i, p := range c.Patterns {
		if _, err := reg.Compile(p.Pattern, p.options()); err != nil {
			reg.StudyAll(false).Close()
			return nil, false, fmt.Errorf("pattern %d (%s): %w", i, p.Label(), err)
		}
	}

	return reg, RequestStudy(eng, c.Study, log), nil
}

func (c *Config) openEngine() (engine.Engine, error) {
	if c.Engine == "" {
		return stdre.New(), nil
	}
	return engine.Open(c.Engine)
}
