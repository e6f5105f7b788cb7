package rxreg

import (
	"github.com/rs/zerolog"

	"github.com/coregx/rxreg/engine"
)

// RequestStudy is the optimization-capability gate, applied during
// configuration validation before the process starts.
//
// When requested is false it returns false without probing. When requested
// is true it probes whether eng actually supports the study step; if not,
// it emits exactly one warning and forces the effective value to false.
// The result is what StudyAll's enabled parameter should receive.
func RequestStudy(eng engine.Engine, requested bool, log zerolog.Logger) bool {
	if !requested {
		return false
	}
	if !eng.StudySupported() {
		log.Warn().
			Str("engine", eng.Name()).
			Msg("engine does not support pattern study")
		return false
	}
	return true
}

// StudyAll is the startup sweep: it visits every registered entry in
// insertion order and, when enabled, attempts the engine's optimization
// step on each. A per-entry failure is logged at info level with the
// offending pattern and the sweep continues; a failed entry remains usable
// unoptimized.
//
// StudyAll runs once per registry. It closes the registry to further
// registration and returns the Disposal that now owns every entry; the
// registry itself keeps no reference to them. A second call is a caller
// error and returns nil.
func (r *Registry) StudyAll(enabled bool) *Disposal {
	if r.state != stateCollecting {
		return nil
	}
	r.state = stateSweeping

	if enabled {
		for _, e := range r.entries {
			st, ok := e.m.(engine.Studier)
			if !ok {
				// The engine claimed the capability but this matcher
				// cannot study; treat like any per-entry failure.
				r.log.Info().
					Str("pattern", e.source).
					Msg("study does not support pattern")
				continue
			}
			if err := st.Study(); err != nil {
				r.log.Info().
					Str("pattern", e.source).
					Err(err).
					Msg("study does not support pattern")
			}
		}
	}

	return r.detach()
}
