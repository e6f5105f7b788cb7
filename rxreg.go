// Package rxreg is a regex compilation and lifecycle registry.
//
// It compiles textual patterns into executable matchers through a pluggable
// matching engine, tracks every compiled matcher in an insertion-ordered
// registry, runs a deferred bulk optimization ("study") sweep at process
// start, guarantees release of every matcher exactly once at shutdown, and
// offers an ordered first-match-wins evaluation helper.
//
// The lifecycle has three non-overlapping phases:
//
//  1. Collecting: configuration parsing compiles patterns and registers
//     them (Registry.Compile). Only successful compiles enter the registry.
//  2. Sweeping: at process start, StudyAll visits every entry in insertion
//     order and attempts the engine's optimization step; per-entry failure
//     is logged and skipped. The registry then closes to registration and
//     hands its entries to a Disposal.
//  3. Closed: the Disposal releases every matcher ever registered, once,
//     at process teardown.
//
// Basic usage:
//
//	eng := stdre.New()
//	log := zerolog.New(os.Stderr)
//
//	reg := rxreg.NewRegistry(eng, log)
//	if _, err := reg.Compile(`^/api/(v\d+)/`, engine.Options{}); err != nil {
//	    return err
//	}
//
//	study := rxreg.RequestStudy(eng, true, log) // capability gate
//	d := reg.StudyAll(study)                    // startup sweep
//	defer d.Close()                             // shutdown disposal
//
// Or let lifecycle hooks drive phases 2 and 3:
//
//	var hooks rxreg.Hooks
//	reg.Attach(&hooks, study)
//	if err := hooks.Start(); err != nil { ... }
//	defer hooks.Shutdown()
//
// The matching algorithm itself is out of scope: engines are consumed
// through the engine package interfaces, with adapters for stdlib regexp
// (engine/stdre, the default), dlclark/regexp2 (engine/pcre), coregex
// (engine/coreg) and RE2 (engine/re2, behind the "re2" build tag).
package rxreg

import "github.com/coregx/rxreg/engine"

// CompileError is re-exported from the engine package: a pattern rejected
// by the engine, with an optional failure offset.
type CompileError = engine.CompileError
