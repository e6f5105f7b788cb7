package rxreg

// Disposal owns the registry's entries after the startup sweep and
// releases them at process teardown. It is the only holder of the entry
// sequence once the registry has closed, so disposal sees every entry ever
// registered, including entries whose study failed.
//
// Close is meant to be registered with the host's shutdown mechanism so it
// runs exactly once (Hooks.OnShutdown guarantees this); calling it twice on
// the same Disposal is a caller error.
type Disposal struct {
	entries []Entry
}

// Len returns the number of entries awaiting disposal.
func (d *Disposal) Len() int { return len(d.entries) }

// Entries returns the owned entries in registration order, for diagnostics
// and tests. The slice returned is shared and must not be modified.
func (d *Disposal) Entries() []Entry { return d.entries }

// Close releases every owned matcher in registration order.
func (d *Disposal) Close() {
	for _, e := range d.entries {
		e.m.Close()
	}
	d.entries = nil
}
