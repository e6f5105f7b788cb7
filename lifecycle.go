package rxreg

// Hooks collects the host process's start and teardown callbacks: a "run
// at start" slot for the study sweep and a "run exactly once at teardown"
// slot for disposal.
//
// Hooks follows the same single-threaded phase model as the registry; it
// is not internally synchronized.
type Hooks struct {
	start    []func() error
	shutdown []func()
	done     bool
}

// OnStart registers fn to run during Start, in registration order.
func (h *Hooks) OnStart(fn func() error) {
	h.start = append(h.start, fn)
}

// OnShutdown registers fn to run during Shutdown. Shutdown functions run
// in reverse registration order, once.
func (h *Hooks) OnShutdown(fn func()) {
	h.shutdown = append(h.shutdown, fn)
}

// Start runs the registered start functions in order, stopping at the
// first error. Start functions may register further shutdown functions.
func (h *Hooks) Start() error {
	for _, fn := range h.start {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}

// Shutdown runs the registered shutdown functions in reverse order. Only
// the first call runs them; later calls are no-ops.
func (h *Hooks) Shutdown() {
	if h.done {
		return
	}
	h.done = true
	for i := len(h.shutdown) - 1; i >= 0; i-- {
		h.shutdown[i]()
	}
}

// Attach wires the registry's startup sweep and shutdown disposal into h:
// at start the registry is swept with study enabled or not, and the
// resulting Disposal's Close is registered for teardown.
func (r *Registry) Attach(h *Hooks, study bool) {
	h.OnStart(func() error {
		if d := r.StudyAll(study); d != nil {
			h.OnShutdown(d.Close)
		}
		return nil
	})
}
