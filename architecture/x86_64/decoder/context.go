package decoder

import "sync"

// Context holds process-wide decoder settings, the Go analogue of
// original_source/include/lib.h's rda_context_t. The C original is a single
// write-once global with no synchronization, set once via rda_begin at
// startup and read thereafter; here the same write-once-then-read-many
// pattern is wrapped in a sync.RWMutex, since a Go package has no equivalent
// of "only called once before any goroutine starts" to lean on.
type Context struct {
	Verbose bool // enable verbose diagnostic output at the CLI boundary.
	UseSIMD bool // consult SIMDTable before GeneralTable in DecodeSingle.
}

var (
	contextMu sync.RWMutex
	globalCtx Context
)

// Begin installs ctx as the active decoder context.
func Begin(ctx Context) {
	contextMu.Lock()
	defer contextMu.Unlock()
	globalCtx = ctx
}

// GetContext returns the active decoder context.
func GetContext() Context {
	contextMu.RLock()
	defer contextMu.RUnlock()
	return globalCtx
}
