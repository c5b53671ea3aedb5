package agent

import (
	"sync"

	"github.com/KilimcininKorOglu/dsagent/internal/dirlog"
)

// Agent is the Directory Agent orchestrator: it drives one shared Cursor
// through index switches and key lookups, materializes Object Views, and
// wraps mutators in a begin/commit/abort transaction cycle (spec.md §2, §5).
//
// An Agent is not thread-safe. It holds exactly one Cursor, and that
// Cursor's position is shared state across every method call; callers
// needing parallelism must create independent Contexts and Agents.
type Agent struct {
	mu sync.Mutex

	ctx   Context
	clock Clock
	log   *dirlog.Logger

	ownsContext bool
	disposed    bool
}

// Option configures an Agent at construction time.
type Option func(*Agent)

// WithClock overrides the Clock used to timestamp attribute metadata.
// Defaults to SystemClock.
func WithClock(clock Clock) Option {
	return func(a *Agent) { a.clock = clock }
}

// WithLogger attaches structured logging around Agent operations. Defaults
// to a logger that discards everything.
func WithLogger(log *dirlog.Logger) Option {
	return func(a *Agent) { a.log = log }
}

// WithOwnedContext marks the Agent as owning ctx, so Dispose also disposes
// the Context (spec.md §5 "if it owns the Context, it also closes that").
func WithOwnedContext() Option {
	return func(a *Agent) { a.ownsContext = true }
}

// NewAgent builds an Agent over ctx.
func NewAgent(ctx Context, opts ...Option) *Agent {
	a := &Agent{
		ctx:   ctx,
		clock: SystemClock{},
		log:   dirlog.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Dispose closes the Agent's Cursor and, if it owns the Context, disposes
// that too. Double-dispose is a no-op.
func (a *Agent) Dispose() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.disposed {
		return nil
	}
	a.disposed = true

	if err := a.ctx.Cursor().Dispose(); err != nil {
		return wrapStorageErr(err)
	}
	if a.ownsContext {
		return a.ctx.Dispose()
	}
	return nil
}
