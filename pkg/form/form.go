package form

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formstate/pkg/broadcast"
	"github.com/dmitrymomot/formstate/pkg/logger"
)

// Form is a single form context: the exclusive owner of one State aggregate
// and the validator registry keyed by the same field-name domain. All
// mutations funnel through one atomic apply operation; independent Form
// instances never share state. All methods are safe for concurrent use.
type Form struct {
	id            string
	log           *slog.Logger
	onSubmitError func(State)

	mu       sync.Mutex
	state    State
	registry map[string]fieldEntry
	inflight int

	submitMu      sync.Mutex
	submitDeps    []any
	submitHandler Handler

	broadcaster *broadcast.Broadcaster[State]
}

// New creates a fresh form context: no fields, no errors, Valid and Pristine.
func New(opts ...Option) *Form {
	f := &Form{
		id:          uuid.NewString(),
		state:       newState(),
		registry:    make(map[string]fieldEntry),
		broadcaster: broadcast.New[State](),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.log == nil {
		f.log = logger.NewFromEnv()
	}
	return f
}

// ID returns the unique identifier of this form instance.
func (f *Form) ID() string {
	return f.id
}

// Close shuts down the form's subscription surface. The form itself remains
// usable; only subscribers are disconnected.
func (f *Form) Close() error {
	return f.broadcaster.Close()
}
