// Package formflow drives the create-modal / edit-drawer lifecycle as an
// explicit state machine (closed → opening → open → closing → closed)
// instead of ad hoc nested timers, so the two cosmetic animation delays are
// deterministic under test.
package formflow

import (
	"context"
	"sync"
	"time"
)

// State is the overlay lifecycle state.
type State string

const (
	StateClosed  State = "closed"
	StateOpening State = "opening"
	StateOpen    State = "open"
	StateClosing State = "closing"
)

// NoticeKind discriminates the toast recorded by a submit.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is the single toast produced by a submit attempt.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// Timer schedules fn after d. Tests inject a manual implementation.
type Timer func(d time.Duration, fn func())

// Config parameterizes a flow for one resource form.
type Config[T any] struct {
	// Load fetches the edit target by id. Unset for create-only forms.
	Load func(ctx context.Context, id string) (T, error)
	// Submit sends the form to the create/update collaborator.
	Submit func(ctx context.Context, values T) error
	// Guard, when set, may refuse a submit before any network call
	// (e.g. a ticket already in a terminal PAID state).
	Guard func(values T) (string, bool)
	// Normalize, when set, is applied to the values right before Submit
	// (string trimming lives here).
	Normalize func(values T) T
	// OnClosed runs when the close animation completes; the parent list
	// reloads from it.
	OnClosed func()
	// NavigateBack runs after OnClosed for route-driven edit drawers.
	NavigateBack func()

	OpenDelay  time.Duration
	CloseDelay time.Duration
	Timer      Timer
}

// Flow is the state of one overlay form.
type Flow[T any] struct {
	cfg Config[T]

	mu        sync.Mutex
	state     State
	gen       int
	values    T
	editID    string
	loaded    bool
	loading   bool
	busy      bool
	cancelled bool
	inlineErr string
	notice    *Notice
}

// New creates a closed flow.
func New[T any](cfg Config[T]) *Flow[T] {
	if cfg.OpenDelay == 0 {
		cfg.OpenDelay = 50 * time.Millisecond
	}
	if cfg.CloseDelay == 0 {
		cfg.CloseDelay = 300 * time.Millisecond
	}
	if cfg.Timer == nil {
		cfg.Timer = func(d time.Duration, fn func()) { time.AfterFunc(d, fn) }
	}
	return &Flow[T]{cfg: cfg, state: StateClosed}
}

// OpenCreate mounts the overlay for a new item with the given initial
// values.
func (f *Flow[T]) OpenCreate(initial T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateClosed {
		return
	}
	f.values = initial
	f.editID = ""
	f.loaded = true
	f.inlineErr = ""
	f.notice = nil
	f.cancelled = false
	f.beginOpenLocked()
}

// OpenEdit mounts the overlay for an existing item and loads it. While the
// load runs the form counts as not loaded (fields disabled); a load that
// completes after Close was called is discarded rather than populating an
// unmounted form. A failed load leaves the form unpopulated with an inline
// error and submit stays disabled.
func (f *Flow[T]) OpenEdit(ctx context.Context, id string) {
	f.mu.Lock()
	if f.state != StateClosed {
		f.mu.Unlock()
		return
	}
	f.editID = id
	f.loaded = false
	f.loading = true
	f.inlineErr = ""
	f.notice = nil
	f.cancelled = false
	f.beginOpenLocked()
	f.mu.Unlock()

	values, err := f.cfg.Load(ctx, id)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = false
	if f.cancelled {
		return
	}
	if err != nil {
		f.inlineErr = err.Error()
		return
	}
	f.values = values
	f.loaded = true
}

// Submit runs the guard, normalizes, and calls the collaborator. Busy
// blocks re-entry; success records a notice and starts the close sequence;
// failure keeps the form open and populated for correction.
func (f *Flow[T]) Submit(ctx context.Context) {
	f.mu.Lock()
	if f.state != StateOpen || f.busy || !f.loaded {
		f.mu.Unlock()
		return
	}
	if f.cfg.Guard != nil {
		if msg, refused := f.cfg.Guard(f.values); refused {
			f.inlineErr = msg
			f.notice = &Notice{Kind: NoticeError, Message: msg}
			f.mu.Unlock()
			return
		}
	}
	values := f.values
	if f.cfg.Normalize != nil {
		values = f.cfg.Normalize(values)
		f.values = values
	}
	f.busy = true
	f.inlineErr = ""
	f.mu.Unlock()

	err := f.cfg.Submit(ctx, values)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.busy = false
	if err != nil {
		f.inlineErr = err.Error()
		f.notice = &Notice{Kind: NoticeError, Message: err.Error()}
		return
	}
	f.notice = &Notice{Kind: NoticeSuccess, Message: "saved"}
	f.beginCloseLocked()
}

// Cancel starts the close sequence. Ignored while a submit is in flight.
func (f *Flow[T]) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.busy {
		return
	}
	if f.state != StateOpen && f.state != StateOpening {
		return
	}
	f.beginCloseLocked()
}

// BackdropClick behaves like Cancel: ignored mid-submit.
func (f *Flow[T]) BackdropClick() {
	f.Cancel()
}

// State returns the lifecycle state.
func (f *Flow[T]) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Values returns the form model.
func (f *Flow[T]) Values() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// SetValues replaces the form model (field edits).
func (f *Flow[T]) SetValues(v T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = v
}

// Loaded reports whether the form is populated and submittable.
func (f *Flow[T]) Loaded() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loaded
}

// LoadingTarget reports whether the edit target fetch is still running.
func (f *Flow[T]) LoadingTarget() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// Busy reports whether a submit is in flight.
func (f *Flow[T]) Busy() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.busy
}

// InlineError returns the banner shown inside the form, if any.
func (f *Flow[T]) InlineError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inlineErr
}

// Notice returns the last toast, or nil.
func (f *Flow[T]) Notice() *Notice {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.notice
}

func (f *Flow[T]) beginOpenLocked() {
	f.state = StateOpening
	f.gen++
	gen := f.gen
	f.cfg.Timer(f.cfg.OpenDelay, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.gen == gen && f.state == StateOpening {
			f.state = StateOpen
		}
	})
}

func (f *Flow[T]) beginCloseLocked() {
	f.state = StateClosing
	f.cancelled = true
	f.gen++
	gen := f.gen
	f.cfg.Timer(f.cfg.CloseDelay, func() {
		f.mu.Lock()
		if f.gen != gen || f.state != StateClosing {
			f.mu.Unlock()
			return
		}
		f.state = StateClosed
		f.mu.Unlock()

		if f.cfg.OnClosed != nil {
			f.cfg.OnClosed()
		}
		if f.cfg.NavigateBack != nil {
			f.cfg.NavigateBack()
		}
	})
}
