// Package resource models a value fetched asynchronously: not started,
// loading, ready (possibly empty) or failed.
package resource

import (
	"context"
	"encoding/json"
	"sync"
)

type State int

const (
	NotStarted State = iota
	Loading
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "not_started"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Emptier is implemented by payloads that can tell whether they hold any
// data. An empty Ready resource renders the "no data" branch.
type Emptier interface {
	IsEmpty() bool
}

type Resource[T any] struct {
	State      State
	Data       T
	Err        error
	Empty      bool
	Generation uint64
}

func Succeed[T any](v T) Resource[T] {
	r := Resource[T]{State: Ready, Data: v}
	if e, ok := any(v).(Emptier); ok {
		r.Empty = e.IsEmpty()
	}
	return r
}

func SucceedList[E any](v []E) Resource[[]E] {
	return Resource[[]E]{State: Ready, Data: v, Empty: len(v) == 0}
}

func Fail[T any](err error) Resource[T] {
	return Resource[T]{State: Failed, Err: err}
}

// Load runs fn and captures its outcome.
func Load[T any](ctx context.Context, fn func(context.Context) (T, error)) Resource[T] {
	v, err := fn(ctx)
	if err != nil {
		return Fail[T](err)
	}
	return Succeed(v)
}

func LoadList[E any](ctx context.Context, fn func(context.Context) ([]E, error)) Resource[[]E] {
	v, err := fn(ctx)
	if err != nil {
		return Fail[[]E](err)
	}
	return SucceedList(v)
}

func (r Resource[T]) IsReady() bool  { return r.State == Ready }
func (r Resource[T]) IsFailed() bool { return r.State == Failed }

// Message is the single-line, user-facing error text of a failed resource.
func (r Resource[T]) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

type envelope[T any] struct {
	State      State  `json:"state"`
	Data       *T     `json:"data,omitempty"`
	Empty      bool   `json:"empty,omitempty"`
	Error      string `json:"error,omitempty"`
	Generation uint64 `json:"generation,omitempty"`
}

func (r Resource[T]) MarshalJSON() ([]byte, error) {
	env := envelope[T]{
		State:      r.State,
		Empty:      r.Empty,
		Error:      r.Message(),
		Generation: r.Generation,
	}
	if r.State == Ready {
		data := r.Data
		env.Data = &data
	}
	return json.Marshal(env)
}

// Tracker owns one resource whose loads can be superseded. Each Start
// begins a new generation and cancels the previous one; completions
// carrying an older token are discarded.
type Tracker[T any] struct {
	mu      sync.Mutex
	current Resource[T]
	gen     uint64
	cancel  context.CancelFunc
}

type Token struct {
	gen uint64
}

func (tok Token) Generation() uint64 { return tok.gen }

// Start marks the resource as loading under a new generation. The returned
// context is cancelled when a later Start or Reset supersedes it.
func (t *Tracker[T]) Start(parent context.Context) (Token, context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	t.cancel = cancel
	t.gen++
	t.current = Resource[T]{State: Loading, Generation: t.gen}
	return Token{gen: t.gen}, ctx
}

// Resolve stores v if tok is still current and reports whether it did.
func (t *Tracker[T]) Resolve(tok Token, v T) bool {
	return t.settle(tok, Succeed(v))
}

func (t *Tracker[T]) Reject(tok Token, err error) bool {
	return t.settle(tok, Fail[T](err))
}

func (t *Tracker[T]) settle(tok Token, r Resource[T]) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if tok.gen != t.gen || t.current.State != Loading {
		return false
	}
	r.Generation = t.gen
	t.current = r
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	return true
}

func (t *Tracker[T]) Current(tok Token) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tok.gen == t.gen
}

// Reset cancels any in-flight load and returns to NotStarted.
func (t *Tracker[T]) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.gen++
	t.current = Resource[T]{Generation: t.gen}
}

func (t *Tracker[T]) Snapshot() Resource[T] {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}
