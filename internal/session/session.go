// Package session carries the analyst's session scope (subject PIN and
// bearer token) explicitly through request contexts.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

// ErrNoPIN is returned by every operation that needs a subject PIN when the
// session has none selected.
var ErrNoPIN = errors.New("No se ha seleccionado un PIN.")

var ErrExpired = errors.New("Sesión cerrada por inactividad. Por favor, inicia sesión de nuevo.")

type Session struct {
	ID    string `json:"id"`
	PIN   string `json:"pin"`
	Token string `json:"-"`
}

func New(id, pin, token string) Session {
	return Session{
		ID:    strings.TrimSpace(id),
		PIN:   strings.TrimSpace(pin),
		Token: strings.TrimSpace(token),
	}
}

func (s Session) RequirePIN() error {
	if s.PIN == "" {
		return ErrNoPIN
	}
	return nil
}

func (s Session) HasToken() bool {
	return s.Token != ""
}

type ctxKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored in ctx, or an empty session.
func FromContext(ctx context.Context) Session {
	s, _ := ctx.Value(ctxKey{}).(Session)
	return s
}

// Tracker expires sessions after a period without activity.
type Tracker struct {
	IdleTimeout time.Duration
	// OnExpire, if set, is called with the id of every expired session,
	// outside the tracker's lock.
	OnExpire func(id string)

	mu       sync.Mutex
	lastSeen map[string]time.Time
	// swept holds ids removed by Sweep until their next Touch, so the
	// client still gets told its session expired.
	swept    map[string]time.Time
}

// sweptRetention bounds how long a swept id waits for its client to return.
const sweptRetention = 24 * time.Hour

func NewTracker(idle time.Duration) *Tracker {
	return &Tracker{IdleTimeout: idle, lastSeen: map[string]time.Time{}, swept: map[string]time.Time{}}
}

// Touch records activity for id at now and reports whether the session had
// already expired, either idle past the timeout or removed by Sweep. An
// expired session is forgotten, so the next Touch starts a fresh idle
// window.
func (t *Tracker) Touch(id string, now time.Time) (expired bool) {
	if id == "" {
		return false
	}
	t.mu.Lock()
	if t.lastSeen == nil {
		t.lastSeen = map[string]time.Time{}
	}
	if _, ok := t.swept[id]; ok {
		delete(t.swept, id)
		t.mu.Unlock()
		return true
	}
	if last, ok := t.lastSeen[id]; ok && t.IdleTimeout > 0 && now.Sub(last) > t.IdleTimeout {
		delete(t.lastSeen, id)
		t.mu.Unlock()
		t.expire(id)
		return true
	}
	t.lastSeen[id] = now
	t.mu.Unlock()
	return false
}

func (t *Tracker) expire(ids ...string) {
	if t.OnExpire == nil {
		return
	}
	for _, id := range ids {
		t.OnExpire(id)
	}
}

func (t *Tracker) Expired(id string, now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.swept[id]; ok {
		return true
	}
	last, ok := t.lastSeen[id]
	if !ok || t.IdleTimeout <= 0 {
		return false
	}
	return now.Sub(last) > t.IdleTimeout
}

func (t *Tracker) Forget(id string) {
	t.mu.Lock()
	delete(t.lastSeen, id)
	delete(t.swept, id)
	t.mu.Unlock()
}

// Sweep drops sessions idle for longer than the timeout and returns how
// many were removed. Swept ids still report expired on their next Touch.
func (t *Tracker) Sweep(now time.Time) int {
	t.mu.Lock()
	if t.IdleTimeout <= 0 {
		t.mu.Unlock()
		return 0
	}
	if t.swept == nil {
		t.swept = map[string]time.Time{}
	}
	for id, at := range t.swept {
		if now.Sub(at) > sweptRetention {
			delete(t.swept, id)
		}
	}
	var gone []string
	for id, last := range t.lastSeen {
		if now.Sub(last) > t.IdleTimeout {
			delete(t.lastSeen, id)
			t.swept[id] = now
			gone = append(gone, id)
		}
	}
	t.mu.Unlock()
	t.expire(gone...)
	return len(gone)
}
