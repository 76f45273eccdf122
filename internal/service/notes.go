package service

import (
	"strings"
	"sync"

	"github.com/sentinela/gateway/internal/models"
)

// Notes keeps analyst notes per session and call, in memory only.
type Notes struct {
	mu        sync.RWMutex
	bySession map[string]map[string]string
}

func NewNotes() *Notes {
	return &Notes{bySession: map[string]map[string]string{}}
}

// Set stores a note; a blank note removes it.
func (n *Notes) Set(sessionID, callID, note string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.bySession == nil {
		n.bySession = map[string]map[string]string{}
	}
	if strings.TrimSpace(note) == "" {
		delete(n.bySession[sessionID], callID)
		return
	}
	m := n.bySession[sessionID]
	if m == nil {
		m = map[string]string{}
		n.bySession[sessionID] = m
	}
	m[callID] = note
}

func (n *Notes) Get(sessionID, callID string) (string, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	v, ok := n.bySession[sessionID][callID]
	return v, ok
}

// Apply overlays the session's notes onto calls.
func (n *Notes) Apply(sessionID string, calls []models.Call) []models.Call {
	if n == nil {
		return calls
	}
	n.mu.RLock()
	defer n.mu.RUnlock()
	m := n.bySession[sessionID]
	if len(m) == 0 {
		return calls
	}
	out := make([]models.Call, len(calls))
	for i, c := range calls {
		if note, ok := m[c.Key()]; ok {
			c.NotaAnalista = note
		}
		out[i] = c
	}
	return out
}

func (n *Notes) Forget(sessionID string) {
	n.mu.Lock()
	delete(n.bySession, sessionID)
	n.mu.Unlock()
}
