// Package store persists the segment log as a single JSON snapshot in a
// key-value store.
package store

import (
	"sync"

	"fyne.io/fyne/v2"
)

// DefaultKey is the key the snapshot lives under.
const DefaultKey = "savedCanvas"

// Store is a string key-value store. Get reports whether key was present.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
}

// Prefs stores values in the fyne application preferences.
type Prefs struct {
	prefs fyne.Preferences
}

func NewPrefs(p fyne.Preferences) *Prefs {
	return &Prefs{prefs: p}
}

// Get treats an empty string as absent; preferences have no other way to
// tell a missing key apart.
func (p *Prefs) Get(key string) (string, bool) {
	v := p.prefs.String(key)
	return v, v != ""
}

func (p *Prefs) Set(key, value string) { p.prefs.SetString(key, value) }

func (p *Prefs) Remove(key string) { p.prefs.RemoveValue(key) }

// Memory is an in-process store.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

func (m *Memory) Remove(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
}
