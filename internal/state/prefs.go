package state

import (
	"sync"

	"taskman/internal/domain"
)

// Theme values as persisted. The stored bytes are the bare strings, not
// JSON, matching the preference's role as a plain flag.
const (
	themeDark  = "dark"
	themeLight = "light"
)

// PrefState owns the dark-mode preference. It is a pure local mutation with
// no network dependency, so it carries no RequestStatus.
type PrefState struct {
	store domain.KeyValueStore

	mu       sync.Mutex
	darkMode bool
}

// NewPrefState creates a PrefState, restoring the persisted theme. Anything
// other than "dark" (including an absent key) means light mode.
func NewPrefState(store domain.KeyValueStore) *PrefState {
	p := &PrefState{store: store}
	raw, found, err := store.Get(themeKey)
	if err == nil && found {
		p.darkMode = string(raw) == themeDark
	}
	return p
}

// Toggle flips the preference, persists it synchronously, and returns the
// new value. A persistence failure keeps the in-memory flip; the preference
// is cosmetic and must never block the UI.
func (p *PrefState) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.darkMode = !p.darkMode
	value := themeLight
	if p.darkMode {
		value = themeDark
	}
	_ = p.store.Set(themeKey, []byte(value))
	return p.darkMode
}

// DarkMode returns the current preference.
func (p *PrefState) DarkMode() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.darkMode
}
