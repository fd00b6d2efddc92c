// Package score defines the scoring/achievement collaborator. Calls into
// it are fire-and-forget side effects of specific trades; the engine
// works fine with the Noop implementation.
package score

import "sync"

// Keeper is the score/achievement collaborator interface.
type Keeper interface {
	// AddAchievement grants an achievement and reports whether it was
	// newly added (false when already held).
	AddAchievement(name string) bool
	// AddScore adds n points to the session score.
	AddScore(n int)
}

// Memory is a thread-safe in-memory Keeper.
type Memory struct {
	mu           sync.Mutex
	score        int
	achievements map[string]bool
}

// NewMemory creates an empty Memory keeper.
func NewMemory() *Memory {
	return &Memory{achievements: make(map[string]bool)}
}

// AddAchievement grants an achievement, reporting whether it is new.
func (m *Memory) AddAchievement(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.achievements[name] {
		return false
	}
	m.achievements[name] = true
	return true
}

// AddScore adds n points to the session score.
func (m *Memory) AddScore(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score += n
}

// Score returns the current session score.
func (m *Memory) Score() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score
}

// Achievements returns the granted achievement names.
func (m *Memory) Achievements() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.achievements))
	for name := range m.achievements {
		out = append(out, name)
	}
	return out
}

// Noop is a Keeper that discards everything.
type Noop struct{}

func (Noop) AddAchievement(string) bool { return false }
func (Noop) AddScore(int)               {}
