// Package inventory defines the external inventory collaborator the
// engine consumes. The engine never reaches into a global inventory; an
// implementation is injected at construction.
package inventory

import (
	"sync"

	"github.com/dmateos/startrader/internal/domain"
)

// ItemKind names an item tracked by the inventory collaborator: the five
// deployable unit kinds plus the three special items whose quantities
// count toward inventory usage.
type ItemKind string

const (
	ItemRobot    ItemKind = "robot"
	ItemMerchant ItemKind = "merchant"
	ItemWeapons  ItemKind = "weapons"
	ItemArmy     ItemKind = "army"
	ItemArchon   ItemKind = "archon"
	ItemBody     ItemKind = "body"
	ItemSoul     ItemKind = "soul"
	ItemSpirit   ItemKind = "spirit"
)

// SpecialItems are the items whose held quantities count toward
// inventory usage. Held units do not; they grant capacity instead.
var SpecialItems = []ItemKind{ItemBody, ItemSoul, ItemSpirit}

// UnitItem maps a unit kind to its inventory item.
func UnitItem(k domain.UnitKind) ItemKind {
	return ItemKind(k)
}

// Manager is the inventory collaborator interface.
type Manager interface {
	// Item returns the held quantity of an item kind.
	Item(kind ItemKind) int
	// Remove debits up to amount of an item kind. It reports false and
	// removes nothing when fewer than amount are held.
	Remove(kind ItemKind, amount int) bool
}

// MemoryManager is a thread-safe in-memory Manager, used by the session
// wiring and by tests.
type MemoryManager struct {
	mu    sync.RWMutex
	items map[ItemKind]int
}

// NewMemoryManager creates an empty MemoryManager.
func NewMemoryManager() *MemoryManager {
	return &MemoryManager{items: make(map[ItemKind]int)}
}

// Item returns the held quantity of an item kind.
func (m *MemoryManager) Item(kind ItemKind) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.items[kind]
}

// Add credits amount of an item kind.
func (m *MemoryManager) Add(kind ItemKind, amount int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[kind] += amount
}

// Remove debits amount of an item kind if enough are held.
func (m *MemoryManager) Remove(kind ItemKind, amount int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.items[kind] < amount {
		return false
	}
	m.items[kind] -= amount
	if m.items[kind] == 0 {
		delete(m.items, kind)
	}
	return true
}
