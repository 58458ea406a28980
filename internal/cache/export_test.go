package cache

import "time"

// SetNow replaces the clock of the cache.
func (m *Memory) SetNow(now func() time.Time) {
	m.now = now
}

// Len returns the number of stored entries, expired ones included.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
