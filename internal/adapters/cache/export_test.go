package cache

import "time"

// SetClock replaces the time source of m.
func (m *Memory) SetClock(now func() time.Time) { m.now = now }
