package spawn

import "sync"

// Fleet is the append-only obstacle collection shared by the spawn timer and the frame task
// Obstacles are never removed; crossed obstacles are repositioned in place
type Fleet struct {
	mu     sync.RWMutex
	items  []*Obstacle
	counts Counts
}

// NewFleet creates an empty fleet
func NewFleet() *Fleet {
	return &Fleet{}
}

// SpawnWith runs the cap check and the append under one lock
// fn receives the current counts and returns the obstacle to append
func (f *Fleet) SpawnWith(fn func(Counts) (*Obstacle, bool)) (*Obstacle, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	o, ok := fn(f.counts)
	if !ok || o == nil {
		return nil, false
	}
	f.items = append(f.items, o)
	f.counts.add(o.Kind)
	return o, true
}

// Snapshot returns the current obstacles; later appends never show up in the returned slice
func (f *Fleet) Snapshot() []*Obstacle {
	f.mu.RLock()
	defer f.mu.RUnlock()
	n := len(f.items)
	return f.items[:n:n]
}

// Counts returns spawned totals per kind
func (f *Fleet) Counts() Counts {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.counts
}

// Len returns the number of obstacles
func (f *Fleet) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.items)
}

// Advance steps every obstacle one frame and recycles those past the near edge
// Returns the number of repositioned obstacles
func (f *Fleet) Advance(s *Spawner) int {
	field := s.Field()
	recycled := 0
	for _, o := range f.Snapshot() {
		o.Step()
		if field.PastNearEdge(o.Z) {
			s.Reposition(o)
			recycled++
		}
	}
	return recycled
}
