package dataset

import "sync/atomic"

// Store hands out the current dataset snapshot. Reloads replace the whole
// snapshot atomically, so in-flight requests keep the tables they started
// with and never observe a half-updated dataset.
type Store struct {
	snap atomic.Pointer[Snapshot]
}

func NewStore(s *Snapshot) *Store {
	st := &Store{}
	st.snap.Store(s)
	return st
}

func (s *Store) Snapshot() *Snapshot {
	return s.snap.Load()
}

func (s *Store) Swap(next *Snapshot) {
	if next == nil {
		return
	}
	s.snap.Store(next)
}
