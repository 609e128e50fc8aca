package utils

import "sync"

// CourseLocks serializes subtree writes per course so two concurrent
// replace sequences on the same course cannot interleave.
var CourseLocks = &courseLockSet{locks: make(map[uint]*courseLock)}

type courseLock struct {
	mu   sync.Mutex
	refs int
}

type courseLockSet struct {
	mu    sync.Mutex
	locks map[uint]*courseLock
}

func (s *courseLockSet) Lock(courseID uint) {
	s.mu.Lock()
	l, ok := s.locks[courseID]
	if !ok {
		l = &courseLock{}
		s.locks[courseID] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
}

// Unlock releases the course's mutex and drops the map entry once no other
// caller holds or waits on it, so the set never grows with the course table.
func (s *courseLockSet) Unlock(courseID uint) {
	s.mu.Lock()
	l := s.locks[courseID]
	l.refs--
	if l.refs == 0 {
		delete(s.locks, courseID)
	}
	s.mu.Unlock()

	l.mu.Unlock()
}
