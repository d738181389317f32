package revision

import "sync"

type Identifier = uint64

// Storage counts changes of a state, starting from 0.
type Storage struct {
	lock     *sync.RWMutex
	revision Identifier
}

func NewStorage() *Storage {
	return &Storage{
		lock:     &sync.RWMutex{},
		revision: 0,
	}
}

func (rs *Storage) Revision() Identifier {
	rs.lock.RLock()
	defer rs.lock.RUnlock()

	return rs.revision
}

// Tick advances the revision and returns the new one.
func (rs *Storage) Tick() Identifier {
	rs.lock.Lock()
	defer rs.lock.Unlock()

	rs.revision += 1
	return rs.revision
}
