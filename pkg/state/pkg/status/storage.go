package status

import (
	"encoding/json"
	"sort"
	"sync"

	"github.com/sarpt/playlist-web-api/internal/common"
)

type SubscriberCB = func(change Change)

// ChannelVariant names an SSE channel observed by a client.
type ChannelVariant string

const (
	// ClientObserverAdded notifies about addition of new client observer.
	ClientObserverAdded common.ChangeVariant = "client-observer-added"

	// ClientObserverRemoved notifies about removal of connected client observer.
	ClientObserverRemoved common.ChangeVariant = "client-observer-removed"
)

// storageJSON is a status information in JSON form.
type storageJSON struct {
	ObservingAddresses map[string][]ChannelVariant `json:"observingAddresses"`
}

// Change holds information about changes to the server misc status.
type Change struct {
	ChangeVariant common.ChangeVariant
	Storage       *Storage
}

// MarshalJSON returns current status in JSON format. Satisfies json.Marshaller.
func (c Change) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Storage)
}

func (c Change) Variant() common.ChangeVariant {
	return c.ChangeVariant
}

type storageChangeSubscriber struct {
	cb SubscriberCB
}

func (s *storageChangeSubscriber) Receive(change Change) {
	s.cb(change)
}

// Storage holds information about server misc status.
type Storage struct {
	broadcaster        *common.ChangesBroadcaster[Change]
	observingAddresses map[string][]ChannelVariant
	lock               *sync.RWMutex
}

// NewStorage constructs Status state.
func NewStorage(broadcaster *common.ChangesBroadcaster[Change]) *Storage {
	return &Storage{
		broadcaster:        broadcaster,
		observingAddresses: map[string][]ChannelVariant{},
		lock:               &sync.RWMutex{},
	}
}

// ObservingAddresses returns a copy of mapping of a remote address to the channel variants.
func (s *Storage) ObservingAddresses() map[string][]ChannelVariant {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.copyObservingAddresses()
}

// AddObservingAddress adds remote address listening on specific channel variant to the status state.
func (s *Storage) AddObservingAddress(remoteAddr string, observerVariant ChannelVariant) {
	s.lock.Lock()
	observers := s.observingAddresses[remoteAddr]
	s.observingAddresses[remoteAddr] = append(observers, observerVariant)
	s.lock.Unlock()

	s.broadcaster.Send(Change{
		ChangeVariant: ClientObserverAdded,
		Storage:       s,
	})
}

// RemoveObservingAddress removes remote address listening on specific channel variant from the state.
func (s *Storage) RemoveObservingAddress(remoteAddr string, observerVariant ChannelVariant) {
	s.lock.Lock()

	observers, ok := s.observingAddresses[remoteAddr]
	if !ok {
		s.lock.Unlock()

		return
	}

	filteredObservers := []ChannelVariant{}
	for _, observer := range observers {
		if observer != observerVariant {
			filteredObservers = append(filteredObservers, observer)
		}
	}

	if len(filteredObservers) == 0 {
		delete(s.observingAddresses, remoteAddr)
	} else {
		s.observingAddresses[remoteAddr] = filteredObservers
	}

	s.lock.Unlock()

	s.broadcaster.Send(Change{
		ChangeVariant: ClientObserverRemoved,
		Storage:       s,
	})
}

// MarshalJSON satisfies json.Marshaller.
func (s *Storage) MarshalJSON() ([]byte, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	sJSON := storageJSON{
		ObservingAddresses: s.copyObservingAddresses(),
	}
	return json.Marshal(&sJSON)
}

func (s *Storage) Subscribe(cb SubscriberCB) func() {
	subscriber := storageChangeSubscriber{
		cb,
	}

	return s.broadcaster.Subscribe(&subscriber)
}

func (s *Storage) copyObservingAddresses() map[string][]ChannelVariant {
	addresses := map[string][]ChannelVariant{}
	for addr, variants := range s.observingAddresses {
		copied := append([]ChannelVariant{}, variants...)
		sort.Slice(copied, func(i, j int) bool { return copied[i] < copied[j] })
		addresses[addr] = copied
	}

	return addresses
}
