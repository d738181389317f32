package sse

import (
	"errors"
	"sync"

	"github.com/sarpt/playlist-web-api/internal/common"
	"github.com/sarpt/playlist-web-api/pkg/state/pkg/status"
)

const (
	replayChangeVariant = "replay"

	// observerBufferSize allows the broadcaster to hand over a change while the observer is still writing the previous one.
	observerBufferSize = 1
)

var (
	errNoObserver = errors.New("no observer found for provided address")
)

type Change interface {
	Variant() common.ChangeVariant
	MarshalJSON() ([]byte, error)
}

// StateChannel distributes changes of a single state to the SSE observers.
type StateChannel[CT Change] struct {
	lock      *sync.RWMutex
	observers map[string]chan CT
	replay    func() Change
	variant   status.ChannelVariant
}

// NewStateChannel constructs channel of variant. replay returns a payload describing the whole state.
func NewStateChannel[CT Change](variant status.ChannelVariant, replay func() Change) *StateChannel[CT] {
	return &StateChannel[CT]{
		lock:      &sync.RWMutex{},
		observers: map[string]chan CT{},
		replay:    replay,
		variant:   variant,
	}
}

func (st *StateChannel[CT]) AddObserver(address string) {
	changes := make(chan CT, observerBufferSize)

	st.lock.Lock()
	defer st.lock.Unlock()

	st.observers[address] = changes
}

func (st *StateChannel[CT]) RemoveObserver(address string) {
	st.lock.Lock()
	defer st.lock.Unlock()

	changes, ok := st.observers[address]
	if !ok {
		return
	}

	close(changes)
	delete(st.observers, address)
}

func (st *StateChannel[CT]) Replay(res ResponseWriter) error {
	return res.SendChange(st.replay(), st.Variant(), replayChangeVariant)
}

// ServeObserver writes changes to the observer until it is removed.
func (st *StateChannel[CT]) ServeObserver(address string, res ResponseWriter, done chan<- bool, errs chan<- error) {
	defer close(done)

	st.lock.RLock()
	changes, ok := st.observers[address]
	st.lock.RUnlock()

	if !ok {
		errs <- errNoObserver
		done <- true

		return
	}

	for {
		change, more := <-changes
		if !more {
			done <- true

			return
		}

		err := res.SendChange(change, st.Variant(), string(change.Variant()))
		if err != nil {
			errs <- err
		}
	}
}

func (st *StateChannel[CT]) BroadcastToChannelObservers(change CT) {
	st.lock.RLock()
	defer st.lock.RUnlock()

	for _, observer := range st.observers {
		observer <- change
	}
}

func (st *StateChannel[CT]) Variant() status.ChannelVariant {
	return st.variant
}
