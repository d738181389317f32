package common

import (
	"sync"
)

type Subscriber[CT any] interface {
	Receive(change CT)
}

// Broadcaster distributes payloads sent to it to all subscribers, in order of sending.
type Broadcaster[CT any] struct {
	changes     chan CT
	done        chan struct{}
	lock        *sync.RWMutex
	nextID      int
	subscribers map[int]Subscriber[CT]
}

func NewBroadcaster[CT any]() *Broadcaster[CT] {
	return &Broadcaster[CT]{
		changes:     make(chan CT),
		done:        make(chan struct{}),
		lock:        &sync.RWMutex{},
		subscribers: map[int]Subscriber[CT]{},
	}
}

// Subscribe adds subscriber to the broadcaster. Returned function removes it.
func (cb *Broadcaster[CT]) Subscribe(sub Subscriber[CT]) func() {
	cb.lock.Lock()
	defer cb.lock.Unlock()

	id := cb.nextID
	cb.nextID++
	cb.subscribers[id] = sub

	return func() {
		cb.lock.Lock()
		defer cb.lock.Unlock()

		delete(cb.subscribers, id)
	}
}

// Send blocks until the payload is picked up by the broadcasting goroutine.
// After Close, payloads are dropped.
func (cb *Broadcaster[CT]) Send(payload CT) {
	select {
	case cb.changes <- payload:
	case <-cb.done:
	}
}

// Broadcast starts distributing payloads in a separate goroutine.
func (cb *Broadcaster[CT]) Broadcast() {
	go func() {
		for {
			select {
			case change := <-cb.changes:
				cb.lock.RLock()
				for _, subscriber := range cb.subscribers {
					subscriber.Receive(change)
				}
				cb.lock.RUnlock()
			case <-cb.done:
				return
			}
		}
	}()
}

// Close stops broadcasting.
func (cb *Broadcaster[CT]) Close() {
	close(cb.done)
}
