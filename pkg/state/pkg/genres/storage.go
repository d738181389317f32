package genres

import (
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"github.com/sarpt/playlist-web-api/internal/common"
	"github.com/sarpt/playlist-web-api/pkg/catalog"
	"github.com/sarpt/playlist-web-api/pkg/state/internal/revision"
)

type SubscriberCB = func(change Change)

const (
	// ReplacedChange notifies about the catalog being reloaded.
	ReplacedChange common.ChangeVariant = "replaced"
)

// Change is used to inform about changes to the genres catalog.
type Change struct {
	ChangeVariant common.ChangeVariant
	Genres        map[string][]catalog.Entry
}

// MarshalJSON returns changed genres in JSON format. Satisfies json.Marshaller.
func (c Change) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Genres)
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

// Storage holds the catalog of genres used when adding songs by genre.
type Storage struct {
	broadcaster *common.ChangesBroadcaster[Change]
	catalog     *catalog.Catalog
	lock        *sync.Mutex
	rand        *rand.Rand
	revision    *revision.Storage
}

// NewStorage constructs Genres state. When source is nil, a time-seeded one is used.
func NewStorage(c *catalog.Catalog, source rand.Source, broadcaster *common.ChangesBroadcaster[Change]) *Storage {
	if source == nil {
		source = rand.NewSource(time.Now().UnixNano())
	}

	return &Storage{
		broadcaster: broadcaster,
		catalog:     c,
		lock:        &sync.Mutex{},
		rand:        rand.New(source),
		revision:    revision.NewStorage(),
	}
}

// All returns a copy of all genres with their entries.
func (s *Storage) All() map[string][]catalog.Entry {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.catalog.All()
}

// Pick returns a song from the genre - the one with the title, or a random one when title is empty.
func (s *Storage) Pick(genre, title string) (catalog.Entry, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.catalog.Pick(genre, title, s.rand)
}

// Replace swaps the whole catalog.
func (s *Storage) Replace(c *catalog.Catalog) {
	s.lock.Lock()
	s.catalog = c
	s.revision.Tick()
	s.lock.Unlock()

	s.broadcaster.Send(Change{
		ChangeVariant: ReplacedChange,
		Genres:        c.All(),
	})
}

// MarshalJSON satisifes json.Marshaller.
func (s *Storage) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.All())
}

func (s *Storage) Revision() revision.Identifier {
	return s.revision.Revision()
}

func (s *Storage) Subscribe(cb SubscriberCB) func() {
	subscriber := storageChangeSubscriber{
		cb,
	}

	return s.broadcaster.Subscribe(&subscriber)
}
