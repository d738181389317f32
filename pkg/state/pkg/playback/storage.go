package playback

import (
	"encoding/json"
	"sync"

	"github.com/sarpt/playlist-web-api/internal/common"
	"github.com/sarpt/playlist-web-api/pkg/playlist"
	"github.com/sarpt/playlist-web-api/pkg/state/internal/revision"
)

type SubscriberCB = func(change Change)

const (
	// SongAddedChange notifies about a song appended to the playlist.
	SongAddedChange common.ChangeVariant = "songAdded"

	// SongRemovedChange notifies about a song removed from the playlist.
	SongRemovedChange common.ChangeVariant = "songRemoved"

	// CurrentChange notifies about the cursor moving to another song.
	CurrentChange common.ChangeVariant = "currentChange"

	// PlayingChange notifies about playback being started or paused.
	PlayingChange common.ChangeVariant = "playingChange"

	// LoopChange notifies about looping of the current song being toggled.
	LoopChange common.ChangeVariant = "loopChange"

	// ShuffledChange notifies about reordering of the whole playlist.
	ShuffledChange common.ChangeVariant = "shuffled"
)

// Snapshot is a consistent read of all songs and the cursor.
type Snapshot struct {
	Songs   []playlist.Song       `json:"songs"`
	Current playlist.CurrentState `json:"current"`
}

// Change is used to inform about changes to the Playback.
// Snapshot is taken right after the change, under the same lock.
type Change struct {
	ChangeVariant common.ChangeVariant
	Snapshot      Snapshot
}

// MarshalJSON returns change snapshot in JSON format. Satisfies json.Marshaller.
func (c Change) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Snapshot)
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

// Storage serializes access to the playlist shared between requests.
// Every operation holds the lock for its whole duration, so no reader observes a partially relinked playlist.
type Storage struct {
	broadcaster *common.ChangesBroadcaster[Change]
	lock        *sync.Mutex
	playlist    *playlist.Playlist
	revision    *revision.Storage
}

// NewStorage constructs Playback state around pl.
func NewStorage(pl *playlist.Playlist, broadcaster *common.ChangesBroadcaster[Change]) *Storage {
	return &Storage{
		broadcaster: broadcaster,
		lock:        &sync.Mutex{},
		playlist:    pl,
		revision:    revision.NewStorage(),
	}
}

// Add appends a song to the playlist.
func (s *Storage) Add(entry playlist.Entry) playlist.Song {
	var song playlist.Song
	s.mutate(SongAddedChange, func() error {
		song = s.playlist.Add(entry)
		return nil
	})

	return song
}

// Remove deletes the first song with the title.
func (s *Storage) Remove(title string) (playlist.Song, error) {
	var song playlist.Song
	_, err := s.mutate(SongRemovedChange, func() (err error) {
		song, err = s.playlist.Remove(title)
		return err
	})

	return song, err
}

// Select moves the cursor to the first song with the title and starts playback.
func (s *Storage) Select(title string) (playlist.Song, error) {
	var song playlist.Song
	_, err := s.mutate(CurrentChange, func() (err error) {
		song, err = s.playlist.Select(title)
		return err
	})

	return song, err
}

// Next moves the cursor forward.
func (s *Storage) Next() (playlist.Song, error) {
	var song playlist.Song
	_, err := s.mutate(CurrentChange, func() (err error) {
		song, err = s.playlist.Next()
		return err
	})

	return song, err
}

// Previous moves the cursor backward.
func (s *Storage) Previous() (playlist.Song, error) {
	var song playlist.Song
	_, err := s.mutate(CurrentChange, func() (err error) {
		song, err = s.playlist.Previous()
		return err
	})

	return song, err
}

// TogglePlaying flips playback between playing and paused.
func (s *Storage) TogglePlaying() bool {
	var playing bool
	s.mutate(PlayingChange, func() error {
		playing = s.playlist.TogglePlaying()
		return nil
	})

	return playing
}

// ToggleLoop flips looping of the current song.
func (s *Storage) ToggleLoop() bool {
	var loop bool
	s.mutate(LoopChange, func() error {
		loop = s.playlist.ToggleLoop()
		return nil
	})

	return loop
}

// Shuffle reorders the playlist, moving the cursor to the new first song.
// Returned snapshot is the order produced by this shuffle.
func (s *Storage) Shuffle() Snapshot {
	snapshot, _ := s.mutate(ShuffledChange, func() error {
		s.playlist.Shuffle()
		return nil
	})

	return snapshot
}

// Songs returns all songs in order.
func (s *Storage) Songs() []playlist.Song {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.playlist.Songs()
}

// Current returns the cursor state.
func (s *Storage) Current() playlist.CurrentState {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.playlist.State()
}

// Snapshot returns songs and the cursor read at once.
func (s *Storage) Snapshot() Snapshot {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.snapshot()
}

// MarshalJSON satisifes json.Marshaller.
func (s *Storage) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Snapshot())
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

// mutate runs change under the lock. Successful changes tick the revision and are broadcasted after unlocking.
// Returned snapshot is taken right after the change.
func (s *Storage) mutate(variant common.ChangeVariant, change func() error) (Snapshot, error) {
	s.lock.Lock()
	err := change()
	if err != nil {
		s.lock.Unlock()

		return Snapshot{}, err
	}

	snapshot := s.snapshot()
	s.revision.Tick()
	s.lock.Unlock()

	s.broadcaster.Send(Change{
		ChangeVariant: variant,
		Snapshot:      snapshot,
	})

	return snapshot, nil
}

func (s *Storage) snapshot() Snapshot {
	return Snapshot{
		Songs:   s.playlist.Songs(),
		Current: s.playlist.State(),
	}
}
