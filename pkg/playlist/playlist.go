// Package playlist implements an ordered collection of songs with a movable cursor.
//
// Songs are kept in an arena of slots linked by indices. The playlist does not
// synchronize access - callers sharing it between goroutines are expected
// to guard every call with a single lock.
package playlist

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

const none = -1

type node struct {
	song     Song
	next     int
	previous int
}

// Config controls construction of a Playlist.
type Config struct {
	// DefaultDuration is assigned to songs added without duration. Zero or negative values fall back to the package DefaultDuration of 30 seconds.
	DefaultDuration int
	// Source drives shuffling. When nil, a time-seeded source is used.
	Source rand.Source
}

// Playlist holds songs in order, the current song and playback flags.
type Playlist struct {
	nodes           []node
	free            []int
	head            int
	tail            int
	current         int
	length          int
	playing         bool
	loopCurrent     bool
	defaultDuration int
	rand            *rand.Rand
}

// New constructs an empty Playlist.
func New(cfg Config) *Playlist {
	if cfg.DefaultDuration <= 0 {
		cfg.DefaultDuration = DefaultDuration
	}

	if cfg.Source == nil {
		cfg.Source = rand.NewSource(time.Now().UnixNano())
	}

	return &Playlist{
		head:            none,
		tail:            none,
		current:         none,
		defaultDuration: cfg.DefaultDuration,
		rand:            rand.New(cfg.Source),
	}
}

// Add appends a song after the tail of the playlist.
// The first song added to an empty playlist becomes the current one.
// Titles are not checked for duplicates.
func (p *Playlist) Add(entry Entry) Song {
	song := Song{
		UUID:     uuid.NewString(),
		Title:    entry.Title,
		Artist:   entry.Artist,
		Duration: entry.Duration,
	}
	if song.Artist == "" {
		song.Artist = unknownArtist
	}
	if song.Duration <= 0 {
		song.Duration = p.defaultDuration
	}

	idx := p.allocate(song)
	if p.tail == none {
		p.head = idx
		p.tail = idx
		p.current = idx
	} else {
		p.nodes[p.tail].next = idx
		p.nodes[idx].previous = p.tail
		p.tail = idx
	}
	p.length++

	return song
}

// Remove takes out the first song with the title, counting from the head.
// When the removed song was the current one, its next neighbour becomes current,
// or the previous one when it was the tail.
func (p *Playlist) Remove(title string) (Song, error) {
	idx := p.find(title)
	if idx == none {
		return Song{}, fmt.Errorf("could not remove '%s': %w", title, ErrNotFound)
	}

	removed := p.nodes[idx]
	if removed.previous != none {
		p.nodes[removed.previous].next = removed.next
	} else {
		p.head = removed.next
	}

	if removed.next != none {
		p.nodes[removed.next].previous = removed.previous
	} else {
		p.tail = removed.previous
	}

	if p.current == idx {
		if removed.next != none {
			p.current = removed.next
		} else {
			p.current = removed.previous
		}
	}

	p.release(idx)
	p.length--

	return removed.song, nil
}

// Next moves the cursor to the following song, wrapping to the head after the tail.
// With loop of the current song enabled, the cursor stays in place.
func (p *Playlist) Next() (Song, error) {
	if p.current == none {
		return Song{}, ErrEmptyPlaylist
	}

	if !p.loopCurrent {
		next := p.nodes[p.current].next
		if next == none {
			next = p.head
		}
		p.current = next
	}

	return p.nodes[p.current].song, nil
}

// Previous moves the cursor to the preceding song, wrapping to the tail before the head.
// With loop of the current song enabled, the cursor stays in place.
func (p *Playlist) Previous() (Song, error) {
	if p.current == none {
		return Song{}, ErrEmptyPlaylist
	}

	if !p.loopCurrent {
		previous := p.nodes[p.current].previous
		if previous == none {
			previous = p.tail
		}
		p.current = previous
	}

	return p.nodes[p.current].song, nil
}

// Select makes the first song with the title current and starts playback.
func (p *Playlist) Select(title string) (Song, error) {
	idx := p.find(title)
	if idx == none {
		return Song{}, fmt.Errorf("could not select '%s': %w", title, ErrNotFound)
	}

	p.current = idx
	p.playing = true

	return p.nodes[idx].song, nil
}

// ToggleLoop flips looping of the current song and returns the new value.
func (p *Playlist) ToggleLoop() bool {
	p.loopCurrent = !p.loopCurrent

	return p.loopCurrent
}

// TogglePlaying flips the playing flag and returns the new value.
func (p *Playlist) TogglePlaying() bool {
	p.playing = !p.playing

	return p.playing
}

// Shuffle reorders all songs uniformly at random and moves the cursor to the new head.
func (p *Playlist) Shuffle() {
	order := make([]int, 0, p.length)
	for idx := p.head; idx != none; idx = p.nodes[idx].next {
		order = append(order, idx)
	}

	p.rand.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	p.head = none
	p.tail = none
	for pos, idx := range order {
		p.nodes[idx].previous = none
		p.nodes[idx].next = none
		if pos > 0 {
			p.nodes[idx].previous = order[pos-1]
		}
		if pos < len(order)-1 {
			p.nodes[idx].next = order[pos+1]
		}
	}

	if len(order) > 0 {
		p.head = order[0]
		p.tail = order[len(order)-1]
	}
	p.current = p.head
}

// Songs returns all songs in playlist order.
func (p *Playlist) Songs() []Song {
	songs := make([]Song, 0, p.length)
	for idx := p.head; idx != none; idx = p.nodes[idx].next {
		songs = append(songs, p.nodes[idx].song)
	}

	return songs
}

// Current returns the song under the cursor. The second value is false for an empty playlist.
func (p *Playlist) Current() (Song, bool) {
	if p.current == none {
		return Song{}, false
	}

	return p.nodes[p.current].song, true
}

// State returns the cursor with playback flags.
// An empty playlist is reported as "None" by "Unknown" with the default duration.
func (p *Playlist) State() CurrentState {
	state := CurrentState{
		Title:       noneTitle,
		Artist:      unknownArtist,
		IsPlaying:   p.playing,
		Duration:    p.defaultDuration,
		LoopCurrent: p.loopCurrent,
	}

	if song, ok := p.Current(); ok {
		state.Title = song.Title
		state.Artist = song.Artist
		state.Duration = song.Duration
	}

	return state
}

// Len returns number of songs in the playlist.
func (p *Playlist) Len() int {
	return p.length
}

// Playing reports whether playback is started.
func (p *Playlist) Playing() bool {
	return p.playing
}

// LoopCurrent reports whether navigation is frozen on the current song.
func (p *Playlist) LoopCurrent() bool {
	return p.loopCurrent
}

func (p *Playlist) find(title string) int {
	for idx := p.head; idx != none; idx = p.nodes[idx].next {
		if p.nodes[idx].song.Title == title {
			return idx
		}
	}

	return none
}

// allocate places the song in a free slot, reusing released ones first.
func (p *Playlist) allocate(song Song) int {
	n := node{
		song:     song,
		next:     none,
		previous: none,
	}

	if len(p.free) > 0 {
		idx := p.free[len(p.free)-1]
		p.free = p.free[:len(p.free)-1]
		p.nodes[idx] = n

		return idx
	}

	p.nodes = append(p.nodes, n)
	return len(p.nodes) - 1
}

func (p *Playlist) release(idx int) {
	p.nodes[idx] = node{
		next:     none,
		previous: none,
	}
	p.free = append(p.free, idx)
}
