// Package catalog holds static genre-keyed lists of songs that can be added to a playlist.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"sort"

	"github.com/samber/lo"
)

var (
	// ErrNotFound is a kind shared by all lookup failures in the catalog.
	ErrNotFound = errors.New("not found in catalog")

	// ErrGenreNotFound is returned for genres not present in the catalog.
	ErrGenreNotFound = fmt.Errorf("genre %w", ErrNotFound)

	// ErrSongNotInGenre is returned when a genre exists but has no matching song.
	ErrSongNotInGenre = fmt.Errorf("song in genre %w", ErrNotFound)

	//go:embed default.json
	defaultCatalog []byte
)

// Entry is a single song of a genre.
type Entry struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

// Catalog maps genre names to ordered song entries. Catalog is immutable after construction.
type Catalog struct {
	genres map[string][]Entry
}

// New constructs a Catalog from a copy of provided genres.
func New(genres map[string][]Entry) *Catalog {
	c := &Catalog{
		genres: map[string][]Entry{},
	}

	for genre, entries := range genres {
		c.genres[genre] = append([]Entry{}, entries...)
	}

	return c
}

// Default returns a catalog built into the binary.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is malformed: %s", err))
	}

	return c
}

// Parse reads catalog in the JSON form of {"genre": [{"title": "...", "artist": "..."}]}.
func Parse(data []byte) (*Catalog, error) {
	genres := map[string][]Entry{}

	err := json.Unmarshal(data, &genres)
	if err != nil {
		return nil, fmt.Errorf("could not parse catalog: %w", err)
	}

	return New(genres), nil
}

// LoadFile parses catalog stored under path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// LoadFiles parses all catalogs under paths and merges them in order, starting from base.
// Files that fail to load are reported together, the rest is still merged.
func LoadFiles(base *Catalog, paths []string) (*Catalog, error) {
	result := base
	var errs []error

	for _, path := range paths {
		c, err := LoadFile(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		result = result.Merge(c)
	}

	return result, errors.Join(errs...)
}

// Merge returns a new catalog with entries of other appended to the genres of c.
func (c *Catalog) Merge(other *Catalog) *Catalog {
	merged := New(c.genres)
	for genre, entries := range other.genres {
		merged.genres[genre] = append(merged.genres[genre], entries...)
	}

	return merged
}

// Genres returns sorted genre names.
func (c *Catalog) Genres() []string {
	genres := lo.Keys(c.genres)
	sort.Strings(genres)

	return genres
}

// All returns a copy of all genres with their entries.
func (c *Catalog) All() map[string][]Entry {
	return lo.MapValues(c.genres, func(entries []Entry, _ string) []Entry {
		return append([]Entry{}, entries...)
	})
}

// Entries returns entries of the genre.
func (c *Catalog) Entries(genre string) ([]Entry, error) {
	entries, ok := c.genres[genre]
	if !ok {
		return nil, fmt.Errorf("'%s': %w", genre, ErrGenreNotFound)
	}

	return append([]Entry{}, entries...), nil
}

// Pick returns the entry with the title from the genre.
// When title is empty, a uniformly random entry of the genre is returned.
func (c *Catalog) Pick(genre, title string, rnd *rand.Rand) (Entry, error) {
	entries, err := c.Entries(genre)
	if err != nil {
		return Entry{}, err
	}

	if title == "" {
		if len(entries) == 0 {
			return Entry{}, fmt.Errorf("genre '%s' is empty: %w", genre, ErrSongNotInGenre)
		}

		return entries[rnd.Intn(len(entries))], nil
	}

	entry, ok := lo.Find(entries, func(e Entry) bool {
		return e.Title == title
	})
	if !ok {
		return Entry{}, fmt.Errorf("'%s' in '%s': %w", title, genre, ErrSongNotInGenre)
	}

	return entry, nil
}
