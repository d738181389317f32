package playlist

import "errors"

var (
	// ErrNotFound is returned when no song with a provided title exists in the playlist.
	ErrNotFound = errors.New("song not found")

	// ErrEmptyPlaylist is returned when cursor navigation is requested on a playlist without songs.
	ErrEmptyPlaylist = errors.New("playlist is empty")
)
