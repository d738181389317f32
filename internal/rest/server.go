package rest

import (
	"io"
	"log"

	"github.com/sarpt/playlist-web-api/pkg/catalog"
	"github.com/sarpt/playlist-web-api/pkg/playlist"
	"github.com/sarpt/playlist-web-api/pkg/state/pkg/playback"
	"github.com/sarpt/playlist-web-api/pkg/state/pkg/status"
)

//go:generate mockgen -destination=../mocks/mock_states.go -package=mocks . PlaybackState,GenresState,StatusState

const (
	logPrefix = "rest.Server#"

	name     = "REST Server"
	pathBase = "rest"
)

// PlaybackState is the playlist with its cursor, as shared between requests.
type PlaybackState interface {
	Add(entry playlist.Entry) playlist.Song
	Current() playlist.CurrentState
	Next() (playlist.Song, error)
	Previous() (playlist.Song, error)
	Remove(title string) (playlist.Song, error)
	Revision() uint64
	Select(title string) (playlist.Song, error)
	Shuffle() playback.Snapshot
	Snapshot() playback.Snapshot
	Songs() []playlist.Song
	ToggleLoop() bool
	TogglePlaying() bool
}

// GenresState is the catalog used for adding songs by genre.
type GenresState interface {
	All() map[string][]catalog.Entry
	Pick(genre, title string) (catalog.Entry, error)
	Revision() uint64
}

// StatusState reports clients observing the server.
type StatusState interface {
	ObservingAddresses() map[string][]status.ChannelVariant
}

// Config controls behaviour of the REST server.
type Config struct {
	AllowCORS bool
	ErrWriter io.Writer
	Genres    GenresState
	OutWriter io.Writer
	Playback  PlaybackState
	Status    StatusState
}

// Server is responsible for creating REST handlers, argument parsing and validation.
type Server struct {
	allowCORS bool
	errLog    *log.Logger
	genres    GenresState
	outLog    *log.Logger
	playback  PlaybackState
	status    StatusState
}

// NewServer returns rest.Server instance.
func NewServer(cfg Config) *Server {
	if cfg.OutWriter == nil {
		cfg.OutWriter = io.Discard
	}
	if cfg.ErrWriter == nil {
		cfg.ErrWriter = io.Discard
	}

	return &Server{
		allowCORS: cfg.AllowCORS,
		errLog:    log.New(cfg.ErrWriter, logPrefix, log.LstdFlags),
		genres:    cfg.Genres,
		outLog:    log.New(cfg.OutWriter, logPrefix, log.LstdFlags),
		playback:  cfg.Playback,
		status:    cfg.Status,
	}
}

func (s *Server) Name() string {
	return name
}

func (s *Server) PathBase() string {
	return pathBase
}
