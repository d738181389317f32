package sse

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/sarpt/playlist-web-api/pkg/state"
	"github.com/sarpt/playlist-web-api/pkg/state/pkg/genres"
	"github.com/sarpt/playlist-web-api/pkg/state/pkg/playback"
	"github.com/sarpt/playlist-web-api/pkg/state/pkg/status"
)

const (
	logPrefix = "sse.Server#"

	name     = "SSE Server"
	pathBase = "sse"

	genresSSEChannelVariant   status.ChannelVariant = "genres"
	playbackSSEChannelVariant status.ChannelVariant = "playback"
	statusSSEChannelVariant   status.ChannelVariant = "status"
)

var (
	registerPath = fmt.Sprintf("/%s/channels", pathBase)
)

// Server holds information about handled SSE connections and their observers.
type Server struct {
	allowCORS        bool
	cancel           context.CancelFunc
	channels         map[status.ChannelVariant]channel
	ctx              context.Context
	errLog           *log.Logger
	outLog           *log.Logger
	statesRepository state.Repository
	unsubscribers    []func()
}

// Config controls behaviour of the SSE server.
type Config struct {
	AllowCORS        bool
	ErrWriter        io.Writer
	OutWriter        io.Writer
	StatesRepository state.Repository
}

// NewServer prepares and returns SSE server to handle SSE connections and observers.
// Channels start receiving state changes immediately.
func NewServer(cfg Config) *Server {
	if cfg.OutWriter == nil {
		cfg.OutWriter = io.Discard
	}
	if cfg.ErrWriter == nil {
		cfg.ErrWriter = io.Discard
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		allowCORS:        cfg.AllowCORS,
		cancel:           cancel,
		channels:         map[status.ChannelVariant]channel{},
		ctx:              ctx,
		errLog:           log.New(cfg.ErrWriter, logPrefix, log.LstdFlags),
		outLog:           log.New(cfg.OutWriter, logPrefix, log.LstdFlags),
		statesRepository: cfg.StatesRepository,
	}
	s.subscribeToStateChanges()

	return s
}

// Handler returns http.Handler responsible for SSE handling subtree.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(registerPath, s.createSseRegisterHandler())

	return mux
}

func (s *Server) Name() string {
	return name
}

func (s *Server) PathBase() string {
	return pathBase
}

// Shutdown finishes all observed connections and stops receiving state changes.
func (s *Server) Shutdown() {
	s.cancel()

	for _, unsubscribe := range s.unsubscribers {
		unsubscribe()
	}
}

// subscribeToStateChanges starts listening on state changes channels for further distribution to its observers.
func (s *Server) subscribeToStateChanges() {
	playbackStorage := s.statesRepository.Playback()
	playbackChannel := NewStateChannel[playback.Change](playbackSSEChannelVariant, func() Change {
		return playback.Change{
			ChangeVariant: replayChangeVariant,
			Snapshot:      playbackStorage.Snapshot(),
		}
	})
	s.channels[playbackSSEChannelVariant] = playbackChannel

	genresStorage := s.statesRepository.Genres()
	genresChannel := NewStateChannel[genres.Change](genresSSEChannelVariant, func() Change {
		return genres.Change{
			ChangeVariant: replayChangeVariant,
			Genres:        genresStorage.All(),
		}
	})
	s.channels[genresSSEChannelVariant] = genresChannel

	statusStorage := s.statesRepository.Status()
	statusChannel := NewStateChannel[status.Change](statusSSEChannelVariant, func() Change {
		return status.Change{
			ChangeVariant: replayChangeVariant,
			Storage:       statusStorage,
		}
	})
	s.channels[statusSSEChannelVariant] = statusChannel

	s.unsubscribers = append(
		s.unsubscribers,
		playbackStorage.Subscribe(playbackChannel.BroadcastToChannelObservers),
		genresStorage.Subscribe(genresChannel.BroadcastToChannelObservers),
		statusStorage.Subscribe(statusChannel.BroadcastToChannelObservers),
	)
}
