package rest

import (
	"errors"
	"net/http"

	"github.com/sarpt/playlist-web-api/internal/common"
	"github.com/sarpt/playlist-web-api/pkg/catalog"
	"github.com/sarpt/playlist-web-api/pkg/playlist"
)

const (
	genresPath   = "/rest/genres"
	playbackPath = "/rest/playback"
	playlistPath = "/rest/playlist"
	songsPath    = "/rest/songs"
	statusPath   = "/rest/status"
)

// Handler returns http.Handler responsible for REST handling subtree.
func (s *Server) Handler() http.Handler {
	playbackHandlers := common.MethodHandlers{
		http.MethodPost: common.CreateFormHandler(common.FormHandlerConfig{
			Arguments:      s.postPlaybackFormArgumentsHandlers(),
			StatusForError: s.statusForError,
		}),
		http.MethodGet: s.getPlaybackHandler,
	}

	playlistHandlers := common.MethodHandlers{
		http.MethodGet: s.getPlaylistHandler,
	}

	songsHandlers := common.MethodHandlers{
		http.MethodGet: s.getSongsHandler,
		http.MethodPost: common.CreateFormHandler(common.FormHandlerConfig{
			Arguments:      s.postSongsFormArgumentsHandlers(),
			StatusForError: s.statusForError,
		}),
		http.MethodDelete: s.deleteSongsHandler,
	}

	genresHandlers := common.MethodHandlers{
		http.MethodGet: s.getGenresHandler,
	}

	statusHandlers := common.MethodHandlers{
		http.MethodGet: s.getStatusHandler,
	}

	allHandlers := map[string]common.MethodHandlers{
		genresPath:   genresHandlers,
		playbackPath: playbackHandlers,
		playlistPath: playlistHandlers,
		songsPath:    songsHandlers,
		statusPath:   statusHandlers,
	}

	mux := http.NewServeMux()
	for path, methodHandlers := range allHandlers {
		cfg := common.PathHandlerConfig{
			AllowCORS:      s.allowCORS,
			MethodHandlers: methodHandlers,
		}
		mux.HandleFunc(path, common.PathHandler(cfg))
	}

	return mux
}

// statusForError maps lookup failures to 404, the rest is an internal error.
func (s *Server) statusForError(err error) int {
	if errors.Is(err, playlist.ErrNotFound) || errors.Is(err, playlist.ErrEmptyPlaylist) || errors.Is(err, catalog.ErrNotFound) {
		return http.StatusNotFound
	}

	s.errLog.Printf("request failed: %s\n", err)
	return http.StatusInternalServerError
}
