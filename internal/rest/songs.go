package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sarpt/playlist-web-api/internal/common"
	"github.com/sarpt/playlist-web-api/pkg/playlist"
)

const (
	artistArg   = "artist"
	durationArg = "duration"
	genreArg    = "genre"
	titleArg    = "title"
)

var (
	errTitleRequired      = errors.New("title or genre argument is required")
	errTitleQueryRequired = errors.New("title query parameter is required")
)

type getSongsResponse struct {
	Songs []playlist.Song `json:"songs"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) getSongsHandler(res http.ResponseWriter, req *http.Request) {
	stateRevision := s.playback.Revision()
	if checkRevisionIsSame(stateRevision, req) {
		res.WriteHeader(http.StatusNotModified)
		return
	}

	setRevisionInResponse(stateRevision, res)
	common.WriteJSON(res, http.StatusOK, getSongsResponse{
		Songs: s.playback.Songs(),
	})
}

// deleteSongsHandler removes a song by the title passed in the query, since DELETE requests carry no form body.
// Empty title is a valid one, only a missing parameter is rejected.
func (s *Server) deleteSongsHandler(res http.ResponseWriter, req *http.Request) {
	if !req.URL.Query().Has(titleArg) {
		common.WriteJSON(res, http.StatusBadRequest, errorResponse{Error: errTitleQueryRequired.Error()})
		return
	}

	title := req.URL.Query().Get(titleArg)
	s.outLog.Printf("removing song '%s' due to request from %s\n", title, req.RemoteAddr)
	song, err := s.playback.Remove(title)
	if err != nil {
		common.WriteJSON(res, s.statusForError(err), errorResponse{Error: err.Error()})
		return
	}

	common.WriteJSON(res, http.StatusOK, song)
}

func (s *Server) addSongHandler(req *http.Request) (common.Payload, error) {
	duration, _ := strconv.Atoi(req.PostFormValue(durationArg))
	entry := playlist.Entry{
		Title:    req.PostFormValue(titleArg),
		Artist:   req.PostFormValue(artistArg),
		Duration: duration,
	}

	s.outLog.Printf("adding song '%s' due to request from %s\n", entry.Title, req.RemoteAddr)
	return s.playback.Add(entry), nil
}

func (s *Server) addGenreSongHandler(req *http.Request) (common.Payload, error) {
	genre := req.PostFormValue(genreArg)
	title := req.PostFormValue(titleArg)

	catalogEntry, err := s.genres.Pick(genre, title)
	if err != nil {
		return nil, err
	}

	duration, _ := strconv.Atoi(req.PostFormValue(durationArg))
	entry := playlist.Entry{
		Title:    catalogEntry.Title,
		Artist:   catalogEntry.Artist,
		Duration: duration,
	}

	s.outLog.Printf("adding song '%s' from genre '%s' due to request from %s\n", entry.Title, genre, req.RemoteAddr)
	return s.playback.Add(entry), nil
}

func (s *Server) postSongsFormArgumentsHandlers() map[string]common.FormArgument {
	return map[string]common.FormArgument{
		artistArg: {
			Validate: validateTitleOrGenrePresent,
		},
		durationArg: {
			Validate: func(req *http.Request) error {
				err := validateTitleOrGenrePresent(req)
				if err != nil {
					return err
				}

				_, err = strconv.Atoi(req.PostFormValue(durationArg))
				return err
			},
		},
		genreArg: {
			Handle: s.addGenreSongHandler,
		},
		titleArg: {
			Handle: s.addSongHandler,
			ShouldHandle: func(req *http.Request) bool {
				_, withGenre := req.PostForm[genreArg]
				return !withGenre
			},
		},
	}
}

func validateTitleOrGenrePresent(req *http.Request) error {
	_, withTitle := req.PostForm[titleArg]
	_, withGenre := req.PostForm[genreArg]
	if !withTitle && !withGenre {
		return errTitleRequired
	}

	return nil
}
