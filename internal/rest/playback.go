package rest

import (
	"net/http"
	"strconv"

	"github.com/sarpt/playlist-web-api/internal/common"
)

const (
	nextArg          = "next"
	previousArg      = "previous"
	selectArg        = "select"
	shuffleArg       = "shuffle"
	toggleLoopArg    = "toggleLoop"
	togglePlayingArg = "togglePlaying"
)

type songResponse struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

type loopResponse struct {
	Looping bool `json:"looping"`
}

type playingResponse struct {
	IsPlaying bool `json:"isPlaying"`
}

func (s *Server) getPlaybackHandler(res http.ResponseWriter, req *http.Request) {
	stateRevision := s.playback.Revision()
	if checkRevisionIsSame(stateRevision, req) {
		res.WriteHeader(http.StatusNotModified)
		return
	}

	setRevisionInResponse(stateRevision, res)
	common.WriteJSON(res, http.StatusOK, s.playback.Current())
}

func (s *Server) nextHandler(req *http.Request) (common.Payload, error) {
	if !enabled(req, nextArg) {
		return nil, nil
	}

	s.outLog.Printf("moving to next song due to request from %s\n", req.RemoteAddr)
	song, err := s.playback.Next()
	if err != nil {
		return nil, err
	}

	return songResponse{Title: song.Title, Artist: song.Artist}, nil
}

func (s *Server) previousHandler(req *http.Request) (common.Payload, error) {
	if !enabled(req, previousArg) {
		return nil, nil
	}

	s.outLog.Printf("moving to previous song due to request from %s\n", req.RemoteAddr)
	song, err := s.playback.Previous()
	if err != nil {
		return nil, err
	}

	return songResponse{Title: song.Title, Artist: song.Artist}, nil
}

func (s *Server) selectHandler(req *http.Request) (common.Payload, error) {
	title := req.PostFormValue(selectArg)

	s.outLog.Printf("selecting song '%s' due to request from %s\n", title, req.RemoteAddr)
	song, err := s.playback.Select(title)
	if err != nil {
		return nil, err
	}

	return songResponse{Title: song.Title, Artist: song.Artist}, nil
}

func (s *Server) shuffleHandler(req *http.Request) (common.Payload, error) {
	if !enabled(req, shuffleArg) {
		return nil, nil
	}

	s.outLog.Printf("shuffling playlist due to request from %s\n", req.RemoteAddr)
	return s.playback.Shuffle(), nil
}

func (s *Server) toggleLoopHandler(req *http.Request) (common.Payload, error) {
	if !enabled(req, toggleLoopArg) {
		return nil, nil
	}

	looping := s.playback.ToggleLoop()
	s.outLog.Printf("changing current song looping to %t due to request from %s\n", looping, req.RemoteAddr)

	return loopResponse{Looping: looping}, nil
}

func (s *Server) togglePlayingHandler(req *http.Request) (common.Payload, error) {
	if !enabled(req, togglePlayingArg) {
		return nil, nil
	}

	playing := s.playback.TogglePlaying()
	s.outLog.Printf("changing playing to %t due to request from %s\n", playing, req.RemoteAddr)

	return playingResponse{IsPlaying: playing}, nil
}

func (s *Server) postPlaybackFormArgumentsHandlers() map[string]common.FormArgument {
	return map[string]common.FormArgument{
		nextArg: {
			Exclusive: true,
			Handle:    s.nextHandler,
			Validate:  validateBool(nextArg),
		},
		previousArg: {
			Exclusive: true,
			Handle:    s.previousHandler,
			Validate:  validateBool(previousArg),
		},
		selectArg: {
			Exclusive: true,
			Handle:    s.selectHandler,
		},
		shuffleArg: {
			Exclusive: true,
			Handle:    s.shuffleHandler,
			Validate:  validateBool(shuffleArg),
		},
		toggleLoopArg: {
			Handle:   s.toggleLoopHandler,
			Validate: validateBool(toggleLoopArg),
		},
		togglePlayingArg: {
			Handle:   s.togglePlayingHandler,
			Validate: validateBool(togglePlayingArg),
		},
	}
}

func validateBool(arg string) common.FormArgumentValidator {
	return func(req *http.Request) error {
		_, err := strconv.ParseBool(req.PostFormValue(arg))
		return err
	}
}

// enabled reports whether a boolean argument, already validated, is true.
func enabled(req *http.Request, arg string) bool {
	value, _ := strconv.ParseBool(req.PostFormValue(arg))
	return value
}
