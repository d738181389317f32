package rest

import (
	"net/http"

	"github.com/sarpt/playlist-web-api/internal/common"
	"github.com/sarpt/playlist-web-api/pkg/catalog"
)

type getGenresResponse struct {
	Genres map[string][]catalog.Entry `json:"genres"`
}

func (s *Server) getGenresHandler(res http.ResponseWriter, req *http.Request) {
	stateRevision := s.genres.Revision()
	if checkRevisionIsSame(stateRevision, req) {
		res.WriteHeader(http.StatusNotModified)
		return
	}

	setRevisionInResponse(stateRevision, res)
	common.WriteJSON(res, http.StatusOK, getGenresResponse{
		Genres: s.genres.All(),
	})
}
