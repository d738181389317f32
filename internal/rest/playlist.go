package rest

import (
	"net/http"

	"github.com/sarpt/playlist-web-api/internal/common"
)

func (s *Server) getPlaylistHandler(res http.ResponseWriter, req *http.Request) {
	stateRevision := s.playback.Revision()
	if checkRevisionIsSame(stateRevision, req) {
		res.WriteHeader(http.StatusNotModified)
		return
	}

	setRevisionInResponse(stateRevision, res)
	common.WriteJSON(res, http.StatusOK, s.playback.Snapshot())
}
