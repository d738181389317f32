package rest

import (
	"net/http"

	"github.com/sarpt/playlist-web-api/internal/common"
	"github.com/sarpt/playlist-web-api/pkg/state/pkg/status"
)

type getStatusResponse struct {
	ObservingAddresses map[string][]status.ChannelVariant `json:"observingAddresses"`
}

func (s *Server) getStatusHandler(res http.ResponseWriter, req *http.Request) {
	common.WriteJSON(res, http.StatusOK, getStatusResponse{
		ObservingAddresses: s.status.ObservingAddresses(),
	})
}
