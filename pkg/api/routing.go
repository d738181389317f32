package api

import (
	"fmt"
	"net/http"
)

// pluggableServer serves a subtree of the API under its path base.
type pluggableServer interface {
	Handler() http.Handler
	Name() string
	PathBase() string
}

func (s *Server) mainHandler() *http.ServeMux {
	mux := http.NewServeMux()

	for _, server := range []pluggableServer{s.restServer, s.sseServer} {
		pattern := fmt.Sprintf("/%s/", server.PathBase())
		mux.Handle(pattern, server.Handler())
		s.outLog.Printf("%s registered at %s\n", server.Name(), pattern)
	}

	return mux
}
