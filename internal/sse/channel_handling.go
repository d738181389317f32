package sse

import (
	"net/http"
	"sync"

	"github.com/sarpt/playlist-web-api/pkg/state/pkg/status"
)

const (
	replaySseStateArg = "replay"
	sseChannelArg     = "channel"
)

type getSseHandler = func(res http.ResponseWriter, req *http.Request)

func (s *Server) createSseRegisterHandler() getSseHandler {
	return func(res http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			res.WriteHeader(http.StatusMethodNotAllowed)

			return
		}

		requestedChannels := s.requestedChannels(req)
		if len(requestedChannels) == 0 {
			res.WriteHeader(http.StatusBadRequest)

			return
		}

		sseResWriter, err := newResponseWriter(res, s.allowCORS)
		if err != nil {
			s.errLog.Printf("could not register sse observer for %s: %s\n", req.RemoteAddr, err)
			res.WriteHeader(http.StatusBadRequest)

			return
		}
		res.WriteHeader(http.StatusOK)
		sseResWriter.flusher.Flush()

		wg := &sync.WaitGroup{}
		for _, sseChannel := range requestedChannels {
			wg.Add(1)
			go s.observeChannelVariant(sseResWriter, req, sseChannel, wg)
		}

		wg.Wait()
		s.outLog.Printf("all sse channels closed for %s\n", req.RemoteAddr)
	}
}

// requestedChannels returns known channels named in the query, each at most once.
func (s *Server) requestedChannels(req *http.Request) []channel {
	var requested []channel
	seen := map[status.ChannelVariant]bool{}

	for _, reqChannel := range req.URL.Query()[sseChannelArg] {
		channelVariant := status.ChannelVariant(reqChannel)
		if seen[channelVariant] {
			continue
		}

		sseChannel, ok := s.channels[channelVariant]
		if !ok {
			continue
		}

		seen[channelVariant] = true
		requested = append(requested, sseChannel)
	}

	return requested
}

func (s *Server) observeChannelVariant(res ResponseWriter, req *http.Request, sseChannel channel, wg *sync.WaitGroup) {
	defer wg.Done()

	remoteAddr := req.RemoteAddr
	sseChannel.AddObserver(remoteAddr)
	s.statesRepository.Status().AddObservingAddress(remoteAddr, sseChannel.Variant())
	s.outLog.Printf("added %s observer with addr %s\n", sseChannel.Variant(), remoteAddr)

	if replaySseState(req) {
		err := sseChannel.Replay(res)
		if err != nil {
			s.errLog.Printf("could not replay data on sse: %s\n", err)
		}
	}

	done := make(chan bool, 1)
	errs := make(chan error)
	go sseChannel.ServeObserver(remoteAddr, res, done, errs)
	go s.logObserverErrors(errs, done)

	select {
	case <-done:
		s.outLog.Printf("sse observation on channel %s done for %s\n", sseChannel.Variant(), remoteAddr)
	case <-req.Context().Done():
		s.removeObserver(remoteAddr, sseChannel, done)
	case <-s.ctx.Done():
		s.removeObserver(remoteAddr, sseChannel, done)
	}
}

// removeObserver stops the observer and waits until it no longer writes to the connection.
func (s *Server) removeObserver(remoteAddr string, sseChannel channel, done <-chan bool) {
	sseChannel.RemoveObserver(remoteAddr)
	<-done
	s.statesRepository.Status().RemoveObservingAddress(remoteAddr, sseChannel.Variant())
	s.outLog.Printf("removing %s observer with addr %s\n", sseChannel.Variant(), remoteAddr)
}

// logObserverErrors drains errors of the observer until it finishes serving.
func (s *Server) logObserverErrors(errs <-chan error, done <-chan bool) {
	for {
		select {
		case err := <-errs:
			s.errLog.Println(err.Error())
		case <-done:
			return
		}
	}
}

func replaySseState(req *http.Request) bool {
	replay, ok := req.URL.Query()[replaySseStateArg]

	return ok && len(replay) > 0 && replay[0] == "true"
}
