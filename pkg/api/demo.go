package api

import "github.com/sarpt/playlist-web-api/pkg/playlist"

var demoSongs = []playlist.Entry{
	{Title: "Someone Like You", Artist: "Adele"},
	{Title: "Blinding Lights", Artist: "The Weeknd"},
	{Title: "Perfect", Artist: "Ed Sheeran"},
	{Title: "Believer", Artist: "Imagine Dragons"},
	{Title: "Shape of You", Artist: "Ed Sheeran"},
	{Title: "Rolling in the Deep", Artist: "Adele"},
	{Title: "Counting Stars", Artist: "OneRepublic"},
	{Title: "Let Her Go", Artist: "Passenger"},
	{Title: "Hymn for the Weekend", Artist: "Coldplay"},
	{Title: "Cheap Thrills", Artist: "Sia"},
}

func (s *Server) seedDemoSongs() {
	for _, entry := range demoSongs {
		s.statesRepository.Playback().Add(entry)
	}

	s.outLog.Printf("added %d demo songs to the playlist\n", len(demoSongs))
}
