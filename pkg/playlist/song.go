package playlist

const (
	// DefaultDuration is used for songs added without explicit duration (in seconds).
	DefaultDuration = 30

	unknownArtist = "Unknown"
	noneTitle     = "None"
)

// Song is a single entry of a playlist.
type Song struct {
	UUID     string `json:"uuid"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Duration int    `json:"duration"`
}

// Entry describes a song to be added to a playlist.
// Empty Artist and non-positive Duration are replaced with defaults on Add.
type Entry struct {
	Title    string
	Artist   string
	Duration int
}

// CurrentState describes the cursor of a playlist together with playback flags.
type CurrentState struct {
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	IsPlaying   bool   `json:"isPlaying"`
	Duration    int    `json:"duration"`
	LoopCurrent bool   `json:"loopCurrent"`
}
