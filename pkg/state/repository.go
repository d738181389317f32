package state

import (
	"math/rand"

	"github.com/sarpt/playlist-web-api/internal/common"
	"github.com/sarpt/playlist-web-api/pkg/catalog"
	"github.com/sarpt/playlist-web-api/pkg/playlist"
	"github.com/sarpt/playlist-web-api/pkg/state/pkg/genres"
	"github.com/sarpt/playlist-web-api/pkg/state/pkg/playback"
	"github.com/sarpt/playlist-web-api/pkg/state/pkg/status"
)

type Repository interface {
	Genres() *genres.Storage
	Playback() *playback.Storage
	Status() *status.Storage
	Close()
}

// Config controls construction of the states.
type Config struct {
	Catalog         *catalog.Catalog
	DefaultDuration int
	// Source seeds shuffling and random picks from the catalog. Nil results in time-seeded sources.
	Source rand.Source
}

type inMemoryRepository struct {
	closers  []func()
	genres   *genres.Storage
	playback *playback.Storage
	status   *status.Storage
}

func (r *inMemoryRepository) Genres() *genres.Storage {
	return r.genres
}

func (r *inMemoryRepository) Playback() *playback.Storage {
	return r.playback
}

func (r *inMemoryRepository) Status() *status.Storage {
	return r.status
}

// Close stops broadcasting changes of all states.
func (r *inMemoryRepository) Close() {
	for _, closer := range r.closers {
		closer()
	}
}

func NewRepository(cfg Config) Repository {
	if cfg.Catalog == nil {
		cfg.Catalog = catalog.Default()
	}

	genresBroadcaster := createAndInitChangesBroadcaster[genres.Change]()
	playbackBroadcaster := createAndInitChangesBroadcaster[playback.Change]()
	statusBroadcaster := createAndInitChangesBroadcaster[status.Change]()

	var playlistSource, genresSource rand.Source
	if cfg.Source != nil {
		seeds := rand.New(cfg.Source)
		playlistSource = rand.NewSource(seeds.Int63())
		genresSource = rand.NewSource(seeds.Int63())
	}

	pl := playlist.New(playlist.Config{
		DefaultDuration: cfg.DefaultDuration,
		Source:          playlistSource,
	})

	return &inMemoryRepository{
		closers: []func(){
			genresBroadcaster.Close,
			playbackBroadcaster.Close,
			statusBroadcaster.Close,
		},
		genres:   genres.NewStorage(cfg.Catalog, genresSource, genresBroadcaster),
		playback: playback.NewStorage(pl, playbackBroadcaster),
		status:   status.NewStorage(statusBroadcaster),
	}
}

func createAndInitChangesBroadcaster[Change common.Change]() *common.ChangesBroadcaster[Change] {
	broadcaster := common.NewChangesBroadcaster[Change]()
	broadcaster.Broadcast()

	return broadcaster
}
