package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/sarpt/playlist-web-api/internal/rest"
	"github.com/sarpt/playlist-web-api/internal/sse"
	"github.com/sarpt/playlist-web-api/pkg/catalog"
	"github.com/sarpt/playlist-web-api/pkg/state"
)

const (
	logPrefix = "api.Server#"

	shutdownTimeout = 5 * time.Second
)

// Server is used to serve API and hold state accessible to the API.
type Server struct {
	address          string
	catalogPaths     []string
	errLog           *log.Logger
	fsWatcher        *fsnotify.Watcher
	httpServer       *http.Server
	outLog           *log.Logger
	restServer       *rest.Server
	sseServer        *sse.Server
	statesRepository state.Repository
}

// Config controls behaviour of the api server.
type Config struct {
	Address   string
	AllowCORS bool
	// CatalogPaths lists catalog files or directories with *.json catalogs, merged over the built-in catalog in order.
	CatalogPaths    []string
	DefaultDuration int
	ErrWriter       io.Writer
	OutWriter       io.Writer
	// SeedDemo adds demo songs to the playlist on start.
	SeedDemo bool
}

// NewServer prepares and returns a server that can be used to handle API calls.
// Catalogs that fail to load are logged and skipped.
func NewServer(cfg Config) (*Server, error) {
	if cfg.OutWriter == nil {
		cfg.OutWriter = os.Stdout
	}
	if cfg.ErrWriter == nil {
		cfg.ErrWriter = os.Stderr
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not initialize filesystem watcher: %w", err)
	}

	errLog := log.New(cfg.ErrWriter, logPrefix, log.LstdFlags)
	outLog := log.New(cfg.OutWriter, logPrefix, log.LstdFlags)

	initialCatalog, err := catalog.LoadFiles(catalog.Default(), catalogFiles(cfg.CatalogPaths))
	if err != nil {
		errLog.Printf("some catalogs could not be loaded: %s\n", err)
	}
	outLog.Printf("catalog genres: %s\n", strings.Join(initialCatalog.Genres(), ", "))

	statesRepository := state.NewRepository(state.Config{
		Catalog:         initialCatalog,
		DefaultDuration: cfg.DefaultDuration,
	})

	restServer := rest.NewServer(rest.Config{
		AllowCORS: cfg.AllowCORS,
		ErrWriter: cfg.ErrWriter,
		Genres:    statesRepository.Genres(),
		OutWriter: cfg.OutWriter,
		Playback:  statesRepository.Playback(),
		Status:    statesRepository.Status(),
	})

	sseServer := sse.NewServer(sse.Config{
		AllowCORS:        cfg.AllowCORS,
		ErrWriter:        cfg.ErrWriter,
		OutWriter:        cfg.OutWriter,
		StatesRepository: statesRepository,
	})

	server := &Server{
		address:          cfg.Address,
		catalogPaths:     cfg.CatalogPaths,
		errLog:           errLog,
		fsWatcher:        watcher,
		outLog:           outLog,
		restServer:       restServer,
		sseServer:        sseServer,
		statesRepository: statesRepository,
	}

	server.httpServer = &http.Server{
		Addr:    cfg.Address,
		Handler: server.mainHandler(),
	}

	if cfg.SeedDemo {
		server.seedDemoSongs()
	}

	err = server.watchCatalogPaths()
	if err != nil {
		server.errLog.Printf("catalogs will not be reloaded on change: %s\n", err)
	}

	return server, nil
}

// Serve starts handling API endpoints - both REST and SSE.
// Blocks until the http server stops serving. Closing the server results in nil error.
func (s *Server) Serve() error {
	s.watchForFsChanges()

	s.outLog.Printf("running server at %s\n", s.address)
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}

// Close stops SSE observers, the http server and filesystem watching.
func (s *Server) Close() error {
	s.sseServer.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	httpErr := s.httpServer.Shutdown(ctx)
	watcherErr := s.fsWatcher.Close()
	s.statesRepository.Close()

	return errors.Join(httpErr, watcherErr)
}
