package api

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	metalCatalog = `{"metal": [{"title": "One", "artist": "Metallica"}]}`
	bluesCatalog = `{"blues": [{"title": "The Thrill Is Gone", "artist": "B.B. King"}]}`
)

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()

	cfg.OutWriter = io.Discard
	cfg.ErrWriter = io.Discard

	server, err := NewServer(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		server.Close()
	})

	return server
}

func writeCatalog(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func TestNewServer_SeedsDemoSongs(t *testing.T) {
	server := newTestServer(t, Config{SeedDemo: true, DefaultDuration: 30})

	songs := server.statesRepository.Playback().Songs()
	require.Len(t, songs, len(demoSongs))
	assert.Equal(t, "Someone Like You", songs[0].Title)
	assert.Equal(t, "Cheap Thrills", songs[len(songs)-1].Title)
	assert.Equal(t, "Someone Like You", server.statesRepository.Playback().Current().Title)
}

func TestNewServer_LoadsCatalogs(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, filepath.Join(dir, "metal.json"), metalCatalog)

	server := newTestServer(t, Config{CatalogPaths: []string{dir}})

	all := server.statesRepository.Genres().All()
	assert.Contains(t, all, "metal")
	assert.Contains(t, all, "pop")
}

func TestCatalogFiles_ExpandsDirectories(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, filepath.Join(dir, "b.json"), metalCatalog)
	writeCatalog(t, filepath.Join(dir, "a.json"), bluesCatalog)
	writeCatalog(t, filepath.Join(dir, "notes.txt"), "")
	single := filepath.Join(t.TempDir(), "single.json")

	files := catalogFiles([]string{single, dir})

	assert.Equal(t, []string{single, filepath.Join(dir, "a.json"), filepath.Join(dir, "b.json")}, files)
}

func TestIsCatalogPath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(t.TempDir(), "custom.json")
	server := &Server{catalogPaths: []string{dir, file}}

	assert.True(t, server.isCatalogPath(filepath.Join(dir, "new.json")))
	assert.False(t, server.isCatalogPath(filepath.Join(dir, "new.txt")))
	assert.True(t, server.isCatalogPath(file))
	assert.False(t, server.isCatalogPath(filepath.Join(filepath.Dir(file), "other.json")))
}

func TestWatchForFsChanges_ReloadsGenres(t *testing.T) {
	dir := t.TempDir()
	server := newTestServer(t, Config{CatalogPaths: []string{dir}})
	server.watchForFsChanges()

	writeCatalog(t, filepath.Join(dir, "blues.json"), bluesCatalog)

	assert.Eventually(t, func() bool {
		_, ok := server.statesRepository.Genres().All()["blues"]
		return ok
	}, 2*time.Second, 10*time.Millisecond)
	assert.Greater(t, server.statesRepository.Genres().Revision(), uint64(0))
}

func TestReloadCatalogs_KeepsValidCatalogs(t *testing.T) {
	dir := t.TempDir()
	server := newTestServer(t, Config{CatalogPaths: []string{dir}})
	writeCatalog(t, filepath.Join(dir, "blues.json"), bluesCatalog)
	writeCatalog(t, filepath.Join(dir, "broken.json"), `{"metal": `)

	err := server.reloadCatalogs()

	assert.Error(t, err)
	assert.Contains(t, server.statesRepository.Genres().All(), "blues")
}

func TestMainHandler_RoutesSubtrees(t *testing.T) {
	server := newTestServer(t, Config{SeedDemo: true})
	handler := server.mainHandler()

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/rest/playlist", nil))
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), "Blinding Lights")

	res = httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/sse/channels", nil))
	assert.Equal(t, http.StatusBadRequest, res.Code)

	res = httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/movies", nil))
	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestReloadCatalogs_LogsGenres(t *testing.T) {
	dir := t.TempDir()
	out := &bytes.Buffer{}
	server, err := NewServer(Config{
		CatalogPaths: []string{dir},
		ErrWriter:    io.Discard,
		OutWriter:    out,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		server.Close()
	})
	writeCatalog(t, filepath.Join(dir, "blues.json"), bluesCatalog)

	require.NoError(t, server.reloadCatalogs())

	assert.Contains(t, out.String(), "catalog genres after reload: blues, indie, jazz, pop, rock")
}
