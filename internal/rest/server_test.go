package rest_test

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarpt/playlist-web-api/internal/mocks"
	"github.com/sarpt/playlist-web-api/internal/rest"
	"github.com/sarpt/playlist-web-api/pkg/catalog"
	"github.com/sarpt/playlist-web-api/pkg/playlist"
	"github.com/sarpt/playlist-web-api/pkg/state"
	"github.com/sarpt/playlist-web-api/pkg/state/pkg/playback"
	"github.com/sarpt/playlist-web-api/pkg/state/pkg/status"
)

type fixture struct {
	playback *mocks.MockPlaybackState
	genres   *mocks.MockGenresState
	status   *mocks.MockStatusState
	handler  http.Handler
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		playback: mocks.NewMockPlaybackState(ctrl),
		genres:   mocks.NewMockGenresState(ctrl),
		status:   mocks.NewMockStatusState(ctrl),
	}
	f.handler = rest.NewServer(rest.Config{
		AllowCORS: true,
		Genres:    f.genres,
		Playback:  f.playback,
		Status:    f.status,
	}).Handler()

	return f
}

func (f fixture) post(path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	res := httptest.NewRecorder()

	f.handler.ServeHTTP(res, req)
	return res
}

func (f fixture) do(method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	res := httptest.NewRecorder()

	f.handler.ServeHTTP(res, req)
	return res
}

type formResponse struct {
	GeneralError   string                     `json:"generalError"`
	ArgumentErrors map[string]string          `json:"argumentErrors"`
	Payloads       map[string]json.RawMessage `json:"payloads"`
}

func decode[T any](t *testing.T, res *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &out), res.Body.String())

	return out
}

func TestGetPlaylist_ReturnsSnapshotWithRevision(t *testing.T) {
	f := newFixture(t)
	f.playback.EXPECT().Revision().Return(uint64(3))
	f.playback.EXPECT().Snapshot().Return(playback.Snapshot{
		Songs: []playlist.Song{{Title: "A", Artist: "Adele", Duration: 30}},
		Current: playlist.CurrentState{
			Title:    "A",
			Artist:   "Adele",
			Duration: 30,
		},
	})

	res := f.do(http.MethodGet, "/rest/playlist", nil)

	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "3", res.Header().Get("Etag"))

	out := decode[map[string]interface{}](t, res)
	current := out["current"].(map[string]interface{})
	assert.Equal(t, "A", current["title"])
	assert.Equal(t, false, current["isPlaying"])
	assert.Equal(t, false, current["loopCurrent"])
	assert.Len(t, out["songs"], 1)
}

func TestGetPlaylist_NotModified(t *testing.T) {
	f := newFixture(t)
	f.playback.EXPECT().Revision().Return(uint64(3))

	res := f.do(http.MethodGet, "/rest/playlist", map[string]string{"Etag": "3"})

	assert.Equal(t, http.StatusNotModified, res.Code)
}

func TestGetPlayback_EmptyPlaylistPlaceholder(t *testing.T) {
	f := newFixture(t)
	f.playback.EXPECT().Revision().Return(uint64(0))
	f.playback.EXPECT().Current().Return(playlist.CurrentState{
		Title:    "None",
		Artist:   "Unknown",
		Duration: 30,
	})

	res := f.do(http.MethodGet, "/rest/playback", nil)

	require.Equal(t, http.StatusOK, res.Code)
	assert.JSONEq(t, `{"title":"None","artist":"Unknown","isPlaying":false,"duration":30,"loopCurrent":false}`, res.Body.String())
}

func TestPostPlayback_Next(t *testing.T) {
	f := newFixture(t)
	f.playback.EXPECT().Next().Return(playlist.Song{Title: "B", Artist: "Sia"}, nil)

	res := f.post("/rest/playback", url.Values{"next": {"true"}})

	require.Equal(t, http.StatusOK, res.Code)
	out := decode[formResponse](t, res)
	assert.JSONEq(t, `{"title":"B","artist":"Sia"}`, string(out.Payloads["next"]))
}

func TestPostPlayback_FalseFlagIsNoop(t *testing.T) {
	f := newFixture(t)

	res := f.post("/rest/playback", url.Values{"previous": {"false"}})

	require.Equal(t, http.StatusOK, res.Code)
	out := decode[formResponse](t, res)
	assert.Empty(t, out.Payloads)
}

func TestPostPlayback_NextOnEmptyPlaylist(t *testing.T) {
	f := newFixture(t)
	f.playback.EXPECT().Next().Return(playlist.Song{}, playlist.ErrEmptyPlaylist)

	res := f.post("/rest/playback", url.Values{"next": {"true"}})

	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestPostPlayback_SelectNotFound(t *testing.T) {
	f := newFixture(t)
	f.playback.EXPECT().
		Select("missing").
		Return(playlist.Song{}, fmt.Errorf("could not select 'missing': %w", playlist.ErrNotFound))

	res := f.post("/rest/playback", url.Values{"select": {"missing"}})

	require.Equal(t, http.StatusNotFound, res.Code)
	out := decode[formResponse](t, res)
	assert.Contains(t, out.GeneralError, "song not found")
}

func TestPostPlayback_Toggles(t *testing.T) {
	f := newFixture(t)
	f.playback.EXPECT().ToggleLoop().Return(true)
	f.playback.EXPECT().TogglePlaying().Return(false)

	res := f.post("/rest/playback", url.Values{"toggleLoop": {"true"}, "togglePlaying": {"1"}})

	require.Equal(t, http.StatusOK, res.Code)
	out := decode[formResponse](t, res)
	assert.JSONEq(t, `{"looping":true}`, string(out.Payloads["toggleLoop"]))
	assert.JSONEq(t, `{"isPlaying":false}`, string(out.Payloads["togglePlaying"]))
}

func TestPostPlayback_Shuffle(t *testing.T) {
	f := newFixture(t)
	f.playback.EXPECT().Shuffle().Return(playback.Snapshot{
		Songs:   []playlist.Song{{Title: "B"}, {Title: "A"}},
		Current: playlist.CurrentState{Title: "B"},
	})

	res := f.post("/rest/playback", url.Values{"shuffle": {"true"}})

	require.Equal(t, http.StatusOK, res.Code)
	out := decode[formResponse](t, res)
	shuffled := playback.Snapshot{}
	require.NoError(t, json.Unmarshal(out.Payloads["shuffle"], &shuffled))
	require.Len(t, shuffled.Songs, 2)
	assert.Equal(t, "B", shuffled.Songs[0].Title)
	assert.Equal(t, "B", shuffled.Current.Title)
}

func TestPostPlayback_CursorMovesCannotBeCombined(t *testing.T) {
	f := newFixture(t)

	res := f.post("/rest/playback", url.Values{"next": {"true"}, "select": {"missing"}})

	require.Equal(t, http.StatusBadRequest, res.Code)
	out := decode[formResponse](t, res)
	assert.Contains(t, out.GeneralError, "next, select")

	res = f.post("/rest/playback", url.Values{"select": {"A"}, "shuffle": {"true"}})
	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestPostPlayback_SelectWithToggle(t *testing.T) {
	f := newFixture(t)
	gomock.InOrder(
		f.playback.EXPECT().Select("A").Return(playlist.Song{Title: "A"}, nil),
		f.playback.EXPECT().ToggleLoop().Return(true),
	)

	res := f.post("/rest/playback", url.Values{"select": {"A"}, "toggleLoop": {"true"}})

	assert.Equal(t, http.StatusOK, res.Code)
}

func TestPostPlayback_InvalidFlag(t *testing.T) {
	f := newFixture(t)

	res := f.post("/rest/playback", url.Values{"next": {"maybe"}, "rewind": {"true"}})

	require.Equal(t, http.StatusBadRequest, res.Code)
	out := decode[formResponse](t, res)
	assert.Contains(t, out.ArgumentErrors, "next")
	assert.Contains(t, out.ArgumentErrors, "rewind")
}

func TestPostSongs_Add(t *testing.T) {
	f := newFixture(t)
	f.playback.EXPECT().
		Add(playlist.Entry{Title: "Perfect", Artist: "Ed Sheeran", Duration: 200}).
		Return(playlist.Song{Title: "Perfect", Artist: "Ed Sheeran", Duration: 200})

	res := f.post("/rest/songs", url.Values{"title": {"Perfect"}, "artist": {"Ed Sheeran"}, "duration": {"200"}})

	require.Equal(t, http.StatusOK, res.Code)
	out := decode[formResponse](t, res)
	assert.Contains(t, out.Payloads, "title")
}

func TestPostSongs_AddWithoutArtist(t *testing.T) {
	f := newFixture(t)
	f.playback.EXPECT().Add(playlist.Entry{Title: "Perfect"}).Return(playlist.Song{Title: "Perfect", Artist: "Unknown"})

	res := f.post("/rest/songs", url.Values{"title": {"Perfect"}})

	assert.Equal(t, http.StatusOK, res.Code)
}

func TestPostSongs_ArtistWithoutTitle(t *testing.T) {
	f := newFixture(t)

	res := f.post("/rest/songs", url.Values{"artist": {"Adele"}})

	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestPostSongs_AddFromGenre(t *testing.T) {
	f := newFixture(t)
	f.genres.EXPECT().Pick("rock", "").Return(catalog.Entry{Title: "Believer", Artist: "Imagine Dragons"}, nil)
	f.playback.EXPECT().
		Add(playlist.Entry{Title: "Believer", Artist: "Imagine Dragons"}).
		Return(playlist.Song{Title: "Believer", Artist: "Imagine Dragons"})

	res := f.post("/rest/songs", url.Values{"genre": {"rock"}})

	require.Equal(t, http.StatusOK, res.Code)
	out := decode[formResponse](t, res)
	assert.Contains(t, out.Payloads, "genre")
	assert.NotContains(t, out.Payloads, "title")
}

func TestPostSongs_AddFromGenreByTitle(t *testing.T) {
	f := newFixture(t)
	f.genres.EXPECT().Pick("rock", "Believer").Return(catalog.Entry{Title: "Believer", Artist: "Imagine Dragons"}, nil)
	f.playback.EXPECT().Add(gomock.Any()).Return(playlist.Song{Title: "Believer"})

	res := f.post("/rest/songs", url.Values{"genre": {"rock"}, "title": {"Believer"}})

	assert.Equal(t, http.StatusOK, res.Code)
}

func TestPostSongs_UnknownGenre(t *testing.T) {
	f := newFixture(t)
	f.genres.EXPECT().Pick("polka", "").Return(catalog.Entry{}, catalog.ErrGenreNotFound)

	res := f.post("/rest/songs", url.Values{"genre": {"polka"}})

	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestDeleteSongs(t *testing.T) {
	f := newFixture(t)
	f.playback.EXPECT().Remove("Perfect").Return(playlist.Song{Title: "Perfect"}, nil)
	f.playback.EXPECT().Remove("missing").Return(playlist.Song{}, playlist.ErrNotFound)

	res := f.do(http.MethodDelete, "/rest/songs?title=Perfect", nil)
	assert.Equal(t, http.StatusOK, res.Code)

	res = f.do(http.MethodDelete, "/rest/songs?title=missing", nil)
	assert.Equal(t, http.StatusNotFound, res.Code)

	res = f.do(http.MethodDelete, "/rest/songs", nil)
	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestDeleteSongs_EmptyTitle(t *testing.T) {
	repository := state.NewRepository(state.Config{Source: rand.NewSource(1)})
	t.Cleanup(repository.Close)
	handler := rest.NewServer(rest.Config{
		Genres:   repository.Genres(),
		Playback: repository.Playback(),
		Status:   repository.Status(),
	}).Handler()
	f := fixture{handler: handler}

	res := f.post("/rest/songs", url.Values{"title": {""}})
	require.Equal(t, http.StatusOK, res.Code)
	require.Len(t, repository.Playback().Songs(), 1)

	res = f.do(http.MethodDelete, "/rest/songs?title=", nil)

	require.Equal(t, http.StatusOK, res.Code, res.Body.String())
	assert.Empty(t, repository.Playback().Songs())
}

func TestGetSongs(t *testing.T) {
	f := newFixture(t)
	f.playback.EXPECT().Revision().Return(uint64(1))
	f.playback.EXPECT().Songs().Return([]playlist.Song{{Title: "A"}, {Title: "B"}})

	res := f.do(http.MethodGet, "/rest/songs", nil)

	require.Equal(t, http.StatusOK, res.Code)
	out := decode[map[string][]playlist.Song](t, res)
	assert.Len(t, out["songs"], 2)
}

func TestGetGenres(t *testing.T) {
	f := newFixture(t)
	f.genres.EXPECT().Revision().Return(uint64(0))
	f.genres.EXPECT().All().Return(map[string][]catalog.Entry{
		"rock": {{Title: "Believer", Artist: "Imagine Dragons"}},
	})

	res := f.do(http.MethodGet, "/rest/genres", nil)

	require.Equal(t, http.StatusOK, res.Code)
	assert.JSONEq(t, `{"genres":{"rock":[{"title":"Believer","artist":"Imagine Dragons"}]}}`, res.Body.String())
}

func TestGetStatus(t *testing.T) {
	f := newFixture(t)
	f.status.EXPECT().ObservingAddresses().Return(map[string][]status.ChannelVariant{
		"127.0.0.1:1": {"playback"},
	})

	res := f.do(http.MethodGet, "/rest/status", nil)

	require.Equal(t, http.StatusOK, res.Code)
	assert.JSONEq(t, `{"observingAddresses":{"127.0.0.1:1":["playback"]}}`, res.Body.String())
}
