package videometa

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/liftlog/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	videos     map[string]any
	categories map[string]string
	playlists  map[string]string
	hits       map[string]int
}

func (f *fakeAPI) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		f.hits[r.URL.Path]++

		var body any
		q := r.URL.Query()
		switch r.URL.Path {
		case "/videos":
			assert.Equal(t, "snippet,contentDetails,statistics", q.Get("part"))
			items := []any{}
			if v, ok := f.videos[q.Get("id")]; ok {
				items = append(items, v)
			}
			body = map[string]any{"items": items}
		case "/videoCategories":
			items := []any{}
			if name, ok := f.categories[q.Get("id")]; ok {
				items = append(items, map[string]any{"snippet": map[string]any{"title": name}})
			}
			body = map[string]any{"items": items}
		case "/playlistItems":
			items := []any{}
			if id, ok := f.playlists[q.Get("playlistId")]; ok {
				items = append(items, map[string]any{"contentDetails": map[string]any{"videoId": id}})
			}
			body = map[string]any{"items": items}
		default:
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		assert.NoError(t, json.NewEncoder(w).Encode(body))
	})
}

func newFake(t *testing.T) (*fakeAPI, *Client) {
	t.Helper()
	f := &fakeAPI{
		videos: map[string]any{
			"dQw4w9WgXcQ": map[string]any{
				"id": "dQw4w9WgXcQ",
				"snippet": map[string]any{
					"title": "30 Minute Leg Workout", "channelId": "UC123", "channelTitle": "Coach",
					"categoryId": "17", "tags": []string{"legs", "hiit"},
				},
				"contentDetails": map[string]any{"duration": "PT30M5S"},
				"statistics":     map[string]any{"viewCount": "1000", "likeCount": "50"},
			},
			"hiddenLikes": map[string]any{
				"id":             "hiddenLikes",
				"snippet":        map[string]any{"title": "No likes", "channelTitle": "X"},
				"contentDetails": map[string]any{"duration": "PT1M"},
				"statistics":     map[string]any{"viewCount": "5"},
			},
		},
		categories: map[string]string{"17": "Sports"},
		playlists:  map[string]string{"PL1": "dQw4w9WgXcQ"},
		hits:       map[string]int{},
	}
	srv := httptest.NewServer(f.handler(t))
	t.Cleanup(srv.Close)
	return f, NewClient(srv.URL, "test-key", srv.Client())
}

func TestFetch_Video(t *testing.T) {
	_, c := newFake(t)

	got, err := c.Fetch(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)

	assert.Equal(t, &Info{
		VideoID:    "dQw4w9WgXcQ",
		Title:      "30 Minute Leg Workout",
		Channel:    "Coach",
		Duration:   30*60 + 5,
		ViewCount:  1000,
		LikeCount:  50,
		ChannelID:  "UC123",
		Categories: []string{"Sports"},
		Tags:       []string{"legs", "hiit"},
	}, got)
}

func TestFetch_HiddenStatistics(t *testing.T) {
	f, c := newFake(t)

	got, err := c.Fetch(context.Background(), "https://www.youtube.com/watch?v=hiddenLikes")
	require.NoError(t, err)
	assert.Zero(t, got.LikeCount)
	assert.Equal(t, int64(5), got.ViewCount)
	assert.Empty(t, got.Categories)
	assert.NotNil(t, got.Tags)
	assert.Zero(t, f.hits["/videoCategories"], "no category id, no lookup")
}

func TestFetch_PlaylistUsesFirstEntry(t *testing.T) {
	f, c := newFake(t)

	got, err := c.Fetch(context.Background(), "https://www.youtube.com/playlist?list=PL1")
	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", got.VideoID)
	assert.Equal(t, 1, f.hits["/playlistItems"])
}

func TestFetch_Failures(t *testing.T) {
	_, c := newFake(t)

	for _, in := range []string{
		"https://vimeo.com/1",
		"https://youtu.be/AAAAAAAAAAA",
		"https://www.youtube.com/playlist?list=EMPTY",
	} {
		_, err := c.Fetch(context.Background(), in)
		assert.ErrorIs(t, err, common.ErrVideoUnavailable, in)
	}
}

func TestFetch_NoKey(t *testing.T) {
	_, err := NewClient("", "", nil).Fetch(context.Background(), "dQw4w9WgXcQ")
	assert.ErrorIs(t, err, common.ErrVideoUnavailable)
}

func TestFetch_UpstreamErrorDoesNotLeakKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota", http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "secret-key", srv.Client()).Fetch(context.Background(), "dQw4w9WgXcQ")
	require.ErrorIs(t, err, common.ErrVideoUnavailable)
	assert.NotContains(t, err.Error(), "secret-key")

	srv.Close()
	_, err = NewClient(srv.URL, "secret-key", nil).Fetch(context.Background(), "dQw4w9WgXcQ")
	require.ErrorIs(t, err, common.ErrVideoUnavailable)
	assert.NotContains(t, err.Error(), "secret-key")
}
