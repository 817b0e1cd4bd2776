package cli

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/liftlog/internal/api"
	"github.com/dmitrijs2005/liftlog/internal/client/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hiit = &api.Video{
	VideoId:    "dQw4w9WgXcQ",
	Title:      "20 Min HIIT",
	Channel:    "Coach",
	Duration:   1200,
	ViewCount:  10,
	LikeCount:  2,
	Categories: []string{"Sports"},
	Tags:       []string{"hiit", "cardio"},
	Url:        "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
}

func TestAddVideo(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		fa := &fakeAPI{preview: hiit}
		a, _, out := newTestApp("https://youtu.be/dQw4w9WgXcQ\ny\n", fa)

		require.NoError(t, a.AddVideo(context.Background()))
		assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", fa.addedVideo)

		s := out.String()
		assert.Contains(t, s, "20 Min HIIT")
		assert.Contains(t, s, "20m0s")
		assert.Contains(t, s, "tags: hiit, cardio")
		assert.Contains(t, s, "Video added")
	})

	t.Run("declined", func(t *testing.T) {
		fa := &fakeAPI{preview: hiit}
		a, _, _ := newTestApp("dQw4w9WgXcQ\n\n", fa)

		require.NoError(t, a.AddVideo(context.Background()))
		assert.Empty(t, fa.addedVideo)
	})

	t.Run("unavailable", func(t *testing.T) {
		fa := &fakeAPI{err: client.ErrInvalidInput}
		a, _, _ := newTestApp("nope\n", fa)

		require.ErrorIs(t, a.AddVideo(context.Background()), client.ErrInvalidInput)
		assert.Empty(t, fa.addedVideo)
	})
}

func TestListAndDeleteVideos(t *testing.T) {
	fa := &fakeAPI{videos: []*api.Video{hiit}, deleted: true}
	a, _, out := newTestApp("dQw4w9WgXcQ\n", fa)
	ctx := context.Background()

	require.NoError(t, a.ListVideos(ctx))
	assert.Contains(t, out.String(), "dQw4w9WgXcQ")

	require.NoError(t, a.DeleteVideo(ctx))
	assert.Equal(t, "dQw4w9WgXcQ", fa.delVideo)
	assert.Contains(t, out.String(), "Deleted")

	empty, _, out2 := newTestApp("", &fakeAPI{})
	require.NoError(t, empty.ListVideos(ctx))
	assert.Contains(t, out2.String(), "library is empty")
}

func TestTodayVideo(t *testing.T) {
	a, _, out := newTestApp("", &fakeAPI{today: hiit})
	require.NoError(t, a.TodayVideo(context.Background()))
	assert.Contains(t, out.String(), "Today's workout:")
	assert.Contains(t, out.String(), hiit.Url)

	none, _, _ := newTestApp("", &fakeAPI{err: client.ErrNotFound})
	require.ErrorIs(t, none.TodayVideo(context.Background()), client.ErrNotFound)
}

func TestExport(t *testing.T) {
	a, _, out := newTestApp("", &fakeAPI{export: &api.ExportResponse{Url: "https://s3.example/x.csv?sig", ExpiresIn: 900}})

	require.NoError(t, a.Export(context.Background()))
	assert.Contains(t, out.String(), "valid for 15m0s")
	assert.Contains(t, out.String(), "https://s3.example/x.csv?sig")
}
