package server

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dmitrijs2005/liftlog/internal/logging"
	"github.com/dmitrijs2005/liftlog/internal/server/cache"
	"github.com/dmitrijs2005/liftlog/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	c := &config.Config{}
	c.LoadDefaults()
	c.DatabaseDSN = "sqlite://" + filepath.Join(t.TempDir(), "app.db")
	c.EndpointAddrGRPC = "127.0.0.1:0"
	return c
}

func TestNewApp_SQLite(t *testing.T) {
	app, err := newApp(context.Background(), testConfig(t), logging.Nop{})
	require.NoError(t, err)
	defer app.Close()

	assert.NotNil(t, app.services.Users)
	assert.NotNil(t, app.services.Workouts)
	assert.NotNil(t, app.services.Videos)
	assert.NotNil(t, app.services.Exports)

	var n int
	require.NoError(t, app.db.QueryRow(`SELECT COUNT(*) FROM workouts`).Scan(&n))
	assert.Zero(t, n)
}

func TestNewApp_BadDSN(t *testing.T) {
	c := testConfig(t)
	c.DatabaseDSN = "mysql://nope"
	_, err := newApp(context.Background(), c, logging.Nop{})
	require.Error(t, err)
}

func TestBuildCache(t *testing.T) {
	mr := miniredis.RunT(t)

	tests := []struct {
		backend string
		addr    string
		want    any
		wantErr bool
	}{
		{backend: config.CacheNone, want: cache.Nop{}},
		{backend: config.CacheMemory, want: &cache.Memory{}},
		{backend: config.CacheRedis, addr: mr.Addr(), want: &cache.Redis{}},
		{backend: config.CacheRedis, addr: "127.0.0.1:1", wantErr: true},
		{backend: "memcached", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.backend+tt.addr, func(t *testing.T) {
			c := testConfig(t)
			c.CacheBackend = tt.backend
			c.RedisAddr = tt.addr
			app := &App{config: c, logger: logging.Nop{}}
			defer app.Close()

			got, err := app.buildCache(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, got)
		})
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	app, err := newApp(context.Background(), testConfig(t), logging.Nop{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
}
