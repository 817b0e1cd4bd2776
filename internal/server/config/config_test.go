package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "sqlite://data/liftlog.db", c.DatabaseDSN)
	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Equal(t, "secretKey", c.SecretKey)
	assert.Equal(t, 15*time.Minute, c.AccessTokenValidityDuration)
	assert.Equal(t, 24*time.Hour, c.RefreshTokenValidityDuration)
	assert.Equal(t, 8, c.MinPasswordLength)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, CacheMemory, c.CacheBackend)
	assert.Equal(t, 5*time.Minute, c.CacheTTL)
	assert.Empty(t, c.S3Bucket, "exports are off until a bucket is set")
	assert.Equal(t, "us-east-1", c.S3Region)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	c := LoadConfig()
	require.NotNil(t, c, "LoadConfig must not return nil")

	var want Config
	want.LoadDefaults()
	assert.Equal(t, want, *c)
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"endpoint_addr_grpc": "json:1",
		"log_level":          "debug",
	})
	os.Args = []string{"testbin", "-c", path, "-a", "flag:2"}

	c := LoadConfig()

	assert.Equal(t, "flag:2", c.EndpointAddrGRPC)
	assert.Equal(t, "debug", c.LogLevel)
}
