package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/liftlog/internal/flagx"
	"github.com/dmitrijs2005/liftlog/internal/timex"
)

// JsonConfig is the on-disk shape of the server config file. Durations use
// timex.Duration so both "1m" and integer nanoseconds are accepted.
type JsonConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                  string         `json:"database_dsn"`
	MaxOpenConns                 int            `json:"max_open_conns"`
	SecretKey                    string         `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	MinPasswordLength            int            `json:"min_password_length"`
	LogLevel                     string         `json:"log_level"`
	CacheBackend                 string         `json:"cache_backend"`
	RedisAddr                    string         `json:"redis_addr"`
	CacheTTL                     timex.Duration `json:"cache_ttl"`
	YouTubeAPIKey                string         `json:"youtube_api_key"`
	YouTubeBaseURL               string         `json:"youtube_base_url"`
	S3RootUser                   string         `json:"s3_root_user"`
	S3RootPassword               string         `json:"s3_root_password"`
	S3Bucket                     string         `json:"s3_bucket"`
	S3Region                     string         `json:"s3_region"`
	S3BaseEndpoint               string         `json:"s3_base_endpoint"`
}

// parseJson overlays values from the file named by -c/-config onto config.
// Keys absent from the file leave the existing value alone. An unreadable
// or malformed file panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setInt(&config.MaxOpenConns, c.MaxOpenConns)
	setString(&config.SecretKey, c.SecretKey)
	if c.AccessTokenValidityDuration.Duration != 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.RefreshTokenValidityDuration.Duration != 0 {
		config.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration.Duration
	}
	setInt(&config.MinPasswordLength, c.MinPasswordLength)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.CacheBackend, c.CacheBackend)
	setString(&config.RedisAddr, c.RedisAddr)
	if c.CacheTTL.Duration != 0 {
		config.CacheTTL = c.CacheTTL.Duration
	}
	setString(&config.YouTubeAPIKey, c.YouTubeAPIKey)
	setString(&config.YouTubeBaseURL, c.YouTubeBaseURL)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}
