// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Cache backends accepted in Config.CacheBackend.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config holds runtime settings for the LiftLog server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - DatabaseDSN: "postgres://..." (pgx) or "sqlite://path/to/file.db".
//   - MaxOpenConns: connection pool limit (ignored for SQLite, which uses one).
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test defaults in prod.
//   - AccessTokenValidityDuration / RefreshTokenValidityDuration: token lifetimes.
//   - MinPasswordLength: shortest password accepted at registration.
//   - LogLevel: debug, info, warn or error.
//   - CacheBackend / RedisAddr / CacheTTL: workout list memoization.
//   - YouTubeAPIKey / YouTubeBaseURL: video metadata lookups.
//   - S3RootUser / S3RootPassword: credentials for the S3-compatible backend.
//   - S3Bucket / S3Region / S3BaseEndpoint: object storage for exports. An
//     empty bucket disables exports.
type Config struct {
	EndpointAddrGRPC             string
	DatabaseDSN                  string
	MaxOpenConns                 int
	SecretKey                    string
	AccessTokenValidityDuration  time.Duration
	RefreshTokenValidityDuration time.Duration
	MinPasswordLength            int
	LogLevel                     string
	CacheBackend                 string
	RedisAddr                    string
	CacheTTL                     time.Duration
	YouTubeAPIKey                string
	YouTubeBaseURL               string
	S3RootUser                   string
	S3RootPassword               string
	S3Bucket                     string
	S3Region                     string
	S3BaseEndpoint               string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "sqlite://data/liftlog.db"
	c.MaxOpenConns = 10
	c.EndpointAddrGRPC = ":50051"
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 15 * time.Minute
	c.RefreshTokenValidityDuration = 24 * time.Hour
	c.MinPasswordLength = 8
	c.LogLevel = "info"
	c.CacheBackend = CacheMemory
	c.RedisAddr = "127.0.0.1:6379"
	c.CacheTTL = 5 * time.Minute
	c.YouTubeBaseURL = "https://www.googleapis.com/youtube/v3"
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = ""
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
