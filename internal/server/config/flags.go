package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/liftlog/internal/flagx"
)

var serverFlags = []string{
	"-a", "-d", "-s", "-t", "-r", "-u", "-p", "-b", "-g", "-e",
	"-l", "-m", "-y", "-cache", "-redis", "-cache-ttl", "-max-conns",
}

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string        gRPC bind address (e.g., ":50051")
//	-d string        database DSN (postgres://... or sqlite://path)
//	-s string        JWT HMAC secret key
//	-t int           access token validity, minutes
//	-r int           refresh token validity, minutes
//	-u string        S3 root user
//	-p string        S3 root password
//	-b string        S3 bucket name (empty disables exports)
//	-g string        S3 region
//	-e string        S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-l string        log level
//	-m int           minimum password length
//	-y string        YouTube Data API key
//	-cache string    none, memory or redis
//	-redis string    Redis address
//	-cache-ttl dur   cache entry lifetime (e.g., "5m")
//	-max-conns int   database pool size
//
// Token durations are accepted as integers in minutes.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], serverFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")
	refreshTokenValidityDuration := fs.Int("r", int(config.RefreshTokenValidityDuration.Minutes()), "refresh_token_validity_duration (in minutes)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 export bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.IntVar(&config.MinPasswordLength, "m", config.MinPasswordLength, "minimum password length")
	fs.StringVar(&config.YouTubeAPIKey, "y", config.YouTubeAPIKey, "YouTube Data API key")
	fs.StringVar(&config.CacheBackend, "cache", config.CacheBackend, "cache backend: none, memory or redis")
	fs.StringVar(&config.RedisAddr, "redis", config.RedisAddr, "redis address")
	fs.DurationVar(&config.CacheTTL, "cache-ttl", config.CacheTTL, "cache entry lifetime")
	fs.IntVar(&config.MaxOpenConns, "max-conns", config.MaxOpenConns, "database pool size")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
	config.RefreshTokenValidityDuration = time.Duration(*refreshTokenValidityDuration) * time.Minute
}
