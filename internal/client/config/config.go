package config

import "time"

// Config holds runtime settings for the LiftLog terminal client.
type Config struct {
	// ServerEndpointAddr is host:port of the LiftLog gRPC endpoint.
	ServerEndpointAddr string
	// RequestTimeout bounds every call made to the server.
	RequestTimeout time.Duration
	// SessionDSN points at the local SQLite file that keeps the session
	// (username and tokens) between runs.
	SessionDSN string
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 10 * time.Second
	c.SessionDSN = "liftlog_session.db"
}

// LoadConfig builds a Config from defaults, then the JSON file (if any),
// then command-line flags. Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
