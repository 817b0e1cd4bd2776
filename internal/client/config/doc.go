// Package config loads runtime configuration for the LiftLog client.
//
// Sources, in increasing precedence:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags.
//
// Supported flags
//
//	-a string   address:port of the LiftLog gRPC endpoint
//	-t int      request timeout (seconds)
//	-s string   path of the local session database
//
// The JSON file uses timex.Duration for the timeout, so both "5s" and
// integer nanoseconds are accepted:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "request_timeout": "5s",
//	  "session_dsn": "/home/me/.liftlog.db"
//	}
package config
