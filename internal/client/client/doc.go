// Package client talks to the LiftLog server on behalf of the terminal
// client.
//
// GRPCClient implements Client over api.LiftLogClient. It attaches the
// access token to every call, bounds each call with the configured timeout,
// and when the server answers Unauthenticated with "token expired" it
// rotates the token pair once via RefreshToken and retries the call.
// Rotated tokens are reported through OnTokensRefreshed so callers can
// persist them.
//
// gRPC status codes are translated into the sentinel errors of this
// package (ErrUnauthorized, ErrNotFound, ErrAlreadyExists, ...), with the
// server's message appended.
//
// InitDatabase opens the local SQLite session database and applies its
// migrations.
package client
