// Package cli is the interactive LiftLog terminal client.
//
// NewApp wires the client configuration, the local session database and the
// gRPC connection; App.Run restores a saved login and starts the REPL.
// Commands collect form values with simple prompts and hand them to the
// server, which does all validation that matters:
//
//	register, login, logout
//	add, list, edit, delete           workouts
//	addvideo, videos, delvideo, today video library and today's pick
//	export                            CSV download link
package cli
