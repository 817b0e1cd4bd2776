package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. *App implements
// it; tests use a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	AddWorkout(ctx context.Context) error
	ListWorkouts(ctx context.Context) error
	EditWorkout(ctx context.Context) error
	DeleteWorkout(ctx context.Context) error
	AddVideo(ctx context.Context) error
	ListVideos(ctx context.Context) error
	DeleteVideo(ctx context.Context) error
	TodayVideo(ctx context.Context) error
	Export(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: add, (l)ist, edit, delete, today, addvideo, videos, delvideo, export, logout, exit"
)

// runREPL reads commands from reader until EOF, "exit" or "quit". Commands
// read their own prompts from the same reader.
//
//	Logged out:  register, login, help, exit
//	Logged in:   add, list, edit, delete        workouts
//	             today, addvideo, videos, delvideo
//	             export, logout, help, exit
//
// Errors returned by a command are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("liftlog %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		var run func(context.Context) error
		public := false

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return

		case "register":
			run, public = a.Register, true
		case "login":
			run, public = a.Login, true

		case "logout":
			run = a.Logout
		case "add":
			run = a.AddWorkout
		case "l", "list":
			run = a.ListWorkouts
		case "edit":
			run = a.EditWorkout
		case "delete":
			run = a.DeleteWorkout
		case "addvideo":
			run = a.AddVideo
		case "videos":
			run = a.ListVideos
		case "delvideo":
			run = a.DeleteVideo
		case "today":
			run = a.TodayVideo
		case "export":
			run = a.Export

		default:
			printlnFn("Unknown command:", cmd)
			continue
		}

		if !public && !a.isLoggedIn() {
			printlnFn("Please login first")
			continue
		}

		if err := run(ctx); err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
