package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/dmitrijs2005/liftlog/internal/client/client"
	"github.com/dmitrijs2005/liftlog/internal/client/config"
	"github.com/dmitrijs2005/liftlog/internal/client/repositories/session"
	"github.com/dmitrijs2005/liftlog/internal/client/services"
)

type App struct {
	config      *config.Config
	db          *sql.DB
	authService services.AuthService
	api         client.Client
	userName    string
	reader      *bufio.Reader
	out         io.Writer
}

// NewApp opens the local session database and prepares a connection to the
// server. Nothing is sent over the network yet.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	db, err := client.InitDatabase(ctx, c.SessionDSN)
	if err != nil {
		return nil, err
	}

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	as := services.NewAuthService(apiClient, session.NewSQLiteRepository(db))

	return &App{
		config:      c,
		db:          db,
		authService: as,
		api:         apiClient,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return "(" + a.userName + ")"
}

// Run restores a saved session, if any, and serves the REPL on stdin until
// the user exits.
func (a *App) Run(ctx context.Context) error {
	defer a.close(ctx)

	userName, err := a.authService.Restore(ctx)
	if err != nil {
		printlnFn("Could not restore session:", err.Error())
	}
	a.userName = userName

	printlnFn("Welcome to LiftLog (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) close(ctx context.Context) {
	_ = a.authService.Close(ctx)
	if a.db != nil {
		_ = a.db.Close()
	}
}
