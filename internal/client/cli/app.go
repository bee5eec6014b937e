// Package cli implements the interactive ContactVault client: a small REPL
// over the backend HTTP API. The session token lives in memory only and is
// gone when the process exits.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/contactvault/internal/client/api"
	"github.com/dmitrijs2005/contactvault/internal/client/config"
)

type App struct {
	config *config.Config
	api    api.Client
	user   *api.User
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		api:    api.NewHTTPClient(c.ServerEndpointAddr, c.RequestTimeout),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

// status feeds the REPL prompt.
func (a *App) status() string {
	if a.user == nil {
		return "not logged in"
	}
	return a.user.Username
}

func (a *App) Run(ctx context.Context) {
	printlnFn("ContactVault CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
}
