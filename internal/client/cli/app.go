package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/authservice/internal/client/client"
	"github.com/dmitrijs2005/authservice/internal/client/config"
)

// Exit codes returned by Run.
const (
	ExitOK       = 0
	ExitRejected = 1
	ExitUsage    = 2
	ExitFailure  = 3
)

type App struct {
	config *config.Config
	client client.Client
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewAuthClient(c.Endpoint(), c.RequestTimeout)
	if err != nil {
		return nil, err
	}
	return NewAppWithClient(c, apiClient, os.Stdin, os.Stdout), nil
}

// NewAppWithClient builds an App over an existing client and I/O streams.
func NewAppWithClient(c *config.Config, cl client.Client, in io.Reader, out io.Writer) *App {
	return &App{config: c, client: cl, reader: bufio.NewReader(in), out: out}
}

// Run executes the subcommand in args (os.Args[1:] style) and returns the
// process exit code. The connection is closed before returning.
func (a *App) Run(ctx context.Context, args []string) int {
	defer a.client.Close()
	return a.Root(ctx, args)
}
