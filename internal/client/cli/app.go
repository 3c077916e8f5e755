package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/filehost/internal/client/client"
	"github.com/dmitrijs2005/filehost/internal/client/config"
	"github.com/dmitrijs2005/filehost/internal/client/models"
	"github.com/dmitrijs2005/filehost/internal/filex"
)

// apiClient is the part of client.Client the commands use.
type apiClient interface {
	SetToken(token string)
	Signup(ctx context.Context, username, password string) (*models.AuthResponse, error)
	Signin(ctx context.Context, username, password string) (*models.AuthResponse, error)
	ListFiles(ctx context.Context) ([]*models.File, error)
	DeleteFile(ctx context.Context, id int64) error
	Upload(ctx context.Context, up *filex.Upload) (*models.File, error)
	Metrics(ctx context.Context) (*models.Metrics, error)
}

type App struct {
	config   *config.Config
	api      apiClient
	reader   *bufio.Reader
	out      io.Writer
	userName string
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		api:    client.New(c.ServerURL, c.RequestTimeout),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to filehost CLI (type 'help' for commands)")
	printlnFn("Server:", a.config.ServerURL)
	runREPL(ctx, a, a.getStatus, a.reader)
}
