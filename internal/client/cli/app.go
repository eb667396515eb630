package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/cleazy-chat/internal/client/bot"
	"github.com/dmitrijs2005/cleazy-chat/internal/client/cache"
	"github.com/dmitrijs2005/cleazy-chat/internal/client/client"
	"github.com/dmitrijs2005/cleazy-chat/internal/client/config"
	"github.com/dmitrijs2005/cleazy-chat/internal/client/models"
	"github.com/dmitrijs2005/cleazy-chat/internal/client/repositories/users"
	"github.com/dmitrijs2005/cleazy-chat/internal/client/session"
	"github.com/dmitrijs2005/cleazy-chat/internal/logging"
)

// errExit is returned by screens when the user asks to leave.
var errExit = errors.New("exit requested")

// controller is the part of session.Controller the views use.
type controller interface {
	Startup(ctx context.Context) session.Status
	Retry(ctx context.Context) session.Status
	Login(ctx context.Context, username, password string) error
	Logout()
	SendMessage(ctx context.Context, text string) (models.Message, error)
	RefreshUsers(ctx context.Context) error
	AddUser(ctx context.Context, candidate models.NewUser) (*models.User, error)
	DeleteUser(ctx context.Context, username string) error
	Snapshot() session.Snapshot
}

// usernameHints is what the views read from the local cache: the default for
// the login prompt and the accounts with a transcript on this machine.
type usernameHints interface {
	LastUsername(ctx context.Context) (string, error)
	CachedUsernames(ctx context.Context) ([]string, error)
}

type App struct {
	ctrl    controller
	hints   usernameHints
	reader  *bufio.Reader
	out     io.Writer
	log     logging.Logger
	closers []func() error
}

// NewApp opens both databases and assembles the session controller.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	local, err := client.InitDatabase(ctx, c.LocalDBPath, log)
	if err != nil {
		log.Error(ctx, "error initializing local database", "path", c.LocalDBPath, "error", err)
		return nil, err
	}

	remote, err := client.OpenRemote(c.DatabaseDSN)
	if err != nil {
		_ = local.Close()
		return nil, err
	}

	store := cache.NewStore(local, log)
	ctrl := session.New(
		users.NewPostgresRepository(remote),
		store,
		bot.NewWebhookResponder(c.WebhookURL, c.WebhookTimeout, log),
		log,
	)

	return &App{
		ctrl:    ctrl,
		hints:   store,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		log:     log.With("module", "cli"),
		closers: []func() error{remote.Close, local.Close},
	}, nil
}

// Close releases both database handles.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

// Run shows the setup screen until the database is ready, then alternates
// between the login form and the chat until the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, titleColor.Sprint("Cleazy Clean Services"), greyColor.Sprint("- Assistente de Orçamento"))

	if err := a.WaitForDatabase(ctx); err != nil {
		return ignoreExit(err)
	}

	for {
		if !a.isLoggedIn() {
			if err := a.Login(ctx); err != nil {
				if errors.Is(err, session.ErrInvalidCredentials) {
					continue
				}
				return ignoreExit(err)
			}
		}

		if quit := runREPL(ctx, a, a.status, a.reader); quit {
			fmt.Fprintln(a.out, "Até logo!")
			return nil
		}
	}
}

func ignoreExit(err error) error {
	if errors.Is(err, errExit) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (a *App) isLoggedIn() bool {
	return a.ctrl.Snapshot().Authenticated()
}

func (a *App) isAdmin() bool {
	return a.ctrl.Snapshot().IsAdmin()
}

// status is the prompt label: the username, with a marker for the admin.
func (a *App) status() string {
	s := a.ctrl.Snapshot()
	if s.User == nil {
		return ""
	}
	if s.IsAdmin() {
		return s.User.Username + "*"
	}
	return s.User.Username
}
