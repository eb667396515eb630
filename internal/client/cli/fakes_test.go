package cli

import (
	"bytes"
	"context"
	"slices"
	"testing"

	"github.com/dmitrijs2005/cleazy-chat/internal/client/models"
	"github.com/dmitrijs2005/cleazy-chat/internal/client/session"
	"github.com/dmitrijs2005/cleazy-chat/internal/common"
	"github.com/dmitrijs2005/cleazy-chat/internal/logging"
	"github.com/fatih/color"
)

// fakeController is a scripted stand-in for session.Controller.
type fakeController struct {
	statuses []session.Status
	startups int

	accounts map[string]string
	user     *models.User
	messages []models.Message
	users    []models.User

	reply     models.Message
	sendErr   error
	addErr    error
	deleteErr error
	deleted   []string
	logins    []string
}

func newFakeController() *fakeController {
	return &fakeController{
		accounts: map[string]string{common.AdminUsername: common.AdminDefaultPassword, "ana": "x"},
		users:    []models.User{{ID: "1", Username: "cleazy"}, {ID: "2", Username: "ana"}},
	}
}

func (f *fakeController) Startup(ctx context.Context) session.Status {
	f.startups++
	if len(f.statuses) == 0 {
		return session.StatusReady
	}
	s := f.statuses[0]
	f.statuses = f.statuses[1:]
	return s
}

func (f *fakeController) Retry(ctx context.Context) session.Status { return f.Startup(ctx) }

func (f *fakeController) Login(ctx context.Context, username, password string) error {
	name := session.NormalizeUsername(username)
	f.logins = append(f.logins, name)
	if pw, ok := f.accounts[name]; !ok || pw != password {
		return session.ErrInvalidCredentials
	}
	f.user = &models.User{ID: name, Username: name, Password: password}
	return nil
}

func (f *fakeController) Logout() {
	f.user = nil
	f.messages = nil
}

func (f *fakeController) SendMessage(ctx context.Context, text string) (models.Message, error) {
	if f.sendErr != nil {
		return models.Message{}, f.sendErr
	}
	f.messages = append(f.messages, models.Message{ID: "user-1", Sender: models.SenderUser, Text: text, Timestamp: "10:00"})
	f.messages = append(f.messages, f.reply)
	return f.reply, nil
}

func (f *fakeController) RefreshUsers(ctx context.Context) error { return nil }

func (f *fakeController) AddUser(ctx context.Context, candidate models.NewUser) (*models.User, error) {
	if f.addErr != nil {
		return nil, f.addErr
	}
	u := models.User{ID: "3", Username: session.NormalizeUsername(candidate.Username), Password: candidate.Password}
	f.users = append(f.users, u)
	return &u, nil
}

func (f *fakeController) DeleteUser(ctx context.Context, username string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, username)
	return nil
}

func (f *fakeController) Snapshot() session.Snapshot {
	s := session.Snapshot{
		Status:   session.StatusReady,
		Messages: slices.Clone(f.messages),
		Users:    slices.Clone(f.users),
	}
	if f.user != nil {
		u := *f.user
		s.User = &u
	}
	return s
}

type fakeHints struct {
	last   string
	cached []string
	err    error
}

func (h fakeHints) LastUsername(ctx context.Context) (string, error) { return h.last, nil }

func (h fakeHints) CachedUsernames(ctx context.Context) ([]string, error) { return h.cached, h.err }

// newTestApp builds an App over fakes reading input and writing to a buffer.
func newTestApp(t *testing.T, ctrl *fakeController, input string) (*App, *bytes.Buffer) {
	t.Helper()

	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })

	stubTerminal(t, false, nil, nil)

	var out bytes.Buffer
	return &App{
		ctrl:   ctrl,
		hints:  fakeHints{},
		reader: rdr(input),
		out:    &out,
		log:    logging.Discard(),
	}, &out
}
