package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/cleazy-chat/internal/client/models"
	"github.com/dmitrijs2005/cleazy-chat/internal/client/repositories/users"
)

func notFound(op string) error {
	return &users.Error{Op: op, Kind: users.KindNotFound, Err: sql.ErrNoRows}
}

// fakeRepo is an in-memory users table.
type fakeRepo struct {
	mu     sync.Mutex
	rows   []models.User
	nextID int
	writes int

	checkErr  error
	findErr   error
	createErr error
	listErr   error
}

func (r *fakeRepo) CheckTable(ctx context.Context) error { return r.checkErr }

func (r *fakeRepo) FindByUsernameFold(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.rows {
		if strings.EqualFold(u.Username, username) {
			u := u
			return &u, nil
		}
	}
	return nil, notFound("find_fold")
}

func (r *fakeRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.rows {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, notFound("find")
}

func (r *fakeRepo) FindByCredentials(ctx context.Context, username, password string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.rows {
		if u.Username == username && u.Password == password {
			u := u
			return &u, nil
		}
	}
	return nil, notFound("find_credentials")
}

func (r *fakeRepo) UpdateCredentials(ctx context.Context, id, username, password string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows[i].Username = username
			r.rows[i].Password = password
			r.writes++
			return nil
		}
	}
	return notFound("update")
}

func (r *fakeRepo) Create(ctx context.Context, nu models.NewUser) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, u := range r.rows {
		if u.Username == nu.Username {
			return nil, &users.Error{Op: "create", Kind: users.KindDuplicate, Code: "23505", Err: errors.New("duplicate key")}
		}
	}
	r.nextID++
	u := models.User{ID: fmt.Sprintf("id-%d", r.nextID), Username: nu.Username, Password: nu.Password}
	r.rows = append(r.rows, u)
	r.writes++
	return &u, nil
}

func (r *fakeRepo) List(ctx context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	return slices.Clone(r.rows), nil
}

func (r *fakeRepo) DeleteByUsername(ctx context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = slices.DeleteFunc(r.rows, func(u models.User) bool { return u.Username == username })
	r.writes++
	return nil
}

func (r *fakeRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

func (r *fakeRepo) writeCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writes
}

// fakeCache mirrors cache.Store in memory.
type fakeCache struct {
	mu        sync.Mutex
	bootstrap bool
	history   map[string][]models.Message
	saves     int
}

func newFakeCache() *fakeCache {
	return &fakeCache{history: map[string][]models.Message{}}
}

func (c *fakeCache) BootstrapDone(ctx context.Context) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bootstrap, nil
}

func (c *fakeCache) MarkBootstrapDone(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bootstrap = true
	return nil
}

func (c *fakeCache) LoadHistory(ctx context.Context, username string) []models.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Message, 0)
	return append(out, c.history[username]...)
}

func (c *fakeCache) SaveHistory(ctx context.Context, username string, msgs []models.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history[username] = slices.Clone(msgs)
	c.saves++
	return nil
}

func (c *fakeCache) PurgeHistory(ctx context.Context, username string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.history, username)
	return nil
}

func (c *fakeCache) saved(username string) []models.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.history[username])
}

// fakeBot answers with reply or err. When gate is set, Reply signals started
// and blocks until gate is closed.
type fakeBot struct {
	reply   string
	err     error
	started chan struct{}
	gate    chan struct{}
}

func (b *fakeBot) Reply(ctx context.Context, text string) (string, error) {
	if b.gate != nil {
		b.started <- struct{}{}
		<-b.gate
	}
	if b.err != nil {
		return "", b.err
	}
	if b.reply == "" {
		return "eco: " + text, nil
	}
	return b.reply, nil
}

// tickingClock returns a clock that advances one millisecond per call.
func tickingClock() func() time.Time {
	var mu sync.Mutex
	t := time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Millisecond)
		return t
	}
}
