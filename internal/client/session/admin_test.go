package session

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/cleazy-chat/internal/client/models"
	"github.com/dmitrijs2005/cleazy-chat/internal/client/repositories/users"
	"github.com/dmitrijs2005/cleazy-chat/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddUser_ThenFoldLookupFindsLowercase(t *testing.T) {
	for _, name := range []string{"Ana", "BRUNO", "carla", "Dênis"} {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			f.readyAs(t, "cleazy", "1234")
			ctx := context.Background()

			created, err := f.c.AddUser(ctx, models.NewUser{Username: name, Password: "x"})
			require.NoError(t, err)

			found, err := f.repo.FindByUsernameFold(ctx, name)
			require.NoError(t, err)
			assert.Equal(t, NormalizeUsername(name), found.Username)
			assert.Equal(t, created.ID, found.ID)
			assert.Contains(t, f.c.Snapshot().Users, *created)
		})
	}
}

func TestAddUser_TwiceIsDuplicate(t *testing.T) {
	f := newFixture(t)
	f.readyAs(t, "cleazy", "1234")
	ctx := context.Background()

	_, err := f.c.AddUser(ctx, models.NewUser{Username: "Ana", Password: "x"})
	require.NoError(t, err)
	count, listed := f.repo.count(), len(f.c.Snapshot().Users)

	_, err = f.c.AddUser(ctx, models.NewUser{Username: "Ana", Password: "x"})
	require.ErrorIs(t, err, ErrDuplicateUser)
	assert.Equal(t, count, f.repo.count())
	assert.Len(t, f.c.Snapshot().Users, listed)
}

func TestAddUser_InsertRaceMapsToDuplicate(t *testing.T) {
	f := newFixture(t)
	f.readyAs(t, "cleazy", "1234")
	f.repo.createErr = &users.Error{Op: "create", Kind: users.KindDuplicate, Code: "23505", Err: errors.New("dup")}

	_, err := f.c.AddUser(context.Background(), models.NewUser{Username: "ana", Password: "x"})
	require.ErrorIs(t, err, ErrDuplicateUser)
}

func TestAddUser_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("not authenticated", func(t *testing.T) {
		f := newFixture(t)
		require.Equal(t, StatusReady, f.c.Startup(ctx))
		_, err := f.c.AddUser(ctx, models.NewUser{Username: "ana", Password: "x"})
		require.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("not admin", func(t *testing.T) {
		f := newFixture(t, models.User{ID: "u1", Username: "ana", Password: "x"})
		f.readyAs(t, "ana", "x")
		_, err := f.c.AddUser(ctx, models.NewUser{Username: "bruno", Password: "y"})
		require.ErrorIs(t, err, ErrForbidden)
		require.ErrorIs(t, f.c.DeleteUser(ctx, "cleazy"), ErrForbidden)
		require.ErrorIs(t, f.c.RefreshUsers(ctx), ErrForbidden)
	})

	t.Run("blank fields", func(t *testing.T) {
		f := newFixture(t)
		f.readyAs(t, "cleazy", "1234")
		_, err := f.c.AddUser(ctx, models.NewUser{Username: "  ", Password: "x"})
		require.ErrorIs(t, err, ErrInvalidUser)
		_, err = f.c.AddUser(ctx, models.NewUser{Username: "ana", Password: " "})
		require.ErrorIs(t, err, ErrInvalidUser)
		assert.Equal(t, 1, f.repo.count())
	})

	t.Run("lookup failure", func(t *testing.T) {
		f := newFixture(t)
		f.readyAs(t, "cleazy", "1234")
		f.repo.findErr = &users.Error{Op: "find", Kind: users.KindUnavailable, Err: errors.New("down")}
		_, err := f.c.AddUser(ctx, models.NewUser{Username: "ana", Password: "x"})
		require.Error(t, err)
		assert.Equal(t, users.KindUnavailable, users.KindOf(err))
	})
}

func TestDeleteUser_AdminIsNoop(t *testing.T) {
	f := newFixture(t)
	f.readyAs(t, "cleazy", "1234")
	ctx := context.Background()
	_, err := f.c.SendMessage(ctx, "oi")
	require.NoError(t, err)
	writes := f.repo.writeCount()

	for _, name := range []string{"cleazy", "Cleazy", " CLEAZY "} {
		require.NoError(t, f.c.DeleteUser(ctx, name))
	}

	assert.Equal(t, writes, f.repo.writeCount())
	_, err = f.repo.FindByUsername(ctx, "cleazy")
	require.NoError(t, err)
	assert.Len(t, f.cache.saved("cleazy"), 2)
	assert.Len(t, f.c.Snapshot().Users, 1)
}

func TestDeleteUser_RemovesAccountListEntryAndHistory(t *testing.T) {
	f := newFixture(t, models.User{ID: "u1", Username: "ana", Password: "x"})
	ctx := context.Background()
	f.cache.history["ana"] = []models.Message{{ID: "user-1", Sender: models.SenderUser, Text: "oi", Timestamp: "10:00"}}
	f.readyAs(t, "cleazy", "1234")
	require.Len(t, f.c.Snapshot().Users, 2)

	require.NoError(t, f.c.DeleteUser(ctx, "ana"))

	assert.Equal(t, 1, f.repo.count())
	assert.Len(t, f.c.Snapshot().Users, 1)
	assert.Empty(t, f.cache.saved("ana"))
}

func TestRefreshUsers(t *testing.T) {
	f := newFixture(t)
	f.readyAs(t, "cleazy", "1234")
	ctx := context.Background()

	_, err := f.repo.Create(ctx, models.NewUser{Username: "ana", Password: "x"})
	require.NoError(t, err)
	require.Len(t, f.c.Snapshot().Users, 1)

	require.NoError(t, f.c.RefreshUsers(ctx))
	assert.Len(t, f.c.Snapshot().Users, 2)
}

func TestErrors_WrapCommonSentinels(t *testing.T) {
	assert.ErrorIs(t, ErrInvalidCredentials, common.ErrorUnauthorized)
	assert.ErrorIs(t, ErrForbidden, common.ErrorUnauthorized)
	assert.ErrorIs(t, ErrDuplicateUser, common.ErrorAlreadyExists)
	assert.ErrorIs(t, ErrInvalidUser, common.ErrorValidation)
	assert.NotErrorIs(t, ErrSessionChanged, common.ErrorUnauthorized)
}
