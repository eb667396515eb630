package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/cleazy-chat/internal/client/models"
	"github.com/dmitrijs2005/cleazy-chat/internal/client/session"
	"github.com/dmitrijs2005/cleazy-chat/internal/common"
)

// ListUsers refreshes and prints the user list of the settings panel.
func (a *App) ListUsers(ctx context.Context) error {
	if err := a.ctrl.RefreshUsers(ctx); err != nil {
		a.printAdminError(ctx, "Erro ao carregar usuários.", err)
		return err
	}

	cached, err := a.hints.CachedUsernames(ctx)
	if err != nil {
		a.log.Warn(ctx, "cannot list cached transcripts", "error", err)
	}
	local := make(map[string]bool, len(cached))
	for _, name := range cached {
		local[name] = true
	}

	list := a.ctrl.Snapshot().Users
	fmt.Fprintf(a.out, "Usuários (%d):\n", len(list))
	for _, u := range list {
		var tags []string
		if u.IsAdmin() {
			tags = append(tags, "admin")
		}
		if local[u.Username] {
			tags = append(tags, "histórico local")
		}
		if len(tags) == 0 {
			fmt.Fprintf(a.out, "  - %s\n", u.Username)
			continue
		}
		fmt.Fprintf(a.out, "  - %s %s\n", u.Username, greyColor.Sprintf("(%s)", strings.Join(tags, ", ")))
	}
	return nil
}

// AddUser runs the add-user form.
func (a *App) AddUser(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Novo usuário", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.ctrl.AddUser(ctx, models.NewUser{Username: username, Password: string(password)})
	if err != nil {
		a.printAdminError(ctx, "Erro ao adicionar usuário.", err)
		return err
	}

	fmt.Fprintf(a.out, "Usuário %s adicionado.\n", u.Username)
	return nil
}

// DeleteUser removes username. The reserved admin cannot be removed.
func (a *App) DeleteUser(ctx context.Context, username string) error {
	if username == "" {
		fmt.Fprintln(a.out, "Uso: /deluser <usuário>")
		return nil
	}
	if session.NormalizeUsername(username) == common.AdminUsername {
		fmt.Fprintf(a.out, "O usuário %s não pode ser removido.\n", common.AdminUsername)
		return nil
	}

	if err := a.ctrl.DeleteUser(ctx, username); err != nil {
		a.printAdminError(ctx, "Erro ao remover usuário.", err)
		return err
	}

	fmt.Fprintf(a.out, "Usuário %s removido.\n", session.NormalizeUsername(username))
	return nil
}

func (a *App) printAdminError(ctx context.Context, fallback string, err error) {
	switch {
	case errors.Is(err, session.ErrDuplicateUser):
		fmt.Fprintln(a.out, errorColor.Sprint("Usuário já existe."))
	case errors.Is(err, session.ErrInvalidUser):
		fmt.Fprintln(a.out, errorColor.Sprint("Usuário e senha são obrigatórios."))
	case errors.Is(err, session.ErrForbidden), errors.Is(err, session.ErrNotAuthenticated):
		fmt.Fprintln(a.out, errorColor.Sprint("Comando disponível apenas para o administrador."))
	default:
		a.log.Error(ctx, "admin command failed", "error", err)
		fmt.Fprintln(a.out, errorColor.Sprint(fallback))
	}
}
