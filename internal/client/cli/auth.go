package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cleazy-chat/internal/client/session"
	"github.com/dmitrijs2005/cleazy-chat/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login shows the login form once. On success it opens the chat surface; on
// bad credentials it prints the generic message and returns
// session.ErrInvalidCredentials. Input errors are returned unchanged.
func (a *App) Login(ctx context.Context) error {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, titleColor.Sprint("Bem-vindo!"), "Faça login para acessar o assistente.")

	last, err := a.hints.LastUsername(ctx)
	if err != nil {
		a.log.Warn(ctx, "cannot read last username", "error", err)
	}

	prompt := "Usuário"
	if last != "" {
		prompt = fmt.Sprintf("Usuário [%s]", last)
	}

	username, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if username == "" {
		username = last
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.ctrl.Login(ctx, username, string(password)); err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			fmt.Fprintln(a.out, errorColor.Sprint("Usuário ou senha inválidos."))
		}
		return err
	}

	a.openChat()
	return nil
}

// openChat prints the chat header and either the saved transcript or the
// pinned examples for a fresh conversation.
func (a *App) openChat() {
	s := a.ctrl.Snapshot()

	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "%s %s\n", botColor.Sprint("●"), "Online - Assistente de Orçamento")

	if len(s.Messages) == 0 {
		printPinned(a.out)
	} else {
		printTranscript(a.out, s.Messages)
		fmt.Fprintln(a.out, greyColor.Sprint("Digite /examples para ver exemplos de perguntas."))
	}

	if s.IsAdmin() {
		fmt.Fprintln(a.out, greyColor.Sprint("Configurações: /users, /adduser, /deluser <usuário>"))
	}
}

// Logout ends the session. The REPL returns to the login form afterwards.
func (a *App) Logout(ctx context.Context) error {
	a.ctrl.Logout()
	fmt.Fprintln(a.out, "Sessão encerrada.")
	return nil
}
