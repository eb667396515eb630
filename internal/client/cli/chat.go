package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/cleazy-chat/internal/client/session"
)

// Send posts text to the bot and prints the answer bubble. The user's own
// line is already on screen, so only the typing indicator precedes the reply.
func (a *App) Send(ctx context.Context, text string) error {
	fmt.Fprintln(a.out, greyColor.Sprint("Cleazy está digitando..."))

	reply, err := a.ctrl.SendMessage(ctx, text)
	if err != nil {
		if errors.Is(err, session.ErrSessionChanged) {
			return nil
		}
		fmt.Fprintln(a.out, errorColor.Sprint("Não foi possível enviar a mensagem:"), err)
		return err
	}
	if reply.ID == "" {
		return nil
	}

	renderMessage(a.out, reply)
	return nil
}

// ShowHistory reprints the current transcript.
func (a *App) ShowHistory(ctx context.Context) error {
	msgs := a.ctrl.Snapshot().Messages
	if len(msgs) == 0 {
		fmt.Fprintln(a.out, greyColor.Sprint("Nenhuma mensagem ainda."))
		return nil
	}
	printTranscript(a.out, msgs)
	return nil
}

// Examples prints the pinned card, or sends example arg when given.
func (a *App) Examples(ctx context.Context, arg string) error {
	if arg == "" {
		printPinned(a.out)
		return nil
	}

	n, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintln(a.out, "Uso: /examples [número]")
		return err
	}
	text, ok := example(n)
	if !ok {
		fmt.Fprintf(a.out, "Escolha um exemplo entre 1 e %d.\n", len(examples))
		return fmt.Errorf("example %d out of range", n)
	}

	fmt.Fprintln(a.out, userColor.Sprint(userLabel+":"), text)
	return a.Send(ctx, text)
}
