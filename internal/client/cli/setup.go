package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/cleazy-chat/internal/client/repositories/users"
	"github.com/dmitrijs2005/cleazy-chat/internal/client/session"
)

// WaitForDatabase runs the startup check and keeps the user on the setup
// screen until it passes. It returns errExit when the user gives up.
func (a *App) WaitForDatabase(ctx context.Context) error {
	fmt.Fprintln(a.out, greyColor.Sprint("Verificando banco de dados..."))
	status := a.ctrl.Startup(ctx)

	for status != session.StatusReady {
		a.printSetupScreen()

		answer, err := getSimpleText(a.reader, "Digite retry para verificar novamente ou exit para sair", a.out)
		if err != nil {
			return err
		}

		switch strings.ToLower(answer) {
		case "", "r", "retry":
			fmt.Fprintln(a.out, greyColor.Sprint("Verificando banco de dados..."))
			status = a.ctrl.Retry(ctx)
		case "exit", "quit":
			return errExit
		default:
			fmt.Fprintln(a.out, "Opção desconhecida:", answer)
		}
	}

	return nil
}

func (a *App) printSetupScreen() {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, errorColor.Sprint("Configuração do banco de dados necessária"))
	fmt.Fprintf(a.out, "A tabela %s não foi encontrada ou o banco de dados está inacessível.\n", users.Table)
	fmt.Fprintln(a.out, "Peça ao operador para executar cleazy-setup com o mesmo DSN e tente novamente.")
}
