package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printFn and printlnFn are test seams for user-facing output. In tests,
// replace them with stubs.
var (
	printFn   = fmt.Print
	printlnFn = fmt.Println
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isAdmin() bool
	Send(ctx context.Context, text string) error
	ShowHistory(ctx context.Context) error
	Examples(ctx context.Context, arg string) error
	ListUsers(ctx context.Context) error
	AddUser(ctx context.Context) error
	DeleteUser(ctx context.Context, username string) error
	Logout(ctx context.Context) error
}

// runREPL is the chat surface. Lines starting with "/" are commands, every
// other non-blank line is sent to the bot.
//
//	/help               show available commands
//	/examples [n]       show the example questions, or send example n
//	/history            reprint the conversation
//	/logout             end the session and go back to the login form
//	/exit | /quit       leave the program
//
//	Admin only:
//	/users              list users
//	/adduser            add a user
//	/deluser <user>     delete a user
//
// It returns true when the program should exit (explicit /exit or end of
// input) and false after /logout. Errors returned by handlers are ignored
// here; handlers print and log their own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) bool {
	for {
		printFn(fmt.Sprintf("cleazy (%s)> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return true
		}
		if line == "" {
			continue
		}

		if !strings.HasPrefix(line, "/") {
			_ = a.Send(ctx, line)
			continue
		}

		parts := strings.Fields(line)
		cmd, arg := parts[0], ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		switch cmd {
		case "/help":
			if a.isAdmin() {
				printlnFn("Comandos: /examples, /history, /users, /adduser, /deluser <usuário>, /logout, /exit")
			} else {
				printlnFn("Comandos: /examples, /history, /logout, /exit")
			}

		case "/examples":
			_ = a.Examples(ctx, arg)

		case "/history":
			_ = a.ShowHistory(ctx)

		case "/users", "/adduser", "/deluser":
			if !a.isAdmin() {
				printlnFn("Comando disponível apenas para o administrador.")
				continue
			}
			switch cmd {
			case "/users":
				_ = a.ListUsers(ctx)
			case "/adduser":
				_ = a.AddUser(ctx)
			case "/deluser":
				_ = a.DeleteUser(ctx, arg)
			}

		case "/logout":
			_ = a.Logout(ctx)
			return false

		case "/exit", "/quit":
			return true

		default:
			printlnFn("Comando desconhecido:", cmd)
		}
	}
}
