package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to. *App satisfies
// it; tests use a recording stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, term string) error
	Show(ctx context.Context, arg string) error
	AddNote(ctx context.Context) error
	SetMode(ctx context.Context, arg string) error
	Draw(ctx context.Context, path string) error
	Save(ctx context.Context) error
	ShowDraft(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: (l)ist, search <term>, show <id>, addnote, mode text|drawing, draw <image>, draft, save, logout, exit"
)

// runREPL reads commands from reader until EOF, "exit" or "quit". The
// command is the first word; for "search" the rest of the line is passed
// unmodified so the service sees the term exactly as typed. Handlers print
// their own results and errors; the loop only reports unknown commands.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "sealnotes %s> ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			fmt.Fprintln(w)
			return
		}
		line = strings.TrimRight(line, "\r\n")

		cmd, rest, _ := strings.Cut(strings.TrimLeft(line, " \t"), " ")
		arg := strings.TrimSpace(rest)

		switch cmd {
		case "":
			continue

		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpLoggedIn)
			} else {
				fmt.Fprintln(w, helpLoggedOut)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "search":
			_ = a.Search(ctx, rest)

		case "show":
			_ = a.Show(ctx, arg)

		case "addnote":
			_ = a.AddNote(ctx)

		case "mode":
			_ = a.SetMode(ctx, arg)

		case "draw":
			_ = a.Draw(ctx, arg)

		case "save":
			_ = a.Save(ctx)

		case "draft":
			_ = a.ShowDraft(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
