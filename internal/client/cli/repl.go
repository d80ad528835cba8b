package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = func(a ...any) { fmt.Println(a...) }

// execIface is the minimal command surface the REPL needs. The real App
// satisfies it; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context)
	Login(ctx context.Context)
	Logout(ctx context.Context)
	List(ctx context.Context)
	Add(ctx context.Context, title string)
	Toggle(ctx context.Context, args []string)
	Del(ctx context.Context, args []string)
	Open(ctx context.Context, args []string)
	Board(ctx context.Context)
	AddSub(ctx context.Context, title string)
	Move(ctx context.Context, args []string)
	EditSub(ctx context.Context, args []string)
	DelSub(ctx context.Context, args []string)
}

// runREPL reads a line, takes the first token as the command, and
// dispatches to methods on a. The loop exits on EOF or "exit"/"quit".
// Commands that need authentication are only offered once logged in,
// which is the CLI's version of the browser app's route guarding.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("tb> %s >", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "exit", "quit":
			return
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: list, add <title>, toggle <n> <status>, del <n>, open <n>, board, addsub <title>, move <m> <column>, editsub <m> <title>, delsub <m>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}
			continue
		}

		if !a.isLoggedIn() {
			switch cmd {
			case "register":
				a.Register(ctx)
			case "login":
				a.Login(ctx)
			default:
				printlnFn("Unknown command. Type 'help' for the command list.")
			}
			continue
		}

		switch cmd {
		case "list":
			a.List(ctx)
		case "add":
			a.Add(ctx, strings.Join(args, " "))
		case "toggle":
			a.Toggle(ctx, args)
		case "del":
			a.Del(ctx, args)
		case "open":
			a.Open(ctx, args)
		case "board":
			a.Board(ctx)
		case "addsub":
			a.AddSub(ctx, strings.Join(args, " "))
		case "move":
			a.Move(ctx, args)
		case "editsub":
			a.EditSub(ctx, args)
		case "delsub":
			a.DelSub(ctx, args)
		case "logout":
			a.Logout(ctx)
		default:
			printlnFn("Unknown command. Type 'help' for the command list.")
		}
	}
}
