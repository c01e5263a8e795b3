package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	handle(ctx context.Context, err error)

	Status(ctx context.Context) error
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Reset(ctx context.Context) error
	Whoami(ctx context.Context) error
	Profile(ctx context.Context, args []string) error
	Edit(ctx context.Context) error
	Feed(ctx context.Context) error
	Events(ctx context.Context, args []string) error
	Find(ctx context.Context, args []string) error
	Event(ctx context.Context, args []string) error
	Media(ctx context.Context, args []string) error
	Create(ctx context.Context) error
	Join(ctx context.Context, args []string) error
	CloseEvent(ctx context.Context, args []string) error
	Tags(ctx context.Context) error
	Chat(ctx context.Context, args []string) error
}

const (
	helpSignedOut = "Available commands: register, login, reset, status, exit"
	helpSignedIn  = "Available commands: whoami, profile <id>, edit, feed, events [userID], find [lat lon radius], " +
		"event <id>, media <id>, create, join <id> [lat lon], close <id>, tags, chat <id>, status, logout, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
//
// The prompt shows the current status (from statusFn). Every error returned
// by a command goes to a.handle, so a failing command never ends the loop.
// The loop exits on EOF or when the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ev (%s)> ", statusFn()))

		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpSignedOut)
			}

		case "status":
			a.handle(ctx, a.Status(ctx))
		case "register":
			a.handle(ctx, a.Register(ctx))
		case "login":
			a.handle(ctx, a.Login(ctx))
		case "logout":
			a.handle(ctx, a.Logout(ctx))
		case "reset":
			a.handle(ctx, a.Reset(ctx))
		case "whoami":
			a.handle(ctx, a.Whoami(ctx))
		case "profile":
			a.handle(ctx, a.Profile(ctx, args))
		case "edit":
			a.handle(ctx, a.Edit(ctx))
		case "feed":
			a.handle(ctx, a.Feed(ctx))
		case "events":
			a.handle(ctx, a.Events(ctx, args))
		case "find":
			a.handle(ctx, a.Find(ctx, args))
		case "event":
			a.handle(ctx, a.Event(ctx, args))
		case "media":
			a.handle(ctx, a.Media(ctx, args))
		case "create":
			a.handle(ctx, a.Create(ctx))
		case "join":
			a.handle(ctx, a.Join(ctx, args))
		case "close":
			a.handle(ctx, a.CloseEvent(ctx, args))
		case "tags":
			a.handle(ctx, a.Tags(ctx))
		case "chat":
			a.handle(ctx, a.Chat(ctx, args))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
