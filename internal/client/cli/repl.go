package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Reload(ctx context.Context) error
	New(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Show(ctx context.Context, id string) error
	Toasts(ctx context.Context) error
	Dismiss(ctx context.Context, id int) error
}

const helpText = "Available commands: (l)ist, reload, new, show <id>, edit <id>, delete <id>, toasts, dismiss <n>, exit"

// runREPL starts a simple read–eval–print loop for the customer desk.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Command handlers read their own follow-up
// answers from the same reader. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("clientdesk %s> ", statusFn()))
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
			printlnFn(helpText)

		case "l", "list":
			_ = a.List(ctx)

		case "reload":
			_ = a.Reload(ctx)

		case "new", "add":
			_ = a.New(ctx)

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "edit":
			if len(args) == 0 {
				printlnFn("Usage: edit <id>")
				continue
			}
			_ = a.Edit(ctx, args[0])

		case "delete", "rm":
			if len(args) == 0 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "toasts":
			_ = a.Toasts(ctx)

		case "dismiss":
			if len(args) == 0 {
				printlnFn("Usage: dismiss <n>")
				continue
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				printlnFn("Usage: dismiss <n>")
				continue
			}
			_ = a.Dismiss(ctx, n)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
