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
	status(ctx context.Context) string

	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Open(ctx context.Context, path string) error

	Books(ctx context.Context) error
	Search(ctx context.Context, text string) error
	Category(ctx context.Context, name string) error
	Author(ctx context.Context, name string) error
	ClearFilters(ctx context.Context) error
	Page(ctx context.Context, n int) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Book(ctx context.Context, id string) error

	Add(ctx context.Context, id string) error
	Cart(ctx context.Context) error
	Inc(ctx context.Context, id string) error
	Dec(ctx context.Context, id string) error
	Qty(ctx context.Context, id string, n int) error
	Remove(ctx context.Context, id string) error
}

const helpText = `Available commands:
  signup | login | logout
  open <path>            go to /, /cart, /book/<id>, /login, /signup
  books                  list the catalog
  search <text>          filter by title
  category <name>        filter by category (Fiction, Non-Fiction, Sci-Fi)
  author <name>          filter by author
  clear                  drop all filters
  page <n> | next | prev paginate
  book <id>              show a book
  add <id>               add a book to the cart
  cart                   show the cart
  inc <id> | dec <id>    change a quantity by one
  qty <id> <n>           set a quantity
  remove <id>            remove a line
  exit | quit`

// runREPL starts a simple read–eval–print loop for the bookstore CLI.
//
// It reads a line from the provided reader, parses the first token as the
// command, and dispatches to methods on 'a'. Commands missing an argument
// print their usage instead of running. The loop exits on EOF or when the
// user types "exit" or "quit". Interactive prompts opened by commands read
// from the same reader, so no input is buffered away from them.
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("bookstore (%s) > ", a.status(ctx)))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]
		rest := strings.Join(args, " ")

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "open":
			if len(args) != 1 {
				printlnFn("Usage: open <path>")
				continue
			}
			_ = a.Open(ctx, args[0])

		case "books":
			_ = a.Books(ctx)

		case "search":
			_ = a.Search(ctx, rest)

		case "category":
			_ = a.Category(ctx, rest)

		case "author":
			_ = a.Author(ctx, rest)

		case "clear":
			_ = a.ClearFilters(ctx)

		case "page":
			n, ok := intArg(args, 0)
			if !ok {
				printlnFn("Usage: page <n>")
				continue
			}
			_ = a.Page(ctx, n)

		case "next":
			_ = a.Next(ctx)

		case "prev":
			_ = a.Prev(ctx)

		case "book", "add", "inc", "dec", "remove":
			if len(args) != 1 {
				printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
				continue
			}
			_ = dispatchByID(ctx, a, cmd, args[0])

		case "cart":
			_ = a.Cart(ctx)

		case "qty":
			n, ok := intArg(args, 1)
			if len(args) != 2 || !ok {
				printlnFn("Usage: qty <id> <n>")
				continue
			}
			_ = a.Qty(ctx, args[0], n)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func dispatchByID(ctx context.Context, a execIface, cmd, id string) error {
	switch cmd {
	case "book":
		return a.Book(ctx, id)
	case "add":
		return a.Add(ctx, id)
	case "inc":
		return a.Inc(ctx, id)
	case "dec":
		return a.Dec(ctx, id)
	default:
		return a.Remove(ctx, id)
	}
}

func intArg(args []string, i int) (int, bool) {
	if i >= len(args) {
		return 0, false
	}
	n, err := strconv.Atoi(args[i])
	return n, err == nil
}
