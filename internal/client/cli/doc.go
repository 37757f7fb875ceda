// Package cli provides the interactive bookstore command-line client.
//
// It wires configuration, the local credential database, the API gateway,
// the state stores and the route guard into a REPL. Every view is entered
// through the guard: protected views (catalog, book detail, cart) redirect
// an anonymous user to the login prompt.
//
// Commands:
//   - help, signup, login, logout, exit | quit
//   - open <path>               navigate to /, /cart, /book/<id>, /login, ...
//   - books, search <text>, category <name>, author <name>, clear
//   - page <n>, next, prev
//   - book <id>, add <id>
//   - cart, inc <id>, dec <id>, qty <id> <n>, remove <id>
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
