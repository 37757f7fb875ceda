// Package routes maps navigation paths to views and decides whether the
// current session may enter them.
package routes

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
)

type Name string

const (
	Login    Name = "login"
	Signup   Name = "signup"
	Home     Name = "home"
	Book     Name = "book"
	Cart     Name = "cart"
	NotFound Name = "not-found"
)

// LoginPath is where the guard sends anonymous visitors.
const LoginPath = "/login"

// Route is a resolved navigation target.
type Route struct {
	Name      Name
	Pattern   string
	Path      string
	Params    map[string]string
	Protected bool
}

// Param returns a path parameter such as "id" for /book/{id}.
func (r Route) Param(key string) string {
	return r.Params[key]
}

type definition struct {
	name      Name
	protected bool
}

// Router resolves paths against the route table using chi's routing tree.
// It never serves HTTP; handlers are placeholders.
type Router struct {
	mux   *chi.Mux
	table map[string]definition
}

func NewRouter() *Router {
	r := &Router{mux: chi.NewRouter(), table: map[string]definition{}}
	r.add("/login", Login, false)
	r.add("/signup", Signup, false)
	r.add("/", Home, true)
	r.add("/book/{id}", Book, true)
	r.add("/cart", Cart, true)
	return r
}

func (r *Router) add(pattern string, name Name, protected bool) {
	r.table[pattern] = definition{name: name, protected: protected}
	r.mux.Get(pattern, func(http.ResponseWriter, *http.Request) {})
}

// Resolve maps path to a route. Unknown paths resolve to the NotFound
// route, which is public. Query strings are ignored.
func (r *Router) Resolve(path string) Route {
	path = normalize(path)

	rctx := chi.NewRouteContext()
	if !r.mux.Match(rctx, http.MethodGet, path) {
		return notFound(path)
	}

	pattern := rctx.RoutePattern()
	def, ok := r.table[pattern]
	if !ok {
		return notFound(path)
	}

	params := make(map[string]string, len(rctx.URLParams.Keys))
	for i, k := range rctx.URLParams.Keys {
		v, err := url.PathUnescape(rctx.URLParams.Values[i])
		if err != nil {
			v = rctx.URLParams.Values[i]
		}
		params[k] = v
	}
	if def.name == Book && strings.TrimSpace(params["id"]) == "" {
		return notFound(path)
	}

	return Route{
		Name:      def.name,
		Pattern:   pattern,
		Path:      path,
		Params:    params,
		Protected: def.protected,
	}
}

// BookPath builds the detail path of a book.
func BookPath(id string) string {
	return "/book/" + url.PathEscape(id)
}

func notFound(path string) Route {
	return Route{Name: NotFound, Pattern: "/*", Path: path}
}

func normalize(path string) string {
	path = strings.TrimSpace(path)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}
