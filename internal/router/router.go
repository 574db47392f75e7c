package router

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync/atomic"

	"mini_web/internal/http/request"
	"mini_web/internal/http/response"
)

// Handler produces the response for a request. Returning a
// *response.HTTPError as the error writes the error's response; any other
// error becomes a 500.
type Handler func(req *request.Request) (*response.Response, error)

var (
	ErrRouterFrozen   = errors.New("router is frozen")
	ErrInvalidPattern = errors.New("invalid route pattern")
	ErrNilHandler     = errors.New("nil handler")
)

type route struct {
	pattern *regexp.Regexp
	method  string
	handler Handler
}

// Router dispatches on path pattern and method, first registration wins.
// Register must not be called once serving starts; Freeze enforces that.
type Router struct {
	routes []route
	frozen atomic.Bool
}

func New() *Router {
	return &Router{}
}

// Register adds a route. The pattern must match the whole path. An empty
// method means GET.
func (r *Router) Register(pattern, method string, handler Handler) error {
	if r.frozen.Load() {
		return ErrRouterFrozen
	}
	if handler == nil {
		return ErrNilHandler
	}
	compiled, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidPattern, pattern, err)
	}
	if method == "" {
		method = "GET"
	}
	r.routes = append(r.routes, route{
		pattern: compiled,
		method:  strings.ToUpper(method),
		handler: handler,
	})
	return nil
}

func (r *Router) Get(pattern string, handler Handler) error {
	return r.Register(pattern, "GET", handler)
}

func (r *Router) Post(pattern string, handler Handler) error {
	return r.Register(pattern, "POST", handler)
}

// Match returns the handler of the first route whose pattern matches path and
// whose method equals method, ignoring case.
func (r *Router) Match(path, method string) (Handler, bool) {
	method = strings.ToUpper(method)
	for _, rt := range r.routes {
		if rt.method == method && rt.pattern.MatchString(path) {
			return rt.handler, true
		}
	}
	return nil, false
}

// Freeze stops further registration so the table can be read without locks.
func (r *Router) Freeze() {
	r.frozen.Store(true)
}

func (r *Router) Len() int {
	return len(r.routes)
}
