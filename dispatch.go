// Copyright 2021 xgfone
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dispatch supplies a prefix-grouped route registry with
// a continuation-passing middleware chain per route and a static-file
// fallback, behind a single error channel.
package dispatch

import (
	"net/http"
	"os"
	"strings"
)

// Dispatcher maps the path prefixes to their route groups and resolves
// each request to one route, the static fallback or the error handler.
//
// A Dispatcher is constructed once during the application configuration
// and must not be modified after it begins serving.
type Dispatcher struct {
	// Logger is used by the dispatcher and handed to each context.
	Logger Logger

	// Static serves the fallback when no route matches.
	Static *StaticFiles

	// HandleError is the single error channel of the dispatcher.
	// All the failures of one dispatch funnel into it exactly once.
	HandleError ErrorHandler

	prefixes []string
	groups   map[string][]*Route
}

// New returns a new Dispatcher configured by options.
func New(options ...Option) *Dispatcher {
	d := &Dispatcher{
		Logger: NewLoggerFromWriter(os.Stderr, ""),
		Static: NewStaticFiles("."),
		groups: make(map[string][]*Route, 8),
	}
	d.HandleError = d.handleErrorDefault

	for _, opt := range options {
		opt(d)
	}
	return d
}

// Register registers the middleware chain under the group of prefix
// for the exact key (path, method, ajax).
//
// It returns ErrInvalidMiddleware if any middleware is nil, before
// any request can reach the route.
func (d *Dispatcher) Register(prefix, path, method string, ajax bool,
	middlewares ...Middleware) error {
	route, err := NewRoute(path, method, ajax, middlewares...)
	if err != nil {
		return err
	}
	d.AddRoute(prefix, route)
	return nil
}

// AddRoute appends route to the group of prefix, creating the group on
// first use. Both the prefix order and the route order inside one group
// follow the registration order, and the order decides the precedence
// during matching.
func (d *Dispatcher) AddRoute(prefix string, route *Route) {
	if _, ok := d.groups[prefix]; !ok {
		d.prefixes = append(d.prefixes, prefix)
	}
	d.groups[prefix] = append(d.groups[prefix], route)
}

// Routes returns all the registered routes in the registration order
// of their prefixes.
func (d *Dispatcher) Routes() (routes []*Route) {
	routes = make([]*Route, 0, 16)
	for _, prefix := range d.prefixes {
		routes = append(routes, d.groups[prefix]...)
	}
	return
}

// match resolves path and method to a route.
//
// The first registered prefix that is a literal string prefix of path wins
// and commits the dispatch to its group: when no route inside that group
// matches (path, method) exactly, the dispatch falls to the static fallback
// without consulting any later prefix. This is not a longest-prefix match;
// the registration order decides the precedence.
func (d *Dispatcher) match(path, method string) *Route {
	for _, prefix := range d.prefixes {
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		for _, route := range d.groups[prefix] {
			if route.Path == path && route.Method == method {
				return route
			}
		}
		return nil
	}
	return nil
}

// Dispatch resolves the context to exactly one outcome: a route chain run,
// a static file response, or the error handler.
//
// Any panic from the middlewares or the fallback serving is recovered
// and funneled to the error handler as a 500 error.
func (d *Dispatcher) Dispatch(c *Context) {
	if c.logger == nil {
		c.logger = d.Logger
	}

	handle := d.HandleError
	if handle == nil {
		handle = d.handleErrorDefault
	}
	handle = handleOnce(handle)

	defer func() {
		if v := recover(); v != nil {
			switch e := v.(type) {
			case error:
				handle(c, ErrInternalServerError.New(e))
			default:
				handle(c, ErrInternalServerError.Newf("%v", e))
			}
		}
	}()

	if route := d.match(c.req.Path, c.req.Method); route != nil {
		route.Run(c, handle)
		return
	}

	if err := d.Static.Serve(c); err != nil {
		handle(c, err)
	}
}

// ServeHTTP implements the interface http.Handler.
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c := NewContext(NewRequest(r), w)
	c.SetLogger(d.Logger)
	d.Dispatch(c)
}

// handleOnce wraps handle so that it fires at most once per dispatch.
func handleOnce(handle ErrorHandler) ErrorHandler {
	return func(c *Context, err error) {
		if !c.failed {
			c.failed = true
			handle(c, err)
		}
	}
}

func (d *Dispatcher) handleErrorDefault(c *Context, err error) {
	if c.IsResponded() {
		return
	}

	code := StatusCode(err)
	if c.IsAjax() {
		c.JSON(code, map[string]string{"error": err.Error()})
	} else {
		c.Text(code, "%s", err)
	}
}
