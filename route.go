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

package dispatch

import (
	"fmt"
	"net/http"
	"strings"
)

// Next is the continuation handed to a middleware. Calling it with a nil
// error advances the chain to the next middleware; calling it with a non-nil
// error stops the chain and invokes the error handler with that error.
// A middleware that has finished the response may terminate the chain
// by not calling it at all.
type Next func(err error)

// Middleware is one link in the route chain. It may write the response
// directly, and it is invoked synchronously with its continuation.
type Middleware func(c *Context, next Next)

// ErrorHandler handles the error of one dispatch. It is invoked at most once
// per dispatch and must finalize the response itself; the dispatcher never
// resumes the normal flow after invoking it. The ajax flag of the request
// is available as c.IsAjax().
type ErrorHandler func(c *Context, err error)

var allMethods = map[string]struct{}{
	http.MethodConnect: {},
	http.MethodDelete:  {},
	http.MethodGet:     {},
	http.MethodHead:    {},
	http.MethodOptions: {},
	http.MethodPatch:   {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodTrace:   {},
}

// Route binds the exact key (path, method, ajax) to an ordered middleware
// chain. The chain is immutable after construction, and the route stores
// no per-run state, so one Route value may be dispatched concurrently.
type Route struct {
	Path   string
	Method string
	Ajax   bool

	chain []Middleware
}

// NewRoute returns a new Route.
//
// The path must start with '/' and the method must be a standard HTTP verb.
// It returns ErrInvalidMiddleware if any middleware is nil.
func NewRoute(path, method string, ajax bool, middlewares ...Middleware) (*Route, error) {
	if path == "" || path[0] != '/' {
		return nil, fmt.Errorf("path '%s' must start with '/'", path)
	}

	method = strings.ToUpper(method)
	if _, ok := allMethods[method]; !ok {
		return nil, fmt.Errorf("invalid method '%s'", method)
	}

	for _, m := range middlewares {
		if m == nil {
			return nil, ErrInvalidMiddleware
		}
	}

	chain := make([]Middleware, len(middlewares))
	copy(chain, middlewares)
	return &Route{Path: path, Method: method, Ajax: ajax, chain: chain}, nil
}

// Len returns the number of the middlewares in the chain.
func (r *Route) Len() int { return len(r.chain) }

// Run drives the middleware chain for one dispatch.
//
// If handle is nil, it returns ErrMissingErrorHandler without running
// anything. If the chain is empty, it returns nil with no effect.
// Otherwise it invokes the first middleware synchronously and returns
// after the chain has finished, either silently after the last
// continuation or by handing an error to handle.
func (r *Route) Run(c *Context, handle ErrorHandler) error {
	if handle == nil {
		return ErrMissingErrorHandler
	}
	if len(r.chain) > 0 {
		r.invoke(c, 0, handle)
	}
	return nil
}

// invoke runs the middleware at index with a continuation bound to index.
// The index is threaded through the continuations instead of being stored
// on the route, so concurrent runs of the same route cannot corrupt
// each other. The recursion grows the stack by one frame per link until
// the innermost continuation returns.
func (r *Route) invoke(c *Context, index int, handle ErrorHandler) {
	r.chain[index](c, func(err error) {
		if err != nil {
			handle(c, err)
		} else if next := index + 1; next < len(r.chain) {
			r.invoke(c, next, handle)
		}
	})
}
