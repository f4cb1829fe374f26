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

import "net/http"

// Group is the builder of the routes sharing one prefix group
// and some common middlewares.
type Group struct {
	dispatcher  *Dispatcher
	prefix      string
	middlewares []Middleware
}

// Group returns a new route group builder with the prefix.
//
// Registering through the builder creates the prefix group on its first
// route, so the first registered route decides the prefix precedence.
func (d *Dispatcher) Group(prefix string) *Group {
	return &Group{dispatcher: d, prefix: prefix}
}

// Use appends some common middlewares for the group, which are run before
// the route middlewares, then returns the origin group to write the
// chained calls.
func (g *Group) Use(middlewares ...Middleware) *Group {
	g.middlewares = append(g.middlewares, middlewares...)
	return g
}

// Handle registers the middleware chain for the method and the path
// relative to the group prefix.
func (g *Group) Handle(method, path string, middlewares ...Middleware) error {
	return g.handle(method, path, false, middlewares)
}

// HandleAjax is the same as Handle, but marks the route as an AJAX one.
func (g *Group) HandleAjax(method, path string, middlewares ...Middleware) error {
	return g.handle(method, path, true, middlewares)
}

func (g *Group) handle(method, path string, ajax bool, middlewares []Middleware) error {
	ms := make([]Middleware, 0, len(g.middlewares)+len(middlewares))
	ms = append(ms, g.middlewares...)
	ms = append(ms, middlewares...)
	return g.dispatcher.Register(g.prefix, g.prefix+path, method, ajax, ms...)
}

// GET is short for g.Handle("GET", path, middlewares...).
func (g *Group) GET(path string, middlewares ...Middleware) error {
	return g.Handle(http.MethodGet, path, middlewares...)
}

// POST is short for g.Handle("POST", path, middlewares...).
func (g *Group) POST(path string, middlewares ...Middleware) error {
	return g.Handle(http.MethodPost, path, middlewares...)
}

// PUT is short for g.Handle("PUT", path, middlewares...).
func (g *Group) PUT(path string, middlewares ...Middleware) error {
	return g.Handle(http.MethodPut, path, middlewares...)
}

// DELETE is short for g.Handle("DELETE", path, middlewares...).
func (g *Group) DELETE(path string, middlewares ...Middleware) error {
	return g.Handle(http.MethodDelete, path, middlewares...)
}
