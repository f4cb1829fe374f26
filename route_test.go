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
	"errors"
	"net/http/httptest"
	"reflect"
	"testing"
)

func newTestContext(method, target string) (*Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	return NewContext(NewRequest(req), rec), rec
}

func TestRouteChainOrder(t *testing.T) {
	var calls []int
	var errs []error

	middlewares := make([]Middleware, 3)
	for i := range middlewares {
		index := i
		middlewares[index] = func(c *Context, next Next) {
			calls = append(calls, index)
			next(nil)
		}
	}

	route, err := NewRoute("/path", "GET", false, middlewares...)
	if err != nil {
		t.Fatal(err)
	}

	c, _ := newTestContext("GET", "/path")
	err = route.Run(c, func(c *Context, err error) { errs = append(errs, err) })
	if err != nil {
		t.Error(err)
	}
	if !reflect.DeepEqual(calls, []int{0, 1, 2}) {
		t.Errorf("expected calls [0 1 2], but got %v", calls)
	}
	if len(errs) != 0 {
		t.Errorf("unexpected errors %v", errs)
	}
}

func TestRouteChainError(t *testing.T) {
	var calls []int
	var errs []error
	broken := errors.New("broken")

	route, err := NewRoute("/path", "GET", false,
		func(c *Context, next Next) { calls = append(calls, 0); next(nil) },
		func(c *Context, next Next) { calls = append(calls, 1); next(broken) },
		func(c *Context, next Next) { calls = append(calls, 2); next(nil) },
	)
	if err != nil {
		t.Fatal(err)
	}

	c, _ := newTestContext("GET", "/path")
	route.Run(c, func(c *Context, err error) { errs = append(errs, err) })

	if !reflect.DeepEqual(calls, []int{0, 1}) {
		t.Errorf("expected calls [0 1], but got %v", calls)
	}
	if len(errs) != 1 || errs[0] != broken {
		t.Errorf("expected the error 'broken' once, but got %v", errs)
	}
}

func TestRouteChainTerminate(t *testing.T) {
	var calls []int

	route, _ := NewRoute("/path", "GET", false,
		func(c *Context, next Next) { calls = append(calls, 0) },
		func(c *Context, next Next) { calls = append(calls, 1); next(nil) },
	)

	c, _ := newTestContext("GET", "/path")
	route.Run(c, func(c *Context, err error) { t.Errorf("unexpected error %v", err) })

	if !reflect.DeepEqual(calls, []int{0}) {
		t.Errorf("expected calls [0], but got %v", calls)
	}
}

func TestRouteEmptyChain(t *testing.T) {
	route, err := NewRoute("/path", "GET", false)
	if err != nil {
		t.Fatal(err)
	}

	c, rec := newTestContext("GET", "/path")
	err = route.Run(c, func(c *Context, err error) { t.Errorf("unexpected error %v", err) })
	if err != nil {
		t.Error(err)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("unexpected body '%s'", rec.Body.String())
	}
}

func TestRouteMissingErrorHandler(t *testing.T) {
	route, _ := NewRoute("/path", "GET", false,
		func(c *Context, next Next) { t.Error("the chain must not run") },
	)

	c, _ := newTestContext("GET", "/path")
	if err := route.Run(c, nil); err != ErrMissingErrorHandler {
		t.Errorf("expected ErrMissingErrorHandler, but got %v", err)
	}
}

func TestNewRouteInvalid(t *testing.T) {
	if _, err := NewRoute("/path", "GET", false, nil); err != ErrInvalidMiddleware {
		t.Errorf("expected ErrInvalidMiddleware, but got %v", err)
	}
	if _, err := NewRoute("path", "GET", false); err == nil {
		t.Error("expected an error for the path without '/'")
	}
	if _, err := NewRoute("/path", "FETCH", false); err == nil {
		t.Error("expected an error for the invalid method")
	}
}

func TestNewRouteMethodCase(t *testing.T) {
	route, err := NewRoute("/path", "get", true)
	if err != nil {
		t.Fatal(err)
	}
	if route.Method != "GET" {
		t.Errorf("expected method 'GET', but got '%s'", route.Method)
	}
	if !route.Ajax {
		t.Error("expected an ajax route")
	}
}
