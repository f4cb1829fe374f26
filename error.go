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
	"fmt"
	"net/http"
)

// Some non-HTTP errors.
var (
	// ErrInvalidMiddleware is returned when registering a route
	// whose middleware chain contains a nil entry.
	ErrInvalidMiddleware = errors.New("invalid middleware")

	// ErrMissingErrorHandler is returned when running a route chain
	// without an error handler.
	ErrMissingErrorHandler = errors.New("missing error handler")
)

// Some HTTP errors.
var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest)
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized)
	ErrForbidden           = NewHTTPError(http.StatusForbidden)
	ErrNotFound            = NewHTTPError(http.StatusNotFound)
	ErrMethodNotAllowed    = NewHTTPError(http.StatusMethodNotAllowed)
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError)
)

// HTTPError represents an error with the HTTP status code.
type HTTPError struct {
	Code int
	Err  error
	CT   string // Content-Type
}

// NewHTTPError returns a new HTTPError.
func NewHTTPError(code int, msg ...string) HTTPError {
	if len(msg) > 0 {
		return HTTPError{Code: code, Err: errors.New(msg[0])}
	}
	return HTTPError{Code: code}
}

func (e HTTPError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

// Unwrap unwraps the inner error.
func (e HTTPError) Unwrap() error { return e.Err }

// New returns a new HTTPError with the new error.
func (e HTTPError) New(err error) HTTPError { e.Err = err; return e }

// Newf is equal to New(fmt.Errorf(format, args...)).
func (e HTTPError) Newf(format string, args ...interface{}) HTTPError {
	if len(args) == 0 {
		return e.New(errors.New(format))
	}
	return e.New(fmt.Errorf(format, args...))
}

// NewCT returns a new HTTPError with the new Content-Type ct.
func (e HTTPError) NewCT(ct string) HTTPError { e.CT = ct; return e }

// StatusCode returns the status code of the error err.
//
// If err is not an HTTPError, it returns 500 by default.
func StatusCode(err error) int {
	if he, ok := err.(HTTPError); ok {
		return he.Code
	}
	return http.StatusInternalServerError
}
