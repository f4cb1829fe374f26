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
	"encoding/json"
	"fmt"
	"net/http"
)

// Context pairs the request snapshot with the response for one dispatch.
type Context struct {
	req    *Request
	res    *Response
	logger Logger
	failed bool
}

// NewContext returns a new Context with the request req and the writer w.
func NewContext(req *Request, w http.ResponseWriter) *Context {
	return &Context{req: req, res: NewResponse(w)}
}

// Request returns the request snapshot.
func (c *Context) Request() *Request { return c.req }

// Response returns the response writer.
func (c *Context) Response() *Response { return c.res }

// Logger returns the logger.
func (c *Context) Logger() Logger { return c.logger }

// SetLogger resets the logger to logger.
func (c *Context) SetLogger(logger Logger) { c.logger = logger }

// IsAjax reports whether the request is an AJAX one, that's,
// the header X-Requested-With is "xmlhttprequest".
func (c *Context) IsAjax() bool { return c.req.Ajax }

// IsResponded reports whether the response has been written.
func (c *Context) IsResponded() bool { return c.res.Wrote }

// StatusCode returns the status code of the response, which is only
// meaningful after the response has been written.
func (c *Context) StatusCode() int { return c.res.Status }

// NoContent writes the response with the status code and no body.
func (c *Context) NoContent(code int) error {
	c.res.WriteHeader(code)
	return nil
}

// Blob writes the response with the status code, the Content-Type ct
// and the body data.
func (c *Context) Blob(code int, ct string, data []byte) (err error) {
	c.res.Header().Set(HeaderContentType, ct)
	c.res.WriteHeader(code)
	_, err = c.res.Write(data)
	return
}

// Text writes a plain text response with the status code.
func (c *Context) Text(code int, format string, args ...interface{}) error {
	if len(args) > 0 {
		format = fmt.Sprintf(format, args...)
	}
	return c.Blob(code, MIMETextPlainCharsetUTF8, []byte(format))
}

// JSON writes a JSON response with the status code.
func (c *Context) JSON(code int, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Blob(code, MIMEApplicationJSONCharsetUTF8, data)
}
