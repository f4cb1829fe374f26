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
	"net/http"
	"net/url"
	"strings"
)

// Request is the snapshot of one inbound call, which is created once
// per call by the dispatcher and discarded after the response is written.
//
// Except for Header, the fields must not be modified after creation.
type Request struct {
	Path   string
	Method string
	Query  url.Values
	Body   map[string]interface{}

	// Ajax is true if the header X-Requested-With is "xmlhttprequest",
	// which is compared case-insensitively.
	Ajax bool

	Header     http.Header
	RemoteAddr string
}

// NewRequest returns a new Request from the inbound http request r.
//
// The path contains no query component, and the body is decoded
// by the Content-Type, either "application/json" or
// "application/x-www-form-urlencoded". For the other types,
// Body is nil and the raw body is left unread.
func NewRequest(r *http.Request) *Request {
	return &Request{
		Path:   r.URL.Path,
		Method: strings.ToUpper(r.Method),
		Query:  r.URL.Query(),
		Body:   decodeBody(r),
		Ajax:   strings.EqualFold(r.Header.Get(HeaderXRequestedWith), "xmlhttprequest"),

		Header:     r.Header,
		RemoteAddr: r.RemoteAddr,
	}
}

func decodeBody(r *http.Request) map[string]interface{} {
	if r.Body == nil {
		return nil
	}

	ct := r.Header.Get(HeaderContentType)
	if index := strings.IndexByte(ct, ';'); index > -1 {
		ct = strings.TrimSpace(ct[:index])
	}

	switch ct {
	case MIMEApplicationJSON:
		body := make(map[string]interface{})
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return nil
		}
		return body
	case MIMEApplicationForm:
		if err := r.ParseForm(); err != nil {
			return nil
		}
		body := make(map[string]interface{}, len(r.PostForm))
		for key, values := range r.PostForm {
			if len(values) > 0 {
				body[key] = values[0]
			}
		}
		return body
	}

	return nil
}
