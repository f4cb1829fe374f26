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

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/xgfone/dispatch"
)

func TestTokenAuth(t *testing.T) {
	d := dispatch.New()
	d.Register("/test", "/test", "GET", false,
		TokenAuth(func(token string) (bool, error) { return token == "token123", nil }),
		func(c *dispatch.Context, next dispatch.Next) {
			c.Text(http.StatusOK, "ok")
			next(nil)
		})

	send := func(token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		if token != "" {
			req.Header.Set(dispatch.HeaderAuthorization, "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		d.ServeHTTP(rec, req)
		return rec
	}

	if rec := send("token123"); rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("expected 200 'ok', but got %d '%s'", rec.Code, rec.Body.String())
	}
	if rec := send(""); rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, but got %d", rec.Code)
	}
	if rec := send("wrong"); rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, but got %d", rec.Code)
	}
}
