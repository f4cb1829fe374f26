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
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseWriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	res := NewResponse(rec)

	res.WriteHeader(http.StatusCreated)
	res.WriteHeader(http.StatusInternalServerError)

	if res.Status != http.StatusCreated {
		t.Errorf("expected status 201, but got %d", res.Status)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected code 201, but got %d", rec.Code)
	}
	if !res.Wrote {
		t.Error("expected the response to have been written")
	}
}

func TestResponseWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	res := NewResponse(rec)

	if res.Wrote {
		t.Error("expected no written response")
	}

	res.Write([]byte("abc"))
	res.WriteString("de")

	if res.Status != http.StatusOK {
		t.Errorf("expected status 200, but got %d", res.Status)
	}
	if res.Size != 5 {
		t.Errorf("expected size 5, but got %d", res.Size)
	}
	if body := rec.Body.String(); body != "abcde" {
		t.Errorf("expected body 'abcde', but got '%s'", body)
	}
}
