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
	"strings"

	"github.com/xgfone/dispatch"
)

// TokenValidator is used to validate whether a token is valid.
type TokenValidator func(token string) (ok bool, err error)

// TokenAuth returns a middleware to authenticate the request by the bearer
// token of the header Authorization.
//
// It short-circuits the chain through the error continuation: 401 when the
// token is missing, 403 when it is invalid.
func TokenAuth(validator TokenValidator) Middleware {
	return func(c *dispatch.Context, next dispatch.Next) {
		token := c.Request().Header.Get(dispatch.HeaderAuthorization)
		token = strings.TrimPrefix(token, "Bearer ")
		if token == "" {
			next(dispatch.ErrUnauthorized.Newf("missing token"))
			return
		}

		if ok, err := validator(token); err != nil {
			next(err)
		} else if !ok {
			next(dispatch.ErrForbidden.Newf("invalid token"))
		} else {
			next(nil)
		}
	}
}
