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
	"github.com/google/uuid"
	"github.com/xgfone/dispatch"
)

// RequestID returns a X-Request-ID middleware.
//
// If the request header does not contain X-Request-ID, it will set a new
// one, and the response echoes it back in either case.
//
// generateRequestID is uuid.NewString by default.
func RequestID(generateRequestID ...func() string) Middleware {
	generate := uuid.NewString
	if len(generateRequestID) > 0 && generateRequestID[0] != nil {
		generate = generateRequestID[0]
	}

	return func(c *dispatch.Context, next dispatch.Next) {
		req := c.Request()
		xid := req.Header.Get(dispatch.HeaderXRequestID)
		if xid == "" {
			xid = generate()
			req.Header.Set(dispatch.HeaderXRequestID, xid)
		}
		c.Response().Header().Set(dispatch.HeaderXRequestID, xid)

		next(nil)
	}
}
