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
	"time"

	"github.com/xgfone/dispatch"
)

// Logger returns a middleware to log the request.
//
// The chain runs synchronously, so the line is emitted after the rest
// of the chain has finished and the status code is final.
func Logger() Middleware {
	return func(c *dispatch.Context, next dispatch.Next) {
		start := time.Now()
		next(nil)
		cost := time.Since(start).String()

		req := c.Request()
		c.Logger().Infof("addr=%s, method=%s, path=%s, code=%d, starttime=%d, cost=%s",
			req.RemoteAddr, req.Method, req.Path, c.StatusCode(), start.Unix(), cost)
	}
}
