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

// Package middleware supplies some common middlewares in the continuation
// style of the dispatch package.
package middleware

import "github.com/xgfone/dispatch"

// Middleware is the alias of dispatch.Middleware.
//
// We add it in order to show the middlewares in together by the godoc.
type Middleware = dispatch.Middleware
