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

// Option is used to configure the Dispatcher.
type Option func(*Dispatcher)

// SetLogger sets the logger, which is `NewLoggerFromWriter(os.Stderr, "")`
// by default.
func SetLogger(logger Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.Logger = logger
		}
	}
}

// SetStaticRoot sets the root directory of the static fallback,
// which is "." by default.
func SetStaticRoot(root string) Option {
	return func(d *Dispatcher) {
		if root != "" {
			d.Static = NewStaticFiles(root)
		}
	}
}

// SetStaticFiles sets the static fallback server.
func SetStaticFiles(static *StaticFiles) Option {
	return func(d *Dispatcher) {
		if static != nil {
			d.Static = static
		}
	}
}

// SetErrorHandler sets the error handler of the dispatcher, which responds
// with the error text, as JSON for the ajax requests, by default.
func SetErrorHandler(handle ErrorHandler) Option {
	return func(d *Dispatcher) {
		if handle != nil {
			d.HandleError = handle
		}
	}
}
