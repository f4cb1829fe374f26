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

// CharsetUTF8 is the UTF-8 charset suffix of the Content-Type.
const CharsetUTF8 = "charset=UTF-8"

// MIME types
const (
	MIMETextXML               = "text/xml"
	MIMETextCSS               = "text/css"
	MIMETextHTML              = "text/html"
	MIMETextPlain             = "text/plain"
	MIMEApplicationJSON       = "application/json"
	MIMEApplicationJavaScript = "application/javascript"
	MIMEApplicationForm       = "application/x-www-form-urlencoded"
	MIMEOctetStream           = "application/octet-stream"
	MIMEImagePNG              = "image/png"
	MIMEImageJPEG             = "image/jpeg"
	MIMEImageGIF              = "image/gif"
	MIMEImageSVG              = "image/svg+xml"
	MIMEImageICO              = "image/x-icon"

	MIMETextHTMLCharsetUTF8        = MIMETextHTML + "; " + CharsetUTF8
	MIMETextPlainCharsetUTF8       = MIMETextPlain + "; " + CharsetUTF8
	MIMEApplicationJSONCharsetUTF8 = MIMEApplicationJSON + "; " + CharsetUTF8
)

// Headers
const (
	HeaderAuthorization  = "Authorization"
	HeaderContentLength  = "Content-Length"
	HeaderContentType    = "Content-Type"
	HeaderXRequestID     = "X-Request-ID"
	HeaderXRequestedWith = "X-Requested-With"
)
