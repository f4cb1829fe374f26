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
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/xgfone/go-tools/v6/pools"
)

// DefaultMIMETypes maps the lower-cased file extension to the Content-Type
// used by the static fallback.
var DefaultMIMETypes = map[string]string{
	".html": MIMETextHTMLCharsetUTF8,
	".htm":  MIMETextHTMLCharsetUTF8,
	".txt":  MIMETextPlainCharsetUTF8,
	".css":  MIMETextCSS,
	".js":   MIMEApplicationJavaScript,
	".json": MIMEApplicationJSON,
	".xml":  MIMETextXML,
	".png":  MIMEImagePNG,
	".jpg":  MIMEImageJPEG,
	".jpeg": MIMEImageJPEG,
	".gif":  MIMEImageGIF,
	".svg":  MIMEImageSVG,
	".ico":  MIMEImageICO,
}

// StaticFiles serves the files under Root as the dispatch fallback.
type StaticFiles struct {
	Root      string
	MIMETypes map[string]string

	bufpool pools.BufferPool
}

// NewStaticFiles returns a new StaticFiles rooted at root.
//
// If mimeTypes is missing, it uses DefaultMIMETypes. For an extension
// out of the table, the Content-Type falls back to MIMEOctetStream.
func NewStaticFiles(root string, mimeTypes ...map[string]string) *StaticFiles {
	types := DefaultMIMETypes
	if len(mimeTypes) > 0 && mimeTypes[0] != nil {
		types = mimeTypes[0]
	}

	return &StaticFiles{
		Root:      root,
		MIMETypes: types,
		bufpool:   pools.NewBufferPool(8192),
	}
}

// Serve responds with the file resolved under Root by the request path.
//
// It returns a 404 error if the path has no file extension, whatever the
// filesystem holds, or if the resolved file does not exist or cannot be
// read. Otherwise it responds 200 with the Content-Type from the extension
// table and the file bytes.
//
// Notice: beyond existence and readability, it performs no containment
// check of the resolved path against Root.
func (s *StaticFiles) Serve(c *Context) error {
	urlpath := path.Clean(c.Request().Path)

	ext := strings.ToLower(path.Ext(urlpath))
	if ext == "" {
		return ErrNotFound
	}

	file, err := os.Open(filepath.Join(s.Root, filepath.FromSlash(urlpath)))
	if err != nil {
		return ErrNotFound.New(err)
	}
	defer file.Close()

	if fi, err := file.Stat(); err != nil || fi.IsDir() {
		return ErrNotFound
	}

	buf := s.bufpool.Get()
	defer s.bufpool.Put(buf)

	if _, err = buf.ReadFrom(file); err != nil {
		return ErrNotFound.New(err)
	}

	ct, ok := s.MIMETypes[ext]
	if !ok {
		ct = MIMEOctetStream
	}
	return c.Blob(http.StatusOK, ct, buf.Bytes())
}
