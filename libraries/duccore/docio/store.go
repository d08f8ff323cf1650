// Copyright 2025 Ducflair
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


package docio

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ducflair/duc-sub004/libraries/duccore/duc"
	"github.com/ducflair/duc-sub004/libraries/duccore/encoding"
	"github.com/ducflair/duc-sub004/libraries/utils/filesys"
)

const filePerms os.FileMode = 0644

// Store loads and saves duc documents on a filesystem.
type Store struct {
	fs     filesys.Filesys
	logger logrus.FieldLogger
}

// NewStore returns a Store over |fs|. A nil |logger| uses the logrus
// standard logger.
func NewStore(fs filesys.Filesys, logger logrus.FieldLogger) *Store {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Store{fs: fs, logger: logger}
}

// File is a document buffer read from disk together with its container.
type File struct {
	Path   string
	Format Format
	// Buf is the unwrapped document buffer.
	Buf []byte
	// StoredBytes is the size of the file as stored.
	StoredBytes int
}

// Fingerprint returns the content fingerprint of the document buffer.
func (f *File) Fingerprint() string {
	return Fingerprint(f.Buf)
}

// ReadFile reads the file at |path| and unwraps its container. The buffer is
// not parsed.
func (s *Store) ReadFile(path string) (*File, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	buf, format, err := Unwrap(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	f := &File{Path: path, Format: format, Buf: buf, StoredBytes: len(data)}
	s.logger.WithFields(logrus.Fields{
		"path":        path,
		"format":      format.String(),
		"bytes":       len(buf),
		"fingerprint": f.Fingerprint(),
	}).Debug("read document file")
	return f, nil
}

// Load reads and parses the document at |path|. Codec failures are wrapped;
// use encoding.IsKind to match them against the encoding error kinds.
func (s *Store) Load(path string) (*duc.Document, error) {
	f, err := s.ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc, err := encoding.ParseDocument(f.Buf)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return doc, nil
}

// WriteFile wraps |buf| in |format| and writes it to |path|, creating parent
// directories as needed.
func (s *Store) WriteFile(path string, buf []byte, format Format) error {
	data, err := Wrap(buf, format)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := s.fs.MkDirs(dir); err != nil {
			return errors.Wrapf(err, "failed to create %s", dir)
		}
	}

	if err := s.fs.WriteFile(path, data, filePerms); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}

	s.logger.WithFields(logrus.Fields{
		"path":        path,
		"format":      format.String(),
		"bytes":       len(buf),
		"stored":      len(data),
		"fingerprint": Fingerprint(buf),
	}).Debug("wrote document file")
	return nil
}

// Save serializes |doc| and writes it to |path| in the format implied by the
// path's extension.
func (s *Store) Save(path string, doc *duc.Document) error {
	return s.SaveAs(path, doc, FormatForPath(path))
}

// SaveAs serializes |doc| and writes it to |path| in |format|.
func (s *Store) SaveAs(path string, doc *duc.Document, format Format) error {
	buf, err := encoding.SerializeDocument(doc)
	if err != nil {
		return errors.Wrapf(err, "failed to serialize document for %s", path)
	}
	return s.WriteFile(path, buf, format)
}

// Update loads the document at |path|, applies |fn| and saves the result in
// the container it was read from.
func (s *Store) Update(path string, fn func(doc *duc.Document) error) error {
	f, err := s.ReadFile(path)
	if err != nil {
		return err
	}

	doc, err := encoding.ParseDocument(f.Buf)
	if err != nil {
		return errors.Wrapf(err, "failed to parse %s", path)
	}

	if err := fn(doc); err != nil {
		return err
	}

	return s.SaveAs(path, doc, f.Format)
}
