// Copyright 2019 Dolthub, Inc.
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

package filesys

import (
	"os"
	"path/filepath"
	"sync"
)

const inMemRoot = string(filepath.Separator)

// InMemFS is an in memory Filesys used by tests. Paths are cleaned and
// resolved against the working directory given at construction.
type InMemFS struct {
	mu    sync.RWMutex
	cwd   string
	files map[string][]byte
	dirs  map[string]struct{}
}

var _ Filesys = (*InMemFS)(nil)

// EmptyInMemFS creates an empty InMemFS instance
func EmptyInMemFS(workingDir string) *InMemFS {
	return NewInMemFS(nil, nil, workingDir)
}

// NewInMemFS creates an InMemFS holding |dirs| and |files|. It panics if
// |cwd| is relative or if a file path collides with a directory.
func NewInMemFS(dirs []string, files map[string][]byte, cwd string) *InMemFS {
	if cwd == "" {
		cwd = inMemRoot
	}
	if !filepath.IsAbs(cwd) {
		panic("cwd for InMemFS must be an absolute path")
	}

	fs := &InMemFS{
		cwd:   filepath.Clean(cwd),
		files: make(map[string][]byte, len(files)),
		dirs:  map[string]struct{}{inMemRoot: {}},
	}
	for _, dir := range dirs {
		if err := fs.mkDirs(fs.abs(dir)); err != nil {
			panic("initializing InMemFS with invalid data: " + err.Error())
		}
	}
	for path, data := range files {
		if err := fs.writeFile(fs.abs(path), data); err != nil {
			panic("initializing InMemFS with invalid data: " + err.Error())
		}
	}
	return fs
}

func (fs *InMemFS) abs(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(fs.cwd, path)
}

// Exists will tell you if a file or directory with a given path already exists, and if it does is it a directory
func (fs *InMemFS) Exists(path string) (exists bool, isDir bool) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	path = fs.abs(path)
	if _, ok := fs.dirs[path]; ok {
		return true, true
	}
	_, ok := fs.files[path]
	return ok, false
}

// ReadFile returns a copy of the file at |fp|.
func (fs *InMemFS) ReadFile(fp string) ([]byte, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	fp = fs.abs(fp)
	if _, ok := fs.dirs[fp]; ok {
		return nil, ErrIsDir
	}
	data, ok := fs.files[fp]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: fp, Err: os.ErrNotExist}
	}
	return append([]byte{}, data...), nil
}

// WriteFile stores a copy of |data| at |fp|, creating parent directories.
func (fs *InMemFS) WriteFile(fp string, data []byte, perm os.FileMode) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	return fs.writeFile(fs.abs(fp), data)
}

func (fs *InMemFS) writeFile(fp string, data []byte) error {
	if _, ok := fs.dirs[fp]; ok {
		return ErrIsDir
	}
	if err := fs.mkDirs(filepath.Dir(fp)); err != nil {
		return err
	}
	fs.files[fp] = append([]byte{}, data...)
	return nil
}

// MkDirs creates a folder and all the parent folders that are necessary to create it.
func (fs *InMemFS) MkDirs(path string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	return fs.mkDirs(fs.abs(path))
}

// mkDirs fails without creating anything if a file sits on |path|.
func (fs *InMemFS) mkDirs(path string) error {
	var missing []string
	for p := path; ; p = filepath.Dir(p) {
		if _, ok := fs.files[p]; ok {
			return ErrIsFile
		}
		if _, ok := fs.dirs[p]; ok {
			break
		}
		missing = append(missing, p)
	}
	for _, p := range missing {
		fs.dirs[p] = struct{}{}
	}
	return nil
}
