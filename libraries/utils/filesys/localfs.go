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
)

// LocalFS is the machines local filesystem
var LocalFS Filesys = &localFS{}

type localFS struct{}

// Exists will tell you if a file or directory with a given path already exists, and if it does is it a directory
func (fs *localFS) Exists(path string) (exists bool, isDir bool) {
	stat, err := os.Stat(path)
	if err != nil {
		return false, false
	}
	return true, stat.IsDir()
}

func (fs *localFS) ReadFile(fp string) ([]byte, error) {
	if exists, isDir := fs.Exists(fp); exists && isDir {
		return nil, ErrIsDir
	}
	return os.ReadFile(fp)
}

// WriteFile writes |data| to a temporary file next to |fp| and renames it over |fp|.
func (fs *localFS) WriteFile(fp string, data []byte, perm os.FileMode) (err error) {
	if exists, isDir := fs.Exists(fp); exists && isDir {
		return ErrIsDir
	}

	dir, base := filepath.Split(fp)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), perm); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), fp)
}

// MkDirs creates a folder and all the parent folders that are necessary to create it.
func (fs *localFS) MkDirs(path string) error {
	if exists, isDir := fs.Exists(path); exists {
		if !isDir {
			return ErrIsFile
		}
		return nil
	}
	return os.MkdirAll(path, os.ModePerm)
}
