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
	"errors"
	"os"
)

var ErrIsDir = errors.New("operation not valid on a directory")
var ErrIsFile = errors.New("operation not valid on a file")

// ReadableFS provides read access to files.
type ReadableFS interface {
	// ReadFile reads the entire contents of a file. A missing file is an
	// error that satisfies os.IsNotExist.
	ReadFile(fp string) ([]byte, error)

	// Exists will tell you if a file or directory with a given path already exists, and if it does is it a directory
	Exists(path string) (exists bool, isDir bool)
}

// WritableFS provides write access to files.
type WritableFS interface {
	// WriteFile writes the entire data buffer to a given file, replacing it
	// if it exists. Readers never observe a partially written file.
	WriteFile(fp string, data []byte, perm os.FileMode) error

	// MkDirs creates a folder and all the parent folders that are necessary to create it.
	MkDirs(path string) error
}

// Filesys is the file access used by document stores and the CLI config.
type Filesys interface {
	ReadableFS
	WritableFS
}
