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
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testFilename       = "testfile.duc"
	testSubdirFilename = "anothertest.duc"
)

func randomData(size int) []byte {
	data := make([]byte, size)
	rand.New(rand.NewSource(1)).Read(data)
	return data
}

func TestFilesystems(t *testing.T) {
	filesystems := map[string]struct {
		fs  Filesys
		dir string
	}{
		"inmem": {EmptyInMemFS("/"), "/filesys_test"},
		"local": {LocalFS, filepath.Join(t.TempDir(), "filesys_test")},
	}

	for fsName, tc := range filesystems {
		fs, dir := tc.fs, tc.dir
		subdir := filepath.Join(dir, "subdir")
		subdirFile := filepath.Join(subdir, testSubdirFilename)
		fp := filepath.Join(dir, testFilename)

		t.Run(fsName, func(t *testing.T) {
			exists, _ := fs.Exists(dir)
			require.False(t, exists)

			require.NoError(t, fs.MkDirs(subdir))
			exists, isDir := fs.Exists(dir)
			require.True(t, exists)
			require.True(t, isDir)
			exists, isDir = fs.Exists(subdir)
			require.True(t, exists)
			require.True(t, isDir)
			require.NoError(t, fs.MkDirs(subdir))

			_, err := fs.ReadFile(fp)
			require.Error(t, err)
			assert.True(t, os.IsNotExist(err), "unexpected error: %v", err)

			_, err = fs.ReadFile(dir)
			assert.Equal(t, ErrIsDir, err)
			assert.Equal(t, ErrIsDir, fs.WriteFile(subdir, []byte("x"), 0644))

			data := randomData(64 * 1024)
			require.NoError(t, fs.WriteFile(fp, data, 0644))
			dataRead, err := fs.ReadFile(fp)
			require.NoError(t, err)
			require.Equal(t, data, dataRead)
			exists, isDir = fs.Exists(fp)
			require.True(t, exists)
			require.False(t, isDir)

			require.NoError(t, fs.WriteFile(fp, data[:10], 0644))
			dataRead, err = fs.ReadFile(fp)
			require.NoError(t, err)
			require.Equal(t, data[:10], dataRead)

			assert.Equal(t, ErrIsFile, fs.MkDirs(fp))

			require.NoError(t, fs.WriteFile(subdirFile, []byte("nested"), 0644))
			dataRead, err = fs.ReadFile(subdirFile)
			require.NoError(t, err)
			assert.Equal(t, "nested", string(dataRead))
		})
	}
}

func TestLocalWriteFileLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, testFilename)
	require.NoError(t, LocalFS.WriteFile(fp, []byte("first"), 0644))
	require.NoError(t, LocalFS.WriteFile(fp, []byte("second"), 0600))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, testFilename, entries[0].Name())

	info, err := os.Stat(fp)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestInMemRelativePaths(t *testing.T) {
	fs := NewInMemFS([]string{"/home/user"}, map[string][]byte{"notes.duc": {1, 2, 3}}, "/home/user")

	data, err := fs.ReadFile("/home/user/notes.duc")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, data)

	exists, isDir := fs.Exists("../user")
	assert.True(t, exists)
	assert.True(t, isDir)

	exists, isDir = fs.Exists("/home")
	assert.True(t, exists)
	assert.True(t, isDir)
}

func TestInMemCopiesData(t *testing.T) {
	fs := EmptyInMemFS("/work")
	data := []byte("abc")
	require.NoError(t, fs.WriteFile("a.duc", data, 0644))
	data[0] = 'x'

	read, err := fs.ReadFile("a.duc")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(read))

	read[1] = 'y'
	again, err := fs.ReadFile("/work/a.duc")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}
