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


package cli

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducflair/duc-sub004/libraries/utils/filesys"
)

func TestLoadEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		fs := filesys.EmptyInMemFS("/work")
		dEnv, err := LoadEnv(fs, "/home/u", "", false)
		require.NoError(t, err)
		assert.Equal(t, "/home/u/.duc/config.yaml", dEnv.ConfigPath)
		assert.Equal(t, logrus.InfoLevel, dEnv.Logger.GetLevel())
		assert.Equal(t, 256, dEnv.Config.Thumbnail.MaxSize)
		assert.NotNil(t, dEnv.Store())
	})

	t.Run("home config", func(t *testing.T) {
		fs := filesys.NewInMemFS(nil, map[string][]byte{
			"/home/u/.duc/config.toml": []byte("[log]\nlevel = \"warn\"\n[export]\nindent = 0\n"),
		}, "/work")
		dEnv, err := LoadEnv(fs, "/home/u", "", false)
		require.NoError(t, err)
		assert.Equal(t, "/home/u/.duc/config.toml", dEnv.ConfigPath)
		assert.Equal(t, logrus.WarnLevel, dEnv.Logger.GetLevel())
		assert.Equal(t, 0, dEnv.Config.Export.Indent)
	})

	t.Run("explicit config and verbose", func(t *testing.T) {
		fs := filesys.NewInMemFS(nil, map[string][]byte{
			"/etc/duc.yaml": []byte("log:\n  level: error\n"),
		}, "/work")
		dEnv, err := LoadEnv(fs, "/home/u", "/etc/duc.yaml", true)
		require.NoError(t, err)
		assert.Equal(t, "/etc/duc.yaml", dEnv.ConfigPath)
		assert.Equal(t, logrus.DebugLevel, dEnv.Logger.GetLevel())
	})

	t.Run("bad level", func(t *testing.T) {
		fs := filesys.NewInMemFS(nil, map[string][]byte{
			"/home/u/.duc/config.yaml": []byte("log:\n  level: loud\n"),
		}, "/work")
		_, err := LoadEnv(fs, "/home/u", "", false)
		assert.Error(t, err)
	})
}
