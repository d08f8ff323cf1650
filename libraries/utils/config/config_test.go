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


package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducflair/duc-sub004/libraries/utils/filesys"
)

func TestMapConfig(t *testing.T) {
	mc := NewMapConfig(map[string]string{"a": "1", "b": "true"})
	require.Equal(t, 2, mc.Size())

	v, err := mc.GetString("a")
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	_, err = mc.GetString("missing")
	assert.Equal(t, ErrConfigParamNotFound, err)
	assert.Equal(t, "dflt", GetStringOrDefault(mc, "missing", "dflt"))
	assert.Equal(t, "dflt", GetStringOrDefault(nil, "a", "dflt"))

	n, err := GetInt(mc, "a")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	b, err := GetBool(mc, "b")
	require.NoError(t, err)
	assert.True(t, b)

	require.NoError(t, mc.SetStrings(map[string]string{"c": "x"}))
	require.NoError(t, mc.Unset([]string{"a"}))

	var keys []string
	mc.Iter(func(k, v string) bool {
		keys = append(keys, k)
		return false
	})
	assert.Equal(t, []string{"b", "c"}, keys)

	keys = nil
	mc.Iter(func(k, v string) bool {
		keys = append(keys, k)
		return true
	})
	assert.Equal(t, []string{"b"}, keys)
}

func TestDefaultCLIConfig(t *testing.T) {
	cfg := DefaultCLIConfig()
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 256, cfg.Thumbnail.MaxSize)
	assert.False(t, cfg.Pack.Compress)
	assert.Equal(t, 2, cfg.Export.Indent)
}

func TestLoadCLIConfig(t *testing.T) {
	yamlCfg := []byte("log:\n  level: debug\npack:\n  compress: true\n")
	tomlCfg := []byte("[thumbnail]\nmax_size = 64\n\n[export]\nindent = 0\n")
	fs := filesys.NewInMemFS(nil, map[string][]byte{
		"/home/u/.duc/config.yaml": yamlCfg,
		"/home/t/.duc/config.toml": tomlCfg,
		"/bad/config.yaml":         []byte("log: [unclosed"),
		"/bad/config.ini":          []byte("x=1"),
	}, "/")

	t.Run("yaml", func(t *testing.T) {
		path := FindConfigFile(fs, "/home/u")
		require.Equal(t, "/home/u/.duc/config.yaml", path)
		cfg, err := LoadCLIConfig(fs, path)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.True(t, cfg.Pack.Compress)
		// untouched fields keep their defaults
		assert.Equal(t, 256, cfg.Thumbnail.MaxSize)
		assert.Equal(t, 2, cfg.Export.Indent)
	})

	t.Run("toml", func(t *testing.T) {
		path := FindConfigFile(fs, "/home/t")
		require.Equal(t, "/home/t/.duc/config.toml", path)
		cfg, err := LoadCLIConfig(fs, path)
		require.NoError(t, err)
		assert.Equal(t, 64, cfg.Thumbnail.MaxSize)
		assert.Equal(t, 0, cfg.Export.Indent)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("missing", func(t *testing.T) {
		assert.Equal(t, "", FindConfigFile(fs, "/home/nobody"))
		cfg, err := LoadCLIConfig(fs, "")
		require.NoError(t, err)
		assert.Equal(t, DefaultCLIConfig(), cfg)
		cfg, err = LoadCLIConfig(fs, "/home/nobody/.duc/config.yaml")
		require.NoError(t, err)
		assert.Equal(t, DefaultCLIConfig(), cfg)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := LoadCLIConfig(fs, "/bad/config.yaml")
		assert.Error(t, err)
		_, err = LoadCLIConfig(fs, "/bad/config.ini")
		assert.Error(t, err)
	})
}

func TestCLIConfigApplyAndSave(t *testing.T) {
	cfg := DefaultCLIConfig()
	require.NoError(t, cfg.Apply(NewMapConfig(map[string]string{
		LogLevelKey:         "warn",
		ThumbnailMaxSizeKey: "128",
		PackCompressKey:     "true",
		ExportIndentKey:     "4",
	})))
	assert.Equal(t, map[string]string{
		LogLevelKey:         "warn",
		ThumbnailMaxSizeKey: "128",
		PackCompressKey:     "true",
		ExportIndentKey:     "4",
	}, cfg.ToMap())

	assert.Error(t, cfg.Apply(NewMapConfig(map[string]string{"no.such": "key"})))
	assert.Error(t, cfg.Apply(NewMapConfig(map[string]string{ThumbnailMaxSizeKey: "huge"})))

	fs := filesys.EmptyInMemFS("/")
	cfg = DefaultCLIConfig()
	cfg.Log.Level = "error"
	require.NoError(t, cfg.Save(fs, "/home/u/.duc/config.yaml"))

	loaded, err := LoadCLIConfig(fs, "/home/u/.duc/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestCLIConfigSaveToml(t *testing.T) {
	fs := filesys.EmptyInMemFS("/")
	cfg := DefaultCLIConfig()
	cfg.Thumbnail.MaxSize = 64
	cfg.Pack.Compress = true
	require.NoError(t, cfg.Save(fs, "/home/u/.duc/config.toml"))

	data, err := fs.ReadFile("/home/u/.duc/config.toml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "[thumbnail]")

	loaded, err := LoadCLIConfig(fs, "/home/u/.duc/config.toml")
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
