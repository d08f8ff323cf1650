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
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/creasty/defaults"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ducflair/duc-sub004/libraries/utils/filesys"
)

const (
	LogLevelKey         = "log.level"
	ThumbnailMaxSizeKey = "thumbnail.max_size"
	PackCompressKey     = "pack.compress"
	ExportIndentKey     = "export.indent"
)

const (
	ConfigDirName      = ".duc"
	ConfigFileName     = "config.yaml"
	TomlConfigFileName = "config.toml"
)

type LogConfig struct {
	Level string `yaml:"level" toml:"level" default:"info"`
}

type ThumbnailConfig struct {
	// MaxSize bounds the longest edge of generated thumbnails, in pixels.
	MaxSize int `yaml:"max_size" toml:"max_size" default:"256"`
}

type PackConfig struct {
	// Compress selects the snappy container when saving documents.
	Compress bool `yaml:"compress" toml:"compress" default:"false"`
}

type ExportConfig struct {
	// Indent is the number of spaces used to indent JSON exports. Zero
	// exports compact JSON.
	Indent int `yaml:"indent" toml:"indent" default:"2"`
}

// CLIConfig is the configuration of the duc command line tool, read from
// ~/.duc/config.yaml or ~/.duc/config.toml.
type CLIConfig struct {
	Log       LogConfig       `yaml:"log" toml:"log"`
	Thumbnail ThumbnailConfig `yaml:"thumbnail" toml:"thumbnail"`
	Pack      PackConfig      `yaml:"pack" toml:"pack"`
	Export    ExportConfig    `yaml:"export" toml:"export"`
}

// DefaultCLIConfig returns a CLIConfig with every default applied.
func DefaultCLIConfig() *CLIConfig {
	cfg := &CLIConfig{}
	if err := defaults.Set(cfg); err != nil {
		panic(err)
	}
	return cfg
}

// FindConfigFile returns the config file under |homeDir|, preferring yaml
// over toml, or "" if neither exists.
func FindConfigFile(fs filesys.ReadableFS, homeDir string) string {
	for _, name := range []string{ConfigFileName, TomlConfigFileName} {
		path := filepath.Join(homeDir, ConfigDirName, name)
		if exists, isDir := fs.Exists(path); exists && !isDir {
			return path
		}
	}
	return ""
}

// LoadCLIConfig reads the config file at |path| on top of the defaults. An
// empty |path| or a missing file yields the defaults. The format is chosen by
// the file extension.
func LoadCLIConfig(fs filesys.ReadableFS, path string) (*CLIConfig, error) {
	cfg := DefaultCLIConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := fs.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	} else if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to parse toml config %s", path)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to parse yaml config %s", path)
		}
	default:
		return nil, errors.Errorf("unsupported config file format: %s", path)
	}

	return cfg, nil
}

// ToMap flattens the config into dotted keys.
func (c *CLIConfig) ToMap() map[string]string {
	return map[string]string{
		LogLevelKey:         c.Log.Level,
		ThumbnailMaxSizeKey: strconv.Itoa(c.Thumbnail.MaxSize),
		PackCompressKey:     strconv.FormatBool(c.Pack.Compress),
		ExportIndentKey:     strconv.Itoa(c.Export.Indent),
	}
}

// Apply overwrites the fields of |c| named by the keys present in |cfg|.
// Unknown keys are an error.
func (c *CLIConfig) Apply(cfg ReadableConfig) error {
	var err error
	cfg.Iter(func(k, v string) (stop bool) {
		switch k {
		case LogLevelKey:
			c.Log.Level = v
		case ThumbnailMaxSizeKey:
			c.Thumbnail.MaxSize, err = strconv.Atoi(v)
		case PackCompressKey:
			c.Pack.Compress, err = strconv.ParseBool(v)
		case ExportIndentKey:
			c.Export.Indent, err = strconv.Atoi(v)
		default:
			err = errors.Errorf("unknown config key: %s", k)
		}
		if err != nil {
			err = errors.Wrapf(err, "invalid value for %s", k)
		}
		return err != nil
	})
	return err
}

// Save writes |c| to |path| as toml when the path ends in .toml and as yaml
// otherwise, creating parent directories as needed.
func (c *CLIConfig) Save(fs filesys.WritableFS, path string) error {
	var data []byte
	if strings.ToLower(filepath.Ext(path)) == ".toml" {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return errors.Wrap(err, "failed to encode toml config")
		}
		data = buf.Bytes()
	} else {
		var err error
		if data, err = yaml.Marshal(c); err != nil {
			return errors.Wrap(err, "failed to encode yaml config")
		}
	}

	if err := fs.MkDirs(filepath.Dir(path)); err != nil {
		return errors.Wrapf(err, "failed to create %s", filepath.Dir(path))
	}
	return fs.WriteFile(path, data, 0644)
}
