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
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ducflair/duc-sub004/libraries/duccore/docio"
	"github.com/ducflair/duc-sub004/libraries/utils/config"
	"github.com/ducflair/duc-sub004/libraries/utils/filesys"
)

// Env is the state shared by every command of a single invocation.
type Env struct {
	FS     filesys.Filesys
	Config *config.CLIConfig
	// ConfigPath is where the config was read from, or where it will be
	// written if no config file exists yet.
	ConfigPath string
	Logger     *logrus.Logger

	store *docio.Store
}

func NewEnv(fs filesys.Filesys, cfg *config.CLIConfig, cfgPath string, logger *logrus.Logger) *Env {
	if cfg == nil {
		cfg = config.DefaultCLIConfig()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Env{
		FS:         fs,
		Config:     cfg,
		ConfigPath: cfgPath,
		Logger:     logger,
		store:      docio.NewStore(fs, logger),
	}
}

// LoadEnv reads the config file at |cfgPath|, or the one found under
// |homeDir| when |cfgPath| is empty, and builds a logger writing to CliErr at
// the configured level. |verbose| forces debug logging.
func LoadEnv(fs filesys.Filesys, homeDir, cfgPath string, verbose bool) (*Env, error) {
	if cfgPath == "" {
		cfgPath = config.FindConfigFile(fs, homeDir)
	}
	cfg, err := config.LoadCLIConfig(fs, cfgPath)
	if err != nil {
		return nil, err
	}
	if cfgPath == "" {
		cfgPath = filepath.Join(homeDir, config.ConfigDirName, config.ConfigFileName)
	}

	logger := logrus.New()
	logger.SetOutput(CliErr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s in %s", config.LogLevelKey, cfgPath)
	}
	if verbose {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	return NewEnv(fs, cfg, cfgPath, logger), nil
}

// Store returns the document store over the environment's filesystem.
func (dEnv *Env) Store() *docio.Store {
	return dEnv.store
}
