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


package config

import (
	"errors"
	"strconv"
)

// ErrConfigParamNotFound is returned when a key is not present in a config.
var ErrConfigParamNotFound = errors.New("param not found")

// ReadableConfig is an interface for reading configuration values
type ReadableConfig interface {
	// GetString retrieves a value for a given key.
	GetString(key string) (value string, err error)

	// Iter will perform a callback for each value in a config until all values have been exhausted or until the
	// callback returns true indicating that it should stop.
	Iter(func(string, string) (stop bool))

	// Size returns the number of properties contained within the config
	Size() int
}

// WritableConfig is an interface for writing configuration values
type WritableConfig interface {
	// SetStrings updates a config with a map of updates.
	SetStrings(updates map[string]string) error

	// Unset removes a configuration parameter from the config
	Unset(params []string) error
}

// ReadWriteConfig is an interface with all the methods of ReadableConfig and WritableConfig
type ReadWriteConfig interface {
	ReadableConfig
	WritableConfig
}

// GetStringOrDefault retrieves a string from the config, returning |defStr| when the key is missing.
func GetStringOrDefault(cfg ReadableConfig, key, defStr string) string {
	if cfg == nil {
		return defStr
	}

	val, err := cfg.GetString(key)
	if err != nil {
		return defStr
	}

	return val
}

// GetInt retrieves a value and parses it as an int.
func GetInt(cfg ReadableConfig, key string) (int, error) {
	val, err := cfg.GetString(key)
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(val)
}

// GetBool retrieves a value and parses it as a bool.
func GetBool(cfg ReadableConfig, key string) (bool, error) {
	val, err := cfg.GetString(key)
	if err != nil {
		return false, err
	}

	return strconv.ParseBool(val)
}
