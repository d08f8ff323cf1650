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


package argparser

import (
	"sort"
	"strconv"
	"strings"
)

// ArgParseResults holds the named options and positional args of a successful Parse.
type ArgParseResults struct {
	options map[string]string
	Args    []string
	Parser  *ArgParser
}

// Contains returns whether the option or flag |name| was provided.
func (res *ArgParseResults) Contains(name string) bool {
	_, ok := res.options[name]
	return ok
}

// ContainsAll returns whether every one of |names| was provided.
func (res *ArgParseResults) ContainsAll(names ...string) bool {
	for _, name := range names {
		if !res.Contains(name) {
			return false
		}
	}
	return true
}

// ContainsAny returns whether at least one of |names| was provided.
func (res *ArgParseResults) ContainsAny(names ...string) bool {
	for _, name := range names {
		if res.Contains(name) {
			return true
		}
	}
	return false
}

// ContainsMany returns the provided options among |names|, sorted.
func (res *ArgParseResults) ContainsMany(names ...string) []string {
	var contains []string
	for _, name := range names {
		if res.Contains(name) {
			contains = append(contains, name)
		}
	}
	sort.Strings(contains)
	return contains
}

func (res *ArgParseResults) GetValue(name string) (string, bool) {
	val, ok := res.options[name]
	return val, ok
}

func (res *ArgParseResults) GetValueOrDefault(name, defVal string) string {
	if val, ok := res.options[name]; ok {
		return val
	}
	return defVal
}

func (res *ArgParseResults) MustGetValue(name string) string {
	val, ok := res.options[name]

	if !ok {
		panic("Value not available.")
	}

	return val
}

// GetInt returns the value of |name| parsed as an int. Values are validated
// at parse time when the option was declared with SupportsUint.
func (res *ArgParseResults) GetInt(name string) (int, bool) {
	val, ok := res.options[name]
	if !ok {
		return 0, false
	}

	n, err := strconv.ParseInt(strings.TrimSpace(val), 10, 32)
	if err != nil {
		return 0, false
	}

	return int(n), true
}

func (res *ArgParseResults) GetIntOrDefault(name string, defVal int) int {
	if n, ok := res.GetInt(name); ok {
		return n
	}
	return defVal
}

func (res *ArgParseResults) NArg() int {
	return len(res.Args)
}

func (res *ArgParseResults) Arg(idx int) string {
	return res.Args[idx]
}
