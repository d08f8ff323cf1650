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
	"errors"
	"strconv"
)

type OptionType int

const (
	// OptionalFlag takes no value; its presence is the value.
	OptionalFlag OptionType = iota
	// OptionalValue must be followed by a value when given.
	OptionalValue
)

type ValidationFunc func(string) error

func isUintStr(str string) error {
	if _, err := strconv.ParseUint(str, 10, 32); err != nil {
		return errors.New("error: \"" + str + "\" is not a valid uint.")
	}
	return nil
}

// An Option is a single named command line argument.
type Option struct {
	// Name is given on the command line as --Name. Required.
	Name string
	// Abbrev is given on the command line as -Abbrev. Optional.
	Abbrev string
	// ValDesc names the value in help output, e.g. <file>.
	ValDesc string
	OptType OptionType
	// Desc is the help text.
	Desc string
	// Validator checks the value after parsing.
	Validator ValidationFunc
}
