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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createParserWithOptionalArgs() *ArgParser {
	ap := NewArgParserWithMaxArgs("test", 16)
	ap.SupportsFlag("flag", "f", "flag")
	ap.SupportsString("param", "p", "param", "")
	ap.SupportsUint("size", "s", "px", "")

	return ap
}

func TestArgParser(t *testing.T) {
	tests := []struct {
		ap              *ArgParser
		args            []string
		expectedErr     error
		expectedOptions map[string]string
		expectedArgs    []string
	}{
		{
			NewArgParserWithVariableArgs("test"),
			[]string{},
			nil,
			map[string]string{},
			[]string{},
		},
		{
			NewArgParserWithVariableArgs("test"),
			[]string{"arg1", "arg2"},
			nil,
			map[string]string{},
			[]string{"arg1", "arg2"},
		},
		{
			NewArgParserWithVariableArgs("test"),
			[]string{"--unknown_flag"},
			UnknownArgumentParam{"unknown_flag"},
			nil,
			nil,
		},
		{
			NewArgParserWithVariableArgs("test"),
			[]string{"--help"},
			ErrHelp,
			nil,
			nil,
		},
		{
			NewArgParserWithVariableArgs("test"),
			[]string{"-h"},
			ErrHelp,
			nil,
			nil,
		},
		{
			NewArgParserWithVariableArgs("test"),
			[]string{"help"},
			nil,
			map[string]string{},
			[]string{"help"},
		},
		{
			NewArgParserWithVariableArgs("test").SupportsString("param", "p", "", ""),
			[]string{"--param", "value", "arg1"},
			nil,
			map[string]string{"param": "value"},
			[]string{"arg1"},
		},
		{
			NewArgParserWithVariableArgs("test").SupportsString("param", "p", "", ""),
			[]string{"-pvalue"},
			nil,
			map[string]string{"param": "value"},
			[]string{},
		},
		{
			NewArgParserWithVariableArgs("test").SupportsString("param", "p", "", ""),
			[]string{"--param=value"},
			nil,
			map[string]string{"param": "value"},
			[]string{},
		},
		{
			NewArgParserWithVariableArgs("test").SupportsString("param", "p", "", ""),
			[]string{"--paramvalue"},
			UnknownArgumentParam{"paramvalue"},
			nil,
			nil,
		},
		{
			createParserWithOptionalArgs(),
			[]string{"foo", "bar"},
			nil,
			map[string]string{},
			[]string{"foo", "bar"},
		},
		{
			createParserWithOptionalArgs(),
			[]string{"-s", "64", "-f", "foo", "bar"},
			nil,
			map[string]string{"flag": "", "size": "64"},
			[]string{"foo", "bar"},
		},
		{
			createParserWithOptionalArgs(),
			[]string{"-fp", "value", "foo"},
			nil,
			map[string]string{"flag": "", "param": "value"},
			[]string{"foo"},
		},
		{
			createParserWithOptionalArgs(),
			[]string{"-s", "-1"},
			nil,
			nil,
			nil,
		},
		{
			createParserWithOptionalArgs(),
			[]string{"foo", "--param"},
			nil,
			nil,
			nil,
		},
		{
			createParserWithOptionalArgs(),
			[]string{"-f", "--", "-p", "not a param"},
			nil,
			map[string]string{"flag": ""},
			[]string{"-p", "not a param"},
		},
		{
			createParserWithOptionalArgs(),
			[]string{"-f", "-f"},
			nil,
			nil,
			nil,
		},
	}

	for _, test := range tests {
		apr, err := test.ap.Parse(test.args)
		if test.expectedErr != nil {
			require.Equal(t, test.expectedErr, err)
			continue
		}
		if test.expectedOptions == nil {
			require.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, test.expectedOptions, apr.options)
		assert.Equal(t, test.expectedArgs, apr.Args)
	}
}

func TestTooManyArgs(t *testing.T) {
	ap := NewArgParserWithMaxArgs("inspect", 1)
	_, err := ap.Parse([]string{"a.duc", "b.duc"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inspect has too many positional arguments")

	ap = NewArgParserWithMaxArgs("dump", 0)
	_, err = ap.Parse([]string{"a.duc"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not take positional arguments")
}

func TestResults(t *testing.T) {
	ap := NewArgParserWithVariableArgs("pack").
		SupportsString("out", "o", "file", "").
		SupportsFlag("compress", "c", "").
		SupportsUint("size", "s", "px", "")

	_, err := ap.Parse([]string{"-o", "x", "--size", "big"})
	require.Error(t, err)

	apr, err := ap.Parse([]string{"-o", "x", "-c", "--size=256", "in.duc"})
	require.NoError(t, err)
	assert.Equal(t, "x", apr.MustGetValue("out"))
	assert.Equal(t, 256, apr.GetIntOrDefault("size", 0))
	assert.Equal(t, 7, apr.GetIntOrDefault("missing", 7))
	assert.True(t, apr.ContainsAll("out", "compress"))
	assert.False(t, apr.ContainsAny("missing", "other"))
	assert.Equal(t, []string{"compress", "out"}, apr.ContainsMany("out", "compress", "missing"))
	assert.Equal(t, 1, apr.NArg())
	assert.Equal(t, "in.duc", apr.Arg(0))
	assert.Equal(t, "dflt", apr.GetValueOrDefault("missing", "dflt"))
}

func TestParseGlobalArgs(t *testing.T) {
	ap := NewArgParserWithVariableArgs("duc").
		SupportsFlag("verbose", "v", "").
		SupportsString("config", "c", "file", "")

	apr, remaining, err := ap.ParseGlobalArgs([]string{"-v", "--config", "cfg.yaml", "inspect", "-x", "a.duc"})
	require.NoError(t, err)
	assert.True(t, apr.Contains("verbose"))
	assert.Equal(t, "cfg.yaml", apr.MustGetValue("config"))
	assert.Equal(t, []string{"inspect", "-x", "a.duc"}, remaining)

	apr, remaining, err = ap.ParseGlobalArgs([]string{"-v"})
	require.NoError(t, err)
	assert.True(t, apr.Contains("verbose"))
	assert.Empty(t, remaining)
}

func TestDuplicateOptionPanics(t *testing.T) {
	ap := NewArgParserWithVariableArgs("test").SupportsFlag("flag", "f", "")
	assert.Panics(t, func() { ap.SupportsFlag("flag", "", "") })
	assert.Panics(t, func() { ap.SupportsFlag("help", "", "") })
	assert.Panics(t, func() { ap.SupportsString("-bad", "", "", "") })
}
