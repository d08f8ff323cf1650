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


package commands

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/ducflair/duc-sub004/cmd/duc/cli"
	"github.com/ducflair/duc-sub004/cmd/duc/errhand"
	"github.com/ducflair/duc-sub004/libraries/utils/argparser"
	"github.com/ducflair/duc-sub004/libraries/utils/config"
)

const (
	listOperationStr  = "list"
	getOperationStr   = "get"
	addOperationStr   = "add"
	unsetOperationStr = "unset"
)

var configDocs = cli.CommandDocumentationContent{
	ShortDesc: "Get and set duc configuration values",
	LongDesc: `Reads and writes the duc configuration file, <b>~/.duc/config.yaml</b> unless <b>--config</b> names another file. Files ending in <b>.toml</b> are read and written as toml.

Valid keys are <b>log.level</b>, <b>thumbnail.max_size</b>, <b>pack.compress</b> and <b>export.indent</b>. <b>--unset</b> restores the default value of a key.`,
	Synopsis: []string{
		"--list",
		"--get <name>",
		"--add <name> <value>",
		"--unset <name>...",
	},
}

type ConfigCmd struct{}

func (cmd ConfigCmd) Name() string {
	return "config"
}

func (cmd ConfigCmd) Description() string {
	return "Get and set duc configuration values."
}

func (cmd ConfigCmd) ArgParser() *argparser.ArgParser {
	ap := argparser.NewArgParserWithVariableArgs(cmd.Name())
	ap.ArgListHelp = append(ap.ArgListHelp, [2]string{"name", "The configuration key, e.g. thumbnail.max_size."})
	ap.ArgListHelp = append(ap.ArgListHelp, [2]string{"value", "The value to set, only used with --add."})
	ap.SupportsFlag(listOperationStr, "l", "List the current configuration values.")
	ap.SupportsFlag(getOperationStr, "", "Print the value of a single key.")
	ap.SupportsFlag(addOperationStr, "", "Set the value of a key and save the configuration file.")
	ap.SupportsFlag(unsetOperationStr, "", "Restore the default value of one or more keys and save the configuration file.")
	return ap
}

func (cmd ConfigCmd) Exec(ctx context.Context, commandStr string, args []string, dEnv *cli.Env) int {
	ap := cmd.ArgParser()
	apr, usage, err := cli.ParseArgs(ap, commandStr, args, configDocs)
	if err != nil {
		return HandleParseErr(err, usage)
	}

	ops := apr.ContainsMany(listOperationStr, getOperationStr, addOperationStr, unsetOperationStr)
	if len(ops) != 1 {
		return HandleVErrAndExitCode(errhand.BuildDError("error: exactly one of --list, --get, --add or --unset is required").SetPrintUsage().Build(), usage)
	}

	var verr errhand.VerboseError
	switch ops[0] {
	case listOperationStr:
		verr = listConfig(dEnv, apr)
	case getOperationStr:
		verr = getConfig(dEnv, apr)
	case addOperationStr:
		verr = addConfig(dEnv, apr)
	case unsetOperationStr:
		verr = unsetConfig(dEnv, apr)
	}

	return HandleVErrAndExitCode(verr, usage)
}

func listConfig(dEnv *cli.Env, apr *argparser.ArgParseResults) errhand.VerboseError {
	if apr.NArg() != 0 {
		return errhand.BuildDError("error: --list does not take arguments").SetPrintUsage().Build()
	}

	config.NewMapConfig(dEnv.Config.ToMap()).Iter(func(k, v string) (stop bool) {
		cli.Println(color.CyanString("%s", k) + " = " + v)
		return false
	})
	return nil
}

func getConfig(dEnv *cli.Env, apr *argparser.ArgParseResults) errhand.VerboseError {
	if apr.NArg() != 1 {
		return errhand.BuildDError("error: --get requires exactly one key").SetPrintUsage().Build()
	}

	key := apr.Arg(0)
	val, err := config.NewMapConfig(dEnv.Config.ToMap()).GetString(key)
	if err != nil {
		return errhand.BuildDError("error: unknown config key %s", key).Build()
	}
	cli.Println(val)
	return nil
}

func addConfig(dEnv *cli.Env, apr *argparser.ArgParseResults) errhand.VerboseError {
	if apr.NArg() != 2 {
		return errhand.BuildDError("error: --add requires a key and a value").SetPrintUsage().Build()
	}

	updates := config.NewMapConfig(map[string]string{apr.Arg(0): apr.Arg(1)})
	return applyAndSave(dEnv, updates)
}

func unsetConfig(dEnv *cli.Env, apr *argparser.ArgParseResults) errhand.VerboseError {
	if apr.NArg() == 0 {
		return errhand.BuildDError("error: --unset requires at least one key").SetPrintUsage().Build()
	}

	defaults := config.DefaultCLIConfig().ToMap()
	updates := config.NewMapConfig(nil)
	for i := 0; i < apr.NArg(); i++ {
		key := apr.Arg(i)
		def, ok := defaults[key]
		if !ok {
			return errhand.BuildDError("error: unknown config key %s", key).Build()
		}
		_ = updates.SetStrings(map[string]string{key: def})
	}
	return applyAndSave(dEnv, updates)
}

func applyAndSave(dEnv *cli.Env, updates config.ReadableConfig) errhand.VerboseError {
	// Apply to a copy so a bad value leaves the loaded config intact.
	cfg := *dEnv.Config
	if err := cfg.Apply(updates); err != nil {
		return errhand.BuildDError("error: invalid configuration").AddCause(err).Build()
	}

	if err := cfg.Save(dEnv.FS, dEnv.ConfigPath); err != nil {
		return errhand.BuildDError("error: failed to save %s", dEnv.ConfigPath).AddCause(err).Build()
	}

	*dEnv.Config = cfg
	cli.Println(fmt.Sprintf("updated %s", dEnv.ConfigPath))
	return nil
}
