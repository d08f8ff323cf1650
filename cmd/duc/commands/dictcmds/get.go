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


package dictcmds

import (
	"context"

	"github.com/tidwall/gjson"

	"github.com/ducflair/duc-sub004/cmd/duc/cli"
	"github.com/ducflair/duc-sub004/cmd/duc/commands"
	"github.com/ducflair/duc-sub004/cmd/duc/errhand"
	"github.com/ducflair/duc-sub004/libraries/utils/argparser"
)

var getDocs = cli.CommandDocumentationContent{
	ShortDesc: "Print a dictionary value",
	LongDesc: `Prints the value stored under <key>. When <b>--path</b> is given the value must be JSON, and only the part selected by the gjson path is printed.`,
	Synopsis: []string{
		"[--path <path>] <file> <key>",
	},
}

type GetCmd struct{}

func (cmd GetCmd) Name() string {
	return "get"
}

func (cmd GetCmd) Description() string {
	return "Print a dictionary value."
}

func (cmd GetCmd) ArgParser() *argparser.ArgParser {
	ap := argparser.NewArgParserWithMaxArgs(cmd.Name(), 2)
	ap.ArgListHelp = append(ap.ArgListHelp, [2]string{"file", "The document to read."}, [2]string{"key", "The dictionary key."})
	ap.SupportsString(pathParam, "p", "path", "Select part of a JSON value with a gjson path.")
	return ap
}

func (cmd GetCmd) Exec(ctx context.Context, commandStr string, args []string, dEnv *cli.Env) int {
	ap := cmd.ArgParser()
	apr, usage, err := cli.ParseArgs(ap, commandStr, args, getDocs)
	if err != nil {
		return commands.HandleParseErr(err, usage)
	}
	if apr.NArg() != 2 {
		return commands.HandleVErrAndExitCode(errhand.BuildDError("error: get requires a document and a key").SetPrintUsage().Build(), usage)
	}

	doc, verr := commands.LoadDocument(dEnv, apr.Arg(0))
	if verr != nil {
		return commands.HandleVErrAndExitCode(verr, usage)
	}

	key := apr.Arg(1)
	val, ok := doc.Dictionary[key]
	if !ok {
		return commands.HandleVErrAndExitCode(errhand.BuildDError("error: key %q not found", key).Build(), usage)
	}

	if path, ok := apr.GetValue(pathParam); ok {
		if !gjson.Valid(val) {
			return commands.HandleVErrAndExitCode(errhand.BuildDError("error: value of %q is not JSON", key).Build(), usage)
		}
		res := gjson.Get(val, path)
		if !res.Exists() {
			return commands.HandleVErrAndExitCode(errhand.BuildDError("error: path %q not found in %q", path, key).Build(), usage)
		}
		val = res.String()
	}

	cli.Println(val)
	return 0
}
