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

	"github.com/ducflair/duc-sub004/cmd/duc/cli"
	"github.com/ducflair/duc-sub004/cmd/duc/commands"
	"github.com/ducflair/duc-sub004/cmd/duc/errhand"
	"github.com/ducflair/duc-sub004/libraries/utils/argparser"
)

const keysOnlyFlag = "keys"

var lsDocs = cli.CommandDocumentationContent{
	ShortDesc: "List the dictionary",
	LongDesc:  `Prints every dictionary entry as <b>key = value</b>, sorted by key.`,
	Synopsis: []string{
		"[--keys] <file>",
	},
}

type LsCmd struct{}

func (cmd LsCmd) Name() string {
	return "ls"
}

func (cmd LsCmd) Description() string {
	return "List the dictionary."
}

func (cmd LsCmd) ArgParser() *argparser.ArgParser {
	ap := argparser.NewArgParserWithMaxArgs(cmd.Name(), 1)
	ap.ArgListHelp = append(ap.ArgListHelp, [2]string{"file", "The document to read."})
	ap.SupportsFlag(keysOnlyFlag, "k", "Print only the keys.")
	return ap
}

func (cmd LsCmd) Exec(ctx context.Context, commandStr string, args []string, dEnv *cli.Env) int {
	ap := cmd.ArgParser()
	apr, usage, err := cli.ParseArgs(ap, commandStr, args, lsDocs)
	if err != nil {
		return commands.HandleParseErr(err, usage)
	}
	if apr.NArg() != 1 {
		return commands.HandleVErrAndExitCode(errhand.BuildDError("error: ls requires a document").SetPrintUsage().Build(), usage)
	}

	doc, verr := commands.LoadDocument(dEnv, apr.Arg(0))
	if verr != nil {
		return commands.HandleVErrAndExitCode(verr, usage)
	}

	keysOnly := apr.Contains(keysOnlyFlag)
	for _, key := range doc.DictionaryKeys() {
		if keysOnly {
			cli.Println(key)
		} else {
			cli.Printf("%s = %s\n", key, doc.Dictionary[key])
		}
	}
	return 0
}
