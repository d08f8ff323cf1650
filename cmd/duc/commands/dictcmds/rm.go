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
	"github.com/ducflair/duc-sub004/libraries/duccore/duc"
	"github.com/ducflair/duc-sub004/libraries/utils/argparser"
)

var rmDocs = cli.CommandDocumentationContent{
	ShortDesc: "Remove dictionary keys",
	LongDesc:  `Removes every given key from the dictionary. Removing a key that does not exist is an error and leaves the document unchanged.`,
	Synopsis: []string{
		"<file> <key>...",
	},
}

type RmCmd struct{}

func (cmd RmCmd) Name() string {
	return "rm"
}

func (cmd RmCmd) Description() string {
	return "Remove dictionary keys."
}

func (cmd RmCmd) ArgParser() *argparser.ArgParser {
	ap := argparser.NewArgParserWithVariableArgs(cmd.Name())
	ap.ArgListHelp = append(ap.ArgListHelp, [2]string{"file", "The document to edit."}, [2]string{"key", "The keys to remove."})
	return ap
}

func (cmd RmCmd) Exec(ctx context.Context, commandStr string, args []string, dEnv *cli.Env) int {
	ap := cmd.ArgParser()
	apr, usage, err := cli.ParseArgs(ap, commandStr, args, rmDocs)
	if err != nil {
		return commands.HandleParseErr(err, usage)
	}
	if apr.NArg() < 2 {
		return commands.HandleVErrAndExitCode(errhand.BuildDError("error: rm requires a document and at least one key").SetPrintUsage().Build(), usage)
	}

	keys := apr.Args[1:]
	verr := commands.UpdateDocument(dEnv, apr.Arg(0), func(doc *duc.Document) error {
		for _, key := range keys {
			if _, ok := doc.Dictionary[key]; !ok {
				return errhand.BuildDError("error: key %q not found", key).Build()
			}
		}
		for _, key := range keys {
			delete(doc.Dictionary, key)
		}
		return nil
	})

	return commands.HandleVErrAndExitCode(verr, usage)
}
