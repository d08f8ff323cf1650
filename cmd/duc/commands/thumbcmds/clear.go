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


package thumbcmds

import (
	"context"

	"github.com/ducflair/duc-sub004/cmd/duc/cli"
	"github.com/ducflair/duc-sub004/cmd/duc/commands"
	"github.com/ducflair/duc-sub004/cmd/duc/errhand"
	"github.com/ducflair/duc-sub004/libraries/duccore/duc"
	"github.com/ducflair/duc-sub004/libraries/utils/argparser"
)

var clearDocs = cli.CommandDocumentationContent{
	ShortDesc: "Remove the thumbnail",
	LongDesc:  `Removes the thumbnail from <file>.`,
	Synopsis: []string{
		"<file>",
	},
}

type ClearCmd struct{}

func (cmd ClearCmd) Name() string {
	return "clear"
}

func (cmd ClearCmd) Description() string {
	return "Remove the thumbnail."
}

func (cmd ClearCmd) ArgParser() *argparser.ArgParser {
	ap := argparser.NewArgParserWithMaxArgs(cmd.Name(), 1)
	ap.ArgListHelp = append(ap.ArgListHelp, [2]string{"file", "The document to edit."})
	return ap
}

func (cmd ClearCmd) Exec(ctx context.Context, commandStr string, args []string, dEnv *cli.Env) int {
	ap := cmd.ArgParser()
	apr, usage, err := cli.ParseArgs(ap, commandStr, args, clearDocs)
	if err != nil {
		return commands.HandleParseErr(err, usage)
	}
	if apr.NArg() != 1 {
		return commands.HandleVErrAndExitCode(errhand.BuildDError("error: clear requires a document").SetPrintUsage().Build(), usage)
	}

	verr := commands.UpdateDocument(dEnv, apr.Arg(0), func(doc *duc.Document) error {
		doc.Thumbnail = nil
		return nil
	})
	return commands.HandleVErrAndExitCode(verr, usage)
}
