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

	"github.com/ducflair/duc-sub004/cmd/duc/cli"
	"github.com/ducflair/duc-sub004/cmd/duc/errhand"
	"github.com/ducflair/duc-sub004/libraries/duccore/docio"
	"github.com/ducflair/duc-sub004/libraries/duccore/docjson"
	"github.com/ducflair/duc-sub004/libraries/utils/argparser"
)

var importDocs = cli.CommandDocumentationContent{
	ShortDesc: "Create a document from a JSON export",
	LongDesc: `Reads JSON written by <b>duc export</b> and encodes it as a document. The container is chosen from the extension of the output path: <b>.duc.sz</b> writes a compressed document.`,
	Synopsis: []string{
		"<json> <file>",
	},
}

type ImportCmd struct{}

func (cmd ImportCmd) Name() string {
	return "import"
}

func (cmd ImportCmd) Description() string {
	return "Create a document from a JSON export."
}

func (cmd ImportCmd) ArgParser() *argparser.ArgParser {
	ap := argparser.NewArgParserWithMaxArgs(cmd.Name(), 2)
	ap.ArgListHelp = append(ap.ArgListHelp,
		[2]string{"json", "The JSON export to read."},
		[2]string{"file", "The document to write."})
	return ap
}

func (cmd ImportCmd) Exec(ctx context.Context, commandStr string, args []string, dEnv *cli.Env) int {
	ap := cmd.ArgParser()
	apr, usage, err := cli.ParseArgs(ap, commandStr, args, importDocs)
	if err != nil {
		return HandleParseErr(err, usage)
	}

	if verr := requireArgs(apr, 2, "import requires a json file and an output document"); verr != nil {
		return HandleVErrAndExitCode(verr, usage)
	}
	in, out := apr.Arg(0), apr.Arg(1)

	data, err := dEnv.FS.ReadFile(in)
	if err != nil {
		return HandleVErrAndExitCode(errhand.BuildDError("error: could not read %s", in).AddCause(err).Build(), usage)
	}

	doc, err := docjson.Unmarshal(data)
	if err != nil {
		return HandleVErrAndExitCode(errhand.BuildDError("error: %s is not a document export", in).AddCause(err).Build(), usage)
	}

	if err := dEnv.Store().Save(out, doc); err != nil {
		return HandleVErrAndExitCode(errhand.BuildDError("error: document %s could not be saved", out).AddCause(err).Build(), usage)
	}

	cli.PrintErrf("imported %d elements into %s (%s)\n", len(doc.Elements), out, docio.FormatForPath(out))
	return 0
}
