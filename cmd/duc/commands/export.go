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

	"github.com/dustin/go-humanize"

	"github.com/ducflair/duc-sub004/cmd/duc/cli"
	"github.com/ducflair/duc-sub004/cmd/duc/errhand"
	"github.com/ducflair/duc-sub004/libraries/duccore/docjson"
	"github.com/ducflair/duc-sub004/libraries/utils/argparser"
)

const (
	outParam          = "out"
	indentParam       = "indent"
	omitFilesFlag     = "omit-files"
	omitThumbnailFlag = "omit-thumbnail"
)

var exportDocs = cli.CommandDocumentationContent{
	ShortDesc: "Export a document as JSON",
	LongDesc: `Writes the full contents of a document as JSON to standard output, or to the file given with <b>--out</b>. Every element is written as an object holding its <b>type</b> and its <b>value</b>, so the export can be turned back into a document with <b>duc import</b>.

The indent defaults to the <b>export.indent</b> config value. An indent of 0 writes compact JSON.`,
	Synopsis: []string{
		"[--indent <n>] [--omit-files] [--omit-thumbnail] [--out <path>] <file>",
	},
}

type ExportCmd struct{}

func (cmd ExportCmd) Name() string {
	return "export"
}

func (cmd ExportCmd) Description() string {
	return "Export a document as JSON."
}

func (cmd ExportCmd) ArgParser() *argparser.ArgParser {
	ap := argparser.NewArgParserWithMaxArgs(cmd.Name(), 1)
	ap.ArgListHelp = append(ap.ArgListHelp, [2]string{"file", "The document to export."})
	ap.SupportsString(outParam, "o", "path", "Write the JSON to this file instead of standard output.")
	ap.SupportsUint(indentParam, "", "n", "Spaces per indent level. Zero writes compact JSON.")
	ap.SupportsFlag(omitFilesFlag, "", "Leave external file payloads out of the export.")
	ap.SupportsFlag(omitThumbnailFlag, "", "Leave the thumbnail out of the export.")
	return ap
}

func (cmd ExportCmd) Exec(ctx context.Context, commandStr string, args []string, dEnv *cli.Env) int {
	ap := cmd.ArgParser()
	apr, usage, err := cli.ParseArgs(ap, commandStr, args, exportDocs)
	if err != nil {
		return HandleParseErr(err, usage)
	}

	if verr := requireArgs(apr, 1, "export requires a document"); verr != nil {
		return HandleVErrAndExitCode(verr, usage)
	}

	doc, verr := LoadDocument(dEnv, apr.Arg(0))
	if verr != nil {
		return HandleVErrAndExitCode(verr, usage)
	}

	opts := docjson.Options{
		Indent:        apr.GetIntOrDefault(indentParam, dEnv.Config.Export.Indent),
		OmitFiles:     apr.Contains(omitFilesFlag),
		OmitThumbnail: apr.Contains(omitThumbnailFlag),
	}

	out, ok := apr.GetValue(outParam)
	if !ok {
		if err := docjson.Write(cli.CliOut, doc, opts); err != nil {
			verr = errhand.BuildDError("error: export failed").AddCause(err).Build()
		}
		return HandleVErrAndExitCode(verr, usage)
	}

	data, err := docjson.Marshal(doc, opts)
	if err != nil {
		return HandleVErrAndExitCode(errhand.BuildDError("error: export failed").AddCause(err).Build(), usage)
	}
	if err := dEnv.FS.WriteFile(out, append(data, '\n'), 0644); err != nil {
		return HandleVErrAndExitCode(errhand.BuildDError("error: could not write %s", out).AddCause(err).Build(), usage)
	}

	cli.PrintErrf("exported %s to %s (%s)\n", apr.Arg(0), out, humanize.Bytes(uint64(len(data)+1)))
	return 0
}
