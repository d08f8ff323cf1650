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

	"github.com/dustin/go-humanize"

	"github.com/ducflair/duc-sub004/cmd/duc/cli"
	"github.com/ducflair/duc-sub004/cmd/duc/commands"
	"github.com/ducflair/duc-sub004/cmd/duc/errhand"
	"github.com/ducflair/duc-sub004/libraries/duccore/encoding"
	"github.com/ducflair/duc-sub004/libraries/utils/argparser"
)

var extractDocs = cli.CommandDocumentationContent{
	ShortDesc: "Write the thumbnail to a file",
	LongDesc:  `Writes the encoded thumbnail image of <file> to <out> as is. Only the thumbnail is read from the document.`,
	Synopsis: []string{
		"<file> <out>",
	},
}

type ExtractCmd struct{}

func (cmd ExtractCmd) Name() string {
	return "extract"
}

func (cmd ExtractCmd) Description() string {
	return "Write the thumbnail to a file."
}

func (cmd ExtractCmd) ArgParser() *argparser.ArgParser {
	ap := argparser.NewArgParserWithMaxArgs(cmd.Name(), 2)
	ap.ArgListHelp = append(ap.ArgListHelp, [2]string{"file", "The document to read."}, [2]string{"out", "The image file to write."})
	return ap
}

func (cmd ExtractCmd) Exec(ctx context.Context, commandStr string, args []string, dEnv *cli.Env) int {
	ap := cmd.ArgParser()
	apr, usage, err := cli.ParseArgs(ap, commandStr, args, extractDocs)
	if err != nil {
		return commands.HandleParseErr(err, usage)
	}
	if apr.NArg() != 2 {
		return commands.HandleVErrAndExitCode(errhand.BuildDError("error: extract requires a document and an output path").SetPrintUsage().Build(), usage)
	}
	path, out := apr.Arg(0), apr.Arg(1)

	f, verr := commands.ReadDocumentFile(dEnv, path)
	if verr != nil {
		return commands.HandleVErrAndExitCode(verr, usage)
	}

	thumb, err := encoding.ParseThumbnail(f.Buf)
	if err != nil {
		return commands.HandleVErrAndExitCode(errhand.BuildDError("error: document %s could not be loaded", path).AddCause(err).Build(), usage)
	}
	if thumb == nil {
		return commands.HandleVErrAndExitCode(errhand.BuildDError("error: %s has no thumbnail", path).Build(), usage)
	}

	if err := dEnv.FS.WriteFile(out, thumb, 0644); err != nil {
		return commands.HandleVErrAndExitCode(errhand.BuildDError("error: could not write %s", out).AddCause(err).Build(), usage)
	}

	cli.PrintErrf("wrote %s thumbnail to %s\n", humanize.Bytes(uint64(len(thumb))), out)
	return 0
}
