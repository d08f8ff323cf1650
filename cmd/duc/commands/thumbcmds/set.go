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
	"github.com/ducflair/duc-sub004/libraries/duccore/thumbnail"
	"github.com/ducflair/duc-sub004/libraries/utils/argparser"
)

var setDocs = cli.CommandDocumentationContent{
	ShortDesc: "Replace the thumbnail with an image",
	LongDesc: `Reads a png, jpeg, gif, bmp or webp image, scales it down so neither edge exceeds <b>--max-size</b> pixels and stores it as the PNG thumbnail of <file>. The size defaults to the <b>thumbnail.max_size</b> config value.

With <b>--raw</b> the image bytes are stored unchanged.`,
	Synopsis: []string{
		"[--max-size <px>] [--raw] <file> <image>",
	},
}

type SetCmd struct{}

func (cmd SetCmd) Name() string {
	return "set"
}

func (cmd SetCmd) Description() string {
	return "Replace the thumbnail with an image."
}

func (cmd SetCmd) ArgParser() *argparser.ArgParser {
	ap := argparser.NewArgParserWithMaxArgs(cmd.Name(), 2)
	ap.ArgListHelp = append(ap.ArgListHelp, [2]string{"file", "The document to edit."}, [2]string{"image", "The image to use."})
	ap.SupportsUint(maxSizeParam, "s", "px", "Longest edge of the thumbnail in pixels.")
	ap.SupportsFlag(rawFlag, "", "Store the image bytes without converting them.")
	return ap
}

func (cmd SetCmd) Exec(ctx context.Context, commandStr string, args []string, dEnv *cli.Env) int {
	ap := cmd.ArgParser()
	apr, usage, err := cli.ParseArgs(ap, commandStr, args, setDocs)
	if err != nil {
		return commands.HandleParseErr(err, usage)
	}
	if apr.NArg() != 2 {
		return commands.HandleVErrAndExitCode(errhand.BuildDError("error: set requires a document and an image").SetPrintUsage().Build(), usage)
	}
	path, imgPath := apr.Arg(0), apr.Arg(1)

	data, err := dEnv.FS.ReadFile(imgPath)
	if err != nil {
		return commands.HandleVErrAndExitCode(errhand.BuildDError("error: could not read %s", imgPath).AddCause(err).Build(), usage)
	}

	thumb := data
	if !apr.Contains(rawFlag) {
		thumb, err = thumbnail.FromImage(data, maxSize(apr, dEnv))
		if err != nil {
			return commands.HandleVErrAndExitCode(errhand.BuildDError("error: %s is not a supported image", imgPath).AddCause(err).Build(), usage)
		}
	}

	verr := commands.UpdateDocument(dEnv, path, func(doc *duc.Document) error {
		doc.Thumbnail = thumb
		return nil
	})
	return commands.HandleVErrAndExitCode(verr, usage)
}
