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

var renderDocs = cli.CommandDocumentationContent{
	ShortDesc: "Render a thumbnail from the document elements",
	LongDesc: `Draws the visible elements of <file> with their effective fills and strokes and stores the result as the document thumbnail. Rotation and text are not drawn; text and image elements appear as placeholders.`,
	Synopsis: []string{
		"[--max-size <px>] <file>",
	},
}

type RenderCmd struct{}

func (cmd RenderCmd) Name() string {
	return "render"
}

func (cmd RenderCmd) Description() string {
	return "Render a thumbnail from the document elements."
}

func (cmd RenderCmd) ArgParser() *argparser.ArgParser {
	ap := argparser.NewArgParserWithMaxArgs(cmd.Name(), 1)
	ap.ArgListHelp = append(ap.ArgListHelp, [2]string{"file", "The document to edit."})
	ap.SupportsUint(maxSizeParam, "s", "px", "Longest edge of the thumbnail in pixels.")
	return ap
}

func (cmd RenderCmd) Exec(ctx context.Context, commandStr string, args []string, dEnv *cli.Env) int {
	ap := cmd.ArgParser()
	apr, usage, err := cli.ParseArgs(ap, commandStr, args, renderDocs)
	if err != nil {
		return commands.HandleParseErr(err, usage)
	}
	if apr.NArg() != 1 {
		return commands.HandleVErrAndExitCode(errhand.BuildDError("error: render requires a document").SetPrintUsage().Build(), usage)
	}

	size := maxSize(apr, dEnv)
	verr := commands.UpdateDocument(dEnv, apr.Arg(0), func(doc *duc.Document) error {
		thumb, err := thumbnail.Render(doc, size)
		if err != nil {
			return errhand.BuildDError("error: could not render a thumbnail").AddCause(err).Build()
		}
		doc.Thumbnail = thumb
		return nil
	})
	return commands.HandleVErrAndExitCode(verr, usage)
}
