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
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/ducflair/duc-sub004/cmd/duc/cli"
	"github.com/ducflair/duc-sub004/cmd/duc/errhand"
	"github.com/ducflair/duc-sub004/libraries/duccore/duc"
	"github.com/ducflair/duc-sub004/libraries/duccore/encoding"
	"github.com/ducflair/duc-sub004/libraries/duccore/thumbnail"
	"github.com/ducflair/duc-sub004/libraries/utils/argparser"
)

const elementsFlag = "elements"

var inspectDocs = cli.CommandDocumentationContent{
	ShortDesc: "Show the header and contents summary of a document",
	LongDesc: `Prints the container format, size and fingerprint of a document along with its header fields and the number of entities of each kind. The document body is not parsed unless <b>--elements</b> is given.

With <b>--elements</b> the full document is parsed and the number of elements of each type is listed.`,
	Synopsis: []string{
		"[--elements] <file>",
	},
}

type InspectCmd struct{}

// Name returns the name of the duc cli command. This is what is used on the command line to invoke the command
func (cmd InspectCmd) Name() string {
	return "inspect"
}

// Description returns a description of the command
func (cmd InspectCmd) Description() string {
	return "Show a summary of a document."
}

func (cmd InspectCmd) ArgParser() *argparser.ArgParser {
	ap := argparser.NewArgParserWithMaxArgs(cmd.Name(), 1)
	ap.ArgListHelp = append(ap.ArgListHelp, [2]string{"file", "The .duc or .duc.sz document to inspect."})
	ap.SupportsFlag(elementsFlag, "e", "Parse the document and count elements by type.")
	return ap
}

// Exec executes the command
func (cmd InspectCmd) Exec(ctx context.Context, commandStr string, args []string, dEnv *cli.Env) int {
	ap := cmd.ArgParser()
	apr, usage, err := cli.ParseArgs(ap, commandStr, args, inspectDocs)
	if err != nil {
		return HandleParseErr(err, usage)
	}

	if verr := requireArgs(apr, 1, "inspect requires a document"); verr != nil {
		return HandleVErrAndExitCode(verr, usage)
	}

	return HandleVErrAndExitCode(inspect(dEnv, apr.Arg(0), apr.Contains(elementsFlag)), usage)
}

func inspect(dEnv *cli.Env, path string, countElements bool) errhand.VerboseError {
	f, verr := ReadDocumentFile(dEnv, path)
	if verr != nil {
		return verr
	}

	sum, err := encoding.Summarize(f.Buf)
	if err != nil {
		return errhand.BuildDError("error: %s is not a readable duc document", path).AddCause(err).Build()
	}

	label := color.New(color.Bold).SprintFunc()
	row := func(name string, format string, args ...interface{}) {
		cli.Printf("%s "+format+"\n", append([]interface{}{label(padRight(name+":", 13))}, args...)...)
	}

	row("path", "%s", path)
	row("container", "%s, %s on disk", f.Format, humanize.Bytes(uint64(f.StoredBytes)))
	row("buffer", "%s", humanize.Bytes(uint64(len(f.Buf))))
	row("fingerprint", "%s", f.Fingerprint())
	row("type", "%s", sum.Type)
	row("version", "%s", sum.Version)
	row("source", "%s", sum.Source)
	row("elements", "%s", humanize.Comma(int64(sum.Elements)))
	row("blocks", "%d", sum.Blocks)
	row("groups", "%d", sum.Groups)
	row("regions", "%d", sum.Regions)
	row("layers", "%d", sum.Layers)
	row("dictionary", "%d", sum.DictionaryKeys)
	row("files", "%d", sum.Files)
	row("tombstones", "%d", sum.Tombstones)

	if sum.ThumbnailBytes == 0 {
		row("thumbnail", "none")
	} else if thumb, err := encoding.ParseThumbnail(f.Buf); err == nil {
		if info, err := thumbnail.Inspect(thumb); err == nil {
			row("thumbnail", "%s %dx%d, %s", info.Format, info.Width, info.Height, humanize.Bytes(uint64(info.Bytes)))
		} else {
			row("thumbnail", "unrecognized image, %s", humanize.Bytes(uint64(len(thumb))))
		}
	}

	if !countElements {
		return nil
	}

	doc, err := encoding.ParseDocument(f.Buf)
	if err != nil {
		return errhand.BuildDError("error: document %s could not be parsed", path).AddCause(err).Build()
	}

	counts := doc.CountByType()
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, string(t))
	}
	sort.Strings(types)

	cli.Println()
	for _, t := range types {
		cli.Printf("    %-14s %d\n", t, counts[duc.ElementType(t)])
	}

	return nil
}

func padRight(s string, n int) string {
	for len(s) < n {
		s += " "
	}
	return s
}
