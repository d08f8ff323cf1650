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
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/ducflair/duc-sub004/cmd/duc/cli"
	"github.com/ducflair/duc-sub004/cmd/duc/errhand"
	"github.com/ducflair/duc-sub004/libraries/duccore/docio"
	"github.com/ducflair/duc-sub004/libraries/utils/argparser"
)

const (
	compressFlag   = "compress"
	decompressFlag = "decompress"
)

var packDocs = cli.CommandDocumentationContent{
	ShortDesc: "Convert a document between the raw and compressed containers",
	LongDesc: `Rewrites a document in the snappy compressed container with <b>--compress</b>, or as a raw buffer with <b>--decompress</b>. The document buffer itself is not changed, so its fingerprint stays the same.

Without <b>--out</b> the output path is derived from the input: <b>plan.duc</b> compresses to <b>plan.duc.sz</b> and back. When neither flag is given the <b>pack.compress</b> config value decides whether to compress.`,
	Synopsis: []string{
		"--compress [--out <path>] <file>",
		"--decompress [--out <path>] <file>",
	},
}

type PackCmd struct{}

func (cmd PackCmd) Name() string {
	return "pack"
}

func (cmd PackCmd) Description() string {
	return "Compress or decompress a document."
}

func (cmd PackCmd) ArgParser() *argparser.ArgParser {
	ap := argparser.NewArgParserWithMaxArgs(cmd.Name(), 1)
	ap.ArgListHelp = append(ap.ArgListHelp, [2]string{"file", "The document to convert."})
	ap.SupportsFlag(compressFlag, "c", "Write the snappy compressed container.")
	ap.SupportsFlag(decompressFlag, "d", "Write the raw document buffer.")
	ap.SupportsString(outParam, "o", "path", "Where to write the converted document.")
	return ap
}

func (cmd PackCmd) Exec(ctx context.Context, commandStr string, args []string, dEnv *cli.Env) int {
	ap := cmd.ArgParser()
	apr, usage, err := cli.ParseArgs(ap, commandStr, args, packDocs)
	if err != nil {
		return HandleParseErr(err, usage)
	}

	if verr := requireArgs(apr, 1, "pack requires a document"); verr != nil {
		return HandleVErrAndExitCode(verr, usage)
	}

	var format docio.Format
	switch {
	case apr.ContainsAll(compressFlag, decompressFlag):
		return HandleVErrAndExitCode(errhand.BuildDError("error: --compress and --decompress are mutually exclusive").SetPrintUsage().Build(), usage)
	case apr.Contains(compressFlag):
		format = docio.FormatSnappy
	case apr.Contains(decompressFlag):
		format = docio.FormatRaw
	case dEnv.Config.Pack.Compress:
		format = docio.FormatSnappy
	default:
		return HandleVErrAndExitCode(errhand.BuildDError("error: one of --compress or --decompress is required").SetPrintUsage().Build(), usage)
	}

	in := apr.Arg(0)
	out := apr.GetValueOrDefault(outParam, packedPath(in, format))

	f, verr := ReadDocumentFile(dEnv, in)
	if verr != nil {
		return HandleVErrAndExitCode(verr, usage)
	}

	if err := dEnv.Store().WriteFile(out, f.Buf, format); err != nil {
		return HandleVErrAndExitCode(errhand.BuildDError("error: document %s could not be saved", out).AddCause(err).Build(), usage)
	}

	stored, err := dEnv.FS.ReadFile(out)
	if err != nil {
		return HandleVErrAndExitCode(errhand.BuildDError("error: could not read back %s", out).AddCause(err).Build(), usage)
	}

	cli.Printf("%s (%s, %s) -> %s (%s, %s)\n",
		in, f.Format, humanize.Bytes(uint64(f.StoredBytes)),
		out, format, humanize.Bytes(uint64(len(stored))))
	return 0
}

// packedPath derives the output path for converting |path| to |format|.
func packedPath(path string, format docio.Format) string {
	lower := strings.ToLower(path)
	switch format {
	case docio.FormatSnappy:
		if strings.HasSuffix(lower, docio.CompressedExt) {
			return path
		}
		if strings.HasSuffix(lower, docio.Ext) {
			return path + ".sz"
		}
		return path + docio.CompressedExt
	default:
		if strings.HasSuffix(lower, docio.CompressedExt) {
			return path[:len(path)-len(".sz")]
		}
		return path
	}
}
