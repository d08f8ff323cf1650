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

	"github.com/ducflair/duc-sub004/cmd/duc/cli"
	"github.com/ducflair/duc-sub004/cmd/duc/errhand"
	"github.com/ducflair/duc-sub004/libraries/duccore/docio"
	"github.com/ducflair/duc-sub004/libraries/duccore/duc"
	"github.com/ducflair/duc-sub004/libraries/utils/argparser"
)

const (
	sourceParam = "source"
	nameParam   = "name"
	scopeParam  = "scope"
	forceFlag   = "force"

	defaultSource = "duc-cli"
)

var newDocs = cli.CommandDocumentationContent{
	ShortDesc: "Create an empty document",
	LongDesc: `Creates a document with no elements and default global and local state. The container is chosen from the extension of <file>, or from the <b>pack.compress</b> config value when the extension does not decide.`,
	Synopsis: []string{
		"[--name <name>] [--scope <unit>] [--source <source>] [--force] <file>",
	},
}

type NewCmd struct{}

func (cmd NewCmd) Name() string {
	return "new"
}

func (cmd NewCmd) Description() string {
	return "Create an empty document."
}

func (cmd NewCmd) ArgParser() *argparser.ArgParser {
	ap := argparser.NewArgParserWithMaxArgs(cmd.Name(), 1)
	ap.ArgListHelp = append(ap.ArgListHelp, [2]string{"file", "The document to create."})
	ap.SupportsString(nameParam, "n", "name", "The document name stored in the global state.")
	ap.SupportsString(scopeParam, "", "unit", "The main scope of the document, e.g. mm.")
	ap.SupportsString(sourceParam, "", "source", "The application recorded as the document source.")
	ap.SupportsFlag(forceFlag, "f", "Overwrite an existing file.")
	return ap
}

func (cmd NewCmd) Exec(ctx context.Context, commandStr string, args []string, dEnv *cli.Env) int {
	ap := cmd.ArgParser()
	apr, usage, err := cli.ParseArgs(ap, commandStr, args, newDocs)
	if err != nil {
		return HandleParseErr(err, usage)
	}

	if verr := requireArgs(apr, 1, "new requires a file name"); verr != nil {
		return HandleVErrAndExitCode(verr, usage)
	}
	path := apr.Arg(0)

	if exists, _ := dEnv.FS.Exists(path); exists && !apr.Contains(forceFlag) {
		return HandleVErrAndExitCode(errhand.BuildDError("error: %s already exists, use --force to overwrite", path).Build(), usage)
	}

	doc := duc.NewDocument(apr.GetValueOrDefault(sourceParam, defaultSource))
	doc.GlobalState.Name = apr.GetValueOrDefault(nameParam, "")
	if scope, ok := apr.GetValue(scopeParam); ok {
		doc.GlobalState.MainScope = scope
		doc.LocalState.Scope = scope
	}

	format := docio.FormatForPath(path)
	if format == docio.FormatRaw && dEnv.Config.Pack.Compress && !strings.HasSuffix(strings.ToLower(path), docio.Ext) {
		format = docio.FormatSnappy
	}

	if err := dEnv.Store().SaveAs(path, doc, format); err != nil {
		return HandleVErrAndExitCode(errhand.BuildDError("error: document %s could not be saved", path).AddCause(err).Build(), usage)
	}
	return 0
}
