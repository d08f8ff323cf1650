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

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/ducflair/duc-sub004/cmd/duc/cli"
	"github.com/ducflair/duc-sub004/cmd/duc/commands"
	"github.com/ducflair/duc-sub004/cmd/duc/errhand"
	"github.com/ducflair/duc-sub004/libraries/duccore/duc"
	"github.com/ducflair/duc-sub004/libraries/utils/argparser"
)

var setDocs = cli.CommandDocumentationContent{
	ShortDesc: "Store a dictionary value",
	LongDesc: `Stores <value> under <key>, replacing any previous value.

With <b>--json</b> the value must be valid JSON. With <b>--path</b> the existing value is treated as a JSON object and only the field at the sjson path is set; the value is stored as a string unless <b>--json</b> is also given.`,
	Synopsis: []string{
		"[--json] [--path <path>] <file> <key> <value>",
	},
}

type SetCmd struct{}

func (cmd SetCmd) Name() string {
	return "set"
}

func (cmd SetCmd) Description() string {
	return "Store a dictionary value."
}

func (cmd SetCmd) ArgParser() *argparser.ArgParser {
	ap := argparser.NewArgParserWithMaxArgs(cmd.Name(), 3)
	ap.ArgListHelp = append(ap.ArgListHelp,
		[2]string{"file", "The document to edit."},
		[2]string{"key", "The dictionary key."},
		[2]string{"value", "The value to store."})
	ap.SupportsFlag(jsonFlag, "j", "Require the value to be valid JSON.")
	ap.SupportsString(pathParam, "p", "path", "Set a single field of a JSON value with an sjson path.")
	return ap
}

func (cmd SetCmd) Exec(ctx context.Context, commandStr string, args []string, dEnv *cli.Env) int {
	ap := cmd.ArgParser()
	apr, usage, err := cli.ParseArgs(ap, commandStr, args, setDocs)
	if err != nil {
		return commands.HandleParseErr(err, usage)
	}
	if apr.NArg() != 3 {
		return commands.HandleVErrAndExitCode(errhand.BuildDError("error: set requires a document, a key and a value").SetPrintUsage().Build(), usage)
	}

	key, value := apr.Arg(1), apr.Arg(2)
	isJSON := apr.Contains(jsonFlag)
	if isJSON && !gjson.Valid(value) {
		return commands.HandleVErrAndExitCode(errhand.BuildDError("error: %q is not valid JSON", value).Build(), usage)
	}
	path, hasPath := apr.GetValue(pathParam)

	verr := commands.UpdateDocument(dEnv, apr.Arg(0), func(doc *duc.Document) error {
		if !hasPath {
			doc.Dictionary[key] = value
			return nil
		}

		existing, ok := doc.Dictionary[key]
		if !ok || existing == "" {
			existing = "{}"
		} else if !gjson.Valid(existing) {
			return errhand.BuildDError("error: value of %q is not JSON", key).Build()
		}

		var updated string
		var err error
		if isJSON {
			updated, err = sjson.SetRaw(existing, path, value)
		} else {
			updated, err = sjson.Set(existing, path, value)
		}
		if err != nil {
			return errhand.BuildDError("error: could not set %q in %q", path, key).AddCause(err).Build()
		}

		doc.Dictionary[key] = updated
		return nil
	})

	return commands.HandleVErrAndExitCode(verr, usage)
}
