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
	"github.com/ducflair/duc-sub004/libraries/duccore/duc"
	"github.com/ducflair/duc-sub004/libraries/utils/argparser"
)

var versionDocs = cli.CommandDocumentationContent{
	ShortDesc: "Displays the version of the duc tool",
	LongDesc:  "Displays the version of the duc tool and the document schema version it writes.",
	Synopsis:  []string{""},
}

type VersionCmd struct {
	VersionStr string
}

func (cmd VersionCmd) Name() string {
	return "version"
}

func (cmd VersionCmd) Description() string {
	return "Displays the current duc version."
}

func (cmd VersionCmd) ArgParser() *argparser.ArgParser {
	return argparser.NewArgParserWithMaxArgs(cmd.Name(), 0)
}

func (cmd VersionCmd) Exec(ctx context.Context, commandStr string, args []string, dEnv *cli.Env) int {
	ap := cmd.ArgParser()
	_, usage, err := cli.ParseArgs(ap, commandStr, args, versionDocs)
	if err != nil {
		return HandleParseErr(err, usage)
	}

	cli.Println("duc version", cmd.VersionStr)
	cli.Println("document schema version", duc.CurrentVersion)
	return 0
}
