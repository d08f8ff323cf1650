// Copyright 2019 Dolthub, Inc.
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


package cli

import (
	"github.com/ducflair/duc-sub004/libraries/utils/argparser"
)

type UsagePrinter func()

// ParseArgs parses |args| with |ap|. The returned UsagePrinter prints the
// short usage of the command. When the help flag is given the full help text
// is printed and argparser.ErrHelp is returned.
func ParseArgs(ap *argparser.ArgParser, commandStr string, args []string, docs CommandDocumentationContent) (*argparser.ArgParseResults, UsagePrinter, error) {
	usage := func() {
		PrintUsage(commandStr, docs.Synopsis, ap)
	}

	apr, err := ap.Parse(args)
	if err == argparser.ErrHelp {
		PrintHelpText(commandStr, docs, ap)
	}

	return apr, usage, err
}
