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
	"strings"

	"github.com/ducflair/duc-sub004/cmd/duc/cli"
	"github.com/ducflair/duc-sub004/cmd/duc/errhand"
	"github.com/ducflair/duc-sub004/libraries/duccore/docio"
	"github.com/ducflair/duc-sub004/libraries/duccore/duc"
	"github.com/ducflair/duc-sub004/libraries/utils/argparser"
)

// HandleVErrAndExitCode prints |verr|, and the usage if the error asks for
// it, and returns the process exit code.
func HandleVErrAndExitCode(verr errhand.VerboseError, usage cli.UsagePrinter) int {
	if verr != nil {
		if msg := verr.Verbose(); strings.TrimSpace(msg) != "" {
			cli.PrintErrln(msg)
		}

		if verr.ShouldPrintUsage() && usage != nil {
			usage()
		}

		return 1
	}

	return 0
}

func HandleParseErr(err error, usage cli.UsagePrinter) int {
	if err == argparser.ErrHelp {
		return 0
	}
	return HandleVErrAndExitCode(errhand.VerboseErrorFromError(err), usage)
}

func requireArgs(apr *argparser.ArgParseResults, n int, what string) errhand.VerboseError {
	if apr.NArg() < n {
		return errhand.BuildDError("error: %s", what).SetPrintUsage().Build()
	}
	return nil
}

func LoadDocument(dEnv *cli.Env, path string) (*duc.Document, errhand.VerboseError) {
	doc, err := dEnv.Store().Load(path)
	if err != nil {
		return nil, errhand.BuildDError("error: document %s could not be loaded", path).AddCause(err).Build()
	}
	return doc, nil
}

// UpdateDocument applies |fn| to the document at |path| and saves it in its
// original container. A VerboseError returned by |fn| is passed through.
func UpdateDocument(dEnv *cli.Env, path string, fn func(doc *duc.Document) error) errhand.VerboseError {
	if err := dEnv.Store().Update(path, fn); err != nil {
		if verr, ok := err.(errhand.VerboseError); ok {
			return verr
		}
		return errhand.BuildDError("error: document %s could not be updated", path).AddCause(err).Build()
	}
	return nil
}

func ReadDocumentFile(dEnv *cli.Env, path string) (*docio.File, errhand.VerboseError) {
	f, err := dEnv.Store().ReadFile(path)
	if err != nil {
		return nil, errhand.BuildDError("error: %s could not be read", path).AddCause(err).Build()
	}
	return f, nil
}
