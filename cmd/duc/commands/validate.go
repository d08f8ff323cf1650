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
	"runtime"

	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"

	"github.com/ducflair/duc-sub004/cmd/duc/cli"
	"github.com/ducflair/duc-sub004/cmd/duc/errhand"
	"github.com/ducflair/duc-sub004/libraries/duccore/duc"
	"github.com/ducflair/duc-sub004/libraries/utils/argparser"
)

const strictFlag = "strict"

var validateDocs = cli.CommandDocumentationContent{
	ShortDesc: "Check that documents parse and are internally consistent",
	LongDesc: `Parses every given document and reports references to groups, regions, layers, frames, blocks and files that the document does not contain, as well as duplicate element ids.

A document that fails to parse is an error. Consistency issues are warnings unless <b>--strict</b> is given, in which case they fail the command as well. Documents are checked concurrently.`,
	Synopsis: []string{
		"[--strict] <file>...",
	},
}

type ValidateCmd struct{}

func (cmd ValidateCmd) Name() string {
	return "validate"
}

func (cmd ValidateCmd) Description() string {
	return "Check documents for parse errors and dangling references."
}

func (cmd ValidateCmd) ArgParser() *argparser.ArgParser {
	ap := argparser.NewArgParserWithVariableArgs(cmd.Name())
	ap.ArgListHelp = append(ap.ArgListHelp, [2]string{"file", "One or more documents to validate."})
	ap.SupportsFlag(strictFlag, "", "Treat consistency issues as errors.")
	return ap
}

type validation struct {
	path     string
	elements int
	issues   []duc.Issue
	err      error
}

func (cmd ValidateCmd) Exec(ctx context.Context, commandStr string, args []string, dEnv *cli.Env) int {
	ap := cmd.ArgParser()
	apr, usage, err := cli.ParseArgs(ap, commandStr, args, validateDocs)
	if err != nil {
		return HandleParseErr(err, usage)
	}

	if verr := requireArgs(apr, 1, "validate requires at least one document"); verr != nil {
		return HandleVErrAndExitCode(verr, usage)
	}

	results, err := validateAll(ctx, dEnv, apr.Args)
	if err != nil {
		return HandleVErrAndExitCode(errhand.BuildDError("error: validation interrupted").AddCause(err).Build(), usage)
	}

	strict := apr.Contains(strictFlag)
	failed := 0
	for _, res := range results {
		switch {
		case res.err != nil:
			failed++
			cli.PrintErrln(color.RedString("FAIL  %s", res.path))
			cli.PrintErrln("      " + res.err.Error())
		case len(res.issues) > 0:
			if strict {
				failed++
			}
			cli.Println(color.YellowString("WARN  %s (%d elements, %d issues)", res.path, res.elements, len(res.issues)))
			for _, issue := range res.issues {
				cli.Println("      " + issue.String())
			}
		default:
			cli.Println(color.GreenString("OK    %s (%d elements)", res.path, res.elements))
		}
	}

	if failed > 0 {
		cli.PrintErrf("%d of %d documents failed validation\n", failed, len(results))
		return 1
	}
	return 0
}

// validateAll loads every document in |paths| concurrently. Per-document
// failures are recorded in the results; the returned error is only set when
// |ctx| is canceled.
func validateAll(ctx context.Context, dEnv *cli.Env, paths []string) ([]validation, error) {
	results := make([]validation, len(paths))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		i, path := i, path
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res := validation{path: path}
			doc, err := dEnv.Store().Load(path)
			if err != nil {
				res.err = err
			} else {
				res.elements = len(doc.Elements)
				res.issues = doc.Lint()
			}

			dEnv.Logger.WithField("path", path).WithField("issues", len(res.issues)).Debug("validated document")
			results[i] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
