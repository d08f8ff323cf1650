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


package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/ducflair/duc-sub004/cmd/duc/cli"
	"github.com/ducflair/duc-sub004/cmd/duc/commands"
	"github.com/ducflair/duc-sub004/cmd/duc/commands/dictcmds"
	"github.com/ducflair/duc-sub004/cmd/duc/commands/thumbcmds"
	"github.com/ducflair/duc-sub004/cmd/duc/errhand"
	"github.com/ducflair/duc-sub004/libraries/utils/argparser"
	"github.com/ducflair/duc-sub004/libraries/utils/filesys"
)

const Version = "0.4.0"

const (
	verboseFlag = "verbose"
	configParam = "config"
	noColorFlag = "no-color"
)

var ducCommands = cli.NewSubCommandHandler("duc", "it's a duc document tool", []cli.Command{
	commands.NewCmd{},
	commands.InspectCmd{},
	commands.ValidateCmd{},
	commands.ExportCmd{},
	commands.ImportCmd{},
	commands.PackCmd{},
	dictcmds.Commands,
	thumbcmds.Commands,
	commands.ConfigCmd{},
	commands.VersionCmd{VersionStr: Version},
})

var globalDocs = cli.CommandDocumentationContent{
	ShortDesc: "Inspect and edit duc documents",
	LongDesc: `duc reads and writes duc CAD documents in their raw or snappy compressed containers.

Global options must precede the command name.`,
	Synopsis: []string{
		"[--verbose] [--config <file>] [--no-color] <command> [<args>]",
	},
}

func globalArgParser() *argparser.ArgParser {
	ap := argparser.NewArgParserWithVariableArgs("duc")
	ap.SupportsFlag(verboseFlag, "v", "Log debug output to stderr.")
	ap.SupportsString(configParam, "", "file", "Read configuration from this file instead of ~/.duc/config.yaml.")
	ap.SupportsFlag(noColorFlag, "", "Disable colored output.")
	return ap
}

func main() {
	os.Exit(runMain(os.Args[1:]))
}

func runMain(args []string) int {
	ap := globalArgParser()
	apr, remaining, err := ap.ParseGlobalArgs(args)
	if err == argparser.ErrHelp {
		cli.PrintHelpText("duc", globalDocs, ap)
		ducCommands.Exec(context.Background(), "duc", []string{"help"}, nil)
		return 0
	} else if err != nil {
		cli.PrintErrln(color.RedString("error: %s", err.Error()))
		cli.PrintUsage("duc", globalDocs.Synopsis, ap)
		return 1
	}

	if apr.Contains(noColorFlag) {
		color.NoColor = true
	}

	if len(remaining) == 0 {
		ducCommands.Exec(context.Background(), "duc", []string{"help"}, nil)
		return 1
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		cli.PrintErrln(color.RedString("error: could not determine the home directory: %s", err.Error()))
		return 1
	}

	cfgPath := apr.GetValueOrDefault(configParam, "")
	dEnv, err := cli.LoadEnv(filesys.LocalFS, homeDir, cfgPath, apr.Contains(verboseFlag))
	if err != nil {
		cli.PrintErrln(color.RedString("error: failed to load configuration"))
		cli.PrintErrln(color.RedString("cause: %s", err.Error()))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dEnv.Logger.WithField("command", remaining[0]).Debug("starting")
	var exitCode int
	verr := errhand.PanicToVError("error: duc "+remaining[0]+" failed unexpectedly", func() errhand.VerboseError {
		exitCode = ducCommands.Exec(ctx, "duc", remaining, dEnv)
		return nil
	})
	if verr != nil {
		cli.PrintErrln(verr.Verbose())
		return 1
	}
	return exitCode
}
