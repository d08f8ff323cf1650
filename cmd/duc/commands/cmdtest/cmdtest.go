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


// Package cmdtest holds helpers shared by the command tests.
package cmdtest

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/ducflair/duc-sub004/cmd/duc/cli"
	"github.com/ducflair/duc-sub004/libraries/duccore/duc"
	"github.com/ducflair/duc-sub004/libraries/utils/config"
	"github.com/ducflair/duc-sub004/libraries/utils/filesys"
)

const (
	WorkingDir = "/work"
	ConfigPath = "/home/user/.duc/config.yaml"
)

// Output holds what a command wrote to stdout and stderr.
type Output struct {
	Out *bytes.Buffer
	Err *bytes.Buffer
}

// CaptureOutput redirects cli output into buffers for the rest of the test and
// disables color.
func CaptureOutput(t *testing.T) Output {
	o := Output{&bytes.Buffer{}, &bytes.Buffer{}}
	prevOut, prevErr, prevNoColor := cli.CliOut, cli.CliErr, color.NoColor
	cli.CliOut, cli.CliErr, color.NoColor = o.Out, o.Err, true
	t.Cleanup(func() {
		cli.CliOut, cli.CliErr, color.NoColor = prevOut, prevErr, prevNoColor
	})
	return o
}

// NewEnv returns an Env over an empty in memory filesystem rooted at
// WorkingDir, with the default config and a debug level null logger.
func NewEnv(t *testing.T) (*cli.Env, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return cli.NewEnv(filesys.EmptyInMemFS(WorkingDir), config.DefaultCLIConfig(), ConfigPath, logger), hook
}

// SampleDoc returns a small document with two rectangles, a dictionary entry
// and no thumbnail.
func SampleDoc() *duc.Document {
	doc := duc.NewDocument("cmdtest")
	for _, id := range []string{"rect-1", "rect-2"} {
		rect := &duc.RectangleElement{ElementBase: duc.NewElementBase(id)}
		rect.Width = duc.PV(42)
		rect.Height = duc.PV(21)
		doc.Elements = append(doc.Elements, rect)
	}
	doc.Dictionary["author"] = "someone"
	return doc
}

// SaveDoc writes |doc| to |path| in the env's store.
func SaveDoc(t *testing.T, dEnv *cli.Env, path string, doc *duc.Document) {
	require.NoError(t, dEnv.Store().Save(path, doc))
}

// LoadDoc reads the document at |path| from the env's store.
func LoadDoc(t *testing.T, dEnv *cli.Env, path string) *duc.Document {
	doc, err := dEnv.Store().Load(path)
	require.NoError(t, err)
	return doc
}

// Run executes |cmd| as |commandStr| with |args|.
func Run(dEnv *cli.Env, cmd cli.Command, commandStr string, args ...string) int {
	return cmd.Exec(context.Background(), commandStr, args, dEnv)
}
