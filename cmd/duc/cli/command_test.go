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
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	appName = "app"
)

type trackedCommand struct {
	name   string
	hidden bool
	called bool
	cmdStr string
	args   []string
}

func (tc *trackedCommand) Name() string        { return tc.name }
func (tc *trackedCommand) Description() string { return tc.name + " command" }
func (tc *trackedCommand) Hidden() bool        { return tc.hidden }

func (tc *trackedCommand) Exec(ctx context.Context, cmdStr string, args []string, dEnv *Env) int {
	tc.called = true
	tc.cmdStr = cmdStr
	tc.args = args
	return 0
}

func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	prevOut, prevErr, prevNoColor := CliOut, CliErr, color.NoColor
	CliOut, CliErr, color.NoColor = out, errOut, true
	t.Cleanup(func() {
		CliOut, CliErr, color.NoColor = prevOut, prevErr, prevNoColor
	})
	return out, errOut
}

func runCommand(root Command, commandLine string) int {
	tokens := strings.Split(commandLine, " ")

	if tokens[0] != appName {
		panic("Invalid test command line")
	}

	return root.Exec(context.Background(), appName, tokens[1:], nil)
}

func TestCommands(t *testing.T) {
	out, errOut := captureOutput(t)

	child1 := &trackedCommand{name: "child1"}
	grandChild1 := &trackedCommand{name: "grandchild1"}
	secret := &trackedCommand{name: "secret", hidden: true}
	commands := NewSubCommandHandler(appName, "test application", []Command{
		child1,
		NewSubCommandHandler("child2", "second child command", []Command{grandChild1}),
		secret,
	})

	assert.NotEqual(t, 0, runCommand(commands, "app"))
	assert.NotEqual(t, 0, runCommand(commands, "app invalid"))
	assert.Contains(t, errOut.String(), "Unknown Command invalid")
	assert.False(t, child1.called)
	assert.False(t, grandChild1.called)

	assert.Equal(t, 0, runCommand(commands, "app CHILD1 -flag -param=value arg0 arg1"))
	assert.True(t, child1.called)
	assert.Equal(t, "app child1", child1.cmdStr)
	assert.Equal(t, []string{"-flag", "-param=value", "arg0", "arg1"}, child1.args)
	assert.False(t, grandChild1.called)

	assert.NotEqual(t, 0, runCommand(commands, "app child2 -flag"))
	assert.False(t, grandChild1.called)

	assert.Equal(t, 0, runCommand(commands, "app child2 grandchild1 -flag -param=value arg0 arg1"))
	assert.True(t, grandChild1.called)
	assert.Equal(t, "app child2 grandchild1", grandChild1.cmdStr)
	assert.Equal(t, []string{"-flag", "-param=value", "arg0", "arg1"}, grandChild1.args)

	out.Reset()
	assert.Equal(t, 0, runCommand(commands, "app --help"))
	usage := out.String()
	assert.Contains(t, usage, "Valid commands for app are")
	assert.Contains(t, usage, "child1 - child1 command")
	assert.NotContains(t, usage, "secret")

	require.Equal(t, 0, runCommand(commands, "app secret"))
	assert.True(t, secret.called)
}
