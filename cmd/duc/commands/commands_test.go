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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/ducflair/duc-sub004/cmd/duc/commands/cmdtest"
	"github.com/ducflair/duc-sub004/cmd/duc/errhand"
	"github.com/ducflair/duc-sub004/libraries/duccore/docio"
	"github.com/ducflair/duc-sub004/libraries/duccore/duc"
	"github.com/ducflair/duc-sub004/libraries/utils/config"
)

func TestHandleVErrAndExitCode(t *testing.T) {
	o := cmdtest.CaptureOutput(t)

	usageCalled := false
	usage := func() { usageCalled = true }

	assert.Equal(t, 0, HandleVErrAndExitCode(nil, usage))
	assert.False(t, usageCalled)

	assert.Equal(t, 1, HandleVErrAndExitCode(errhand.BuildDError("error: boom").Build(), usage))
	assert.False(t, usageCalled)
	assert.Contains(t, o.Err.String(), "error: boom")

	assert.Equal(t, 1, HandleVErrAndExitCode(errhand.BuildDError("error: again").SetPrintUsage().Build(), usage))
	assert.True(t, usageCalled)
}

func TestInspect(t *testing.T) {
	dEnv, _ := cmdtest.NewEnv(t)
	cmdtest.SaveDoc(t, dEnv, "plan.duc", cmdtest.SampleDoc())

	t.Run("summary", func(t *testing.T) {
		o := cmdtest.CaptureOutput(t)
		require.Equal(t, 0, cmdtest.Run(dEnv, InspectCmd{}, "duc inspect", "plan.duc"))

		out := o.Out.String()
		assert.Regexp(t, `container:\s+raw`, out)
		assert.Regexp(t, `type:\s+duc`, out)
		assert.Regexp(t, `source:\s+cmdtest`, out)
		assert.Regexp(t, `elements:\s+2\n`, out)
		assert.Regexp(t, `dictionary:\s+1\n`, out)
		assert.Regexp(t, `thumbnail:\s+none`, out)
		assert.NotContains(t, out, "rectangle")
	})

	t.Run("elements", func(t *testing.T) {
		o := cmdtest.CaptureOutput(t)
		require.Equal(t, 0, cmdtest.Run(dEnv, InspectCmd{}, "duc inspect", "--elements", "plan.duc"))
		assert.Regexp(t, `rectangle\s+2`, o.Out.String())
	})

	t.Run("missing file", func(t *testing.T) {
		o := cmdtest.CaptureOutput(t)
		assert.Equal(t, 1, cmdtest.Run(dEnv, InspectCmd{}, "duc inspect", "nope.duc"))
		assert.Contains(t, o.Err.String(), "nope.duc could not be read")
	})

	t.Run("no args", func(t *testing.T) {
		o := cmdtest.CaptureOutput(t)
		assert.Equal(t, 1, cmdtest.Run(dEnv, InspectCmd{}, "duc inspect"))
		assert.Contains(t, o.Err.String(), "inspect requires a document")
	})

	t.Run("help", func(t *testing.T) {
		o := cmdtest.CaptureOutput(t)
		assert.Equal(t, 0, cmdtest.Run(dEnv, InspectCmd{}, "duc inspect", "--help"))
		assert.Contains(t, o.Out.String(), "--elements")
	})
}

func TestValidate(t *testing.T) {
	dEnv, _ := cmdtest.NewEnv(t)
	cmdtest.SaveDoc(t, dEnv, "ok.duc", cmdtest.SampleDoc())

	dangling := cmdtest.SampleDoc()
	dangling.Elements[0].Base().GroupIDs = []string{"ghost"}
	cmdtest.SaveDoc(t, dEnv, "dangling.duc.sz", dangling)

	require.NoError(t, dEnv.FS.WriteFile("bad.duc", []byte("definitely not a document"), 0644))

	t.Run("warnings pass", func(t *testing.T) {
		o := cmdtest.CaptureOutput(t)
		require.Equal(t, 0, cmdtest.Run(dEnv, ValidateCmd{}, "duc validate", "ok.duc", "dangling.duc.sz"))

		out := o.Out.String()
		assert.Contains(t, out, "OK    ok.duc (2 elements)")
		assert.Contains(t, out, "WARN  dangling.duc.sz (2 elements, 1 issues)")
		assert.Contains(t, out, `rect-1: unknown group "ghost"`)
		assert.Empty(t, o.Err.String())
	})

	t.Run("strict", func(t *testing.T) {
		o := cmdtest.CaptureOutput(t)
		assert.Equal(t, 1, cmdtest.Run(dEnv, ValidateCmd{}, "duc validate", "--strict", "ok.duc", "dangling.duc.sz"))
		assert.Contains(t, o.Err.String(), "1 of 2 documents failed validation")
	})

	t.Run("parse failure", func(t *testing.T) {
		o := cmdtest.CaptureOutput(t)
		assert.Equal(t, 1, cmdtest.Run(dEnv, ValidateCmd{}, "duc validate", "bad.duc", "ok.duc", "missing.duc"))
		assert.Contains(t, o.Err.String(), "FAIL  bad.duc")
		assert.Contains(t, o.Err.String(), "FAIL  missing.duc")
		assert.Contains(t, o.Err.String(), "2 of 3 documents failed validation")
		assert.Contains(t, o.Out.String(), "OK    ok.duc")
	})

	t.Run("no args", func(t *testing.T) {
		cmdtest.CaptureOutput(t)
		assert.Equal(t, 1, cmdtest.Run(dEnv, ValidateCmd{}, "duc validate"))
	})
}

func TestExportImport(t *testing.T) {
	dEnv, _ := cmdtest.NewEnv(t)
	cmdtest.SaveDoc(t, dEnv, "plan.duc", cmdtest.SampleDoc())

	t.Run("stdout", func(t *testing.T) {
		o := cmdtest.CaptureOutput(t)
		require.Equal(t, 0, cmdtest.Run(dEnv, ExportCmd{}, "duc export", "plan.duc"))

		out := o.Out.String()
		assert.True(t, gjson.Valid(out))
		assert.Equal(t, "duc", gjson.Get(out, "type").String())
		assert.Equal(t, int64(2), gjson.Get(out, "elements.#").Int())
		assert.Equal(t, "rectangle", gjson.Get(out, "elements.1.type").String())
		assert.Equal(t, "someone", gjson.Get(out, "dictionary.author").String())
		assert.Contains(t, out, "\n  \"")
	})

	t.Run("file", func(t *testing.T) {
		o := cmdtest.CaptureOutput(t)
		require.Equal(t, 0, cmdtest.Run(dEnv, ExportCmd{}, "duc export", "--indent", "0", "--out", "plan.json", "plan.duc"))
		assert.Empty(t, o.Out.String())
		assert.Contains(t, o.Err.String(), "exported plan.duc to plan.json")

		data, err := dEnv.FS.ReadFile("plan.json")
		require.NoError(t, err)
		assert.NotContains(t, string(data[:len(data)-1]), "\n")
		assert.Equal(t, byte('\n'), data[len(data)-1])
	})

	t.Run("import", func(t *testing.T) {
		o := cmdtest.CaptureOutput(t)
		require.Equal(t, 0, cmdtest.Run(dEnv, ImportCmd{}, "duc import", "plan.json", "copy.duc.sz"))
		assert.Contains(t, o.Err.String(), "imported 2 elements into copy.duc.sz (snappy)")

		f, err := dEnv.Store().ReadFile("copy.duc.sz")
		require.NoError(t, err)
		assert.Equal(t, docio.FormatSnappy, f.Format)

		doc := cmdtest.LoadDoc(t, dEnv, "copy.duc.sz")
		require.Len(t, doc.Elements, 2)
		assert.Equal(t, "rect-2", doc.Elements[1].Base().ID)
		assert.Equal(t, "someone", doc.Dictionary["author"])
	})

	t.Run("import garbage", func(t *testing.T) {
		o := cmdtest.CaptureOutput(t)
		require.NoError(t, dEnv.FS.WriteFile("junk.json", []byte("[1, 2"), 0644))
		assert.Equal(t, 1, cmdtest.Run(dEnv, ImportCmd{}, "duc import", "junk.json", "junk.duc"))
		assert.Contains(t, o.Err.String(), "junk.json is not a document export")
		exists, _ := dEnv.FS.Exists("junk.duc")
		assert.False(t, exists)
	})
}

func TestPack(t *testing.T) {
	dEnv, _ := cmdtest.NewEnv(t)
	cmdtest.SaveDoc(t, dEnv, "plan.duc", cmdtest.SampleDoc())
	raw, err := dEnv.Store().ReadFile("plan.duc")
	require.NoError(t, err)

	t.Run("compress", func(t *testing.T) {
		o := cmdtest.CaptureOutput(t)
		require.Equal(t, 0, cmdtest.Run(dEnv, PackCmd{}, "duc pack", "--compress", "plan.duc"))
		assert.Contains(t, o.Out.String(), "-> plan.duc.sz (snappy")

		f, err := dEnv.Store().ReadFile("plan.duc.sz")
		require.NoError(t, err)
		assert.Equal(t, docio.FormatSnappy, f.Format)
		assert.Equal(t, raw.Fingerprint(), f.Fingerprint())
	})

	t.Run("decompress", func(t *testing.T) {
		cmdtest.CaptureOutput(t)
		require.Equal(t, 0, cmdtest.Run(dEnv, PackCmd{}, "duc pack", "-d", "-o", "out/raw.duc", "plan.duc.sz"))

		f, err := dEnv.Store().ReadFile("out/raw.duc")
		require.NoError(t, err)
		assert.Equal(t, docio.FormatRaw, f.Format)
		assert.Equal(t, raw.Buf, f.Buf)
	})

	t.Run("flags", func(t *testing.T) {
		o := cmdtest.CaptureOutput(t)
		assert.Equal(t, 1, cmdtest.Run(dEnv, PackCmd{}, "duc pack", "-c", "-d", "plan.duc"))
		assert.Contains(t, o.Err.String(), "mutually exclusive")

		assert.Equal(t, 1, cmdtest.Run(dEnv, PackCmd{}, "duc pack", "plan.duc"))
		assert.Contains(t, o.Err.String(), "one of --compress or --decompress is required")
	})

	t.Run("config default", func(t *testing.T) {
		cmdtest.CaptureOutput(t)
		dEnv.Config.Pack.Compress = true
		defer func() { dEnv.Config.Pack.Compress = false }()

		require.Equal(t, 0, cmdtest.Run(dEnv, PackCmd{}, "duc pack", "--out", "auto.duc.sz", "plan.duc"))
		data, err := dEnv.FS.ReadFile("auto.duc.sz")
		require.NoError(t, err)
		assert.Equal(t, docio.FormatSnappy, docio.DetectFormat(data))
	})
}

func TestPackedPath(t *testing.T) {
	tests := []struct {
		path     string
		format   docio.Format
		expected string
	}{
		{"plan.duc", docio.FormatSnappy, "plan.duc.sz"},
		{"plan.duc.sz", docio.FormatSnappy, "plan.duc.sz"},
		{"plan", docio.FormatSnappy, "plan.duc.sz"},
		{"plan.duc.sz", docio.FormatRaw, "plan.duc"},
		{"PLAN.DUC.SZ", docio.FormatRaw, "PLAN.DUC"},
		{"plan.duc", docio.FormatRaw, "plan.duc"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, packedPath(test.path, test.format), "%s as %s", test.path, test.format)
	}
}

func TestNew(t *testing.T) {
	dEnv, _ := cmdtest.NewEnv(t)

	t.Run("create", func(t *testing.T) {
		cmdtest.CaptureOutput(t)
		require.Equal(t, 0, cmdtest.Run(dEnv, NewCmd{}, "duc new", "--name", "Site", "--scope", "mm", "site.duc"))

		doc := cmdtest.LoadDoc(t, dEnv, "site.duc")
		assert.Equal(t, duc.DocumentType, doc.Type)
		assert.Equal(t, defaultSource, doc.Source)
		assert.Equal(t, "Site", doc.GlobalState.Name)
		assert.Equal(t, "mm", doc.GlobalState.MainScope)
		assert.Equal(t, "mm", doc.LocalState.Scope)
		assert.Empty(t, doc.Elements)
	})

	t.Run("exists", func(t *testing.T) {
		o := cmdtest.CaptureOutput(t)
		assert.Equal(t, 1, cmdtest.Run(dEnv, NewCmd{}, "duc new", "site.duc"))
		assert.Contains(t, o.Err.String(), "site.duc already exists")

		require.Equal(t, 0, cmdtest.Run(dEnv, NewCmd{}, "duc new", "--force", "--source", "tests", "site.duc"))
		assert.Equal(t, "tests", cmdtest.LoadDoc(t, dEnv, "site.duc").Source)
	})

	t.Run("compressed by config", func(t *testing.T) {
		cmdtest.CaptureOutput(t)
		dEnv.Config.Pack.Compress = true
		defer func() { dEnv.Config.Pack.Compress = false }()

		require.Equal(t, 0, cmdtest.Run(dEnv, NewCmd{}, "duc new", "drawing"))
		data, err := dEnv.FS.ReadFile("drawing")
		require.NoError(t, err)
		assert.Equal(t, docio.FormatSnappy, docio.DetectFormat(data))

		require.Equal(t, 0, cmdtest.Run(dEnv, NewCmd{}, "duc new", "plain.duc"))
		data, err = dEnv.FS.ReadFile("plain.duc")
		require.NoError(t, err)
		assert.Equal(t, docio.FormatRaw, docio.DetectFormat(data))
	})
}

func TestConfigCmd(t *testing.T) {
	dEnv, _ := cmdtest.NewEnv(t)

	t.Run("list", func(t *testing.T) {
		o := cmdtest.CaptureOutput(t)
		require.Equal(t, 0, cmdtest.Run(dEnv, ConfigCmd{}, "duc config", "--list"))
		assert.Equal(t, "export.indent = 2\nlog.level = info\npack.compress = false\nthumbnail.max_size = 256\n", o.Out.String())
	})

	t.Run("get", func(t *testing.T) {
		o := cmdtest.CaptureOutput(t)
		require.Equal(t, 0, cmdtest.Run(dEnv, ConfigCmd{}, "duc config", "--get", config.ThumbnailMaxSizeKey))
		assert.Equal(t, "256\n", o.Out.String())

		assert.Equal(t, 1, cmdtest.Run(dEnv, ConfigCmd{}, "duc config", "--get", "nope"))
		assert.Contains(t, o.Err.String(), "unknown config key nope")
	})

	t.Run("add", func(t *testing.T) {
		cmdtest.CaptureOutput(t)
		require.Equal(t, 0, cmdtest.Run(dEnv, ConfigCmd{}, "duc config", "--add", config.PackCompressKey, "true"))
		assert.True(t, dEnv.Config.Pack.Compress)

		saved, err := config.LoadCLIConfig(dEnv.FS, cmdtest.ConfigPath)
		require.NoError(t, err)
		assert.True(t, saved.Pack.Compress)
		assert.Equal(t, 256, saved.Thumbnail.MaxSize)
	})

	t.Run("add invalid", func(t *testing.T) {
		o := cmdtest.CaptureOutput(t)
		assert.Equal(t, 1, cmdtest.Run(dEnv, ConfigCmd{}, "duc config", "--add", config.ExportIndentKey, "wide"))
		assert.Contains(t, o.Err.String(), "invalid configuration")
		assert.Equal(t, 2, dEnv.Config.Export.Indent)

		assert.Equal(t, 1, cmdtest.Run(dEnv, ConfigCmd{}, "duc config", "--add", "colour", "blue"))
	})

	t.Run("unset", func(t *testing.T) {
		cmdtest.CaptureOutput(t)
		require.Equal(t, 0, cmdtest.Run(dEnv, ConfigCmd{}, "duc config", "--unset", config.PackCompressKey))
		assert.False(t, dEnv.Config.Pack.Compress)

		saved, err := config.LoadCLIConfig(dEnv.FS, cmdtest.ConfigPath)
		require.NoError(t, err)
		assert.False(t, saved.Pack.Compress)
	})

	t.Run("operations", func(t *testing.T) {
		o := cmdtest.CaptureOutput(t)
		assert.Equal(t, 1, cmdtest.Run(dEnv, ConfigCmd{}, "duc config"))
		assert.Equal(t, 1, cmdtest.Run(dEnv, ConfigCmd{}, "duc config", "--list", "--get", "log.level"))
		assert.Contains(t, o.Err.String(), "exactly one of")
	})
}

func TestVersion(t *testing.T) {
	dEnv, _ := cmdtest.NewEnv(t)
	o := cmdtest.CaptureOutput(t)

	require.Equal(t, 0, cmdtest.Run(dEnv, VersionCmd{VersionStr: "1.2.3"}, "duc version"))
	assert.Equal(t, "duc version 1.2.3\ndocument schema version "+duc.CurrentVersion+"\n", o.Out.String())
}
