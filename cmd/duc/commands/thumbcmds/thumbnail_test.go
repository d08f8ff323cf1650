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


package thumbcmds

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducflair/duc-sub004/cmd/duc/cli"
	"github.com/ducflair/duc-sub004/cmd/duc/commands/cmdtest"
	"github.com/ducflair/duc-sub004/libraries/duccore/thumbnail"
)

const docPath = "plan.duc"

func newThumbEnv(t *testing.T) *cli.Env {
	dEnv, _ := cmdtest.NewEnv(t)
	cmdtest.SaveDoc(t, dEnv, docPath, cmdtest.SampleDoc())

	var buf bytes.Buffer
	img := imaging.New(600, 300, color.NRGBA{R: 0x20, G: 0x80, B: 0xc0, A: 0xff})
	require.NoError(t, imaging.Encode(&buf, img, imaging.JPEG))
	require.NoError(t, dEnv.FS.WriteFile("photo.jpg", buf.Bytes(), 0644))
	return dEnv
}

func runThumb(dEnv *cli.Env, args ...string) int {
	return cmdtest.Run(dEnv, Commands, "duc thumbnail", args...)
}

func thumbInfo(t *testing.T, dEnv *cli.Env) thumbnail.Info {
	thumb := cmdtest.LoadDoc(t, dEnv, docPath).Thumbnail
	require.NotEmpty(t, thumb)
	info, err := thumbnail.Inspect(thumb)
	require.NoError(t, err)
	return info
}

func TestThumbnailSet(t *testing.T) {
	dEnv := newThumbEnv(t)
	cmdtest.CaptureOutput(t)

	require.Equal(t, 0, runThumb(dEnv, "set", docPath, "photo.jpg"))
	info := thumbInfo(t, dEnv)
	assert.Equal(t, "png", info.Format)
	assert.Equal(t, 256, info.Width)
	assert.Equal(t, 128, info.Height)

	require.Equal(t, 0, runThumb(dEnv, "set", "--max-size", "64", docPath, "photo.jpg"))
	info = thumbInfo(t, dEnv)
	assert.Equal(t, 64, info.Width)
	assert.Equal(t, 32, info.Height)

	dEnv.Config.Thumbnail.MaxSize = 100
	require.Equal(t, 0, runThumb(dEnv, "set", docPath, "photo.jpg"))
	assert.Equal(t, 100, thumbInfo(t, dEnv).Width)

	require.Equal(t, 0, runThumb(dEnv, "set", "--raw", docPath, "photo.jpg"))
	photo, err := dEnv.FS.ReadFile("photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, photo, cmdtest.LoadDoc(t, dEnv, docPath).Thumbnail)
	assert.Equal(t, "jpeg", thumbInfo(t, dEnv).Format)
}

func TestThumbnailSetErrors(t *testing.T) {
	dEnv := newThumbEnv(t)
	o := cmdtest.CaptureOutput(t)
	require.NoError(t, dEnv.FS.WriteFile("notes.txt", []byte("not an image"), 0644))

	assert.Equal(t, 1, runThumb(dEnv, "set", docPath, "notes.txt"))
	assert.Contains(t, o.Err.String(), "notes.txt is not a supported image")

	assert.Equal(t, 1, runThumb(dEnv, "set", docPath, "missing.png"))
	assert.Contains(t, o.Err.String(), "could not read missing.png")

	assert.Equal(t, 1, runThumb(dEnv, "set", "--max-size", "big", docPath, "photo.jpg"))
	assert.Nil(t, cmdtest.LoadDoc(t, dEnv, docPath).Thumbnail)
}

func TestThumbnailExtract(t *testing.T) {
	dEnv := newThumbEnv(t)
	o := cmdtest.CaptureOutput(t)

	assert.Equal(t, 1, runThumb(dEnv, "extract", docPath, "out.png"))
	assert.Contains(t, o.Err.String(), "plan.duc has no thumbnail")

	require.Equal(t, 0, runThumb(dEnv, "set", docPath, "photo.jpg"))
	require.Equal(t, 0, runThumb(dEnv, "extract", docPath, "thumbs/out.png"))
	assert.Contains(t, o.Err.String(), "thumbnail to thumbs/out.png")

	extracted, err := dEnv.FS.ReadFile("thumbs/out.png")
	require.NoError(t, err)
	assert.Equal(t, cmdtest.LoadDoc(t, dEnv, docPath).Thumbnail, extracted)
}

func TestThumbnailRender(t *testing.T) {
	dEnv := newThumbEnv(t)
	cmdtest.CaptureOutput(t)

	require.Equal(t, 0, runThumb(dEnv, "render", docPath))
	info := thumbInfo(t, dEnv)
	assert.Equal(t, "png", info.Format)
	assert.Equal(t, 256, info.Width)
	assert.Equal(t, 130, info.Height)
}

func TestThumbnailRenderEmpty(t *testing.T) {
	dEnv, _ := cmdtest.NewEnv(t)
	o := cmdtest.CaptureOutput(t)

	doc := cmdtest.SampleDoc()
	doc.Elements = nil
	cmdtest.SaveDoc(t, dEnv, docPath, doc)

	assert.Equal(t, 1, runThumb(dEnv, "render", docPath))
	assert.Contains(t, o.Err.String(), "could not render a thumbnail")
	assert.Contains(t, o.Err.String(), thumbnail.ErrNothingToRender.Error())
}

func TestThumbnailClear(t *testing.T) {
	dEnv := newThumbEnv(t)
	cmdtest.CaptureOutput(t)

	require.Equal(t, 0, runThumb(dEnv, "set", "--raw", docPath, "photo.jpg"))
	require.NotNil(t, cmdtest.LoadDoc(t, dEnv, docPath).Thumbnail)

	require.Equal(t, 0, runThumb(dEnv, "clear", docPath))
	assert.Nil(t, cmdtest.LoadDoc(t, dEnv, docPath).Thumbnail)
}
