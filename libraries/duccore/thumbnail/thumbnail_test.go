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


package thumbnail

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducflair/duc-sub004/libraries/duccore/duc"
)

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
	black = color.NRGBA{A: 255}
)

func solid(src string) duc.ElementContent {
	return duc.ElementContent{Preference: duc.ContentPreferenceSolid, Src: src, Visible: true, Opacity: 1}
}

func rect(id string, x, y, w, h float64, fill string) *duc.RectangleElement {
	r := &duc.RectangleElement{ElementBase: duc.NewElementBase(id)}
	r.X, r.Y, r.Width, r.Height = duc.PV(x), duc.PV(y), duc.PV(w), duc.PV(h)
	if fill != "" {
		r.Styles.Background = []duc.ElementBackground{{Content: solid(fill)}}
	}
	return r
}

func assertNear(t *testing.T, expected, actual color.NRGBA) {
	t.Helper()
	near := func(a, b uint8) bool {
		d := int(a) - int(b)
		return d >= -2 && d <= 2
	}
	assert.True(t, near(expected.R, actual.R) && near(expected.G, actual.G) && near(expected.B, actual.B) && near(expected.A, actual.A),
		"expected %v, got %v", expected, actual)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected color.NRGBA
		ok       bool
	}{
		{"#ff0000", red, true},
		{"#F00", red, true},
		{" #00ff00 ", green, true},
		{"#0000ff80", color.NRGBA{B: 255, A: 0x80}, true},
		{"#0f08", color.NRGBA{G: 255, A: 0x88}, true},
		{"blue", blue, true},
		{"Black", black, true},
		{"#12345", color.NRGBA{}, false},
		{"#gggggg", color.NRGBA{}, false},
		{"transparent", color.NRGBA{}, false},
		{"", color.NRGBA{}, false},
	}

	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			c, ok := ParseColor(test.in)
			assert.Equal(t, test.ok, ok)
			assert.Equal(t, test.expected, c)
		})
	}
}

func TestRasterizeRectangle(t *testing.T) {
	doc := duc.NewDocument("test")
	doc.Elements = []duc.Element{rect("r", 0, 0, 100, 50, "#ff0000")}

	img, err := Rasterize(doc, 104)
	require.NoError(t, err)
	assert.Equal(t, 104, img.Bounds().Dx())
	assert.Equal(t, 54, img.Bounds().Dy())

	assertNear(t, red, img.NRGBAAt(52, 27))
	assertNear(t, white, img.NRGBAAt(0, 0))
	assertNear(t, white, img.NRGBAAt(103, 53))
}

func TestRasterizeEllipse(t *testing.T) {
	e := &duc.EllipseElement{ElementBase: duc.NewElementBase("e"), Ratio: 1}
	e.Width, e.Height = duc.PV(100), duc.PV(100)
	e.Styles.Background = []duc.ElementBackground{{Content: solid("blue")}}

	doc := duc.NewDocument("test")
	doc.Elements = []duc.Element{e}

	img, err := Rasterize(doc, 104)
	require.NoError(t, err)
	assertNear(t, blue, img.NRGBAAt(52, 52))
	// corner of the bounding box lies outside the ellipse
	assertNear(t, white, img.NRGBAAt(5, 5))
}

func TestRasterizeZOrder(t *testing.T) {
	top := rect("top", 0, 0, 100, 100, "#0000ff")
	top.ZIndex = 2
	bottom := rect("bottom", 0, 0, 100, 100, "#ff0000")
	bottom.ZIndex = 1

	doc := duc.NewDocument("test")
	doc.Elements = []duc.Element{top, bottom}

	img, err := Rasterize(doc, 104)
	require.NoError(t, err)
	assertNear(t, blue, img.NRGBAAt(52, 52))
}

func TestRasterizeInheritsLayerBackground(t *testing.T) {
	layerID := "layer-1"
	r := rect("r", 0, 0, 100, 100, "")
	r.LayerID = &layerID

	doc := duc.NewDocument("test")
	doc.Elements = []duc.Element{r}
	doc.Layers = []*duc.Layer{{
		ID:        layerID,
		StackBase: duc.NewStackBase("layer"),
		Overrides: &duc.LayerOverrides{Background: duc.ElementBackground{Content: solid("#00ff00")}},
	}}

	img, err := Rasterize(doc, 104)
	require.NoError(t, err)
	assertNear(t, green, img.NRGBAAt(52, 52))
}

func TestRasterizeStroke(t *testing.T) {
	r := rect("r", 0, 0, 100, 100, "")
	r.Styles.Stroke = []duc.ElementStroke{{Content: solid("#000000"), Width: duc.PV(2)}}

	doc := duc.NewDocument("test")
	doc.Elements = []duc.Element{r}

	img, err := Rasterize(doc, 104)
	require.NoError(t, err)
	assertNear(t, black, img.NRGBAAt(2, 52))
	assertNear(t, black, img.NRGBAAt(52, 101))
	assertNear(t, white, img.NRGBAAt(52, 52))
}

func TestRasterizeSkipsHiddenElements(t *testing.T) {
	hidden := rect("hidden", 0, 0, 10, 10, "#ff0000")
	hidden.IsVisible = false
	deleted := rect("deleted", 0, 0, 10, 10, "#ff0000")
	deleted.IsDeleted = true
	tombstoned := rect("tombstoned", 0, 0, 10, 10, "#ff0000")
	xray := &duc.XRayElement{ElementBase: duc.NewElementBase("xray")}

	doc := duc.NewDocument("test")
	doc.Elements = []duc.Element{hidden, deleted, tombstoned, xray}
	doc.RendererState.DeletedElementIDs = []string{"tombstoned"}

	_, err := Rasterize(doc, 64)
	assert.Equal(t, ErrNothingToRender, err)

	_, err = Render(nil, 64)
	assert.Equal(t, ErrNothingToRender, err)
}

func TestRenderProducesPNG(t *testing.T) {
	doc := duc.NewDocument("test")
	doc.Elements = []duc.Element{
		rect("a", 0, 0, 252, 126, "#ff0000"),
		&duc.TextElement{ElementBase: duc.NewElementBase("t"), Text: "label"},
	}

	data, err := Render(doc, 0)
	require.NoError(t, err)

	info, err := Inspect(data)
	require.NoError(t, err)
	assert.Equal(t, "png", info.Format)
	assert.Equal(t, DefaultMaxSize, info.Width)
	assert.Equal(t, len(data), info.Bytes)
}

func TestFromImage(t *testing.T) {
	encode := func(w, h int, format imaging.Format) []byte {
		var buf bytes.Buffer
		require.NoError(t, imaging.Encode(&buf, imaging.New(w, h, blue), format))
		return buf.Bytes()
	}

	t.Run("downscales", func(t *testing.T) {
		thumb, err := FromImage(encode(600, 300, imaging.JPEG), 256)
		require.NoError(t, err)
		info, err := Inspect(thumb)
		require.NoError(t, err)
		assert.Equal(t, "png", info.Format)
		assert.Equal(t, 256, info.Width)
		assert.Equal(t, 128, info.Height)
	})

	t.Run("never upscales", func(t *testing.T) {
		thumb, err := FromImage(encode(100, 50, imaging.BMP), 256)
		require.NoError(t, err)
		img, format, err := Decode(thumb)
		require.NoError(t, err)
		assert.Equal(t, "png", format)
		assert.Equal(t, 100, img.Bounds().Dx())
		assert.Equal(t, 50, img.Bounds().Dy())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := FromImage([]byte("not an image"), 256)
		assert.Error(t, err)
		_, err = Inspect([]byte("not an image"))
		assert.Error(t, err)
	})
}
