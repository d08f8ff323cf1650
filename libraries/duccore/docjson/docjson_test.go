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


package docjson

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/ducflair/duc-sub004/libraries/duccore/duc"
)

func testDocument() *duc.Document {
	doc := duc.NewDocument("docjson-test")

	rect := &duc.RectangleElement{ElementBase: duc.NewElementBase("rect")}
	rect.Width, rect.Height = duc.PV(10), duc.PV(5.5)
	rect.StyleRefs = map[duc.StyleCategory]string{duc.StyleCategoryStroke: "thin"}
	rect.ZIndex = 1.5

	text := &duc.TextElement{ElementBase: duc.NewElementBase("text"), Text: "hello", LineHeight: 1.25}
	frame := &duc.FrameElement{StackElementBase: duc.StackElementBase{
		ElementBase: duc.NewElementBase("frame"),
		Stack:       duc.NewStackBase("Frame"),
		Clip:        true,
	}}
	line := &duc.LinearElement{
		ElementBase: duc.NewElementBase("line"),
		Points:      []duc.GeometricPoint{{X: 0, Y: 0}, {X: 3, Y: 4}},
	}
	inst := &duc.BlockInstanceElement{
		ElementBase:      duc.NewElementBase("inst"),
		BlockID:          "blk",
		ElementOverrides: map[string]string{"inner": `{"label":"x"}`},
		DuplicationArray: &duc.BlockDuplicationArray{Rows: 2, Cols: 3, RowSpacing: duc.PV(1), ColSpacing: duc.PV(2)},
	}
	doc.Elements = []duc.Element{rect, text, frame, line, inst}

	inner := &duc.EllipseElement{ElementBase: duc.NewElementBase("inner"), Ratio: 1}
	doc.Blocks = []*duc.Block{{
		ID:       "blk",
		Label:    "Door",
		Version:  3,
		Elements: []duc.Element{inner},
		Attributes: map[string]duc.BlockAttributeDefinition{
			"width": {Tag: "W", DefaultValue: "900", FieldLength: 4},
		},
	}}
	doc.Groups = []*duc.Group{{ID: "g", StackBase: duc.NewStackBase("group")}}
	op := duc.BooleanOperationSubtract
	doc.Regions = []*duc.Region{{ID: "r", StackBase: duc.NewStackBase("region"), BooleanOperation: &op}}
	doc.Layers = []*duc.Layer{{ID: "l", StackBase: duc.NewStackBase("layer"), Readonly: true}}
	doc.Dictionary["author"] = "someone"
	doc.Thumbnail = []byte{0x89, 'P', 'N', 'G'}
	doc.RendererState.DeletedElementIDs = []string{"gone"}
	doc.Files = map[string]*duc.ExternalFile{
		"f1": {ID: "f1", MimeType: "image/png", Data: []byte{1, 2, 3}, Created: 1700000000000},
	}
	return doc
}

func TestRoundTrip(t *testing.T) {
	doc := testDocument()

	for _, indent := range []int{0, 2} {
		data, err := Marshal(doc, Options{Indent: indent})
		require.NoError(t, err)

		parsed, err := Unmarshal(data)
		require.NoError(t, err)
		if d := cmp.Diff(doc, parsed, cmpopts.EquateEmpty()); d != "" {
			t.Errorf("documents differ after json round trip (-expected +actual):\n%s", d)
		}
	}
}

func TestElementEnvelopes(t *testing.T) {
	data, err := Marshal(testDocument(), Options{})
	require.NoError(t, err)

	assert.Equal(t, "rectangle", gjson.GetBytes(data, "elements.0.type").String())
	assert.Equal(t, "rect", gjson.GetBytes(data, "elements.0.value.ID").String())
	assert.Equal(t, "blockinstance", gjson.GetBytes(data, "elements.4.type").String())
	assert.Equal(t, "ellipse", gjson.GetBytes(data, "blocks.0.elements.0.type").String())
	assert.Equal(t, "someone", gjson.GetBytes(data, "dictionary.author").String())
	assert.Equal(t, "thin", gjson.GetBytes(data, "elements.0.value.StyleRefs.stroke").String())
}

func TestLayout(t *testing.T) {
	doc := testDocument()

	compact, err := Marshal(doc, Options{})
	require.NoError(t, err)
	assert.NotContains(t, string(compact), "\n")

	indented, err := Marshal(doc, Options{Indent: 4})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(indented), "{\n    \"type\": \"duc\""), string(indented[:40]))

	trimmed, err := Marshal(doc, Options{OmitFiles: true, OmitThumbnail: true})
	require.NoError(t, err)
	assert.False(t, gjson.GetBytes(trimmed, "files").Exists())
	assert.False(t, gjson.GetBytes(trimmed, "thumbnail").Exists())
	assert.True(t, gjson.GetBytes(compact, "files.f1").Exists())

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc, Options{}))
	assert.Equal(t, string(compact)+"\n", buf.String())
}

func TestUnmarshalErrors(t *testing.T) {
	_, err := Unmarshal([]byte(`{"elements":[{"type":"hexagon","value":{}}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hexagon")

	_, err = Unmarshal([]byte(`{"elements":`))
	assert.Error(t, err)

	_, err = Marshal(nil, Options{})
	assert.Error(t, err)
}

func TestUnmarshalMinimal(t *testing.T) {
	doc, err := Unmarshal([]byte(`{"type":"duc","elements":[{"type":"xray","value":{"ID":"x","Color":"red"}}]}`))
	require.NoError(t, err)
	require.Len(t, doc.Elements, 1)
	xray, ok := doc.Elements[0].(*duc.XRayElement)
	require.True(t, ok)
	assert.Equal(t, "x", xray.ID)
	assert.Equal(t, "red", xray.Color)
	assert.NotNil(t, doc.Dictionary)
	assert.Equal(t, []string{}, doc.RendererState.DeletedElementIDs)
}
