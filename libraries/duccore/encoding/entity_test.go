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

package encoding

import (
	"testing"

	fb "github.com/dolthub/flatbuffers/v23/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducflair/duc-sub004/gen/fb/serial"
	"github.com/ducflair/duc-sub004/libraries/duccore/duc"
)

func TestElementRoundTrip(t *testing.T) {
	for _, el := range testElements() {
		el := el
		t.Run(string(el.Type()), func(t *testing.T) {
			buf, err := SerializeElement(el)
			require.NoError(t, err)
			assert.Equal(t, serial.ElementWrapperFileID, serial.GetFileID(buf))

			parsed, err := ParseElement(buf)
			require.NoError(t, err)
			assert.Equal(t, el.Type(), parsed.Type())
			if d := diff(el, parsed); d != "" {
				t.Errorf("element round trip mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestElementDefaultsRoundTrip(t *testing.T) {
	tests := []duc.Element{
		&duc.RectangleElement{ElementBase: duc.NewElementBase("r")},
		&duc.EllipseElement{ElementBase: duc.NewElementBase("e"), Ratio: 1},
		&duc.TextElement{ElementBase: duc.NewElementBase("t"), LineHeight: 1.25},
		&duc.ImageElement{ElementBase: duc.NewElementBase("i"), Scale: [2]float64{1, 1}},
		&duc.FrameElement{StackElementBase: duc.StackElementBase{
			ElementBase: duc.NewElementBase("f"),
			Stack:       duc.NewStackBase(""),
		}},
		&duc.BlockInstanceElement{ElementBase: duc.NewElementBase("bi"), BlockID: "b"},
	}
	for _, el := range tests {
		buf, err := SerializeElement(el)
		require.NoError(t, err)
		parsed, err := ParseElement(buf)
		require.NoError(t, err)
		assert.Empty(t, diff(el, parsed), "%s", el.Type())
	}
}

func TestXRayIsolation(t *testing.T) {
	xray := &duc.XRayElement{
		ElementBase:     testBase("xray"),
		Color:           "#ff00ff",
		Origin:          duc.GeometricPoint{X: 1, Y: 1},
		Direction:       duc.GeometricPoint{X: 0, Y: 1},
		StartFromOrigin: true,
	}
	buf, err := SerializeElement(xray)
	require.NoError(t, err)

	parsed, err := ParseElement(buf)
	require.NoError(t, err)
	switch el := parsed.(type) {
	case *duc.XRayElement:
		assert.Equal(t, xray.Color, el.Color)
		assert.Equal(t, xray.Origin, el.Origin)
		assert.Equal(t, xray.Direction, el.Direction)
		assert.True(t, el.StartFromOrigin)
	default:
		t.Fatalf("x-ray parsed as %T", parsed)
	}
	assert.Equal(t, duc.ElementTypeXRay, parsed.Type())
	assert.Equal(t, "xray", parsed.Base().ID)

	// a linear element with the same base does not gain x-ray attributes
	linear := &duc.LinearElement{ElementBase: testBase("linear")}
	buf, err = SerializeElement(linear)
	require.NoError(t, err)
	parsed, err = ParseElement(buf)
	require.NoError(t, err)
	_, isXRay := parsed.(*duc.XRayElement)
	assert.False(t, isXRay)
	assert.IsType(t, &duc.LinearElement{}, parsed)
}

func TestSerializeElementMalformed(t *testing.T) {
	t.Run("missing id", func(t *testing.T) {
		_, err := SerializeElement(&duc.PolygonElement{ElementBase: duc.NewElementBase(""), Sides: 3})
		require.Error(t, err)
		assert.True(t, ErrMalformedEntity.Is(err))
	})

	t.Run("nil element", func(t *testing.T) {
		_, err := SerializeElement(nil)
		require.Error(t, err)
		assert.True(t, ErrMalformedEntity.Is(err))
	})

	t.Run("invalid custom data", func(t *testing.T) {
		base := duc.NewElementBase("r")
		base.CustomData = strPtr("{not json")
		_, err := SerializeElement(&duc.RectangleElement{ElementBase: base})
		require.Error(t, err)
		assert.True(t, ErrMalformedEntity.Is(err))
	})

	t.Run("missing block id", func(t *testing.T) {
		_, err := SerializeElement(&duc.BlockInstanceElement{ElementBase: duc.NewElementBase("bi")})
		require.Error(t, err)
		assert.True(t, ErrMalformedEntity.Is(err))
	})

	t.Run("invalid override", func(t *testing.T) {
		_, err := SerializeElement(&duc.BlockInstanceElement{
			ElementBase:      duc.NewElementBase("bi"),
			BlockID:          "b",
			ElementOverrides: map[string]string{"child": "{"},
		})
		require.Error(t, err)
		assert.True(t, ErrMalformedEntity.Is(err))
	})
}

func finishWrapper(b *fb.Builder, typ serial.Element, variant fb.UOffsetT) []byte {
	serial.ElementWrapperStart(b)
	serial.ElementWrapperAddElementType(b, typ)
	serial.ElementWrapperAddElement(b, variant)
	w := serial.ElementWrapperEnd(b)
	return serial.FinishMessage(b, w, []byte(serial.ElementWrapperFileID))
}

func rectangleWithoutID(b *fb.Builder) fb.UOffsetT {
	serial.DucElementBaseStart(b)
	serial.DucElementBaseAddIsVisible(b, true)
	base := serial.DucElementBaseEnd(b)
	serial.DucRectangleElementStart(b)
	serial.DucRectangleElementAddBase(b, base)
	return serial.DucRectangleElementEnd(b)
}

func TestParseElementMalformed(t *testing.T) {
	t.Run("unknown variant", func(t *testing.T) {
		b := fb.NewBuilder(128)
		buf := finishWrapper(b, serial.Element(42), rectangleWithoutID(b))
		el, err := ParseElement(buf)
		require.Error(t, err)
		assert.True(t, ErrUnknownVariant.Is(err), "unexpected error: %v", err)
		assert.Nil(t, el)
	})

	t.Run("no variant", func(t *testing.T) {
		b := fb.NewBuilder(64)
		buf := finishWrapper(b, serial.ElementNONE, 0)
		_, err := ParseElement(buf)
		require.Error(t, err)
		assert.True(t, ErrUnknownVariant.Is(err), "unexpected error: %v", err)
	})

	t.Run("missing payload", func(t *testing.T) {
		b := fb.NewBuilder(64)
		buf := finishWrapper(b, serial.ElementDucTextElement, 0)
		_, err := ParseElement(buf)
		require.Error(t, err)
		assert.True(t, ErrMalformedEntity.Is(err), "unexpected error: %v", err)
	})

	t.Run("missing id", func(t *testing.T) {
		b := fb.NewBuilder(128)
		buf := finishWrapper(b, serial.ElementDucRectangleElement, rectangleWithoutID(b))
		_, err := ParseElement(buf)
		require.Error(t, err)
		assert.True(t, ErrMalformedEntity.Is(err), "unexpected error: %v", err)
	})

	t.Run("missing base", func(t *testing.T) {
		b := fb.NewBuilder(64)
		serial.DucPolygonElementStart(b)
		serial.DucPolygonElementAddSides(b, 5)
		poly := serial.DucPolygonElementEnd(b)
		buf := finishWrapper(b, serial.ElementDucPolygonElement, poly)
		_, err := ParseElement(buf)
		require.Error(t, err)
		assert.True(t, ErrMalformedEntity.Is(err), "unexpected error: %v", err)
	})

	t.Run("block instance without block id", func(t *testing.T) {
		b := fb.NewBuilder(128)
		id := b.CreateString("bi")
		serial.DucElementBaseStart(b)
		serial.DucElementBaseAddId(b, id)
		base := serial.DucElementBaseEnd(b)
		serial.DucBlockInstanceElementStart(b)
		serial.DucBlockInstanceElementAddBase(b, base)
		inst := serial.DucBlockInstanceElementEnd(b)
		buf := finishWrapper(b, serial.ElementDucBlockInstanceElement, inst)
		_, err := ParseElement(buf)
		require.Error(t, err)
		assert.True(t, ErrMalformedEntity.Is(err), "unexpected error: %v", err)
	})

	t.Run("custom data not json", func(t *testing.T) {
		b := fb.NewBuilder(128)
		id := b.CreateString("r")
		data := b.CreateString("{not json")
		serial.DucElementBaseStart(b)
		serial.DucElementBaseAddId(b, id)
		serial.DucElementBaseAddCustomData(b, data)
		base := serial.DucElementBaseEnd(b)
		serial.DucRectangleElementStart(b)
		serial.DucRectangleElementAddBase(b, base)
		rect := serial.DucRectangleElementEnd(b)
		buf := finishWrapper(b, serial.ElementDucRectangleElement, rect)
		_, err := ParseElement(buf)
		require.Error(t, err)
		assert.True(t, ErrMalformedEntity.Is(err), "unexpected error: %v", err)
	})

	t.Run("override not json", func(t *testing.T) {
		b := fb.NewBuilder(256)
		id := b.CreateString("bi")
		blockID := b.CreateString("blk")
		overrides := stringValueEntries(b, map[string]string{"rect-1": "[1, 2"}, serial.DucBlockInstanceElementStartElementOverridesVector)
		serial.DucElementBaseStart(b)
		serial.DucElementBaseAddId(b, id)
		base := serial.DucElementBaseEnd(b)
		serial.DucBlockInstanceElementStart(b)
		serial.DucBlockInstanceElementAddBase(b, base)
		serial.DucBlockInstanceElementAddBlockId(b, blockID)
		serial.DucBlockInstanceElementAddElementOverrides(b, overrides)
		inst := serial.DucBlockInstanceElementEnd(b)
		buf := finishWrapper(b, serial.ElementDucBlockInstanceElement, inst)
		_, err := ParseElement(buf)
		require.Error(t, err)
		assert.True(t, ErrMalformedEntity.Is(err), "unexpected error: %v", err)
	})
}

func TestDuplicationArray(t *testing.T) {
	inst := &duc.BlockInstanceElement{
		ElementBase:      duc.NewElementBase("bi"),
		BlockID:          "b",
		DuplicationArray: &duc.BlockDuplicationArray{Rows: 4, Cols: 2, RowSpacing: duc.PrecisionValue{Value: 1.5, Scoped: 15}, ColSpacing: duc.PV(-2)},
	}
	buf, err := SerializeElement(inst)
	require.NoError(t, err)
	parsed, err := ParseElement(buf)
	require.NoError(t, err)
	got := parsed.(*duc.BlockInstanceElement)
	require.NotNil(t, got.DuplicationArray)
	assert.Equal(t, *inst.DuplicationArray, *got.DuplicationArray)
	assert.Equal(t, 8, got.DuplicationArray.Count())

	inst.DuplicationArray = nil
	buf, err = SerializeElement(inst)
	require.NoError(t, err)
	parsed, err = ParseElement(buf)
	require.NoError(t, err)
	assert.Nil(t, parsed.(*duc.BlockInstanceElement).DuplicationArray)
}

func TestGroupRoundTrip(t *testing.T) {
	groups := []*duc.Group{
		{ID: "g1", StackBase: testStack("group")},
		{ID: "g2", StackBase: duc.NewStackBase("")},
	}
	for _, g := range groups {
		buf, err := SerializeGroup(g)
		require.NoError(t, err)
		parsed, err := ParseGroup(buf)
		require.NoError(t, err)
		assert.Empty(t, diff(g, parsed))
	}

	_, err := SerializeGroup(nil)
	assert.True(t, ErrMalformedEntity.Is(err))
	_, err = SerializeGroup(&duc.Group{})
	assert.True(t, ErrMalformedEntity.Is(err))
}

func TestRegionRoundTrip(t *testing.T) {
	for _, op := range []*duc.BooleanOperation{
		nil,
		opPtr(duc.BooleanOperationUnion),
		opPtr(duc.BooleanOperationSubtract),
		opPtr(duc.BooleanOperationIntersect),
		opPtr(duc.BooleanOperationExclude),
	} {
		r := &duc.Region{ID: "r", StackBase: testStack("region"), BooleanOperation: op}
		buf, err := SerializeRegion(r)
		require.NoError(t, err)
		parsed, err := ParseRegion(buf)
		require.NoError(t, err)
		assert.Empty(t, diff(r, parsed))
	}
}

// brokenStackBase writes a DucStackBase leaving out the label and/or the
// visibility flag.
func brokenStackBase(b *fb.Builder, withLabel, withVisibility bool) fb.UOffsetT {
	var label fb.UOffsetT
	if withLabel {
		label = b.CreateString("label")
	}
	serial.DucStackBaseStart(b)
	if withLabel {
		serial.DucStackBaseAddLabel(b, label)
	}
	if withVisibility {
		serial.DucStackBaseAddIsVisible(b, true)
	}
	serial.DucStackBaseAddLocked(b, true)
	return serial.DucStackBaseEnd(b)
}

func TestBrokenStackBase(t *testing.T) {
	tests := []struct {
		name      string
		withStack bool
		label     bool
		visible   bool
	}{
		{"missing stack base", false, false, false},
		{"missing label", true, false, true},
		{"missing visibility", true, true, false},
		{"missing both", true, false, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Run("region", func(t *testing.T) {
				b := fb.NewBuilder(128)
				var stack fb.UOffsetT
				if test.withStack {
					stack = brokenStackBase(b, test.label, test.visible)
				}
				id := b.CreateString("r1")
				serial.DucRegionStart(b)
				serial.DucRegionAddId(b, id)
				serial.DucRegionAddStackBase(b, stack)
				serial.DucRegionAddBooleanOperation(b, serial.BOOLEAN_OPERATIONUNION)
				off := serial.DucRegionEnd(b)
				buf := serial.FinishMessage(b, off, []byte(serial.DucRegionFileID))

				r, err := ParseRegion(buf)
				require.Error(t, err)
				assert.True(t, ErrInvalidSubstructure.Is(err), "unexpected error: %v", err)
				assert.Nil(t, r)
			})

			t.Run("group", func(t *testing.T) {
				b := fb.NewBuilder(128)
				var stack fb.UOffsetT
				if test.withStack {
					stack = brokenStackBase(b, test.label, test.visible)
				}
				id := b.CreateString("g1")
				serial.DucGroupStart(b)
				serial.DucGroupAddId(b, id)
				serial.DucGroupAddStackBase(b, stack)
				off := serial.DucGroupEnd(b)
				buf := serial.FinishMessage(b, off, []byte(serial.DucGroupFileID))

				g, err := ParseGroup(buf)
				require.Error(t, err)
				assert.True(t, ErrInvalidSubstructure.Is(err), "unexpected error: %v", err)
				assert.Nil(t, g)
			})

			t.Run("layer", func(t *testing.T) {
				b := fb.NewBuilder(128)
				var stack fb.UOffsetT
				if test.withStack {
					stack = brokenStackBase(b, test.label, test.visible)
				}
				id := b.CreateString("l1")
				serial.DucLayerStart(b)
				serial.DucLayerAddId(b, id)
				serial.DucLayerAddStackBase(b, stack)
				off := serial.DucLayerEnd(b)
				buf := serial.FinishMessage(b, off, []byte(serial.DucLayerFileID))

				l, err := ParseLayer(buf)
				require.Error(t, err)
				assert.True(t, ErrInvalidSubstructure.Is(err), "unexpected error: %v", err)
				assert.Nil(t, l)
			})

			t.Run("frame", func(t *testing.T) {
				b := fb.NewBuilder(256)
				var stack fb.UOffsetT
				if test.withStack {
					stack = brokenStackBase(b, test.label, test.visible)
				}
				id := b.CreateString("f1")
				serial.DucElementBaseStart(b)
				serial.DucElementBaseAddId(b, id)
				base := serial.DucElementBaseEnd(b)
				serial.DucStackElementBaseStart(b)
				serial.DucStackElementBaseAddBase(b, base)
				serial.DucStackElementBaseAddStackBase(b, stack)
				seb := serial.DucStackElementBaseEnd(b)
				serial.DucFrameElementStart(b)
				serial.DucFrameElementAddStackElementBase(b, seb)
				frame := serial.DucFrameElementEnd(b)
				buf := finishWrapper(b, serial.ElementDucFrameElement, frame)

				el, err := ParseElement(buf)
				require.Error(t, err)
				assert.True(t, ErrInvalidSubstructure.Is(err), "unexpected error: %v", err)
				assert.Nil(t, el)
			})
		})
	}
}

func TestStackBaseWithEmptyLabelIsValid(t *testing.T) {
	b := fb.NewBuilder(128)
	label := b.CreateString("")
	serial.DucStackBaseStart(b)
	serial.DucStackBaseAddLabel(b, label)
	serial.DucStackBaseAddIsVisible(b, false)
	stack := serial.DucStackBaseEnd(b)
	id := b.CreateString("g")
	serial.DucGroupStart(b)
	serial.DucGroupAddId(b, id)
	serial.DucGroupAddStackBase(b, stack)
	off := serial.DucGroupEnd(b)
	buf := serial.FinishMessage(b, off, []byte(serial.DucGroupFileID))

	g, err := ParseGroup(buf)
	require.NoError(t, err)
	assert.Equal(t, "", g.Label)
	assert.False(t, g.IsVisible)
	assert.Equal(t, 1.0, g.Styles.Opacity)
}

func TestLayerRoundTrip(t *testing.T) {
	layers := []*duc.Layer{
		{
			ID:        "l1",
			StackBase: testStack("layer"),
			Readonly:  true,
			Overrides: &duc.LayerOverrides{Stroke: testStroke("#000", 1), Background: testBackground("#fff")},
		},
		{ID: "l2", StackBase: duc.NewStackBase("bare")},
	}
	for _, l := range layers {
		buf, err := SerializeLayer(l)
		require.NoError(t, err)
		parsed, err := ParseLayer(buf)
		require.NoError(t, err)
		assert.Empty(t, diff(l, parsed))
	}
}

func TestBlockRoundTrip(t *testing.T) {
	blk := testBlock()
	buf, err := SerializeBlock(blk)
	require.NoError(t, err)
	parsed, err := ParseBlock(buf)
	require.NoError(t, err)
	if d := diff(blk, parsed); d != "" {
		t.Errorf("block round trip mismatch (-want +got):\n%s", d)
	}

	_, err = SerializeBlock(&duc.Block{Label: "no id"})
	assert.True(t, ErrMalformedEntity.Is(err))

	blk.Elements = append(blk.Elements, &duc.LinearElement{ElementBase: duc.NewElementBase("")})
	_, err = SerializeBlock(blk)
	assert.True(t, ErrMalformedEntity.Is(err))
}

func TestStateRoundTrip(t *testing.T) {
	t.Run("global", func(t *testing.T) {
		for _, gs := range []*duc.GlobalState{testGlobalState(), duc.NewGlobalState(), {}} {
			buf, err := SerializeGlobalState(gs)
			require.NoError(t, err)
			parsed, err := ParseGlobalState(buf)
			require.NoError(t, err)
			assert.Equal(t, gs, parsed)
		}
		_, err := SerializeGlobalState(nil)
		assert.True(t, ErrMalformedEntity.Is(err))
	})

	t.Run("local", func(t *testing.T) {
		for _, ls := range []*duc.LocalState{testLocalState(), duc.NewLocalState(), {}} {
			buf, err := SerializeLocalState(ls)
			require.NoError(t, err)
			parsed, err := ParseLocalState(buf)
			require.NoError(t, err)
			assert.Empty(t, diff(ls, parsed))
		}
		_, err := SerializeLocalState(nil)
		assert.True(t, ErrMalformedEntity.Is(err))
	})

	t.Run("renderer", func(t *testing.T) {
		rs := duc.RendererState{DeletedElementIDs: []string{"a", "b", "c"}}
		parsed, err := ParseRendererState(SerializeRendererState(rs))
		require.NoError(t, err)
		assert.Equal(t, rs, parsed)

		parsed, err = ParseRendererState(SerializeRendererState(duc.RendererState{}))
		require.NoError(t, err)
		assert.NotNil(t, parsed.DeletedElementIDs)
		assert.Empty(t, parsed.DeletedElementIDs)
	})
}

func TestDictionary(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		dict := map[string]string{"a": "1", "b": "", "ünïcode": "✓"}
		parsed, err := ParseDictionary(SerializeDictionary(dict))
		require.NoError(t, err)
		assert.Equal(t, dict, parsed)
	})

	t.Run("deterministic", func(t *testing.T) {
		keys := []string{"zeta", "alpha", "mu", "beta", "omega", "gamma"}
		forward := make(map[string]string)
		for _, k := range keys {
			forward[k] = "v-" + k
		}
		backward := make(map[string]string)
		for i := len(keys) - 1; i >= 0; i-- {
			backward[keys[i]] = "v-" + keys[i]
		}
		want := SerializeDictionary(forward)
		for i := 0; i < 20; i++ {
			require.Equal(t, want, SerializeDictionary(backward))
		}
	})

	t.Run("empty", func(t *testing.T) {
		parsed, err := ParseDictionary(SerializeDictionary(nil))
		require.NoError(t, err)
		assert.NotNil(t, parsed)
		assert.Empty(t, parsed)
	})

	t.Run("last write wins", func(t *testing.T) {
		b := fb.NewBuilder(128)
		entry := func(k, v string) fb.UOffsetT {
			ko, vo := b.CreateString(k), b.CreateString(v)
			serial.DictionaryEntryStart(b)
			serial.DictionaryEntryAddKey(b, ko)
			serial.DictionaryEntryAddValue(b, vo)
			return serial.DictionaryEntryEnd(b)
		}
		entries := []fb.UOffsetT{entry("k", "first"), entry("other", "x"), entry("k", "second")}
		serial.ExportedDataStateStartDictionaryVector(b, len(entries))
		for i := len(entries) - 1; i >= 0; i-- {
			b.PrependUOffsetT(entries[i])
		}
		vec := b.EndVector(len(entries))
		serial.ExportedDataStateStart(b)
		serial.ExportedDataStateAddDictionary(b, vec)
		root := serial.ExportedDataStateEnd(b)
		buf := serial.FinishMessage(b, root, []byte(serial.DictionaryFileID))

		parsed, err := ParseDictionary(buf)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"k": "second", "other": "x"}, parsed)
	})

	t.Run("from document", func(t *testing.T) {
		doc := testDocument()
		buf, err := SerializeDocument(doc)
		require.NoError(t, err)
		parsed, err := ParseDictionary(buf)
		require.NoError(t, err)
		assert.Equal(t, doc.Dictionary, parsed)
	})

	t.Run("foreign buffer", func(t *testing.T) {
		buf, err := SerializeGroup(&duc.Group{ID: "g", StackBase: duc.NewStackBase("g")})
		require.NoError(t, err)
		_, err = ParseDictionary(buf)
		require.Error(t, err)
		assert.True(t, ErrNotDucDocument.Is(err))
	})
}
