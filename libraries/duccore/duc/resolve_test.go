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

package duc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func newRect(id string) *RectangleElement {
	return &RectangleElement{ElementBase: NewElementBase(id)}
}

func redStroke() ElementStroke {
	c := DefaultElementContent()
	c.Src = "#ff0000"
	return ElementStroke{Content: c, Width: PV(2)}
}

func TestEffectiveStyleID(t *testing.T) {
	doc := NewDocument("test")

	g1 := &Group{ID: "g1", StackBase: NewStackBase("g1")}
	g2 := &Group{ID: "g2", StackBase: NewStackBase("g2")}
	g2.StyleOverrides = map[StyleCategory]string{StyleCategoryText: "text-from-g2", StyleCategoryStroke: "stroke-from-g2"}
	reg := &Region{ID: "r1", StackBase: NewStackBase("r1")}
	reg.StyleOverrides = map[StyleCategory]string{StyleCategoryHatch: "hatch-from-region", StyleCategoryText: "text-from-region"}
	lyr := &Layer{ID: "l1", StackBase: NewStackBase("l1")}
	lyr.StyleOverrides = map[StyleCategory]string{StyleCategoryDimension: "dim-from-layer"}
	doc.Groups = []*Group{g1, g2}
	doc.Regions = []*Region{reg}
	doc.Layers = []*Layer{lyr}

	frame := &FrameElement{StackElementBase{ElementBase: NewElementBase("f1"), Stack: NewStackBase("frame")}}
	frame.Stack.StyleOverrides = map[StyleCategory]string{StyleCategoryBackground: "bg-from-frame"}

	rect := newRect("e1")
	rect.GroupIDs = []string{"g1", "g2"}
	rect.RegionIDs = []string{"r1"}
	rect.LayerID = strPtr("l1")
	rect.FrameID = strPtr("f1")
	rect.StyleRefs = map[StyleCategory]string{StyleCategoryStroke: "own-stroke"}
	doc.Elements = []Element{frame, rect}

	tests := []struct {
		cat      StyleCategory
		expected string
		found    bool
	}{
		{StyleCategoryStroke, "own-stroke", true},
		{StyleCategoryText, "text-from-g2", true},
		{StyleCategoryHatch, "hatch-from-region", true},
		{StyleCategoryDimension, "dim-from-layer", true},
		{StyleCategoryBackground, "bg-from-frame", true},
	}
	for _, test := range tests {
		t.Run(string(test.cat), func(t *testing.T) {
			id, ok := EffectiveStyleID(doc, rect, test.cat)
			assert.Equal(t, test.found, ok)
			assert.Equal(t, test.expected, id)
		})
	}

	frame.Stack.StyleOverrides = nil
	_, ok := EffectiveStyleID(doc, rect, StyleCategoryBackground)
	assert.False(t, ok)
}

func TestEffectiveStyleIDFrameCycle(t *testing.T) {
	doc := NewDocument("test")
	f1 := &FrameElement{StackElementBase{ElementBase: NewElementBase("f1"), Stack: NewStackBase("f1")}}
	f2 := &FrameElement{StackElementBase{ElementBase: NewElementBase("f2"), Stack: NewStackBase("f2")}}
	f1.FrameID = strPtr("f2")
	f2.FrameID = strPtr("f1")
	doc.Elements = []Element{f1, f2}

	_, ok := EffectiveStyleID(doc, f1, StyleCategoryStroke)
	assert.False(t, ok)
}

func TestEffectiveStrokes(t *testing.T) {
	doc := NewDocument("test")
	g := &Group{ID: "g", StackBase: NewStackBase("g")}
	g.Styles.StrokeOverride = []ElementStroke{redStroke()}
	doc.Groups = []*Group{g}

	rect := newRect("e1")
	rect.GroupIDs = []string{"g"}
	doc.Elements = []Element{rect}

	assert.Equal(t, []ElementStroke{redStroke()}, EffectiveStrokes(doc, rect))

	own := redStroke()
	own.Width = PV(5)
	rect.Styles.Stroke = []ElementStroke{own}
	assert.Equal(t, []ElementStroke{own}, EffectiveStrokes(doc, rect))
}

func TestEffectiveBackgroundsFromLayer(t *testing.T) {
	doc := NewDocument("test")
	bg := ElementBackground{Content: DefaultElementContent()}
	bg.Content.Src = "#00ff00"
	lyr := &Layer{ID: "l", StackBase: NewStackBase("l"), Overrides: &LayerOverrides{Stroke: redStroke(), Background: bg}}
	doc.Layers = []*Layer{lyr}

	rect := newRect("e1")
	rect.LayerID = strPtr("l")
	doc.Elements = []Element{rect}

	assert.Equal(t, []ElementBackground{bg}, EffectiveBackgrounds(doc, rect))
	assert.Equal(t, []ElementStroke{redStroke()}, EffectiveStrokes(doc, rect))

	rect.LayerID = nil
	assert.Empty(t, EffectiveBackgrounds(doc, rect))
}
