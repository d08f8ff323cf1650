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
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ducflair/duc-sub004/libraries/duccore/duc"
)

var equateEmpty = cmpopts.EquateEmpty()

func diff(expected, actual interface{}) string {
	return cmp.Diff(expected, actual, equateEmpty)
}

func strPtr(s string) *string { return &s }

func blendingPtr(b duc.Blending) *duc.Blending { return &b }

func opPtr(op duc.BooleanOperation) *duc.BooleanOperation { return &op }

func testStroke(color string, width float64) duc.ElementStroke {
	return duc.ElementStroke{
		Content: duc.ElementContent{
			Preference: duc.ContentPreferenceSolid,
			Src:        color,
			Visible:    true,
			Opacity:    0.75,
		},
		Width: duc.PrecisionValue{Value: width, Scoped: width * 10},
		Style: duc.StrokeStyle{
			Preference: duc.StrokePreferenceDashed,
			Dash:       []float64{4, 2, 1},
			Cap:        duc.StrokeCapRound,
			Join:       duc.StrokeJoinBevel,
		},
		Placement: duc.StrokePlacementOutside,
	}
}

func testBackground(color string) duc.ElementBackground {
	return duc.ElementBackground{Content: duc.ElementContent{
		Preference: duc.ContentPreferenceHatch,
		Src:        color,
		Visible:    false,
		Opacity:    0.5,
	}}
}

func testBase(id string) duc.ElementBase {
	b := duc.NewElementBase(id)
	b.Styles = duc.ElementStyles{
		Roundness:  duc.PV(3),
		Blending:   blendingPtr(duc.BlendingMultiply),
		Background: []duc.ElementBackground{testBackground("#abcdef")},
		Stroke:     []duc.ElementStroke{testStroke("#000000", 1), testStroke("#ff0000", 2.5)},
		Opacity:    0.9,
	}
	b.X = duc.PrecisionValue{Value: 10, Scoped: 100}
	b.Y = duc.PrecisionValue{Value: -20, Scoped: -200}
	b.Width = duc.PV(30)
	b.Height = duc.PV(40)
	b.Angle = 0.25
	b.Scope = "mm"
	b.Label = "label " + id
	b.Description = strPtr("")
	b.Locked = true
	b.IsAnnotative = true
	b.Seed = 12345
	b.Version = 7
	b.VersionNonce = -99
	b.Updated = 1700000000000
	b.Index = strPtr("a0")
	b.GroupIDs = []string{"g1", "g2"}
	b.RegionIDs = []string{"r1"}
	b.LayerID = strPtr("l1")
	b.Link = strPtr("https://example.com/" + id)
	b.CustomData = strPtr(`{"owner":"test","n":1}`)
	b.ZIndex = 2.5
	b.StyleRefs = map[duc.StyleCategory]string{duc.StyleCategoryText: "text-style-1"}
	return b
}

func testStack(label string) duc.StackBase {
	s := duc.NewStackBase(label)
	s.Description = strPtr("stack " + label)
	s.IsCollapsed = true
	s.Locked = true
	s.Styles = duc.StackLikeStyles{
		Opacity:            0.6,
		LabelingColor:      "#123456",
		StrokeOverride:     []duc.ElementStroke{testStroke("#00ff00", 0.5)},
		BackgroundOverride: []duc.ElementBackground{testBackground("#0000ff")},
	}
	s.StyleOverrides = map[duc.StyleCategory]string{
		duc.StyleCategoryStroke: "stroke-style-1",
		duc.StyleCategoryHatch:  "hatch-style-1",
	}
	return s
}

func testElements() []duc.Element {
	frame := &duc.FrameElement{StackElementBase: duc.StackElementBase{
		ElementBase:  testBase("frame"),
		Stack:        testStack("frame stack"),
		Clip:         true,
		LabelVisible: true,
	}}
	plot := &duc.PlotElement{
		StackElementBase: duc.StackElementBase{
			ElementBase: testBase("plot"),
			Stack:       testStack("plot stack"),
		},
		Style: duc.PlotStyle{Styles: duc.ElementStyles{Roundness: duc.PV(1), Opacity: 0.3}},
		Layout: duc.PlotLayout{Margins: duc.Margins{
			Top:    duc.PV(1),
			Right:  duc.PV(2),
			Bottom: duc.PV(3),
			Left:   duc.PV(4),
		}},
	}
	rect := &duc.RectangleElement{ElementBase: testBase("rect")}
	rect.FrameID = strPtr("frame")

	return []duc.Element{
		rect,
		&duc.EllipseElement{ElementBase: testBase("ellipse"), Ratio: 0.5, StartAngle: 0.1, EndAngle: 3.0, ShowAuxCrosshair: true},
		&duc.PolygonElement{ElementBase: testBase("polygon"), Sides: 6},
		&duc.LinearElement{
			ElementBase:  testBase("linear"),
			Points:       []duc.GeometricPoint{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: -3, Y: 4.5}},
			IsClosed:     true,
			WipeoutBelow: true,
		},
		&duc.TextElement{
			ElementBase:   testBase("text"),
			Text:          "hello\nworld",
			OriginalText:  "hello world",
			FontFamily:    "Roboto Mono",
			FontSize:      duc.PV(12),
			TextAlign:     duc.TextAlignCenter,
			VerticalAlign: duc.VerticalAlignBottom,
			LineHeight:    1.5,
			AutoResize:    true,
			ContainerID:   strPtr("rect"),
		},
		&duc.ImageElement{
			ElementBase:      testBase("image"),
			FileID:           strPtr("file-1"),
			Status:           duc.ImageStatusSaved,
			Scale:            [2]float64{-1, 1},
			Crop:             &duc.ImageCrop{X: 1, Y: 2, Width: 3, Height: 4, NaturalWidth: 640, NaturalHeight: 480},
			Filter:           &duc.ImageFilter{Brightness: 1.2, Contrast: 0.8},
			ClippingBoundary: []duc.GeometricPoint{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}},
		},
		frame,
		plot,
		&duc.XRayElement{
			ElementBase:     testBase("xray"),
			Color:           "#ff00ff",
			Origin:          duc.GeometricPoint{X: 5, Y: 6},
			Direction:       duc.GeometricPoint{X: 0.6, Y: 0.8},
			StartFromOrigin: true,
		},
		&duc.BlockInstanceElement{
			ElementBase:      testBase("instance"),
			BlockID:          "block-1",
			ElementOverrides: map[string]string{"block-rect": `{"x":5}`, duc.InstanceAttributesKey: `{"title":"Main"}`},
			DuplicationArray: &duc.BlockDuplicationArray{Rows: 2, Cols: 3, RowSpacing: duc.PV(10), ColSpacing: duc.PV(20)},
		},
	}
}

func testBlock() *duc.Block {
	return &duc.Block{
		ID:          "block-1",
		Label:       "title block",
		Description: strPtr("a reusable title block"),
		Version:     3,
		Readonly:    true,
		Elements: []duc.Element{
			&duc.RectangleElement{ElementBase: testBase("block-rect")},
			&duc.TextElement{ElementBase: testBase("block-text"), Text: "TITLE", LineHeight: 1.25},
		},
		Attributes: map[string]duc.BlockAttributeDefinition{
			"title": {Tag: "TITLE", DefaultValue: "untitled", Prompt: strPtr("Drawing title"), FieldLength: 32},
			"rev":   {Tag: "REV", DefaultValue: "A"},
		},
	}
}

func testGlobalState() *duc.GlobalState {
	return &duc.GlobalState{
		Name:                                 "site plan",
		ViewBackgroundColor:                  "#fafafa",
		MainScope:                            "m",
		DashSpacingScale:                     2.5,
		IsDashSpacingAffectedByViewportScale: true,
		ScopeExponentThreshold:               -2,
		DimensionsAssociativeByDefault:       true,
		UseAnnotativeScaling:                 true,
		DisplayPrecisionLinear:               4,
		DisplayPrecisionAngular:              0,
		PruningLevel:                         duc.PruningLevelAggressive,
	}
}

func testLocalState() *duc.LocalState {
	stroke := testStroke("#111111", 3)
	bg := testBackground("#222222")
	return &duc.LocalState{
		Scope:                  "cm",
		ActiveStandardID:       "iso",
		ScrollX:                duc.PrecisionValue{Value: 100, Scoped: 1000},
		ScrollY:                duc.PrecisionValue{Value: -50, Scoped: -500},
		Zoom:                   0.25,
		ActiveGridSettings:     []string{"grid-a", "grid-b"},
		IsBindingEnabled:       false,
		CurrentItemStroke:      &stroke,
		CurrentItemBackground:  &bg,
		CurrentItemOpacity:     0.5,
		CurrentItemFontFamily:  "Inter",
		CurrentItemFontSize:    duc.PV(14),
		CurrentItemTextAlign:   duc.TextAlignRight,
		CurrentItemRoundness:   duc.PV(2),
		PenMode:                true,
		ViewModeEnabled:        true,
		ObjectsSnapModeEnabled: false,
		GridModeEnabled:        true,
		OutlineModeEnabled:     true,
		ManualSaveMode:         true,
	}
}

func testDocument() *duc.Document {
	doc := duc.NewDocument("encoding-test")
	doc.GlobalState = testGlobalState()
	doc.LocalState = testLocalState()
	doc.Elements = testElements()
	doc.Blocks = []*duc.Block{testBlock()}
	doc.Groups = []*duc.Group{
		{ID: "g1", StackBase: testStack("group one")},
		{ID: "g2", StackBase: duc.NewStackBase("group two")},
	}
	doc.Regions = []*duc.Region{
		{ID: "r1", StackBase: testStack("region"), BooleanOperation: opPtr(duc.BooleanOperationSubtract)},
		{ID: "r2", StackBase: duc.NewStackBase("open region")},
	}
	doc.Layers = []*duc.Layer{
		{
			ID:        "l1",
			StackBase: testStack("layer"),
			Readonly:  true,
			Overrides: &duc.LayerOverrides{Stroke: testStroke("#333333", 1), Background: testBackground("#444444")},
		},
	}
	doc.Dictionary = map[string]string{"author": "test", "project": "duc", "": "empty key"}
	doc.Thumbnail = []byte{0x89, 'P', 'N', 'G', 1, 2, 3}
	doc.RendererState = duc.RendererState{DeletedElementIDs: []string{"old-1", "old-2"}}
	lr := int64(1700000001000)
	doc.Files = map[string]*duc.ExternalFile{
		"file-1": {ID: "file-1", MimeType: "image/png", Data: []byte{1, 2, 3, 4}, Created: 1700000000000, LastRetrieved: &lr},
		"file-2": {ID: "file-2", MimeType: "image/svg+xml", Data: []byte("<svg/>"), Created: 1},
	}
	return doc
}
