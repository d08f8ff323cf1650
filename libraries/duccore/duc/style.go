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

// PrecisionValue is a magnitude paired with its scope. Value is expressed in
// the document's main scope and Scoped in the owning element's scope.
type PrecisionValue struct {
	Value  float64
	Scoped float64
}

// PV returns a PrecisionValue whose scoped and unscoped magnitudes are equal.
func PV(v float64) PrecisionValue {
	return PrecisionValue{Value: v, Scoped: v}
}

type GeometricPoint struct {
	X float64
	Y float64
}

type StrokePlacement uint8

const (
	StrokePlacementInside StrokePlacement = iota
	StrokePlacementCenter
	StrokePlacementOutside
)

type StrokePreference uint8

const (
	StrokePreferenceSolid StrokePreference = iota
	StrokePreferenceDashed
	StrokePreferenceDotted
	StrokePreferenceCustom
)

type StrokeCap uint8

const (
	StrokeCapButt StrokeCap = iota
	StrokeCapRound
	StrokeCapSquare
)

type StrokeJoin uint8

const (
	StrokeJoinMiter StrokeJoin = iota
	StrokeJoinRound
	StrokeJoinBevel
)

type ContentPreference uint8

const (
	ContentPreferenceSolid ContentPreference = iota
	ContentPreferenceFill
	ContentPreferenceFit
	ContentPreferenceTile
	ContentPreferenceStretch
	ContentPreferenceHatch
)

type Blending uint8

const (
	BlendingNormal Blending = iota
	BlendingMultiply
	BlendingScreen
	BlendingOverlay
	BlendingDarken
	BlendingLighten
	BlendingDifference
	BlendingExclusion
)

// StyleCategory names the kind of style a stack or element refers to in its
// style override maps.
type StyleCategory string

const (
	StyleCategoryStroke     StyleCategory = "stroke"
	StyleCategoryBackground StyleCategory = "background"
	StyleCategoryText       StyleCategory = "text"
	StyleCategoryDimension  StyleCategory = "dimension"
	StyleCategoryHatch      StyleCategory = "hatch"
)

// ElementContent describes how a stroke or background is filled. Src is a
// color string, or a file id when Preference is Fill, Fit, Tile or Stretch.
type ElementContent struct {
	Preference ContentPreference
	Src        string
	Visible    bool
	Opacity    float64
}

// DefaultElementContent returns the content a reader substitutes for an
// absent content table.
func DefaultElementContent() ElementContent {
	return ElementContent{Visible: true, Opacity: 1}
}

type StrokeStyle struct {
	Preference StrokePreference
	Dash       []float64
	Cap        StrokeCap
	Join       StrokeJoin
}

type ElementStroke struct {
	Content   ElementContent
	Width     PrecisionValue
	Style     StrokeStyle
	Placement StrokePlacement
}

type ElementBackground struct {
	Content ElementContent
}

// ElementStyles are the visual styles owned by an element. A nil Blending
// means the element inherits the blending of whatever it is drawn over.
type ElementStyles struct {
	Roundness  PrecisionValue
	Blending   *Blending
	Background []ElementBackground
	Stroke     []ElementStroke
	Opacity    float64
}

// DefaultElementStyles returns fully opaque styles with no strokes or
// backgrounds.
func DefaultElementStyles() ElementStyles {
	return ElementStyles{Opacity: 1}
}
