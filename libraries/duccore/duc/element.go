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

// ElementType is the discriminant of an Element.
type ElementType string

const (
	ElementTypeRectangle     ElementType = "rectangle"
	ElementTypeEllipse       ElementType = "ellipse"
	ElementTypePolygon       ElementType = "polygon"
	ElementTypeLinear        ElementType = "linear"
	ElementTypeText          ElementType = "text"
	ElementTypeImage         ElementType = "image"
	ElementTypeFrame         ElementType = "frame"
	ElementTypePlot          ElementType = "plot"
	ElementTypeXRay          ElementType = "xray"
	ElementTypeBlockInstance ElementType = "blockinstance"
)

// Element is one of the closed set of element variants defined in this
// package. The base attributes of every variant are reachable through Base;
// variant attributes are only reachable by switching on the concrete type:
//
//	switch el := e.(type) {
//	case *duc.ImageElement:
//		...
//	case *duc.XRayElement:
//		...
//	}
type Element interface {
	Base() *ElementBase
	Type() ElementType
	isElement()
}

// ElementBase holds the attributes shared by every element variant.
type ElementBase struct {
	ID     string
	Styles ElementStyles

	X      PrecisionValue
	Y      PrecisionValue
	Width  PrecisionValue
	Height PrecisionValue
	// Angle is the rotation in radians around the element's center.
	Angle float64
	// Scope is the unit the element's scoped values are expressed in, e.g. "mm".
	Scope string

	Label       string
	Description *string

	IsVisible    bool
	Locked       bool
	IsPlot       bool
	IsAnnotative bool
	IsDeleted    bool

	Seed         int32
	Version      int32
	VersionNonce int32
	// Updated is the last modification time in unix milliseconds.
	Updated int64
	// Index is the fractional index used for z-ordering.
	Index *string

	GroupIDs  []string
	RegionIDs []string
	LayerID   *string
	FrameID   *string
	Link      *string
	// CustomData is an opaque JSON document owned by the embedding application.
	CustomData *string
	ZIndex     float32
	// StyleRefs maps a style category to the id of the style the element uses.
	// A nil map means the element sets none and inherits from its containers.
	StyleRefs map[StyleCategory]string
}

// NewElementBase returns an ElementBase with the reader defaults applied.
func NewElementBase(id string) ElementBase {
	return ElementBase{
		ID:        id,
		Styles:    DefaultElementStyles(),
		IsVisible: true,
	}
}

func (b *ElementBase) Base() *ElementBase {
	return b
}

func (b *ElementBase) isElement() {}

type RectangleElement struct {
	ElementBase
}

func (*RectangleElement) Type() ElementType { return ElementTypeRectangle }

type EllipseElement struct {
	ElementBase
	Ratio            float32
	StartAngle       float64
	EndAngle         float64
	ShowAuxCrosshair bool
}

func (*EllipseElement) Type() ElementType { return ElementTypeEllipse }

type PolygonElement struct {
	ElementBase
	Sides int32
}

func (*PolygonElement) Type() ElementType { return ElementTypePolygon }

type LinearElement struct {
	ElementBase
	Points       []GeometricPoint
	IsClosed     bool
	WipeoutBelow bool
}

func (*LinearElement) Type() ElementType { return ElementTypeLinear }

type TextAlign uint8

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

type VerticalAlign uint8

const (
	VerticalAlignTop VerticalAlign = iota
	VerticalAlignMiddle
	VerticalAlignBottom
)

type TextElement struct {
	ElementBase
	Text          string
	OriginalText  string
	FontFamily    string
	FontSize      PrecisionValue
	TextAlign     TextAlign
	VerticalAlign VerticalAlign
	LineHeight    float32
	AutoResize    bool
	ContainerID   *string
}

func (*TextElement) Type() ElementType { return ElementTypeText }

type ImageStatus uint8

const (
	ImageStatusPending ImageStatus = iota
	ImageStatusSaved
	ImageStatusError
)

// ImageCrop is the crop rectangle applied to an image, in the pixel space of
// the natural image size.
type ImageCrop struct {
	X             float64
	Y             float64
	Width         float64
	Height        float64
	NaturalWidth  float64
	NaturalHeight float64
}

type ImageFilter struct {
	Brightness float64
	Contrast   float64
}

type ImageElement struct {
	ElementBase
	// FileID references an entry of Document.Files.
	FileID *string
	Status ImageStatus
	// Scale is the flip scale. {-1, 1} mirrors horizontally.
	Scale            [2]float64
	Crop             *ImageCrop
	Filter           *ImageFilter
	ClippingBoundary []GeometricPoint
}

func (*ImageElement) Type() ElementType { return ElementTypeImage }

// StackElementBase is the shared shape of container elements that occupy
// geometry on the canvas, such as frames and plots.
type StackElementBase struct {
	ElementBase
	Stack        StackBase
	Clip         bool
	LabelVisible bool
}

type FrameElement struct {
	StackElementBase
}

func (*FrameElement) Type() ElementType { return ElementTypeFrame }

type Margins struct {
	Top    PrecisionValue
	Right  PrecisionValue
	Bottom PrecisionValue
	Left   PrecisionValue
}

type PlotLayout struct {
	Margins Margins
}

type PlotStyle struct {
	Styles ElementStyles
}

type PlotElement struct {
	StackElementBase
	Style  PlotStyle
	Layout PlotLayout
}

func (*PlotElement) Type() ElementType { return ElementTypePlot }

// XRayElement is an infinite construction line through Origin and Direction.
// When StartFromOrigin is set it is a ray rather than a line.
type XRayElement struct {
	ElementBase
	Color           string
	Origin          GeometricPoint
	Direction       GeometricPoint
	StartFromOrigin bool
}

func (*XRayElement) Type() ElementType { return ElementTypeXRay }

// BlockInstanceElement places a Block on the canvas.
type BlockInstanceElement struct {
	ElementBase
	BlockID string
	// ElementOverrides maps the id of an element contained in the block to a
	// JSON payload overriding that element's properties for this instance.
	ElementOverrides map[string]string
	DuplicationArray *BlockDuplicationArray
}

func (*BlockInstanceElement) Type() ElementType { return ElementTypeBlockInstance }

var _ Element = (*RectangleElement)(nil)
var _ Element = (*EllipseElement)(nil)
var _ Element = (*PolygonElement)(nil)
var _ Element = (*LinearElement)(nil)
var _ Element = (*TextElement)(nil)
var _ Element = (*ImageElement)(nil)
var _ Element = (*FrameElement)(nil)
var _ Element = (*PlotElement)(nil)
var _ Element = (*XRayElement)(nil)
var _ Element = (*BlockInstanceElement)(nil)
