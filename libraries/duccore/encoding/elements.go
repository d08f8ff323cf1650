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
	"fmt"

	fb "github.com/dolthub/flatbuffers/v23/go"

	"github.com/ducflair/duc-sub004/gen/fb/serial"
	"github.com/ducflair/duc-sub004/libraries/duccore/duc"
)

func serializeElementBase(b *fb.Builder, e *duc.ElementBase) (Ref, error) {
	if e.ID == "" {
		return Ref{}, ErrMalformedEntity.New("element", "missing id")
	}
	if e.CustomData != nil && *e.CustomData != "" && !duc.ValidJSON(*e.CustomData) {
		return Ref{}, ErrMalformedEntity.New("element "+e.ID, "custom data is not valid json")
	}

	id := b.CreateString(e.ID)
	styles := serializeElementStyles(b, e.Styles)
	scope := optionalString(b, e.Scope)
	label := optionalString(b, e.Label)
	desc := nullableString(b, e.Description)
	index := nullableString(b, e.Index)
	groupIDs := stringVector(b, e.GroupIDs, serial.DucElementBaseStartGroupIdsVector)
	regionIDs := stringVector(b, e.RegionIDs, serial.DucElementBaseStartRegionIdsVector)
	layerID := nullableString(b, e.LayerID)
	frameID := nullableString(b, e.FrameID)
	link := nullableString(b, e.Link)
	customData := nullableString(b, e.CustomData)
	styleRefs := styleRefEntries(b, e.StyleRefs, serial.DucElementBaseStartStyleRefsVector)

	serial.DucElementBaseStart(b)
	serial.DucElementBaseAddId(b, id)
	serial.DucElementBaseAddStyles(b, styles.off)
	serial.DucElementBaseAddX(b, serial.CreatePrecisionValue(b, e.X.Value, e.X.Scoped))
	serial.DucElementBaseAddY(b, serial.CreatePrecisionValue(b, e.Y.Value, e.Y.Scoped))
	serial.DucElementBaseAddWidth(b, serial.CreatePrecisionValue(b, e.Width.Value, e.Width.Scoped))
	serial.DucElementBaseAddHeight(b, serial.CreatePrecisionValue(b, e.Height.Value, e.Height.Scoped))
	serial.DucElementBaseAddAngle(b, e.Angle)
	serial.DucElementBaseAddScope(b, scope)
	serial.DucElementBaseAddLabel(b, label)
	serial.DucElementBaseAddDescription(b, desc)
	serial.DucElementBaseAddIsVisible(b, e.IsVisible)
	serial.DucElementBaseAddLocked(b, e.Locked)
	serial.DucElementBaseAddIsPlot(b, e.IsPlot)
	serial.DucElementBaseAddIsAnnotative(b, e.IsAnnotative)
	serial.DucElementBaseAddIsDeleted(b, e.IsDeleted)
	serial.DucElementBaseAddSeed(b, e.Seed)
	serial.DucElementBaseAddVersion(b, e.Version)
	serial.DucElementBaseAddVersionNonce(b, e.VersionNonce)
	serial.DucElementBaseAddUpdated(b, e.Updated)
	serial.DucElementBaseAddIndex(b, index)
	serial.DucElementBaseAddGroupIds(b, groupIDs)
	serial.DucElementBaseAddRegionIds(b, regionIDs)
	serial.DucElementBaseAddLayerId(b, layerID)
	serial.DucElementBaseAddFrameId(b, frameID)
	serial.DucElementBaseAddLink(b, link)
	serial.DucElementBaseAddCustomData(b, customData)
	serial.DucElementBaseAddZIndex(b, e.ZIndex)
	serial.DucElementBaseAddStyleRefs(b, styleRefs)
	return Ref{serial.DucElementBaseEnd(b)}, nil
}

func deserializeElementBase(t *serial.DucElementBase) (duc.ElementBase, error) {
	if t == nil {
		return duc.ElementBase{}, ErrMalformedEntity.New("element", "missing base")
	}
	if t.Id() == nil {
		return duc.ElementBase{}, ErrMalformedEntity.New("element", "missing id")
	}

	styleRefs, err := readStyleRefs(t.StyleRefsLength(), t.StyleRefs)
	if err != nil {
		return duc.ElementBase{}, err
	}
	customData := readNullableString(t.CustomData())
	if customData != nil && *customData != "" && !duc.ValidJSON(*customData) {
		return duc.ElementBase{}, ErrMalformedEntity.New("element "+string(t.Id()), "custom data is not valid json")
	}

	return duc.ElementBase{
		ID:           string(t.Id()),
		Styles:       deserializeElementStyles(t.Styles(nil)),
		X:            readPrecisionValue(t.X(nil)),
		Y:            readPrecisionValue(t.Y(nil)),
		Width:        readPrecisionValue(t.Width(nil)),
		Height:       readPrecisionValue(t.Height(nil)),
		Angle:        t.Angle(),
		Scope:        string(t.Scope()),
		Label:        string(t.Label()),
		Description:  readNullableString(t.Description()),
		IsVisible:    t.IsVisible(),
		Locked:       t.Locked(),
		IsPlot:       t.IsPlot(),
		IsAnnotative: t.IsAnnotative(),
		IsDeleted:    t.IsDeleted(),
		Seed:         t.Seed(),
		Version:      t.Version(),
		VersionNonce: t.VersionNonce(),
		Updated:      t.Updated(),
		Index:        readNullableString(t.Index()),
		GroupIDs:     readStrings(t.GroupIdsLength(), t.GroupIds),
		RegionIDs:    readStrings(t.RegionIdsLength(), t.RegionIds),
		LayerID:      readNullableString(t.LayerId()),
		FrameID:      readNullableString(t.FrameId()),
		Link:         readNullableString(t.Link()),
		CustomData:   customData,
		ZIndex:       t.ZIndex(),
		StyleRefs:    styleRefs,
	}, nil
}

// serializeElement writes the variant table for |el| and its ElementWrapper.
func serializeElement(b *fb.Builder, el duc.Element) (Ref, error) {
	if el == nil {
		return Ref{}, ErrMalformedEntity.New("element", "nil element")
	}

	var typ serial.Element
	var variant Ref
	var err error
	switch e := el.(type) {
	case *duc.RectangleElement:
		typ = serial.ElementDucRectangleElement
		variant, err = serializeRectangle(b, e)
	case *duc.EllipseElement:
		typ = serial.ElementDucEllipseElement
		variant, err = serializeEllipse(b, e)
	case *duc.PolygonElement:
		typ = serial.ElementDucPolygonElement
		variant, err = serializePolygon(b, e)
	case *duc.LinearElement:
		typ = serial.ElementDucLinearElement
		variant, err = serializeLinear(b, e)
	case *duc.TextElement:
		typ = serial.ElementDucTextElement
		variant, err = serializeText(b, e)
	case *duc.ImageElement:
		typ = serial.ElementDucImageElement
		variant, err = serializeImage(b, e)
	case *duc.FrameElement:
		typ = serial.ElementDucFrameElement
		variant, err = serializeFrame(b, e)
	case *duc.PlotElement:
		typ = serial.ElementDucPlotElement
		variant, err = serializePlot(b, e)
	case *duc.XRayElement:
		typ = serial.ElementDucXRayElement
		variant, err = serializeXRay(b, e)
	case *duc.BlockInstanceElement:
		typ = serial.ElementDucBlockInstanceElement
		variant, err = serializeBlockInstance(b, e)
	default:
		return Ref{}, ErrMalformedEntity.New("element", fmt.Sprintf("unsupported element type %T", el))
	}
	if err != nil {
		return Ref{}, err
	}

	serial.ElementWrapperStart(b)
	serial.ElementWrapperAddElementType(b, typ)
	serial.ElementWrapperAddElement(b, variant.off)
	return Ref{serial.ElementWrapperEnd(b)}, nil
}

func serializeElements(b *fb.Builder, els []duc.Element, start func(*fb.Builder, int) fb.UOffsetT) (fb.UOffsetT, error) {
	if len(els) == 0 {
		return 0, nil
	}
	refs := make([]Ref, len(els))
	for i, el := range els {
		var err error
		refs[i], err = serializeElement(b, el)
		if err != nil {
			return 0, err
		}
	}
	return refVector(b, refs, start), nil
}

// deserializeElement reads the discriminant of |w| before touching the
// variant table, then decodes exactly that variant.
func deserializeElement(w *serial.ElementWrapper) (duc.Element, error) {
	typ := w.ElementType()
	if typ == serial.ElementNONE || typ > serial.ElementDucBlockInstanceElement {
		return nil, ErrUnknownVariant.New(int(typ))
	}

	var tbl fb.Table
	if !w.Element(&tbl) {
		return nil, ErrMalformedEntity.New("element", fmt.Sprintf("%s without payload", typ))
	}

	switch typ {
	case serial.ElementDucRectangleElement:
		var t serial.DucRectangleElement
		t.Init(tbl.Bytes, tbl.Pos)
		return deserializeRectangle(&t)
	case serial.ElementDucEllipseElement:
		var t serial.DucEllipseElement
		t.Init(tbl.Bytes, tbl.Pos)
		return deserializeEllipse(&t)
	case serial.ElementDucPolygonElement:
		var t serial.DucPolygonElement
		t.Init(tbl.Bytes, tbl.Pos)
		return deserializePolygon(&t)
	case serial.ElementDucLinearElement:
		var t serial.DucLinearElement
		t.Init(tbl.Bytes, tbl.Pos)
		return deserializeLinear(&t)
	case serial.ElementDucTextElement:
		var t serial.DucTextElement
		t.Init(tbl.Bytes, tbl.Pos)
		return deserializeText(&t)
	case serial.ElementDucImageElement:
		var t serial.DucImageElement
		t.Init(tbl.Bytes, tbl.Pos)
		return deserializeImage(&t)
	case serial.ElementDucFrameElement:
		var t serial.DucFrameElement
		t.Init(tbl.Bytes, tbl.Pos)
		return deserializeFrame(&t)
	case serial.ElementDucPlotElement:
		var t serial.DucPlotElement
		t.Init(tbl.Bytes, tbl.Pos)
		return deserializePlot(&t)
	case serial.ElementDucXRayElement:
		var t serial.DucXRayElement
		t.Init(tbl.Bytes, tbl.Pos)
		return deserializeXRay(&t)
	case serial.ElementDucBlockInstanceElement:
		var t serial.DucBlockInstanceElement
		t.Init(tbl.Bytes, tbl.Pos)
		return deserializeBlockInstance(&t)
	default:
		return nil, ErrUnknownVariant.New(int(typ))
	}
}

func deserializeElements(n int, get func(*serial.ElementWrapper, int) bool) ([]duc.Element, error) {
	if n == 0 {
		return nil, nil
	}
	var els []duc.Element
	var w serial.ElementWrapper
	for i := 0; i < n; i++ {
		get(&w, i)
		el, err := deserializeElement(&w)
		if err != nil {
			return nil, err
		}
		els = append(els, el)
	}
	return els, nil
}

func serializeRectangle(b *fb.Builder, e *duc.RectangleElement) (Ref, error) {
	base, err := serializeElementBase(b, &e.ElementBase)
	if err != nil {
		return Ref{}, err
	}
	serial.DucRectangleElementStart(b)
	serial.DucRectangleElementAddBase(b, base.off)
	return Ref{serial.DucRectangleElementEnd(b)}, nil
}

func deserializeRectangle(t *serial.DucRectangleElement) (duc.Element, error) {
	base, err := deserializeElementBase(t.Base(nil))
	if err != nil {
		return nil, err
	}
	return &duc.RectangleElement{ElementBase: base}, nil
}

func serializeEllipse(b *fb.Builder, e *duc.EllipseElement) (Ref, error) {
	base, err := serializeElementBase(b, &e.ElementBase)
	if err != nil {
		return Ref{}, err
	}
	serial.DucEllipseElementStart(b)
	serial.DucEllipseElementAddBase(b, base.off)
	serial.DucEllipseElementAddRatio(b, e.Ratio)
	serial.DucEllipseElementAddStartAngle(b, e.StartAngle)
	serial.DucEllipseElementAddEndAngle(b, e.EndAngle)
	serial.DucEllipseElementAddShowAuxCrosshair(b, e.ShowAuxCrosshair)
	return Ref{serial.DucEllipseElementEnd(b)}, nil
}

func deserializeEllipse(t *serial.DucEllipseElement) (duc.Element, error) {
	base, err := deserializeElementBase(t.Base(nil))
	if err != nil {
		return nil, err
	}
	return &duc.EllipseElement{
		ElementBase:      base,
		Ratio:            t.Ratio(),
		StartAngle:       t.StartAngle(),
		EndAngle:         t.EndAngle(),
		ShowAuxCrosshair: t.ShowAuxCrosshair(),
	}, nil
}

func serializePolygon(b *fb.Builder, e *duc.PolygonElement) (Ref, error) {
	base, err := serializeElementBase(b, &e.ElementBase)
	if err != nil {
		return Ref{}, err
	}
	serial.DucPolygonElementStart(b)
	serial.DucPolygonElementAddBase(b, base.off)
	serial.DucPolygonElementAddSides(b, e.Sides)
	return Ref{serial.DucPolygonElementEnd(b)}, nil
}

func deserializePolygon(t *serial.DucPolygonElement) (duc.Element, error) {
	base, err := deserializeElementBase(t.Base(nil))
	if err != nil {
		return nil, err
	}
	return &duc.PolygonElement{ElementBase: base, Sides: t.Sides()}, nil
}

func serializeLinear(b *fb.Builder, e *duc.LinearElement) (Ref, error) {
	base, err := serializeElementBase(b, &e.ElementBase)
	if err != nil {
		return Ref{}, err
	}
	points := pointVector(b, e.Points, serial.DucLinearElementStartPointsVector)

	serial.DucLinearElementStart(b)
	serial.DucLinearElementAddBase(b, base.off)
	serial.DucLinearElementAddPoints(b, points)
	serial.DucLinearElementAddIsClosed(b, e.IsClosed)
	serial.DucLinearElementAddWipeoutBelow(b, e.WipeoutBelow)
	return Ref{serial.DucLinearElementEnd(b)}, nil
}

func deserializeLinear(t *serial.DucLinearElement) (duc.Element, error) {
	base, err := deserializeElementBase(t.Base(nil))
	if err != nil {
		return nil, err
	}
	return &duc.LinearElement{
		ElementBase:  base,
		Points:       readPoints(t.PointsLength(), t.Points),
		IsClosed:     t.IsClosed(),
		WipeoutBelow: t.WipeoutBelow(),
	}, nil
}

func serializeText(b *fb.Builder, e *duc.TextElement) (Ref, error) {
	base, err := serializeElementBase(b, &e.ElementBase)
	if err != nil {
		return Ref{}, err
	}
	text := optionalString(b, e.Text)
	original := optionalString(b, e.OriginalText)
	family := optionalString(b, e.FontFamily)
	container := nullableString(b, e.ContainerID)

	serial.DucTextElementStart(b)
	serial.DucTextElementAddBase(b, base.off)
	serial.DucTextElementAddText(b, text)
	serial.DucTextElementAddOriginalText(b, original)
	serial.DucTextElementAddFontFamily(b, family)
	serial.DucTextElementAddFontSize(b, serial.CreatePrecisionValue(b, e.FontSize.Value, e.FontSize.Scoped))
	serial.DucTextElementAddTextAlign(b, serial.TEXT_ALIGN(e.TextAlign))
	serial.DucTextElementAddVerticalAlign(b, serial.VERTICAL_ALIGN(e.VerticalAlign))
	serial.DucTextElementAddLineHeight(b, e.LineHeight)
	serial.DucTextElementAddAutoResize(b, e.AutoResize)
	serial.DucTextElementAddContainerId(b, container)
	return Ref{serial.DucTextElementEnd(b)}, nil
}

func deserializeText(t *serial.DucTextElement) (duc.Element, error) {
	base, err := deserializeElementBase(t.Base(nil))
	if err != nil {
		return nil, err
	}
	return &duc.TextElement{
		ElementBase:   base,
		Text:          string(t.Text()),
		OriginalText:  string(t.OriginalText()),
		FontFamily:    string(t.FontFamily()),
		FontSize:      readPrecisionValue(t.FontSize(nil)),
		TextAlign:     duc.TextAlign(t.TextAlign()),
		VerticalAlign: duc.VerticalAlign(t.VerticalAlign()),
		LineHeight:    t.LineHeight(),
		AutoResize:    t.AutoResize(),
		ContainerID:   readNullableString(t.ContainerId()),
	}, nil
}

func serializeImage(b *fb.Builder, e *duc.ImageElement) (Ref, error) {
	base, err := serializeElementBase(b, &e.ElementBase)
	if err != nil {
		return Ref{}, err
	}
	fileID := nullableString(b, e.FileID)
	scale := float64Vector(b, e.Scale[:], serial.DucImageElementStartScaleVector)
	boundary := pointVector(b, e.ClippingBoundary, serial.DucImageElementStartClippingBoundaryVector)

	var crop Ref
	if c := e.Crop; c != nil {
		serial.ImageCropStart(b)
		serial.ImageCropAddX(b, c.X)
		serial.ImageCropAddY(b, c.Y)
		serial.ImageCropAddWidth(b, c.Width)
		serial.ImageCropAddHeight(b, c.Height)
		serial.ImageCropAddNaturalWidth(b, c.NaturalWidth)
		serial.ImageCropAddNaturalHeight(b, c.NaturalHeight)
		crop = Ref{serial.ImageCropEnd(b)}
	}

	var filter Ref
	if f := e.Filter; f != nil {
		serial.DucImageFilterStart(b)
		serial.DucImageFilterAddBrightness(b, f.Brightness)
		serial.DucImageFilterAddContrast(b, f.Contrast)
		filter = Ref{serial.DucImageFilterEnd(b)}
	}

	serial.DucImageElementStart(b)
	serial.DucImageElementAddBase(b, base.off)
	serial.DucImageElementAddFileId(b, fileID)
	serial.DucImageElementAddStatus(b, serial.IMAGE_STATUS(e.Status))
	serial.DucImageElementAddScale(b, scale)
	serial.DucImageElementAddCrop(b, crop.off)
	serial.DucImageElementAddFilter(b, filter.off)
	serial.DucImageElementAddClippingBoundary(b, boundary)
	return Ref{serial.DucImageElementEnd(b)}, nil
}

func deserializeImage(t *serial.DucImageElement) (duc.Element, error) {
	base, err := deserializeElementBase(t.Base(nil))
	if err != nil {
		return nil, err
	}

	img := &duc.ImageElement{
		ElementBase:      base,
		FileID:           readNullableString(t.FileId()),
		Status:           duc.ImageStatus(t.Status()),
		Scale:            [2]float64{1, 1},
		ClippingBoundary: readPoints(t.ClippingBoundaryLength(), t.ClippingBoundary),
	}
	if t.ScaleLength() == 2 {
		img.Scale = [2]float64{t.Scale(0), t.Scale(1)}
	}
	if c := t.Crop(nil); c != nil {
		img.Crop = &duc.ImageCrop{
			X:             c.X(),
			Y:             c.Y(),
			Width:         c.Width(),
			Height:        c.Height(),
			NaturalWidth:  c.NaturalWidth(),
			NaturalHeight: c.NaturalHeight(),
		}
	}
	if f := t.Filter(nil); f != nil {
		img.Filter = &duc.ImageFilter{Brightness: f.Brightness(), Contrast: f.Contrast()}
	}
	return img, nil
}

func serializeXRay(b *fb.Builder, e *duc.XRayElement) (Ref, error) {
	base, err := serializeElementBase(b, &e.ElementBase)
	if err != nil {
		return Ref{}, err
	}
	color := optionalString(b, e.Color)

	serial.DucXRayElementStart(b)
	serial.DucXRayElementAddBase(b, base.off)
	serial.DucXRayElementAddColor(b, color)
	serial.DucXRayElementAddOrigin(b, serial.CreateGeometricPoint(b, e.Origin.X, e.Origin.Y))
	serial.DucXRayElementAddDirection(b, serial.CreateGeometricPoint(b, e.Direction.X, e.Direction.Y))
	serial.DucXRayElementAddStartFromOrigin(b, e.StartFromOrigin)
	return Ref{serial.DucXRayElementEnd(b)}, nil
}

func deserializeXRay(t *serial.DucXRayElement) (duc.Element, error) {
	base, err := deserializeElementBase(t.Base(nil))
	if err != nil {
		return nil, err
	}
	return &duc.XRayElement{
		ElementBase:     base,
		Color:           string(t.Color()),
		Origin:          readPoint(t.Origin(nil)),
		Direction:       readPoint(t.Direction(nil)),
		StartFromOrigin: t.StartFromOrigin(),
	}, nil
}
