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
	fb "github.com/dolthub/flatbuffers/v23/go"

	"github.com/ducflair/duc-sub004/gen/fb/serial"
	"github.com/ducflair/duc-sub004/libraries/duccore/duc"
)

func serializeStackLikeStyles(b *fb.Builder, s duc.StackLikeStyles) Ref {
	color := optionalString(b, s.LabelingColor)
	strokes := serializeStrokes(b, s.StrokeOverride, serial.DucStackLikeStylesStartStrokeOverrideVector)
	bgs := serializeBackgrounds(b, s.BackgroundOverride, serial.DucStackLikeStylesStartBackgroundOverrideVector)

	serial.DucStackLikeStylesStart(b)
	serial.DucStackLikeStylesAddOpacity(b, s.Opacity)
	serial.DucStackLikeStylesAddLabelingColor(b, color)
	serial.DucStackLikeStylesAddStrokeOverride(b, strokes)
	serial.DucStackLikeStylesAddBackgroundOverride(b, bgs)
	return Ref{serial.DucStackLikeStylesEnd(b)}
}

// serializeStackBase always writes the label and the visibility flag, which
// readers require.
func serializeStackBase(b *fb.Builder, s *duc.StackBase) Ref {
	label := b.CreateString(s.Label)
	desc := nullableString(b, s.Description)
	styles := serializeStackLikeStyles(b, s.Styles)
	overrides := styleRefEntries(b, s.StyleOverrides, serial.DucStackBaseStartStyleOverridesVector)

	serial.DucStackBaseStart(b)
	serial.DucStackBaseAddLabel(b, label)
	serial.DucStackBaseAddDescription(b, desc)
	serial.DucStackBaseAddIsCollapsed(b, s.IsCollapsed)
	serial.DucStackBaseAddIsPlot(b, s.IsPlot)
	serial.DucStackBaseAddIsVisible(b, s.IsVisible)
	serial.DucStackBaseAddLocked(b, s.Locked)
	serial.DucStackBaseAddStyles(b, styles.off)
	serial.DucStackBaseAddStyleOverrides(b, overrides)
	return Ref{serial.DucStackBaseEnd(b)}
}

func deserializeStackLikeStyles(s *serial.DucStackLikeStyles) duc.StackLikeStyles {
	if s == nil {
		return duc.StackLikeStyles{Opacity: 1}
	}
	return duc.StackLikeStyles{
		Opacity:            s.Opacity(),
		LabelingColor:      string(s.LabelingColor()),
		StrokeOverride:     deserializeStrokes(s.StrokeOverrideLength(), s.StrokeOverride),
		BackgroundOverride: deserializeBackgrounds(s.BackgroundOverrideLength(), s.BackgroundOverride),
	}
}

// deserializeStackBase returns a non-empty reason when |t| is missing or
// lacks one of its mandatory fields.
func deserializeStackBase(t *serial.DucStackBase) (duc.StackBase, string, error) {
	if t == nil {
		return duc.StackBase{}, "missing stack base", nil
	}
	if t.Label() == nil {
		return duc.StackBase{}, "stack base has no label", nil
	}
	visible := t.IsVisible()
	if visible == nil {
		return duc.StackBase{}, "stack base has no visibility flag", nil
	}

	overrides, err := readStyleRefs(t.StyleOverridesLength(), t.StyleOverrides)
	if err != nil {
		return duc.StackBase{}, "", err
	}

	return duc.StackBase{
		Label:          string(t.Label()),
		Description:    readNullableString(t.Description()),
		IsCollapsed:    t.IsCollapsed(),
		IsPlot:         t.IsPlot(),
		IsVisible:      *visible,
		Locked:         t.Locked(),
		Styles:         deserializeStackLikeStyles(t.Styles(nil)),
		StyleOverrides: overrides,
	}, "", nil
}

func serializeStackElementBase(b *fb.Builder, s *duc.StackElementBase) (Ref, error) {
	base, err := serializeElementBase(b, &s.ElementBase)
	if err != nil {
		return Ref{}, err
	}
	stack := serializeStackBase(b, &s.Stack)

	serial.DucStackElementBaseStart(b)
	serial.DucStackElementBaseAddBase(b, base.off)
	serial.DucStackElementBaseAddStackBase(b, stack.off)
	serial.DucStackElementBaseAddClip(b, s.Clip)
	serial.DucStackElementBaseAddLabelVisible(b, s.LabelVisible)
	return Ref{serial.DucStackElementBaseEnd(b)}, nil
}

func deserializeStackElementBase(kind string, t *serial.DucStackElementBase) (duc.StackElementBase, error) {
	if t == nil {
		return duc.StackElementBase{}, ErrMalformedEntity.New(kind, "missing stack element base")
	}
	base, err := deserializeElementBase(t.Base(nil))
	if err != nil {
		return duc.StackElementBase{}, err
	}
	stack, reason, err := deserializeStackBase(t.StackBase(nil))
	if err != nil {
		return duc.StackElementBase{}, err
	}
	if reason != "" {
		return duc.StackElementBase{}, ErrInvalidSubstructure.New(kind, base.ID, reason)
	}
	return duc.StackElementBase{
		ElementBase:  base,
		Stack:        stack,
		Clip:         t.Clip(),
		LabelVisible: t.LabelVisible(),
	}, nil
}

func serializeFrame(b *fb.Builder, e *duc.FrameElement) (Ref, error) {
	seb, err := serializeStackElementBase(b, &e.StackElementBase)
	if err != nil {
		return Ref{}, err
	}
	serial.DucFrameElementStart(b)
	serial.DucFrameElementAddStackElementBase(b, seb.off)
	return Ref{serial.DucFrameElementEnd(b)}, nil
}

func deserializeFrame(t *serial.DucFrameElement) (duc.Element, error) {
	seb, err := deserializeStackElementBase("frame", t.StackElementBase(nil))
	if err != nil {
		return nil, err
	}
	return &duc.FrameElement{StackElementBase: seb}, nil
}

func serializeMargins(b *fb.Builder, m duc.Margins) Ref {
	serial.MarginsStart(b)
	serial.MarginsAddTop(b, serial.CreatePrecisionValue(b, m.Top.Value, m.Top.Scoped))
	serial.MarginsAddRight(b, serial.CreatePrecisionValue(b, m.Right.Value, m.Right.Scoped))
	serial.MarginsAddBottom(b, serial.CreatePrecisionValue(b, m.Bottom.Value, m.Bottom.Scoped))
	serial.MarginsAddLeft(b, serial.CreatePrecisionValue(b, m.Left.Value, m.Left.Scoped))
	return Ref{serial.MarginsEnd(b)}
}

func serializePlot(b *fb.Builder, e *duc.PlotElement) (Ref, error) {
	seb, err := serializeStackElementBase(b, &e.StackElementBase)
	if err != nil {
		return Ref{}, err
	}

	styles := serializeElementStyles(b, e.Style.Styles)
	serial.DucPlotStyleStart(b)
	serial.DucPlotStyleAddStyles(b, styles.off)
	style := serial.DucPlotStyleEnd(b)

	margins := serializeMargins(b, e.Layout.Margins)
	serial.PlotLayoutStart(b)
	serial.PlotLayoutAddMargins(b, margins.off)
	layout := serial.PlotLayoutEnd(b)

	serial.DucPlotElementStart(b)
	serial.DucPlotElementAddStackElementBase(b, seb.off)
	serial.DucPlotElementAddStyle(b, style)
	serial.DucPlotElementAddLayout(b, layout)
	return Ref{serial.DucPlotElementEnd(b)}, nil
}

func deserializePlot(t *serial.DucPlotElement) (duc.Element, error) {
	seb, err := deserializeStackElementBase("plot", t.StackElementBase(nil))
	if err != nil {
		return nil, err
	}

	plot := &duc.PlotElement{
		StackElementBase: seb,
		Style:            duc.PlotStyle{Styles: duc.DefaultElementStyles()},
	}
	if s := t.Style(nil); s != nil {
		plot.Style.Styles = deserializeElementStyles(s.Styles(nil))
	}
	if l := t.Layout(nil); l != nil {
		if m := l.Margins(nil); m != nil {
			plot.Layout.Margins = duc.Margins{
				Top:    readPrecisionValue(m.Top(nil)),
				Right:  readPrecisionValue(m.Right(nil)),
				Bottom: readPrecisionValue(m.Bottom(nil)),
				Left:   readPrecisionValue(m.Left(nil)),
			}
		}
	}
	return plot, nil
}

func serializeGroup(b *fb.Builder, g *duc.Group) (Ref, error) {
	if g == nil || g.ID == "" {
		return Ref{}, ErrMalformedEntity.New("group", "missing id")
	}
	id := b.CreateString(g.ID)
	stack := serializeStackBase(b, &g.StackBase)

	serial.DucGroupStart(b)
	serial.DucGroupAddId(b, id)
	serial.DucGroupAddStackBase(b, stack.off)
	return Ref{serial.DucGroupEnd(b)}, nil
}

func deserializeGroup(t *serial.DucGroup) (*duc.Group, error) {
	if t.Id() == nil {
		return nil, ErrMalformedEntity.New("group", "missing id")
	}
	id := string(t.Id())
	stack, reason, err := deserializeStackBase(t.StackBase(nil))
	if err != nil {
		return nil, err
	}
	if reason != "" {
		return nil, ErrInvalidSubstructure.New("group", id, reason)
	}
	return &duc.Group{ID: id, StackBase: stack}, nil
}

func serializeRegion(b *fb.Builder, r *duc.Region) (Ref, error) {
	if r == nil || r.ID == "" {
		return Ref{}, ErrMalformedEntity.New("region", "missing id")
	}
	id := b.CreateString(r.ID)
	stack := serializeStackBase(b, &r.StackBase)

	serial.DucRegionStart(b)
	serial.DucRegionAddId(b, id)
	serial.DucRegionAddStackBase(b, stack.off)
	if r.BooleanOperation != nil {
		serial.DucRegionAddBooleanOperation(b, serial.BOOLEAN_OPERATION(*r.BooleanOperation))
	}
	return Ref{serial.DucRegionEnd(b)}, nil
}

func deserializeRegion(t *serial.DucRegion) (*duc.Region, error) {
	if t.Id() == nil {
		return nil, ErrMalformedEntity.New("region", "missing id")
	}
	id := string(t.Id())
	stack, reason, err := deserializeStackBase(t.StackBase(nil))
	if err != nil {
		return nil, err
	}
	if reason != "" {
		return nil, ErrInvalidSubstructure.New("region", id, reason)
	}

	region := &duc.Region{ID: id, StackBase: stack}
	if op := t.BooleanOperation(); op != nil {
		bo := duc.BooleanOperation(*op)
		region.BooleanOperation = &bo
	}
	return region, nil
}

func serializeLayer(b *fb.Builder, l *duc.Layer) (Ref, error) {
	if l == nil || l.ID == "" {
		return Ref{}, ErrMalformedEntity.New("layer", "missing id")
	}
	id := b.CreateString(l.ID)
	stack := serializeStackBase(b, &l.StackBase)

	var overrides Ref
	if o := l.Overrides; o != nil {
		stroke := serializeStroke(b, o.Stroke)
		bg := serializeBackground(b, o.Background)
		serial.DucLayerOverridesStart(b)
		serial.DucLayerOverridesAddStroke(b, stroke.off)
		serial.DucLayerOverridesAddBackground(b, bg.off)
		overrides = Ref{serial.DucLayerOverridesEnd(b)}
	}

	serial.DucLayerStart(b)
	serial.DucLayerAddId(b, id)
	serial.DucLayerAddStackBase(b, stack.off)
	serial.DucLayerAddReadonly(b, l.Readonly)
	serial.DucLayerAddOverrides(b, overrides.off)
	return Ref{serial.DucLayerEnd(b)}, nil
}

func deserializeLayer(t *serial.DucLayer) (*duc.Layer, error) {
	if t.Id() == nil {
		return nil, ErrMalformedEntity.New("layer", "missing id")
	}
	id := string(t.Id())
	stack, reason, err := deserializeStackBase(t.StackBase(nil))
	if err != nil {
		return nil, err
	}
	if reason != "" {
		return nil, ErrInvalidSubstructure.New("layer", id, reason)
	}

	layer := &duc.Layer{ID: id, StackBase: stack, Readonly: t.Readonly()}
	if o := t.Overrides(nil); o != nil {
		layer.Overrides = &duc.LayerOverrides{
			Background: duc.ElementBackground{Content: duc.DefaultElementContent()},
		}
		if s := o.Stroke(nil); s != nil {
			layer.Overrides.Stroke = deserializeStroke(s)
		} else {
			layer.Overrides.Stroke.Content = duc.DefaultElementContent()
		}
		if bg := o.Background(nil); bg != nil {
			layer.Overrides.Background = deserializeBackground(bg)
		}
	}
	return layer, nil
}
