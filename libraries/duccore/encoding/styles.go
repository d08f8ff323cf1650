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

func serializeContent(b *fb.Builder, c duc.ElementContent) Ref {
	src := optionalString(b, c.Src)

	serial.ElementContentStart(b)
	serial.ElementContentAddPreference(b, serial.CONTENT_PREFERENCE(c.Preference))
	serial.ElementContentAddSrc(b, src)
	serial.ElementContentAddVisible(b, c.Visible)
	serial.ElementContentAddOpacity(b, c.Opacity)
	return Ref{serial.ElementContentEnd(b)}
}

func serializeStrokeStyle(b *fb.Builder, s duc.StrokeStyle) Ref {
	var dash fb.UOffsetT
	if len(s.Dash) > 0 {
		dash = float64Vector(b, s.Dash, serial.StrokeStyleStartDashVector)
	}

	serial.StrokeStyleStart(b)
	serial.StrokeStyleAddPreference(b, serial.STROKE_PREFERENCE(s.Preference))
	if dash != 0 {
		serial.StrokeStyleAddDash(b, dash)
	}
	serial.StrokeStyleAddCap(b, serial.STROKE_CAP(s.Cap))
	serial.StrokeStyleAddJoin(b, serial.STROKE_JOIN(s.Join))
	return Ref{serial.StrokeStyleEnd(b)}
}

func serializeStroke(b *fb.Builder, s duc.ElementStroke) Ref {
	content := serializeContent(b, s.Content)
	style := serializeStrokeStyle(b, s.Style)

	serial.ElementStrokeStart(b)
	serial.ElementStrokeAddContent(b, content.off)
	serial.ElementStrokeAddWidth(b, serial.CreatePrecisionValue(b, s.Width.Value, s.Width.Scoped))
	serial.ElementStrokeAddStyle(b, style.off)
	serial.ElementStrokeAddPlacement(b, serial.STROKE_PLACEMENT(s.Placement))
	return Ref{serial.ElementStrokeEnd(b)}
}

func serializeBackground(b *fb.Builder, bg duc.ElementBackground) Ref {
	content := serializeContent(b, bg.Content)

	serial.ElementBackgroundStart(b)
	serial.ElementBackgroundAddContent(b, content.off)
	return Ref{serial.ElementBackgroundEnd(b)}
}

func serializeStrokes(b *fb.Builder, strokes []duc.ElementStroke, start func(*fb.Builder, int) fb.UOffsetT) fb.UOffsetT {
	if len(strokes) == 0 {
		return 0
	}
	refs := make([]Ref, len(strokes))
	for i := range strokes {
		refs[i] = serializeStroke(b, strokes[i])
	}
	return refVector(b, refs, start)
}

func serializeBackgrounds(b *fb.Builder, bgs []duc.ElementBackground, start func(*fb.Builder, int) fb.UOffsetT) fb.UOffsetT {
	if len(bgs) == 0 {
		return 0
	}
	refs := make([]Ref, len(bgs))
	for i := range bgs {
		refs[i] = serializeBackground(b, bgs[i])
	}
	return refVector(b, refs, start)
}

func serializeElementStyles(b *fb.Builder, s duc.ElementStyles) Ref {
	backgrounds := serializeBackgrounds(b, s.Background, serial.DucElementStylesBaseStartBackgroundVector)
	strokes := serializeStrokes(b, s.Stroke, serial.DucElementStylesBaseStartStrokeVector)

	serial.DucElementStylesBaseStart(b)
	serial.DucElementStylesBaseAddRoundness(b, serial.CreatePrecisionValue(b, s.Roundness.Value, s.Roundness.Scoped))
	if s.Blending != nil {
		serial.DucElementStylesBaseAddBlending(b, serial.BLENDING(*s.Blending))
	}
	if backgrounds != 0 {
		serial.DucElementStylesBaseAddBackground(b, backgrounds)
	}
	if strokes != 0 {
		serial.DucElementStylesBaseAddStroke(b, strokes)
	}
	serial.DucElementStylesBaseAddOpacity(b, s.Opacity)
	return Ref{serial.DucElementStylesBaseEnd(b)}
}

func deserializeContent(c *serial.ElementContent) duc.ElementContent {
	if c == nil {
		return duc.DefaultElementContent()
	}
	return duc.ElementContent{
		Preference: duc.ContentPreference(c.Preference()),
		Src:        string(c.Src()),
		Visible:    c.Visible(),
		Opacity:    c.Opacity(),
	}
}

func deserializeStrokeStyle(s *serial.StrokeStyle) duc.StrokeStyle {
	if s == nil {
		return duc.StrokeStyle{}
	}
	style := duc.StrokeStyle{
		Preference: duc.StrokePreference(s.Preference()),
		Cap:        duc.StrokeCap(s.Cap()),
		Join:       duc.StrokeJoin(s.Join()),
	}
	if n := s.DashLength(); n > 0 {
		for i := 0; i < n; i++ {
			style.Dash = append(style.Dash, s.Dash(i))
		}
	}
	return style
}

func deserializeStroke(s *serial.ElementStroke) duc.ElementStroke {
	return duc.ElementStroke{
		Content:   deserializeContent(s.Content(nil)),
		Width:     readPrecisionValue(s.Width(nil)),
		Style:     deserializeStrokeStyle(s.Style(nil)),
		Placement: duc.StrokePlacement(s.Placement()),
	}
}

func deserializeBackground(bg *serial.ElementBackground) duc.ElementBackground {
	return duc.ElementBackground{Content: deserializeContent(bg.Content(nil))}
}

func deserializeStrokes(n int, get func(*serial.ElementStroke, int) bool) []duc.ElementStroke {
	if n == 0 {
		return nil
	}
	var strokes []duc.ElementStroke
	var s serial.ElementStroke
	for i := 0; i < n; i++ {
		get(&s, i)
		strokes = append(strokes, deserializeStroke(&s))
	}
	return strokes
}

func deserializeBackgrounds(n int, get func(*serial.ElementBackground, int) bool) []duc.ElementBackground {
	if n == 0 {
		return nil
	}
	var bgs []duc.ElementBackground
	var bg serial.ElementBackground
	for i := 0; i < n; i++ {
		get(&bg, i)
		bgs = append(bgs, deserializeBackground(&bg))
	}
	return bgs
}

func deserializeElementStyles(s *serial.DucElementStylesBase) duc.ElementStyles {
	if s == nil {
		return duc.DefaultElementStyles()
	}
	styles := duc.ElementStyles{
		Roundness:  readPrecisionValue(s.Roundness(nil)),
		Background: deserializeBackgrounds(s.BackgroundLength(), s.Background),
		Stroke:     deserializeStrokes(s.StrokeLength(), s.Stroke),
		Opacity:    s.Opacity(),
	}
	if bl := s.Blending(); bl != nil {
		blending := duc.Blending(*bl)
		styles.Blending = &blending
	}
	return styles
}
