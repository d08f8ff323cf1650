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
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/ducflair/duc-sub004/libraries/duccore/duc"
)

// ErrNothingToRender is returned by Render when a document has no visible
// element with finite bounds.
var ErrNothingToRender = errors.New("document has no visible elements to render")

const (
	padding       = 2
	ellipseSteps  = 64
	minStrokeHalf = 0.5
)

// placeholder is used to fill text and image elements that carry no
// background of their own.
var placeholder = color.NRGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}

// Render draws a preview of |doc| and encodes it as a PNG thumbnail.
func Render(doc *duc.Document, maxSize int) ([]byte, error) {
	img, err := Rasterize(doc, maxSize)
	if err != nil {
		return nil, err
	}
	return Encode(img)
}

// Rasterize draws the visible elements of |doc| onto a white canvas whose
// longest edge is |maxSize|. Elements are drawn in z-index order using their
// effective backgrounds and strokes. Rotation is ignored, and infinite
// construction lines are not drawn.
func Rasterize(doc *duc.Document, maxSize int) (*image.NRGBA, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	elems := drawable(doc)
	if len(elems) == 0 {
		return nil, ErrNothingToRender
	}

	ext := extent(elems)
	scale := 1.0
	if longest := math.Max(ext.width(), ext.height()); longest > 0 {
		scale = float64(maxSize-2*padding) / longest
	}
	w := int(math.Ceil(ext.width()*scale)) + 2*padding
	h := int(math.Ceil(ext.height()*scale)) + 2*padding

	c := &canvas{
		dst:    imaging.New(w, h, color.White),
		z:      vector.NewRasterizer(w, h),
		scale:  scale,
		origin: duc.GeometricPoint{X: ext.minX, Y: ext.minY},
	}
	for _, el := range elems {
		c.drawElement(doc, el)
	}
	return c.dst, nil
}

func drawable(doc *duc.Document) []duc.Element {
	if doc == nil {
		return nil
	}
	var elems []duc.Element
	for _, el := range doc.ActiveElements() {
		if _, ok := el.(*duc.XRayElement); ok || !el.Base().IsVisible {
			continue
		}
		elems = append(elems, el)
	}
	sort.SliceStable(elems, func(i, j int) bool {
		return elems[i].Base().ZIndex < elems[j].Base().ZIndex
	})
	return elems
}

type box struct {
	minX, minY, maxX, maxY float64
}

func (b box) width() float64  { return b.maxX - b.minX }
func (b box) height() float64 { return b.maxY - b.minY }

func elementBox(b *duc.ElementBase) box {
	x0, x1 := b.X.Value, b.X.Value+b.Width.Value
	y0, y1 := b.Y.Value, b.Y.Value+b.Height.Value
	return box{math.Min(x0, x1), math.Min(y0, y1), math.Max(x0, x1), math.Max(y0, y1)}
}

func extent(elems []duc.Element) box {
	ext := elementBox(elems[0].Base())
	for _, el := range elems[1:] {
		b := elementBox(el.Base())
		ext.minX = math.Min(ext.minX, b.minX)
		ext.minY = math.Min(ext.minY, b.minY)
		ext.maxX = math.Max(ext.maxX, b.maxX)
		ext.maxY = math.Max(ext.maxY, b.maxY)
	}
	return ext
}

type point struct {
	x, y float32
}

type canvas struct {
	dst    *image.NRGBA
	z      *vector.Rasterizer
	scale  float64
	origin duc.GeometricPoint
}

func (c *canvas) project(x, y float64) point {
	return point{
		x: float32((x-c.origin.X)*c.scale + padding),
		y: float32((y-c.origin.Y)*c.scale + padding),
	}
}

func (c *canvas) drawElement(doc *duc.Document, el duc.Element) {
	b := el.Base()
	fill, hasFill := backgroundColor(duc.EffectiveBackgrounds(doc, el), b.Styles.Opacity)
	stroke, strokeWidth, hasStroke := strokeColor(duc.EffectiveStrokes(doc, el), b.Styles.Opacity)

	var path []point
	closed := true
	switch e := el.(type) {
	case *duc.EllipseElement:
		path = c.ellipsePath(elementBox(b))
	case *duc.LinearElement:
		for _, p := range e.Points {
			path = append(path, c.project(b.X.Value+p.X, b.Y.Value+p.Y))
		}
		closed = e.IsClosed
		if !closed {
			hasFill = false
		}
	case *duc.TextElement, *duc.ImageElement:
		if !hasFill {
			fill, hasFill = withOpacity(placeholder, b.Styles.Opacity), true
		}
		path = c.rectPath(elementBox(b))
	default:
		path = c.rectPath(elementBox(b))
	}

	if len(path) < 2 {
		return
	}
	if hasFill {
		c.fill(path, fill)
	}
	if hasStroke {
		half := math.Max(minStrokeHalf, strokeWidth*c.scale/2)
		c.outline(path, closed, float32(half), stroke)
	}
}

func (c *canvas) rectPath(b box) []point {
	return []point{
		c.project(b.minX, b.minY),
		c.project(b.maxX, b.minY),
		c.project(b.maxX, b.maxY),
		c.project(b.minX, b.maxY),
	}
}

func (c *canvas) ellipsePath(b box) []point {
	cx, cy := (b.minX+b.maxX)/2, (b.minY+b.maxY)/2
	rx, ry := b.width()/2, b.height()/2
	path := make([]point, ellipseSteps)
	for i := range path {
		a := 2 * math.Pi * float64(i) / ellipseSteps
		path[i] = c.project(cx+rx*math.Cos(a), cy+ry*math.Sin(a))
	}
	return path
}

func (c *canvas) reset() {
	r := c.dst.Bounds()
	c.z.Reset(r.Dx(), r.Dy())
	c.z.DrawOp = draw.Over
}

func (c *canvas) paint(col color.NRGBA) {
	c.z.Draw(c.dst, c.dst.Bounds(), image.NewUniform(col), image.Point{})
}

func (c *canvas) fill(path []point, col color.NRGBA) {
	c.reset()
	c.z.MoveTo(path[0].x, path[0].y)
	for _, p := range path[1:] {
		c.z.LineTo(p.x, p.y)
	}
	c.z.ClosePath()
	c.paint(col)
}

// outline strokes each segment of |path| as its own quad so overlapping
// segments never cancel each other's coverage.
func (c *canvas) outline(path []point, closed bool, half float32, col color.NRGBA) {
	n := len(path) - 1
	if closed {
		n = len(path)
	}
	for i := 0; i < n; i++ {
		a, b := path[i], path[(i+1)%len(path)]
		dx, dy := b.x-a.x, b.y-a.y
		l := float32(math.Hypot(float64(dx), float64(dy)))
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*half, dx/l*half

		c.reset()
		c.z.MoveTo(a.x+nx, a.y+ny)
		c.z.LineTo(b.x+nx, b.y+ny)
		c.z.LineTo(b.x-nx, b.y-ny)
		c.z.LineTo(a.x-nx, a.y-ny)
		c.z.ClosePath()
		c.paint(col)
	}
}

func contentColor(content duc.ElementContent, opacity float64) (color.NRGBA, bool) {
	if !content.Visible || content.Preference != duc.ContentPreferenceSolid {
		return color.NRGBA{}, false
	}
	col, ok := ParseColor(content.Src)
	if !ok {
		return color.NRGBA{}, false
	}
	return withOpacity(col, content.Opacity*opacity), true
}

func backgroundColor(bgs []duc.ElementBackground, opacity float64) (color.NRGBA, bool) {
	for _, bg := range bgs {
		if col, ok := contentColor(bg.Content, opacity); ok {
			return col, true
		}
	}
	return color.NRGBA{}, false
}

func strokeColor(strokes []duc.ElementStroke, opacity float64) (color.NRGBA, float64, bool) {
	for _, s := range strokes {
		if col, ok := contentColor(s.Content, opacity); ok {
			return col, s.Width.Value, true
		}
	}
	return color.NRGBA{}, 0, false
}
