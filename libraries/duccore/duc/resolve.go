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

// A member's own settings always win over its containers'. Containers are
// consulted in a fixed precedence: groups in the order the member lists them,
// then regions likewise, then the layer, then the enclosing frame or plot,
// whose own containers are consulted in turn.

// EffectiveStyleID returns the style id |el| uses for |cat|, and whether one
// applies.
func EffectiveStyleID(doc *Document, el Element, cat StyleCategory) (string, bool) {
	var id string
	found := false
	walkStyleSources(doc, el, func(own map[StyleCategory]string, _ *StackBase, _ *Layer) bool {
		if v, ok := own[cat]; ok {
			id, found = v, true
			return true
		}
		return false
	})
	return id, found
}

// EffectiveStrokes returns the strokes |el| is drawn with: its own when it
// has any, otherwise the first stroke override of its containers.
func EffectiveStrokes(doc *Document, el Element) []ElementStroke {
	if len(el.Base().Styles.Stroke) > 0 {
		return el.Base().Styles.Stroke
	}

	var strokes []ElementStroke
	walkStyleSources(doc, el, func(_ map[StyleCategory]string, stack *StackBase, layer *Layer) bool {
		if stack != nil && len(stack.Styles.StrokeOverride) > 0 {
			strokes = stack.Styles.StrokeOverride
			return true
		}
		if layer != nil && layer.Overrides != nil {
			strokes = []ElementStroke{layer.Overrides.Stroke}
			return true
		}
		return false
	})
	return strokes
}

// EffectiveBackgrounds is EffectiveStrokes for backgrounds.
func EffectiveBackgrounds(doc *Document, el Element) []ElementBackground {
	if len(el.Base().Styles.Background) > 0 {
		return el.Base().Styles.Background
	}

	var bgs []ElementBackground
	walkStyleSources(doc, el, func(_ map[StyleCategory]string, stack *StackBase, layer *Layer) bool {
		if stack != nil && len(stack.Styles.BackgroundOverride) > 0 {
			bgs = stack.Styles.BackgroundOverride
			return true
		}
		if layer != nil && layer.Overrides != nil {
			bgs = []ElementBackground{layer.Overrides.Background}
			return true
		}
		return false
	})
	return bgs
}

// styleVisitor is called with each source's style-id map and, for
// containers, its stack base. Returning true stops the walk.
type styleVisitor func(styleIDs map[StyleCategory]string, stack *StackBase, layer *Layer) bool

func walkStyleSources(doc *Document, el Element, visit styleVisitor) {
	if visit(el.Base().StyleRefs, nil, nil) {
		return
	}
	visited := map[string]struct{}{el.Base().ID: {}}
	walkContainers(doc, el.Base(), visit, visited)
}

func walkContainers(doc *Document, b *ElementBase, visit styleVisitor, visited map[string]struct{}) bool {
	if doc == nil {
		return false
	}

	for _, gid := range b.GroupIDs {
		if g := doc.GroupByID(gid); g != nil {
			if visit(g.StyleOverrides, &g.StackBase, nil) {
				return true
			}
		}
	}
	for _, rid := range b.RegionIDs {
		if r := doc.RegionByID(rid); r != nil {
			if visit(r.StyleOverrides, &r.StackBase, nil) {
				return true
			}
		}
	}
	if b.LayerID != nil {
		if l := doc.LayerByID(*b.LayerID); l != nil {
			if visit(l.StyleOverrides, &l.StackBase, nil) {
				return true
			}
			if visit(nil, nil, l) {
				return true
			}
		}
	}
	if b.FrameID != nil {
		if _, ok := visited[*b.FrameID]; ok {
			return false
		}
		visited[*b.FrameID] = struct{}{}

		var stack *StackElementBase
		switch f := doc.ElementByID(*b.FrameID).(type) {
		case *FrameElement:
			stack = &f.StackElementBase
		case *PlotElement:
			stack = &f.StackElementBase
		}
		if stack != nil {
			if visit(stack.Stack.StyleOverrides, &stack.Stack, nil) {
				return true
			}
			return walkContainers(doc, &stack.ElementBase, visit, visited)
		}
	}
	return false
}
