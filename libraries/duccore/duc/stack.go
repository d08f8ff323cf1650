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

// StackLikeStyles are the styles a stack applies to itself and, through the
// override slices, to every member that does not set its own.
type StackLikeStyles struct {
	Opacity            float64
	LabelingColor      string
	StrokeOverride     []ElementStroke
	BackgroundOverride []ElementBackground
}

// StackBase is the shape shared by every stack-like entity: groups, regions,
// layers, frames and plots.
type StackBase struct {
	Label       string
	Description *string
	IsCollapsed bool
	IsPlot      bool
	IsVisible   bool
	Locked      bool
	Styles      StackLikeStyles
	// StyleOverrides maps a style category to the style id applied to every
	// member that does not reference its own style for that category. A nil
	// map means the stack overrides nothing.
	StyleOverrides map[StyleCategory]string
}

// NewStackBase returns a visible, fully opaque StackBase.
func NewStackBase(label string) StackBase {
	return StackBase{
		Label:     label,
		IsVisible: true,
		Styles:    StackLikeStyles{Opacity: 1},
	}
}

// Group is a labeling, visibility and locking container. Elements join a
// group by listing its id in ElementBase.GroupIDs.
type Group struct {
	ID string
	StackBase
}

type BooleanOperation uint8

const (
	BooleanOperationUnion BooleanOperation = iota
	BooleanOperationSubtract
	BooleanOperationIntersect
	BooleanOperationExclude
)

// Region combines its member elements with a boolean operation. A nil
// BooleanOperation leaves the members uncombined.
type Region struct {
	ID string
	StackBase
	BooleanOperation *BooleanOperation
}

type LayerOverrides struct {
	Stroke     ElementStroke
	Background ElementBackground
}

type Layer struct {
	ID string
	StackBase
	Readonly  bool
	Overrides *LayerOverrides
}
