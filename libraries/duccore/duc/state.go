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

type PruningLevel uint8

const (
	PruningLevelConservative PruningLevel = iota
	PruningLevelBalanced
	PruningLevelAggressive
)

// GlobalState is document-wide configuration shared by every session that
// opens the document.
type GlobalState struct {
	Name                                 string
	ViewBackgroundColor                  string
	MainScope                            string
	DashSpacingScale                     float32
	IsDashSpacingAffectedByViewportScale bool
	ScopeExponentThreshold               int8
	DimensionsAssociativeByDefault       bool
	UseAnnotativeScaling                 bool
	DisplayPrecisionLinear               int32
	DisplayPrecisionAngular              int32
	PruningLevel                         PruningLevel
}

// NewGlobalState returns a GlobalState carrying the wire defaults.
func NewGlobalState() *GlobalState {
	return &GlobalState{
		DashSpacingScale:        1,
		ScopeExponentThreshold:  3,
		DisplayPrecisionLinear:  2,
		DisplayPrecisionAngular: 2,
	}
}

// LocalState is the per-session view and tool state.
type LocalState struct {
	Scope                  string
	ActiveStandardID       string
	ScrollX                PrecisionValue
	ScrollY                PrecisionValue
	Zoom                   float64
	ActiveGridSettings     []string
	IsBindingEnabled       bool
	CurrentItemStroke      *ElementStroke
	CurrentItemBackground  *ElementBackground
	CurrentItemOpacity     float32
	CurrentItemFontFamily  string
	CurrentItemFontSize    PrecisionValue
	CurrentItemTextAlign   TextAlign
	CurrentItemRoundness   PrecisionValue
	PenMode                bool
	ViewModeEnabled        bool
	ObjectsSnapModeEnabled bool
	GridModeEnabled        bool
	OutlineModeEnabled     bool
	ManualSaveMode         bool
}

// NewLocalState returns a LocalState carrying the wire defaults.
func NewLocalState() *LocalState {
	return &LocalState{
		Zoom:                   1,
		IsBindingEnabled:       true,
		CurrentItemOpacity:     1,
		ObjectsSnapModeEnabled: true,
	}
}

// RendererState tracks elements that are soft-deleted: no longer active but
// not yet purged from the document.
type RendererState struct {
	DeletedElementIDs []string
}

// IsDeleted returns whether |id| is tombstoned.
func (rs RendererState) IsDeleted(id string) bool {
	for _, d := range rs.DeletedElementIDs {
		if d == id {
			return true
		}
	}
	return false
}
