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

func serializeGlobalState(b *fb.Builder, gs *duc.GlobalState) Ref {
	if gs == nil {
		return Ref{}
	}
	name := optionalString(b, gs.Name)
	bg := optionalString(b, gs.ViewBackgroundColor)
	scope := optionalString(b, gs.MainScope)

	serial.DucGlobalStateStart(b)
	serial.DucGlobalStateAddName(b, name)
	serial.DucGlobalStateAddViewBackgroundColor(b, bg)
	serial.DucGlobalStateAddMainScope(b, scope)
	serial.DucGlobalStateAddDashSpacingScale(b, gs.DashSpacingScale)
	serial.DucGlobalStateAddIsDashSpacingAffectedByViewportScale(b, gs.IsDashSpacingAffectedByViewportScale)
	serial.DucGlobalStateAddScopeExponentThreshold(b, gs.ScopeExponentThreshold)
	serial.DucGlobalStateAddDimensionsAssociativeByDefault(b, gs.DimensionsAssociativeByDefault)
	serial.DucGlobalStateAddUseAnnotativeScaling(b, gs.UseAnnotativeScaling)
	serial.DucGlobalStateAddDisplayPrecisionLinear(b, gs.DisplayPrecisionLinear)
	serial.DucGlobalStateAddDisplayPrecisionAngular(b, gs.DisplayPrecisionAngular)
	serial.DucGlobalStateAddPruningLevel(b, serial.PRUNING_LEVEL(gs.PruningLevel))
	return Ref{serial.DucGlobalStateEnd(b)}
}

func deserializeGlobalState(t *serial.DucGlobalState) *duc.GlobalState {
	if t == nil {
		return nil
	}
	return &duc.GlobalState{
		Name:                                 string(t.Name()),
		ViewBackgroundColor:                  string(t.ViewBackgroundColor()),
		MainScope:                            string(t.MainScope()),
		DashSpacingScale:                     t.DashSpacingScale(),
		IsDashSpacingAffectedByViewportScale: t.IsDashSpacingAffectedByViewportScale(),
		ScopeExponentThreshold:               t.ScopeExponentThreshold(),
		DimensionsAssociativeByDefault:       t.DimensionsAssociativeByDefault(),
		UseAnnotativeScaling:                 t.UseAnnotativeScaling(),
		DisplayPrecisionLinear:               t.DisplayPrecisionLinear(),
		DisplayPrecisionAngular:              t.DisplayPrecisionAngular(),
		PruningLevel:                         duc.PruningLevel(t.PruningLevel()),
	}
}

func serializeLocalState(b *fb.Builder, ls *duc.LocalState) Ref {
	if ls == nil {
		return Ref{}
	}
	scope := optionalString(b, ls.Scope)
	standard := optionalString(b, ls.ActiveStandardID)
	grids := stringVector(b, ls.ActiveGridSettings, serial.DucLocalStateStartActiveGridSettingsVector)
	family := optionalString(b, ls.CurrentItemFontFamily)
	var stroke, bg Ref
	if ls.CurrentItemStroke != nil {
		stroke = serializeStroke(b, *ls.CurrentItemStroke)
	}
	if ls.CurrentItemBackground != nil {
		bg = serializeBackground(b, *ls.CurrentItemBackground)
	}

	serial.DucLocalStateStart(b)
	serial.DucLocalStateAddScope(b, scope)
	serial.DucLocalStateAddActiveStandardId(b, standard)
	serial.DucLocalStateAddScrollX(b, serial.CreatePrecisionValue(b, ls.ScrollX.Value, ls.ScrollX.Scoped))
	serial.DucLocalStateAddScrollY(b, serial.CreatePrecisionValue(b, ls.ScrollY.Value, ls.ScrollY.Scoped))
	serial.DucLocalStateAddZoom(b, ls.Zoom)
	serial.DucLocalStateAddActiveGridSettings(b, grids)
	serial.DucLocalStateAddIsBindingEnabled(b, ls.IsBindingEnabled)
	serial.DucLocalStateAddCurrentItemStroke(b, stroke.off)
	serial.DucLocalStateAddCurrentItemBackground(b, bg.off)
	serial.DucLocalStateAddCurrentItemOpacity(b, ls.CurrentItemOpacity)
	serial.DucLocalStateAddCurrentItemFontFamily(b, family)
	serial.DucLocalStateAddCurrentItemFontSize(b, serial.CreatePrecisionValue(b, ls.CurrentItemFontSize.Value, ls.CurrentItemFontSize.Scoped))
	serial.DucLocalStateAddCurrentItemTextAlign(b, serial.TEXT_ALIGN(ls.CurrentItemTextAlign))
	serial.DucLocalStateAddCurrentItemRoundness(b, serial.CreatePrecisionValue(b, ls.CurrentItemRoundness.Value, ls.CurrentItemRoundness.Scoped))
	serial.DucLocalStateAddPenMode(b, ls.PenMode)
	serial.DucLocalStateAddViewModeEnabled(b, ls.ViewModeEnabled)
	serial.DucLocalStateAddObjectsSnapModeEnabled(b, ls.ObjectsSnapModeEnabled)
	serial.DucLocalStateAddGridModeEnabled(b, ls.GridModeEnabled)
	serial.DucLocalStateAddOutlineModeEnabled(b, ls.OutlineModeEnabled)
	serial.DucLocalStateAddManualSaveMode(b, ls.ManualSaveMode)
	return Ref{serial.DucLocalStateEnd(b)}
}

func deserializeLocalState(t *serial.DucLocalState) *duc.LocalState {
	if t == nil {
		return nil
	}
	ls := &duc.LocalState{
		Scope:                  string(t.Scope()),
		ActiveStandardID:       string(t.ActiveStandardId()),
		ScrollX:                readPrecisionValue(t.ScrollX(nil)),
		ScrollY:                readPrecisionValue(t.ScrollY(nil)),
		Zoom:                   t.Zoom(),
		ActiveGridSettings:     readStrings(t.ActiveGridSettingsLength(), t.ActiveGridSettings),
		IsBindingEnabled:       t.IsBindingEnabled(),
		CurrentItemOpacity:     t.CurrentItemOpacity(),
		CurrentItemFontFamily:  string(t.CurrentItemFontFamily()),
		CurrentItemFontSize:    readPrecisionValue(t.CurrentItemFontSize(nil)),
		CurrentItemTextAlign:   duc.TextAlign(t.CurrentItemTextAlign()),
		CurrentItemRoundness:   readPrecisionValue(t.CurrentItemRoundness(nil)),
		PenMode:                t.PenMode(),
		ViewModeEnabled:        t.ViewModeEnabled(),
		ObjectsSnapModeEnabled: t.ObjectsSnapModeEnabled(),
		GridModeEnabled:        t.GridModeEnabled(),
		OutlineModeEnabled:     t.OutlineModeEnabled(),
		ManualSaveMode:         t.ManualSaveMode(),
	}
	if s := t.CurrentItemStroke(nil); s != nil {
		stroke := deserializeStroke(s)
		ls.CurrentItemStroke = &stroke
	}
	if bg := t.CurrentItemBackground(nil); bg != nil {
		background := deserializeBackground(bg)
		ls.CurrentItemBackground = &background
	}
	return ls
}

// serializeRendererState always writes the table so that readers can tell an
// empty tombstone list from a document that predates renderer state.
func serializeRendererState(b *fb.Builder, rs duc.RendererState) Ref {
	ids := stringVector(b, rs.DeletedElementIDs, serial.RendererStateStartDeletedElementIdsVector)
	serial.RendererStateStart(b)
	serial.RendererStateAddDeletedElementIds(b, ids)
	return Ref{serial.RendererStateEnd(b)}
}

// deserializeRendererState never returns a nil id list.
func deserializeRendererState(t *serial.RendererState) duc.RendererState {
	if t == nil {
		return duc.RendererState{DeletedElementIDs: []string{}}
	}
	ids := readStrings(t.DeletedElementIdsLength(), t.DeletedElementIds)
	if ids == nil {
		ids = []string{}
	}
	return duc.RendererState{DeletedElementIDs: ids}
}
