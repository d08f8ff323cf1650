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

func serializeDuplicationArray(b *fb.Builder, a *duc.BlockDuplicationArray) Ref {
	if a == nil {
		return Ref{}
	}
	serial.DucBlockDuplicationArrayStart(b)
	serial.DucBlockDuplicationArrayAddRows(b, a.Rows)
	serial.DucBlockDuplicationArrayAddCols(b, a.Cols)
	serial.DucBlockDuplicationArrayAddRowSpacing(b, serial.CreatePrecisionValue(b, a.RowSpacing.Value, a.RowSpacing.Scoped))
	serial.DucBlockDuplicationArrayAddColSpacing(b, serial.CreatePrecisionValue(b, a.ColSpacing.Value, a.ColSpacing.Scoped))
	return Ref{serial.DucBlockDuplicationArrayEnd(b)}
}

func deserializeDuplicationArray(t *serial.DucBlockDuplicationArray) *duc.BlockDuplicationArray {
	if t == nil {
		return nil
	}
	return &duc.BlockDuplicationArray{
		Rows:       t.Rows(),
		Cols:       t.Cols(),
		RowSpacing: readPrecisionValue(t.RowSpacing(nil)),
		ColSpacing: readPrecisionValue(t.ColSpacing(nil)),
	}
}

func serializeBlockInstance(b *fb.Builder, e *duc.BlockInstanceElement) (Ref, error) {
	if e.BlockID == "" {
		return Ref{}, ErrMalformedEntity.New("block instance "+e.ID, "missing block id")
	}
	for _, k := range sortedKeys(e.ElementOverrides) {
		if v := e.ElementOverrides[k]; v != "" && !duc.ValidJSON(v) {
			return Ref{}, ErrMalformedEntity.New("block instance "+e.ID, fmt.Sprintf("override for %s is not valid json", k))
		}
	}

	base, err := serializeElementBase(b, &e.ElementBase)
	if err != nil {
		return Ref{}, err
	}
	blockID := b.CreateString(e.BlockID)
	overrides := stringValueEntries(b, e.ElementOverrides, serial.DucBlockInstanceElementStartElementOverridesVector)
	dup := serializeDuplicationArray(b, e.DuplicationArray)

	serial.DucBlockInstanceElementStart(b)
	serial.DucBlockInstanceElementAddBase(b, base.off)
	serial.DucBlockInstanceElementAddBlockId(b, blockID)
	serial.DucBlockInstanceElementAddElementOverrides(b, overrides)
	serial.DucBlockInstanceElementAddDuplicationArray(b, dup.off)
	return Ref{serial.DucBlockInstanceElementEnd(b)}, nil
}

func deserializeBlockInstance(t *serial.DucBlockInstanceElement) (duc.Element, error) {
	base, err := deserializeElementBase(t.Base(nil))
	if err != nil {
		return nil, err
	}
	if t.BlockId() == nil {
		return nil, ErrMalformedEntity.New("block instance "+base.ID, "missing block id")
	}
	overrides, err := readStringValueEntries(t.ElementOverridesLength(), t.ElementOverrides)
	if err != nil {
		return nil, err
	}
	for _, k := range sortedKeys(overrides) {
		if v := overrides[k]; v != "" && !duc.ValidJSON(v) {
			return nil, ErrMalformedEntity.New("block instance "+base.ID, fmt.Sprintf("override for %s is not valid json", k))
		}
	}
	return &duc.BlockInstanceElement{
		ElementBase:      base,
		BlockID:          string(t.BlockId()),
		ElementOverrides: overrides,
		DuplicationArray: deserializeDuplicationArray(t.DuplicationArray(nil)),
	}, nil
}

func serializeAttributeDefinitions(b *fb.Builder, attrs map[string]duc.BlockAttributeDefinition) fb.UOffsetT {
	if len(attrs) == 0 {
		return 0
	}
	keys := sortedKeys(attrs)
	refs := make([]Ref, len(keys))
	for i, k := range keys {
		def := attrs[k]
		key := b.CreateString(k)
		tag := optionalString(b, def.Tag)
		dflt := optionalString(b, def.DefaultValue)
		prompt := nullableString(b, def.Prompt)

		serial.DucBlockAttributeDefinitionStart(b)
		serial.DucBlockAttributeDefinitionAddTag(b, tag)
		serial.DucBlockAttributeDefinitionAddDefaultValue(b, dflt)
		serial.DucBlockAttributeDefinitionAddPrompt(b, prompt)
		serial.DucBlockAttributeDefinitionAddFieldLength(b, def.FieldLength)
		val := serial.DucBlockAttributeDefinitionEnd(b)

		serial.DucBlockAttributeDefinitionEntryStart(b)
		serial.DucBlockAttributeDefinitionEntryAddKey(b, key)
		serial.DucBlockAttributeDefinitionEntryAddValue(b, val)
		refs[i] = Ref{serial.DucBlockAttributeDefinitionEntryEnd(b)}
	}
	return refVector(b, refs, serial.DucBlockStartAttributesVector)
}

func serializeBlock(b *fb.Builder, blk *duc.Block) (Ref, error) {
	if blk == nil || blk.ID == "" {
		return Ref{}, ErrMalformedEntity.New("block", "missing id")
	}
	elements, err := serializeElements(b, blk.Elements, serial.DucBlockStartElementsVector)
	if err != nil {
		return Ref{}, err
	}
	id := b.CreateString(blk.ID)
	label := optionalString(b, blk.Label)
	desc := nullableString(b, blk.Description)
	attrs := serializeAttributeDefinitions(b, blk.Attributes)

	serial.DucBlockStart(b)
	serial.DucBlockAddId(b, id)
	serial.DucBlockAddLabel(b, label)
	serial.DucBlockAddDescription(b, desc)
	serial.DucBlockAddVersion(b, blk.Version)
	serial.DucBlockAddReadonly(b, blk.Readonly)
	serial.DucBlockAddElements(b, elements)
	serial.DucBlockAddAttributes(b, attrs)
	return Ref{serial.DucBlockEnd(b)}, nil
}

func deserializeBlock(t *serial.DucBlock) (*duc.Block, error) {
	if t.Id() == nil {
		return nil, ErrMalformedEntity.New("block", "missing id")
	}
	elements, err := deserializeElements(t.ElementsLength(), t.Elements)
	if err != nil {
		return nil, err
	}

	blk := &duc.Block{
		ID:          string(t.Id()),
		Label:       string(t.Label()),
		Description: readNullableString(t.Description()),
		Version:     t.Version(),
		Readonly:    t.Readonly(),
		Elements:    elements,
	}

	if n := t.AttributesLength(); n > 0 {
		blk.Attributes = make(map[string]duc.BlockAttributeDefinition)
		var entry serial.DucBlockAttributeDefinitionEntry
		for i := 0; i < n; i++ {
			t.Attributes(&entry, i)
			if entry.Key() == nil {
				return nil, ErrMalformedEntity.New("block "+blk.ID, "attribute without a name")
			}
			var def duc.BlockAttributeDefinition
			if v := entry.Value(nil); v != nil {
				def = duc.BlockAttributeDefinition{
					Tag:          string(v.Tag()),
					DefaultValue: string(v.DefaultValue()),
					Prompt:       readNullableString(v.Prompt()),
					FieldLength:  v.FieldLength(),
				}
			}
			blk.Attributes[string(entry.Key())] = def
		}
	}
	return blk, nil
}
