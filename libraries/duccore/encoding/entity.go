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

// The functions in this file encode a single entity as its own root buffer,
// tagged with a file identifier naming the entity type. They are used to move
// entities between documents, e.g. on copy and paste.

func SerializeElement(el duc.Element) ([]byte, error) {
	b := fb.NewBuilder(entityBufferSize)
	ref, err := serializeElement(b, el)
	if err != nil {
		return nil, err
	}
	return serial.FinishMessage(b, ref.off, []byte(serial.ElementWrapperFileID)), nil
}

func ParseElement(buf []byte) (el duc.Element, err error) {
	buf = clip(buf)
	if err = checkBuffer(buf, serial.ElementWrapperFileID); err != nil {
		return nil, err
	}
	defer recoverTruncation(&err)
	return deserializeElement(serial.GetRootAsElementWrapper(buf, 0))
}

func SerializeGroup(g *duc.Group) ([]byte, error) {
	b := fb.NewBuilder(entityBufferSize)
	ref, err := serializeGroup(b, g)
	if err != nil {
		return nil, err
	}
	return serial.FinishMessage(b, ref.off, []byte(serial.DucGroupFileID)), nil
}

// ParseGroup returns nil and ErrInvalidSubstructure when the group's stack
// base is missing or incomplete.
func ParseGroup(buf []byte) (g *duc.Group, err error) {
	buf = clip(buf)
	if err = checkBuffer(buf, serial.DucGroupFileID); err != nil {
		return nil, err
	}
	defer recoverTruncation(&err)
	return deserializeGroup(serial.GetRootAsDucGroup(buf, 0))
}

func SerializeRegion(r *duc.Region) ([]byte, error) {
	b := fb.NewBuilder(entityBufferSize)
	ref, err := serializeRegion(b, r)
	if err != nil {
		return nil, err
	}
	return serial.FinishMessage(b, ref.off, []byte(serial.DucRegionFileID)), nil
}

// ParseRegion returns nil and ErrInvalidSubstructure when the region's stack
// base is missing or incomplete.
func ParseRegion(buf []byte) (r *duc.Region, err error) {
	buf = clip(buf)
	if err = checkBuffer(buf, serial.DucRegionFileID); err != nil {
		return nil, err
	}
	defer recoverTruncation(&err)
	return deserializeRegion(serial.GetRootAsDucRegion(buf, 0))
}

func SerializeLayer(l *duc.Layer) ([]byte, error) {
	b := fb.NewBuilder(entityBufferSize)
	ref, err := serializeLayer(b, l)
	if err != nil {
		return nil, err
	}
	return serial.FinishMessage(b, ref.off, []byte(serial.DucLayerFileID)), nil
}

func ParseLayer(buf []byte) (l *duc.Layer, err error) {
	buf = clip(buf)
	if err = checkBuffer(buf, serial.DucLayerFileID); err != nil {
		return nil, err
	}
	defer recoverTruncation(&err)
	return deserializeLayer(serial.GetRootAsDucLayer(buf, 0))
}

func SerializeBlock(blk *duc.Block) ([]byte, error) {
	b := fb.NewBuilder(builderBufferSize)
	ref, err := serializeBlock(b, blk)
	if err != nil {
		return nil, err
	}
	return serial.FinishMessage(b, ref.off, []byte(serial.DucBlockFileID)), nil
}

func ParseBlock(buf []byte) (blk *duc.Block, err error) {
	buf = clip(buf)
	if err = checkBuffer(buf, serial.DucBlockFileID); err != nil {
		return nil, err
	}
	defer recoverTruncation(&err)
	return deserializeBlock(serial.GetRootAsDucBlock(buf, 0))
}

func SerializeGlobalState(gs *duc.GlobalState) ([]byte, error) {
	if gs == nil {
		return nil, ErrMalformedEntity.New("global state", "nil state")
	}
	b := fb.NewBuilder(entityBufferSize)
	ref := serializeGlobalState(b, gs)
	return serial.FinishMessage(b, ref.off, []byte(serial.DucGlobalStateFileID)), nil
}

func ParseGlobalState(buf []byte) (gs *duc.GlobalState, err error) {
	buf = clip(buf)
	if err = checkBuffer(buf, serial.DucGlobalStateFileID); err != nil {
		return nil, err
	}
	defer recoverTruncation(&err)
	return deserializeGlobalState(serial.GetRootAsDucGlobalState(buf, 0)), nil
}

func SerializeLocalState(ls *duc.LocalState) ([]byte, error) {
	if ls == nil {
		return nil, ErrMalformedEntity.New("local state", "nil state")
	}
	b := fb.NewBuilder(entityBufferSize)
	ref := serializeLocalState(b, ls)
	return serial.FinishMessage(b, ref.off, []byte(serial.DucLocalStateFileID)), nil
}

func ParseLocalState(buf []byte) (ls *duc.LocalState, err error) {
	buf = clip(buf)
	if err = checkBuffer(buf, serial.DucLocalStateFileID); err != nil {
		return nil, err
	}
	defer recoverTruncation(&err)
	return deserializeLocalState(serial.GetRootAsDucLocalState(buf, 0)), nil
}

func SerializeRendererState(rs duc.RendererState) []byte {
	b := fb.NewBuilder(entityBufferSize)
	ref := serializeRendererState(b, rs)
	return serial.FinishMessage(b, ref.off, []byte(serial.RendererStateFileID))
}

// ParseRendererState never returns a nil id list.
func ParseRendererState(buf []byte) (rs duc.RendererState, err error) {
	buf = clip(buf)
	if err = checkBuffer(buf, serial.RendererStateFileID); err != nil {
		return duc.RendererState{}, err
	}
	defer recoverTruncation(&err)
	return deserializeRendererState(serial.GetRootAsRendererState(buf, 0)), nil
}

// SerializeDictionary encodes |dict| as a document root carrying only the
// dictionary. Equal dictionaries encode to identical bytes.
func SerializeDictionary(dict map[string]string) []byte {
	b := fb.NewBuilder(entityBufferSize)
	entries := serializeDictionary(b, dict)
	serial.ExportedDataStateStart(b)
	serial.ExportedDataStateAddDictionary(b, entries)
	root := serial.ExportedDataStateEnd(b)
	return serial.FinishMessage(b, root, []byte(serial.DictionaryFileID))
}

// ParseDictionary reads the dictionary of a buffer produced by
// SerializeDictionary or SerializeDocument.
func ParseDictionary(buf []byte) (dict map[string]string, err error) {
	buf = clip(buf)
	if err = checkBuffer(buf, serial.DictionaryFileID); err != nil {
		if !ErrNotDucDocument.Is(err) {
			return nil, err
		}
		if err = checkBuffer(buf, serial.ExportedDataStateFileID); err != nil {
			return nil, ErrNotDucDocument.New(serial.DictionaryFileID, serial.GetFileID(buf))
		}
	}
	defer recoverTruncation(&err)
	return deserializeDictionary(serial.GetRootAsExportedDataState(buf, 0))
}
