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

const (
	builderBufferSize = 4096
	entityBufferSize  = 512

	// minBufferSize is the root offset plus the file identifier.
	minBufferSize = fb.SizeUOffsetT + 4
)

// SerializeDocument encodes |doc| as a self-contained duc buffer. Each call
// uses its own builder, so concurrent calls are safe.
func SerializeDocument(doc *duc.Document) ([]byte, error) {
	if doc == nil {
		return nil, ErrMalformedEntity.New("document", "nil document")
	}
	b := fb.NewBuilder(builderBufferSize)

	elements, err := serializeElements(b, doc.Elements, serial.ExportedDataStateStartElementsVector)
	if err != nil {
		return nil, err
	}
	blocks, err := serializeBlocks(b, doc.Blocks)
	if err != nil {
		return nil, err
	}
	groups, err := serializeGroups(b, doc.Groups)
	if err != nil {
		return nil, err
	}
	regions, err := serializeRegions(b, doc.Regions)
	if err != nil {
		return nil, err
	}
	layers, err := serializeLayers(b, doc.Layers)
	if err != nil {
		return nil, err
	}
	dict := serializeDictionary(b, doc.Dictionary)
	rs := serializeRendererState(b, doc.RendererState)
	gs := serializeGlobalState(b, doc.GlobalState)
	ls := serializeLocalState(b, doc.LocalState)
	thumbnail := byteVector(b, doc.Thumbnail)
	files, err := serializeFiles(b, doc.Files)
	if err != nil {
		return nil, err
	}

	typ := optionalString(b, doc.Type)
	version := optionalString(b, doc.Version)
	source := optionalString(b, doc.Source)

	serial.ExportedDataStateStart(b)
	serial.ExportedDataStateAddType(b, typ)
	serial.ExportedDataStateAddVersion(b, version)
	serial.ExportedDataStateAddSource(b, source)
	serial.ExportedDataStateAddGlobalState(b, gs.off)
	serial.ExportedDataStateAddLocalState(b, ls.off)
	serial.ExportedDataStateAddElements(b, elements)
	serial.ExportedDataStateAddBlocks(b, blocks)
	serial.ExportedDataStateAddGroups(b, groups)
	serial.ExportedDataStateAddRegions(b, regions)
	serial.ExportedDataStateAddLayers(b, layers)
	serial.ExportedDataStateAddDictionary(b, dict)
	serial.ExportedDataStateAddThumbnail(b, thumbnail)
	serial.ExportedDataStateAddRendererState(b, rs.off)
	serial.ExportedDataStateAddFiles(b, files)
	root := serial.ExportedDataStateEnd(b)
	return serial.FinishMessage(b, root, []byte(serial.ExportedDataStateFileID)), nil
}

// ParseDocument decodes a buffer produced by SerializeDocument. It fails as a
// whole on the first malformed entity. The returned document does not alias
// |buf|.
func ParseDocument(buf []byte) (doc *duc.Document, err error) {
	buf = clip(buf)
	if err = checkBuffer(buf, serial.ExportedDataStateFileID); err != nil {
		return nil, err
	}
	defer recoverTruncation(&err)

	s := serial.GetRootAsExportedDataState(buf, 0)
	doc = &duc.Document{
		Type:          string(s.Type()),
		Version:       string(s.Version()),
		Source:        string(s.Source()),
		GlobalState:   deserializeGlobalState(s.GlobalState(nil)),
		LocalState:    deserializeLocalState(s.LocalState(nil)),
		RendererState: deserializeRendererState(s.RendererState(nil)),
		Thumbnail:     readThumbnail(s),
	}

	if doc.Elements, err = deserializeElements(s.ElementsLength(), s.Elements); err != nil {
		return nil, err
	}
	if doc.Blocks, err = deserializeBlocks(s); err != nil {
		return nil, err
	}
	if doc.Groups, err = deserializeGroups(s); err != nil {
		return nil, err
	}
	if doc.Regions, err = deserializeRegions(s); err != nil {
		return nil, err
	}
	if doc.Layers, err = deserializeLayers(s); err != nil {
		return nil, err
	}
	if doc.Dictionary, err = deserializeDictionary(s); err != nil {
		return nil, err
	}
	if doc.Files, err = deserializeFiles(s); err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseThumbnail returns the thumbnail of a document buffer without decoding
// the rest of the document. A missing or empty thumbnail is nil.
func ParseThumbnail(buf []byte) (thumb []byte, err error) {
	buf = clip(buf)
	if err = checkBuffer(buf, serial.ExportedDataStateFileID); err != nil {
		return nil, err
	}
	defer recoverTruncation(&err)
	return readThumbnail(serial.GetRootAsExportedDataState(buf, 0)), nil
}

func readThumbnail(s *serial.ExportedDataState) []byte {
	bs := s.ThumbnailBytes()
	if len(bs) == 0 {
		return nil
	}
	return append([]byte(nil), bs...)
}

// Summary describes a document buffer without decoding its entities.
type Summary struct {
	Type    string
	Version string
	Source  string

	Elements       int
	Blocks         int
	Groups         int
	Regions        int
	Layers         int
	DictionaryKeys int
	Files          int
	Tombstones     int
	ThumbnailBytes int
}

// Summarize reads the header fields and entity counts of a document buffer.
func Summarize(buf []byte) (sum Summary, err error) {
	buf = clip(buf)
	if err = checkBuffer(buf, serial.ExportedDataStateFileID); err != nil {
		return Summary{}, err
	}
	defer recoverTruncation(&err)

	s := serial.GetRootAsExportedDataState(buf, 0)
	sum = Summary{
		Type:           string(s.Type()),
		Version:        string(s.Version()),
		Source:         string(s.Source()),
		Elements:       s.ElementsLength(),
		Blocks:         s.BlocksLength(),
		Groups:         s.GroupsLength(),
		Regions:        s.RegionsLength(),
		Layers:         s.LayersLength(),
		DictionaryKeys: s.DictionaryLength(),
		Files:          s.FilesLength(),
		ThumbnailBytes: s.ThumbnailLength(),
	}
	if rs := s.RendererState(nil); rs != nil {
		sum.Tombstones = rs.DeletedElementIdsLength()
	}
	return sum, nil
}

// clip caps the capacity of |buf| at its length, so that vector reads past
// the end of a truncated buffer fail instead of reading the backing array.
func clip(buf []byte) []byte {
	return buf[:len(buf):len(buf)]
}

func checkBuffer(buf []byte, fileID string) error {
	if len(buf) < minBufferSize {
		return ErrTruncatedBuffer.New("buffer too short to hold a root table")
	}
	if id := serial.GetFileID(buf); id != fileID {
		return ErrNotDucDocument.New(fileID, id)
	}
	return nil
}

func serializeBlocks(b *fb.Builder, blocks []*duc.Block) (fb.UOffsetT, error) {
	if len(blocks) == 0 {
		return 0, nil
	}
	refs := make([]Ref, len(blocks))
	for i, blk := range blocks {
		var err error
		if refs[i], err = serializeBlock(b, blk); err != nil {
			return 0, err
		}
	}
	return refVector(b, refs, serial.ExportedDataStateStartBlocksVector), nil
}

func deserializeBlocks(s *serial.ExportedDataState) ([]*duc.Block, error) {
	n := s.BlocksLength()
	if n == 0 {
		return nil, nil
	}
	var blocks []*duc.Block
	var t serial.DucBlock
	for i := 0; i < n; i++ {
		s.Blocks(&t, i)
		blk, err := deserializeBlock(&t)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, blk)
	}
	return blocks, nil
}

func serializeGroups(b *fb.Builder, groups []*duc.Group) (fb.UOffsetT, error) {
	if len(groups) == 0 {
		return 0, nil
	}
	refs := make([]Ref, len(groups))
	for i, g := range groups {
		var err error
		if refs[i], err = serializeGroup(b, g); err != nil {
			return 0, err
		}
	}
	return refVector(b, refs, serial.ExportedDataStateStartGroupsVector), nil
}

func deserializeGroups(s *serial.ExportedDataState) ([]*duc.Group, error) {
	n := s.GroupsLength()
	if n == 0 {
		return nil, nil
	}
	var groups []*duc.Group
	var t serial.DucGroup
	for i := 0; i < n; i++ {
		s.Groups(&t, i)
		g, err := deserializeGroup(&t)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}

func serializeRegions(b *fb.Builder, regions []*duc.Region) (fb.UOffsetT, error) {
	if len(regions) == 0 {
		return 0, nil
	}
	refs := make([]Ref, len(regions))
	for i, r := range regions {
		var err error
		if refs[i], err = serializeRegion(b, r); err != nil {
			return 0, err
		}
	}
	return refVector(b, refs, serial.ExportedDataStateStartRegionsVector), nil
}

func deserializeRegions(s *serial.ExportedDataState) ([]*duc.Region, error) {
	n := s.RegionsLength()
	if n == 0 {
		return nil, nil
	}
	var regions []*duc.Region
	var t serial.DucRegion
	for i := 0; i < n; i++ {
		s.Regions(&t, i)
		r, err := deserializeRegion(&t)
		if err != nil {
			return nil, err
		}
		regions = append(regions, r)
	}
	return regions, nil
}

func serializeLayers(b *fb.Builder, layers []*duc.Layer) (fb.UOffsetT, error) {
	if len(layers) == 0 {
		return 0, nil
	}
	refs := make([]Ref, len(layers))
	for i, l := range layers {
		var err error
		if refs[i], err = serializeLayer(b, l); err != nil {
			return 0, err
		}
	}
	return refVector(b, refs, serial.ExportedDataStateStartLayersVector), nil
}

func deserializeLayers(s *serial.ExportedDataState) ([]*duc.Layer, error) {
	n := s.LayersLength()
	if n == 0 {
		return nil, nil
	}
	var layers []*duc.Layer
	var t serial.DucLayer
	for i := 0; i < n; i++ {
		s.Layers(&t, i)
		l, err := deserializeLayer(&t)
		if err != nil {
			return nil, err
		}
		layers = append(layers, l)
	}
	return layers, nil
}
