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

import (
	"fmt"
	"sort"
)

const (
	// DocumentType is the value of Document.Type for duc documents.
	DocumentType = "duc"
	// CurrentVersion is the format version written by this package.
	CurrentVersion = "2.0.0"
)

// ExternalFile is a binary payload, usually an image, referenced by id from
// ImageElement.FileID.
type ExternalFile struct {
	ID       string
	MimeType string
	Data     []byte
	// Created and LastRetrieved are unix milliseconds.
	Created       int64
	LastRetrieved *int64
}

// Document is the full in-memory tree of a duc document.
type Document struct {
	Type    string
	Version string
	Source  string

	GlobalState *GlobalState
	LocalState  *LocalState

	Elements []Element
	Blocks   []*Block
	Groups   []*Group
	Regions  []*Region
	Layers   []*Layer

	Dictionary map[string]string
	// Thumbnail is an encoded preview image. nil means the document has none.
	Thumbnail     []byte
	RendererState RendererState
	Files         map[string]*ExternalFile
}

// NewDocument returns an empty document stamped with |source|.
func NewDocument(source string) *Document {
	return &Document{
		Type:          DocumentType,
		Version:       CurrentVersion,
		Source:        source,
		GlobalState:   NewGlobalState(),
		LocalState:    NewLocalState(),
		Dictionary:    make(map[string]string),
		RendererState: RendererState{DeletedElementIDs: []string{}},
	}
}

// ElementByID returns the top level element with |id|, or nil.
func (d *Document) ElementByID(id string) Element {
	for _, e := range d.Elements {
		if e.Base().ID == id {
			return e
		}
	}
	return nil
}

func (d *Document) GroupByID(id string) *Group {
	for _, g := range d.Groups {
		if g.ID == id {
			return g
		}
	}
	return nil
}

func (d *Document) RegionByID(id string) *Region {
	for _, r := range d.Regions {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func (d *Document) LayerByID(id string) *Layer {
	for _, l := range d.Layers {
		if l.ID == id {
			return l
		}
	}
	return nil
}

func (d *Document) BlockByID(id string) *Block {
	for _, b := range d.Blocks {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// ActiveElements returns the elements that are neither flagged deleted nor
// tombstoned in the renderer state.
func (d *Document) ActiveElements() []Element {
	active := make([]Element, 0, len(d.Elements))
	for _, e := range d.Elements {
		if e.Base().IsDeleted || d.RendererState.IsDeleted(e.Base().ID) {
			continue
		}
		active = append(active, e)
	}
	return active
}

// CountByType returns the number of top level elements of each type.
func (d *Document) CountByType() map[ElementType]int {
	counts := make(map[ElementType]int)
	for _, e := range d.Elements {
		counts[e.Type()]++
	}
	return counts
}

// DictionaryKeys returns the dictionary keys in sorted order.
func (d *Document) DictionaryKeys() []string {
	keys := make([]string, 0, len(d.Dictionary))
	for k := range d.Dictionary {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Issue is a referential problem found by Lint. Issues do not prevent a
// document from being encoded.
type Issue struct {
	ElementID string
	Message   string
}

func (i Issue) String() string {
	if i.ElementID == "" {
		return i.Message
	}
	return fmt.Sprintf("%s: %s", i.ElementID, i.Message)
}

// Lint reports duplicate element ids and references to groups, regions,
// layers, frames, blocks and files that the document does not contain.
func (d *Document) Lint() []Issue {
	var issues []Issue

	seen := make(map[string]struct{}, len(d.Elements))
	for _, e := range d.Elements {
		id := e.Base().ID
		if _, ok := seen[id]; ok {
			issues = append(issues, Issue{ElementID: id, Message: "duplicate element id"})
		}
		seen[id] = struct{}{}
	}

	for _, e := range d.Elements {
		b := e.Base()
		for _, gid := range b.GroupIDs {
			if d.GroupByID(gid) == nil {
				issues = append(issues, Issue{b.ID, fmt.Sprintf("unknown group %q", gid)})
			}
		}
		for _, rid := range b.RegionIDs {
			if d.RegionByID(rid) == nil {
				issues = append(issues, Issue{b.ID, fmt.Sprintf("unknown region %q", rid)})
			}
		}
		if b.LayerID != nil && d.LayerByID(*b.LayerID) == nil {
			issues = append(issues, Issue{b.ID, fmt.Sprintf("unknown layer %q", *b.LayerID)})
		}
		if b.FrameID != nil {
			if _, ok := seen[*b.FrameID]; !ok {
				issues = append(issues, Issue{b.ID, fmt.Sprintf("unknown frame %q", *b.FrameID)})
			}
		}
		switch el := e.(type) {
		case *BlockInstanceElement:
			blk := d.BlockByID(el.BlockID)
			if blk == nil {
				issues = append(issues, Issue{b.ID, fmt.Sprintf("unknown block %q", el.BlockID)})
				break
			}
			for _, cid := range sortedKeys(el.ElementOverrides) {
				if cid != InstanceAttributesKey && blk.ElementByID(cid) == nil {
					issues = append(issues, Issue{b.ID, fmt.Sprintf("override for %q which block %q does not contain", cid, blk.ID)})
				}
			}
		case *ImageElement:
			if el.FileID != nil {
				if _, ok := d.Files[*el.FileID]; !ok {
					issues = append(issues, Issue{b.ID, fmt.Sprintf("unknown file %q", *el.FileID)})
				}
			}
		}
	}

	for _, id := range d.RendererState.DeletedElementIDs {
		if _, ok := seen[id]; !ok {
			issues = append(issues, Issue{Message: fmt.Sprintf("tombstone for unknown element %q", id)})
		}
	}

	return issues
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
