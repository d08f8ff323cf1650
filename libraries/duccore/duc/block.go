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

// Block is a reusable, named template of elements. Instances are placed with
// BlockInstanceElement.
type Block struct {
	ID          string
	Label       string
	Description *string
	Version     int32
	Readonly    bool
	Elements    []Element
	// Attributes declares the dynamic attribute schema of the block, keyed by
	// attribute name. Instances supply the values.
	Attributes map[string]BlockAttributeDefinition
}

type BlockAttributeDefinition struct {
	Tag          string
	DefaultValue string
	Prompt       *string
	FieldLength  int32
}

// BlockDuplicationArray replicates a block instance on a regular grid.
type BlockDuplicationArray struct {
	Rows       int32
	Cols       int32
	RowSpacing PrecisionValue
	ColSpacing PrecisionValue
}

// Count returns the number of copies the array places, including the
// original instance.
func (a *BlockDuplicationArray) Count() int {
	if a == nil {
		return 1
	}
	if a.Rows <= 0 || a.Cols <= 0 {
		return 0
	}
	return int(a.Rows) * int(a.Cols)
}

// Offsets returns the translation of every copy relative to the instance
// origin, row by row, in the document's main scope.
func (a *BlockDuplicationArray) Offsets() []GeometricPoint {
	if a == nil {
		return []GeometricPoint{{}}
	}
	offs := make([]GeometricPoint, 0, a.Count())
	for r := int32(0); r < a.Rows; r++ {
		for c := int32(0); c < a.Cols; c++ {
			offs = append(offs, GeometricPoint{
				X: float64(c) * a.ColSpacing.Value,
				Y: float64(r) * a.RowSpacing.Value,
			})
		}
	}
	return offs
}

// ElementByID returns the template element with |id|, or nil.
func (b *Block) ElementByID(id string) Element {
	for _, e := range b.Elements {
		if e.Base().ID == id {
			return e
		}
	}
	return nil
}
