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
	"sort"

	fb "github.com/dolthub/flatbuffers/v23/go"

	"github.com/ducflair/duc-sub004/gen/fb/serial"
	"github.com/ducflair/duc-sub004/libraries/duccore/duc"
)

// Ref is a handle to a table that has been completely written to a builder.
// Refs can only be obtained from a serializer, so a parent table can only
// point at finished children. The zero Ref means absent.
type Ref struct {
	off fb.UOffsetT
}

func (r Ref) absent() bool {
	return r.off == 0
}

// refVector writes |refs| as a vector of tables, preserving order.
func refVector(b *fb.Builder, refs []Ref, start func(*fb.Builder, int) fb.UOffsetT) fb.UOffsetT {
	start(b, len(refs))
	for i := len(refs) - 1; i >= 0; i-- {
		b.PrependUOffsetT(refs[i].off)
	}
	return b.EndVector(len(refs))
}

// optionalString writes |s| if it is non-empty, otherwise it returns 0.
func optionalString(b *fb.Builder, s string) fb.UOffsetT {
	if s == "" {
		return 0
	}
	return b.CreateString(s)
}

// nullableString writes |s| if it is non-nil. An empty string is written so
// that it round trips as a present, empty value.
func nullableString(b *fb.Builder, s *string) fb.UOffsetT {
	if s == nil {
		return 0
	}
	return b.CreateString(*s)
}

func stringVector(b *fb.Builder, strs []string, start func(*fb.Builder, int) fb.UOffsetT) fb.UOffsetT {
	if len(strs) == 0 {
		return 0
	}
	offs := make([]fb.UOffsetT, len(strs))
	for i, s := range strs {
		offs[i] = b.CreateString(s)
	}
	start(b, len(offs))
	for i := len(offs) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offs[i])
	}
	return b.EndVector(len(offs))
}

func float64Vector(b *fb.Builder, vals []float64, start func(*fb.Builder, int) fb.UOffsetT) fb.UOffsetT {
	start(b, len(vals))
	for i := len(vals) - 1; i >= 0; i-- {
		b.PrependFloat64(vals[i])
	}
	return b.EndVector(len(vals))
}

func pointVector(b *fb.Builder, pts []duc.GeometricPoint, start func(*fb.Builder, int) fb.UOffsetT) fb.UOffsetT {
	if len(pts) == 0 {
		return 0
	}
	start(b, len(pts))
	for i := len(pts) - 1; i >= 0; i-- {
		serial.CreateGeometricPoint(b, pts[i].X, pts[i].Y)
	}
	return b.EndVector(len(pts))
}

func byteVector(b *fb.Builder, bs []byte) fb.UOffsetT {
	if len(bs) == 0 {
		return 0
	}
	return b.CreateByteVector(bs)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// stringValueEntries writes |m| as a vector of StringValueEntry in key order,
// or returns 0 for an empty map.
func stringValueEntries(b *fb.Builder, m map[string]string, start func(*fb.Builder, int) fb.UOffsetT) fb.UOffsetT {
	if len(m) == 0 {
		return 0
	}
	keys := sortedKeys(m)
	refs := make([]Ref, len(keys))
	for i, k := range keys {
		ko := b.CreateString(k)
		vo := b.CreateString(m[k])
		serial.StringValueEntryStart(b)
		serial.StringValueEntryAddKey(b, ko)
		serial.StringValueEntryAddValue(b, vo)
		refs[i] = Ref{serial.StringValueEntryEnd(b)}
	}
	return refVector(b, refs, start)
}

func styleRefEntries(b *fb.Builder, m map[duc.StyleCategory]string, start func(*fb.Builder, int) fb.UOffsetT) fb.UOffsetT {
	if len(m) == 0 {
		return 0
	}
	plain := make(map[string]string, len(m))
	for k, v := range m {
		plain[string(k)] = v
	}
	return stringValueEntries(b, plain, start)
}

func readNullableString(bs []byte) *string {
	if bs == nil {
		return nil
	}
	s := string(bs)
	return &s
}

func readPrecisionValue(pv *serial.PrecisionValue) duc.PrecisionValue {
	if pv == nil {
		return duc.PrecisionValue{}
	}
	return duc.PrecisionValue{Value: pv.Value(), Scoped: pv.Scoped()}
}

func readPoint(pt *serial.GeometricPoint) duc.GeometricPoint {
	if pt == nil {
		return duc.GeometricPoint{}
	}
	return duc.GeometricPoint{X: pt.X(), Y: pt.Y()}
}

func readStrings(n int, get func(int) []byte) []string {
	if n == 0 {
		return nil
	}
	var strs []string
	for i := 0; i < n; i++ {
		strs = append(strs, string(get(i)))
	}
	return strs
}

func readPoints(n int, get func(*serial.GeometricPoint, int) bool) []duc.GeometricPoint {
	if n == 0 {
		return nil
	}
	var pts []duc.GeometricPoint
	var pt serial.GeometricPoint
	for i := 0; i < n; i++ {
		get(&pt, i)
		pts = append(pts, readPoint(&pt))
	}
	return pts
}

// readStringValueEntries returns nil when the vector is absent or empty.
// Duplicate keys resolve to the last entry.
func readStringValueEntries(n int, get func(*serial.StringValueEntry, int) bool) (map[string]string, error) {
	if n == 0 {
		return nil, nil
	}
	m := make(map[string]string)
	var e serial.StringValueEntry
	for i := 0; i < n; i++ {
		get(&e, i)
		if e.Key() == nil {
			return nil, ErrMalformedEntity.New("string value entry", "missing key")
		}
		m[string(e.Key())] = string(e.Value())
	}
	return m, nil
}

func readStyleRefs(n int, get func(*serial.StringValueEntry, int) bool) (map[duc.StyleCategory]string, error) {
	plain, err := readStringValueEntries(n, get)
	if err != nil || plain == nil {
		return nil, err
	}
	m := make(map[duc.StyleCategory]string, len(plain))
	for k, v := range plain {
		m[duc.StyleCategory(k)] = v
	}
	return m, nil
}
