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
)

// serializeDictionary writes |dict| in ascending key order so that equal
// dictionaries produce identical bytes.
func serializeDictionary(b *fb.Builder, dict map[string]string) fb.UOffsetT {
	if len(dict) == 0 {
		return 0
	}
	keys := sortedKeys(dict)
	refs := make([]Ref, len(keys))
	for i, k := range keys {
		ko := b.CreateString(k)
		vo := b.CreateString(dict[k])
		serial.DictionaryEntryStart(b)
		serial.DictionaryEntryAddKey(b, ko)
		serial.DictionaryEntryAddValue(b, vo)
		refs[i] = Ref{serial.DictionaryEntryEnd(b)}
	}
	return refVector(b, refs, serial.ExportedDataStateStartDictionaryVector)
}

// deserializeDictionary returns a non-nil map. When a key repeats, the last
// entry wins.
func deserializeDictionary(s *serial.ExportedDataState) (map[string]string, error) {
	n := s.DictionaryLength()
	dict := make(map[string]string)
	var e serial.DictionaryEntry
	for i := 0; i < n; i++ {
		s.Dictionary(&e, i)
		if e.Key() == nil {
			return nil, ErrMalformedEntity.New("dictionary entry", "missing key")
		}
		dict[string(e.Key())] = string(e.Value())
	}
	return dict, nil
}
