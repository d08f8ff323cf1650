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

// serializeFiles writes the external files in ascending key order. Nil
// entries are skipped.
func serializeFiles(b *fb.Builder, files map[string]*duc.ExternalFile) (fb.UOffsetT, error) {
	if len(files) == 0 {
		return 0, nil
	}
	keys := sortedKeys(files)
	refs := make([]Ref, 0, len(keys))
	for _, k := range keys {
		f := files[k]
		if f == nil {
			continue
		}
		if f.ID == "" {
			return 0, ErrMalformedEntity.New("external file "+k, "missing id")
		}
		key := b.CreateString(k)
		id := b.CreateString(f.ID)
		mime := optionalString(b, f.MimeType)
		data := byteVector(b, f.Data)

		serial.DucExternalFileDataStart(b)
		serial.DucExternalFileDataAddId(b, id)
		serial.DucExternalFileDataAddMimeType(b, mime)
		serial.DucExternalFileDataAddData(b, data)
		serial.DucExternalFileDataAddCreated(b, f.Created)
		if f.LastRetrieved != nil {
			serial.DucExternalFileDataAddLastRetrieved(b, *f.LastRetrieved)
		}
		val := serial.DucExternalFileDataEnd(b)

		serial.DucExternalFileEntryStart(b)
		serial.DucExternalFileEntryAddKey(b, key)
		serial.DucExternalFileEntryAddValue(b, val)
		refs = append(refs, Ref{serial.DucExternalFileEntryEnd(b)})
	}
	return refVector(b, refs, serial.ExportedDataStateStartFilesVector), nil
}

func deserializeFiles(s *serial.ExportedDataState) (map[string]*duc.ExternalFile, error) {
	n := s.FilesLength()
	if n == 0 {
		return nil, nil
	}
	files := make(map[string]*duc.ExternalFile)
	var e serial.DucExternalFileEntry
	for i := 0; i < n; i++ {
		s.Files(&e, i)
		if e.Key() == nil {
			return nil, ErrMalformedEntity.New("external file entry", "missing key")
		}
		key := string(e.Key())
		v := e.Value(nil)
		if v == nil || v.Id() == nil {
			return nil, ErrMalformedEntity.New("external file "+key, "missing id")
		}

		f := &duc.ExternalFile{
			ID:       string(v.Id()),
			MimeType: string(v.MimeType()),
			Created:  v.Created(),
		}
		if data := v.DataBytes(); len(data) > 0 {
			f.Data = append([]byte(nil), data...)
		}
		if lr := v.LastRetrieved(); lr != nil {
			last := *lr
			f.LastRetrieved = &last
		}
		files[key] = f
	}
	return files, nil
}
