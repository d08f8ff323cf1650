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
	"sync"
	"testing"

	fb "github.com/dolthub/flatbuffers/v23/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducflair/duc-sub004/gen/fb/serial"
	"github.com/ducflair/duc-sub004/libraries/duccore/duc"
)

func TestDocumentRoundTrip(t *testing.T) {
	doc := testDocument()
	buf, err := SerializeDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, serial.ExportedDataStateFileID, serial.GetFileID(buf))

	parsed, err := ParseDocument(buf)
	require.NoError(t, err)
	if d := diff(doc, parsed); d != "" {
		t.Errorf("document round trip mismatch (-want +got):\n%s", d)
	}
}

func TestEmptyDocumentRoundTrip(t *testing.T) {
	doc := duc.NewDocument("")
	buf, err := SerializeDocument(doc)
	require.NoError(t, err)

	parsed, err := ParseDocument(buf)
	require.NoError(t, err)
	assert.Equal(t, duc.DocumentType, parsed.Type)
	assert.Equal(t, duc.CurrentVersion, parsed.Version)
	assert.Empty(t, parsed.Elements)
	assert.Nil(t, parsed.Thumbnail)
	assert.NotNil(t, parsed.RendererState.DeletedElementIDs)
	assert.Empty(t, parsed.RendererState.DeletedElementIDs)
	assert.NotNil(t, parsed.Dictionary)
	assert.Empty(t, parsed.Dictionary)
}

func TestSerializeDocumentNil(t *testing.T) {
	_, err := SerializeDocument(nil)
	require.Error(t, err)
	assert.True(t, ErrMalformedEntity.Is(err))
}

func TestSerializeDocumentIsDeterministic(t *testing.T) {
	first, err := SerializeDocument(testDocument())
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := SerializeDocument(testDocument())
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestThumbnail(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		doc := testDocument()
		buf, err := SerializeDocument(doc)
		require.NoError(t, err)

		thumb, err := ParseThumbnail(buf)
		require.NoError(t, err)
		assert.Equal(t, doc.Thumbnail, thumb)

		// the returned bytes do not alias the buffer
		thumb[0] = 0
		again, err := ParseThumbnail(buf)
		require.NoError(t, err)
		assert.Equal(t, doc.Thumbnail, again)
	})

	t.Run("zero length", func(t *testing.T) {
		doc := testDocument()
		doc.Thumbnail = []byte{}
		buf, err := SerializeDocument(doc)
		require.NoError(t, err)

		thumb, err := ParseThumbnail(buf)
		require.NoError(t, err)
		assert.Nil(t, thumb)

		parsed, err := ParseDocument(buf)
		require.NoError(t, err)
		assert.Nil(t, parsed.Thumbnail)
	})
}

func TestAbsentRendererStateParsesEmpty(t *testing.T) {
	b := fb.NewBuilder(64)
	typ := b.CreateString(duc.DocumentType)
	serial.ExportedDataStateStart(b)
	serial.ExportedDataStateAddType(b, typ)
	root := serial.ExportedDataStateEnd(b)
	buf := serial.FinishMessage(b, root, []byte(serial.ExportedDataStateFileID))

	doc, err := ParseDocument(buf)
	require.NoError(t, err)
	assert.Equal(t, duc.DocumentType, doc.Type)
	assert.Nil(t, doc.GlobalState)
	assert.Nil(t, doc.LocalState)
	require.NotNil(t, doc.RendererState.DeletedElementIDs)
	assert.Len(t, doc.RendererState.DeletedElementIDs, 0)
}

func TestDocumentWithBrokenRegionFails(t *testing.T) {
	b := fb.NewBuilder(128)
	id := b.CreateString("r-broken")
	serial.DucRegionStart(b)
	serial.DucRegionAddId(b, id)
	region := serial.DucRegionEnd(b)

	serial.ExportedDataStateStartRegionsVector(b, 1)
	b.PrependUOffsetT(region)
	regions := b.EndVector(1)

	serial.ExportedDataStateStart(b)
	serial.ExportedDataStateAddRegions(b, regions)
	root := serial.ExportedDataStateEnd(b)
	buf := serial.FinishMessage(b, root, []byte(serial.ExportedDataStateFileID))

	doc, err := ParseDocument(buf)
	require.Error(t, err)
	assert.True(t, ErrInvalidSubstructure.Is(err), "unexpected error: %v", err)
	assert.Nil(t, doc)
}

func TestDocumentFailsOnFirstMalformedElement(t *testing.T) {
	doc := testDocument()
	doc.Elements = append(doc.Elements, &duc.RectangleElement{ElementBase: duc.NewElementBase("")})
	_, err := SerializeDocument(doc)
	require.Error(t, err)
	assert.True(t, ErrMalformedEntity.Is(err))

	doc = testDocument()
	doc.Groups = append(doc.Groups, &duc.Group{StackBase: duc.NewStackBase("anonymous")})
	_, err = SerializeDocument(doc)
	require.Error(t, err)
	assert.True(t, ErrMalformedEntity.Is(err))

	doc = testDocument()
	doc.Files["bad"] = &duc.ExternalFile{MimeType: "image/png"}
	_, err = SerializeDocument(doc)
	require.Error(t, err)
	assert.True(t, ErrMalformedEntity.Is(err))
}

func TestNilFilesAreSkipped(t *testing.T) {
	doc := testDocument()
	doc.Files["dangling"] = nil
	buf, err := SerializeDocument(doc)
	require.NoError(t, err)

	parsed, err := ParseDocument(buf)
	require.NoError(t, err)
	assert.Len(t, parsed.Files, 2)
	assert.NotContains(t, parsed.Files, "dangling")
}

func TestParseDocumentRejectsForeignBuffers(t *testing.T) {
	t.Run("too short", func(t *testing.T) {
		_, err := ParseDocument([]byte{1, 2, 3})
		require.Error(t, err)
		assert.True(t, ErrTruncatedBuffer.Is(err))

		_, err = ParseDocument(nil)
		require.Error(t, err)
		assert.True(t, ErrTruncatedBuffer.Is(err))
	})

	t.Run("wrong identifier", func(t *testing.T) {
		buf, err := SerializeGroup(&duc.Group{ID: "g", StackBase: duc.NewStackBase("g")})
		require.NoError(t, err)
		_, err = ParseDocument(buf)
		require.Error(t, err)
		assert.True(t, ErrNotDucDocument.Is(err))

		_, err = ParseDocument([]byte("0000PNG_and some more bytes"))
		require.Error(t, err)
		assert.True(t, ErrNotDucDocument.Is(err))
	})
}

func TestParseDocumentTruncated(t *testing.T) {
	t.Run("header only", func(t *testing.T) {
		buf, err := SerializeDocument(testDocument())
		require.NoError(t, err)

		_, err = ParseDocument(buf[:12])
		require.Error(t, err)
		assert.True(t, ErrTruncatedBuffer.Is(err), "unexpected error: %v", err)

		_, err = Summarize(buf[:12])
		require.Error(t, err)
		assert.True(t, ErrTruncatedBuffer.Is(err), "unexpected error: %v", err)
	})

	t.Run("missing tail", func(t *testing.T) {
		doc := duc.NewDocument("")
		doc.Elements = []duc.Element{
			&duc.RectangleElement{ElementBase: duc.NewElementBase("a-rather-long-element-identifier-0123456789")},
		}
		buf, err := SerializeDocument(doc)
		require.NoError(t, err)

		_, err = ParseDocument(buf[:len(buf)-8])
		require.Error(t, err)
		assert.True(t, ErrTruncatedBuffer.Is(err), "unexpected error: %v", err)
	})

	t.Run("spare capacity", func(t *testing.T) {
		buf, err := SerializeElement(&duc.RectangleElement{
			ElementBase: duc.NewElementBase("a-rather-long-element-identifier-0123456789"),
		})
		require.NoError(t, err)

		grown := append(make([]byte, 0, 2*len(buf)), buf...)
		_, err = ParseElement(grown[:len(buf)-8])
		require.Error(t, err)
		assert.True(t, ErrTruncatedBuffer.Is(err), "unexpected error: %v", err)

		el, err := ParseElement(grown)
		require.NoError(t, err)
		assert.Equal(t, "a-rather-long-element-identifier-0123456789", el.Base().ID)
	})
}

// forgeVectorLen overwrites the length prefix of the vector stored in field
// |slot| of |tab|.
func forgeVectorLen(t *testing.T, buf []byte, tab fb.Table, slot fb.VOffsetT, n uint32) {
	o := fb.UOffsetT(tab.Offset(slot))
	require.NotZero(t, o)
	start := tab.Vector(o)
	fb.WriteUint32(buf[start-fb.SizeUOffsetT:], n)
}

func TestParseDocumentForgedVectorLength(t *testing.T) {
	t.Run("tombstones", func(t *testing.T) {
		doc := duc.NewDocument("")
		doc.RendererState.DeletedElementIDs = []string{"gone"}
		buf, err := SerializeDocument(doc)
		require.NoError(t, err)

		rs := serial.GetRootAsExportedDataState(buf, 0).RendererState(nil)
		require.NotNil(t, rs)
		forgeVectorLen(t, buf, rs.Table(), 4, 0x7fffffff)

		_, err = ParseDocument(buf)
		require.Error(t, err)
		assert.True(t, ErrTruncatedBuffer.Is(err), "unexpected error: %v", err)

		_, err = ParseRendererState(SerializeRendererState(doc.RendererState))
		require.NoError(t, err)
	})

	t.Run("dictionary", func(t *testing.T) {
		doc := duc.NewDocument("")
		doc.Dictionary = map[string]string{"k": "v"}
		buf, err := SerializeDocument(doc)
		require.NoError(t, err)

		forgeVectorLen(t, buf, serial.GetRootAsExportedDataState(buf, 0).Table(), 24, 0x7fffffff)

		// Entries past the first read whatever follows the offset slot, so
		// the parse may stop on a garbage entry before it runs off the end.
		_, err = ParseDocument(buf)
		require.Error(t, err)
		assert.True(t, ErrTruncatedBuffer.Is(err) || ErrMalformedEntity.Is(err), "unexpected error: %v", err)

		_, err = ParseDictionary(buf)
		require.Error(t, err)
		assert.True(t, ErrTruncatedBuffer.Is(err) || ErrMalformedEntity.Is(err), "unexpected error: %v", err)
	})
}

func TestSummarize(t *testing.T) {
	doc := testDocument()
	buf, err := SerializeDocument(doc)
	require.NoError(t, err)

	sum, err := Summarize(buf)
	require.NoError(t, err)
	assert.Equal(t, Summary{
		Type:           duc.DocumentType,
		Version:        duc.CurrentVersion,
		Source:         "encoding-test",
		Elements:       len(doc.Elements),
		Blocks:         1,
		Groups:         2,
		Regions:        2,
		Layers:         1,
		DictionaryKeys: 3,
		Files:          2,
		Tombstones:     2,
		ThumbnailBytes: len(doc.Thumbnail),
	}, sum)
}

func TestConcurrentParse(t *testing.T) {
	doc := testDocument()
	buf, err := SerializeDocument(doc)
	require.NoError(t, err)

	const workers = 16
	errs := make([]error, workers)
	docs := make([]*duc.Document, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			docs[i], errs[i] = ParseDocument(buf)
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Empty(t, diff(doc, docs[i]))
	}
}

func TestConcurrentSerialize(t *testing.T) {
	want, err := SerializeDocument(testDocument())
	require.NoError(t, err)

	const workers = 8
	bufs := make([][]byte, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			bufs[i], _ = SerializeDocument(testDocument())
		}(i)
	}
	wg.Wait()

	for _, buf := range bufs {
		assert.Equal(t, want, buf)
	}
}
