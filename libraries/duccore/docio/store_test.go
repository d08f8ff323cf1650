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


package docio

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducflair/duc-sub004/libraries/duccore/duc"
	"github.com/ducflair/duc-sub004/libraries/duccore/encoding"
	"github.com/ducflair/duc-sub004/libraries/utils/filesys"
)

func testDoc() *duc.Document {
	doc := duc.NewDocument("docio-test")
	rect := &duc.RectangleElement{ElementBase: duc.NewElementBase("rect-1")}
	rect.Width = duc.PV(10)
	rect.Height = duc.PV(20)
	doc.Elements = []duc.Element{rect}
	doc.Dictionary["author"] = "someone"
	doc.Thumbnail = []byte{1, 2, 3}
	return doc
}

func newTestStore(t *testing.T) (*Store, *filesys.InMemFS, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	fs := filesys.EmptyInMemFS("/work")
	return NewStore(fs, logger), fs, hook
}

func TestContainerRoundTrip(t *testing.T) {
	buf, err := encoding.SerializeDocument(testDoc())
	require.NoError(t, err)

	for _, format := range []Format{FormatRaw, FormatSnappy} {
		wrapped, err := Wrap(buf, format)
		require.NoError(t, err)
		assert.Equal(t, format, DetectFormat(wrapped))

		unwrapped, detected, err := Unwrap(wrapped)
		require.NoError(t, err)
		assert.Equal(t, format, detected)
		assert.Equal(t, buf, unwrapped)
	}

	_, err = Wrap(buf, Format(9))
	assert.Error(t, err)
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatRaw, FormatForPath("plan.duc"))
	assert.Equal(t, FormatSnappy, FormatForPath("plan.duc.sz"))
	assert.Equal(t, FormatSnappy, FormatForPath("/a/b/PLAN.DUC.SZ"))
	assert.Equal(t, "snappy", FormatSnappy.String())
	assert.Equal(t, "raw", FormatRaw.String())
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint([]byte("document a"))
	assert.Len(t, a, 32)
	assert.Equal(t, a, Fingerprint([]byte("document a")))
	assert.NotEqual(t, a, Fingerprint([]byte("document b")))
}

func TestStoreSaveLoad(t *testing.T) {
	store, fs, hook := newTestStore(t)
	doc := testDoc()

	require.NoError(t, store.Save("plans/site.duc", doc))
	require.NoError(t, store.Save("plans/site.duc.sz", doc))

	raw, err := fs.ReadFile("/work/plans/site.duc")
	require.NoError(t, err)
	packed, err := fs.ReadFile("/work/plans/site.duc.sz")
	require.NoError(t, err)
	assert.Equal(t, FormatRaw, DetectFormat(raw))
	assert.Equal(t, FormatSnappy, DetectFormat(packed))

	for _, path := range []string{"plans/site.duc", "plans/site.duc.sz"} {
		loaded, err := store.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "docio-test", loaded.Source)
		require.Len(t, loaded.Elements, 1)
		assert.Equal(t, "rect-1", loaded.Elements[0].Base().ID)
		assert.Equal(t, "someone", loaded.Dictionary["author"])
	}

	rawFile, err := store.ReadFile("plans/site.duc")
	require.NoError(t, err)
	packedFile, err := store.ReadFile("plans/site.duc.sz")
	require.NoError(t, err)
	assert.Equal(t, rawFile.Fingerprint(), packedFile.Fingerprint())
	assert.Equal(t, len(packed), packedFile.StoredBytes)

	var sawWrite, sawRead bool
	for _, entry := range hook.AllEntries() {
		assert.Equal(t, logrus.DebugLevel, entry.Level)
		assert.Contains(t, entry.Data, "path")
		assert.Contains(t, entry.Data, "fingerprint")
		switch entry.Message {
		case "wrote document file":
			sawWrite = true
		case "read document file":
			sawRead = true
		}
	}
	assert.True(t, sawWrite)
	assert.True(t, sawRead)
}

func TestStoreDetectsCompressionRegardlessOfName(t *testing.T) {
	store, _, _ := newTestStore(t)
	buf, err := encoding.SerializeDocument(testDoc())
	require.NoError(t, err)

	require.NoError(t, store.WriteFile("misnamed.duc", buf, FormatSnappy))
	f, err := store.ReadFile("misnamed.duc")
	require.NoError(t, err)
	assert.Equal(t, FormatSnappy, f.Format)
	assert.Equal(t, buf, f.Buf)
}

func TestStoreErrors(t *testing.T) {
	store, fs, _ := newTestStore(t)

	_, err := store.Load("missing.duc")
	require.Error(t, err)

	require.NoError(t, fs.WriteFile("/work/not-a-doc.duc", []byte("this is not a duc document"), 0644))
	_, err = store.Load("not-a-doc.duc")
	require.Error(t, err)
	assert.True(t, encoding.IsKind(err, encoding.ErrNotDucDocument), "unexpected error: %v", err)
	assert.Contains(t, err.Error(), "not-a-doc.duc")

	require.NoError(t, fs.WriteFile("/work/corrupt.duc.sz", append([]byte("\xff\x06\x00\x00sNaPpY"), 0x00, 0x10, 0x00), 0644))
	_, err = store.Load("corrupt.duc.sz")
	require.Error(t, err)
	assert.False(t, encoding.IsKind(err, encoding.ErrNotDucDocument))

	err = store.Save("bad.duc", &duc.Document{Elements: []duc.Element{&duc.RectangleElement{}}})
	require.Error(t, err)
	assert.True(t, encoding.IsKind(err, encoding.ErrMalformedEntity))
}

func TestStoreUpdateKeepsFormat(t *testing.T) {
	store, fs, _ := newTestStore(t)
	require.NoError(t, store.SaveAs("doc.duc", testDoc(), FormatSnappy))

	require.NoError(t, store.Update("doc.duc", func(doc *duc.Document) error {
		doc.Dictionary["reviewed"] = "yes"
		return nil
	}))

	data, err := fs.ReadFile("/work/doc.duc")
	require.NoError(t, err)
	assert.Equal(t, FormatSnappy, DetectFormat(data))

	doc, err := store.Load("doc.duc")
	require.NoError(t, err)
	assert.Equal(t, "yes", doc.Dictionary["reviewed"])

	boom := errors.New("boom")
	err = store.Update("doc.duc", func(doc *duc.Document) error { return boom })
	assert.Equal(t, boom, err)
}
