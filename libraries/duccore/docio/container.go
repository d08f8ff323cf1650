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
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
	"github.com/zeebo/xxh3"
)

// Format is the container a document buffer is stored in.
type Format int

const (
	// FormatRaw is the bare document buffer.
	FormatRaw Format = iota
	// FormatSnappy is the document buffer wrapped in a snappy framed stream.
	FormatSnappy
)

const (
	Ext           = ".duc"
	CompressedExt = ".duc.sz"
)

// snappyMagic is the stream identifier chunk every snappy framed stream starts with.
var snappyMagic = []byte("\xff\x06\x00\x00sNaPpY")

func (f Format) String() string {
	switch f {
	case FormatRaw:
		return "raw"
	case FormatSnappy:
		return "snappy"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// DetectFormat inspects the leading bytes of |data|.
func DetectFormat(data []byte) Format {
	if bytes.HasPrefix(data, snappyMagic) {
		return FormatSnappy
	}
	return FormatRaw
}

// FormatForPath returns the format implied by the extension of |path|.
func FormatForPath(path string) Format {
	if strings.HasSuffix(strings.ToLower(path), CompressedExt) {
		return FormatSnappy
	}
	return FormatRaw
}

// Compress wraps |buf| in a snappy framed stream.
func Compress(buf []byte) ([]byte, error) {
	var out bytes.Buffer
	w := snappy.NewBufferedWriter(&out)
	if _, err := w.Write(buf); err != nil {
		return nil, errors.Wrap(err, "snappy compression failed")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "snappy compression failed")
	}
	return out.Bytes(), nil
}

// Decompress unwraps a snappy framed stream.
func Decompress(data []byte) ([]byte, error) {
	buf, err := io.ReadAll(snappy.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, errors.Wrap(err, "snappy decompression failed")
	}
	return buf, nil
}

// Unwrap returns the document buffer held in |data|, decompressing it when
// it is a snappy stream.
func Unwrap(data []byte) ([]byte, Format, error) {
	format := DetectFormat(data)
	if format == FormatSnappy {
		buf, err := Decompress(data)
		return buf, format, err
	}
	return data, format, nil
}

// Wrap encodes a document buffer in |format|.
func Wrap(buf []byte, format Format) ([]byte, error) {
	switch format {
	case FormatRaw:
		return buf, nil
	case FormatSnappy:
		return Compress(buf)
	default:
		return nil, errors.Errorf("unknown container format %v", format)
	}
}

// Fingerprint returns the xxh3 128 bit hash of a document buffer as hex. It
// identifies document content independently of its container.
func Fingerprint(buf []byte) string {
	h := xxh3.Hash128(buf)
	return fmt.Sprintf("%016x%016x", h.Hi, h.Lo)
}
