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


// Package thumbnail produces and inspects the preview images embedded in duc
// documents. Thumbnails are always written as PNG.
package thumbnail

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// DefaultMaxSize is the longest edge of a generated thumbnail in pixels.
const DefaultMaxSize = 256

// Info describes an encoded thumbnail without decoding its pixels.
type Info struct {
	Format string
	Width  int
	Height int
	Bytes  int
}

// Inspect reads the format and dimensions of an encoded image.
func Inspect(data []byte) (Info, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Info{}, errors.Wrap(err, "failed to read thumbnail header")
	}
	return Info{Format: format, Width: cfg.Width, Height: cfg.Height, Bytes: len(data)}, nil
}

// Decode decodes a png, jpeg, gif, bmp or webp image.
func Decode(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to decode image")
	}
	return img, format, nil
}

// Fit scales |img| down so neither edge exceeds |maxSize|, keeping its aspect
// ratio. Images that already fit are copied unscaled.
func Fit(img image.Image, maxSize int) *image.NRGBA {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return imaging.Fit(img, maxSize, maxSize, imaging.Lanczos)
}

// Encode writes |img| as PNG.
func Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, errors.Wrap(err, "failed to encode thumbnail")
	}
	return buf.Bytes(), nil
}

// FromImage converts an encoded image of any supported format into a PNG
// thumbnail no larger than |maxSize| on either edge.
func FromImage(data []byte, maxSize int) ([]byte, error) {
	img, _, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return Encode(Fit(img, maxSize))
}
