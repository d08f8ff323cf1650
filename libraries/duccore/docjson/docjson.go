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


// Package docjson converts duc documents to and from a JSON representation
// for inspection and scripting. Elements are written as {"type", "value"}
// envelopes so the variant survives a round trip.
package docjson

import (
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	goerrors "gopkg.in/src-d/go-errors.v1"

	"github.com/ducflair/duc-sub004/libraries/duccore/duc"
)

var ErrUnknownElementType = goerrors.NewKind("unknown element type %q")

// Options control the layout of exported JSON.
type Options struct {
	// Indent is the number of spaces per nesting level. Zero writes compact
	// JSON on a single line.
	Indent int
	// OmitFiles leaves external file payloads out of the export.
	OmitFiles bool
	// OmitThumbnail leaves the thumbnail out of the export.
	OmitThumbnail bool
}

// Element is the JSON envelope of a duc.Element.
type Element struct {
	Type  duc.ElementType `json:"type"`
	Value duc.Element     `json:"value"`
}

func (e *Element) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type  duc.ElementType `json:"type"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	el, err := newElement(raw.Type)
	if err != nil {
		return err
	}
	if len(raw.Value) > 0 {
		if err := json.Unmarshal(raw.Value, el); err != nil {
			return errors.Wrapf(err, "failed to decode %s element", raw.Type)
		}
	}

	e.Type, e.Value = raw.Type, el
	return nil
}

func newElement(t duc.ElementType) (duc.Element, error) {
	switch t {
	case duc.ElementTypeRectangle:
		return &duc.RectangleElement{}, nil
	case duc.ElementTypeEllipse:
		return &duc.EllipseElement{}, nil
	case duc.ElementTypePolygon:
		return &duc.PolygonElement{}, nil
	case duc.ElementTypeLinear:
		return &duc.LinearElement{}, nil
	case duc.ElementTypeText:
		return &duc.TextElement{}, nil
	case duc.ElementTypeImage:
		return &duc.ImageElement{}, nil
	case duc.ElementTypeFrame:
		return &duc.FrameElement{}, nil
	case duc.ElementTypePlot:
		return &duc.PlotElement{}, nil
	case duc.ElementTypeXRay:
		return &duc.XRayElement{}, nil
	case duc.ElementTypeBlockInstance:
		return &duc.BlockInstanceElement{}, nil
	default:
		return nil, ErrUnknownElementType.New(t)
	}
}

type block struct {
	ID          string                                  `json:"id"`
	Label       string                                  `json:"label"`
	Description *string                                 `json:"description,omitempty"`
	Version     int32                                   `json:"version"`
	Readonly    bool                                    `json:"readonly"`
	Elements    []Element                               `json:"elements"`
	Attributes  map[string]duc.BlockAttributeDefinition `json:"attributes,omitempty"`
}

type document struct {
	Type          string                       `json:"type"`
	Version       string                       `json:"version"`
	Source        string                       `json:"source"`
	GlobalState   *duc.GlobalState             `json:"global_state"`
	LocalState    *duc.LocalState              `json:"local_state"`
	Elements      []Element                    `json:"elements"`
	Blocks        []block                      `json:"blocks"`
	Groups        []*duc.Group                 `json:"groups"`
	Regions       []*duc.Region                `json:"regions"`
	Layers        []*duc.Layer                 `json:"layers"`
	Dictionary    map[string]string            `json:"dictionary"`
	Thumbnail     []byte                       `json:"thumbnail,omitempty"`
	RendererState duc.RendererState            `json:"renderer_state"`
	Files         map[string]*duc.ExternalFile `json:"files,omitempty"`
}

func wrapElements(elems []duc.Element) []Element {
	if elems == nil {
		return nil
	}
	out := make([]Element, len(elems))
	for i, el := range elems {
		out[i] = Element{Type: el.Type(), Value: el}
	}
	return out
}

func unwrapElements(elems []Element) []duc.Element {
	if elems == nil {
		return nil
	}
	out := make([]duc.Element, len(elems))
	for i, el := range elems {
		out[i] = el.Value
	}
	return out
}

func toJSON(doc *duc.Document, opts Options) document {
	d := document{
		Type:          doc.Type,
		Version:       doc.Version,
		Source:        doc.Source,
		GlobalState:   doc.GlobalState,
		LocalState:    doc.LocalState,
		Elements:      wrapElements(doc.Elements),
		Groups:        doc.Groups,
		Regions:       doc.Regions,
		Layers:        doc.Layers,
		Dictionary:    doc.Dictionary,
		Thumbnail:     doc.Thumbnail,
		RendererState: doc.RendererState,
		Files:         doc.Files,
	}
	if opts.OmitThumbnail {
		d.Thumbnail = nil
	}
	if opts.OmitFiles {
		d.Files = nil
	}
	for _, b := range doc.Blocks {
		d.Blocks = append(d.Blocks, block{
			ID:          b.ID,
			Label:       b.Label,
			Description: b.Description,
			Version:     b.Version,
			Readonly:    b.Readonly,
			Elements:    wrapElements(b.Elements),
			Attributes:  b.Attributes,
		})
	}
	return d
}

func fromJSON(d document) *duc.Document {
	doc := &duc.Document{
		Type:          d.Type,
		Version:       d.Version,
		Source:        d.Source,
		GlobalState:   d.GlobalState,
		LocalState:    d.LocalState,
		Elements:      unwrapElements(d.Elements),
		Groups:        d.Groups,
		Regions:       d.Regions,
		Layers:        d.Layers,
		Dictionary:    d.Dictionary,
		Thumbnail:     d.Thumbnail,
		RendererState: d.RendererState,
		Files:         d.Files,
	}
	if doc.Dictionary == nil {
		doc.Dictionary = map[string]string{}
	}
	if doc.RendererState.DeletedElementIDs == nil {
		doc.RendererState.DeletedElementIDs = []string{}
	}
	for _, b := range d.Blocks {
		doc.Blocks = append(doc.Blocks, &duc.Block{
			ID:          b.ID,
			Label:       b.Label,
			Description: b.Description,
			Version:     b.Version,
			Readonly:    b.Readonly,
			Elements:    unwrapElements(b.Elements),
			Attributes:  b.Attributes,
		})
	}
	return doc
}

// Marshal encodes |doc| as JSON.
func Marshal(doc *duc.Document, opts Options) ([]byte, error) {
	if doc == nil {
		return nil, errors.New("cannot export a nil document")
	}

	var (
		data []byte
		err  error
	)
	if opts.Indent > 0 {
		data, err = json.MarshalIndent(toJSON(doc, opts), "", strings.Repeat(" ", opts.Indent))
	} else {
		data, err = json.Marshal(toJSON(doc, opts))
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode document as json")
	}
	return data, nil
}

// Write encodes |doc| to |w| followed by a newline.
func Write(w io.Writer, doc *duc.Document, opts Options) error {
	data, err := Marshal(doc, opts)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// Unmarshal decodes a document written by Marshal. Element type tags must
// name a known variant.
func Unmarshal(data []byte) (*duc.Document, error) {
	var d document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, errors.Wrap(err, "failed to decode document json")
	}
	return fromJSON(d), nil
}
