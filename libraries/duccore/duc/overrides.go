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

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// InstanceAttributesKey is the ElementOverrides key whose payload holds the
// values a block instance assigns to the block's attribute definitions, as a
// JSON object keyed by attribute name.
const InstanceAttributesKey = "$attributes"

// ValidJSON returns whether |s| is a well formed JSON document.
func ValidJSON(s string) bool {
	return gjson.Valid(s)
}

// OverrideValue returns the value at |path| of the override payload for the
// contained element |elementID|. The result does not Exist() when there is no
// payload or the path does not resolve.
func (bi *BlockInstanceElement) OverrideValue(elementID, path string) gjson.Result {
	payload, ok := bi.ElementOverrides[elementID]
	if !ok {
		return gjson.Result{}
	}
	return gjson.Get(payload, path)
}

// SetOverride sets |path| in the override payload for |elementID| to |value|,
// creating the payload if needed.
func (bi *BlockInstanceElement) SetOverride(elementID, path string, value interface{}) error {
	payload, ok := bi.ElementOverrides[elementID]
	if !ok || payload == "" {
		payload = "{}"
	} else if !gjson.Valid(payload) {
		return fmt.Errorf("override payload for %s is not valid json", elementID)
	}

	updated, err := sjson.Set(payload, path, value)
	if err != nil {
		return err
	}

	if bi.ElementOverrides == nil {
		bi.ElementOverrides = make(map[string]string)
	}
	bi.ElementOverrides[elementID] = updated
	return nil
}

// RemoveOverride deletes |path| from the payload for |elementID|. The payload
// is dropped once it is an empty object.
func (bi *BlockInstanceElement) RemoveOverride(elementID, path string) error {
	payload, ok := bi.ElementOverrides[elementID]
	if !ok {
		return nil
	}

	updated, err := sjson.Delete(payload, path)
	if err != nil {
		return err
	}

	if res := gjson.Parse(updated); res.IsObject() && len(res.Map()) == 0 {
		delete(bi.ElementOverrides, elementID)
		return nil
	}
	bi.ElementOverrides[elementID] = updated
	return nil
}

// SetAttribute assigns |value| to the block attribute |name| for this instance.
func (bi *BlockInstanceElement) SetAttribute(name, value string) error {
	return bi.SetOverride(InstanceAttributesKey, gjsonPathEscape(name), value)
}

// InstanceAttributes returns the attribute values |inst| resolves to: the
// instance's own value when it sets one, otherwise the definition default.
// Values the instance sets for undefined attributes are ignored.
func (b *Block) InstanceAttributes(inst *BlockInstanceElement) map[string]string {
	vals := make(map[string]string, len(b.Attributes))
	for name, def := range b.Attributes {
		vals[name] = def.DefaultValue
		if inst == nil {
			continue
		}
		if res := inst.OverrideValue(InstanceAttributesKey, gjsonPathEscape(name)); res.Exists() {
			vals[name] = res.String()
		}
	}
	return vals
}

func gjsonPathEscape(s string) string {
	var out []byte
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.', '*', '?', '|', '#', '@', '\\', '!', '=', '<', '>', '%':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
