/*
 * © 2026 Snyk Limited
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package honeybadger

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/snyk/honeybadger-lambda-go/domain/notice"
)

const unserializable = "[unserializable]"

// valueEncoder turns a single value into JSON, reporting false if it can't.
type valueEncoder func(v any) (json.RawMessage, bool)

// fallbackChain is tried in order for every leaf of the request context.
var fallbackChain = []valueEncoder{encodeDirect, encodeRepr, encodeSentinel}

// Encode serializes n. Request context values that can't be encoded as JSON are replaced by their
// Go-syntax representation, or by "[unserializable]", so encoding never fails on context content.
// A map or slice that contains itself is cut at the repeated reference.
func Encode(n notice.Notice) ([]byte, error) {
	n.Request.Context = sanitizeMap(n.Request.Context, fallbackChain)
	return json.Marshal(n)
}

// container identifies a map or slice being walked. Slices are keyed by length too, so a
// sub-slice sharing the backing array is not mistaken for its parent.
type container struct {
	ptr uintptr
	len int
	typ reflect.Type
}

var (
	jsonMarshalerType = reflect.TypeOf((*json.Marshaler)(nil)).Elem()
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

// walker sanitizes nested maps and slices. A container met again while it is still being walked
// is a reference cycle and is replaced by "[unserializable]".
type walker struct {
	chain   []valueEncoder
	walking map[container]struct{}
}

func sanitizeMap(m map[string]any, chain []valueEncoder) map[string]any {
	w := &walker{chain: chain, walking: map[container]struct{}{}}
	sanitized := make(map[string]any, len(m))
	if m == nil {
		return sanitized
	}
	w.enter(reflect.ValueOf(m))
	for k, v := range m {
		sanitized[k] = w.sanitize(v)
	}
	return sanitized
}

func (w *walker) sanitize(v any) any {
	value := reflect.ValueOf(v)
	if !walkable(value) {
		return encodeValue(v, w.chain)
	}
	if value.IsNil() {
		return nil
	}
	if !w.enter(value) {
		raw, _ := encodeSentinel(v)
		return raw
	}
	defer w.leave(value)

	if value.Kind() == reflect.Map {
		sanitized := make(map[string]any, value.Len())
		iter := value.MapRange()
		for iter.Next() {
			sanitized[iter.Key().String()] = w.sanitize(iter.Value().Interface())
		}
		return sanitized
	}
	sanitized := make([]any, value.Len())
	for i := range sanitized {
		sanitized[i] = w.sanitize(value.Index(i).Interface())
	}
	return sanitized
}

// walkable reports whether value is a string-keyed map or a slice encoded element by element.
// Types with their own marshaling and byte slices are leaves.
func walkable(value reflect.Value) bool {
	if !value.IsValid() {
		return false
	}
	t := value.Type()
	if t.Implements(jsonMarshalerType) || t.Implements(textMarshalerType) {
		return false
	}
	switch t.Kind() {
	case reflect.Map:
		return t.Key().Kind() == reflect.String
	case reflect.Slice:
		return t.Elem().Kind() != reflect.Uint8
	default:
		return false
	}
}

func (w *walker) enter(value reflect.Value) bool {
	key := containerOf(value)
	if _, seen := w.walking[key]; seen {
		return false
	}
	w.walking[key] = struct{}{}
	return true
}

func (w *walker) leave(value reflect.Value) {
	delete(w.walking, containerOf(value))
}

func containerOf(value reflect.Value) container {
	key := container{ptr: value.Pointer(), typ: value.Type()}
	if value.Kind() == reflect.Slice {
		key.len = value.Len()
	}
	return key
}

func encodeValue(v any, chain []valueEncoder) json.RawMessage {
	for _, encode := range chain {
		if raw, ok := encode(v); ok {
			return raw
		}
	}
	return nil
}

func encodeDirect(v any) (raw json.RawMessage, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			raw, ok = nil, false
		}
	}()
	bytes, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}
	return bytes, true
}

func encodeRepr(v any) (json.RawMessage, bool) {
	return encodeDirect(fmt.Sprintf("%#v", v))
}

func encodeSentinel(any) (json.RawMessage, bool) {
	return json.RawMessage(`"` + unserializable + `"`), true
}
