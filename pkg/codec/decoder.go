/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/asgardeo/flowmodel/internal/system/log"
)

var jsonNull = []byte("null")

// Decode decodes a JSON object of the given family into its concrete variant. The
// discriminator selects the variant; an absent or unknown discriminator yields the
// family's base shape with the unknown tag preserved. Unknown fields never fail.
func (r *Registry) Decode(family string, data []byte) (Variant, error) {
	fe, ok := r.family(family)
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownFamily, family)
	}

	obj, err := readObject(data, "")
	if err != nil {
		return nil, err
	}
	return r.decodeVariant(fe, obj, "")
}

// DecodeList decodes a JSON array whose elements all belong to the given family.
func (r *Registry) DecodeList(family string, data []byte) ([]Variant, error) {
	fe, ok := r.family(family)
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownFamily, family)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, &FieldError{Err: err}
	}

	out := make([]Variant, 0, len(items))
	for i, item := range items {
		path := fmt.Sprintf("[%d]", i)
		obj, err := readObject(item, path)
		if err != nil {
			return nil, err
		}
		v, err := r.decodeVariant(fe, obj, path)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Unmarshal decodes a JSON object into v, which must be a non-nil pointer to a
// struct. Typed fields are validated the same way Decode validates them. When v is a
// registered variant, the discriminator field is ignored.
func (r *Registry) Unmarshal(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: got %T", ErrInvalidTarget, v)
	}

	schema, err := r.schemaFor(rv.Elem().Type())
	if err != nil {
		return err
	}
	obj, err := readObject(data, "")
	if err != nil {
		return err
	}

	return r.decodeStruct(schema, obj, rv, "")
}

// decodeStruct fills the struct ptr points to. A registered variant type ignores its
// discriminator field; a base shape keeps the tag it was sent with.
func (r *Registry) decodeStruct(schema *Schema, obj map[string]json.RawMessage, ptr reflect.Value,
	path string) error {
	discriminator := ""
	if b, ok := r.binding(schema.typ); ok {
		discriminator = b.family.Discriminator
		if fb, ok := ptr.Interface().(Fallback); ok && schema.typ == b.family.baseType {
			if tag, ok := readTag(obj, discriminator); ok {
				fb.SetVariantTag(tag)
			}
		}
	}
	return r.decodeFields(schema, obj, ptr.Elem(), path, discriminator)
}

func (r *Registry) decodeVariant(fe *familyEntry, obj map[string]json.RawMessage, path string) (Variant, error) {
	tag, hasTag := readTag(obj, fe.Discriminator)

	var (
		target Variant
		schema *Schema
	)
	entry, known := r.variant(fe.Name, tag)
	if hasTag && known {
		target = reflect.New(entry.typ).Interface().(Variant)
		schema = entry.schema
	} else {
		base := fe.NewBase()
		if hasTag {
			base.SetVariantTag(tag)
			r.logger.Debug("Unknown variant tag, decoding as base shape",
				zap.String(log.LoggerKeyFamily, fe.Name), zap.String(log.LoggerKeyTag, tag),
				zap.String(log.LoggerKeyField, path))
		}
		target = base
		schema = fe.base
	}

	if err := r.decodeFields(schema, obj, reflect.ValueOf(target).Elem(), path, fe.Discriminator); err != nil {
		return nil, err
	}
	return target, nil
}

func (r *Registry) decodeFields(schema *Schema, obj map[string]json.RawMessage, target reflect.Value,
	path, discriminator string) error {
	for i := range schema.Fields {
		f := &schema.Fields[i]
		raw, ok := obj[f.Name]
		if !ok || isNull(raw) {
			continue
		}
		if err := r.decodeValue(f, raw, target.FieldByIndex(f.index), joinPath(path, f.Name)); err != nil {
			return err
		}
	}

	var unknown map[string]json.RawMessage
	for name, raw := range obj {
		if name == discriminator {
			continue
		}
		if _, declared := schema.byName[name]; declared {
			continue
		}
		if unknown == nil {
			unknown = make(map[string]json.RawMessage)
		}
		unknown[name] = raw
	}
	if len(unknown) == 0 {
		return nil
	}

	if r.opts.UnknownFields == RetainUnknown && schema.extra != nil {
		target.FieldByIndex(schema.extra).Set(reflect.ValueOf(unknown))
		return nil
	}
	if r.logger.Core().Enabled(zap.DebugLevel) {
		r.logger.Debug("Discarding unknown fields", zap.String("schema", schema.Name),
			zap.String(log.LoggerKeyField, path), zap.Strings("fields", sortedKeys(unknown)))
	}
	return nil
}

func (r *Registry) decodeValue(f *Field, raw json.RawMessage, dst reflect.Value, path string) error {
	switch f.Kind {
	case KindDateTime:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return &TemporalParseError{Field: path, Value: string(raw), Err: err}
		}
		t, err := ParseDateTime(s)
		if err != nil {
			return &TemporalParseError{Field: path, Value: s, Err: err}
		}
		assign(dst, reflect.ValueOf(t))

	case KindID:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return &IDFormatError{Field: path, Value: string(raw), Err: err}
		}
		id, err := ParseID(s)
		if err != nil {
			return &IDFormatError{Field: path, Value: s, Err: err}
		}
		assign(dst, reflect.ValueOf(id))

	case KindClosedEnum:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return &FieldError{Field: path, Err: err}
		}
		value := reflect.ValueOf(s).Convert(derefType(f.typ))
		if !value.Interface().(ClosedEnum).IsKnown() {
			r.logger.Debug("Dropping value outside closed enum", zap.String(log.LoggerKeyField, path),
				zap.String("value", s))
			return nil
		}
		assign(dst, value)

	case KindStruct:
		obj, err := readObject(raw, path)
		if err != nil {
			return err
		}
		nested := reflect.New(f.Struct.typ)
		if err := r.decodeStruct(f.Struct, obj, nested, path); err != nil {
			return err
		}
		assign(dst, nested.Elem())

	case KindVariant:
		fe, ok := r.family(f.Family)
		if !ok {
			return &FieldError{Field: path, Err: fmt.Errorf("%w: '%s'", ErrUnknownFamily, f.Family)}
		}
		obj, err := readObject(raw, path)
		if err != nil {
			return err
		}
		v, err := r.decodeVariant(fe, obj, path)
		if err != nil {
			return err
		}
		value := reflect.ValueOf(v)
		if !value.Type().AssignableTo(dst.Type()) {
			return &FieldError{Field: path, Err: fmt.Errorf("%s does not implement %s", value.Type(), dst.Type())}
		}
		dst.Set(value)

	case KindArray:
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return &FieldError{Field: path, Err: err}
		}
		slice := reflect.MakeSlice(derefType(f.typ), len(items), len(items))
		for i, item := range items {
			if isNull(item) {
				continue
			}
			if err := r.decodeValue(f.Elem, item, slice.Index(i), fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		assign(dst, slice)

	case KindBag, KindRaw:
		value := reflect.New(derefType(f.typ))
		decoder := json.NewDecoder(bytes.NewReader(raw))
		decoder.UseNumber()
		if err := decoder.Decode(value.Interface()); err != nil {
			return &FieldError{Field: path, Err: err}
		}
		assign(dst, value.Elem())

	default:
		value := reflect.New(derefType(f.typ))
		if err := json.Unmarshal(raw, value.Interface()); err != nil {
			return &FieldError{Field: path, Err: err}
		}
		assign(dst, value.Elem())
	}
	return nil
}

// ParseDateTime parses an ISO-8601 date-time carrying an offset, such as
// "2024-01-01T00:00:00Z" or "2024-01-01T02:00:00.5+02:00".
func ParseDateTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// ParseID parses an identifier in canonical UUID form. Braced, URN and unhyphenated
// forms are rejected even though they denote valid UUIDs.
func ParseID(s string) (uuid.UUID, error) {
	if len(s) != 36 {
		return uuid.Nil, fmt.Errorf("invalid UUID length: %d", len(s))
	}
	return uuid.Parse(s)
}

func readObject(data []byte, path string) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, &FieldError{Field: path, Err: fmt.Errorf("%w: %v", ErrNotAnObject, err)}
	}
	if obj == nil {
		return nil, &FieldError{Field: path, Err: ErrNotAnObject}
	}
	return obj, nil
}

// readTag returns the discriminator value. A missing, null or non-string
// discriminator is reported as absent.
func readTag(obj map[string]json.RawMessage, discriminator string) (string, bool) {
	raw, ok := obj[discriminator]
	if !ok {
		return "", false
	}
	var tag string
	if err := json.Unmarshal(raw, &tag); err != nil || tag == "" {
		return "", false
	}
	return tag, true
}

// assign stores v into dst, allocating when dst is a pointer.
func assign(dst, v reflect.Value) {
	if dst.Kind() == reflect.Ptr {
		p := reflect.New(dst.Type().Elem())
		p.Elem().Set(v)
		dst.Set(p)
		return
	}
	dst.Set(v)
}

func derefType(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Ptr {
		return t.Elem()
	}
	return t
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), jsonNull)
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func sortedKeys(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
