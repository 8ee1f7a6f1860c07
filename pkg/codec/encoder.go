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
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
)

// encodeState accumulates output and every error found while walking a value, so a
// single call reports all missing required fields at once.
type encodeState struct {
	bytes.Buffer
	errs error
}

func (e *encodeState) fail(err error) {
	e.errs = multierr.Append(e.errs, err)
}

func (e *encodeState) key(name string, first *bool) {
	if !*first {
		e.WriteByte(',')
	}
	*first = false
	e.str(name)
	e.WriteByte(':')
}

func (e *encodeState) str(s string) {
	// Marshalling a string cannot fail.
	b, _ := json.Marshal(s)
	e.Write(b)
}

// Encode writes a tagged value as a JSON object. Base-shape fields come first, then
// variant fields, then retained unknown fields; the discriminator is written exactly
// once, first or last according to the family. Absent optional fields are omitted.
// Absent required fields fail with MissingRequiredFieldError, combined when several.
func (r *Registry) Encode(v Variant) ([]byte, error) {
	rv := reflect.ValueOf(v)
	if v == nil || rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidTarget, v)
	}
	b, ok := r.binding(rv.Elem().Type())
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnregisteredType, v)
	}

	e := &encodeState{}
	r.encodeVariant(e, b, v, rv.Elem(), "")
	if e.errs != nil {
		return nil, e.errs
	}
	return e.Bytes(), nil
}

// EncodeList writes tagged values as a JSON array.
func (r *Registry) EncodeList(vs []Variant) ([]byte, error) {
	e := &encodeState{}
	e.WriteByte('[')
	for i, v := range vs {
		if i > 0 {
			e.WriteByte(',')
		}
		path := fmt.Sprintf("[%d]", i)
		rv := reflect.ValueOf(v)
		if v == nil || rv.Kind() != reflect.Ptr || rv.IsNil() {
			e.fail(&FieldError{Field: path, Err: ErrInvalidTarget})
			continue
		}
		b, ok := r.binding(rv.Elem().Type())
		if !ok {
			e.fail(&FieldError{Field: path, Err: fmt.Errorf("%w: %T", ErrUnregisteredType, v)})
			continue
		}
		r.encodeVariant(e, b, v, rv.Elem(), path)
	}
	e.WriteByte(']')
	if e.errs != nil {
		return nil, e.errs
	}
	return e.Bytes(), nil
}

// Marshal writes v as a JSON object using its schema. Registered variants are written
// with their discriminator; any other struct is written without one. Required fields
// are checked the same way Encode checks them.
func (r *Registry) Marshal(v any) ([]byte, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidTarget, v)
	}

	if variant, ok := v.(Variant); ok {
		if b, bound := r.binding(rv.Type()); bound && reflect.ValueOf(v).Kind() == reflect.Ptr {
			e := &encodeState{}
			r.encodeVariant(e, b, variant, rv, "")
			if e.errs != nil {
				return nil, e.errs
			}
			return e.Bytes(), nil
		}
	}

	schema, err := r.schemaFor(rv.Type())
	if err != nil {
		return nil, err
	}
	e := &encodeState{}
	e.WriteByte('{')
	first := true
	r.encodeFields(e, schema, rv, "", &first, "")
	e.WriteByte('}')
	if e.errs != nil {
		return nil, e.errs
	}
	return e.Bytes(), nil
}

func (r *Registry) encodeVariant(e *encodeState, b typeBinding, v Variant, rv reflect.Value, path string) {
	fe := b.family
	tag := v.VariantTag()
	first := true

	e.WriteByte('{')
	if fe.TagFirst && tag != "" {
		e.key(fe.Discriminator, &first)
		e.str(tag)
	}
	r.encodeFields(e, b.schema, rv, path, &first, fe.Discriminator)
	if !fe.TagFirst && tag != "" {
		e.key(fe.Discriminator, &first)
		e.str(tag)
	}
	e.WriteByte('}')
}

func (r *Registry) encodeFields(e *encodeState, schema *Schema, rv reflect.Value, path string, first *bool,
	discriminator string) {
	for i := range schema.Fields {
		f := &schema.Fields[i]
		fv := rv.FieldByIndex(f.index)
		fieldPath := joinPath(path, f.Name)
		if isAbsent(fv) {
			if f.Required {
				e.fail(&MissingRequiredFieldError{Field: fieldPath, Type: schema.Name})
			}
			continue
		}
		e.key(f.Name, first)
		r.encodeValue(e, f, fv, fieldPath)
	}

	if schema.extra == nil {
		return
	}
	extra, _ := rv.FieldByIndex(schema.extra).Interface().(map[string]json.RawMessage)
	for _, name := range sortedKeys(extra) {
		if name == discriminator {
			continue
		}
		if _, declared := schema.byName[name]; declared {
			continue
		}
		var compact bytes.Buffer
		if err := json.Compact(&compact, extra[name]); err != nil {
			e.fail(&FieldError{Field: joinPath(path, name), Err: err})
			continue
		}
		e.key(name, first)
		e.Write(compact.Bytes())
	}
}

func (r *Registry) encodeValue(e *encodeState, f *Field, fv reflect.Value, path string) {
	if fv.Kind() == reflect.Ptr {
		fv = fv.Elem()
	}

	switch f.Kind {
	case KindDateTime:
		e.str(FormatDateTime(fv.Interface().(time.Time)))

	case KindID:
		e.str(fv.Interface().(uuid.UUID).String())

	case KindStruct:
		if b, ok := r.binding(f.Struct.typ); ok {
			if !fv.CanAddr() {
				copied := reflect.New(fv.Type())
				copied.Elem().Set(fv)
				fv = copied.Elem()
			}
			r.encodeVariant(e, b, fv.Addr().Interface().(Variant), fv, path)
			return
		}
		first := true
		e.WriteByte('{')
		r.encodeFields(e, f.Struct, fv, path, &first, "")
		e.WriteByte('}')

	case KindVariant:
		concrete := fv.Elem()
		v, ok := fv.Interface().(Variant)
		if !ok || concrete.Kind() != reflect.Ptr {
			e.fail(&FieldError{Field: path, Err: fmt.Errorf("%w: got %s", ErrInvalidTarget, concrete.Type())})
			e.WriteString("null")
			return
		}
		b, ok := r.binding(concrete.Elem().Type())
		if !ok {
			e.fail(&FieldError{Field: path, Err: fmt.Errorf("%w: %s", ErrUnregisteredType, concrete.Type())})
			e.WriteString("null")
			return
		}
		if b.family.Name != f.Family {
			e.fail(&FieldError{Field: path,
				Err: fmt.Errorf("%s belongs to family '%s', expected '%s'", concrete.Type(), b.family.Name, f.Family)})
			e.WriteString("null")
			return
		}
		r.encodeVariant(e, b, v, concrete.Elem(), path)

	case KindArray:
		e.WriteByte('[')
		for i := 0; i < fv.Len(); i++ {
			if i > 0 {
				e.WriteByte(',')
			}
			item := fv.Index(i)
			if isNil(item) {
				e.WriteString("null")
				continue
			}
			r.encodeValue(e, f.Elem, item, fmt.Sprintf("%s[%d]", path, i))
		}
		e.WriteByte(']')

	default:
		data, err := json.Marshal(fv.Interface())
		if err != nil {
			e.fail(&FieldError{Field: path, Err: err})
			e.WriteString("null")
			return
		}
		e.Write(data)
	}
}

// FormatDateTime formats t as RFC 3339 with nanosecond precision, the inverse of ParseDateTime.
func FormatDateTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// isAbsent reports whether a field value counts as not set: nil for pointers, maps,
// slices and interfaces, empty for strings. Other scalars are always present.
func isAbsent(v reflect.Value) bool {
	if v.Kind() == reflect.String {
		return v.Len() == 0
	}
	return isNil(v)
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		return v.IsNil()
	}
	return false
}
