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
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind identifies how a field is read from and written to JSON.
type Kind int

// Field kinds.
const (
	KindString Kind = iota
	KindInteger
	KindBoolean
	KindDouble
	KindDateTime
	KindID
	KindBytes
	KindBag
	KindRaw
	KindClosedEnum
	KindStruct
	KindVariant
	KindArray
)

var kindNames = [...]string{
	KindString:     "string",
	KindInteger:    "integer",
	KindBoolean:    "boolean",
	KindDouble:     "double",
	KindDateTime:   "date-time",
	KindID:         "id",
	KindBytes:      "bytes",
	KindBag:        "bag",
	KindRaw:        "raw",
	KindClosedEnum: "closed-enum",
	KindStruct:     "struct",
	KindVariant:    "variant",
	KindArray:      "array",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Field is one named, typed member of a schema.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	// Family is set for KindVariant fields.
	Family string
	// Elem describes array elements for KindArray fields.
	Elem *Field
	// Struct is the nested schema for KindStruct fields.
	Struct *Schema

	index []int
	typ   reflect.Type
}

// Schema is the ordered set of fields of one Go struct type. Fields of embedded
// structs come first, in embedding order, so base shapes precede variant fields.
type Schema struct {
	Name   string
	Fields []Field

	byName map[string]int
	extra  []int
	typ    reflect.Type
}

// Field returns the field with the given JSON name.
func (s *Schema) Field(name string) (*Field, bool) {
	i, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	return &s.Fields[i], true
}

// Required returns the JSON names of required fields.
func (s *Schema) Required() []string {
	var names []string
	for _, f := range s.Fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

var (
	timeType       = reflect.TypeOf(time.Time{})
	uuidType       = reflect.TypeOf(uuid.UUID{})
	rawMessageType = reflect.TypeOf(json.RawMessage(nil))
	closedEnumType = reflect.TypeOf((*ClosedEnum)(nil)).Elem()
	extraBagType   = reflect.TypeOf(map[string]json.RawMessage(nil))
)

// tagOptions holds the parsed `codec` struct tag.
type tagOptions struct {
	required bool
	extra    bool
	family   string
}

func parseTagOptions(tag string) tagOptions {
	var opts tagOptions
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		switch {
		case part == "required":
			opts.required = true
		case part == "extra":
			opts.extra = true
		case strings.HasPrefix(part, "variant="):
			opts.family = strings.TrimPrefix(part, "variant=")
		}
	}
	return opts
}

// schemaBuilder derives schemas from struct types. Schemas under construction are
// shared so self-referencing types resolve to the same *Schema.
type schemaBuilder struct {
	seen map[reflect.Type]*Schema
}

func buildSchema(t reflect.Type) (*Schema, error) {
	b := &schemaBuilder{seen: make(map[reflect.Type]*Schema)}
	return b.build(t)
}

func (b *schemaBuilder) build(t reflect.Type) (*Schema, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidTarget, t)
	}
	if s, ok := b.seen[t]; ok {
		return s, nil
	}

	s := &Schema{
		Name:   t.Name(),
		byName: make(map[string]int),
		typ:    t,
	}
	b.seen[t] = s

	if err := b.collect(s, t, nil); err != nil {
		return nil, err
	}
	return s, nil
}

func (b *schemaBuilder) collect(s *Schema, t reflect.Type, prefix []int) error {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		index := append(append([]int(nil), prefix...), i)
		opts := parseTagOptions(sf.Tag.Get("codec"))

		name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")

		if opts.extra {
			if sf.Type != extraBagType {
				return fmt.Errorf("extra field %s.%s must be map[string]json.RawMessage", t.Name(), sf.Name)
			}
			s.extra = index
			continue
		}
		if name == "-" {
			continue
		}
		if sf.Anonymous && name == "" && sf.Type.Kind() == reflect.Struct {
			if err := b.collect(s, sf.Type, index); err != nil {
				return err
			}
			continue
		}
		if !sf.IsExported() {
			continue
		}
		if name == "" {
			name = sf.Name
		}

		f, err := b.field(sf.Type, opts)
		if err != nil {
			return fmt.Errorf("field %s.%s: %w", t.Name(), sf.Name, err)
		}
		f.Name = name
		f.Required = opts.required
		f.index = index

		if _, dup := s.byName[name]; dup {
			return fmt.Errorf("field %s.%s: JSON name '%s' declared twice", t.Name(), sf.Name, name)
		}
		s.byName[name] = len(s.Fields)
		s.Fields = append(s.Fields, f)
	}
	return nil
}

func (b *schemaBuilder) field(t reflect.Type, opts tagOptions) (Field, error) {
	f := Field{typ: t}
	base := t
	if base.Kind() == reflect.Ptr {
		base = base.Elem()
	}

	switch {
	case base == timeType:
		f.Kind = KindDateTime
	case base == uuidType:
		f.Kind = KindID
	case base == rawMessageType:
		f.Kind = KindRaw
	case base.Kind() == reflect.String && base.Implements(closedEnumType):
		f.Kind = KindClosedEnum
	case base.Kind() == reflect.String:
		f.Kind = KindString
	case base.Kind() == reflect.Bool:
		f.Kind = KindBoolean
	case base.Kind() >= reflect.Int && base.Kind() <= reflect.Uint64:
		f.Kind = KindInteger
	case base.Kind() == reflect.Float32 || base.Kind() == reflect.Float64:
		f.Kind = KindDouble
	case base.Kind() == reflect.Slice && base.Elem().Kind() == reflect.Uint8:
		f.Kind = KindBytes
	case base.Kind() == reflect.Map && base.Key().Kind() == reflect.String:
		f.Kind = KindBag
	case base.Kind() == reflect.Slice:
		elem, err := b.field(base.Elem(), opts)
		if err != nil {
			return Field{}, err
		}
		elem.Name = "[]"
		f.Kind = KindArray
		f.Elem = &elem
	case base.Kind() == reflect.Interface && opts.family != "":
		f.Kind = KindVariant
		f.Family = opts.family
	case base.Kind() == reflect.Interface:
		f.Kind = KindRaw
	case base.Kind() == reflect.Struct:
		nested, err := b.build(base)
		if err != nil {
			return Field{}, err
		}
		f.Kind = KindStruct
		f.Struct = nested
	default:
		return Field{}, fmt.Errorf("unsupported field type %s", t)
	}
	return f, nil
}
