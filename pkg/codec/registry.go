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

// Package codec implements the discriminated-union JSON codec used by the model types.
//
// A Registry groups Go struct types into variant families. Each family has a fixed
// discriminator field and a base shape that absorbs payloads whose discriminator value
// is unknown, so clients keep working when the server introduces new variants.
package codec

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/asgardeo/flowmodel/internal/system/log"
)

// Variant is implemented by every member of a tagged family.
type Variant interface {
	// VariantTag returns the discriminator value the variant is written with.
	VariantTag() string
}

// Fallback is implemented by base shapes. A base shape keeps whatever discriminator
// value it was decoded with so that it is written back unchanged.
type Fallback interface {
	Variant
	SetVariantTag(tag string)
}

// Family describes one variant family.
type Family struct {
	// Name identifies the family, e.g. "WebhookEvent".
	Name string
	// Discriminator is the JSON field holding the variant tag, e.g. "type".
	Discriminator string
	// TagFirst writes the discriminator before the payload fields instead of after them.
	TagFirst bool
	// NewBase returns a new, empty base shape.
	NewBase func() Fallback
}

// UnknownFieldPolicy selects what the decoder does with JSON fields no schema declares.
type UnknownFieldPolicy int

const (
	// DiscardUnknown drops undeclared fields.
	DiscardUnknown UnknownFieldPolicy = iota
	// RetainUnknown keeps undeclared fields in the base shape's extra bag and writes them back.
	RetainUnknown
)

// ParseUnknownFieldPolicy parses "discard" or "retain". An empty string means discard.
func ParseUnknownFieldPolicy(s string) (UnknownFieldPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "discard":
		return DiscardUnknown, nil
	case "retain":
		return RetainUnknown, nil
	default:
		return DiscardUnknown, fmt.Errorf("invalid unknown field policy '%s', must be one of: discard, retain", s)
	}
}

// Options configures a Registry.
type Options struct {
	UnknownFields UnknownFieldPolicy
	Logger        *zap.Logger
}

type variantEntry struct {
	tag    string
	schema *Schema
	typ    reflect.Type
}

type familyEntry struct {
	Family
	base     *Schema
	baseType reflect.Type
	variants map[string]*variantEntry
}

type typeBinding struct {
	family *familyEntry
	schema *Schema
}

// Registry maps (family, tag) pairs to variant schemas. Registration is expected to
// happen once at startup; after Seal the registry is read-only and safe for
// concurrent decoding and encoding without locking.
type Registry struct {
	mu       sync.RWMutex
	sealed   atomic.Bool
	families map[string]*familyEntry
	types    map[reflect.Type]typeBinding
	schemas  sync.Map
	opts     Options
	logger   *zap.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(opts Options) *Registry {
	logger := opts.Logger
	if logger == nil {
		logger = log.GetLogger()
	}
	return &Registry{
		families: make(map[string]*familyEntry),
		types:    make(map[reflect.Type]typeBinding),
		opts:     opts,
		logger:   logger.With(zap.String(log.LoggerKeyComponentName, "VariantRegistry")),
	}
}

// RegisterFamily adds a variant family and derives the schema of its base shape.
func (r *Registry) RegisterFamily(f Family) error {
	if f.Name == "" || f.Discriminator == "" || f.NewBase == nil {
		return fmt.Errorf("family requires a name, a discriminator and a base constructor")
	}

	baseType, err := structType(f.NewBase())
	if err != nil {
		return fmt.Errorf("family '%s': %w", f.Name, err)
	}
	schema, err := buildSchema(baseType)
	if err != nil {
		return fmt.Errorf("family '%s': %w", f.Name, err)
	}
	if _, clash := schema.byName[f.Discriminator]; clash {
		return fmt.Errorf("family '%s': base shape declares the discriminator field '%s'", f.Name, f.Discriminator)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed.Load() {
		return ErrRegistrySealed
	}
	if _, exists := r.families[f.Name]; exists {
		return fmt.Errorf("%w: '%s'", ErrDuplicateFamily, f.Name)
	}

	fe := &familyEntry{
		Family:   f,
		base:     schema,
		baseType: baseType,
		variants: make(map[string]*variantEntry),
	}
	r.families[f.Name] = fe
	r.types[baseType] = typeBinding{family: fe, schema: schema}

	r.logger.Debug("Registered variant family", zap.String(log.LoggerKeyFamily, f.Name),
		zap.String("discriminator", f.Discriminator))
	return nil
}

// Register associates tag with the struct type of prototype within family. The
// prototype must be a pointer to a struct; its schema is derived by reflection.
func (r *Registry) Register(family, tag string, prototype Variant) error {
	typ, err := structType(prototype)
	if err != nil {
		return fmt.Errorf("variant '%s' of family '%s': %w", tag, family, err)
	}
	schema, err := buildSchema(typ)
	if err != nil {
		return fmt.Errorf("variant '%s' of family '%s': %w", tag, family, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	fe, err := r.lockedFamily(family)
	if err != nil {
		return err
	}
	if _, clash := schema.byName[fe.Discriminator]; clash {
		return fmt.Errorf("variant '%s' of family '%s' declares the discriminator field '%s'",
			tag, family, fe.Discriminator)
	}
	if err := r.lockedAdd(fe, tag, &variantEntry{tag: tag, schema: schema, typ: typ}); err != nil {
		return err
	}
	if _, bound := r.types[typ]; !bound {
		r.types[typ] = typeBinding{family: fe, schema: schema}
	}

	r.logger.Debug("Registered variant", zap.String(log.LoggerKeyFamily, family), zap.String(log.LoggerKeyTag, tag),
		zap.String("type", typ.String()))
	return nil
}

// Alias makes alias decode to the same variant as the already registered target tag.
// Values decoded through an alias are written back with the target's tag.
func (r *Registry) Alias(family, alias, target string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	fe, err := r.lockedFamily(family)
	if err != nil {
		return err
	}
	entry, ok := fe.variants[target]
	if !ok {
		return fmt.Errorf("%w: '%s' in family '%s'", ErrUnknownTag, target, family)
	}
	if err := r.lockedAdd(fe, alias, entry); err != nil {
		return err
	}

	r.logger.Info("Registered variant alias", zap.String(log.LoggerKeyFamily, family),
		zap.String(log.LoggerKeyTag, alias), zap.String("target", target))
	return nil
}

// Seal freezes the registry. Further registration fails with ErrRegistrySealed.
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed.Store(true)
}

// Lookup returns the schema registered for tag within family. An unknown family or
// tag yields false; it is never an error, callers fall back to the base shape.
func (r *Registry) Lookup(family, tag string) (*Schema, bool) {
	entry, ok := r.variant(family, tag)
	if !ok {
		return nil, false
	}
	return entry.schema, true
}

// BaseSchema returns the schema of a family's base shape.
func (r *Registry) BaseSchema(family string) (*Schema, bool) {
	fe, ok := r.family(family)
	if !ok {
		return nil, false
	}
	return fe.base, true
}

// Families returns the registered family names in sorted order.
func (r *Registry) Families() []string {
	defer r.rlock()()

	names := make([]string, 0, len(r.families))
	for name := range r.families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Tags returns the registered tags of family in sorted order, aliases included.
func (r *Registry) Tags(family string) []string {
	defer r.rlock()()

	fe, ok := r.families[family]
	if !ok {
		return nil
	}
	tags := make([]string, 0, len(fe.variants))
	for tag := range fe.variants {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// New returns a new zero value of the variant registered for tag, or false if the tag is unknown.
func (r *Registry) New(family, tag string) (Variant, bool) {
	entry, ok := r.variant(family, tag)
	if !ok {
		return nil, false
	}
	return reflect.New(entry.typ).Interface().(Variant), true
}

func (r *Registry) family(name string) (*familyEntry, bool) {
	defer r.rlock()()
	fe, ok := r.families[name]
	return fe, ok
}

func (r *Registry) variant(family, tag string) (*variantEntry, bool) {
	defer r.rlock()()
	fe, ok := r.families[family]
	if !ok {
		return nil, false
	}
	entry, ok := fe.variants[tag]
	return entry, ok
}

func (r *Registry) binding(t reflect.Type) (typeBinding, bool) {
	defer r.rlock()()
	b, ok := r.types[t]
	return b, ok
}

// schemaFor returns the schema of a struct type that may or may not belong to a family.
func (r *Registry) schemaFor(t reflect.Type) (*Schema, error) {
	if b, ok := r.binding(t); ok {
		return b.schema, nil
	}
	if cached, ok := r.schemas.Load(t); ok {
		return cached.(*Schema), nil
	}
	schema, err := buildSchema(t)
	if err != nil {
		return nil, err
	}
	actual, _ := r.schemas.LoadOrStore(t, schema)
	return actual.(*Schema), nil
}

func (r *Registry) lockedFamily(name string) (*familyEntry, error) {
	if r.sealed.Load() {
		return nil, ErrRegistrySealed
	}
	fe, ok := r.families[name]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownFamily, name)
	}
	return fe, nil
}

func (r *Registry) lockedAdd(fe *familyEntry, tag string, entry *variantEntry) error {
	if tag == "" {
		return fmt.Errorf("empty discriminator value in family '%s'", fe.Name)
	}
	if _, exists := fe.variants[tag]; exists {
		return &DuplicateTagError{Family: fe.Name, Tag: tag}
	}
	fe.variants[tag] = entry
	return nil
}

// rlock takes the read lock unless the registry is sealed, as nothing is written
// after that point. The returned func releases whatever was taken.
func (r *Registry) rlock() (unlock func()) {
	if r.sealed.Load() {
		return func() {}
	}
	r.mu.RLock()
	return r.mu.RUnlock
}

func structType(v any) (reflect.Type, error) {
	t := reflect.TypeOf(v)
	if t == nil || t.Kind() != reflect.Ptr || t.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidTarget, v)
	}
	return t.Elem(), nil
}
