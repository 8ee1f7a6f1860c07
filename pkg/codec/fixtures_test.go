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
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type Color string

const (
	ColorRed  Color = "RED"
	ColorBlue Color = "BLUE"
)

func (c Color) IsKnown() bool { return IsKnownValue(c, ColorRed, ColorBlue) }

func (Color) Closed() {}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type ShapeVariant interface {
	Variant
	ShapeBase() *Shape
}

type Shape struct {
	Kind  string                     `json:"-"`
	Name  string                     `json:"name" codec:"required"`
	Extra map[string]json.RawMessage `json:"-" codec:"extra"`
}

func (s *Shape) VariantTag() string       { return s.Kind }
func (s *Shape) SetVariantTag(tag string) { s.Kind = tag }
func (s *Shape) ShapeBase() *Shape        { return s }

type Circle struct {
	Shape
	Radius *float64 `json:"radius,omitempty"`
	Center *Point   `json:"center,omitempty"`
}

func (*Circle) VariantTag() string { return "CIRCLE" }

type Polygon struct {
	Shape
	ID       *uuid.UUID     `json:"id,omitempty"`
	DrawnAt  *time.Time     `json:"drawnAt,omitempty"`
	Sides    *int32         `json:"sides,omitempty"`
	Points   []Point        `json:"points,omitempty"`
	Color    Color          `json:"color,omitempty"`
	Payload  []byte         `json:"payload,omitempty"`
	Labels   map[string]any `json:"labels,omitempty"`
	Children []ShapeVariant `json:"children,omitempty" codec:"variant=Shape"`
}

func (*Polygon) VariantTag() string { return "POLYGON" }

type Event struct {
	ObjectType string     `json:"-"`
	ID         *uuid.UUID `json:"id,omitempty"`
	At         *time.Time `json:"at,omitempty"`
}

func (e *Event) VariantTag() string       { return e.ObjectType }
func (e *Event) SetVariantTag(tag string) { e.ObjectType = tag }

type Ping struct {
	Event
	Target Variant `json:"target,omitempty" codec:"variant=Shape"`
}

func (*Ping) VariantTag() string { return "PING" }

type Gallery struct {
	Title    string   `json:"title" codec:"required"`
	Featured *Circle  `json:"featured,omitempty"`
	Items    []Circle `json:"items,omitempty"`
}

func reflectTypeOf(v any) reflect.Type { return reflect.TypeOf(v).Elem() }

func float64Ptr(v float64) *float64 { return &v }

func int32Ptr(v int32) *int32 { return &v }

func timePtr(v time.Time) *time.Time { return &v }

func uuidPtr(v uuid.UUID) *uuid.UUID { return &v }

// newTestRegistry returns an unsealed registry holding the Shape and Event families.
func newTestRegistry(t *testing.T, policy UnknownFieldPolicy) *Registry {
	r := NewRegistry(Options{UnknownFields: policy, Logger: zaptest.NewLogger(t)})
	require.NoError(t, r.RegisterFamily(Family{
		Name:          "Shape",
		Discriminator: "kind",
		NewBase:       func() Fallback { return &Shape{} },
	}))
	require.NoError(t, r.Register("Shape", "CIRCLE", &Circle{}))
	require.NoError(t, r.Register("Shape", "POLYGON", &Polygon{}))
	require.NoError(t, r.RegisterFamily(Family{
		Name:          "Event",
		Discriminator: "objectType",
		TagFirst:      true,
		NewBase:       func() Fallback { return &Event{} },
	}))
	require.NoError(t, r.Register("Event", "PING", &Ping{}))
	return r
}
