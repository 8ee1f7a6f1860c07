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

package model

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/asgardeo/flowmodel/pkg/codec"
)

// TaskElementVariant is a member of the TaskElementValue family.
type TaskElementVariant interface {
	codec.Variant
	TaskElementBase() *TaskElementValue
}

// TaskElementValue is a form element of a task. It is also the shape an element with
// an unrecognised type decodes to.
type TaskElementValue struct {
	Type     string                     `json:"-"`
	Name     string                     `json:"name" codec:"required"`
	Label    string                     `json:"label,omitempty"`
	ReadOnly *bool                      `json:"readOnly,omitempty"`
	Extra    map[string]json.RawMessage `json:"-" codec:"extra"`
}

// VariantTag returns the type the element was decoded with.
func (e *TaskElementValue) VariantTag() string { return e.Type }

// SetVariantTag records the type of an unrecognised element.
func (e *TaskElementValue) SetVariantTag(tag string) { e.Type = tag }

// TaskElementBase returns the shared fields.
func (e *TaskElementValue) TaskElementBase() *TaskElementValue { return e }

// TaskElementValueString is a text element.
type TaskElementValueString struct {
	TaskElementValue
	Value *string `json:"value,omitempty"`
}

// VariantTag returns ElementTypeString.
func (*TaskElementValueString) VariantTag() string { return ElementTypeString }

// TaskElementValueNumber is a numeric element.
type TaskElementValueNumber struct {
	TaskElementValue
	Value *float64 `json:"value,omitempty"`
}

// VariantTag returns ElementTypeNumber.
func (*TaskElementValueNumber) VariantTag() string { return ElementTypeNumber }

// TaskElementValueObject is a structured element holding arbitrary JSON.
type TaskElementValueObject struct {
	TaskElementValue
	Value Bag `json:"value,omitempty"`
}

// VariantTag returns ElementTypeObject.
func (*TaskElementValueObject) VariantTag() string { return ElementTypeObject }

// TaskElementValueDocument is an uploaded document. Content is base64 on the wire.
type TaskElementValueDocument struct {
	TaskElementValue
	DocumentID  *uuid.UUID `json:"documentId,omitempty"`
	FileName    string     `json:"fileName,omitempty"`
	ContentType string     `json:"contentType,omitempty"`
	Content     []byte     `json:"content,omitempty"`
}

// VariantTag returns ElementTypeDocument.
func (*TaskElementValueDocument) VariantTag() string { return ElementTypeDocument }

// TaskElementValuePrincipal is an element selecting a principal.
type TaskElementValuePrincipal struct {
	TaskElementValue
	Value *Principal `json:"value,omitempty"`
}

// VariantTag returns ElementTypePrincipal.
func (*TaskElementValuePrincipal) VariantTag() string { return ElementTypePrincipal }
