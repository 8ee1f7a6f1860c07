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
	"time"

	"github.com/google/uuid"

	"github.com/asgardeo/flowmodel/pkg/codec"
)

// AuditedVariant is a member of the AbstractAudited family: *Audited itself, or one of
// *Authentication, *Process and *Task.
type AuditedVariant interface {
	codec.Variant
	AuditedBase() *Audited
}

// Audited holds the audit fields shared by server-managed entities. It is also the
// shape an entity with an unrecognised objectType decodes to.
type Audited struct {
	ObjectType string                     `json:"-"`
	ID         *uuid.UUID                 `json:"id,omitempty"`
	CreatedAt  *time.Time                 `json:"createdAt,omitempty"`
	CreatedBy  *uuid.UUID                 `json:"createdBy,omitempty"`
	ModifiedAt *time.Time                 `json:"modifiedAt,omitempty"`
	ModifiedBy *uuid.UUID                 `json:"modifiedBy,omitempty"`
	Extra      map[string]json.RawMessage `json:"-" codec:"extra"`
}

// VariantTag returns the objectType the value was decoded with.
func (a *Audited) VariantTag() string { return a.ObjectType }

// SetVariantTag records the objectType of an unrecognised entity.
func (a *Audited) SetVariantTag(tag string) { a.ObjectType = tag }

// AuditedBase returns the shared audit fields.
func (a *Audited) AuditedBase() *Audited { return a }

// Authentication is an issued session for a principal.
type Authentication struct {
	Audited
	Principal   *Principal           `json:"principal,omitempty"`
	TenantID    *uuid.UUID           `json:"tenantId,omitempty"`
	Method      AuthenticationMethod `json:"method,omitempty"`
	AccessToken string               `json:"accessToken,omitempty"`
	ExpiresAt   *time.Time           `json:"expiresAt,omitempty"`
	Scopes      []string             `json:"scopes,omitempty"`
}

// VariantTag returns ObjectTypeAuthentication.
func (*Authentication) VariantTag() string { return ObjectTypeAuthentication }

// Expired reports whether the session had expired at the given instant. A session
// without an expiry never expires.
func (a *Authentication) Expired(at time.Time) bool {
	return a.ExpiresAt != nil && !at.Before(*a.ExpiresAt)
}

// Process is a running or finished instance of a process definition.
type Process struct {
	Audited
	Name          string                  `json:"name" codec:"required"`
	DefinitionKey string                  `json:"definitionKey" codec:"required"`
	State         ProcessState            `json:"state,omitempty"`
	TenantID      *uuid.UUID              `json:"tenantId,omitempty"`
	StartedAt     *time.Time              `json:"startedAt,omitempty"`
	EndedAt       *time.Time              `json:"endedAt,omitempty"`
	Values        []ProcessElementVariant `json:"values,omitempty" codec:"variant=ProcessElementValue"`
}

// VariantTag returns ObjectTypeProcess.
func (*Process) VariantTag() string { return ObjectTypeProcess }

// Value returns the process value with the given name.
func (p *Process) Value(name string) (ProcessElementVariant, bool) {
	for _, v := range p.Values {
		if v != nil && v.ProcessElementBase().Name == name {
			return v, true
		}
	}
	return nil, false
}

// Task is a unit of work inside a process, usually waiting on a principal.
type Task struct {
	Audited
	ProcessID  *uuid.UUID           `json:"processId,omitempty" codec:"required"`
	Name       string               `json:"name" codec:"required"`
	State      TaskState            `json:"state,omitempty"`
	Assignee   *Principal           `json:"assignee,omitempty"`
	Candidates []Principal          `json:"candidates,omitempty"`
	DueAt      *time.Time           `json:"dueAt,omitempty"`
	Priority   *int32               `json:"priority,omitempty"`
	Elements   []TaskElementVariant `json:"elements,omitempty" codec:"variant=TaskElementValue"`
}

// VariantTag returns ObjectTypeTask.
func (*Task) VariantTag() string { return ObjectTypeTask }

// Element returns the task element with the given name.
func (t *Task) Element(name string) (TaskElementVariant, bool) {
	for _, e := range t.Elements {
		if e != nil && e.TaskElementBase().Name == name {
			return e, true
		}
	}
	return nil, false
}
