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

// WebhookEventVariant is a member of the WebhookEvent family.
type WebhookEventVariant interface {
	codec.Variant
	WebhookEventBase() *WebhookEvent
}

// WebhookEvent is a notification delivered to a webhook. It is also the shape an event
// of an unrecognised type decodes to; its payload is then only reachable through Extra
// when unknown fields are retained.
type WebhookEvent struct {
	Type      WebhookEventType           `json:"-"`
	ID        *uuid.UUID                 `json:"id,omitempty"`
	Timestamp *time.Time                 `json:"timestamp,omitempty"`
	Extra     map[string]json.RawMessage `json:"-" codec:"extra"`
}

// VariantTag returns the type the event was decoded with.
func (e *WebhookEvent) VariantTag() string { return string(e.Type) }

// SetVariantTag records the type of an unrecognised event.
func (e *WebhookEvent) SetVariantTag(tag string) { e.Type = WebhookEventType(tag) }

// WebhookEventBase returns the shared fields.
func (e *WebhookEvent) WebhookEventBase() *WebhookEvent { return e }

// WebhookEventProcessStateChanged reports a process state transition.
type WebhookEventProcessStateChanged struct {
	WebhookEvent
	Data Bag `json:"data,omitempty"`
}

// VariantTag returns the PROCESS.STATE_CHANGED tag.
func (*WebhookEventProcessStateChanged) VariantTag() string {
	return string(WebhookEventProcessStateChangedType)
}

// WebhookEventTaskStateChanged reports a task state transition.
type WebhookEventTaskStateChanged struct {
	WebhookEvent
	Data Bag `json:"data,omitempty"`
}

// VariantTag returns the TASK.STATE_CHANGED tag.
func (*WebhookEventTaskStateChanged) VariantTag() string {
	return string(WebhookEventTaskStateChangedType)
}

// Webhook is a subscription delivering events to a URL.
type Webhook struct {
	ID        *uuid.UUID         `json:"id,omitempty"`
	URL       string             `json:"url" codec:"required"`
	Events    []WebhookEventType `json:"events,omitempty"`
	Active    *bool              `json:"active,omitempty"`
	CreatedAt *time.Time         `json:"createdAt,omitempty"`
}

// Subscribes reports whether the webhook receives events of the given type. A webhook
// without an event list receives every event.
func (w *Webhook) Subscribes(t WebhookEventType) bool {
	if len(w.Events) == 0 {
		return true
	}
	return codec.IsKnownValue(t, w.Events...)
}
