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

import "github.com/google/uuid"

// StartProcessCommand starts a process from a definition.
type StartProcessCommand struct {
	DefinitionKey string                  `json:"definitionKey" codec:"required"`
	Name          string                  `json:"name,omitempty"`
	TenantID      *uuid.UUID              `json:"tenantId,omitempty"`
	Values        []ProcessElementVariant `json:"values,omitempty" codec:"variant=ProcessElementValue"`
}

// CompleteTaskCommand completes a task with the submitted element values.
type CompleteTaskCommand struct {
	Elements []TaskElementVariant `json:"elements,omitempty" codec:"variant=TaskElementValue"`
}

// AssignTaskCommand assigns a task to a principal.
type AssignTaskCommand struct {
	AssigneeID *uuid.UUID `json:"assigneeId,omitempty" codec:"required"`
}

// CreateTenantCommand creates a tenant.
type CreateTenantCommand struct {
	Name        string `json:"name" codec:"required"`
	DisplayName string `json:"displayName,omitempty"`
}

// AddTenantUserCommand adds a principal to a tenant.
type AddTenantUserCommand struct {
	PrincipalID *uuid.UUID `json:"principalId,omitempty" codec:"required"`
	Role        TenantRole `json:"role,omitempty"`
}

// CreateWebhookCommand registers a webhook. Secret is the signing secret sealed with a vault key.
type CreateWebhookCommand struct {
	URL    string             `json:"url" codec:"required"`
	Events []WebhookEventType `json:"events,omitempty"`
	Secret *VaultEncoded      `json:"secret,omitempty"`
}
