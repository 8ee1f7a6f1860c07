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

import "github.com/asgardeo/flowmodel/pkg/codec"

// Variant family names.
const (
	FamilyAudited             = "AbstractAudited"
	FamilyPage                = "Page"
	FamilyProcessElementValue = "ProcessElementValue"
	FamilyTaskElementValue    = "TaskElementValue"
	FamilyWebhookEvent        = "WebhookEvent"
)

// Discriminator field names.
const (
	DiscriminatorObjectType = "objectType"
	DiscriminatorType       = "type"
)

// Discriminator values of the AbstractAudited family.
const (
	ObjectTypeAuthentication = "AUTHENTICATION"
	ObjectTypeProcess        = "PROCESS"
	ObjectTypeTask           = "TASK"
)

// Discriminator values of the Page family.
const (
	ObjectTypePrincipalPage  = "PRINCIPAL_PAGE"
	ObjectTypeProcessPage    = "PROCESS_PAGE"
	ObjectTypeTaskPage       = "TASK_PAGE"
	ObjectTypeTenantUserPage = "TENANT_USER_PAGE"
	ObjectTypeTenantPage     = "TENANT_PAGE"
)

// Discriminator values shared by the ProcessElementValue and TaskElementValue families.
const (
	ElementTypeString    = "STRING"
	ElementTypeNumber    = "NUMBER"
	ElementTypeObject    = "OBJECT"
	ElementTypeDocument  = "DOCUMENT"
	ElementTypePrincipal = "PRINCIPAL"
)

// WebhookEventType identifies a webhook event. Values outside the known set are kept as-is.
type WebhookEventType string

// Known webhook event types.
const (
	WebhookEventProcessStateChangedType WebhookEventType = "PROCESS.STATE_CHANGED"
	WebhookEventTaskStateChangedType    WebhookEventType = "TASK.STATE_CHANGED"
)

// IsKnown reports whether the event type is one this client knows about.
func (t WebhookEventType) IsKnown() bool {
	return codec.IsKnownValue(t, WebhookEventProcessStateChangedType, WebhookEventTaskStateChangedType)
}

// ProcessState is the lifecycle state of a process. Values outside the known set are kept as-is.
type ProcessState string

// Known process states.
const (
	ProcessStateCreated   ProcessState = "CREATED"
	ProcessStateRunning   ProcessState = "RUNNING"
	ProcessStateSuspended ProcessState = "SUSPENDED"
	ProcessStateCompleted ProcessState = "COMPLETED"
	ProcessStateCancelled ProcessState = "CANCELLED"
	ProcessStateFailed    ProcessState = "FAILED"
)

// IsKnown reports whether the state is one this client knows about.
func (s ProcessState) IsKnown() bool {
	return codec.IsKnownValue(s, ProcessStateCreated, ProcessStateRunning, ProcessStateSuspended,
		ProcessStateCompleted, ProcessStateCancelled, ProcessStateFailed)
}

// IsTerminal reports whether the process can no longer change state.
func (s ProcessState) IsTerminal() bool {
	return codec.IsKnownValue(s, ProcessStateCompleted, ProcessStateCancelled, ProcessStateFailed)
}

// TaskState is the lifecycle state of a task. Values outside the known set are kept as-is.
type TaskState string

// Known task states.
const (
	TaskStateCreated   TaskState = "CREATED"
	TaskStateAssigned  TaskState = "ASSIGNED"
	TaskStateCompleted TaskState = "COMPLETED"
	TaskStateCancelled TaskState = "CANCELLED"
	TaskStateExpired   TaskState = "EXPIRED"
)

// IsKnown reports whether the state is one this client knows about.
func (s TaskState) IsKnown() bool {
	return codec.IsKnownValue(s, TaskStateCreated, TaskStateAssigned, TaskStateCompleted,
		TaskStateCancelled, TaskStateExpired)
}

// IsTerminal reports whether the task can no longer change state.
func (s TaskState) IsTerminal() bool {
	return codec.IsKnownValue(s, TaskStateCompleted, TaskStateCancelled, TaskStateExpired)
}

// AuthenticationMethod is how a principal authenticated. Values outside the known set are kept as-is.
type AuthenticationMethod string

// Known authentication methods.
const (
	AuthenticationMethodPassword AuthenticationMethod = "PASSWORD"
	AuthenticationMethodAPIKey   AuthenticationMethod = "API_KEY"
	AuthenticationMethodOAuth2   AuthenticationMethod = "OAUTH2"
)

// IsKnown reports whether the method is one this client knows about.
func (m AuthenticationMethod) IsKnown() bool {
	return codec.IsKnownValue(m, AuthenticationMethodPassword, AuthenticationMethodAPIKey,
		AuthenticationMethodOAuth2)
}

// PrincipalType is the kind of a principal. Unknown values decode as absent.
type PrincipalType string

// Principal types.
const (
	PrincipalTypeUser           PrincipalType = "USER"
	PrincipalTypeGroup          PrincipalType = "GROUP"
	PrincipalTypeServiceAccount PrincipalType = "SERVICE_ACCOUNT"
)

// IsKnown reports whether the value belongs to the enum.
func (t PrincipalType) IsKnown() bool {
	return codec.IsKnownValue(t, PrincipalTypeUser, PrincipalTypeGroup, PrincipalTypeServiceAccount)
}

// Closed marks PrincipalType as a closed enum.
func (PrincipalType) Closed() {}

// TenantRole is the role of a principal within a tenant. Unknown values decode as absent.
type TenantRole string

// Tenant roles.
const (
	TenantRoleOwner  TenantRole = "OWNER"
	TenantRoleAdmin  TenantRole = "ADMIN"
	TenantRoleMember TenantRole = "MEMBER"
	TenantRoleViewer TenantRole = "VIEWER"
)

// IsKnown reports whether the value belongs to the enum.
func (r TenantRole) IsKnown() bool {
	return codec.IsKnownValue(r, TenantRoleOwner, TenantRoleAdmin, TenantRoleMember, TenantRoleViewer)
}

// Closed marks TenantRole as a closed enum.
func (TenantRole) Closed() {}

// VaultAlgorithm is the cipher a vault payload was sealed with. Unknown values decode as absent.
type VaultAlgorithm string

// Vault algorithms.
const (
	VaultAlgorithmAES256GCM  VaultAlgorithm = "AES_256_GCM"
	VaultAlgorithmRSAOAEP256 VaultAlgorithm = "RSA_OAEP_256"
)

// IsKnown reports whether the value belongs to the enum.
func (a VaultAlgorithm) IsKnown() bool {
	return codec.IsKnownValue(a, VaultAlgorithmAES256GCM, VaultAlgorithmRSAOAEP256)
}

// Closed marks VaultAlgorithm as a closed enum.
func (VaultAlgorithm) Closed() {}
