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
	"time"

	"github.com/google/uuid"
)

// Principal is a user, group or service account.
type Principal struct {
	ID          *uuid.UUID    `json:"id,omitempty"`
	Type        PrincipalType `json:"type,omitempty"`
	Name        string        `json:"name,omitempty"`
	DisplayName string        `json:"displayName,omitempty"`
	Email       string        `json:"email,omitempty"`
}

// Tenant is an isolated workspace owning processes and tasks.
type Tenant struct {
	ID          *uuid.UUID `json:"id,omitempty"`
	Name        string     `json:"name" codec:"required"`
	DisplayName string     `json:"displayName,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

// TenantUser is the membership of a principal in a tenant.
type TenantUser struct {
	TenantID  *uuid.UUID `json:"tenantId,omitempty"`
	Principal *Principal `json:"principal,omitempty"`
	Role      TenantRole `json:"role,omitempty"`
	JoinedAt  *time.Time `json:"joinedAt,omitempty"`
}
