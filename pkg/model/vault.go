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

// VaultEncoded is a secret sealed with a vault key. IV and Ciphertext are base64 on the wire.
type VaultEncoded struct {
	KeyID      *uuid.UUID     `json:"keyId,omitempty" codec:"required"`
	Algorithm  VaultAlgorithm `json:"algorithm,omitempty"`
	IV         []byte         `json:"iv,omitempty"`
	Ciphertext []byte         `json:"ciphertext,omitempty" codec:"required"`
}

// VaultKey is a public key or key reference used to seal secrets.
type VaultKey struct {
	ID        *uuid.UUID     `json:"id,omitempty"`
	Algorithm VaultAlgorithm `json:"algorithm,omitempty"`
	Material  []byte         `json:"material,omitempty"`
	CreatedAt *time.Time     `json:"createdAt,omitempty"`
}
