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

	"github.com/asgardeo/flowmodel/pkg/codec"
)

// PageVariant is a member of the Page family.
type PageVariant interface {
	codec.Variant
	Metadata() PageMetadata
	Len() int
}

// PageMetadata describes the position of a page within a result set.
type PageMetadata struct {
	Size          int32 `json:"size"`
	Number        int32 `json:"number"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int32 `json:"totalPages"`
}

// NewPageMetadata returns metadata with TotalPages derived from size and totalElements.
func NewPageMetadata(size, number int32, totalElements int64) PageMetadata {
	return PageMetadata{
		Size:          size,
		Number:        number,
		TotalElements: totalElements,
		TotalPages:    TotalPages(size, totalElements),
	}
}

// TotalPages returns ceil(totalElements / size), or 0 when size is not positive.
func TotalPages(size int32, totalElements int64) int32 {
	if size <= 0 || totalElements <= 0 {
		return 0
	}
	return int32((totalElements + int64(size) - 1) / int64(size))
}

// Consistent reports whether TotalPages agrees with Size and TotalElements.
func (m PageMetadata) Consistent() bool {
	return m.TotalPages == TotalPages(m.Size, m.TotalElements)
}

// HasNext reports whether a page follows this one. Page numbers start at zero.
func (m PageMetadata) HasNext() bool {
	return m.Number+1 < m.TotalPages
}

// Page is one page of a paged result. Page[Bag] is the shape a page with an
// unrecognised objectType decodes to.
type Page[T any] struct {
	ObjectType string `json:"-"`
	PageMetadata
	Content []T                        `json:"content,omitempty"`
	Extra   map[string]json.RawMessage `json:"-" codec:"extra"`
}

// GenericPage is the base shape of the Page family.
type GenericPage = Page[Bag]

// VariantTag returns the objectType the page was decoded with.
func (p *Page[T]) VariantTag() string { return p.ObjectType }

// SetVariantTag records the objectType of an unrecognised page.
func (p *Page[T]) SetVariantTag(tag string) { p.ObjectType = tag }

// Metadata returns the paging metadata.
func (p *Page[T]) Metadata() PageMetadata { return p.PageMetadata }

// Len returns the number of items on the page.
func (p *Page[T]) Len() int { return len(p.Content) }

// PrincipalPage is a page of principals.
type PrincipalPage struct {
	Page[Principal]
}

// VariantTag returns ObjectTypePrincipalPage.
func (*PrincipalPage) VariantTag() string { return ObjectTypePrincipalPage }

// ProcessPage is a page of processes.
type ProcessPage struct {
	Page[Process]
}

// VariantTag returns ObjectTypeProcessPage.
func (*ProcessPage) VariantTag() string { return ObjectTypeProcessPage }

// TaskPage is a page of tasks.
type TaskPage struct {
	Page[Task]
}

// VariantTag returns ObjectTypeTaskPage.
func (*TaskPage) VariantTag() string { return ObjectTypeTaskPage }

// TenantUserPage is a page of tenant memberships.
type TenantUserPage struct {
	Page[TenantUser]
}

// VariantTag returns ObjectTypeTenantUserPage.
func (*TenantUserPage) VariantTag() string { return ObjectTypeTenantUserPage }

// TenantPage is a page of tenants.
type TenantPage struct {
	Page[Tenant]
}

// VariantTag returns ObjectTypeTenantPage.
func (*TenantPage) VariantTag() string { return ObjectTypeTenantPage }

// NewPrincipalPage returns a page of principals with derived metadata.
func NewPrincipalPage(size, number int32, totalElements int64, content ...Principal) *PrincipalPage {
	return &PrincipalPage{Page: Page[Principal]{
		PageMetadata: NewPageMetadata(size, number, totalElements),
		Content:      content,
	}}
}

// NewProcessPage returns a page of processes with derived metadata.
func NewProcessPage(size, number int32, totalElements int64, content ...Process) *ProcessPage {
	return &ProcessPage{Page: Page[Process]{
		PageMetadata: NewPageMetadata(size, number, totalElements),
		Content:      content,
	}}
}

// NewTaskPage returns a page of tasks with derived metadata.
func NewTaskPage(size, number int32, totalElements int64, content ...Task) *TaskPage {
	return &TaskPage{Page: Page[Task]{
		PageMetadata: NewPageMetadata(size, number, totalElements),
		Content:      content,
	}}
}
