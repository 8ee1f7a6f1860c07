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
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/flowmodel/internal/system/config"
	"github.com/asgardeo/flowmodel/pkg/codec"
)

const resourcesDir = "../../tests/resources/"

type RegistryTestSuite struct {
	suite.Suite
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (suite *RegistryTestSuite) TestDefaultRegistersEveryFamily() {
	r := Default()
	assert.Same(suite.T(), r, Default())
	assert.Equal(suite.T(), []string{
		FamilyAudited, FamilyPage, FamilyProcessElementValue, FamilyTaskElementValue, FamilyWebhookEvent,
	}, r.Families())

	testCases := []struct {
		family string
		tags   []string
	}{
		{FamilyAudited, []string{ObjectTypeAuthentication, ObjectTypeProcess, ObjectTypeTask}},
		{FamilyPage, []string{ObjectTypePrincipalPage, ObjectTypeProcessPage, ObjectTypeTaskPage,
			ObjectTypeTenantPage, ObjectTypeTenantUserPage}},
		{FamilyProcessElementValue, []string{ElementTypeNumber, ElementTypeString}},
		{FamilyTaskElementValue, []string{ElementTypeDocument, ElementTypeNumber, ElementTypeObject,
			ElementTypePrincipal, ElementTypeString}},
		{FamilyWebhookEvent, []string{string(WebhookEventProcessStateChangedType),
			string(WebhookEventTaskStateChangedType)}},
	}
	for _, tc := range testCases {
		suite.T().Run(tc.family, func(t *testing.T) {
			assert.Equal(t, tc.tags, r.Tags(tc.family))
		})
	}
}

func (suite *RegistryTestSuite) TestDefaultIsSealed() {
	err := Default().Register(FamilyWebhookEvent, "OTHER", &WebhookEventTaskStateChanged{})
	assert.ErrorIs(suite.T(), err, codec.ErrRegistrySealed)
}

func (suite *RegistryTestSuite) TestRegisterTwiceFails() {
	r := codec.NewRegistry(codec.Options{})
	require.NoError(suite.T(), Register(r))

	err := Register(r)
	assert.ErrorIs(suite.T(), err, codec.ErrDuplicateFamily)
}

func (suite *RegistryTestSuite) TestTaskStateChangedExample() {
	input := `{"type":"TASK.STATE_CHANGED","id":"3fa85f64-5717-4562-b3fc-2c963f66afa6",` +
		`"timestamp":"2024-01-01T00:00:00Z","data":{"taskId":"t-1","state":"COMPLETED"}}`

	event, err := DecodeWebhookEvent([]byte(input))
	require.NoError(suite.T(), err)

	changed, ok := event.(*WebhookEventTaskStateChanged)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), uuid.MustParse("3fa85f64-5717-4562-b3fc-2c963f66afa6"), *changed.ID)
	assert.Equal(suite.T(), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *changed.Timestamp)
	assert.Equal(suite.T(), Bag{"taskId": "t-1", "state": "COMPLETED"}, changed.Data)

	output, err := Encode(changed)
	require.NoError(suite.T(), err)
	assert.JSONEq(suite.T(), input, string(output))

	var fields map[string]json.RawMessage
	require.NoError(suite.T(), json.Unmarshal(output, &fields))
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	assert.Equal(suite.T(), []string{"data", "id", "timestamp", "type"}, keys)
}

func (suite *RegistryTestSuite) TestUnknownWebhookEventExample() {
	input := `{"type":"UNKNOWN_FUTURE_TAG","id":"3fa85f64-5717-4562-b3fc-2c963f66afa6",` +
		`"timestamp":"2024-01-01T00:00:00Z","data":{"anything":true}}`

	event, err := DecodeWebhookEvent([]byte(input))
	require.NoError(suite.T(), err)

	base, ok := event.(*WebhookEvent)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), WebhookEventType("UNKNOWN_FUTURE_TAG"), base.Type)
	assert.False(suite.T(), base.Type.IsKnown())
	assert.Equal(suite.T(), uuid.MustParse("3fa85f64-5717-4562-b3fc-2c963f66afa6"), *base.ID)
	assert.Equal(suite.T(), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *base.Timestamp)
	assert.Nil(suite.T(), base.Extra)

	output, err := Encode(base)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(),
		`{"id":"3fa85f64-5717-4562-b3fc-2c963f66afa6","timestamp":"2024-01-01T00:00:00Z","type":"UNKNOWN_FUTURE_TAG"}`,
		string(output))
}

func (suite *RegistryTestSuite) TestDecodeHelpers() {
	audited, err := DecodeAudited([]byte(`{"objectType":"PROCESS","name":"n","definitionKey":"k"}`))
	require.NoError(suite.T(), err)
	assert.IsType(suite.T(), &Process{}, audited)

	page, err := DecodePage([]byte(`{"objectType":"TENANT_PAGE","size":10,"number":0,"totalElements":1,` +
		`"totalPages":1,"content":[{"name":"acme"}]}`))
	require.NoError(suite.T(), err)
	tenants, ok := page.(*TenantPage)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), []Tenant{{Name: "acme"}}, tenants.Content)
	assert.Equal(suite.T(), 1, page.Len())

	processValue, err := DecodeProcessElementValue([]byte(`{"type":"NUMBER","name":"n","value":4}`))
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 4.0, *processValue.(*ProcessElementValueNumber).Value)

	taskElement, err := DecodeTaskElementValue([]byte(`{"type":"SIGNATURE","name":"sig","label":"Sign"}`))
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "SIGNATURE", taskElement.VariantTag())
	assert.Equal(suite.T(), "Sign", taskElement.TaskElementBase().Label)
}

func (suite *RegistryTestSuite) TestDecodeWrongInterface() {
	_, err := Decode[PageVariant](Default(), FamilyWebhookEvent, []byte(`{"type":"TASK.STATE_CHANGED"}`))
	assert.ErrorIs(suite.T(), err, codec.ErrInvalidTarget)
}

func (suite *RegistryTestSuite) TestLoadRegistry() {
	r, err := LoadRegistry(resourcesDir + "codec.yaml")
	require.NoError(suite.T(), err)

	input := `{"type":"TASK.STATE_CHANGED.V2","id":"3fa85f64-5717-4562-b3fc-2c963f66afa6","retries":2}`
	event, err := Decode[WebhookEventVariant](r, FamilyWebhookEvent, []byte(input))
	require.NoError(suite.T(), err)

	changed, ok := event.(*WebhookEventTaskStateChanged)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), map[string]json.RawMessage{"retries": json.RawMessage("2")}, changed.Extra)

	output, err := r.Encode(changed)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(),
		`{"id":"3fa85f64-5717-4562-b3fc-2c963f66afa6","retries":2,"type":"TASK.STATE_CHANGED"}`, string(output))

	workflow, err := Decode[AuditedVariant](r, FamilyAudited, []byte(`{"objectType":"WORKFLOW","name":"n"}`))
	require.NoError(suite.T(), err)
	assert.IsType(suite.T(), &Process{}, workflow)

	err = r.Alias(FamilyWebhookEvent, "LATE", string(WebhookEventTaskStateChangedType))
	assert.ErrorIs(suite.T(), err, codec.ErrRegistrySealed)
}

func (suite *RegistryTestSuite) TestLoadRegistryEmptyConfig() {
	r, err := LoadRegistry(resourcesDir + "empty.yaml")
	require.NoError(suite.T(), err)

	event, err := Decode[WebhookEventVariant](r, FamilyWebhookEvent, []byte(`{"type":"TASK.STATE_CHANGED","x":1}`))
	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), event.WebhookEventBase().Extra)
}

func (suite *RegistryTestSuite) TestLoadRegistryErrors() {
	testCases := []struct {
		name  string
		file  string
		check func(t *testing.T, err error)
	}{
		{"MissingFile", "missing.yaml", func(t *testing.T, err error) { assert.Error(t, err) }},
		{"InvalidPolicy", "codec_invalid_policy.yaml", func(t *testing.T, err error) {
			assert.ErrorContains(t, err, "invalid unknown field policy 'keep'")
		}},
		{"UnknownAliasTarget", "codec_unknown_alias.yaml", func(t *testing.T, err error) {
			assert.ErrorIs(t, err, codec.ErrUnknownTag)
		}},
		{"IncompleteAlias", "codec_incomplete_alias.yaml", func(t *testing.T, err error) {
			assert.ErrorContains(t, err, "codec.aliases[0]")
		}},
	}
	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			r, err := LoadRegistry(resourcesDir + tc.file)
			assert.Nil(t, r)
			tc.check(t, err)
		})
	}
}

func (suite *RegistryTestSuite) TestNewRegistryFromConfigDuplicateAlias() {
	cfg := &config.Config{Codec: config.CodecConfig{Aliases: []config.AliasConfig{
		{Family: FamilyWebhookEvent, Tag: string(WebhookEventProcessStateChangedType),
			Target: string(WebhookEventTaskStateChangedType)},
	}}}

	_, err := NewRegistryFromConfig(cfg)
	var dup *codec.DuplicateTagError
	require.True(suite.T(), errors.As(err, &dup))
	assert.Equal(suite.T(), FamilyWebhookEvent, dup.Family)
}
