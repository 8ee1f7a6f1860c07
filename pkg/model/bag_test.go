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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BagTestSuite struct {
	suite.Suite
	bag Bag
}

func TestBagSuite(t *testing.T) {
	suite.Run(t, new(BagTestSuite))
}

func (suite *BagTestSuite) SetupTest() {
	event, err := DecodeWebhookEvent([]byte(`{"type":"PROCESS.STATE_CHANGED","data":{
		"process": {"id": "9a4f0c12-8b3e-4d7a-a6c5-3e2f1d0c9b8a", "state": "COMPLETED"},
		"previousStates": ["CREATED", "RUNNING"],
		"attempt": 1
	}}`))
	require.NoError(suite.T(), err)
	suite.bag = event.(*WebhookEventProcessStateChanged).Data
}

func (suite *BagTestSuite) TestLookup() {
	testCases := []struct {
		path     string
		expected any
	}{
		{"process.state", "COMPLETED"},
		{"$.process.state", "COMPLETED"},
		{"previousStates[1]", "RUNNING"},
		{"attempt", json.Number("1")},
	}
	for _, tc := range testCases {
		suite.T().Run(tc.path, func(t *testing.T) {
			value, err := suite.bag.Lookup(tc.path)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, value)
		})
	}
}

func (suite *BagTestSuite) TestLookupMissing() {
	_, err := suite.bag.Lookup("process.owner")
	assert.Error(suite.T(), err)

	var empty Bag
	_, err = empty.Lookup("process")
	assert.Error(suite.T(), err)
}

func (suite *BagTestSuite) TestLookupString() {
	state, ok := suite.bag.LookupString("process.state")
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), "COMPLETED", state)

	_, ok = suite.bag.LookupString("attempt")
	assert.False(suite.T(), ok)

	_, ok = suite.bag.LookupString("missing")
	assert.False(suite.T(), ok)
}

func (suite *BagTestSuite) TestPtr() {
	p := Ptr(42)
	require.NotNil(suite.T(), p)
	assert.Equal(suite.T(), 42, *p)
}
