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

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

const testResourceDir = "../../../tests/resources"

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) getFilePath(filename string) string {
	return filepath.Join(testResourceDir, filename)
}

func (suite *ConfigTestSuite) TestLoadConfigValid() {
	config, err := LoadConfig(suite.getFilePath("codec.yaml"))

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), config)

	// Verify log config
	assert.Equal(suite.T(), "error", config.Log.Level)
	assert.Equal(suite.T(), "json", config.Log.Format)

	// Verify codec config
	assert.Equal(suite.T(), "retain", config.Codec.UnknownFields)
	assert.Equal(suite.T(), []AliasConfig{
		{Family: "WebhookEvent", Tag: "TASK.STATE_CHANGED.V2", Target: "TASK.STATE_CHANGED"},
		{Family: "AbstractAudited", Tag: "WORKFLOW", Target: "PROCESS"},
	}, config.Codec.Aliases)
}

func (suite *ConfigTestSuite) TestLoadConfigEmptyFile() {
	config, err := LoadConfig(suite.getFilePath("empty.yaml"))

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), &Config{}, config)
}

func (suite *ConfigTestSuite) TestLoadConfigFileNotFound() {
	config, err := LoadConfig(suite.getFilePath("non_existent_config.yaml"))

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), config)
	assert.Contains(suite.T(), err.Error(), "no such file or directory")
}

func (suite *ConfigTestSuite) TestLoadConfigUnknownKey() {
	config, err := LoadConfig(suite.getFilePath("codec_unknown_key.yaml"))

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), config)
	assert.Contains(suite.T(), err.Error(), "field strict not found")
}

func (suite *ConfigTestSuite) TestLoadConfigInvalidAliases() {
	config, err := LoadConfig(suite.getFilePath("codec_incomplete_alias.yaml"))

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), config)
	assert.Contains(suite.T(), err.Error(), "codec.aliases[0]: family, tag and target are required")
	assert.Contains(suite.T(), err.Error(), "codec.aliases[1]: tag 'SAME' cannot alias itself")
}

func (suite *ConfigTestSuite) TestValidate() {
	valid := &Config{Codec: CodecConfig{Aliases: []AliasConfig{{Family: "Page", Tag: "A", Target: "B"}}}}
	assert.NoError(suite.T(), valid.Validate())
	assert.NoError(suite.T(), (&Config{}).Validate())
}
