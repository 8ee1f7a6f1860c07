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

// Package config loads the optional YAML configuration of the model library.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// LogConfig holds the logger settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// AliasConfig maps an extra discriminator value onto a registered one.
type AliasConfig struct {
	Family string `yaml:"family"`
	Tag    string `yaml:"tag"`
	Target string `yaml:"target"`
}

// CodecConfig holds the variant codec settings.
type CodecConfig struct {
	UnknownFields string        `yaml:"unknown_fields"`
	Aliases       []AliasConfig `yaml:"aliases"`
}

// Config is the root configuration.
type Config struct {
	Log   LogConfig   `yaml:"log"`
	Codec CodecConfig `yaml:"codec"`
}

// LoadConfig loads the configurations from the specified YAML file.
func LoadConfig(path string) (*Config, error) {

	var cfg Config
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every alias names a family, a tag and a target.
func (c *Config) Validate() error {

	var errs error
	for i, alias := range c.Codec.Aliases {
		if alias.Family == "" || alias.Tag == "" || alias.Target == "" {
			errs = multierr.Append(errs, fmt.Errorf("codec.aliases[%d]: family, tag and target are required", i))
		}
		if alias.Tag != "" && alias.Tag == alias.Target {
			errs = multierr.Append(errs, fmt.Errorf("codec.aliases[%d]: tag '%s' cannot alias itself", i, alias.Tag))
		}
	}
	return errs
}
