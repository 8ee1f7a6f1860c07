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

// Package model defines the workflow API data types and registers their variant
// families with the codec.
package model

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/asgardeo/flowmodel/internal/system/config"
	"github.com/asgardeo/flowmodel/internal/system/log"
	"github.com/asgardeo/flowmodel/pkg/codec"
)

var families = []codec.Family{
	{
		Name:          FamilyAudited,
		Discriminator: DiscriminatorObjectType,
		TagFirst:      true,
		NewBase:       func() codec.Fallback { return &Audited{} },
	},
	{
		Name:          FamilyPage,
		Discriminator: DiscriminatorObjectType,
		TagFirst:      true,
		NewBase:       func() codec.Fallback { return &GenericPage{} },
	},
	{
		Name:          FamilyProcessElementValue,
		Discriminator: DiscriminatorType,
		NewBase:       func() codec.Fallback { return &ProcessElementValue{} },
	},
	{
		Name:          FamilyTaskElementValue,
		Discriminator: DiscriminatorType,
		NewBase:       func() codec.Fallback { return &TaskElementValue{} },
	},
	{
		Name:          FamilyWebhookEvent,
		Discriminator: DiscriminatorType,
		NewBase:       func() codec.Fallback { return &WebhookEvent{} },
	},
}

var variants = []struct {
	family    string
	prototype codec.Variant
}{
	{FamilyAudited, &Authentication{}},
	{FamilyAudited, &Process{}},
	{FamilyAudited, &Task{}},

	{FamilyPage, &PrincipalPage{}},
	{FamilyPage, &ProcessPage{}},
	{FamilyPage, &TaskPage{}},
	{FamilyPage, &TenantUserPage{}},
	{FamilyPage, &TenantPage{}},

	{FamilyProcessElementValue, &ProcessElementValueString{}},
	{FamilyProcessElementValue, &ProcessElementValueNumber{}},

	{FamilyTaskElementValue, &TaskElementValueString{}},
	{FamilyTaskElementValue, &TaskElementValueNumber{}},
	{FamilyTaskElementValue, &TaskElementValueObject{}},
	{FamilyTaskElementValue, &TaskElementValueDocument{}},
	{FamilyTaskElementValue, &TaskElementValuePrincipal{}},

	{FamilyWebhookEvent, &WebhookEventProcessStateChanged{}},
	{FamilyWebhookEvent, &WebhookEventTaskStateChanged{}},
}

var (
	defaultRegistry *codec.Registry
	defaultOnce     sync.Once
)

// Register adds every model family and variant to r. The registry is left unsealed so
// callers can add aliases or their own variants before sealing it.
func Register(r *codec.Registry) error {
	for _, f := range families {
		if err := r.RegisterFamily(f); err != nil {
			return err
		}
	}
	for _, v := range variants {
		if err := r.Register(v.family, v.prototype.VariantTag(), v.prototype); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry returns a sealed registry holding every model family.
func NewRegistry(opts codec.Options) (*codec.Registry, error) {
	r := codec.NewRegistry(opts)
	if err := Register(r); err != nil {
		return nil, err
	}
	r.Seal()
	return r, nil
}

// Default returns the shared sealed registry, building it on first use. It discards
// unknown fields. A registration failure is a programming error and panics.
func Default() *codec.Registry {
	defaultOnce.Do(func() {
		r, err := NewRegistry(codec.Options{})
		if err != nil {
			log.GetLogger().Error("Failed to register model variants", zap.Error(err))
			panic(err)
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// LoadRegistry reads the YAML configuration at path, configures logging from it and
// returns a sealed registry with the configured unknown-field policy and aliases.
func LoadRegistry(path string) (*codec.Registry, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if cfg.Log.Level != "" || cfg.Log.Format != "" {
		if err := log.InitLogger(cfg.Log.Level, cfg.Log.Format); err != nil {
			return nil, fmt.Errorf("failed to initialize logger: %w", err)
		}
	}
	return NewRegistryFromConfig(cfg)
}

// NewRegistryFromConfig returns a sealed registry built from an already loaded configuration.
func NewRegistryFromConfig(cfg *config.Config) (*codec.Registry, error) {
	policy, err := codec.ParseUnknownFieldPolicy(cfg.Codec.UnknownFields)
	if err != nil {
		return nil, err
	}

	r := codec.NewRegistry(codec.Options{UnknownFields: policy})
	if err := Register(r); err != nil {
		return nil, err
	}
	for _, alias := range cfg.Codec.Aliases {
		if err := r.Alias(alias.Family, alias.Tag, alias.Target); err != nil {
			return nil, fmt.Errorf("failed to register alias '%s' of family '%s': %w", alias.Tag, alias.Family, err)
		}
	}
	r.Seal()
	return r, nil
}

// Decode decodes a value of family and asserts it to T, the family's variant interface.
func Decode[T codec.Variant](r *codec.Registry, family string, data []byte) (T, error) {
	var zero T
	v, err := r.Decode(family, data)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %T does not implement the variant interface of family '%s'",
			codec.ErrInvalidTarget, v, family)
	}
	return typed, nil
}

// DecodeAudited decodes an entity of the AbstractAudited family with the default registry.
func DecodeAudited(data []byte) (AuditedVariant, error) {
	return Decode[AuditedVariant](Default(), FamilyAudited, data)
}

// DecodePage decodes a page with the default registry.
func DecodePage(data []byte) (PageVariant, error) {
	return Decode[PageVariant](Default(), FamilyPage, data)
}

// DecodeProcessElementValue decodes a process value with the default registry.
func DecodeProcessElementValue(data []byte) (ProcessElementVariant, error) {
	return Decode[ProcessElementVariant](Default(), FamilyProcessElementValue, data)
}

// DecodeTaskElementValue decodes a task element with the default registry.
func DecodeTaskElementValue(data []byte) (TaskElementVariant, error) {
	return Decode[TaskElementVariant](Default(), FamilyTaskElementValue, data)
}

// DecodeWebhookEvent decodes a webhook event with the default registry.
func DecodeWebhookEvent(data []byte) (WebhookEventVariant, error) {
	return Decode[WebhookEventVariant](Default(), FamilyWebhookEvent, data)
}

// Encode writes a variant with the default registry.
func Encode(v codec.Variant) ([]byte, error) {
	return Default().Encode(v)
}

// Marshal writes a plain struct, such as a command, with the default registry.
func Marshal(v any) ([]byte, error) {
	return Default().Marshal(v)
}

// Unmarshal reads a plain struct, such as Webhook, with the default registry.
func Unmarshal(data []byte, v any) error {
	return Default().Unmarshal(data, v)
}
