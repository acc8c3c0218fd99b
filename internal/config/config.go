/*
 * Copyright (C) 2023 by Coobik, https://github.com/Coobik
 * This file is part of rpy-tools, https://github.com/Coobik/rpy-tools
 * and is released under the GNU General Public License v3.0
 * https://github.com/Coobik/rpy-tools/blob/main/LICENSE
 */

// Package config holds the run options shared by both tools and the
// generator's YAML character configuration.
package config

import (
	"fmt"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/coobik/rpy-tools/internal/apperr"
	"github.com/coobik/rpy-tools/internal/rpy"
	"github.com/coobik/rpy-tools/internal/screenplay"
)

// Defaults for flag values.
const (
	DefaultIndexMainLabel = "main_index"
	DefaultGenMainLabel   = "main"
	DefaultFilePrefix     = "index_"
)

// Options is the flag-backed configuration of a single run.
type Options struct {
	InputDir       string
	OutputDir      string // default: current working directory
	MainLabel      string
	PageSize       int
	FileNamePrefix string // indexer only
	ConfigPath     string // generator only
}

// Validate checks the options before any file processing begins.
func (o Options) Validate() error {
	err := validation.ValidateStruct(&o,
		validation.Field(&o.InputDir, validation.Required.Error("input directory is required")),
		validation.Field(&o.PageSize,
			validation.Required.Error("label_page_size must be positive"),
			validation.Min(1).Error("label_page_size must be positive")),
	)
	if err != nil {
		return apperr.InvalidConfiguration(err)
	}
	return nil
}

// Normalized returns a copy with the output directory defaulted and
// the main label normalized for the dialect.
func (o Options) Normalized(defaultMainLabel string) Options {
	if o.OutputDir == "" {
		o.OutputDir = "."
	}
	o.MainLabel = rpy.NormalizeLabel(o.MainLabel, defaultMainLabel)
	return o
}

// ScriptConfig is the generator's YAML configuration.
type ScriptConfig struct {
	Characters CharacterMap `yaml:"characters"`
}

// CharacterMap preserves the document order of the characters mapping,
// so configured characters are declared in the order the author wrote
// them.
type CharacterMap []screenplay.Character

// UnmarshalYAML decodes a display-name-to-identifier mapping node.
func (m *CharacterMap) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("characters must be a mapping of display name to identifier")
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var name, id string
		if err := node.Content[i].Decode(&name); err != nil {
			return fmt.Errorf("characters key at line %d: %w", node.Content[i].Line, err)
		}
		if err := node.Content[i+1].Decode(&id); err != nil {
			return fmt.Errorf("character %q: %w", name, err)
		}
		*m = append(*m, screenplay.Character{Name: name, ID: id})
	}
	return nil
}

// LoadScriptConfig reads the YAML character configuration. An empty
// path yields an empty config (every speaker auto-registered); a path
// that cannot be read or parsed is fatal.
func LoadScriptConfig(path string) (*ScriptConfig, error) {
	cfg := &ScriptConfig{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.InvalidConfiguration(fmt.Errorf("read config %s: %w", path, err))
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, apperr.InvalidConfiguration(fmt.Errorf("parse config %s: %w", path, err))
	}
	return cfg, nil
}
