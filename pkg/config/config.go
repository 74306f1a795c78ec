// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"

	"github.com/walteh/patchrc/pkg/patch"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*PatchrcConfig, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// ➕ Insertion describes content added at an anchor pattern
type Insertion struct {
	Anchor      string `json:"anchor" yaml:"anchor"`
	Content     string `json:"content,omitempty" yaml:"content,omitempty"`
	ContentFrom string `json:"content_from,omitempty" yaml:"content_from,omitempty"` // Read content from a companion file
	SkipLines   int    `json:"skip_lines,omitempty" yaml:"skip_lines,omitempty"`     // Drop this many leading lines of content_from
	Position    string `json:"position,omitempty" yaml:"position,omitempty"`         // "before" (default) or "after"
}

// 🗑️ LineDeletion describes one guarded line removal
type LineDeletion struct {
	Line     int    `json:"line" yaml:"line"`
	Fragment string `json:"fragment,omitempty" yaml:"fragment,omitempty"`
}

// 🔄 Substitution describes a literal global replacement
type Substitution struct {
	Old string `json:"old" yaml:"old"`
	New string `json:"new" yaml:"new"`
}

// 📄 Patch groups the edits for one target file. Edits are submitted to the
// engine in group order: insertions, then deletions (as one batch), then
// substitutions — the order the original patch scripts used.
type Patch struct {
	File     string         `json:"file" yaml:"file"` // Path or doublestar glob
	Inserts  []Insertion    `json:"insert,omitempty" yaml:"insert,omitempty"`
	Deletes  []LineDeletion `json:"delete,omitempty" yaml:"delete,omitempty"`
	Replaces []Substitution `json:"replace,omitempty" yaml:"replace,omitempty"`
}

// 📚 PatchrcConfig represents the complete configuration
type PatchrcConfig struct {
	Marker  string  `json:"marker,omitempty" yaml:"marker,omitempty"` // Deletion guard substring, default "TODO"
	Backup  bool    `json:"backup,omitempty" yaml:"backup,omitempty"` // Keep a .bak of each file before writing
	Async   bool    `json:"async,omitempty" yaml:"async,omitempty"`   // Patch distinct files concurrently
	Patches []Patch `json:"patches" yaml:"patches"`
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*PatchrcConfig, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// For .patchrc files, try YAML first and HCL next
	if strings.HasSuffix(path, ".patchrc") {
		cfg, yamlErr := (&YAMLParser{}).Parse(ctx, data)
		if yamlErr == nil {
			return cfg, nil
		}
		cfg, hclErr := (&HCLParser{}).Parse(ctx, data)
		if hclErr == nil {
			return cfg, nil
		}
		return nil, errors.Errorf("failed to parse .patchrc as YAML or HCL: %w", hclErr)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid
func (cfg *PatchrcConfig) Validate() error {
	if len(cfg.Patches) == 0 {
		return errors.Errorf("at least one patch is required")
	}

	// Set defaults
	if cfg.Marker == "" {
		cfg.Marker = "TODO"
	}

	for i := range cfg.Patches {
		if err := cfg.Patches[i].validate(); err != nil {
			return errors.Errorf("patch %d: %w", i, err)
		}
	}

	return nil
}

func (p *Patch) validate() error {
	if p.File == "" {
		return errors.Errorf("file is required")
	}
	if len(p.Inserts)+len(p.Deletes)+len(p.Replaces) == 0 {
		return errors.Errorf("at least one operation is required")
	}

	for i, ins := range p.Inserts {
		if ins.Anchor == "" {
			return errors.Errorf("insert %d: anchor is required", i)
		}
		if ins.Content == "" && ins.ContentFrom == "" {
			return errors.Errorf("insert %d: content or content_from is required", i)
		}
		if ins.Content != "" && ins.ContentFrom != "" {
			return errors.Errorf("insert %d: content and content_from are mutually exclusive", i)
		}
		if ins.SkipLines > 0 && ins.ContentFrom == "" {
			return errors.Errorf("insert %d: skip_lines requires content_from", i)
		}
		if _, err := patch.ParsePosition(ins.Position); err != nil {
			return errors.Errorf("insert %d: %w", i, err)
		}
	}

	for i, del := range p.Deletes {
		if del.Line < 1 {
			return errors.Errorf("delete %d: line must be >= 1", i)
		}
	}

	for i, sub := range p.Replaces {
		if sub.Old == "" {
			return errors.Errorf("replace %d: old is required", i)
		}
	}

	return nil
}

// 🔑 Hash returns a stable hash of the configuration
func (cfg *PatchrcConfig) Hash() string {
	data, err := json.Marshal(cfg)
	if err != nil {
		return ""
	}
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// 📝 String returns a string representation of the config
func (cfg *PatchrcConfig) String() string {
	return fmt.Sprintf("patchrc: %d patch(es), marker=%q", len(cfg.Patches), cfg.Marker)
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*PatchrcConfig, error) {
	var cfg PatchrcConfig
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}
