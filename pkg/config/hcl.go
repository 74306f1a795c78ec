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
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*PatchrcConfig, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	// Define HCL schema
	type hclConfig struct {
		Marker  string `hcl:"marker,optional"`
		Backup  bool   `hcl:"backup,optional"`
		Async   bool   `hcl:"async,optional"`
		Patches []struct {
			File    string `hcl:"file,label"`
			Inserts []struct {
				Anchor      string `hcl:"anchor"`
				Content     string `hcl:"content,optional"`
				ContentFrom string `hcl:"content_from,optional"`
				SkipLines   int    `hcl:"skip_lines,optional"`
				Position    string `hcl:"position,optional"`
			} `hcl:"insert,block"`
			Deletes []struct {
				Line     int    `hcl:"line"`
				Fragment string `hcl:"fragment,optional"`
			} `hcl:"delete,block"`
			Replaces []struct {
				Old string `hcl:"old"`
				New string `hcl:"new"`
			} `hcl:"replace,block"`
		} `hcl:"patch,block"`
	}

	// Decode HCL
	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	cfg := &PatchrcConfig{
		Marker: hclCfg.Marker,
		Backup: hclCfg.Backup,
		Async:  hclCfg.Async,
	}

	for _, hp := range hclCfg.Patches {
		patch := Patch{File: hp.File}
		for _, ins := range hp.Inserts {
			patch.Inserts = append(patch.Inserts, Insertion{
				Anchor:      ins.Anchor,
				Content:     ins.Content,
				ContentFrom: ins.ContentFrom,
				SkipLines:   ins.SkipLines,
				Position:    ins.Position,
			})
		}
		for _, del := range hp.Deletes {
			patch.Deletes = append(patch.Deletes, LineDeletion{
				Line:     del.Line,
				Fragment: del.Fragment,
			})
		}
		for _, sub := range hp.Replaces {
			patch.Replaces = append(patch.Replaces, Substitution{
				Old: sub.Old,
				New: sub.New,
			})
		}
		cfg.Patches = append(cfg.Patches, patch)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}
