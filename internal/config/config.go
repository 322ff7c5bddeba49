// SPDX-FileCopyrightText: 2025 Smart Shower OS contributors
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/smartshower/provisioner/asset"
)

// OverlayFile is the optional operator-provided manifest, resolved against
// the installation root. Keys present in it replace the built-in defaults.
const OverlayFile = "provision.yaml"

type ProvisionConfig struct {
	Runtime struct {
		Interpreter string `yaml:"interpreter"`
		MinVersion  string `yaml:"minVersion"`
	} `yaml:"runtime"`
	System struct {
		Packages []string `yaml:"packages"`
	} `yaml:"system"`
	Venv struct {
		Dir      string `yaml:"dir"`
		Manifest string `yaml:"manifest"`
	} `yaml:"venv"`
	Directories []string `yaml:"directories"`
	ConfigFiles []string `yaml:"configFiles"`
	Service     struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		User        string `yaml:"user"`
		EntryPoint  string `yaml:"entryPoint"`
		RestartSec  int    `yaml:"restartSec"`
	} `yaml:"service"`
	Audio struct {
		PulseConfigPath string   `yaml:"pulseConfigPath"`
		Modules         []string `yaml:"modules"`
	} `yaml:"audio"`
	Verify struct {
		Modules []string `yaml:"modules"`
	} `yaml:"verify"`
	Web struct {
		Port int `yaml:"port"`
	} `yaml:"web"`
}

// Load builds the effective provisioning manifest: embedded defaults first,
// then the overlay file from workDir when one exists.
func Load(workDir string) (*ProvisionConfig, error) {
	defaults, err := asset.EmbedDefaults.ReadFile("defaults.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded defaults: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(defaults), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load embedded defaults: %w", err)
	}

	overlayPath := filepath.Join(workDir, OverlayFile)
	if _, err := os.Stat(overlayPath); err == nil {
		if err := k.Load(file.Provider(overlayPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", OverlayFile, err)
		}
	}

	cfg := &ProvisionConfig{}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return nil, fmt.Errorf("unmarshal provisioning config: %w", err)
	}
	return cfg, nil
}
