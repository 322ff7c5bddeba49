// SPDX-FileCopyrightText: 2025 Smart Shower OS contributors
//
// SPDX-License-Identifier: Apache-2.0

package stages

import (
	"context"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/smartshower/provisioner/internal"
	"github.com/smartshower/provisioner/internal/hostenv"
)

// ConfigSeedStage checks that the expected configuration files are in
// place. It never writes their contents: the application generates its own
// defaults on first run, and this hand-off is deliberate. An existing file
// that is not valid YAML earns a warning but does not fail the stage.
type ConfigSeedStage struct {
	Env   hostenv.Environment
	Files []string
}

func CreateConfigSeedStage(env hostenv.Environment, files []string) *ConfigSeedStage {
	return &ConfigSeedStage{
		Env:   env,
		Files: files,
	}
}

func (s *ConfigSeedStage) Name() string {
	return "Setting up configuration"
}

func (s *ConfigSeedStage) Required() bool {
	return true
}

func (s *ConfigSeedStage) Run(ctx context.Context) *internal.ProvisionerError {
	logger := internal.Logger()
	for _, file := range s.Files {
		path := filepath.Join(s.Env.WorkDir, file)
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Infof("%s is absent; the application will create it on first run", file)
			continue
		}
		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			logger.Warnf("%s exists but is not valid YAML: %v", file, err)
		}
	}
	return nil
}
