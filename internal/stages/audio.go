// SPDX-FileCopyrightText: 2025 Smart Shower OS contributors
//
// SPDX-License-Identifier: Apache-2.0

package stages

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitfield/script"

	"github.com/smartshower/provisioner/internal"
	"github.com/smartshower/provisioner/internal/hostenv"
)

// AudioStage writes the PulseAudio module-load directives that route
// playback to Bluetooth devices into the user's audio-server config.
type AudioStage struct {
	Env        hostenv.Environment
	ConfigPath string
	Modules    []string
}

func CreateAudioStage(env hostenv.Environment, configPath string, modules []string) *AudioStage {
	return &AudioStage{
		Env:        env,
		ConfigPath: configPath,
		Modules:    modules,
	}
}

func (s *AudioStage) Name() string {
	return "Setting up audio"
}

func (s *AudioStage) Required() bool {
	return true
}

func (s *AudioStage) Run(ctx context.Context) *internal.ProvisionerError {
	logger := internal.Logger()
	path := filepath.Join(s.Env.HomeDir, s.ConfigPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &internal.ProvisionerError{
			ErrorCode: internal.ProvisionerErrorCodeInternal,
			ErrorMsg:  fmt.Sprintf("failed to create audio config directory: %v", err),
		}
	}

	content := strings.Builder{}
	content.WriteString("\n")
	for _, module := range s.Modules {
		content.WriteString("load-module " + module + "\n")
	}
	if _, err := script.Echo(content.String()).WriteFile(path); err != nil {
		return &internal.ProvisionerError{
			ErrorCode: internal.ProvisionerErrorCodeInternal,
			ErrorMsg:  fmt.Sprintf("failed to write audio config %s: %v", path, err),
		}
	}
	logger.Infof("Audio configuration written to %s", path)
	return nil
}
