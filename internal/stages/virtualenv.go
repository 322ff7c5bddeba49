// SPDX-FileCopyrightText: 2025 Smart Shower OS contributors
//
// SPDX-License-Identifier: Apache-2.0

package stages

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/smartshower/provisioner/internal"
	"github.com/smartshower/provisioner/internal/hostenv"
)

// VirtualenvStage creates the isolated Python environment exactly once.
// An existing venv directory is left untouched.
type VirtualenvStage struct {
	Env         hostenv.Environment
	Runner      ShellRunner
	Interpreter string
	VenvDir     string
}

func CreateVirtualenvStage(env hostenv.Environment, runner ShellRunner, interpreter, venvDir string) *VirtualenvStage {
	return &VirtualenvStage{
		Env:         env,
		Runner:      runner,
		Interpreter: interpreter,
		VenvDir:     venvDir,
	}
}

func (s *VirtualenvStage) Name() string {
	return "Setting up Python virtual environment"
}

func (s *VirtualenvStage) Required() bool {
	return true
}

func (s *VirtualenvStage) Run(ctx context.Context) *internal.ProvisionerError {
	logger := internal.Logger()
	venvPath := filepath.Join(s.Env.WorkDir, s.VenvDir)
	if _, err := os.Stat(venvPath); err == nil {
		logger.Infof("Virtual environment already exists at %s", venvPath)
		return nil
	}

	if _, err := s.Runner.Run(ctx, ShellInput{
		Command: []string{s.Interpreter, "-m", "venv", venvPath},
	}); err != nil {
		return &internal.ProvisionerError{
			ErrorCode: internal.ProvisionerErrorCodeExternalCommand,
			ErrorMsg:  fmt.Sprintf("failed to create virtual environment: %s", err.ErrorMsg),
		}
	}
	return nil
}
