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

// PythonDepsStage installs the declared dependency manifest into the
// virtual environment. pip is always re-run; it is the idempotency
// authority for already-satisfied requirements.
type PythonDepsStage struct {
	Env      hostenv.Environment
	Runner   ShellRunner
	VenvDir  string
	Manifest string
}

func CreatePythonDepsStage(env hostenv.Environment, runner ShellRunner, venvDir, manifest string) *PythonDepsStage {
	return &PythonDepsStage{
		Env:      env,
		Runner:   runner,
		VenvDir:  venvDir,
		Manifest: manifest,
	}
}

func (s *PythonDepsStage) Name() string {
	return "Installing Python dependencies"
}

func (s *PythonDepsStage) Required() bool {
	return true
}

func (s *PythonDepsStage) Run(ctx context.Context) *internal.ProvisionerError {
	manifestPath := filepath.Join(s.Env.WorkDir, s.Manifest)
	if _, err := os.Stat(manifestPath); err != nil {
		return &internal.ProvisionerError{
			ErrorCode: internal.ProvisionerErrorCodeMissingArtifact,
			ErrorMsg:  fmt.Sprintf("dependency manifest %s not found", manifestPath),
		}
	}

	pip := filepath.Join(s.Env.WorkDir, s.VenvDir, "bin", "pip")
	if _, err := s.Runner.Run(ctx, ShellInput{
		Command: []string{pip, "install", "--upgrade", "pip"},
	}); err != nil {
		return &internal.ProvisionerError{
			ErrorCode: internal.ProvisionerErrorCodeExternalCommand,
			ErrorMsg:  fmt.Sprintf("failed to upgrade pip: %s", err.ErrorMsg),
		}
	}

	if _, err := s.Runner.Run(ctx, ShellInput{
		Command: []string{pip, "install", "-r", manifestPath},
	}); err != nil {
		return &internal.ProvisionerError{
			ErrorCode: internal.ProvisionerErrorCodeExternalCommand,
			ErrorMsg:  fmt.Sprintf("failed to install requirements: %s", err.ErrorMsg),
		}
	}
	return nil
}
