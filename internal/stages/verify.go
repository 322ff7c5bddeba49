// SPDX-FileCopyrightText: 2025 Smart Shower OS contributors
//
// SPDX-License-Identifier: Apache-2.0

package stages

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/smartshower/provisioner/internal"
	"github.com/smartshower/provisioner/internal/hostenv"
)

// VerifyStage smoke-tests the installed application: every core module must
// import cleanly inside the virtual environment before the installation is
// declared successful.
type VerifyStage struct {
	Env     hostenv.Environment
	Runner  ShellRunner
	VenvDir string
	Modules []string
}

func CreateVerifyStage(env hostenv.Environment, runner ShellRunner, venvDir string, modules []string) *VerifyStage {
	return &VerifyStage{
		Env:     env,
		Runner:  runner,
		VenvDir: venvDir,
		Modules: modules,
	}
}

func (s *VerifyStage) Name() string {
	return "Testing imports"
}

func (s *VerifyStage) Required() bool {
	return true
}

func (s *VerifyStage) Run(ctx context.Context) *internal.ProvisionerError {
	logger := internal.Logger()
	python := filepath.Join(s.Env.WorkDir, s.VenvDir, "bin", "python")
	for _, module := range s.Modules {
		if _, err := s.Runner.Run(ctx, ShellInput{
			Command: []string{python, "-c", "import " + module},
			Dir:     s.Env.WorkDir,
		}); err != nil {
			return &internal.ProvisionerError{
				ErrorCode: internal.ProvisionerErrorCodeExternalCommand,
				ErrorMsg:  fmt.Sprintf("module %s failed to load: %s", module, err.ErrorMsg),
			}
		}
		logger.Infof("Module %s imported successfully", module)
	}
	return nil
}
