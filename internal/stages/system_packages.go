// SPDX-FileCopyrightText: 2025 Smart Shower OS contributors
//
// SPDX-License-Identifier: Apache-2.0

package stages

import (
	"context"
	"fmt"

	"github.com/smartshower/provisioner/internal"
)

// SystemPackagesStage brings the host package set up to date. Re-running on
// a machine where packages are already present is a no-op because apt-get
// itself treats an installed package as satisfied.
type SystemPackagesStage struct {
	Runner   ShellRunner
	Packages []string
}

func CreateSystemPackagesStage(runner ShellRunner, packages []string) *SystemPackagesStage {
	return &SystemPackagesStage{
		Runner:   runner,
		Packages: packages,
	}
}

func (s *SystemPackagesStage) Name() string {
	return "Installing system dependencies"
}

func (s *SystemPackagesStage) Required() bool {
	return true
}

func (s *SystemPackagesStage) Run(ctx context.Context) *internal.ProvisionerError {
	logger := internal.Logger()
	if !commandExists(ctx, s.Runner, "sudo") {
		return &internal.ProvisionerError{
			ErrorCode: internal.ProvisionerErrorCodeEnvironment,
			ErrorMsg:  "sudo command is not available",
		}
	}
	if !commandExists(ctx, s.Runner, "apt-get") {
		return &internal.ProvisionerError{
			ErrorCode: internal.ProvisionerErrorCodeEnvironment,
			ErrorMsg:  "apt-get command is not available",
		}
	}

	if _, err := s.Runner.Run(ctx, ShellInput{
		Command: []string{"sudo", "apt-get", "update"},
	}); err != nil {
		return &internal.ProvisionerError{
			ErrorCode: internal.ProvisionerErrorCodeExternalCommand,
			ErrorMsg:  fmt.Sprintf("failed to update package list: %s", err.ErrorMsg),
		}
	}

	for _, pkg := range s.Packages {
		logger.Infof("Installing %s", pkg)
		if _, err := s.Runner.Run(ctx, ShellInput{
			Command: []string{"sudo", "apt-get", "install", "-y", pkg},
		}); err != nil {
			return &internal.ProvisionerError{
				ErrorCode: internal.ProvisionerErrorCodeExternalCommand,
				ErrorMsg:  fmt.Sprintf("failed to install %s: %s", pkg, err.ErrorMsg),
			}
		}
	}
	return nil
}
