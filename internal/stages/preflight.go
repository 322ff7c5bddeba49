// SPDX-FileCopyrightText: 2025 Smart Shower OS contributors
//
// SPDX-License-Identifier: Apache-2.0

package stages

import (
	"context"
	"fmt"
	"strings"

	goversion "github.com/hashicorp/go-version"

	"github.com/smartshower/provisioner/internal"
)

// PreflightStage validates the host before anything is installed: the
// application interpreter must exist and be at least MinVersion.
type PreflightStage struct {
	Runner      ShellRunner
	Interpreter string
	MinVersion  string
}

func CreatePreflightStage(runner ShellRunner, interpreter, minVersion string) *PreflightStage {
	return &PreflightStage{
		Runner:      runner,
		Interpreter: interpreter,
		MinVersion:  minVersion,
	}
}

func (s *PreflightStage) Name() string {
	return "Checking Python version"
}

func (s *PreflightStage) Required() bool {
	return true
}

func (s *PreflightStage) Run(ctx context.Context) *internal.ProvisionerError {
	logger := internal.Logger()
	if !commandExists(ctx, s.Runner, s.Interpreter) {
		return &internal.ProvisionerError{
			ErrorCode: internal.ProvisionerErrorCodeEnvironment,
			ErrorMsg:  fmt.Sprintf("%s is not available on this host", s.Interpreter),
		}
	}

	out, err := s.Runner.Run(ctx, ShellInput{
		Command: []string{s.Interpreter, "--version"},
	})
	if err != nil {
		return &internal.ProvisionerError{
			ErrorCode: internal.ProvisionerErrorCodeEnvironment,
			ErrorMsg:  fmt.Sprintf("failed to query %s version: %s", s.Interpreter, err.ErrorMsg),
		}
	}

	// "Python 3.11.2\n"; very old interpreters print to stderr instead.
	raw := strings.TrimSpace(out.Stdout.String())
	if raw == "" {
		raw = strings.TrimSpace(out.Stderr.String())
	}
	fields := strings.Fields(raw)
	if len(fields) < 2 {
		return &internal.ProvisionerError{
			ErrorCode: internal.ProvisionerErrorCodeEnvironment,
			ErrorMsg:  fmt.Sprintf("unexpected %s version output: %q", s.Interpreter, raw),
		}
	}

	current, verr := goversion.NewVersion(fields[1])
	if verr != nil {
		return &internal.ProvisionerError{
			ErrorCode: internal.ProvisionerErrorCodeEnvironment,
			ErrorMsg:  fmt.Sprintf("failed to parse %s version %q: %v", s.Interpreter, fields[1], verr),
		}
	}
	minimum, verr := goversion.NewVersion(s.MinVersion)
	if verr != nil {
		return &internal.ProvisionerError{
			ErrorCode: internal.ProvisionerErrorCodeInternal,
			ErrorMsg:  fmt.Sprintf("invalid minimum version %q: %v", s.MinVersion, verr),
		}
	}
	if current.LessThan(minimum) {
		return &internal.ProvisionerError{
			ErrorCode: internal.ProvisionerErrorCodeEnvironment,
			ErrorMsg:  fmt.Sprintf("Python %s or higher is required, found %s", s.MinVersion, current),
		}
	}
	logger.Infof("Python %s is compatible", current)
	return nil
}
