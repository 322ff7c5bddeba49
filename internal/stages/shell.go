// SPDX-FileCopyrightText: 2025 Smart Shower OS contributors
//
// SPDX-License-Identifier: Apache-2.0

package stages

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/smartshower/provisioner/internal"
)

// ShellRunner is the narrow capability stages use to reach the host: run a
// command to completion, capture its output, report its exit status. Stages
// are unit-tested against a mock runner instead of the real host.
//
// There is deliberately no timeout: a hung child process blocks the whole
// pipeline. Provisioning is interactive and single-shot; the operator is
// the watchdog.
type ShellRunner interface {
	Run(ctx context.Context, input ShellInput) (*ShellOutput, *internal.ProvisionerError)
}

type shellRunnerImpl struct {
	cmd *exec.Cmd
}

type ShellInput struct {
	Command []string
	// Dir is the working directory for the child process; empty means
	// inherit the provisioner's own.
	Dir       string
	SkipError bool
}

type ShellOutput struct {
	Stdout strings.Builder
	Stderr strings.Builder
	Error  error
}

func CreateShellRunner() ShellRunner {
	return &shellRunnerImpl{}
}

func (s *shellRunnerImpl) Run(ctx context.Context, input ShellInput) (*ShellOutput, *internal.ProvisionerError) {
	logger := internal.Logger()
	logger.Debugf("Running shell command: %s", input.Command)

	s.cmd = exec.CommandContext(ctx, input.Command[0], input.Command[1:]...)
	s.cmd.Dir = input.Dir

	stderrWriter := strings.Builder{}
	stdoutWriter := strings.Builder{}

	s.cmd.Stdout = &stdoutWriter
	s.cmd.Stderr = &stderrWriter
	err := s.cmd.Run()

	output := &ShellOutput{
		Stdout: stdoutWriter,
		Stderr: stderrWriter,
		Error:  err,
	}

	if err != nil && !input.SkipError {
		msg := fmt.Sprintf("failed to execute command %s: %v", strings.Join(input.Command, " "), err)
		if stderr := strings.TrimSpace(stderrWriter.String()); stderr != "" {
			msg = fmt.Sprintf("%s: %s", msg, stderr)
		}
		return output, &internal.ProvisionerError{
			ErrorCode: internal.ProvisionerErrorCodeExternalCommand,
			ErrorMsg:  msg,
		}
	}
	return output, nil
}
