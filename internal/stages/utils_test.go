// SPDX-FileCopyrightText: 2025 Smart Shower OS contributors
//
// SPDX-License-Identifier: Apache-2.0

package stages_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/smartshower/provisioner/internal"
	"github.com/smartshower/provisioner/internal/stages"
)

type ShellRunnerMock struct {
	mock.Mock
}

func (m *ShellRunnerMock) Run(ctx context.Context, input stages.ShellInput) (*stages.ShellOutput, *internal.ProvisionerError) {
	args := m.Called(ctx, input)
	var output *stages.ShellOutput
	if v, ok := args.Get(0).(*stages.ShellOutput); ok {
		output = v
	}
	if err, ok := args.Get(1).(*internal.ProvisionerError); ok {
		return output, err
	}
	return output, nil
}

func shellOutput(stdout, stderr string) *stages.ShellOutput {
	output := &stages.ShellOutput{}
	output.Stdout.WriteString(stdout)
	output.Stderr.WriteString(stderr)
	return output
}

func expectCallsForCmdExists(runnerMock *ShellRunnerMock, cmd string, exists bool) {
	var err *internal.ProvisionerError
	if !exists {
		err = &internal.ProvisionerError{
			ErrorCode: internal.ProvisionerErrorCodeExternalCommand,
			ErrorMsg:  "Command not found: " + cmd,
		}
	}
	runnerMock.On("Run", mock.Anything, stages.ShellInput{
		Command:   []string{"which", cmd},
		SkipError: false,
	}).Return(shellOutput("", ""), err).Once()
}
