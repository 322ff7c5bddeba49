// SPDX-FileCopyrightText: 2025 Smart Shower OS contributors
//
// SPDX-License-Identifier: Apache-2.0

package stages_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/smartshower/provisioner/internal/hostenv"
	"github.com/smartshower/provisioner/internal/stages"
)

type VirtualenvTestSuite struct {
	suite.Suite
	runnerMock *ShellRunnerMock
	env        hostenv.Environment
}

func TestVirtualenvSuite(t *testing.T) {
	suite.Run(t, new(VirtualenvTestSuite))
}

func (suite *VirtualenvTestSuite) SetupTest() {
	suite.runnerMock = &ShellRunnerMock{}
	suite.env = hostenv.Environment{WorkDir: suite.T().TempDir()}
}

func (suite *VirtualenvTestSuite) TestCreatesEnvironmentWhenAbsent() {
	venvPath := filepath.Join(suite.env.WorkDir, "venv")
	suite.runnerMock.On("Run", mock.Anything, stages.ShellInput{
		Command: []string{"python3", "-m", "venv", venvPath},
	}).Return(shellOutput("", ""), nil).Once()

	stage := stages.CreateVirtualenvStage(suite.env, suite.runnerMock, "python3", "venv")
	err := stage.Run(context.Background())
	suite.Nil(err)
	suite.runnerMock.AssertExpectations(suite.T())
}

// An existing venv directory short-circuits the stage: nothing is executed.
func (suite *VirtualenvTestSuite) TestExistingEnvironmentIsNoOp() {
	suite.Require().NoError(os.Mkdir(filepath.Join(suite.env.WorkDir, "venv"), 0o755))

	stage := stages.CreateVirtualenvStage(suite.env, suite.runnerMock, "python3", "venv")
	err := stage.Run(context.Background())
	suite.Nil(err)
	suite.runnerMock.AssertNotCalled(suite.T(), "Run", mock.Anything, mock.Anything)
}
