// SPDX-FileCopyrightText: 2025 Smart Shower OS contributors
//
// SPDX-License-Identifier: Apache-2.0

package stages_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/smartshower/provisioner/internal"
	"github.com/smartshower/provisioner/internal/hostenv"
	"github.com/smartshower/provisioner/internal/stages"
)

type VerifyTestSuite struct {
	suite.Suite
	runnerMock *ShellRunnerMock
	env        hostenv.Environment
	python     string
}

func TestVerifySuite(t *testing.T) {
	suite.Run(t, new(VerifyTestSuite))
}

func (suite *VerifyTestSuite) SetupTest() {
	suite.runnerMock = &ShellRunnerMock{}
	suite.env = hostenv.Environment{WorkDir: "/opt/smart-shower"}
	suite.python = filepath.Join(suite.env.WorkDir, "venv", "bin", "python")
}

func (suite *VerifyTestSuite) expectImport(module string, err *internal.ProvisionerError) {
	suite.runnerMock.On("Run", mock.Anything, stages.ShellInput{
		Command: []string{suite.python, "-c", "import " + module},
		Dir:     suite.env.WorkDir,
	}).Return(shellOutput("", ""), err).Once()
}

func (suite *VerifyTestSuite) TestAllModulesLoad() {
	suite.expectImport("core.water_control", nil)
	suite.expectImport("core.audio_manager", nil)

	stage := stages.CreateVerifyStage(suite.env, suite.runnerMock, "venv",
		[]string{"core.water_control", "core.audio_manager"})
	suite.Nil(stage.Run(context.Background()))
	suite.runnerMock.AssertExpectations(suite.T())
}

// One unloadable module fails the whole stage, naming the module, even
// though everything before it installed cleanly.
func (suite *VerifyTestSuite) TestUnloadableModuleFailsStage() {
	suite.expectImport("core.water_control", nil)
	suite.expectImport("core.safety_monitor", &internal.ProvisionerError{
		ErrorCode: internal.ProvisionerErrorCodeExternalCommand,
		ErrorMsg:  "SyntaxError: invalid syntax",
	})

	stage := stages.CreateVerifyStage(suite.env, suite.runnerMock, "venv",
		[]string{"core.water_control", "core.safety_monitor", "utils.config_manager"})
	err := stage.Run(context.Background())
	suite.NotNil(err)
	suite.Equal(internal.ProvisionerErrorCodeExternalCommand, err.ErrorCode)
	suite.Contains(err.ErrorMsg, "core.safety_monitor")
	suite.Contains(err.ErrorMsg, "SyntaxError")
	suite.runnerMock.AssertNotCalled(suite.T(), "Run", mock.Anything, stages.ShellInput{
		Command: []string{suite.python, "-c", "import utils.config_manager"},
		Dir:     suite.env.WorkDir,
	})
}
