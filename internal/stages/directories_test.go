// SPDX-FileCopyrightText: 2025 Smart Shower OS contributors
//
// SPDX-License-Identifier: Apache-2.0

package stages_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/smartshower/provisioner/internal/hostenv"
	"github.com/smartshower/provisioner/internal/stages"
)

var appDirectories = []string{"logs", "config", "music", "web/static", "web/templates", "data"}

type DirectoriesTestSuite struct {
	suite.Suite
	env hostenv.Environment
}

func TestDirectoriesSuite(t *testing.T) {
	suite.Run(t, new(DirectoriesTestSuite))
}

func (suite *DirectoriesTestSuite) SetupTest() {
	suite.env = hostenv.Environment{WorkDir: suite.T().TempDir()}
}

// From an empty root, exactly the named directories appear and unrelated
// files survive.
func (suite *DirectoriesTestSuite) TestCreationIsAdditive() {
	unrelated := filepath.Join(suite.env.WorkDir, "keep-me.txt")
	suite.Require().NoError(os.WriteFile(unrelated, []byte("data"), 0o644))

	stage := stages.CreateDirectoriesStage(suite.env, appDirectories)
	err := stage.Run(context.Background())
	suite.Nil(err)

	for _, dir := range appDirectories {
		info, statErr := os.Stat(filepath.Join(suite.env.WorkDir, dir))
		suite.Require().NoError(statErr, dir)
		suite.True(info.IsDir(), dir)
	}
	_, statErr := os.Stat(unrelated)
	suite.NoError(statErr)
}

func (suite *DirectoriesTestSuite) TestRerunSucceedsOnExistingTree() {
	stage := stages.CreateDirectoriesStage(suite.env, appDirectories)
	suite.Nil(stage.Run(context.Background()))
	suite.Nil(stage.Run(context.Background()))
}
