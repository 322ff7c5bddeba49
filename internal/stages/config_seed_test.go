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

type ConfigSeedTestSuite struct {
	suite.Suite
	env hostenv.Environment
}

func TestConfigSeedSuite(t *testing.T) {
	suite.Run(t, new(ConfigSeedTestSuite))
}

func (suite *ConfigSeedTestSuite) SetupTest() {
	suite.env = hostenv.Environment{WorkDir: suite.T().TempDir()}
	suite.Require().NoError(os.Mkdir(filepath.Join(suite.env.WorkDir, "config"), 0o755))
}

// Absent files are reported but never written: content generation belongs
// to the application's own first-run logic.
func (suite *ConfigSeedTestSuite) TestAbsentFilesAreNotCreated() {
	files := []string{"config/settings.yaml", "config/credentials.yaml"}
	stage := stages.CreateConfigSeedStage(suite.env, files)
	err := stage.Run(context.Background())
	suite.Nil(err)

	for _, file := range files {
		_, statErr := os.Stat(filepath.Join(suite.env.WorkDir, file))
		suite.True(os.IsNotExist(statErr), file)
	}
}

func (suite *ConfigSeedTestSuite) TestExistingFilesPass() {
	settings := filepath.Join(suite.env.WorkDir, "config", "settings.yaml")
	suite.Require().NoError(os.WriteFile(settings, []byte("shower:\n  temp: 38\n"), 0o644))

	stage := stages.CreateConfigSeedStage(suite.env, []string{"config/settings.yaml"})
	suite.Nil(stage.Run(context.Background()))
}

// A malformed existing file is a warning, not a failure: presence is the
// only contract this stage enforces.
func (suite *ConfigSeedTestSuite) TestMalformedExistingFileStillPasses() {
	settings := filepath.Join(suite.env.WorkDir, "config", "settings.yaml")
	suite.Require().NoError(os.WriteFile(settings, []byte(":\n\t- not yaml"), 0o644))

	stage := stages.CreateConfigSeedStage(suite.env, []string{"config/settings.yaml"})
	suite.Nil(stage.Run(context.Background()))
}
