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

// DirectoriesStage lays out the application tree. Creation is strictly
// additive: existing directories and unrelated files are never touched.
type DirectoriesStage struct {
	Env         hostenv.Environment
	Directories []string
}

func CreateDirectoriesStage(env hostenv.Environment, directories []string) *DirectoriesStage {
	return &DirectoriesStage{
		Env:         env,
		Directories: directories,
	}
}

func (s *DirectoriesStage) Name() string {
	return "Creating directories"
}

func (s *DirectoriesStage) Required() bool {
	return true
}

func (s *DirectoriesStage) Run(ctx context.Context) *internal.ProvisionerError {
	logger := internal.Logger()
	for _, dir := range s.Directories {
		path := filepath.Join(s.Env.WorkDir, dir)
		if err := os.MkdirAll(path, 0o755); err != nil {
			return &internal.ProvisionerError{
				ErrorCode: internal.ProvisionerErrorCodeInternal,
				ErrorMsg:  fmt.Sprintf("failed to create directory %s: %v", dir, err),
			}
		}
		logger.Infof("Created directory: %s", dir)
	}
	return nil
}
