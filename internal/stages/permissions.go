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

// PermissionsStage applies the required mode bits to installed artifacts.
// An absent artifact is skipped silently; given the stage ordering that
// should not happen, but the skip keeps re-runs harmless.
type PermissionsStage struct {
	Env        hostenv.Environment
	EntryPoint string
	LogsDir    string
}

func CreatePermissionsStage(env hostenv.Environment, entryPoint, logsDir string) *PermissionsStage {
	return &PermissionsStage{
		Env:        env,
		EntryPoint: entryPoint,
		LogsDir:    logsDir,
	}
}

func (s *PermissionsStage) Name() string {
	return "Setting up permissions"
}

func (s *PermissionsStage) Required() bool {
	return true
}

func (s *PermissionsStage) Run(ctx context.Context) *internal.ProvisionerError {
	logger := internal.Logger()
	for _, artifact := range []string{s.EntryPoint, s.LogsDir} {
		path := filepath.Join(s.Env.WorkDir, artifact)
		if _, err := os.Stat(path); err != nil {
			logger.Debugf("Skipping permissions for absent artifact %s", artifact)
			continue
		}
		if err := os.Chmod(path, 0o755); err != nil {
			return &internal.ProvisionerError{
				ErrorCode: internal.ProvisionerErrorCodeInternal,
				ErrorMsg:  fmt.Sprintf("failed to set permissions on %s: %v", artifact, err),
			}
		}
		logger.Infof("Set permissions on %s", artifact)
	}
	return nil
}
