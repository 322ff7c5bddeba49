// SPDX-FileCopyrightText: 2025 Smart Shower OS contributors
//
// SPDX-License-Identifier: Apache-2.0

package internal

import (
	"context"
	"fmt"
	"io"
)

// Provisioner runs the fixed stage sequence in declaration order. A failing
// required stage aborts the run immediately; a failing optional stage is
// reported as a warning and the run continues.
//
// The trail writer carries the operator-facing progress lines. Operators
// diagnose half-provisioned devices from this trail, so its vocabulary
// (🔄 start, ✅ success, ❌ failure, ⚠️ warning) is a stable contract.
type Provisioner struct {
	Stages []Stage

	trail io.Writer
}

func CreateProvisioner(stages []Stage, trail io.Writer) *Provisioner {
	return &Provisioner{
		Stages: stages,
		trail:  trail,
	}
}

func (p *Provisioner) Run(ctx context.Context) *ProvisionerError {
	logger := Logger()
	for _, stage := range p.Stages {
		name := stage.Name()
		logger.Infof("Running stage: %s", name)
		fmt.Fprintf(p.trail, "🔄 %s...\n", name)

		err := stage.Run(ctx)
		if err == nil {
			fmt.Fprintf(p.trail, "✅ %s completed successfully\n", name)
			continue
		}

		if !stage.Required() {
			logger.Warnf("Optional stage %s failed: %s", name, err.ErrorMsg)
			fmt.Fprintf(p.trail, "⚠️ %s: %s\n", name, err.ErrorMsg)
			continue
		}

		logger.Errorf("Stage %s failed: %s", name, err.ErrorMsg)
		fmt.Fprintf(p.trail, "❌ %s failed: %s\n", name, err.ErrorMsg)
		return &ProvisionerError{
			ErrorCode: err.ErrorCode,
			ErrorMsg:  BuildErrorMessage(name, err),
		}
	}
	return nil
}

func BuildErrorMessage(stageName string, err *ProvisionerError) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Stage: %s\nError: %s", stageName, err.ErrorMsg)
}
