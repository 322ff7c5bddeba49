// SPDX-FileCopyrightText: 2025 Smart Shower OS contributors
//
// SPDX-License-Identifier: Apache-2.0

package stages

import (
	"context"
	"fmt"

	"github.com/smartshower/provisioner/internal"
)

// BluetoothStage enables and starts the Bluetooth daemon through the
// service manager. Both commands are safe to repeat.
type BluetoothStage struct {
	Runner ShellRunner
}

func CreateBluetoothStage(runner ShellRunner) *BluetoothStage {
	return &BluetoothStage{Runner: runner}
}

func (s *BluetoothStage) Name() string {
	return "Setting up Bluetooth"
}

func (s *BluetoothStage) Required() bool {
	return true
}

func (s *BluetoothStage) Run(ctx context.Context) *internal.ProvisionerError {
	for _, action := range []string{"enable", "start"} {
		if _, err := s.Runner.Run(ctx, ShellInput{
			Command: []string{"sudo", "systemctl", action, "bluetooth"},
		}); err != nil {
			return &internal.ProvisionerError{
				ErrorCode: internal.ProvisionerErrorCodeExternalCommand,
				ErrorMsg:  fmt.Sprintf("failed to %s Bluetooth service: %s", action, err.ErrorMsg),
			}
		}
	}
	return nil
}
