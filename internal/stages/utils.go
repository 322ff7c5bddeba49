// SPDX-FileCopyrightText: 2025 Smart Shower OS contributors
//
// SPDX-License-Identifier: Apache-2.0

package stages

import (
	"context"
)

func commandExists(ctx context.Context, runner ShellRunner, command string) bool {
	_, err := runner.Run(ctx, ShellInput{
		Command:   []string{"which", command},
		SkipError: false,
	})
	return err == nil
}
