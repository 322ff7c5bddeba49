// SPDX-FileCopyrightText: 2025 Smart Shower OS contributors
//
// SPDX-License-Identifier: Apache-2.0

package internal

import "context"

// Stage is a single named unit of the provisioning pipeline. Stages are
// assembled once at startup into a fixed ordered sequence; they never
// communicate except through the filesystem state they leave behind.
type Stage interface {
	Name() string
	// Required reports whether a failure of this stage aborts the pipeline.
	// A non-required stage that fails is logged as a warning and skipped.
	Required() bool
	Run(ctx context.Context) *ProvisionerError
}
