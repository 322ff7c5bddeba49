// SPDX-FileCopyrightText: 2025 Smart Shower OS contributors
//
// SPDX-License-Identifier: Apache-2.0

//go:build mage

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bitfield/script"
	"github.com/magefile/mage/sh"
)

// Build compiles the provisioner binary into dist/.
func Build() error {
	version := os.Getenv("VERSION")
	if version == "" {
		out, err := script.Exec("git describe --tags --always --dirty").String()
		if err != nil {
			return fmt.Errorf("get version: %w", err)
		}
		version = strings.TrimSpace(out)
	}
	return sh.RunV("go", "build",
		"-ldflags", fmt.Sprintf("-X main.version=%s", version),
		"-o", "dist/shower-provision", "./cmd/shower-provision")
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs golangci-lint over the module.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll("dist")
}
