// SPDX-FileCopyrightText: 2025 Smart Shower OS contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package hostenv captures the read-only facts about the target machine
// that provisioning stages need. Stages receive an Environment value at
// construction instead of reading ambient process state, so tests can
// point them at throwaway directories.
package hostenv

import "os"

type Environment struct {
	// WorkDir is the installation root; every relative artifact path
	// (venv, logs, config, ...) is resolved against it.
	WorkDir string
	HomeDir string
	EUID    int
	// SystemdDir is where the service descriptor is written. Defaults to
	// the system-owned location; writing there needs elevated privilege.
	SystemdDir string
}

const DefaultSystemdDir = "/etc/systemd/system"

func Detect() (Environment, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return Environment{}, err
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Environment{}, err
	}
	return Environment{
		WorkDir:    workDir,
		HomeDir:    homeDir,
		EUID:       os.Geteuid(),
		SystemdDir: DefaultSystemdDir,
	}, nil
}
