// SPDX-FileCopyrightText: 2025 Smart Shower OS contributors
//
// SPDX-License-Identifier: Apache-2.0

// shower-provision turns a bare device into a running Smart Shower OS
// installation: system packages, isolated Python runtime, directory
// layout, supporting daemons, systemd registration and a final smoke
// test. The pipeline is idempotent; re-running after a failure is safe.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/smartshower/provisioner/internal"
	"github.com/smartshower/provisioner/internal/config"
	"github.com/smartshower/provisioner/internal/hostenv"
	"github.com/smartshower/provisioner/internal/stages"
)

// Set via -ldflags at build time.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	out := os.Stdout

	fmt.Fprintln(out, "🚿 Smart Shower OS - Installation Script")
	fmt.Fprintln(out, "==================================================")

	env, err := hostenv.Detect()
	if err != nil {
		fmt.Fprintf(out, "❌ failed to detect host environment: %v\n", err)
		return 1
	}
	if env.EUID == 0 {
		fmt.Fprintln(out, "⚠️ Warning: Running as root. Consider running as a regular user.")
	}

	cfg, err := config.Load(env.WorkDir)
	if err != nil {
		fmt.Fprintf(out, "❌ failed to load provisioning config: %v\n", err)
		return 1
	}

	logDir := filepath.Join(env.WorkDir, "logs")
	if err := internal.InitLogger(os.Getenv("LOG_LEVEL"), logDir); err != nil {
		fmt.Fprintf(out, "❌ failed to initialize logging: %v\n", err)
		return 1
	}
	internal.Logger().Infof("shower-provision %s starting in %s", version, env.WorkDir)

	runner := stages.CreateShellRunner()
	provisioner := internal.CreateProvisioner([]internal.Stage{
		stages.CreatePreflightStage(runner, cfg.Runtime.Interpreter, cfg.Runtime.MinVersion),
		stages.CreateSystemPackagesStage(runner, cfg.System.Packages),
		stages.CreateVirtualenvStage(env, runner, cfg.Runtime.Interpreter, cfg.Venv.Dir),
		stages.CreatePythonDepsStage(env, runner, cfg.Venv.Dir, cfg.Venv.Manifest),
		stages.CreateDirectoriesStage(env, cfg.Directories),
		stages.CreateConfigSeedStage(env, cfg.ConfigFiles),
		stages.CreateBluetoothStage(runner),
		stages.CreateAudioStage(env, cfg.Audio.PulseConfigPath, cfg.Audio.Modules),
		stages.CreateServiceStage(env, stages.ServiceUnit{
			Name:        cfg.Service.Name,
			Description: cfg.Service.Description,
			User:        cfg.Service.User,
			EntryPoint:  cfg.Service.EntryPoint,
			RestartSec:  cfg.Service.RestartSec,
			VenvDir:     cfg.Venv.Dir,
		}),
		stages.CreatePermissionsStage(env, cfg.Service.EntryPoint, "logs"),
		stages.CreateVerifyStage(env, runner, cfg.Venv.Dir, cfg.Verify.Modules),
	}, out)

	if provErr := provisioner.Run(context.Background()); provErr != nil {
		return 1
	}

	internal.PrintNextSteps(out, cfg.Web.Port, cfg.Service.Name)
	return 0
}
