// SPDX-FileCopyrightText: 2025 Smart Shower OS contributors
//
// SPDX-License-Identifier: Apache-2.0

package stages

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/smartshower/provisioner/internal"
	"github.com/smartshower/provisioner/internal/hostenv"
)

const serviceUnitTemplate = `[Unit]
Description={{ .Description }}
After=network.target bluetooth.service

[Service]
Type=simple
User={{ .User }}
WorkingDirectory={{ .WorkDir }}
Environment=PATH={{ .WorkDir }}/{{ .VenvDir }}/bin
ExecStart={{ .WorkDir }}/{{ .VenvDir }}/bin/python {{ .WorkDir }}/{{ .EntryPoint }}
Restart=always
RestartSec={{ .RestartSec }}

[Install]
WantedBy=multi-user.target
`

type ServiceUnit struct {
	Name        string
	Description string
	User        string
	EntryPoint  string
	RestartSec  int
	VenvDir     string
}

// ServiceStage writes the systemd unit for unattended start. Writing into
// the system-owned unit directory needs elevated privilege, so this is the
// one optional stage: the descriptor is a convenience, not a correctness
// requirement of installation.
type ServiceStage struct {
	Env  hostenv.Environment
	Unit ServiceUnit
}

func CreateServiceStage(env hostenv.Environment, unit ServiceUnit) *ServiceStage {
	return &ServiceStage{
		Env:  env,
		Unit: unit,
	}
}

func (s *ServiceStage) Name() string {
	return "Creating systemd service"
}

func (s *ServiceStage) Required() bool {
	return false
}

func (s *ServiceStage) Run(ctx context.Context) *internal.ProvisionerError {
	logger := internal.Logger()
	buf := strings.Builder{}
	err := template.Must(template.New("unit").Parse(serviceUnitTemplate)).Execute(&buf, struct {
		ServiceUnit
		WorkDir string
	}{
		ServiceUnit: s.Unit,
		WorkDir:     s.Env.WorkDir,
	})
	if err != nil {
		return &internal.ProvisionerError{
			ErrorCode: internal.ProvisionerErrorCodeInternal,
			ErrorMsg:  fmt.Sprintf("failed to render service unit: %v", err),
		}
	}

	target := filepath.Join(s.Env.SystemdDir, s.Unit.Name+".service")
	if err := os.WriteFile(target, []byte(buf.String()), 0o644); err != nil {
		if os.IsPermission(err) {
			return &internal.ProvisionerError{
				ErrorCode: internal.ProvisionerErrorCodePermission,
				ErrorMsg:  "could not create systemd service file (requires sudo)",
			}
		}
		return &internal.ProvisionerError{
			ErrorCode: internal.ProvisionerErrorCodeInternal,
			ErrorMsg:  fmt.Sprintf("failed to write service unit %s: %v", target, err),
		}
	}
	logger.Infof("Systemd service file created at %s", target)
	return nil
}
