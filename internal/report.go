// SPDX-FileCopyrightText: 2025 Smart Shower OS contributors
//
// SPDX-License-Identifier: Apache-2.0

package internal

import (
	"fmt"
	"io"
)

// PrintNextSteps writes the post-install operator checklist. Only printed
// after a fully successful run; a failed run gets no summary.
func PrintNextSteps(w io.Writer, webPort int, serviceName string) {
	fmt.Fprintf(w, "\n🎉 Installation completed successfully!\n")
	fmt.Fprintf(w, "\n📋 Next steps:\n")
	fmt.Fprintf(w, "1. Configure your API credentials in config/credentials.yaml\n")
	fmt.Fprintf(w, "2. Edit settings in config/settings.yaml if needed\n")
	fmt.Fprintf(w, "3. Test the system: venv/bin/python main.py\n")
	fmt.Fprintf(w, "4. Access the web interface: http://localhost:%d\n", webPort)
	fmt.Fprintf(w, "5. Use the mobile interface: http://localhost:%d/mobile\n", webPort)
	fmt.Fprintf(w, "\n🔧 Optional setup:\n")
	fmt.Fprintf(w, "- Enable systemd service: sudo systemctl enable %s\n", serviceName)
	fmt.Fprintf(w, "- Start systemd service: sudo systemctl start %s\n", serviceName)
	fmt.Fprintf(w, "- View logs: sudo journalctl -u %s -f\n", serviceName)
}
