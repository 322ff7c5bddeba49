// SPDX-FileCopyrightText: 2025 Smart Shower OS contributors
//
// SPDX-License-Identifier: Apache-2.0

package asset

import "embed"

//go:embed defaults.yaml
var EmbedDefaults embed.FS
