// SPDX-FileCopyrightText: 2025 Smart Shower OS contributors
//
// SPDX-License-Identifier: Apache-2.0

package internal

type ProvisionerErrorCode int

const (
	ProvisionerErrorCodeUnknown ProvisionerErrorCode = iota
	ProvisionerErrorCodeInternal
	ProvisionerErrorCodeEnvironment
	ProvisionerErrorCodeExternalCommand
	ProvisionerErrorCodePermission
	ProvisionerErrorCodeMissingArtifact
)

type ProvisionerError struct {
	ErrorCode ProvisionerErrorCode
	ErrorMsg  string
}

func (e *ProvisionerError) Error() string {
	return e.ErrorMsg
}
