// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

// TeamStatusInterface is the part of the team service the status endpoint reports on
type TeamStatusInterface interface {
	TotalMembers() int
	IsLoadingMembers() bool
	IsLoadingPermissions() bool
	Err() error
}
