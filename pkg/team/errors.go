// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import "errors"

var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrOwnerNotAssignable = errors.New("owner role cannot be assigned")
	ErrInvalidMember      = errors.New("invalid member record")
	ErrUnsupportedEvent   = errors.New("unsupported member event")
	ErrServiceClosed      = errors.New("team service closed")
)
