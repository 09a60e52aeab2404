// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"errors"
)

// ErrUnauthorized covers both unknown emails and wrong passwords so the
// response does not reveal which accounts exist.
var ErrUnauthorized = errors.New("incorrect email or password")
