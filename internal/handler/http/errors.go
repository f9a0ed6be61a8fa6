// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Semenov

package http

import "errors"

// ErrEmptyAuthorizationHeader is logged by the auth middleware when the
// incoming request does not include an "Authorization" header at all.
var ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")
