// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package http

import "github.com/absmach/opcuaview/pkg/errors"

// Request decoding and validation errors. Service-level failures never reach this
// file: they travel inside the response body as a statuscode.Code instead.
var (
	errMissingSessionID = errors.New("missing session id")
	errEmptyItems       = errors.New("request carries no items")
	errMalformedBody    = errors.New("malformed request body")
)
