// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package statuscode narrows the OPC UA status code table down to the
// handful of codes the view services core can return, built on top of
// gopcua's generated table instead of redeclaring it.
package statuscode

import (
	"fmt"

	"github.com/gopcua/opcua/ua"
)

// Code is an OPC UA status code as defined by Part 4/6 of the specification.
type Code = ua.StatusCode

// The subset of the status code table used by Browse, BrowseNext and
// TranslateBrowsePathsToNodeIds.
const (
	Good Code = ua.StatusOK

	// Input validation.
	BadNothingToDo            Code = ua.StatusBadNothingToDo
	BadTooManyOperations      Code = ua.StatusBadTooManyOperations
	BadViewIDUnknown          Code = ua.StatusBadViewIDUnknown
	BadBrowseDirectionInvalid Code = ua.StatusBadBrowseDirectionInvalid
	BadBrowseNameInvalid      Code = ua.StatusBadBrowseNameInvalid
	BadReferenceTypeIDInvalid Code = ua.StatusBadReferenceTypeIDInvalid
	BadNodeIDUnknown          Code = ua.StatusBadNodeIDUnknown

	// Resource exhaustion.
	BadOutOfMemory          Code = ua.StatusBadOutOfMemory
	BadNoContinuationPoints Code = ua.StatusBadNoContinuationPoints

	// State lookup.
	BadContinuationPointInvalid Code = ua.StatusBadContinuationPointInvalid
	BadNoMatch                  Code = ua.StatusBadNoMatch
)

// IsGood reports whether c is exactly Good; other codes of Good severity
// report false.
func IsGood(c Code) bool {
	return c == Good
}

// Text renders c the way logs and JSON wire payloads want it: a stable hex
// form, since this package does not depend on gopcua's own status-code
// string table (see DESIGN.md).
func Text(c Code) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}
