// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"github.com/absmach/opcuaview/view"
)

// browseReq is the wire shape of a single Browse service invocation. It
// mirrors view.BrowseRequest field for field; the NodeID/BrowseDirection
// domain types already marshal to readable JSON, so no separate wire
// encoding is introduced here.
type browseReq struct {
	sessionID                     string
	View                          view.ViewDescription     `json:"view"`
	RequestedMaxReferencesPerNode uint32                   `json:"requested_max_references_per_node"`
	Items                         []view.BrowseDescription `json:"items"`
}

func (r browseReq) validate() error {
	if r.sessionID == "" {
		return errMissingSessionID
	}
	if len(r.Items) == 0 {
		return errEmptyItems
	}
	return nil
}

type browseNextReq struct {
	sessionID                 string
	ReleaseContinuationPoints bool     `json:"release_continuation_points"`
	ContinuationPoints        [][]byte `json:"continuation_points"`
}

func (r browseNextReq) validate() error {
	if r.sessionID == "" {
		return errMissingSessionID
	}
	if len(r.ContinuationPoints) == 0 {
		return errEmptyItems
	}
	return nil
}

type translateBrowsePathsReq struct {
	Paths []view.BrowsePath `json:"paths"`
}

func (r translateBrowsePathsReq) validate() error {
	if len(r.Paths) == 0 {
		return errEmptyItems
	}
	return nil
}

type registerNodesReq struct {
	NodeIDs []view.NodeID `json:"node_ids"`
}

func (r registerNodesReq) validate() error {
	if len(r.NodeIDs) == 0 {
		return errEmptyItems
	}
	return nil
}

type unregisterNodesReq struct {
	NodeIDs []view.NodeID `json:"node_ids"`
}

func (r unregisterNodesReq) validate() error {
	if len(r.NodeIDs) == 0 {
		return errEmptyItems
	}
	return nil
}
