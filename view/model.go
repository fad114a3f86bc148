// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package view

import "github.com/absmach/opcuaview/view/statuscode"

// BrowseDescription is a single item of a Browse request.
type BrowseDescription struct {
	NodeID          NodeID
	Direction       BrowseDirection
	ReferenceTypeID NodeID // IsNull() means "all reference types"
	IncludeSubtypes bool
	NodeClassMask   NodeClass // 0 means "all classes"
	ResultMask      ResultMask
}

// clone deep-copies a BrowseDescription for storage in a ContinuationPoint;
// the opaque identifier bytes of both NodeIDs are copied so the stored entry
// shares no memory with the caller's description.
func (d BrowseDescription) clone() BrowseDescription {
	c := d
	c.NodeID.OpaqueID = append([]byte(nil), d.NodeID.OpaqueID...)
	c.ReferenceTypeID.OpaqueID = append([]byte(nil), d.ReferenceTypeID.OpaqueID...)
	return c
}

// ReferenceDescription is a single entry of a BrowseResult. Every field but
// NodeID is a pointer so a nil value distinguishes "not requested via
// resultMask" from the field's zero value.
type ReferenceDescription struct {
	NodeID          ExpandedNodeID
	ReferenceTypeID *NodeID
	IsForward       *bool
	NodeClass       *NodeClass
	BrowseName      *QualifiedName
	DisplayName     *LocalizedText
	TypeDefinition  *ExpandedNodeID
}

// BrowseResult is the per-item result of Browse/BrowseNext. References is
// always a non-nil slice (possibly empty) so callers can tell "zero
// references" apart from a request-level failure that never produced a
// result at all.
type BrowseResult struct {
	StatusCode        statuscode.Code
	References        []*ReferenceDescription
	ContinuationPoint []byte // nil means no continuation point was issued
}

func emptyBrowseResult(status statuscode.Code) *BrowseResult {
	return &BrowseResult{StatusCode: status, References: []*ReferenceDescription{}}
}

// BrowseCursor names the next unexamined (kind, target) pair within a
// node's reference list.
type BrowseCursor struct {
	ReferenceKindIndex int
	TargetIndex        int
}

// RelativePathElement is a single qualified-name hop of a BrowsePath.
type RelativePathElement struct {
	ReferenceTypeID NodeID // IsNull() means "any reference type"
	IsInverse       bool
	IncludeSubtypes bool
	TargetName      *QualifiedName // nil is invalid: BadBrowseNameInvalid
}

// BrowsePath is a starting node plus a non-empty sequence of relative path
// elements.
type BrowsePath struct {
	StartingNode NodeID
	Elements     []RelativePathElement
}

// BrowsePathTarget is a single resolved (or partially resolved) target of a
// BrowsePath.
type BrowsePathTarget struct {
	TargetID           ExpandedNodeID
	RemainingPathIndex uint32 // RemainingPathIndexMax means fully resolved locally
}

// BrowsePathResult is the per-item result of TranslateBrowsePathsToNodeIds.
type BrowsePathResult struct {
	StatusCode statuscode.Code
	Targets    []BrowsePathTarget
}

func emptyBrowsePathResult(status statuscode.Code) BrowsePathResult {
	return BrowsePathResult{StatusCode: status, Targets: []BrowsePathTarget{}}
}
