// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package view

import "github.com/absmach/opcuaview/view/statuscode"

// fillReferenceDescription materializes a client-facing ReferenceDescription
// for a local target reached via reachingRef, populating only the fields
// selected by mask. NodeID is always populated.
func fillReferenceDescription(store NodeStore, target Node, targetID ExpandedNodeID, reachingRef ReferenceKind, mask ResultMask) (*ReferenceDescription, statuscode.Code) {
	desc := &ReferenceDescription{NodeID: targetID}

	if mask&ResultMaskReferenceTypeID != 0 {
		rt := reachingRef.ReferenceTypeID
		desc.ReferenceTypeID = &rt
	}
	if mask&ResultMaskIsForward != 0 {
		forward := !reachingRef.IsInverse
		desc.IsForward = &forward
	}
	if mask&ResultMaskNodeClass != 0 {
		nc := target.NodeClass()
		desc.NodeClass = &nc
	}
	if mask&ResultMaskBrowseName != 0 {
		bn := target.BrowseName()
		desc.BrowseName = &bn
	}
	if mask&ResultMaskDisplayName != 0 {
		dn := target.DisplayName()
		desc.DisplayName = &dn
	}
	if mask&ResultMaskTypeDefinition != 0 && isTypedClass(target.NodeClass()) {
		if typeDef, ok := getTypeOf(store, target); ok {
			td := Local(typeDef.NodeID())
			desc.TypeDefinition = &td
			store.Release(typeDef)
		}
	}

	return desc, statuscode.Good
}

// fillExternalReferenceDescription builds a minimal descriptor for a
// cross-server reference target: it carries only what the reference kind
// already knows (NodeID, referenceTypeId, isForward), since the target node
// itself is not local and cannot be fetched from this server's store.
func fillExternalReferenceDescription(targetID ExpandedNodeID, reachingRef ReferenceKind, mask ResultMask) *ReferenceDescription {
	desc := &ReferenceDescription{NodeID: targetID}
	if mask&ResultMaskReferenceTypeID != 0 {
		rt := reachingRef.ReferenceTypeID
		desc.ReferenceTypeID = &rt
	}
	if mask&ResultMaskIsForward != 0 {
		forward := !reachingRef.IsInverse
		desc.IsForward = &forward
	}
	return desc
}

func isTypedClass(nc NodeClass) bool {
	return nc == NodeClassObject || nc == NodeClassVariable
}
