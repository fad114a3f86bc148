// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package view

// Node is a borrowed, read-only view of a node in the address space, as
// yielded by NodeStore.Get. Implementations may back it with a clone or
// with a reference-counted handle into shared storage; the core only
// requires that it stays stable between a Get and its matching Release.
type Node interface {
	NodeID() NodeID
	NodeClass() NodeClass
	BrowseName() QualifiedName
	DisplayName() LocalizedText
	// References returns the node's outgoing reference kinds, grouped by
	// (referenceTypeId, isInverse), in the store's canonical order.
	References() []ReferenceKind
}

// ReferenceKind groups every outgoing reference from a node that shares the
// same (referenceTypeId, isInverse) key.
type ReferenceKind struct {
	ReferenceTypeID NodeID
	IsInverse       bool
	Targets         []ExpandedNodeID
}

// NodeStore is the external collaborator that owns the address space. The
// view services core never stores nodes; it only borrows them for the
// duration between a Get and its matching Release.
type NodeStore interface {
	// Get returns the node for id, or ok=false if no such node exists.
	Get(id NodeID) (node Node, ok bool)
	// Release returns a handle obtained from Get. It must be called on
	// every exit path, including early returns on error.
	Release(node Node)
}

// getTypeOf resolves the HasTypeDefinition forward reference for a node,
// used to populate ReferenceDescription.TypeDefinition for Object and
// Variable targets.
func getTypeOf(store NodeStore, node Node) (Node, bool) {
	for _, rk := range node.References() {
		if rk.IsInverse || !rk.ReferenceTypeID.Equal(HasTypeDefinitionNodeID) {
			continue
		}
		for _, tgt := range rk.Targets {
			if tgt.ServerIndex != 0 {
				continue
			}
			if n, ok := store.Get(tgt.NodeID); ok {
				return n, true
			}
		}
	}
	return nil, false
}
