// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package view

// Well-known namespace-0 reference type identifiers from the OPC UA Part 6
// NodeIds table, used by the subtype oracle and the default reference-type
// lookups in the browse iterator and browse-path resolver.
var (
	ReferencesNodeID             = NewNumericNodeID(0, 31)
	NonHierarchicalReferencesID  = NewNumericNodeID(0, 32)
	HierarchicalReferencesNodeID = NewNumericNodeID(0, 33)
	HasChildNodeID               = NewNumericNodeID(0, 34)
	OrganizesNodeID              = NewNumericNodeID(0, 35)
	HasTypeDefinitionNodeID      = NewNumericNodeID(0, 40)
	HasSubtypeNodeID             = NewNumericNodeID(0, 45)
	HasComponentNodeID           = NewNumericNodeID(0, 47)
	HasPropertyNodeID            = NewNumericNodeID(0, 46)
)

// ObjectsFolderNodeID is the well-known root "Objects" folder (i=85), the
// conventional starting point for a Browse when a client has no other
// starting NodeId in hand.
var ObjectsFolderNodeID = NewNumericNodeID(0, 85)
