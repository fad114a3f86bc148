// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package view

import (
	"encoding/base64"
	"fmt"
)

// IdentifierType is the discriminant of a NodeID's Identifier field, per
// OPC UA Part 3 §8.2.1.
type IdentifierType uint8

const (
	IdentifierNumeric IdentifierType = iota
	IdentifierString
	IdentifierGUID
	IdentifierOpaque
)

// NodeID is a namespace-qualified node identifier. The zero value (ns=0,
// numeric 0) is the well-known "null" NodeId used as a sentinel for
// "no reference type filter" throughout this package.
type NodeID struct {
	Namespace  uint16
	Type       IdentifierType
	Numeric    uint32
	StringID   string
	OpaqueID   []byte
}

// NewNumericNodeID builds a numeric NodeID in the given namespace.
func NewNumericNodeID(ns uint16, id uint32) NodeID {
	return NodeID{Namespace: ns, Type: IdentifierNumeric, Numeric: id}
}

// NewStringNodeID builds a string-identifier NodeID in the given namespace.
func NewStringNodeID(ns uint16, id string) NodeID {
	return NodeID{Namespace: ns, Type: IdentifierString, StringID: id}
}

// IsNull reports whether n is the well-known null NodeId (ns=0, i=0).
func (n NodeID) IsNull() bool {
	return n.Namespace == 0 && n.Type == IdentifierNumeric && n.Numeric == 0
}

// Equal reports whether n and o identify the same node.
func (n NodeID) Equal(o NodeID) bool {
	return n.Key() == o.Key()
}

// Key returns a value usable as a map key or for equality comparisons; the
// opaque identifier form makes NodeID itself non-comparable via ==.
func (n NodeID) Key() string {
	switch n.Type {
	case IdentifierNumeric:
		return fmt.Sprintf("ns=%d;i=%d", n.Namespace, n.Numeric)
	case IdentifierString:
		return fmt.Sprintf("ns=%d;s=%s", n.Namespace, n.StringID)
	case IdentifierGUID:
		return fmt.Sprintf("ns=%d;g=%s", n.Namespace, n.StringID)
	case IdentifierOpaque:
		return fmt.Sprintf("ns=%d;b=%s", n.Namespace, base64.StdEncoding.EncodeToString(n.OpaqueID))
	default:
		return fmt.Sprintf("ns=%d;?", n.Namespace)
	}
}

func (n NodeID) String() string {
	return n.Key()
}

// ExpandedNodeID is a NodeID plus the index of the server it lives on; a
// ServerIndex of zero means the node is local to this server.
type ExpandedNodeID struct {
	NodeID      NodeID
	ServerIndex uint32
}

// Local wraps a local NodeID as an ExpandedNodeID.
func Local(id NodeID) ExpandedNodeID {
	return ExpandedNodeID{NodeID: id}
}

// QualifiedName is a namespace-qualified browse name.
type QualifiedName struct {
	NamespaceIndex uint16
	Name           string
}

// Equal reports whether q and o are the same qualified name.
func (q QualifiedName) Equal(o QualifiedName) bool {
	return q.NamespaceIndex == o.NamespaceIndex && q.Name == o.Name
}

// LocalizedText is a locale-tagged display string.
type LocalizedText struct {
	Locale string
	Text   string
}

// NodeClass identifies the kind of a node. Values match the OPC UA Part 3
// NodeClass bitmask encoding so a NodeClass can double as a one-bit
// nodeClassMask entry.
type NodeClass uint32

const (
	NodeClassUnspecified   NodeClass = 0
	NodeClassObject        NodeClass = 1
	NodeClassVariable      NodeClass = 2
	NodeClassMethod        NodeClass = 4
	NodeClassObjectType    NodeClass = 8
	NodeClassVariableType  NodeClass = 16
	NodeClassReferenceType NodeClass = 32
	NodeClassDataType      NodeClass = 64
	NodeClassView          NodeClass = 128
)

// BrowseDirection selects which reference kinds a browse traverses. Values
// match the OPC UA Part 4 wire encoding.
type BrowseDirection int32

const (
	BrowseDirectionForward BrowseDirection = 0
	BrowseDirectionInverse BrowseDirection = 1
	BrowseDirectionBoth    BrowseDirection = 2
	BrowseDirectionInvalid BrowseDirection = 3
)

func (d BrowseDirection) valid() bool {
	return d == BrowseDirectionForward || d == BrowseDirectionInverse || d == BrowseDirectionBoth
}

// ResultMask selects which ReferenceDescription fields a browse populates.
// Bit positions match the OPC UA Part 4 BrowseResultMask encoding.
type ResultMask uint32

const (
	ResultMaskReferenceTypeID ResultMask = 1 << 0
	ResultMaskIsForward       ResultMask = 1 << 1
	ResultMaskNodeClass       ResultMask = 1 << 2
	ResultMaskBrowseName      ResultMask = 1 << 3
	ResultMaskDisplayName     ResultMask = 1 << 4
	ResultMaskTypeDefinition  ResultMask = 1 << 5

	ResultMaskAll = ResultMaskReferenceTypeID | ResultMaskIsForward | ResultMaskNodeClass |
		ResultMaskBrowseName | ResultMaskDisplayName | ResultMaskTypeDefinition
)

// RemainingPathIndexMax is the sentinel BrowsePathTarget.RemainingPathIndex
// value meaning "fully resolved on this server".
const RemainingPathIndexMax uint32 = 1<<32 - 1
