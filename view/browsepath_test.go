// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package view

import (
	"testing"

	"github.com/absmach/opcuaview/view/statuscode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qn(name string) *QualifiedName {
	return &QualifiedName{Name: name}
}

func buildBrowsePathFixture(store *mockStore) (root NodeID) {
	root = NewNumericNodeID(0, 85)
	folder := NewNumericNodeID(2, 10)
	leaf := NewNumericNodeID(2, 11)

	store.add(&mockNode{id: OrganizesNodeID, class: NodeClassReferenceType})
	store.add(&mockNode{id: HasComponentNodeID, class: NodeClassReferenceType})

	store.add(&mockNode{
		id: root, browseName: QualifiedName{Name: "Objects"},
		references: []ReferenceKind{
			{ReferenceTypeID: OrganizesNodeID, Targets: []ExpandedNodeID{Local(folder)}},
		},
	})
	store.add(&mockNode{
		id: folder, browseName: QualifiedName{Name: "Folder"},
		references: []ReferenceKind{
			{ReferenceTypeID: OrganizesNodeID, IsInverse: true, Targets: []ExpandedNodeID{Local(root)}},
			{ReferenceTypeID: HasComponentNodeID, Targets: []ExpandedNodeID{Local(leaf)}},
		},
	})
	store.add(&mockNode{
		id: leaf, browseName: QualifiedName{Name: "Leaf"},
		references: []ReferenceKind{
			{ReferenceTypeID: HasComponentNodeID, IsInverse: true, Targets: []ExpandedNodeID{Local(folder)}},
		},
	})
	return root
}

func TestResolveBrowsePathHappyPath(t *testing.T) {
	store := newMockStore()
	root := buildBrowsePathFixture(store)

	path := BrowsePath{
		StartingNode: root,
		Elements: []RelativePathElement{
			{ReferenceTypeID: OrganizesNodeID, TargetName: qn("Folder")},
			{ReferenceTypeID: HasComponentNodeID, TargetName: qn("Leaf")},
		},
	}

	result := resolveBrowsePath(store, path)
	require.Equal(t, statuscode.Good, result.StatusCode)
	require.Len(t, result.Targets, 1)
	assert.Equal(t, RemainingPathIndexMax, result.Targets[0].RemainingPathIndex)
	assert.Equal(t, "ns=2;i=11", result.Targets[0].TargetID.NodeID.Key())
}

func TestResolveBrowsePathNoMatch(t *testing.T) {
	store := newMockStore()
	root := buildBrowsePathFixture(store)

	path := BrowsePath{
		StartingNode: root,
		Elements: []RelativePathElement{
			{ReferenceTypeID: OrganizesNodeID, TargetName: qn("DoesNotExist")},
		},
	}

	result := resolveBrowsePath(store, path)
	assert.Equal(t, statuscode.BadNoMatch, result.StatusCode)
	assert.Empty(t, result.Targets)
}

func TestResolveBrowsePathEmptyElementsIsBadNothingToDo(t *testing.T) {
	store := newMockStore()
	result := resolveBrowsePath(store, BrowsePath{StartingNode: NewNumericNodeID(0, 85)})
	assert.Equal(t, statuscode.BadNothingToDo, result.StatusCode)
}

func TestResolveBrowsePathNilTargetNameIsInvalid(t *testing.T) {
	store := newMockStore()
	path := BrowsePath{
		StartingNode: NewNumericNodeID(0, 85),
		Elements:     []RelativePathElement{{ReferenceTypeID: OrganizesNodeID}},
	}
	result := resolveBrowsePath(store, path)
	assert.Equal(t, statuscode.BadBrowseNameInvalid, result.StatusCode)
}

func TestResolveBrowsePathCrossServerHopSetsRemainingPathIndex(t *testing.T) {
	store := newMockStore()
	root := NewNumericNodeID(0, 85)
	folder := NewNumericNodeID(2, 20)
	remote := ExpandedNodeID{NodeID: NewNumericNodeID(5, 42), ServerIndex: 2}

	store.add(&mockNode{id: OrganizesNodeID, class: NodeClassReferenceType})
	store.add(&mockNode{id: HasComponentNodeID, class: NodeClassReferenceType})
	store.add(&mockNode{
		id: root, browseName: QualifiedName{Name: "Objects"},
		references: []ReferenceKind{
			{ReferenceTypeID: OrganizesNodeID, Targets: []ExpandedNodeID{Local(folder)}},
		},
	})
	store.add(&mockNode{
		id: folder, browseName: QualifiedName{Name: "Folder"},
		references: []ReferenceKind{
			{ReferenceTypeID: OrganizesNodeID, IsInverse: true, Targets: []ExpandedNodeID{Local(root)}},
			{ReferenceTypeID: HasComponentNodeID, Targets: []ExpandedNodeID{remote}},
		},
	})

	path := BrowsePath{
		StartingNode: root,
		Elements: []RelativePathElement{
			{ReferenceTypeID: OrganizesNodeID, TargetName: qn("Folder")},
			{ReferenceTypeID: HasComponentNodeID, TargetName: qn("RemoteLeaf")},
		},
	}

	result := resolveBrowsePath(store, path)
	require.Equal(t, statuscode.Good, result.StatusCode)
	require.Len(t, result.Targets, 1)
	assert.Equal(t, uint32(1), result.Targets[0].RemainingPathIndex)
	assert.Equal(t, remote, result.Targets[0].TargetID)
}

func TestResolveBrowsePathUnknownStartingNode(t *testing.T) {
	store := newMockStore()
	store.add(&mockNode{id: OrganizesNodeID, class: NodeClassReferenceType})
	path := BrowsePath{
		StartingNode: NewNumericNodeID(9, 999),
		Elements:     []RelativePathElement{{ReferenceTypeID: OrganizesNodeID, TargetName: qn("Folder")}},
	}
	result := resolveBrowsePath(store, path)
	assert.Equal(t, statuscode.BadNodeIDUnknown, result.StatusCode)
}
