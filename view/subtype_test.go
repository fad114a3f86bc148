// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// buildSubtypeHierarchy wires baseType <-HasSubtype- midType <-HasSubtype-
// leafType into store, each forward HasSubtype reference paired with its
// inverse (as a real address space models HasSubtype).
func buildSubtypeHierarchy(store *mockStore) (baseType, midType, leafType NodeID) {
	baseType = NewNumericNodeID(0, 100)
	midType = NewNumericNodeID(0, 101)
	leafType = NewNumericNodeID(0, 102)

	store.add(&mockNode{
		id: baseType, class: NodeClassReferenceType,
		references: []ReferenceKind{
			{ReferenceTypeID: HasSubtypeNodeID, Targets: []ExpandedNodeID{Local(midType)}},
		},
	})
	store.add(&mockNode{
		id: midType, class: NodeClassReferenceType,
		references: []ReferenceKind{
			{ReferenceTypeID: HasSubtypeNodeID, IsInverse: true, Targets: []ExpandedNodeID{Local(baseType)}},
			{ReferenceTypeID: HasSubtypeNodeID, Targets: []ExpandedNodeID{Local(leafType)}},
		},
	})
	store.add(&mockNode{
		id: leafType, class: NodeClassReferenceType,
		references: []ReferenceKind{
			{ReferenceTypeID: HasSubtypeNodeID, IsInverse: true, Targets: []ExpandedNodeID{Local(midType)}},
		},
	})
	return baseType, midType, leafType
}

func TestIsRelevantExactMatch(t *testing.T) {
	store := newMockStore()
	base, mid, _ := buildSubtypeHierarchy(store)

	assert.True(t, isRelevant(store, base, base, false))
	assert.False(t, isRelevant(store, base, mid, false))
}

func TestIsRelevantIncludeSubtypes(t *testing.T) {
	store := newMockStore()
	base, mid, leaf := buildSubtypeHierarchy(store)

	assert.True(t, isRelevant(store, base, base, true))
	assert.True(t, isRelevant(store, base, mid, true))
	assert.True(t, isRelevant(store, base, leaf, true))
	assert.False(t, isRelevant(store, leaf, base, true))
}

func TestIsNodeInTreeCycleSafe(t *testing.T) {
	store := newMockStore()
	a := NewNumericNodeID(0, 200)
	b := NewNumericNodeID(0, 201)

	// A malformed, cyclic HasSubtype graph: a -> b -> a.
	store.add(&mockNode{id: a, class: NodeClassReferenceType, references: []ReferenceKind{
		{ReferenceTypeID: HasSubtypeNodeID, Targets: []ExpandedNodeID{Local(b)}},
	}})
	store.add(&mockNode{id: b, class: NodeClassReferenceType, references: []ReferenceKind{
		{ReferenceTypeID: HasSubtypeNodeID, Targets: []ExpandedNodeID{Local(a)}},
	}})

	done := make(chan bool, 1)
	go func() { done <- isNodeInTree(store, NewNumericNodeID(0, 999), a) }()
	select {
	case found := <-done:
		assert.False(t, found)
	case <-time.After(time.Second):
		t.Fatal("isNodeInTree did not terminate on a cyclic graph")
	}
}
