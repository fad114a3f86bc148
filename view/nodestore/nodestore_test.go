// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package nodestore_test

import (
	"testing"

	"github.com/absmach/opcuaview/view"
	"github.com/absmach/opcuaview/view/nodestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreGetMiss(t *testing.T) {
	store := nodestore.New()
	_, ok := store.Get(view.NewNumericNodeID(0, 1))
	assert.False(t, ok)
}

func TestStoreAddAndGet(t *testing.T) {
	store := nodestore.New()
	id := view.NewNumericNodeID(2, 42)
	store.AddNode(id, view.NodeClassVariable,
		view.QualifiedName{NamespaceIndex: 2, Name: "Answer"},
		view.LocalizedText{Locale: "en", Text: "Answer"},
		nil,
	)

	node, ok := store.Get(id)
	require.True(t, ok)
	assert.True(t, node.NodeID().Equal(id))
	assert.Equal(t, view.NodeClassVariable, node.NodeClass())
	assert.Equal(t, "Answer", node.BrowseName().Name)
	assert.Equal(t, 1, store.Len())
}

func TestStoreAddNodeReplacesExisting(t *testing.T) {
	store := nodestore.New()
	id := view.NewNumericNodeID(2, 7)
	store.AddNode(id, view.NodeClassObject, view.QualifiedName{Name: "Old"}, view.LocalizedText{}, nil)
	store.AddNode(id, view.NodeClassObject, view.QualifiedName{Name: "New"}, view.LocalizedText{}, nil)

	node, ok := store.Get(id)
	require.True(t, ok)
	assert.Equal(t, "New", node.BrowseName().Name)
	assert.Equal(t, 1, store.Len())
}

func TestSeedPopulatesObjectsFolder(t *testing.T) {
	store := nodestore.New()
	nodestore.Seed(store)

	objects, ok := store.Get(view.ObjectsFolderNodeID)
	require.True(t, ok)

	var organizesTargets int
	for _, rk := range objects.References() {
		if rk.ReferenceTypeID.Equal(view.OrganizesNodeID) && !rk.IsInverse {
			organizesTargets = len(rk.Targets)
		}
	}
	assert.Equal(t, 2, organizesTargets)
}
