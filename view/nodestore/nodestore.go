// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package nodestore is a mutex-guarded, in-memory view.NodeStore, sufficient
// to drive Browse, BrowseNext and TranslateBrowsePathsToNodeIds end to end in
// tests and in the demo HTTP server. It is grounded on the mutex-guarded
// in-memory map pattern magistrala's clients/mocks package uses to fake a
// repository without a database.
package nodestore

import (
	"sync"

	"github.com/absmach/opcuaview/view"
)

var _ view.NodeStore = (*Store)(nil)

// node is the concrete Node the store hands out, by pointer. It
// carries its own references so fillReferenceDescription and the browse
// iterator can walk it without a second store round trip.
type node struct {
	id          view.NodeID
	class       view.NodeClass
	browseName  view.QualifiedName
	displayName view.LocalizedText
	references  []view.ReferenceKind
}

func (n *node) NodeID() view.NodeID             { return n.id }
func (n *node) NodeClass() view.NodeClass       { return n.class }
func (n *node) BrowseName() view.QualifiedName  { return n.browseName }
func (n *node) DisplayName() view.LocalizedText { return n.displayName }
func (n *node) References() []view.ReferenceKind { return n.references }

// Store is an in-memory address space keyed by NodeID. The zero value is not
// usable; construct with New.
type Store struct {
	mu    sync.RWMutex
	nodes map[string]*node
}

// New returns an empty Store.
func New() *Store {
	return &Store{nodes: make(map[string]*node)}
}

// Get implements view.NodeStore. Released nodes are plain values owned by
// the store, so Get returns the same stable pointer on every call until the
// node is replaced by a later AddNode.
func (s *Store) Get(id view.NodeID) (view.Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[id.Key()]
	if !ok {
		return nil, false
	}
	return n, true
}

// Release is a no-op for this store: nodes are not reference-counted or
// pooled, only looked up by key.
func (s *Store) Release(view.Node) {}

// AddNode inserts or replaces the node identified by id. References are
// supplied directly as the store's canonical per-node reference list; there
// is no separate edge-insertion API because the store is a test/demo fixture
// populated wholesale, not a mutated production address space.
func (s *Store) AddNode(id view.NodeID, class view.NodeClass, browseName view.QualifiedName, displayName view.LocalizedText, references []view.ReferenceKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nodes[id.Key()] = &node{
		id:          id,
		class:       class,
		browseName:  browseName,
		displayName: displayName,
		references:  references,
	}
}

// Len reports the number of nodes currently in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes)
}
