// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package view

// isRelevant decides whether candidate satisfies a browse or path element's
// reference-type filter rooted at root. With includeSubtypes
// false it is exact equality; otherwise candidate must be root or one of
// its transitive HasSubtype descendants.
func isRelevant(store NodeStore, root, candidate NodeID, includeSubtypes bool) bool {
	if !includeSubtypes {
		return root.Equal(candidate)
	}
	return isNodeInTree(store, candidate, root)
}

// isNodeInTree reports whether candidate is reachable from root by zero or
// more forward HasSubtype hops. The node store is the only collaborator
// consulted; no handle is held across the call. Cycle detection guards
// against a malformed (non-DAG) hierarchy even though the contract
// guarantees one.
func isNodeInTree(store NodeStore, candidate, root NodeID) bool {
	if candidate.Equal(root) {
		return true
	}

	visited := map[string]bool{root.Key(): true}
	frontier := []NodeID{root}

	for len(frontier) > 0 {
		n := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		node, ok := store.Get(n)
		if !ok {
			continue
		}
		for _, rk := range node.References() {
			if rk.IsInverse || !rk.ReferenceTypeID.Equal(HasSubtypeNodeID) {
				continue
			}
			for _, tgt := range rk.Targets {
				if tgt.ServerIndex != 0 {
					continue
				}
				if tgt.NodeID.Equal(candidate) {
					store.Release(node)
					return true
				}
				if !visited[tgt.NodeID.Key()] {
					visited[tgt.NodeID.Key()] = true
					frontier = append(frontier, tgt.NodeID)
				}
			}
		}
		store.Release(node)
	}
	return false
}
