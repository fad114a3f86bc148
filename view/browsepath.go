// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package view

import "github.com/absmach/opcuaview/view/statuscode"

// scratchCapacity is the initial capacity of the breadth-first frontier
// buffers; append's own amortized doubling takes over from there — a plain
// append-grown slice plays the role of a manual pointer-to-pointer buffer
// swap.
const scratchCapacity = 10

// resolveBrowsePath resolves a single BrowsePath by breadth-first expansion
// over its relative-path elements.
func resolveBrowsePath(store NodeStore, path BrowsePath) BrowsePathResult {
	if len(path.Elements) == 0 {
		return emptyBrowsePathResult(statuscode.BadNothingToDo)
	}
	for _, e := range path.Elements {
		if e.TargetName == nil {
			return emptyBrowsePathResult(statuscode.BadBrowseNameInvalid)
		}
	}

	current := make([]NodeID, 1, scratchCapacity)
	current[0] = path.StartingNode
	targets := make([]BrowsePathTarget, 0, scratchCapacity)
	status := statuscode.Good

	for d, e := range path.Elements {
		filterByType := !e.ReferenceTypeID.IsNull()
		if filterByType {
			rtNode, ok := store.Get(e.ReferenceTypeID)
			valid := ok && rtNode.NodeClass() == NodeClassReferenceType
			if ok {
				store.Release(rtNode)
			}
			if !valid {
				current = nil
				break
			}
		}

		var prevTargetName *QualifiedName
		if d >= 1 {
			prevTargetName = path.Elements[d-1].TargetName
		}

		next := make([]NodeID, 0, scratchCapacity)
		for _, n := range current {
			node, ok := store.Get(n)
			if !ok {
				if d == 0 {
					status = statuscode.BadNodeIDUnknown
				}
				continue
			}
			if prevTargetName != nil && !node.BrowseName().Equal(*prevTargetName) {
				store.Release(node)
				continue
			}

			for _, rk := range node.References() {
				if rk.IsInverse != e.IsInverse {
					continue
				}
				if filterByType && !isRelevant(store, e.ReferenceTypeID, rk.ReferenceTypeID, e.IncludeSubtypes) {
					continue
				}
				for _, tgt := range rk.Targets {
					if tgt.ServerIndex != 0 {
						targets = append(targets, BrowsePathTarget{TargetID: tgt, RemainingPathIndex: uint32(d)})
						continue
					}
					next = append(next, tgt.NodeID)
				}
			}
			store.Release(node)
		}

		current = next
		if status != statuscode.Good {
			break
		}
		if len(current) == 0 {
			break
		}
	}

	if status != statuscode.Good {
		return emptyBrowsePathResult(status)
	}

	lastTargetName := path.Elements[len(path.Elements)-1].TargetName
	for _, n := range current {
		node, ok := store.Get(n)
		if !ok {
			continue
		}
		if node.BrowseName().Equal(*lastTargetName) {
			targets = append(targets, BrowsePathTarget{TargetID: Local(n), RemainingPathIndex: RemainingPathIndexMax})
		}
		store.Release(node)
	}

	if len(targets) == 0 {
		return BrowsePathResult{StatusCode: statuscode.BadNoMatch, Targets: []BrowsePathTarget{}}
	}
	return BrowsePathResult{StatusCode: statuscode.Good, Targets: targets}
}
