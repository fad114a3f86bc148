// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package view

import "github.com/absmach/opcuaview/view/statuscode"

// maxUint32 is the effective cap used when both the caller-supplied and the
// server-configured maxReferences are 0 ("no limit" in both cases).
const maxUint32 = 1<<32 - 1

// effectiveBrowseCap resolves the budget a single browse call may spend.
func effectiveBrowseCap(requested, serverMax uint32) uint32 {
	budget := uint32(maxUint32)
	if requested != 0 {
		budget = requested
	}
	if serverMax != 0 && serverMax < budget {
		budget = serverMax
	}
	return budget
}

// browseNode walks node's outgoing reference kinds from cursor, applying
// the direction/type/class filters of desc, and reports whether the walk
// ran to completion (done=true) or was truncated by the reference budget
// (done=false, in which case the returned cursor names the next
// unexamined pair).
func browseNode(store NodeStore, node Node, desc BrowseDescription, cursor BrowseCursor, requestedMax, serverMaxPerNode uint32) (*BrowseResult, BrowseCursor, bool) {
	if !desc.Direction.valid() {
		return emptyBrowseResult(statuscode.BadBrowseDirectionInvalid), cursor, true
	}

	filterByType := !desc.ReferenceTypeID.IsNull()
	if filterByType {
		refTypeNode, ok := store.Get(desc.ReferenceTypeID)
		if !ok || refTypeNode.NodeClass() != NodeClassReferenceType {
			if ok {
				store.Release(refTypeNode)
			}
			return emptyBrowseResult(statuscode.BadReferenceTypeIDInvalid), cursor, true
		}
		store.Release(refTypeNode)
	}

	budget := effectiveBrowseCap(requestedMax, serverMaxPerNode)
	refs := node.References()
	out := make([]*ReferenceDescription, 0, 2)

	ki, ti := cursor.ReferenceKindIndex, cursor.TargetIndex
	for ; ki < len(refs); ki++ {
		rk := refs[ki]

		if !directionMatches(desc.Direction, rk.IsInverse) {
			ti = 0
			continue
		}
		if filterByType && !isRelevant(store, desc.ReferenceTypeID, rk.ReferenceTypeID, desc.IncludeSubtypes) {
			ti = 0
			continue
		}

		for ; ti < len(rk.Targets); ti++ {
			tgt := rk.Targets[ti]

			rd, included := describeOneTarget(store, desc.NodeClassMask, desc.ResultMask, rk, tgt)
			if !included {
				continue
			}
			if rd == nil {
				// local target missing from the store: skip silently, the
				// model may be concurrently mutating.
				continue
			}

			if uint32(len(out)) >= budget {
				cursor = BrowseCursor{ReferenceKindIndex: ki, TargetIndex: ti}
				return &BrowseResult{StatusCode: statuscode.Good, References: out}, cursor, false
			}
			out = grow(out, rd, budget)
		}
		ti = 0
	}

	return &BrowseResult{StatusCode: statuscode.Good, References: out}, BrowseCursor{}, true
}

// describeOneTarget resolves a single (kind, target) pair, applying the
// nodeClassMask filter for local targets. It returns (nil, true) when the
// target should be silently skipped (missing local node), and
// (nil, false) when the target is filtered out by class and shouldn't
// count toward the budget at all.
func describeOneTarget(store NodeStore, classMask NodeClass, resultMask ResultMask, rk ReferenceKind, tgt ExpandedNodeID) (*ReferenceDescription, bool) {
	if tgt.ServerIndex != 0 {
		// External reference: the target node cannot be fetched from this
		// server, so class filtering (which needs the node) does not apply.
		return fillExternalReferenceDescription(tgt, rk, resultMask), true
	}

	target, ok := store.Get(tgt.NodeID)
	if !ok {
		return nil, true
	}
	defer store.Release(target)

	if classMask != 0 && target.NodeClass()&classMask == 0 {
		return nil, false
	}

	desc, _ := fillReferenceDescription(store, target, tgt, rk, resultMask)
	return desc, true
}

// grow appends rd to out, doubling capacity as needed starting from an
// initial capacity of 2 and never exceeding budget.
func grow(out []*ReferenceDescription, rd *ReferenceDescription, budget uint32) []*ReferenceDescription {
	if len(out) == cap(out) {
		newCap := cap(out) * 2
		if newCap == 0 {
			newCap = 2
		}
		if uint32(newCap) > budget {
			newCap = int(budget)
		}
		grown := make([]*ReferenceDescription, len(out), newCap)
		copy(grown, out)
		out = grown
	}
	return append(out, rd)
}

func directionMatches(requested BrowseDirection, isInverse bool) bool {
	switch requested {
	case BrowseDirectionBoth:
		return true
	case BrowseDirectionForward:
		return !isInverse
	case BrowseDirectionInverse:
		return isInverse
	default:
		return false
	}
}
