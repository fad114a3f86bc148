// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package view implements the Browse, BrowseNext and
// TranslateBrowsePathsToNodeIds services of an OPC UA server's address
// space: the read-only traversal engine over a node store, paginated by
// per-session continuation points.
package view

import "github.com/absmach/opcuaview/view/statuscode"

// Limits are the server-configured request and per-node caps consulted by
// every service entry point. Zero means "no cap" for every field except
// MaxReferencesPerNode, where it additionally composes with a
// caller-supplied per-item maxReferences.
type Limits struct {
	MaxNodesPerBrowse                        uint32 `env:"MAX_NODES_PER_BROWSE" envDefault:"0"`
	MaxReferencesPerNode                     uint32 `env:"MAX_REFERENCES_PER_NODE" envDefault:"0"`
	MaxNodesPerTranslateBrowsePathsToNodeIDs uint32 `env:"MAX_NODES_PER_TRANSLATE_BROWSE_PATHS" envDefault:"0"`
	MaxNodesPerRegisterNodes                 uint32 `env:"MAX_NODES_PER_REGISTER_NODES" envDefault:"0"`
}

// Service is the API this package fulfils: the three paginated/resolving
// view services, plus the RegisterNodes/UnregisterNodes stubs treated as
// part of the same request-validation envelope.
type Service interface {
	Browse(session *Session, req BrowseRequest) BrowseResponse
	BrowseNext(session *Session, req BrowseNextRequest) BrowseNextResponse
	TranslateBrowsePathsToNodeIDs(req TranslateBrowsePathsRequest) TranslateBrowsePathsResponse
	RegisterNodes(req RegisterNodesRequest) RegisterNodesResponse
	UnregisterNodes(req UnregisterNodesRequest) UnregisterNodesResponse
}

// ViewDescription carries a Browse request's view-scoped filter; this core
// only supports view-less browsing.
type ViewDescription struct {
	ViewID NodeID
}

// BrowseRequest is a Browse service invocation.
type BrowseRequest struct {
	View                          ViewDescription
	RequestedMaxReferencesPerNode uint32
	Items                         []BrowseDescription
}

// BrowseResponse is the outcome of a Browse service invocation.
type BrowseResponse struct {
	ServiceResult statuscode.Code
	Results       []*BrowseResult
}

// BrowseNextRequest is a BrowseNext service invocation.
type BrowseNextRequest struct {
	ReleaseContinuationPoints bool
	ContinuationPoints        [][]byte
}

// BrowseNextResponse is the outcome of a BrowseNext service invocation.
type BrowseNextResponse struct {
	ServiceResult statuscode.Code
	Results       []*BrowseResult
}

// TranslateBrowsePathsRequest is a TranslateBrowsePathsToNodeIds service
// invocation.
type TranslateBrowsePathsRequest struct {
	Paths []BrowsePath
}

// TranslateBrowsePathsResponse is the outcome of a
// TranslateBrowsePathsToNodeIds service invocation.
type TranslateBrowsePathsResponse struct {
	ServiceResult statuscode.Code
	Results       []BrowsePathResult
}

// RegisterNodesRequest/Response and UnregisterNodesRequest/Response are
// echoing stubs: no per-session bookkeeping is performed, only
// request-envelope validation.
type RegisterNodesRequest struct {
	NodeIDs []NodeID
}

type RegisterNodesResponse struct {
	ServiceResult     statuscode.Code
	RegisteredNodeIDs []NodeID
}

type UnregisterNodesRequest struct {
	NodeIDs []NodeID
}

type UnregisterNodesResponse struct {
	ServiceResult statuscode.Code
}

type service struct {
	store  NodeStore
	limits Limits
}

// NewService wires a NodeStore and a set of server-configured request caps
// into a Service.
func NewService(store NodeStore, limits Limits) Service {
	return &service{store: store, limits: limits}
}

// validateRequestSize applies the request-wide size checks every view
// service entry point performs before allocating a results array: an empty
// item array is BadNothingToDo, and exceeding the configured per-request
// cap is BadTooManyOperations.
func validateRequestSize(itemCount int, maxPerRequest uint32) statuscode.Code {
	if itemCount == 0 {
		return statuscode.BadNothingToDo
	}
	if maxPerRequest > 0 && uint32(itemCount) > maxPerRequest {
		return statuscode.BadTooManyOperations
	}
	return statuscode.Good
}

func (s *service) Browse(session *Session, req BrowseRequest) BrowseResponse {
	if !req.View.ViewID.IsNull() {
		return BrowseResponse{ServiceResult: statuscode.BadViewIDUnknown}
	}
	if status := validateRequestSize(len(req.Items), s.limits.MaxNodesPerBrowse); status != statuscode.Good {
		return BrowseResponse{ServiceResult: status}
	}

	results := make([]*BrowseResult, len(req.Items))
	for i, item := range req.Items {
		results[i] = s.browseOne(session, item, req.RequestedMaxReferencesPerNode)
	}
	return BrowseResponse{ServiceResult: statuscode.Good, Results: results}
}

// browseOne applies the Browse Iterator to a single BrowseDescription item
// and, if truncated, hands the result to the continuation-point registry.
func (s *service) browseOne(session *Session, desc BrowseDescription, requestedMax uint32) *BrowseResult {
	node, ok := s.store.Get(desc.NodeID)
	if !ok {
		return emptyBrowseResult(statuscode.BadNodeIDUnknown)
	}
	defer s.store.Release(node)

	result, cursor, done := browseNode(s.store, node, desc, BrowseCursor{}, requestedMax, s.limits.MaxReferencesPerNode)
	if done {
		return result
	}

	cp, ok := session.continuations.create(desc, requestedMax, cursor)
	if !ok {
		result.StatusCode = statuscode.BadNoContinuationPoints
		return result
	}
	result.ContinuationPoint = cp.Identifier
	return result
}

func (s *service) BrowseNext(session *Session, req BrowseNextRequest) BrowseNextResponse {
	if status := validateRequestSize(len(req.ContinuationPoints), s.limits.MaxNodesPerBrowse); status != statuscode.Good {
		return BrowseNextResponse{ServiceResult: status}
	}

	results := make([]*BrowseResult, len(req.ContinuationPoints))
	for i, id := range req.ContinuationPoints {
		results[i] = s.browseNextOne(session, id, req.ReleaseContinuationPoints)
	}
	return BrowseNextResponse{ServiceResult: statuscode.Good, Results: results}
}

func (s *service) browseNextOne(session *Session, id []byte, release bool) *BrowseResult {
	cp, ok := session.continuations.find(id)
	if !ok {
		return emptyBrowseResult(statuscode.BadContinuationPointInvalid)
	}

	if release {
		session.continuations.release(id)
		return emptyBrowseResult(statuscode.Good)
	}

	node, ok := s.store.Get(cp.Description.NodeID)
	if !ok {
		session.continuations.release(id)
		return emptyBrowseResult(statuscode.BadNodeIDUnknown)
	}
	defer s.store.Release(node)

	result, cursor, done := browseNode(s.store, node, cp.Description, cp.Cursor, cp.MaxReferences, s.limits.MaxReferencesPerNode)
	if done {
		session.continuations.complete(id)
		return result
	}
	session.continuations.update(id, cursor)
	result.ContinuationPoint = id
	return result
}

func (s *service) TranslateBrowsePathsToNodeIDs(req TranslateBrowsePathsRequest) TranslateBrowsePathsResponse {
	if status := validateRequestSize(len(req.Paths), s.limits.MaxNodesPerTranslateBrowsePathsToNodeIDs); status != statuscode.Good {
		return TranslateBrowsePathsResponse{ServiceResult: status}
	}

	results := make([]BrowsePathResult, len(req.Paths))
	for i, path := range req.Paths {
		results[i] = resolveBrowsePath(s.store, path)
	}
	return TranslateBrowsePathsResponse{ServiceResult: statuscode.Good, Results: results}
}

// RegisterNodes and UnregisterNodes perform no state change: they only
// validate the request envelope and, for RegisterNodes, echo the supplied
// identifiers back as pseudo-handles.
func (s *service) RegisterNodes(req RegisterNodesRequest) RegisterNodesResponse {
	if status := validateRequestSize(len(req.NodeIDs), s.limits.MaxNodesPerRegisterNodes); status != statuscode.Good {
		return RegisterNodesResponse{ServiceResult: status}
	}
	return RegisterNodesResponse{ServiceResult: statuscode.Good, RegisteredNodeIDs: req.NodeIDs}
}

func (s *service) UnregisterNodes(req UnregisterNodesRequest) UnregisterNodesResponse {
	if status := validateRequestSize(len(req.NodeIDs), s.limits.MaxNodesPerRegisterNodes); status != statuscode.Good {
		return UnregisterNodesResponse{ServiceResult: status}
	}
	return UnregisterNodesResponse{ServiceResult: statuscode.Good}
}
