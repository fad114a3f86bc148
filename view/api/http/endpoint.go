// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"

	"github.com/absmach/opcuaview/view"
	"github.com/absmach/opcuaview/view/statuscode"
	"github.com/go-kit/kit/endpoint"
)

func browseEndpoint(svc view.Service, sessions *sessionRegistry) endpoint.Endpoint {
	return func(_ context.Context, request interface{}) (interface{}, error) {
		req := request.(browseReq)
		if err := req.validate(); err != nil {
			return nil, err
		}

		resp := svc.Browse(sessions.get(req.sessionID), view.BrowseRequest{
			View:                          req.View,
			RequestedMaxReferencesPerNode: req.RequestedMaxReferencesPerNode,
			Items:                         req.Items,
		})
		return browseRes{ServiceResult: statuscode.Text(resp.ServiceResult), Results: resp.Results}, nil
	}
}

func browseNextEndpoint(svc view.Service, sessions *sessionRegistry) endpoint.Endpoint {
	return func(_ context.Context, request interface{}) (interface{}, error) {
		req := request.(browseNextReq)
		if err := req.validate(); err != nil {
			return nil, err
		}

		resp := svc.BrowseNext(sessions.get(req.sessionID), view.BrowseNextRequest{
			ReleaseContinuationPoints: req.ReleaseContinuationPoints,
			ContinuationPoints:        req.ContinuationPoints,
		})
		return browseNextRes{ServiceResult: statuscode.Text(resp.ServiceResult), Results: resp.Results}, nil
	}
}

func translateBrowsePathsEndpoint(svc view.Service) endpoint.Endpoint {
	return func(_ context.Context, request interface{}) (interface{}, error) {
		req := request.(translateBrowsePathsReq)
		if err := req.validate(); err != nil {
			return nil, err
		}

		resp := svc.TranslateBrowsePathsToNodeIDs(view.TranslateBrowsePathsRequest{Paths: req.Paths})
		return translateBrowsePathsRes{ServiceResult: statuscode.Text(resp.ServiceResult), Results: resp.Results}, nil
	}
}

func registerNodesEndpoint(svc view.Service) endpoint.Endpoint {
	return func(_ context.Context, request interface{}) (interface{}, error) {
		req := request.(registerNodesReq)
		if err := req.validate(); err != nil {
			return nil, err
		}

		resp := svc.RegisterNodes(view.RegisterNodesRequest{NodeIDs: req.NodeIDs})
		return registerNodesRes{ServiceResult: statuscode.Text(resp.ServiceResult), RegisteredNodeIDs: resp.RegisteredNodeIDs}, nil
	}
}

func unregisterNodesEndpoint(svc view.Service) endpoint.Endpoint {
	return func(_ context.Context, request interface{}) (interface{}, error) {
		req := request.(unregisterNodesReq)
		if err := req.validate(); err != nil {
			return nil, err
		}

		resp := svc.UnregisterNodes(view.UnregisterNodesRequest{NodeIDs: req.NodeIDs})
		return unregisterNodesRes{ServiceResult: statuscode.Text(resp.ServiceResult)}, nil
	}
}
