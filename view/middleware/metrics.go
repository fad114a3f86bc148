// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"time"

	"github.com/absmach/opcuaview/view"
	"github.com/go-kit/kit/metrics"
)

var _ view.Service = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	svc     view.Service
}

// MetricsMiddleware wraps svc so every call increments a method-labelled
// request counter and observes a method-labelled request latency, following
// the go-kit instrumentation pattern used across magistrala's services.
func MetricsMiddleware(svc view.Service, counter metrics.Counter, latency metrics.Histogram) view.Service {
	return &metricsMiddleware{counter: counter, latency: latency, svc: svc}
}

func (mm *metricsMiddleware) instrument(method string, begin time.Time) {
	mm.counter.With("method", method).Add(1)
	mm.latency.With("method", method).Observe(time.Since(begin).Seconds())
}

func (mm *metricsMiddleware) Browse(session *view.Session, req view.BrowseRequest) view.BrowseResponse {
	defer func(begin time.Time) { mm.instrument("browse", begin) }(time.Now())
	return mm.svc.Browse(session, req)
}

func (mm *metricsMiddleware) BrowseNext(session *view.Session, req view.BrowseNextRequest) view.BrowseNextResponse {
	defer func(begin time.Time) { mm.instrument("browse_next", begin) }(time.Now())
	return mm.svc.BrowseNext(session, req)
}

func (mm *metricsMiddleware) TranslateBrowsePathsToNodeIDs(req view.TranslateBrowsePathsRequest) view.TranslateBrowsePathsResponse {
	defer func(begin time.Time) { mm.instrument("translate_browse_paths_to_node_ids", begin) }(time.Now())
	return mm.svc.TranslateBrowsePathsToNodeIDs(req)
}

func (mm *metricsMiddleware) RegisterNodes(req view.RegisterNodesRequest) view.RegisterNodesResponse {
	defer func(begin time.Time) { mm.instrument("register_nodes", begin) }(time.Now())
	return mm.svc.RegisterNodes(req)
}

func (mm *metricsMiddleware) UnregisterNodes(req view.UnregisterNodesRequest) view.UnregisterNodesResponse {
	defer func(begin time.Time) { mm.instrument("unregister_nodes", begin) }(time.Now())
	return mm.svc.UnregisterNodes(req)
}
