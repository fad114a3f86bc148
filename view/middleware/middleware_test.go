// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package middleware_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/absmach/opcuaview/view"
	"github.com/absmach/opcuaview/view/middleware"
	"github.com/absmach/opcuaview/view/nodestore"
	"github.com/absmach/opcuaview/view/statuscode"
	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoggingMiddlewareDelegatesToService(t *testing.T) {
	store := nodestore.New()
	nodestore.Seed(store)
	svc := view.NewService(store, view.Limits{})
	wrapped := middleware.LoggingMiddleware(svc, newTestLogger())

	session := view.NewSession("s1", view.DefaultContinuationPointSlots)
	resp := wrapped.Browse(session, view.BrowseRequest{
		Items: []view.BrowseDescription{{NodeID: view.ObjectsFolderNodeID, Direction: view.BrowseDirectionForward}},
	})

	require.Equal(t, statuscode.Good, resp.ServiceResult)
	assert.Len(t, resp.Results, 1)
}

func TestMetricsMiddlewareDelegatesToService(t *testing.T) {
	store := nodestore.New()
	nodestore.Seed(store)
	svc := view.NewService(store, view.Limits{})

	counter := kitprometheus.NewCounterFrom(stdprometheus.CounterOpts{Name: "test_requests_total"}, []string{"method"})
	latency := kitprometheus.NewSummaryFrom(stdprometheus.SummaryOpts{Name: "test_latency_seconds"}, []string{"method"})
	wrapped := middleware.MetricsMiddleware(svc, counter, latency)

	resp := wrapped.UnregisterNodes(view.UnregisterNodesRequest{NodeIDs: []view.NodeID{view.NewNumericNodeID(2, 1)}})
	assert.Equal(t, statuscode.Good, resp.ServiceResult)
}
