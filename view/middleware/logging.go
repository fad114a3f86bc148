// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package middleware decorates view.Service with logging and metrics, in
// the style of magistrala's clients/middleware.
package middleware

import (
	"log/slog"
	"time"

	"github.com/absmach/opcuaview/view"
	"github.com/absmach/opcuaview/view/statuscode"
)

var _ view.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger *slog.Logger
	svc    view.Service
}

// LoggingMiddleware wraps svc so every call is logged with duration and
// request shape. Browse, BrowseNext and TranslateBrowsePathsToNodeIDs log at
// Info (success) or Warn (bad service result); RegisterNodes and
// UnregisterNodes always log at Info.
func LoggingMiddleware(svc view.Service, logger *slog.Logger) view.Service {
	return &loggingMiddleware{logger: logger, svc: svc}
}

func (lm *loggingMiddleware) Browse(session *view.Session, req view.BrowseRequest) (resp view.BrowseResponse) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Int("items", len(req.Items)),
			slog.String("service_result", statuscode.Text(resp.ServiceResult)),
		}
		if resp.ServiceResult != 0 {
			lm.logger.Warn("Browse failed", args...)
			return
		}
		lm.logger.Info("Browse completed", args...)
	}(time.Now())
	return lm.svc.Browse(session, req)
}

func (lm *loggingMiddleware) BrowseNext(session *view.Session, req view.BrowseNextRequest) (resp view.BrowseNextResponse) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Int("continuation_points", len(req.ContinuationPoints)),
			slog.Bool("release", req.ReleaseContinuationPoints),
			slog.String("service_result", statuscode.Text(resp.ServiceResult)),
		}
		if resp.ServiceResult != 0 {
			lm.logger.Warn("BrowseNext failed", args...)
			return
		}
		lm.logger.Info("BrowseNext completed", args...)
	}(time.Now())
	return lm.svc.BrowseNext(session, req)
}

func (lm *loggingMiddleware) TranslateBrowsePathsToNodeIDs(req view.TranslateBrowsePathsRequest) (resp view.TranslateBrowsePathsResponse) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Int("paths", len(req.Paths)),
			slog.String("service_result", statuscode.Text(resp.ServiceResult)),
		}
		if resp.ServiceResult != 0 {
			lm.logger.Warn("TranslateBrowsePathsToNodeIDs failed", args...)
			return
		}
		lm.logger.Info("TranslateBrowsePathsToNodeIDs completed", args...)
	}(time.Now())
	return lm.svc.TranslateBrowsePathsToNodeIDs(req)
}

func (lm *loggingMiddleware) RegisterNodes(req view.RegisterNodesRequest) (resp view.RegisterNodesResponse) {
	defer func(begin time.Time) {
		lm.logger.Info("RegisterNodes completed",
			slog.String("duration", time.Since(begin).String()),
			slog.Int("nodes", len(req.NodeIDs)),
			slog.String("service_result", statuscode.Text(resp.ServiceResult)),
		)
	}(time.Now())
	return lm.svc.RegisterNodes(req)
}

func (lm *loggingMiddleware) UnregisterNodes(req view.UnregisterNodesRequest) (resp view.UnregisterNodesResponse) {
	defer func(begin time.Time) {
		lm.logger.Info("UnregisterNodes completed",
			slog.String("duration", time.Since(begin).String()),
			slog.Int("nodes", len(req.NodeIDs)),
			slog.String("service_result", statuscode.Text(resp.ServiceResult)),
		)
	}(time.Now())
	return lm.svc.UnregisterNodes(req)
}
