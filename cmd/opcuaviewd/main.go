// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package main starts the opcuaviewd demo server: an in-memory address
// space exposed over HTTP via the Browse, BrowseNext and
// TranslateBrowsePathsToNodeIds view services.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/absmach/opcuaview/internal"
	"github.com/absmach/opcuaview/internal/server"
	httpserver "github.com/absmach/opcuaview/internal/server/http"
	"github.com/absmach/opcuaview/logger"
	viewmw "github.com/absmach/opcuaview/view/middleware"
	"github.com/absmach/opcuaview/view"
	viewhttp "github.com/absmach/opcuaview/view/api/http"
	"github.com/absmach/opcuaview/view/nodestore"
	"github.com/caarlos0/env/v10"
	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	svcName       = "opcuaview"
	envPrefixHTTP = "OPCUAVIEW_HTTP_"
)

type config struct {
	LogLevel     string `env:"OPCUAVIEW_LOG_LEVEL" envDefault:"info"`
	InstanceID   string `env:"OPCUAVIEW_INSTANCE_ID" envDefault:""`
	SessionSlots int    `env:"OPCUAVIEW_SESSION_CONTINUATION_SLOTS" envDefault:"5"`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load %s configuration: %s", svcName, err)
	}

	limits := view.Limits{}
	if err := env.Parse(&limits); err != nil {
		log.Fatalf("failed to load %s request limits: %s", svcName, err)
	}

	logr, err := logger.New(os.Stdout, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %s", err)
	}

	if cfg.InstanceID == "" {
		id, err := uuid.NewV4()
		if err != nil {
			logr.Error(fmt.Sprintf("failed to generate instance id: %s", err))
			os.Exit(1)
		}
		cfg.InstanceID = id.String()
	}

	httpServerConfig := server.Config{Port: "8180"}
	if err := env.ParseWithOptions(&httpServerConfig, env.Options{Prefix: envPrefixHTTP}); err != nil {
		logr.Error(fmt.Sprintf("failed to load %s HTTP server configuration: %s", svcName, err))
		os.Exit(1)
	}

	store := nodestore.New()
	nodestore.Seed(store)

	svc := newService(store, limits, logr)

	hs := httpserver.New(ctx, cancel, svcName, httpServerConfig, viewhttp.MakeHandler(svc, chi.NewRouter(), cfg.SessionSlots, cfg.InstanceID), logr)

	g.Go(func() error {
		return hs.Start()
	})
	g.Go(func() error {
		return server.StopSignalHandler(ctx, cancel, logr, svcName, hs)
	})

	if err := g.Wait(); err != nil {
		logr.Error(fmt.Sprintf("%s service terminated: %s", svcName, err))
	}
}

func newService(store *nodestore.Store, limits view.Limits, logr *slog.Logger) view.Service {
	svc := view.NewService(store, limits)
	svc = viewmw.LoggingMiddleware(svc, logr)
	counter, latency := internal.MakeMetrics(svcName, "api")
	svc = viewmw.MetricsMiddleware(svc, counter, latency)
	return svc
}
