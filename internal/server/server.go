// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package server defines the lifecycle contract the demo entry point uses
// to start and gracefully stop the HTTP transport.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// Server is anything with a blocking Start and a graceful Stop.
type Server interface {
	Start() error
	Stop() error
}

// Config is the subset of listener configuration every Server
// implementation needs.
type Config struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"8080"`
	CertFile string `env:"SERVER_CERT" envDefault:""`
	KeyFile  string `env:"SERVER_KEY" envDefault:""`
}

// BaseServer is the state common to every concrete Server; transports embed
// it rather than redeclaring these fields.
type BaseServer struct {
	Ctx      context.Context
	Cancel   context.CancelFunc
	Name     string
	Address  string
	Config   Config
	Logger   *slog.Logger
	Protocol string
}

func stopAll(servers ...Server) error {
	var err error
	for _, s := range servers {
		if err1 := s.Stop(); err1 != nil {
			if err == nil {
				err = fmt.Errorf("%w", err1)
			} else {
				err = fmt.Errorf("%v ; %w", err, err1)
			}
		}
	}
	return err
}

// StopSignalHandler blocks until SIGINT/SIGTERM or ctx cancellation, then
// stops every server in order and returns any shutdown error.
func StopSignalHandler(ctx context.Context, cancel context.CancelFunc, logger *slog.Logger, svcName string, servers ...Server) error {
	c := make(chan os.Signal, 2)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-c:
		defer cancel()
		err := stopAll(servers...)
		if err != nil {
			logger.Error(fmt.Sprintf("%s service error during shutdown: %v", svcName, err))
		}
		logger.Info(fmt.Sprintf("%s service shutdown by signal: %s", svcName, sig))
		return err
	case <-ctx.Done():
		return nil
	}
}
