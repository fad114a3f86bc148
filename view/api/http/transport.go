// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package http exposes the view.Service over a JSON HTTP transport, grounded
// on magistrala's clients/api/http package: chi for routing, go-kit for the
// endpoint/decode/encode split, and prometheus' promhttp for /metrics.
package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/absmach/opcuaview"
	"github.com/absmach/opcuaview/view"
	"github.com/go-chi/chi/v5"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	sessionHeader = "X-Session-Id"
	serviceName   = "opcuaview"
)

// MakeHandler returns an HTTP handler serving the view services over mux.
// sessionSlots bounds the per-session continuation-point registry created
// for every session id seen on the X-Session-Id header.
func MakeHandler(svc view.Service, mux *chi.Mux, sessionSlots int, instanceID string) http.Handler {
	sessions := newSessionRegistry(sessionSlots)
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
	}

	mux.Route("/v1", func(r chi.Router) {
		r.Post("/browse", kithttp.NewServer(
			browseEndpoint(svc, sessions),
			decodeBrowseReq,
			encodeResponse,
			opts...,
		).ServeHTTP)

		r.Post("/browse-next", kithttp.NewServer(
			browseNextEndpoint(svc, sessions),
			decodeBrowseNextReq,
			encodeResponse,
			opts...,
		).ServeHTTP)

		r.Post("/translate-browse-paths", kithttp.NewServer(
			translateBrowsePathsEndpoint(svc),
			decodeTranslateBrowsePathsReq,
			encodeResponse,
			opts...,
		).ServeHTTP)

		r.Post("/nodes/register", kithttp.NewServer(
			registerNodesEndpoint(svc),
			decodeRegisterNodesReq,
			encodeResponse,
			opts...,
		).ServeHTTP)

		r.Post("/nodes/unregister", kithttp.NewServer(
			unregisterNodesEndpoint(svc),
			decodeUnregisterNodesReq,
			encodeResponse,
			opts...,
		).ServeHTTP)
	})

	mux.Get("/health", opcuaview.Health(serviceName, instanceID))
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

func decodeBrowseReq(_ context.Context, r *http.Request) (interface{}, error) {
	var req browseReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errMalformedBody
	}
	req.sessionID = r.Header.Get(sessionHeader)
	return req, nil
}

func decodeBrowseNextReq(_ context.Context, r *http.Request) (interface{}, error) {
	var req browseNextReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errMalformedBody
	}
	req.sessionID = r.Header.Get(sessionHeader)
	return req, nil
}

func decodeTranslateBrowsePathsReq(_ context.Context, r *http.Request) (interface{}, error) {
	var req translateBrowsePathsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errMalformedBody
	}
	return req, nil
}

func decodeRegisterNodesReq(_ context.Context, r *http.Request) (interface{}, error) {
	var req registerNodesReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errMalformedBody
	}
	return req, nil
}

func decodeUnregisterNodesReq(_ context.Context, r *http.Request) (interface{}, error) {
	var req unregisterNodesReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errMalformedBody
	}
	return req, nil
}

// encodeResponse mirrors magistrala's internal/api.EncodeResponse: a
// response implementing apiResponse drives the status line and headers.
func encodeResponse(_ context.Context, w http.ResponseWriter, response interface{}) error {
	if ar, ok := response.(apiResponse); ok {
		for k, v := range ar.Headers() {
			w.Header().Set(k, v)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(ar.Code())
		if ar.Empty() {
			return nil
		}
	}
	return json.NewEncoder(w).Encode(response)
}

// encodeError maps request decoding and validation failures to 400s. A view
// service call never returns an error: its status, good or bad, travels in
// the 200 response body, so it never reaches here.
func encodeError(_ context.Context, err error, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
