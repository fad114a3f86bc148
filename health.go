// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package opcuaview holds the module-wide version metadata and health
// endpoint shared by every transport, mirrored on magistrala's own
// root-level health.go.
package opcuaview

import (
	"encoding/json"
	"net/http"
)

const (
	contentType     = "Content-Type"
	contentTypeJSON = "application/health+json"
	svcStatus       = "pass"
	description     = " service"
)

var (
	// Version is the last git tag, meant to be set via build ldflags.
	Version = "0.0.0"
	// Commit is the git commit hash, meant to be set via build ldflags.
	Commit = "ffffffff"
	// BuildTime is the build timestamp, meant to be set via build ldflags.
	BuildTime = "1970-01-01_00:00:00"
)

// HealthInfo is the health endpoint's response body.
type HealthInfo struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	Commit      string `json:"commit"`
	Description string `json:"description"`
	BuildTime   string `json:"build_time"`
	InstanceID  string `json:"instance_id"`
}

// Health exposes an HTTP handler reporting service and instance identity.
func Health(service, instanceID string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add(contentType, contentTypeJSON)
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		res := HealthInfo{
			Status:      svcStatus,
			Version:     Version,
			Commit:      Commit,
			Description: service + description,
			BuildTime:   BuildTime,
			InstanceID:  instanceID,
		}

		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(res); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
		}
	}
}
