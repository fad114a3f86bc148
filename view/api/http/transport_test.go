// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/absmach/opcuaview/view"
	viewhttp "github.com/absmach/opcuaview/view/api/http"
	"github.com/absmach/opcuaview/view/nodestore"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store := nodestore.New()
	nodestore.Seed(store)
	svc := view.NewService(store, view.Limits{})
	handler := viewhttp.MakeHandler(svc, chi.NewRouter(), view.DefaultContinuationPointSlots, "test-instance")
	return httptest.NewServer(handler)
}

func doJSON(t *testing.T, method, url string, headers map[string]string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestBrowseEndpointHappyPath(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	reqBody := map[string]any{
		"items": []map[string]any{
			{"NodeID": view.ObjectsFolderNodeID, "Direction": view.BrowseDirectionForward},
		},
	}
	resp := doJSON(t, http.MethodPost, srv.URL+"/v1/browse", map[string]string{"X-Session-Id": "s1"}, reqBody)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded struct {
		ServiceResult string           `json:"service_result"`
		Results       []map[string]any `json:"results"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	assert.Len(t, decoded.Results, 1)
}

func TestBrowseEndpointMissingSessionIDIsBadRequest(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	reqBody := map[string]any{
		"items": []map[string]any{
			{"NodeID": view.ObjectsFolderNodeID, "Direction": view.BrowseDirectionForward},
		},
	}
	resp := doJSON(t, http.MethodPost, srv.URL+"/v1/browse", nil, reqBody)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBrowseEndpointEmptyItemsIsBadRequest(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	resp := doJSON(t, http.MethodPost, srv.URL+"/v1/browse", map[string]string{"X-Session-Id": "s1"}, map[string]any{"items": []any{}})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegisterNodesEndpointEchoesIdentifiers(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	reqBody := map[string]any{
		"node_ids": []view.NodeID{view.NewNumericNodeID(2, 1001)},
	}
	resp := doJSON(t, http.MethodPost, srv.URL+"/v1/nodes/register", nil, reqBody)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded struct {
		ServiceResult     string        `json:"service_result"`
		RegisteredNodeIDs []view.NodeID `json:"registered_node_ids"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	assert.Len(t, decoded.RegisteredNodeIDs, 1)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
