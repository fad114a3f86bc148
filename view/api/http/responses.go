// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"

	"github.com/absmach/opcuaview/view"
)

// apiResponse is the shared Response contract every endpoint's result
// satisfies, mirrored on magistrala's own Response interface.
type apiResponse interface {
	Code() int
	Headers() map[string]string
	Empty() bool
}

type browseRes struct {
	ServiceResult string               `json:"service_result"`
	Results       []*view.BrowseResult `json:"results"`
}

func (r browseRes) Code() int                  { return http.StatusOK }
func (r browseRes) Headers() map[string]string { return map[string]string{} }
func (r browseRes) Empty() bool                { return false }

type browseNextRes struct {
	ServiceResult string               `json:"service_result"`
	Results       []*view.BrowseResult `json:"results"`
}

func (r browseNextRes) Code() int                  { return http.StatusOK }
func (r browseNextRes) Headers() map[string]string { return map[string]string{} }
func (r browseNextRes) Empty() bool                { return false }

type translateBrowsePathsRes struct {
	ServiceResult string                  `json:"service_result"`
	Results       []view.BrowsePathResult `json:"results"`
}

func (r translateBrowsePathsRes) Code() int                  { return http.StatusOK }
func (r translateBrowsePathsRes) Headers() map[string]string { return map[string]string{} }
func (r translateBrowsePathsRes) Empty() bool                { return false }

type registerNodesRes struct {
	ServiceResult     string        `json:"service_result"`
	RegisteredNodeIDs []view.NodeID `json:"registered_node_ids"`
}

func (r registerNodesRes) Code() int                  { return http.StatusOK }
func (r registerNodesRes) Headers() map[string]string { return map[string]string{} }
func (r registerNodesRes) Empty() bool                { return false }

type unregisterNodesRes struct {
	ServiceResult string `json:"service_result"`
}

func (r unregisterNodesRes) Code() int                  { return http.StatusOK }
func (r unregisterNodesRes) Headers() map[string]string { return map[string]string{} }
func (r unregisterNodesRes) Empty() bool                { return false }
