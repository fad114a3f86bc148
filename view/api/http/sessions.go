// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"sync"

	"github.com/absmach/opcuaview/view"
)

// sessionRegistry hands out a Session per client-supplied session id,
// creating one on first use. Real session establishment (the OPC UA
// CreateSession/ActivateSession service set) is out of scope for this demo
// transport; a client simply picks an id and gets a private continuation
// point registry for it.
type sessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*view.Session
	slots    int
}

func newSessionRegistry(slots int) *sessionRegistry {
	return &sessionRegistry{sessions: make(map[string]*view.Session), slots: slots}
}

func (r *sessionRegistry) get(id string) *view.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[id]; ok {
		return s
	}
	s := view.NewSession(id, r.slots)
	r.sessions[id] = s
	return s
}
