// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package view

// DefaultContinuationPointSlots is the per-session continuation-point cap
// used when a Session is created without an explicit override.
const DefaultContinuationPointSlots = 5

// Session is the minimal per-session state the view services core needs:
// a private continuation-point registry. Authentication, transport binding
// and the rest of session lifecycle management belong to the surrounding
// server and are not reimplemented here.
type Session struct {
	ID            string
	continuations *ContinuationRegistry
}

// NewSession returns a Session whose continuation-point registry holds at
// most slots live entries.
func NewSession(id string, slots int) *Session {
	return &Session{ID: id, continuations: NewContinuationRegistry(slots)}
}

// AvailableContinuationPoints reports the configured cap minus the number
// of live continuation points.
func (s *Session) AvailableContinuationPoints() int {
	return s.continuations.Available()
}

// Close releases every continuation point owned by the session, mirroring
// what a session destructor must do.
func (s *Session) Close() {
	s.continuations.releaseAll()
}
