// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session issues the per-run identifier used to correlate trace spans.
package session

import (
	"context"

	"github.com/google/uuid"
)

// Session identifies one analyzer lifetime. It is never persisted.
type Session struct {
	id string
}

// New returns a session with a random UUIDv4 identifier.
func New() *Session {
	return &Session{id: uuid.NewString()}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	if s == nil {
		return ""
	}
	return s.id
}

type contextKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session stored in ctx, or nil.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(contextKey{}).(*Session)
	return s
}
