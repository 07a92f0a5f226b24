// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fake implements an in-memory backend.WindowBackend and
// backend.MonitorProvider, grounded on cogentcore-core's offscreen
// driver (a single mutex-protected map of windows standing in for a
// real OS surface, used by the teacher's own test suite).
package fake

import (
	"context"
	"sync"

	"github.com/barutsrb/hyprspace-go/backend"
	"github.com/barutsrb/hyprspace-go/geom"
	"github.com/barutsrb/hyprspace-go/winid"
)

type windowState struct {
	rect     geom.Rect
	closed   bool
	onResize []func(geom.Rect)
	onMove   []func(geom.Point)
	onClose  []func()
}

var _ backend.WindowBackend = (*Backend)(nil)
var _ backend.MonitorProvider = (*Backend)(nil)

// Backend is an in-process WindowBackend used by tests and the demo
// cmd/; it never actually talks to an OS.
type Backend struct {
	mu       sync.Mutex
	windows  map[winid.WindowID]*windowState
	monitors []geom.Monitor
	focused  winid.WindowID
}

// New creates an empty fake backend with the given monitor set.
func New(monitors []geom.Monitor) *Backend {
	return &Backend{windows: make(map[winid.WindowID]*windowState), monitors: monitors}
}

// Open registers a new window at the given initial rect, as if the OS
// had just mapped it. Tests use this to seed scenarios.
func (b *Backend) Open(w winid.WindowID, rect geom.Rect) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.windows[w] = &windowState{rect: rect}
}

// Close simulates the OS reporting a window's disappearance, firing any
// registered onClosed handlers.
func (b *Backend) Close(w winid.WindowID) {
	b.mu.Lock()
	st, ok := b.windows[w]
	if !ok {
		b.mu.Unlock()
		return
	}
	st.closed = true
	handlers := append([]func(){}, st.onClose...)
	b.mu.Unlock()
	for _, h := range handlers {
		h()
	}
}

func (b *Backend) GetRect(_ context.Context, w winid.WindowID) (geom.Rect, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	st, ok := b.windows[w]
	if !ok || st.closed {
		return geom.Rect{}, backend.ErrWindowDead
	}
	return st.rect, nil
}

func (b *Backend) SetRect(ctx context.Context, w winid.WindowID, origin geom.Point, size geom.Vector) error {
	return b.SetFrame(ctx, w, geom.R(origin.X, origin.Y, size.X, size.Y))
}

func (b *Backend) SetFrame(_ context.Context, w winid.WindowID, rect geom.Rect) error {
	b.mu.Lock()
	st, ok := b.windows[w]
	if !ok || st.closed {
		b.mu.Unlock()
		return backend.ErrWindowDead
	}
	st.rect = rect
	handlers := append([]func(geom.Rect){}, st.onResize...)
	b.mu.Unlock()
	for _, h := range handlers {
		h(rect)
	}
	return nil
}

func (b *Backend) OnResized(w winid.WindowID, handler func(geom.Rect)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if st, ok := b.windows[w]; ok {
		st.onResize = append(st.onResize, handler)
	}
}

func (b *Backend) OnMoved(w winid.WindowID, handler func(geom.Point)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if st, ok := b.windows[w]; ok {
		st.onMove = append(st.onMove, handler)
	}
}

func (b *Backend) OnClosed(w winid.WindowID, handler func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if st, ok := b.windows[w]; ok {
		st.onClose = append(st.onClose, handler)
	}
}

func (b *Backend) Focus(_ context.Context, w winid.WindowID) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	st, ok := b.windows[w]
	if !ok || st.closed {
		return backend.ErrWindowDead
	}
	b.focused = w
	return nil
}

// Focused returns the id most recently given focus, for test assertions.
func (b *Backend) Focused() winid.WindowID {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.focused
}

func (b *Backend) Monitors() []geom.Monitor {
	return b.monitors
}
