// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package backend declares the abstract OS window surface the engine
// drives (spec.md §6): one implementation per platform, plus the
// MonitorProvider used to resolve workspace rects.
package backend

import (
	"context"
	"errors"

	"github.com/barutsrb/hyprspace-go/geom"
	"github.com/barutsrb/hyprspace-go/winid"
)

// ErrBackendUnavailable is returned by a suspending call when the OS
// backend cannot currently be reached.
var ErrBackendUnavailable = errors.New("backend unavailable")

// ErrWindowDead is returned by a suspending call targeting a window id
// the backend no longer knows about.
var ErrWindowDead = errors.New("window dead")

// WindowBackend is the abstract, suspending window surface the engine
// pushes computed rects to and reads live state from (spec.md §6).
// Every method may block until the OS replies; callers on the event
// loop must treat calls as suspension points (spec.md §5).
type WindowBackend interface {
	// GetRect returns a window's current rect. Fails with
	// ErrBackendUnavailable or ErrWindowDead.
	GetRect(ctx context.Context, w winid.WindowID) (geom.Rect, error)
	// SetRect pushes a new origin/size to the window. May silently clip,
	// or return an error if the window is mid-animation.
	SetRect(ctx context.Context, w winid.WindowID, origin geom.Point, size geom.Vector) error
	// SetFrame is a convenience wrapper taking a rect directly.
	SetFrame(ctx context.Context, w winid.WindowID, rect geom.Rect) error

	// OnResized, OnMoved and OnClosed register observers for
	// backend-reported state changes.
	OnResized(w winid.WindowID, handler func(geom.Rect))
	OnMoved(w winid.WindowID, handler func(geom.Point))
	OnClosed(w winid.WindowID, handler func())

	// Focus requests the OS give a window input focus.
	Focus(ctx context.Context, w winid.WindowID) error
}

// MonitorProvider resolves the currently connected monitors, each with
// its full frame and OS-reserved-area-adjusted visible frame.
type MonitorProvider interface {
	Monitors() []geom.Monitor
}
