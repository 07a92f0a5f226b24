// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wtree

import (
	"slices"

	"github.com/barutsrb/hyprspace-go/geom"
)

// Gaps bundles the inner/outer gap configuration a workspace lays out
// with.
type Gaps struct {
	InnerHorizontal, InnerVertical                 float64
	OuterTop, OuterBottom, OuterLeft, OuterRight    float64
	NoOuterGapsInFullscreen                         bool
}

// Workspace owns exactly one root TilingContainer plus the auxiliary
// buckets for windows that are not part of the tiling tree.
type Workspace struct {
	Name    string
	Arena   *Arena
	Root    NodeID
	Monitor geom.Monitor
	Gaps    Gaps

	Floating   []WindowID
	Minimized  []WindowID
	Fullscreen []WindowID
	Popups     []WindowID
	Hidden     []WindowID

	// floatingRects is each floating window's remembered rect: the
	// "floating-size memo" of spec.md §3, kept at workspace scope (rather
	// than on the arena node, which is freed while the window floats) so
	// it survives repeated float<->tile toggles and monitor changes.
	floatingRects map[WindowID]geom.Rect
}

// NewWorkspace creates a workspace with a fresh empty root container of
// the given default layout/orientation.
func NewWorkspace(name string, arena *Arena, monitor geom.Monitor, gaps Gaps, rootLayout LayoutKind, rootOrientation geom.Axis) *Workspace {
	root := arena.NewContainer(rootOrientation, rootLayout)
	return &Workspace{Name: name, Arena: arena, Root: root, Monitor: monitor, Gaps: gaps, floatingRects: map[WindowID]geom.Rect{}}
}

// FloatingRect returns a floating window's remembered rect, if any.
func (w *Workspace) FloatingRect(win WindowID) (geom.Rect, bool) {
	r, ok := w.floatingRects[win]
	return r, ok
}

// SetFloatingRect records a floating window's rect, overwriting any
// previous memo. The command layer calls it when a window is floated for
// the first time, seeding it from the window's last tiled rect.
func (w *Workspace) SetFloatingRect(win WindowID, r geom.Rect) {
	if w.floatingRects == nil {
		w.floatingRects = map[WindowID]geom.Rect{}
	}
	w.floatingRects[win] = r
}

// SetMonitor updates the workspace's monitor and translates every
// floating window's remembered rect proportionally from the old visible
// frame to the new one (spec.md §1 Non-goals: "No floating-window layout
// algorithm beyond 'keep current rect, translate proportionally across
// monitors'"). Tiled windows need no translation: the next refresh pass
// recomputes their rects from the new workspace rect directly.
func (w *Workspace) SetMonitor(m geom.Monitor) {
	old := w.Monitor.VisibleFrame
	w.Monitor = m
	newFrame := m.VisibleFrame
	if old.Width <= 0 || old.Height <= 0 {
		return
	}
	for win, r := range w.floatingRects {
		w.floatingRects[win] = geom.Rect{
			X:      newFrame.X + (r.X-old.X)/old.Width*newFrame.Width,
			Y:      newFrame.Y + (r.Y-old.Y)/old.Height*newFrame.Height,
			Width:  r.Width / old.Width * newFrame.Width,
			Height: r.Height / old.Height * newFrame.Height,
		}
	}
}

// Rect returns the workspace's usable rect: the monitor's visible frame
// inset by the configured outer gaps.
func (w *Workspace) Rect() geom.Rect {
	return w.Monitor.VisibleFrame.Inset(w.Gaps.OuterLeft, w.Gaps.OuterTop, w.Gaps.OuterRight, w.Gaps.OuterBottom)
}

// AddWindow appends a new window as the last child of the root container.
// The tree-edit layer never renumbers on insertion, so a newly added
// window does not automatically become the Master.
func (w *Workspace) AddWindow(win WindowID, app AppID) NodeID {
	id := w.Arena.NewWindow(win, app)
	w.Arena.Bind(id, w.Root, -1, nil)
	return id
}

// RemoveWindow unbinds and frees a window's leaf node, wherever in the
// tree it is, and normalizes its former parent.
func (w *Workspace) RemoveWindow(win WindowID, flattenSingleChild, alternateOrientation bool) {
	id := w.Arena.FindWindowNode(w.Root, win)
	if id.IsZero() {
		w.removeFromBuckets(win)
		return
	}
	parent := w.Arena.Parent(id)
	w.Arena.Unbind(id)
	w.Arena.Free(id)
	if !parent.IsZero() {
		w.Arena.Normalize(parent, flattenSingleChild, alternateOrientation)
	}
}

func (w *Workspace) removeFromBuckets(win WindowID) {
	w.Floating = slices.DeleteFunc(w.Floating, func(x WindowID) bool { return x == win })
	w.Minimized = slices.DeleteFunc(w.Minimized, func(x WindowID) bool { return x == win })
	w.Fullscreen = slices.DeleteFunc(w.Fullscreen, func(x WindowID) bool { return x == win })
	w.Popups = slices.DeleteFunc(w.Popups, func(x WindowID) bool { return x == win })
	w.Hidden = slices.DeleteFunc(w.Hidden, func(x WindowID) bool { return x == win })
}

// SwapWindows exchanges the tree positions of two windows, wherever they
// sit in the tree.
func (w *Workspace) SwapWindows(a, b WindowID) bool {
	na := w.Arena.FindWindowNode(w.Root, a)
	nb := w.Arena.FindWindowNode(w.Root, b)
	if na.IsZero() || nb.IsZero() {
		return false
	}
	w.Arena.Swap(na, nb)
	return true
}
