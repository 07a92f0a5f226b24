// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dwindlecache implements the persistent binary-tree split cache
// behind the Dwindle layout (spec.md §4.4) — the hardest subsystem in the
// engine: rebuild-iff-window-set-changed, seam-aware recursive layout,
// smart/standard keyboard resize with outer/inner controlling splits, and
// the box-snapshot feedback-loop guard used during pointer drags.
package dwindlecache

import (
	"github.com/barutsrb/hyprspace-go/geom"
	"github.com/barutsrb/hyprspace-go/internal/mathx"
	"github.com/barutsrb/hyprspace-go/winid"
)

// Config bundles the tunables a Cache needs from the engine configuration
// (spec.md §6).
type Config struct {
	DefaultSplitRatio   float64 // dwindleDefaultSplitRatio, default 1.0
	SplitWidthMultiplier float64 // splitWidthMultiplier, default 1.0
	InnerGapH, InnerGapV float64
	MouseSensitivity     float64 // default 1.0
}

// DefaultConfig returns the spec's documented defaults.
func DefaultConfig() Config {
	return Config{
		DefaultSplitRatio:    1.0,
		SplitWidthMultiplier: 1.0,
		MouseSensitivity:     1.0,
	}
}

const (
	minRatio = 0.1
	maxRatio = 1.9
	// edgeConstraintPx is the "within 10px of the workspace edge" threshold
	// from spec.md §4.4.3.
	edgeConstraintPx = 10.0
)

// node is one node of the persistent binary split tree. Leaves reference
// a window id (isLeaf distinguishes a leaf holding WindowID 0 from an
// internal node); internal nodes hold the split state.
type node struct {
	isLeaf bool
	window winid.WindowID

	// internal-node fields
	splitRatio      float64
	splitVertically bool
	first, second   *node
	parent          *node

	// shared bookkeeping (spec.md §4.4.2)
	box         geom.Rect
	boxSnapshot *geom.Rect
}

// Cache is the persistent dwindle split tree for one tiling container.
type Cache struct {
	cfg  Config
	root *node
	// ids is the recorded set of window ids the tree was built from, used
	// to detect staleness (invariant 6: "authoritative iff recorded set of
	// window ids equals the container's current set").
	ids map[winid.WindowID]struct{}
}

// New creates an empty cache with the given configuration.
func New(cfg Config) *Cache {
	return &Cache{cfg: cfg, ids: map[winid.WindowID]struct{}{}}
}

// SetConfig updates the tunables used by future rebuild/resize calls.
func (c *Cache) SetConfig(cfg Config) { c.cfg = cfg }

// NeedsRebuild reports whether the cache's recorded window-id set differs
// from the given current set (spec.md §4.4.1), which is the precondition
// for a rebuild alongside "no window is currently pointer-manipulated".
func (c *Cache) NeedsRebuild(current []winid.WindowID) bool {
	if len(current) != len(c.ids) {
		return true
	}
	for _, id := range current {
		if _, ok := c.ids[id]; !ok {
			return true
		}
	}
	return false
}

// Rebuild rebuilds the split tree from an ordered list of window leaves
// and the container's rect (spec.md §4.4.1). Callers must only invoke
// this when NeedsRebuild is true and no window is pointer-manipulated.
func (c *Cache) Rebuild(windows []winid.WindowID, rect geom.Rect) {
	c.ids = make(map[winid.WindowID]struct{}, len(windows))
	for _, id := range windows {
		c.ids[id] = struct{}{}
	}
	c.root = c.build(windows, rect)
}

func (c *Cache) build(windows []winid.WindowID, rect geom.Rect) *node {
	if len(windows) == 0 {
		return nil
	}
	if len(windows) == 1 {
		return &node{isLeaf: true, window: windows[0], box: rect}
	}
	mid := len(windows) / 2
	aspect := rect.Width / rect.Height / nonZero(c.cfg.SplitWidthMultiplier)
	vertical := aspect >= 1
	n := &node{
		splitRatio:      clampRatio(c.cfg.DefaultSplitRatio),
		splitVertically: vertical,
		box:             rect,
	}
	rectA, rectB := splitRect(rect, vertical, n.splitRatio, gapFor(c.cfg, vertical))
	n.first = c.build(windows[:mid], rectA)
	n.first.parent = n
	n.second = c.build(windows[mid:], rectB)
	n.second.parent = n
	return n
}

func nonZero(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

func gapFor(cfg Config, vertical bool) float64 {
	if vertical {
		return cfg.InnerGapH
	}
	return cfg.InnerGapV
}

// splitRect divides rect into two sub-rects along the split axis
// (vertical==true means the split seam runs vertically, dividing width)
// using the seam arithmetic of spec.md §4.4.2.
func splitRect(rect geom.Rect, vertical bool, ratio, gap float64) (a, b geom.Rect) {
	if vertical {
		wa, wb := geom.SplitSeam(rect.Width, gap, ratio, 1)
		a = geom.R(rect.X, rect.Y, wa, rect.Height)
		b = geom.R(rect.X+wa+gap, rect.Y, wb, rect.Height)
		return
	}
	ha, hb := geom.SplitSeam(rect.Height, gap, ratio, 1)
	a = geom.R(rect.X, rect.Y, rect.Width, ha)
	b = geom.R(rect.X, rect.Y+ha+gap, rect.Width, hb)
	return
}

func clampRatio(r float64) float64 { return mathx.Clamp(r, minRatio, maxRatio) }

// LeafRect reports the box of the leaf holding the given window, and
// whether it was found.
func (c *Cache) LeafRect(id winid.WindowID) (geom.Rect, bool) {
	n := findLeaf(c.root, id)
	if n == nil {
		return geom.Rect{}, false
	}
	return n.box, true
}

// SetLeafRect forces a leaf's recorded box, for refreshing it from
// backend-reported geometry. The nav package does not call it; it reads
// the boxes as the last layout pass left them.
func (c *Cache) SetLeafRect(id winid.WindowID, rect geom.Rect) {
	n := findLeaf(c.root, id)
	if n != nil {
		n.box = rect
	}
}

// LeafOrder returns the window ids in left-to-right / top-to-bottom leaf
// order (first subtree before second), used by geometric navigation to
// enumerate candidate leaves.
func (c *Cache) LeafOrder() []winid.WindowID {
	var out []winid.WindowID
	var walk func(*node)
	walk = func(n *node) {
		if n == nil {
			return
		}
		if n.isLeaf {
			out = append(out, n.window)
			return
		}
		walk(n.first)
		walk(n.second)
	}
	walk(c.root)
	return out
}

// Layout recursively lays out the cache's tree into rect, invoking set
// for every leaf except the currently-manipulated window (spec.md
// §4.4.2), and maintaining the box/boxSnapshot feedback-loop guard.
// manipulated is the window currently under pointer control, or 0 if none.
func (c *Cache) Layout(rect geom.Rect, manipulated winid.WindowID, set func(winid.WindowID, geom.Rect)) {
	c.layout(c.root, rect, manipulated, set)
}

func (c *Cache) layout(n *node, rect geom.Rect, manipulated winid.WindowID, set func(winid.WindowID, geom.Rect)) {
	if n == nil {
		return
	}
	if manipulated == 0 {
		n.box = rect
		n.boxSnapshot = nil
	} else if n.boxSnapshot == nil {
		snap := n.box
		n.boxSnapshot = &snap
		n.box = rect
	} else {
		n.box = rect
	}

	if n.isLeaf {
		if n.window != manipulated {
			set(n.window, rect)
		}
		return
	}
	gap := gapFor(c.cfg, n.splitVertically)
	rectA, rectB := splitRect(rect, n.splitVertically, n.splitRatio, gap)
	c.layout(n.first, rectA, manipulated, set)
	c.layout(n.second, rectB, manipulated, set)
}

// Balance resets every internal node's ratio to the configured default
// (spec.md §4.4.5).
func (c *Cache) Balance() {
	var walk func(*node)
	walk = func(n *node) {
		if n == nil || n.isLeaf {
			return
		}
		n.splitRatio = clampRatio(c.cfg.DefaultSplitRatio)
		walk(n.first)
		walk(n.second)
	}
	walk(c.root)
}

// ClearSnapshots drops every node's boxSnapshot, called when a
// pointer-resize session ends (spec.md §4.4.4).
func (c *Cache) ClearSnapshots() {
	var walk func(*node)
	walk = func(n *node) {
		if n == nil {
			return
		}
		n.boxSnapshot = nil
		walk(n.first)
		walk(n.second)
	}
	walk(c.root)
}

func findLeaf(n *node, id winid.WindowID) *node {
	if n == nil {
		return nil
	}
	if n.isLeaf {
		if n.window == id {
			return n
		}
		return nil
	}
	if f := findLeaf(n.first, id); f != nil {
		return f
	}
	return findLeaf(n.second, id)
}

// RootBox exposes the root node's box: the rect smart resize's
// edge-constraint check compares leaf boxes against (Resize reads it
// directly from the root node). It is the container's own rect, which is
// the workspace rect when Dwindle is the root layout.
func (c *Cache) RootBox() (geom.Rect, bool) {
	if c.root == nil {
		return geom.Rect{}, false
	}
	return c.root.box, true
}
