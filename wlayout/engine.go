// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wlayout

import (
	"math"

	"github.com/barutsrb/hyprspace-go/geom"
	"github.com/barutsrb/hyprspace-go/wtree"
)

// Engine runs layout passes over a wtree.Arena, writing computed rects
// back onto window nodes (spec.md §2: "a refresh pass walks the active
// workspace through C3 to produce target rectangles").
type Engine struct {
	Arena *wtree.Arena
	Cfg   Config
}

// New creates a layout engine bound to the given arena and configuration.
func New(arena *wtree.Arena, cfg Config) *Engine {
	return &Engine{Arena: arena, Cfg: cfg}
}

// LayoutWorkspace runs a full refresh pass over a workspace's tree,
// skipping the currently-manipulated window wherever it occurs.
func (e *Engine) LayoutWorkspace(ws *wtree.Workspace) {
	e.Layout(ws.Root, ws.Rect())
}

// Layout lays out the subtree rooted at id into rect, dispatching by the
// node's kind and, for containers, its Layout field.
func (e *Engine) Layout(id wtree.NodeID, rect geom.Rect) {
	if e.Arena.Kind(id) == wtree.KindWindow {
		e.setWindowRect(id, rect)
		return
	}
	e.Arena.SetLastRect(id, rect)
	switch e.Arena.Layout(id) {
	case wtree.LayoutTiles:
		e.layoutTiles(id, rect)
	case wtree.LayoutAccordion:
		e.layoutAccordion(id, rect)
	case wtree.LayoutDwindle:
		e.layoutDwindle(id, rect)
	case wtree.LayoutScroll:
		e.layoutScroll(id, rect)
	case wtree.LayoutMaster:
		e.layoutMaster(id, rect)
	}
}

// setWindowRect records a window's computed rect, unless it is currently
// pointer-manipulated (spec.md §3 invariant 7, §4.4.2).
func (e *Engine) setWindowRect(id wtree.NodeID, rect geom.Rect) {
	if e.Arena.Manipulated(id) {
		return
	}
	e.Arena.SetVirtualRect(id, rect)
	e.Arena.SetPhysicalRect(id, rect)
}

// distribute splits extent into len(weights) parts along one axis,
// spreading any deficit between the weight sum and the available extent
// (extent minus interior gaps) equally across children before assigning
// widths (spec.md §4.2 Tiles: "Deficit in the weight sum ... is spread
// equally across children before distribution"). Returns both the final
// per-child extents and the new weights to persist (which become the
// extents themselves, keeping the sum-of-weights invariant self-healing
// under future passes, spec.md §8).
func distribute(weights []float64, extent, gap float64) (extents, newWeights []float64) {
	n := len(weights)
	if n == 0 {
		return nil, nil
	}
	available := extent - gap*float64(n-1)
	if available < 0 {
		available = 0
	}
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	deficitPerChild := 0.0
	if n > 0 {
		deficitPerChild = (available - sum) / float64(n)
	}
	adjusted := make([]float64, n)
	for i, w := range weights {
		adjusted[i] = w + deficitPerChild
		if adjusted[i] < 0 {
			adjusted[i] = 0
		}
	}
	// Round via cumulative sums so the total exactly matches `available`
	// regardless of individual rounding error (spec.md §8 scenario 2).
	extents = make([]float64, n)
	newWeights = make([]float64, n)
	cum := 0.0
	prevRounded := 0.0
	for i, a := range adjusted {
		cum += a
		rounded := math.Round(cum)
		extents[i] = rounded - prevRounded
		newWeights[i] = extents[i]
		prevRounded = rounded
	}
	return extents, newWeights
}
