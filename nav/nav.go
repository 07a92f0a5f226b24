// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nav implements spec.md §4.5 spatial focus navigation: a
// NavigationProvider selected per layout kind — tree-based ancestor walk
// for Tiles/Scroll/Master, geometric edge-adjacency search for Dwindle,
// and "no neighbour" for Accordion, which the source does not implement.
package nav

import (
	"github.com/barutsrb/hyprspace-go/geom"
	"github.com/barutsrb/hyprspace-go/internal/mathx"
	"github.com/barutsrb/hyprspace-go/wlayout"
	"github.com/barutsrb/hyprspace-go/wtree"
)

// Navigate finds the window that should receive focus when moving from
// source in the given cardinal direction, dispatching by the layout kind
// of source's containing container.
func Navigate(arena *wtree.Arena, cfg wlayout.Config, source wtree.NodeID, dir geom.Direction) (wtree.NodeID, bool) {
	parent := arena.Parent(source)
	if parent.IsZero() {
		return wtree.NodeID{}, false
	}
	switch arena.Layout(parent) {
	case wtree.LayoutTiles, wtree.LayoutScroll, wtree.LayoutMaster:
		return navigateTree(arena, source, dir)
	case wtree.LayoutDwindle:
		return navigateGeometric(arena, parent, source, dir, cfg.GapForDirection(dir))
	default:
		return wtree.NodeID{}, false
	}
}

// navigateTree implements the tree-based provider: walk up to the
// nearest ancestor with a sibling in the requested direction, then enter
// that sibling from the opposite face (spec.md §4.5).
func navigateTree(arena *wtree.Arena, source wtree.NodeID, dir geom.Direction) (wtree.NodeID, bool) {
	treeLayout := func(k wtree.LayoutKind) bool {
		return k == wtree.LayoutTiles || k == wtree.LayoutScroll || k == wtree.LayoutMaster
	}
	container, idx := arena.ClosestParent(source, dir, treeLayout)
	if container.IsZero() {
		return wtree.NodeID{}, false
	}
	siblings := arena.Children(container)
	targetIdx := idx + int(dir.Sign())
	if targetIdx < 0 || targetIdx >= len(siblings) {
		return wtree.NodeID{}, false
	}
	positive := dir.Sign() > 0
	return enterLeaf(arena, siblings[targetIdx], positive), true
}

// enterLeaf descends into id, always taking the first child when
// entering from a positive-direction move (snap to the leftmost/topmost
// leaf) or the last child otherwise, per spec.md §4.5 ("entering from
// the right -> snap to leftmost leaf").
func enterLeaf(arena *wtree.Arena, id wtree.NodeID, positive bool) wtree.NodeID {
	cur := id
	for arena.Kind(cur) == wtree.KindContainer {
		children := arena.Children(cur)
		if len(children) == 0 {
			break
		}
		if positive {
			cur = children[0]
		} else {
			cur = children[len(children)-1]
		}
	}
	return cur
}

// navigateGeometric implements the Dwindle provider: candidate leaves
// edge-adjacent to source along dir, ranked by perpendicular overlap
// (spec.md §4.5). The backend-refresh step ("syncGeometryFromMacOS") is
// represented by reading the cache's already-current per-leaf boxes,
// which the layout engine keeps in sync on every refresh pass; a real
// backend integration would refresh them here first.
func navigateGeometric(arena *wtree.Arena, container, source wtree.NodeID, dir geom.Direction, innerGap float64) (wtree.NodeID, bool) {
	cache := arena.DwindleCache(container)
	if cache == nil {
		return wtree.NodeID{}, false
	}
	sourceWin := arena.WindowIDOf(source)
	sourceBox, ok := cache.LeafRect(sourceWin)
	if !ok {
		return wtree.NodeID{}, false
	}

	perp := dir.Axis().Other()
	bestOverlap := -1.0
	var best wtree.NodeID

	for _, candWin := range cache.LeafOrder() {
		if candWin == sourceWin {
			continue
		}
		candBox, ok := cache.LeafRect(candWin)
		if !ok {
			continue
		}
		if !edgeTouches(sourceBox, candBox, dir, innerGap) {
			continue
		}
		overlap := perpendicularOverlap(sourceBox, candBox, perp)
		minExtent := sourceBox.Extent(perp)
		if candBox.Extent(perp) < minExtent {
			minExtent = candBox.Extent(perp)
		}
		if overlap < 0.1*minExtent {
			continue
		}
		if overlap > bestOverlap {
			bestOverlap = overlap
			best = arena.FindWindowNode(container, candWin)
		}
	}
	if best.IsZero() {
		return wtree.NodeID{}, false
	}
	return best, true
}

func edgeTouches(source, candidate geom.Rect, dir geom.Direction, innerGap float64) bool {
	var sourceFace, candidateOppositeFace float64
	switch dir {
	case geom.DirRight:
		sourceFace, candidateOppositeFace = source.Right(), candidate.Left()
	case geom.DirLeft:
		sourceFace, candidateOppositeFace = source.Left(), candidate.Right()
	case geom.DirDown:
		sourceFace, candidateOppositeFace = source.Bottom(), candidate.Top()
	case geom.DirUp:
		sourceFace, candidateOppositeFace = source.Top(), candidate.Bottom()
	}
	return mathx.Abs(sourceFace-candidateOppositeFace) < innerGap+5
}

func perpendicularOverlap(a, b geom.Rect, axis geom.Axis) float64 {
	var aStart, aEnd, bStart, bEnd float64
	if axis == geom.AxisX {
		aStart, aEnd = a.Left(), a.Right()
		bStart, bEnd = b.Left(), b.Right()
	} else {
		aStart, aEnd = a.Top(), a.Bottom()
		bStart, bEnd = b.Top(), b.Bottom()
	}
	start := aStart
	if bStart > start {
		start = bStart
	}
	end := aEnd
	if bEnd < end {
		end = bEnd
	}
	return end - start
}
