// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wtree

import (
	"log/slog"

	"github.com/barutsrb/hyprspace-go/dwindlecache"
	"github.com/barutsrb/hyprspace-go/geom"
	"github.com/barutsrb/hyprspace-go/mastercache"
)

// BindingToken records everything needed to restore or swap a node that
// was unbound from the tree: its parent, index, and pre-unbind weight.
type BindingToken struct {
	Parent NodeID
	Index  int
	Weight [2]float64
}

// Parent returns id's parent container, or the zero NodeID if id is
// unbound or is a workspace root. A container's root-ness is defined by
// its parent being a Workspace rather than another container.
func (a *Arena) Parent(id NodeID) NodeID {
	n := a.get(id)
	if n == nil {
		return NodeID{}
	}
	return n.parent
}

// OwnIndex returns id's position within its parent's children, or -1 if
// unbound.
func (a *Arena) OwnIndex(id NodeID) int {
	n := a.get(id)
	if n == nil || n.parent.IsZero() {
		return -1
	}
	return n.index
}

// Children returns a copy of the container's ordered children.
func (a *Arena) Children(id NodeID) []NodeID {
	n := a.get(id)
	if n == nil || n.kind != KindContainer {
		return nil
	}
	out := make([]NodeID, len(n.children))
	copy(out, n.children)
	return out
}

// Orientation returns the container's orientation.
func (a *Arena) Orientation(id NodeID) geom.Axis {
	n := a.get(id)
	if n == nil {
		return geom.AxisX
	}
	return n.orientation
}

// SetOrientation sets the container's orientation.
func (a *Arena) SetOrientation(id NodeID, axis geom.Axis) {
	if n := a.get(id); n != nil {
		n.orientation = axis
	}
}

// Layout returns the container's layout kind.
func (a *Arena) Layout(id NodeID) LayoutKind {
	n := a.get(id)
	if n == nil {
		return LayoutTiles
	}
	return n.layout
}

// SetLayout changes the container's layout kind. A cache is torn down
// the instant the layout changes away from dwindle/master; a new cache
// for the new kind is created lazily by the layout engine on first use
// (EnsureDwindleCache / EnsureMasterCache).
func (a *Arena) SetLayout(id NodeID, layout LayoutKind) {
	n := a.get(id)
	if n == nil {
		return
	}
	if n.layout != layout && n.layout.HasCache() {
		n.layoutState = LayoutState{}
	}
	n.layout = layout
	if layout == LayoutScroll {
		n.orientation = geom.AxisX // scroll is always horizontal
	}
}

// LastRect returns the rect a container was last laid out into, recorded
// by the layout engine on every pass. Used by the resize driver to
// recover a container's available extent without a backend round trip.
func (a *Arena) LastRect(id NodeID) geom.Rect {
	n := a.get(id)
	if n == nil {
		return geom.Rect{}
	}
	return n.lastRect
}

// SetLastRect records the rect a container was just laid out into.
func (a *Arena) SetLastRect(id NodeID, r geom.Rect) {
	if n := a.get(id); n != nil {
		n.lastRect = r
	}
}

// MostRecentChild returns the index of the most-recently-focused child,
// used by Accordion (peel anchor) and Scroll (carousel anchor).
func (a *Arena) MostRecentChild(id NodeID) int {
	n := a.get(id)
	if n == nil {
		return 0
	}
	if n.mostRecentChild >= len(n.children) {
		return len(n.children) - 1
	}
	return n.mostRecentChild
}

// SetMostRecentChild records which child index was last focused.
func (a *Arena) SetMostRecentChild(id NodeID, idx int) {
	if n := a.get(id); n != nil {
		n.mostRecentChild = idx
	}
}

// MarkMostRecentPath walks from id up to the workspace root, recording at
// each ancestor container which child sits on the path to id. Accordion's
// peel anchor and Scroll's carousel anchor both read this on their next
// layout pass, so focus changes must keep it current.
func (a *Arena) MarkMostRecentPath(id NodeID) {
	cur := id
	for {
		parent := a.Parent(cur)
		if parent.IsZero() {
			return
		}
		a.SetMostRecentChild(parent, a.OwnIndex(cur))
		cur = parent
	}
}

// EnsureDwindleCache lazily creates the container's dwindle cache if
// absent, on first layout of its owning container.
func (a *Arena) EnsureDwindleCache(id NodeID, cfg dwindlecache.Config) *dwindlecache.Cache {
	n := a.get(id)
	if n == nil {
		return nil
	}
	if n.layoutState.Dwindle == nil {
		n.layoutState.Dwindle = dwindlecache.New(cfg)
	} else {
		n.layoutState.Dwindle.SetConfig(cfg)
	}
	return n.layoutState.Dwindle
}

// DwindleCache returns the container's dwindle cache, or nil.
func (a *Arena) DwindleCache(id NodeID) *dwindlecache.Cache {
	n := a.get(id)
	if n == nil {
		return nil
	}
	return n.layoutState.Dwindle
}

// EnsureMasterCache lazily creates the container's master cache if absent.
func (a *Arena) EnsureMasterCache(id NodeID, defaultPercent float64, side mastercache.Side) *mastercache.Cache {
	n := a.get(id)
	if n == nil {
		return nil
	}
	if n.layoutState.Master == nil {
		n.layoutState.Master = mastercache.New(defaultPercent, side)
	}
	return n.layoutState.Master
}

// MasterCache returns the container's master cache, or nil.
func (a *Arena) MasterCache(id NodeID) *mastercache.Cache {
	n := a.get(id)
	if n == nil {
		return nil
	}
	return n.layoutState.Master
}

// Weight returns id's adaptive weight on the given axis within its parent.
func (a *Arena) Weight(id NodeID, axis geom.Axis) float64 {
	n := a.get(id)
	if n == nil {
		return 1
	}
	return n.weight[axis]
}

// SetWeight sets id's adaptive weight on the given axis.
func (a *Arena) SetWeight(id NodeID, axis geom.Axis, v float64) {
	if n := a.get(id); n != nil {
		n.weight[axis] = v
	}
}

// ScrollWidth returns the width a Scroll container previously assigned to
// id, and whether one has ever been assigned (spec.md §4.2 Scroll: "its
// previously assigned virtual width, else f·W if never laid out"). A
// freshly bound child's default tiling weight does not count as "laid
// out" even though it is a positive number.
func (a *Arena) ScrollWidth(id NodeID) (float64, bool) {
	n := a.get(id)
	if n == nil || !n.scrollWidthSet {
		return 0, false
	}
	return n.weight[geom.AxisX], true
}

// SetScrollWidth records the width a Scroll layout pass just assigned to
// id, marking it as laid out for future ScrollWidth calls.
func (a *Arena) SetScrollWidth(id NodeID, v float64) {
	if n := a.get(id); n != nil {
		n.weight[geom.AxisX] = v
		n.scrollWidthSet = true
	}
}

// ClearScrollWidth forgets id's previously assigned Scroll width, so its
// next layout pass falls back to focusedWidthRatio·W (spec.md §9: Scroll
// widths collapse lazily after balance-sizes rather than immediately).
func (a *Arena) ClearScrollWidth(id NodeID) {
	if n := a.get(id); n != nil {
		n.scrollWidthSet = false
	}
}

// Unbind removes id from its parent's children, returning a token that
// can restore it via Bind. The node itself is not freed. Unbinding a
// window clears its parent back-reference first, so re-parenting never
// leaves a node pointing at a stale parent mid-operation.
func (a *Arena) Unbind(id NodeID) BindingToken {
	n := a.get(id)
	if n == nil || n.parent.IsZero() {
		return BindingToken{}
	}
	parent := a.get(n.parent)
	tok := BindingToken{Parent: n.parent, Index: n.index, Weight: n.weight}
	if parent != nil {
		idx := n.index
		parent.children = append(parent.children[:idx], parent.children[idx+1:]...)
		for i := idx; i < len(parent.children); i++ {
			if c := a.get(parent.children[i]); c != nil {
				c.index = i
			}
		}
	}
	n.parent = NodeID{}
	n.index = -1
	return tok
}

// Bind inserts id as a child of parent at the given index with the given
// adaptive weight. If parent is the zero NodeID (or not a live
// container), Bind changes nothing, so a node unbound beforehand stays
// unbound.
// A newly inserted child with no explicit weight receives the average
// weight of its new siblings.
func (a *Arena) Bind(id, parent NodeID, index int, weight *[2]float64) {
	n := a.get(id)
	p := a.get(parent)
	if n == nil || p == nil || p.kind != KindContainer {
		return
	}
	if index < 0 || index > len(p.children) {
		index = len(p.children)
	}
	p.children = append(p.children, NodeID{})
	copy(p.children[index+1:], p.children[index:])
	p.children[index] = id
	for i := index + 1; i < len(p.children); i++ {
		if c := a.get(p.children[i]); c != nil {
			c.index = i
		}
	}
	n.parent = parent
	n.index = index
	if weight != nil {
		n.weight = *weight
	} else {
		n.weight = a.averageSiblingWeight(parent, index)
	}
}

func (a *Arena) averageSiblingWeight(parent NodeID, skipIndex int) [2]float64 {
	p := a.get(parent)
	if p == nil || len(p.children) <= 1 {
		return [2]float64{1, 1}
	}
	var sum [2]float64
	n := 0
	for i, c := range p.children {
		if i == skipIndex {
			continue
		}
		cn := a.get(c)
		if cn == nil {
			continue
		}
		sum[0] += cn.weight[0]
		sum[1] += cn.weight[1]
		n++
	}
	if n == 0 {
		return [2]float64{1, 1}
	}
	return [2]float64{sum[0] / float64(n), sum[1] / float64(n)}
}

// Swap exchanges the positions of x and y, preserving each binding's
// index and adaptive weight on the other's former slot. Used by both
// the general structural swap edit and promote-master.
func (a *Arena) Swap(x, y NodeID) {
	nx, ny := a.get(x), a.get(y)
	if nx == nil || ny == nil {
		return
	}
	// Within one parent, unbind the later sibling first so the earlier
	// one's recorded index is not shifted, and refill the lower slot first.
	if nx.parent == ny.parent && nx.index < ny.index {
		x, y = y, x
	}
	tokX := a.Unbind(x)
	tokY := a.Unbind(y)
	a.Bind(x, tokY.Parent, tokY.Index, &tokY.Weight)
	a.Bind(y, tokX.Parent, tokX.Index, &tokX.Weight)
}

// ClosestParent walks up from id until it finds a container whose
// orientation matches direction's axis and in which the node on the path
// has a sibling in that direction. Returns the ancestor container id and
// the own-index of the path node within it, or the zero NodeID if no
// such ancestor exists.
func (a *Arena) ClosestParent(id NodeID, dir geom.Direction, layoutFilter func(LayoutKind) bool) (NodeID, int) {
	axis := dir.Axis()
	positive := dir.Sign() > 0
	cur := id
	for {
		n := a.get(cur)
		if n == nil || n.parent.IsZero() {
			return NodeID{}, -1
		}
		parent := a.get(n.parent)
		if parent == nil {
			return NodeID{}, -1
		}
		if parent.orientation == axis && (layoutFilter == nil || layoutFilter(parent.layout)) {
			hasSibling := false
			if positive {
				hasSibling = n.index < len(parent.children)-1
			} else {
				hasSibling = n.index > 0
			}
			if hasSibling {
				return n.parent, n.index
			}
		}
		cur = n.parent
	}
}

// Normalize enforces invariant 2 (single-child non-root containers are
// flattened into their parent) and, if alternateOrientation is true, invariant
// 3 (nested containers with the same orientation alternate). It is
// recursive and idempotent.
func (a *Arena) Normalize(id NodeID, flattenSingleChild, alternateOrientation bool) {
	n := a.get(id)
	if n == nil || n.kind != KindContainer {
		return
	}
	for _, c := range n.children {
		a.Normalize(c, flattenSingleChild, alternateOrientation)
	}
	if flattenSingleChild && !n.parent.IsZero() && len(n.children) == 1 {
		a.flattenInto(id)
		return
	}
	if alternateOrientation {
		a.alternateChildOrientations(id)
	}
}

// flattenInto replaces a single-child non-root container with its one
// child, preserving the container's slot and weight.
func (a *Arena) flattenInto(id NodeID) {
	n := a.get(id)
	if n == nil || len(n.children) != 1 {
		return
	}
	only := n.children[0]
	tok := a.Unbind(id)
	a.Unbind(only)
	a.Bind(only, tok.Parent, tok.Index, &tok.Weight)
	a.Free(id)
}

func (a *Arena) alternateChildOrientations(id NodeID) {
	n := a.get(id)
	if n == nil {
		return
	}
	for _, c := range n.children {
		cn := a.get(c)
		if cn == nil || cn.kind != KindContainer {
			continue
		}
		if cn.orientation == n.orientation {
			cn.orientation = n.orientation.Other()
			slog.Debug("flipped nested container orientation to alternate", "container", c.String())
		}
	}
}
