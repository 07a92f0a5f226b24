// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wtree

import (
	"github.com/barutsrb/hyprspace-go/dwindlecache"
	"github.com/barutsrb/hyprspace-go/geom"
	"github.com/barutsrb/hyprspace-go/mastercache"
)

// LayoutState is the discriminated union of auxiliary per-layout cache
// state attached to a container: a generic typed key/value map would let
// a container hold caches for two layout kinds at once, so the union is
// stored directly instead. At most one of Dwindle or Master is non-nil:
// a cache exists only while the container's Layout is Dwindle or Master
// and has been created for it; both are nil for the other layouts.
type LayoutState struct {
	Dwindle *dwindlecache.Cache
	Master  *mastercache.Cache
}

// node is the arena-resident storage for both containers and windows.
// Only the fields relevant to node.kind are meaningful; this mirrors a
// tagged union without the overhead of an interface per node.
type node struct {
	id    NodeID
	alive bool
	kind  Kind

	parent NodeID // zero value => parent is the owning Workspace (defines root-ness)
	index  int
	weight [2]float64 // adaptive weight per axis (geom.AxisX, geom.AxisY)
	// scrollWidthSet distinguishes "weight[X] holds a Scroll-assigned pixel
	// width" from the default tiling weight a freshly bound child receives
	// (spec.md §4.2 Scroll: "f·W if never laid out" — a plain weight>0
	// check can't tell those apart since every new child starts at weight 1).
	scrollWidthSet bool

	// container fields
	children        []NodeID
	orientation     geom.Axis
	layout          LayoutKind
	layoutState     LayoutState
	mostRecentChild int // index of most-recently-focused child (Accordion/Scroll anchor)
	lastRect        geom.Rect // rect the container was last laid out into; used by resize to recover Wa

	// window fields
	windowID     WindowID
	app          AppID
	fullscreen   bool
	physicalRect geom.Rect
	virtualRect  geom.Rect
	manipulated  bool
}

// Arena owns every container and window node for one engine instance.
// A single Arena may back multiple Workspaces.
type Arena struct {
	nodes    []node
	freeList []uint32
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

func (a *Arena) alloc() NodeID {
	if n := len(a.freeList); n > 0 {
		idx := a.freeList[n-1]
		a.freeList = a.freeList[:n-1]
		a.nodes[idx].gen()
		a.nodes[idx].alive = true
		return a.nodes[idx].id
	}
	idx := uint32(len(a.nodes))
	a.nodes = append(a.nodes, node{id: NodeID{index: idx, gen: 1}, alive: true})
	return a.nodes[idx].id
}

// gen bumps the node's generation in place (used on reuse from freeList).
func (n *node) gen() {
	n.id.gen++
	if n.id.gen == 0 {
		n.id.gen = 1
	}
}

func (a *Arena) get(id NodeID) *node {
	if id.IsZero() || int(id.index) >= len(a.nodes) {
		return nil
	}
	n := &a.nodes[id.index]
	if n.id.gen != id.gen || !n.alive {
		return nil
	}
	return n
}

// NewContainer allocates a new, unbound container node.
func (a *Arena) NewContainer(orientation geom.Axis, layout LayoutKind) NodeID {
	id := a.alloc()
	n := a.get(id)
	*n = node{id: id, alive: true, kind: KindContainer, orientation: orientation, layout: layout}
	return id
}

// NewWindow allocates a new, unbound window node.
func (a *Arena) NewWindow(w WindowID, app AppID) NodeID {
	id := a.alloc()
	n := a.get(id)
	*n = node{id: id, alive: true, kind: KindWindow, windowID: w, app: app}
	return id
}

// Free removes a node from the arena entirely. The node must already be
// unbound (have no parent) and, if a container, have no children.
func (a *Arena) Free(id NodeID) {
	n := a.get(id)
	if n == nil {
		return
	}
	n.alive = false
	n.children = nil
	n.layoutState = LayoutState{}
	a.freeList = append(a.freeList, n.id.index)
}

// Kind returns the node's kind.
func (a *Arena) Kind(id NodeID) Kind {
	n := a.get(id)
	if n == nil {
		return KindWindow
	}
	return n.kind
}

// Alive reports whether id currently refers to a live node.
func (a *Arena) Alive(id NodeID) bool { return a.get(id) != nil }
