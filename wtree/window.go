// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wtree

import "github.com/barutsrb/hyprspace-go/geom"

// WindowIDOf returns the backend window id a leaf node represents.
func (a *Arena) WindowIDOf(id NodeID) WindowID {
	n := a.get(id)
	if n == nil {
		return 0
	}
	return n.windowID
}

// AppOf returns the owning application id of a window node.
func (a *Arena) AppOf(id NodeID) AppID {
	n := a.get(id)
	if n == nil {
		return ""
	}
	return n.app
}

// Fullscreen reports whether the window is currently fullscreened.
func (a *Arena) Fullscreen(id NodeID) bool {
	n := a.get(id)
	return n != nil && n.fullscreen
}

// SetFullscreen sets the window's fullscreen flag.
func (a *Arena) SetFullscreen(id NodeID, v bool) {
	if n := a.get(id); n != nil {
		n.fullscreen = v
	}
}

// PhysicalRect returns the last rect applied to the backend for a window.
func (a *Arena) PhysicalRect(id NodeID) geom.Rect {
	n := a.get(id)
	if n == nil {
		return geom.Rect{}
	}
	return n.physicalRect
}

// SetPhysicalRect records the rect most recently pushed to the backend.
func (a *Arena) SetPhysicalRect(id NodeID, r geom.Rect) {
	if n := a.get(id); n != nil {
		n.physicalRect = r
	}
}

// VirtualRect returns the last gapless logical rect computed by a layout
// pass for a window.
func (a *Arena) VirtualRect(id NodeID) geom.Rect {
	n := a.get(id)
	if n == nil {
		return geom.Rect{}
	}
	return n.virtualRect
}

// SetVirtualRect records the gapless logical rect most recently computed
// for a window.
func (a *Arena) SetVirtualRect(id NodeID, r geom.Rect) {
	if n := a.get(id); n != nil {
		n.virtualRect = r
	}
}

// Manipulated reports whether the window is currently flagged as being
// manipulated by the pointer.
func (a *Arena) Manipulated(id NodeID) bool {
	n := a.get(id)
	return n != nil && n.manipulated
}

// SetManipulated sets or clears the window's pointer-manipulated flag.
func (a *Arena) SetManipulated(id NodeID, v bool) {
	if n := a.get(id); n != nil {
		n.manipulated = v
	}
}

// AnyManipulated scans the arena for a window flagged as
// pointer-manipulated; at most one window can carry the flag at a time.
// Returns the zero WindowID and false if none is set.
func (a *Arena) AnyManipulated() (WindowID, bool) {
	for i := range a.nodes {
		n := &a.nodes[i]
		if n.alive && n.kind == KindWindow && n.manipulated {
			return n.windowID, true
		}
	}
	return 0, false
}

// WindowLeaves returns the ordered list of window ids reachable as leaves
// under container id, in child order (used to feed the dwindle cache's
// Rebuild and to compute Tiles/Accordion/Scroll/Master layouts).
func (a *Arena) WindowLeaves(id NodeID) []WindowID {
	var out []WindowID
	var walk func(NodeID)
	walk = func(cur NodeID) {
		n := a.get(cur)
		if n == nil {
			return
		}
		if n.kind == KindWindow {
			out = append(out, n.windowID)
			return
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(id)
	return out
}

// FindWindowNode returns the node id of the leaf window with the given
// backend id within the subtree rooted at root, or the zero NodeID.
func (a *Arena) FindWindowNode(root NodeID, w WindowID) NodeID {
	n := a.get(root)
	if n == nil {
		return NodeID{}
	}
	if n.kind == KindWindow {
		if n.windowID == w {
			return root
		}
		return NodeID{}
	}
	for _, c := range n.children {
		if found := a.FindWindowNode(c, w); !found.IsZero() {
			return found
		}
	}
	return NodeID{}
}
