// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wlayout

import (
	"github.com/barutsrb/hyprspace-go/geom"
	"github.com/barutsrb/hyprspace-go/winid"
	"github.com/barutsrb/hyprspace-go/wtree"
)

// layoutDwindle implements spec.md §4.4: a single-child container
// short-circuits to the full rect; otherwise the persistent dwindle
// cache is rebuilt (iff its recorded window-id set is stale and no
// window anywhere is pointer-manipulated) and then run through its own
// recursive layout pass.
func (e *Engine) layoutDwindle(id wtree.NodeID, rect geom.Rect) {
	windows := e.Arena.WindowLeaves(id)
	if len(windows) == 0 {
		return
	}
	if len(windows) == 1 {
		e.layoutSingleLeaf(id, windows[0], rect)
		return
	}

	cache := e.Arena.EnsureDwindleCache(id, e.Cfg.dwindleConfig())
	manipulated, anyManipulated := e.Arena.AnyManipulated()
	if cache.NeedsRebuild(windows) && !anyManipulated {
		cache.Rebuild(windows, rect)
	}
	if !anyManipulated {
		manipulated = 0
	}
	cache.Layout(rect, manipulated, func(w winid.WindowID, r geom.Rect) {
		e.setWindowRectByID(id, w, r)
	})
}

// layoutSingleLeaf finds the single window leaf under a container
// (possibly nested one level, e.g. an empty dwindle awaiting its second
// window) and assigns it the full rect directly.
func (e *Engine) layoutSingleLeaf(containerID wtree.NodeID, w winid.WindowID, rect geom.Rect) {
	e.setWindowRectByID(containerID, w, rect)
}

// setWindowRectByID locates the leaf window node for w within container
// and applies rect to it via the usual manipulated-skip path.
func (e *Engine) setWindowRectByID(container wtree.NodeID, w winid.WindowID, rect geom.Rect) {
	nodeID := e.Arena.FindWindowNode(container, w)
	if nodeID.IsZero() {
		return
	}
	e.setWindowRect(nodeID, rect)
}
