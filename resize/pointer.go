// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resize

import (
	"context"
	"math"
	"time"

	"github.com/barutsrb/hyprspace-go/geom"
	"github.com/barutsrb/hyprspace-go/wlayout"
	"github.com/barutsrb/hyprspace-go/wtree"
)

// debounceInterval is the ~60 Hz ceiling on accepted pointer-resize
// notifications (spec.md §4.4.4, §5).
const debounceInterval = 16 * time.Millisecond

// edgeDiffThresholdPx is the noise floor below which an edge movement is
// not considered an actual drag (spec.md §4.4.4: "pick the first whose
// absolute value exceeds 1 px").
const edgeDiffThresholdPx = 1.0

// PointerDriver turns a stream of backend-reported window-resized
// notifications into dwindle-cache resizes, enforcing the debounce and
// manipulated-flag lifecycle of spec.md §4.4.4 and §5. Everything here
// runs on the single UI event-loop goroutine per spec.md §5 ("no locks
// are used on the tree"); ctx is threaded through purely so a caller
// wrapping this in an asynchronous backend push (the actual suspension
// point, per §5) has something to cancel.
type PointerDriver struct {
	arena  *wtree.Arena
	engine *wlayout.Engine

	lastAccept time.Time
	// generation increases on every accepted event. A resize task reads
	// its own generation before doing any work and checks it again at
	// each point the spec calls out as a suspension boundary; a newer
	// event bumping the generation is how a superseding event cancels a
	// stale one in a single-threaded cooperative model (spec.md §5).
	generation int
}

// NewPointerDriver creates a driver bound to the engine's arena and
// layout engine (used to issue the post-drag refresh pass).
func NewPointerDriver(engine *wlayout.Engine) *PointerDriver {
	return &PointerDriver{arena: engine.Arena, engine: engine}
}

// edgeMovement is one of the four candidate edge diffs considered in the
// fixed order left, down, up, right (spec.md §4.4.4).
type edgeMovement struct {
	horizontal int // -1 = negative (left edge), +1 = positive (right edge), 0 = not this axis
	vertical   int
	diff       float64
}

// HandleResized is the WindowBackend.OnResized handler: it debounces,
// diffs the reported rect against the window's last-applied virtual
// rect, and — if an edge moved by more than a pixel — marks the window
// manipulated and forwards the delta to the containing dwindle cache,
// then re-lays-out the container so unmanipulated siblings follow. now
// is passed in rather than read from time.Now so tests can drive the
// debounce deterministically.
func (d *PointerDriver) HandleResized(ctx context.Context, ws *wtree.Workspace, target wtree.WindowID, current geom.Rect, now time.Time) {
	if !d.lastAccept.IsZero() && now.Sub(d.lastAccept) < debounceInterval {
		return
	}
	d.lastAccept = now
	d.generation++
	gen := d.generation

	node := d.arena.FindWindowNode(ws.Root, target)
	if node.IsZero() {
		return
	}
	last := d.arena.VirtualRect(node)

	// Fixed evaluation order left, down, up, right (spec.md §4.4.4).
	moves := [4]edgeMovement{
		{horizontal: -1, diff: last.Left() - current.Left()},
		{vertical: 1, diff: current.Bottom() - last.Bottom()},
		{vertical: -1, diff: last.Top() - current.Top()},
		{horizontal: 1, diff: current.Right() - last.Right()},
	}

	var chosen *edgeMovement
	for i := range moves {
		if math.Abs(moves[i].diff) > edgeDiffThresholdPx {
			chosen = &moves[i]
			break
		}
	}
	if chosen == nil {
		return
	}

	if ctx.Err() != nil || gen != d.generation {
		return
	}

	var dx, dy float64
	switch {
	case chosen.horizontal != 0:
		dx = math.Abs(chosen.diff)
		if chosen.horizontal < 0 {
			dx = -dx
		}
	case chosen.vertical != 0:
		dy = math.Abs(chosen.diff)
		if chosen.vertical < 0 {
			dy = -dy
		}
	}
	shouldGrow := chosen.diff > 0

	d.arena.SetManipulated(node, true)

	container := d.arena.Parent(node)
	cache := d.arena.EnsureDwindleCache(container, d.engine.Cfg.DwindleConfig())
	cache.Resize(target, dx, dy, shouldGrow, true, d.engine.Cfg.MouseSensitivity)

	if ctx.Err() != nil || gen != d.generation {
		return
	}
	d.engine.Layout(container, d.arena.LastRect(container))
}

// EndDrag implements spec.md §4.4.4's drag-end sequence: clear the
// manipulated flag, reset the debounce timer, clear every box snapshot
// in the container's dwindle cache, then issue a full refresh pass.
func (d *PointerDriver) EndDrag(ws *wtree.Workspace, target wtree.WindowID) {
	d.generation++
	node := d.arena.FindWindowNode(ws.Root, target)
	if node.IsZero() {
		return
	}
	d.arena.SetManipulated(node, false)
	d.lastAccept = time.Time{}

	container := d.arena.Parent(node)
	if cache := d.arena.DwindleCache(container); cache != nil {
		cache.ClearSnapshots()
	}
	d.engine.LayoutWorkspace(ws)
}
