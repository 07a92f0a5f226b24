// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dwindlecache

import (
	"github.com/barutsrb/hyprspace-go/internal/mathx"
	"github.com/barutsrb/hyprspace-go/winid"
)

// controlling is an ancestor split that determines the sign of a ratio
// update for a resize along one axis (spec.md §4.4.3's "controlling
// split").
type controlling struct {
	parent       *node
	isFirstChild bool
}

// Resize applies a keyboard/CLI or pointer-driven resize to the window's
// leaf (spec.md §4.4.3). delta carries the raw pixel deltas on each axis;
// a zero component means that axis is not being resized. The sign of a
// non-zero component doubles as the "edge" the resize is driven from
// (positive = the leaf's trailing/right-or-bottom edge moved outward,
// matching the pointer-driven diff convention of §4.4.4). smart selects
// smart mode (edge-constraint detection + inner compensation) vs standard
// mode (outer split only). Returns true if any axis was actually resized.
func (c *Cache) Resize(target winid.WindowID, deltaX, deltaY float64, shouldGrow bool, smart bool, sensitivity float64) bool {
	if c.root == nil {
		return false
	}
	leaf := findLeaf(c.root, target)
	if leaf == nil {
		return false
	}

	dx, dy := deltaX, deltaY
	if smart {
		rootBox := c.root.box
		leftConstrained := mathx.Abs(leaf.box.Left()-rootBox.Left()) < edgeConstraintPx
		rightConstrained := mathx.Abs(rootBox.Right()-leaf.box.Right()) < edgeConstraintPx
		topConstrained := mathx.Abs(leaf.box.Top()-rootBox.Top()) < edgeConstraintPx
		bottomConstrained := mathx.Abs(rootBox.Bottom()-leaf.box.Bottom()) < edgeConstraintPx
		if leftConstrained && rightConstrained {
			dx = 0
		}
		if topConstrained && bottomConstrained {
			dy = 0
		}
	}
	if dx == 0 && dy == 0 {
		return false
	}

	sens := sensitivity
	if sens <= 0 {
		sens = c.cfg.MouseSensitivity
	}
	if sens <= 0 {
		sens = 1
	}

	applied := false
	if dx != 0 {
		if c.resizeAxis(leaf, true, dx, shouldGrow, smart, sens) {
			applied = true
		}
	}
	if dy != 0 {
		if c.resizeAxis(leaf, false, dy, shouldGrow, smart, sens) {
			applied = true
		}
	}
	return applied
}

// resizeAxis resizes along one axis (vertical==true means the splits
// being adjusted are the width-dividing, splitVertically==true ones).
func (c *Cache) resizeAxis(leaf *node, vertical bool, delta float64, shouldGrow, smart bool, sensitivity float64) bool {
	wantFirstOuter := delta > 0
	outer := findControlling(leaf, vertical, wantFirstOuter)
	if outer == nil {
		return false
	}
	c.applyDelta(outer, delta, shouldGrow, sensitivity)
	if smart {
		if inner := findControlling(leaf, vertical, !wantFirstOuter); inner != nil {
			c.applyDelta(inner, delta, shouldGrow, sensitivity)
		}
	}
	return true
}

// findControlling walks up from leaf looking for the nearest ancestor
// split whose orientation is `vertical` and whose child (on the path to
// leaf) is the first child iff wantFirstChild (spec.md §4.4.3: "first
// child if edge is positive, last child if negative" for outer, the
// opposite side for inner).
func findControlling(leaf *node, vertical bool, wantFirstChild bool) *controlling {
	cur := leaf
	for cur.parent != nil {
		p := cur.parent
		if p.splitVertically == vertical {
			isFirst := p.first == cur
			if isFirst == wantFirstChild {
				return &controlling{parent: p, isFirstChild: isFirst}
			}
		}
		cur = p
	}
	return nil
}

// applyDelta applies the ratio-update formula of spec.md §4.4.3's "Ratio
// application" to one controlling split.
func (c *Cache) applyDelta(ctrl *controlling, deltaPixels float64, shouldGrow bool, sensitivity float64) {
	containerSize := ctrl.parent.box.Width
	if ctrl.parent.splitVertically {
		containerSize = ctrl.parent.box.Width
	} else {
		containerSize = ctrl.parent.box.Height
	}
	if ctrl.parent.boxSnapshot != nil {
		if ctrl.parent.splitVertically {
			containerSize = ctrl.parent.boxSnapshot.Width
		} else {
			containerSize = ctrl.parent.boxSnapshot.Height
		}
	}
	if containerSize <= 0 {
		return
	}
	orientationSign := 1.0
	if !ctrl.isFirstChild {
		orientationSign = -1.0
	}
	growthSign := 1.0
	if !shouldGrow {
		growthSign = -1.0
	}
	dRatio := orientationSign * growthSign * (mathx.Abs(deltaPixels) * sensitivity) / containerSize
	ctrl.parent.splitRatio = clampRatio(ctrl.parent.splitRatio + dRatio)
}
