// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wlayout

import (
	"github.com/barutsrb/hyprspace-go/geom"
	"github.com/barutsrb/hyprspace-go/wtree"
)

// layoutAccordion implements spec.md §4.2 Accordion: every child gets the
// full rect peeled in from the leading/trailing edge along the
// container's orientation, by an amount that depends on the child's
// position relative to the most-recent (focused) child:
//   - the most-recent child itself is peeled on neither edge;
//   - the absolute first/last child is only ever peeled on its interior
//     edge (the one facing the rest of the stack), never the outer edge;
//   - the two children directly neighboring the most-recent child are
//     peeled double on the side facing it;
//   - every other child is peeled by one accordionPadding on both edges.
func (e *Engine) layoutAccordion(id wtree.NodeID, rect geom.Rect) {
	children := e.Arena.Children(id)
	n := len(children)
	if n == 0 {
		return
	}
	axis := e.Arena.Orientation(id)
	padding := e.Cfg.AccordionPadding
	recent := e.Arena.MostRecentChild(id)

	for i, c := range children {
		leading, trailing := padding, padding
		if i == 0 {
			leading = 0
		}
		if i == n-1 {
			trailing = 0
		}
		switch {
		case i == recent:
			leading, trailing = 0, 0
		case i == recent-1:
			trailing *= 2
		case i == recent+1:
			leading *= 2
		}
		childRect := peelAxis(rect, axis, leading, trailing)
		e.Layout(c, childRect)
	}
}

// peelAxis insets rect by `leading`/`trailing` along axis (X: left/right,
// Y: top/bottom), leaving the perpendicular axis untouched.
func peelAxis(rect geom.Rect, axis geom.Axis, leading, trailing float64) geom.Rect {
	if axis == geom.AxisX {
		return rect.Inset(leading, 0, trailing, 0)
	}
	return rect.Inset(0, leading, 0, trailing)
}
