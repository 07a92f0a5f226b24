// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wlayout

import (
	"github.com/barutsrb/hyprspace-go/geom"
	"github.com/barutsrb/hyprspace-go/wtree"
)

// layoutScroll implements spec.md §4.2 Scroll (carousel): a horizontal
// strip anchored on the most-recent child, centered with a 10% peek on
// either side at the default focusedWidthRatio, with every other child
// positioned contiguously outward from the anchor using each child's
// previously assigned width (or f*W if never laid out). No gaps; windows
// may extend outside rect, the backend is expected to clip.
func (e *Engine) layoutScroll(id wtree.NodeID, rect geom.Rect) {
	children := e.Arena.Children(id)
	n := len(children)
	if n == 0 {
		return
	}
	w := rect.Width
	f := e.Cfg.FocusedWidthRatio
	if f <= 0 {
		f = 0.8
	}
	anchor := e.Arena.MostRecentChild(id)
	if anchor < 0 || anchor >= n {
		anchor = 0
	}

	width := func(c wtree.NodeID) float64 {
		if v, ok := e.Arena.ScrollWidth(c); ok {
			return v
		}
		return f * w
	}

	anchorWidth := width(children[anchor])
	anchorX := rect.Left() + (w-f*w)/2

	rects := make([]geom.Rect, n)
	rects[anchor] = geom.R(anchorX, rect.Y, anchorWidth, rect.Height)

	right := anchorX + anchorWidth
	for i := anchor + 1; i < n; i++ {
		cw := width(children[i])
		rects[i] = geom.R(right, rect.Y, cw, rect.Height)
		right += cw
	}
	left := anchorX
	for i := anchor - 1; i >= 0; i-- {
		cw := width(children[i])
		left -= cw
		rects[i] = geom.R(left, rect.Y, cw, rect.Height)
	}

	for i, c := range children {
		e.Arena.SetScrollWidth(c, rects[i].Width)
		e.Layout(c, rects[i])
	}
}
