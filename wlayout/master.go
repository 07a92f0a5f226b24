// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wlayout

import (
	"github.com/barutsrb/hyprspace-go/geom"
	"github.com/barutsrb/hyprspace-go/mastercache"
	"github.com/barutsrb/hyprspace-go/wtree"
)

// layoutMaster implements spec.md §4.2 Master: the first child is the
// master, the rest form a vertically-split stack. A single child takes
// the full rect. The master/stack seam position is driven by the
// container's persistent mastercache.Cache (percent + side); the stack
// children split the remaining height using the same deficit-spread
// weight distribution as Tiles.
func (e *Engine) layoutMaster(id wtree.NodeID, rect geom.Rect) {
	children := e.Arena.Children(id)
	n := len(children)
	if n == 0 {
		return
	}
	if n == 1 {
		e.Layout(children[0], rect)
		return
	}

	cache := e.Arena.EnsureMasterCache(id, e.Cfg.MasterDefaultPercent, masterSideDefault)
	gap := e.Cfg.gap(geom.AxisX)
	masterWidth, stackWidth := geom.SplitSeam(rect.Width, gap, cache.Percent, 1-cache.Percent)

	var masterRect, stackRect geom.Rect
	if cache.Side == mastercache.SideLeft {
		masterRect = geom.R(rect.X, rect.Y, masterWidth, rect.Height)
		stackRect = geom.R(rect.X+masterWidth+gap, rect.Y, stackWidth, rect.Height)
	} else {
		stackRect = geom.R(rect.X, rect.Y, stackWidth, rect.Height)
		masterRect = geom.R(rect.X+stackWidth+gap, rect.Y, masterWidth, rect.Height)
	}
	e.Layout(children[0], masterRect)

	stack := children[1:]
	weights := make([]float64, len(stack))
	for i, c := range stack {
		weights[i] = e.Arena.Weight(c, geom.AxisY)
	}
	vgap := e.Cfg.gap(geom.AxisY)
	extents, newWeights := distribute(weights, stackRect.Height, vgap)

	offset := stackRect.Y
	for i, c := range stack {
		e.Arena.SetWeight(c, geom.AxisY, newWeights[i])
		childRect := geom.R(stackRect.X, offset, stackRect.Width, extents[i])
		e.Layout(c, childRect)
		offset += extents[i] + vgap
	}
}
