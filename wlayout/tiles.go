// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wlayout

import (
	"github.com/barutsrb/hyprspace-go/geom"
	"github.com/barutsrb/hyprspace-go/wtree"
)

// layoutTiles implements spec.md §4.2 Tiles: distribute R proportionally
// to each child's weight along the container's orientation, with a
// deficit-spread correction, inner-gap seams between children, and the
// full perpendicular extent for every child.
func (e *Engine) layoutTiles(id wtree.NodeID, rect geom.Rect) {
	children := e.Arena.Children(id)
	if len(children) == 0 {
		return
	}
	axis := e.Arena.Orientation(id)
	gap := e.Cfg.gap(axis)

	weights := make([]float64, len(children))
	for i, c := range children {
		weights[i] = e.Arena.Weight(c, axis)
	}
	extents, newWeights := distribute(weights, rect.Extent(axis), gap)

	offset := rect.Origin(axis)
	for i, c := range children {
		e.Arena.SetWeight(c, axis, newWeights[i])
		childRect := rect.WithOrigin(axis, offset).WithExtent(axis, extents[i])
		e.Layout(c, childRect)
		offset += extents[i] + gap
	}
}
