// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resize implements spec.md §4.3 discrete resize: a target
// window, a dimension, and a pixel amount dispatched by the containing
// container's layout kind into either the dwindle cache's ratio update
// (§4.4.3), the master cache's percent update, or a direct weight edit
// for Tiles/Scroll.
package resize

import (
	"github.com/barutsrb/hyprspace-go/geom"
	"github.com/barutsrb/hyprspace-go/internal/errs"
	"github.com/barutsrb/hyprspace-go/wlayout"
	"github.com/barutsrb/hyprspace-go/wtree"
)

// Dimension selects which axis (or axes) a discrete resize command
// targets (spec.md §6 `resize` command).
type Dimension int

const (
	DimWidth Dimension = iota
	DimHeight
	DimSmart
	DimSmartOpposite
)

// Op is the amount's arithmetic form: an absolute target, or a relative
// pixel delta.
type Op int

const (
	OpSet Op = iota
	OpAdd
	OpSubtract
)

// Amount is the `{set v|add v|subtract v}` argument of a resize command.
type Amount struct {
	Op    Op
	Value float64
}

const minWeight = 1.0

// floorWeight prevents a weight edit from collapsing a child to zero or
// negative, which would make it permanently invisible to distribute().
func floorWeight(v float64) float64 {
	if v < minWeight {
		return minWeight
	}
	return v
}

// Apply dispatches a discrete resize of target by the layout kind of its
// containing container. target must already be a bound window node
// (floating/no-focus preconditions are the command layer's concern).
func Apply(arena *wtree.Arena, cfg wlayout.Config, target wtree.NodeID, dim Dimension, amt Amount) errs.Result {
	parent := arena.Parent(target)
	if parent.IsZero() {
		return errs.Fail("no-window-focused")
	}
	switch arena.Layout(parent) {
	case wtree.LayoutDwindle:
		return resizeDwindle(arena, cfg, parent, target, dim, amt)
	case wtree.LayoutMaster:
		return resizeMaster(arena, cfg, parent, dim, amt)
	case wtree.LayoutTiles:
		return resizeWeighted(arena, target, dim, amt, true)
	case wtree.LayoutScroll:
		return resizeWeighted(arena, target, dim, amt, false)
	default:
		return errs.Fail("non-tiling")
	}
}

// resizeDwindle maps dimension to a 2-vector pixel delta and forwards to
// the container's persistent dwindle cache (spec.md §4.3 "Dwindle").
func resizeDwindle(arena *wtree.Arena, cfg wlayout.Config, container, target wtree.NodeID, dim Dimension, amt Amount) errs.Result {
	cache := arena.EnsureDwindleCache(container, cfg.DwindleConfig())
	winID := arena.WindowIDOf(target)

	v := amt.Value
	var dx, dy float64
	switch dim {
	case DimWidth:
		dx = v
	case DimHeight:
		dy = v
	case DimSmart:
		dx, dy = v, v
	case DimSmartOpposite:
		dx, dy = v, -v
	}
	shouldGrow := amt.Op != OpSubtract

	sensitivity := cfg.MouseSensitivity
	cache.Resize(winID, dx, dy, shouldGrow, true, sensitivity)
	return errs.Ok()
}

// resizeMaster converts a pixel delta into a percent delta on the
// container's master cache (spec.md §4.3 "Master"). Only width and smart
// are valid dimensions; height is user-input-rejected.
func resizeMaster(arena *wtree.Arena, cfg wlayout.Config, container wtree.NodeID, dim Dimension, amt Amount) errs.Result {
	if dim != DimWidth && dim != DimSmart {
		return errs.Fail("master-height-unsupported")
	}
	cache := arena.EnsureMasterCache(container, cfg.MasterDefaultPercent, wlayout.MasterSideDefault())
	gap := cfg.InnerGapHorizontal
	available := arena.LastRect(container).Width - gap
	if available <= 0 {
		return errs.Ok()
	}
	pixels := amt.Value
	if amt.Op == OpSubtract {
		pixels = -pixels
	}
	if amt.Op == OpSet {
		currentWidth := cache.Percent * available
		pixels = amt.Value - currentWidth
	}
	cache.Resize(pixels, available)
	return errs.Ok()
}

// resizeWeighted edits a window's adaptive weight directly, walking up
// to the nearest ancestor container whose orientation matches the
// resolved axis (spec.md §4.3 "Tiles / Scroll"). For Tiles the negated
// delta is spread equally across the oriented node's other children to
// preserve the sum-of-weights invariant; Scroll weights are absolute and
// are never redistributed.
func resizeWeighted(arena *wtree.Arena, target wtree.NodeID, dim Dimension, amt Amount, redistribute bool) errs.Result {
	axis := resolveAxis(arena, target, dim)
	container, pathChild := ancestorWithOrientation(arena, target, axis)
	if container.IsZero() {
		return errs.Fail("no-window-focused")
	}

	current := arena.Weight(pathChild, axis)
	var delta float64
	switch amt.Op {
	case OpSet:
		delta = amt.Value - current
	case OpAdd:
		delta = amt.Value
	case OpSubtract:
		delta = -amt.Value
	}
	newWeight := floorWeight(current + delta)
	if !redistribute && axis == geom.AxisX {
		// Scroll widths are absolute pixels tracked via ScrollWidth, not the
		// generic tiling weight (spec.md §4.2 Scroll), so a direct resize
		// must mark the child as laid out the same way a layout pass does.
		arena.SetScrollWidth(pathChild, newWeight)
	} else {
		arena.SetWeight(pathChild, axis, newWeight)
	}

	if redistribute {
		siblings := arena.Children(container)
		var others []wtree.NodeID
		for _, s := range siblings {
			if s != pathChild {
				others = append(others, s)
			}
		}
		if len(others) > 0 {
			share := -delta / float64(len(others))
			for _, s := range others {
				arena.SetWeight(s, axis, floorWeight(arena.Weight(s, axis)+share))
			}
		}
	}
	return errs.Ok()
}

// resolveAxis implements the dimension->axis table for Tiles/Scroll:
// width->X, height->Y, smart->the immediate container's own orientation,
// smart-opposite->its perpendicular.
func resolveAxis(arena *wtree.Arena, target wtree.NodeID, dim Dimension) geom.Axis {
	switch dim {
	case DimWidth:
		return geom.AxisX
	case DimHeight:
		return geom.AxisY
	default:
		own := arena.Orientation(arena.Parent(target))
		if dim == DimSmartOpposite {
			return own.Other()
		}
		return own
	}
}

// ancestorWithOrientation walks up from id until it finds a container
// whose orientation equals axis, returning that container and the
// id's ancestor-or-self child that sits directly inside it.
func ancestorWithOrientation(arena *wtree.Arena, id wtree.NodeID, axis geom.Axis) (container, pathChild wtree.NodeID) {
	cur := id
	for {
		parent := arena.Parent(cur)
		if parent.IsZero() {
			return wtree.NodeID{}, wtree.NodeID{}
		}
		if arena.Orientation(parent) == axis {
			return parent, cur
		}
		cur = parent
	}
}
