// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wlayout implements the five layout engines (spec.md §4.2):
// weighted Tiles, nested Accordion, binary-tree Dwindle, horizontal
// Scroll, and master/stack Master. Every engine takes a target rect and
// writes window rects back into the tree model (wtree), skipping the
// window currently under pointer control (spec.md §3 invariant 7).
package wlayout

import (
	"github.com/barutsrb/hyprspace-go/dwindlecache"
	"github.com/barutsrb/hyprspace-go/geom"
	"github.com/barutsrb/hyprspace-go/mastercache"
)

// Config bundles every layout-affecting engine configuration value from
// spec.md §6.
type Config struct {
	InnerGapHorizontal float64
	InnerGapVertical   float64

	AccordionPadding float64 // px, default 30

	DwindleDefaultSplitRatio float64 // default 1.0
	SplitWidthMultiplier     float64 // default 1.0

	MasterDefaultPercent float64 // default 0.5

	FocusedWidthRatio float64 // Scroll, default 0.8

	MouseSensitivity float64 // default 1.0

	NoOuterGapsInFullscreen bool
}

// DefaultConfig returns the spec's documented defaults (spec.md §6).
func DefaultConfig() Config {
	return Config{
		AccordionPadding:         30,
		DwindleDefaultSplitRatio: 1.0,
		SplitWidthMultiplier:     1.0,
		MasterDefaultPercent:     0.5,
		FocusedWidthRatio:        0.8,
		MouseSensitivity:         1.0,
		NoOuterGapsInFullscreen:  true,
	}
}

func (c Config) dwindleConfig() dwindlecache.Config {
	return c.DwindleConfig()
}

// DwindleConfig converts the engine config into the dwindle cache's own
// configuration shape, for callers outside wlayout (e.g. resize) that
// need to EnsureDwindleCache with the same settings the layout pass uses.
func (c Config) DwindleConfig() dwindlecache.Config {
	return dwindlecache.Config{
		DefaultSplitRatio:    c.DwindleDefaultSplitRatio,
		SplitWidthMultiplier: c.SplitWidthMultiplier,
		InnerGapH:            c.InnerGapHorizontal,
		InnerGapV:            c.InnerGapVertical,
		MouseSensitivity:     c.MouseSensitivity,
	}
}

// MasterSideDefault returns the side new Master caches are created with
// absent an explicit master-left/master-right command.
func MasterSideDefault() mastercache.Side { return masterSideDefault }

func (c Config) gap(axis geom.Axis) float64 {
	if axis == geom.AxisX {
		return c.InnerGapHorizontal
	}
	return c.InnerGapVertical
}

// GapForDirection returns the inner-gap size on the axis a direction
// moves along, for callers outside wlayout (e.g. nav's geometric
// edge-adjacency tolerance).
func (c Config) GapForDirection(dir geom.Direction) float64 {
	return c.gap(dir.Axis())
}

// masterSideDefault is the side new Master caches are created with;
// "left" is the spec's implicit default (the master occupies the left,
// stack the right, absent a `master-right` command).
const masterSideDefault = mastercache.SideLeft
