// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mastercache implements the persistent master-percent + side
// state behind the Master layout (spec.md §4.2, §4.3, §8).
package mastercache

import "github.com/barutsrb/hyprspace-go/internal/mathx"

// Side selects which side of the container the master area occupies.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

const (
	minPercent = 0.1
	maxPercent = 0.9
)

// Cache holds the master/stack split state for one Master-layout
// container.
type Cache struct {
	Percent float64
	Side    Side
}

// New creates a cache at the given default percent (clamped to
// [0.1, 0.9]) and side.
func New(defaultPercent float64, side Side) *Cache {
	return &Cache{Percent: mathx.Clamp(defaultPercent, minPercent, maxPercent), Side: side}
}

// Resize converts a pixel delta on the container's available width into
// a percent delta and applies it (spec.md §4.3): right-sided masters
// receive the opposite sign since the seam is controlled from the other
// direction.
func (c *Cache) Resize(pixels float64, availableWidth float64) {
	if availableWidth <= 0 {
		return
	}
	delta := pixels / availableWidth
	if c.Side == SideRight {
		delta = -delta
	}
	c.Percent = mathx.Clamp(c.Percent+delta, minPercent, maxPercent)
}

// Balance resets the percent to the given default (spec.md §4.4.5's
// balance-sizes command applies to Master caches too).
func (c *Cache) Balance(defaultPercent float64) {
	c.Percent = mathx.Clamp(defaultPercent, minPercent, maxPercent)
}
