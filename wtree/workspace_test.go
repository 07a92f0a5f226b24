// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/barutsrb/hyprspace-go/geom"
	"github.com/barutsrb/hyprspace-go/wtree"
)

func TestFloatingRectRoundTrip(t *testing.T) {
	ws := newTestWorkspace()
	_, ok := ws.FloatingRect(1)
	assert.False(t, ok)

	r := geom.R(10, 20, 300, 200)
	ws.SetFloatingRect(1, r)
	got, ok := ws.FloatingRect(1)
	assert.True(t, ok)
	assert.Equal(t, r, got)

	r2 := geom.R(50, 60, 320, 240)
	ws.SetFloatingRect(1, r2)
	got, ok = ws.FloatingRect(1)
	assert.True(t, ok)
	assert.Equal(t, r2, got)
}

func TestSetMonitorTranslatesFloatingRectsProportionally(t *testing.T) {
	ws := newTestWorkspace()
	ws.SetFloatingRect(1, geom.R(100, 50, 200, 100))

	newMon := geom.Monitor{
		Frame:        geom.R(0, 0, 2000, 1200),
		VisibleFrame: geom.R(0, 0, 2000, 1200),
	}
	ws.SetMonitor(newMon)

	got, ok := ws.FloatingRect(1)
	assert.True(t, ok)
	assert.Equal(t, 200.0, got.X)
	assert.Equal(t, 100.0, got.Y)
	assert.Equal(t, 400.0, got.Width)
	assert.Equal(t, 200.0, got.Height)
	assert.Equal(t, newMon, ws.Monitor)
}

func TestSetMonitorNoOpWhenOldFrameDegenerate(t *testing.T) {
	arena := wtree.NewArena()
	ws := wtree.NewWorkspace("main", arena, geom.Monitor{}, wtree.Gaps{}, wtree.LayoutTiles, geom.AxisX)
	ws.SetFloatingRect(1, geom.R(10, 10, 100, 100))

	newMon := geom.Monitor{Frame: geom.R(0, 0, 1000, 600), VisibleFrame: geom.R(0, 0, 1000, 600)}
	ws.SetMonitor(newMon)

	got, ok := ws.FloatingRect(1)
	assert.True(t, ok)
	assert.Equal(t, geom.R(10, 10, 100, 100), got)
}
