package resize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barutsrb/hyprspace-go/geom"
	"github.com/barutsrb/hyprspace-go/resize"
	"github.com/barutsrb/hyprspace-go/wlayout"
	"github.com/barutsrb/hyprspace-go/wtree"
)

func newWorkspace(layout wtree.LayoutKind, axis geom.Axis, rect geom.Rect) *wtree.Workspace {
	arena := wtree.NewArena()
	mon := geom.Monitor{Frame: rect, VisibleFrame: rect}
	return wtree.NewWorkspace("main", arena, mon, wtree.Gaps{}, layout, axis)
}

// TestResizeDwindleScenario5 is spec.md §8 scenario 5: smart-resize of
// the left child by +50px on a 1000-wide container grows its outer
// split ratio from 1.0 to 1.05, yielding a left leaf width near 512.
func TestResizeDwindleScenario5(t *testing.T) {
	ws := newWorkspace(wtree.LayoutDwindle, geom.AxisX, geom.R(0, 0, 1000, 600))
	left, right := ws.AddWindow(1, ""), ws.AddWindow(2, "")
	_ = right

	cfg := wlayout.DefaultConfig()
	e := wlayout.New(ws.Arena, cfg)
	e.LayoutWorkspace(ws)

	result := resize.Apply(ws.Arena, cfg, left, resize.DimWidth, resize.Amount{Op: resize.OpAdd, Value: 50})
	require.True(t, result.OK)

	e.LayoutWorkspace(ws)
	assert.InDelta(t, 512.0, ws.Arena.VirtualRect(left).Width, 2.0)
}

// TestResizeMasterRejectsHeight covers spec.md §4.3: "Only width and
// smart are valid [for Master]; height is rejected with a user-visible
// error."
func TestResizeMasterRejectsHeight(t *testing.T) {
	ws := newWorkspace(wtree.LayoutMaster, geom.AxisX, geom.R(0, 0, 1000, 600))
	master := ws.AddWindow(1, "")
	ws.AddWindow(2, "")

	cfg := wlayout.DefaultConfig()
	e := wlayout.New(ws.Arena, cfg)
	e.LayoutWorkspace(ws)

	result := resize.Apply(ws.Arena, cfg, master, resize.DimHeight, resize.Amount{Op: resize.OpAdd, Value: 10})
	assert.False(t, result.OK)
	assert.Equal(t, "master-height-unsupported", result.Message)
}

// TestResizeMasterWidthShiftsPercent covers the width/smart path:
// growing the master by pixels increases masterPercent proportionally.
func TestResizeMasterWidthShiftsPercent(t *testing.T) {
	ws := newWorkspace(wtree.LayoutMaster, geom.AxisX, geom.R(0, 0, 1000, 600))
	master := ws.AddWindow(1, "")
	ws.AddWindow(2, "")

	cfg := wlayout.DefaultConfig()
	e := wlayout.New(ws.Arena, cfg)
	e.LayoutWorkspace(ws)

	result := resize.Apply(ws.Arena, cfg, master, resize.DimWidth, resize.Amount{Op: resize.OpAdd, Value: 100})
	require.True(t, result.OK)

	cache := ws.Arena.MasterCache(ws.Root)
	require.NotNil(t, cache)
	assert.Greater(t, cache.Percent, 0.5)
}

// TestResizeTilesRedistributesDeficitToSiblings covers spec.md §4.3
// "Tiles / Scroll": growing one child's weight by Δ removes Δ spread
// equally from its siblings so the weight sum is preserved.
func TestResizeTilesRedistributesDeficitToSiblings(t *testing.T) {
	ws := newWorkspace(wtree.LayoutTiles, geom.AxisX, geom.R(0, 0, 900, 400))
	a, b, c := ws.AddWindow(1, ""), ws.AddWindow(2, ""), ws.AddWindow(3, "")

	cfg := wlayout.DefaultConfig()
	e := wlayout.New(ws.Arena, cfg)
	e.LayoutWorkspace(ws)

	before := ws.Arena.Weight(a, geom.AxisX) + ws.Arena.Weight(b, geom.AxisX) + ws.Arena.Weight(c, geom.AxisX)
	bBefore, cBefore := ws.Arena.Weight(b, geom.AxisX), ws.Arena.Weight(c, geom.AxisX)

	result := resize.Apply(ws.Arena, cfg, a, resize.DimWidth, resize.Amount{Op: resize.OpAdd, Value: 30})
	require.True(t, result.OK)

	after := ws.Arena.Weight(a, geom.AxisX) + ws.Arena.Weight(b, geom.AxisX) + ws.Arena.Weight(c, geom.AxisX)
	assert.InDelta(t, before, after, 0.001)
	assert.Less(t, ws.Arena.Weight(b, geom.AxisX), bBefore)
	assert.Less(t, ws.Arena.Weight(c, geom.AxisX), cBefore)
}

// TestResizeScrollDoesNotRedistribute covers "For Scroll, do not
// redistribute (widths are absolute)."
func TestResizeScrollDoesNotRedistribute(t *testing.T) {
	ws := newWorkspace(wtree.LayoutScroll, geom.AxisX, geom.R(0, 0, 1000, 600))
	a, b := ws.AddWindow(1, ""), ws.AddWindow(2, "")

	cfg := wlayout.DefaultConfig()
	e := wlayout.New(ws.Arena, cfg)
	e.LayoutWorkspace(ws)

	bBefore := ws.Arena.Weight(b, geom.AxisX)
	result := resize.Apply(ws.Arena, cfg, a, resize.DimWidth, resize.Amount{Op: resize.OpAdd, Value: 30})
	require.True(t, result.OK)

	assert.Equal(t, bBefore, ws.Arena.Weight(b, geom.AxisX))
}

// TestResizeUnboundWindowFails covers the no-window-focused precondition
// when the target has no containing container.
func TestResizeUnboundWindowFails(t *testing.T) {
	arena := wtree.NewArena()
	orphan := arena.NewWindow(1, "")
	cfg := wlayout.DefaultConfig()

	result := resize.Apply(arena, cfg, orphan, resize.DimWidth, resize.Amount{Op: resize.OpAdd, Value: 10})
	assert.False(t, result.OK)
	assert.Equal(t, "no-window-focused", result.Message)
}
