package resize_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barutsrb/hyprspace-go/geom"
	"github.com/barutsrb/hyprspace-go/resize"
	"github.com/barutsrb/hyprspace-go/wlayout"
	"github.com/barutsrb/hyprspace-go/wtree"
)

func newDwindleWorkspace(t *testing.T) (*wtree.Workspace, *wlayout.Engine, wtree.NodeID) {
	t.Helper()
	ws := wtree.NewWorkspace("main", wtree.NewArena(),
		geom.Monitor{Frame: geom.R(0, 0, 1000, 600), VisibleFrame: geom.R(0, 0, 1000, 600)},
		wtree.Gaps{}, wtree.LayoutDwindle, geom.AxisX)
	left := ws.AddWindow(1, "")
	ws.AddWindow(2, "")

	cfg := wlayout.DefaultConfig()
	e := wlayout.New(ws.Arena, cfg)
	e.LayoutWorkspace(ws)
	return ws, e, left
}

// TestPointerDriverAppliesFirstExceededEdge covers spec.md §4.4.4: diff
// the reported rect against the last-applied rect, iterate edges in the
// fixed order left, down, up, right, and act on the first exceeding 1px
// — here the right edge grows while nothing else moves, which should
// grow the dwindle root split's ratio and mark the window manipulated.
func TestPointerDriverAppliesFirstExceededEdge(t *testing.T) {
	ws, e, left := newDwindleWorkspace(t)
	before := ws.Arena.VirtualRect(left)
	node := ws.Arena.FindWindowNode(ws.Root, 1)

	driver := resize.NewPointerDriver(e)
	grown := geom.R(before.X, before.Y, before.Width+60, before.Height)
	driver.HandleResized(context.Background(), ws, 1, grown, time.Now())

	assert.True(t, ws.Arena.Manipulated(node))

	driver.EndDrag(ws, 1)
	assert.False(t, ws.Arena.Manipulated(node))
}

// TestPointerDriverDebouncesRapidEvents covers spec.md §4.4.4/§5: during
// a drag, events arriving within 16ms of the previous accepted one are
// dropped. (EndDrag resets the debounce timer, so the drag stays open
// here.)
func TestPointerDriverDebouncesRapidEvents(t *testing.T) {
	ws, e, left := newDwindleWorkspace(t)
	before := ws.Arena.VirtualRect(left)
	node := ws.Arena.FindWindowNode(ws.Root, 1)
	sibling := ws.Arena.FindWindowNode(ws.Root, 2)

	driver := resize.NewPointerDriver(e)
	t0 := time.Now()

	driver.HandleResized(context.Background(), ws, 1, geom.R(before.X, before.Y, before.Width+60, before.Height), t0)
	require.True(t, ws.Arena.Manipulated(node))
	afterFirst := ws.Arena.VirtualRect(sibling)

	// A second event 5ms after the first accepted one must be dropped:
	// the split is not resized again, so the sibling keeps its rect.
	driver.HandleResized(context.Background(), ws, 1, geom.R(before.X, before.Y, before.Width+120, before.Height), t0.Add(5*time.Millisecond))
	assert.Equal(t, afterFirst, ws.Arena.VirtualRect(sibling))

	// An event past the debounce window is accepted again.
	driver.HandleResized(context.Background(), ws, 1, geom.R(before.X, before.Y, before.Width+120, before.Height), t0.Add(30*time.Millisecond))
	assert.NotEqual(t, afterFirst, ws.Arena.VirtualRect(sibling))
	assert.True(t, ws.Arena.Manipulated(node))
	driver.EndDrag(ws, 1)
}

// TestPointerDriverSmallJitterIsIgnored covers the "first whose absolute
// value exceeds 1px" rule: a sub-pixel diff should not mark the window
// manipulated or touch the cache.
func TestPointerDriverSmallJitterIsIgnored(t *testing.T) {
	ws, e, left := newDwindleWorkspace(t)
	before := ws.Arena.VirtualRect(left)
	node := ws.Arena.FindWindowNode(ws.Root, 1)

	driver := resize.NewPointerDriver(e)
	driver.HandleResized(context.Background(), ws, 1, geom.R(before.X, before.Y, before.Width+0.2, before.Height), time.Now())

	assert.False(t, ws.Arena.Manipulated(node))
}

// TestPointerDriverEndDragClearsSnapshots runs spec.md §4.4.4's drag-end
// sequence (which also clears the cache's box snapshots) after an
// accepted event. The snapshots are not exported, so the test checks the
// observable part: the cache exists and the window is no longer
// manipulated.
func TestPointerDriverEndDragClearsSnapshots(t *testing.T) {
	ws, e, left := newDwindleWorkspace(t)
	before := ws.Arena.VirtualRect(left)

	driver := resize.NewPointerDriver(e)
	driver.HandleResized(context.Background(), ws, 1, geom.R(before.X, before.Y, before.Width+60, before.Height), time.Now())

	cache := ws.Arena.DwindleCache(ws.Root)
	require.NotNil(t, cache)

	driver.EndDrag(ws, 1)

	// After EndDrag the full refresh runs with no manipulated window; the
	// window must not be left stuck manipulated.
	node := ws.Arena.FindWindowNode(ws.Root, 1)
	assert.False(t, ws.Arena.Manipulated(node))
}
