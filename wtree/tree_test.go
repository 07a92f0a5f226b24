package wtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barutsrb/hyprspace-go/dwindlecache"
	"github.com/barutsrb/hyprspace-go/geom"
	"github.com/barutsrb/hyprspace-go/wtree"
)

func newTestWorkspace() *wtree.Workspace {
	arena := wtree.NewArena()
	mon := geom.Monitor{Frame: geom.R(0, 0, 1000, 600), VisibleFrame: geom.R(0, 0, 1000, 600)}
	return wtree.NewWorkspace("main", arena, mon, wtree.Gaps{}, wtree.LayoutTiles, geom.AxisX)
}

func TestAddWindowBindsUnderRoot(t *testing.T) {
	ws := newTestWorkspace()
	id := ws.AddWindow(1, "app")
	assert.Equal(t, ws.Root, ws.Arena.Parent(id))
	assert.Equal(t, []wtree.WindowID{1}, ws.Arena.WindowLeaves(ws.Root))
}

func TestNewSiblingGetsAverageWeight(t *testing.T) {
	ws := newTestWorkspace()
	a := ws.AddWindow(1, "")
	ws.Arena.SetWeight(a, geom.AxisX, 2)
	b := ws.AddWindow(2, "")
	assert.Equal(t, 2.0, ws.Arena.Weight(b, geom.AxisX))
}

func TestUnbindBindRoundTrip(t *testing.T) {
	ws := newTestWorkspace()
	a := ws.AddWindow(1, "")
	ws.AddWindow(2, "")
	tok := ws.Arena.Unbind(a)
	assert.Equal(t, []wtree.WindowID{2}, ws.Arena.WindowLeaves(ws.Root))
	ws.Arena.Bind(a, tok.Parent, tok.Index, &tok.Weight)
	assert.Equal(t, []wtree.WindowID{1, 2}, ws.Arena.WindowLeaves(ws.Root))
}

func TestSwapPreservesSlots(t *testing.T) {
	ws := newTestWorkspace()
	a := ws.AddWindow(1, "")
	b := ws.AddWindow(2, "")
	ws.Arena.SetWeight(a, geom.AxisX, 3)
	ws.Arena.Swap(a, b)
	assert.Equal(t, []wtree.WindowID{2, 1}, ws.Arena.WindowLeaves(ws.Root))
	assert.Equal(t, 3.0, ws.Arena.Weight(b, geom.AxisX))
}

func TestClosestParentFindsSiblingInDirection(t *testing.T) {
	ws := newTestWorkspace()
	ws.Arena.SetOrientation(ws.Root, geom.AxisX)
	a := ws.AddWindow(1, "")
	ws.AddWindow(2, "")

	parent, idx := ws.Arena.ClosestParent(a, geom.DirRight, nil)
	assert.Equal(t, ws.Root, parent)
	assert.Equal(t, 0, idx)

	_, idx2 := ws.Arena.ClosestParent(a, geom.DirLeft, nil)
	assert.Equal(t, -1, idx2)
}

func TestRemoveWindowFlattensSingleChildParent(t *testing.T) {
	ws := newTestWorkspace()
	arena := ws.Arena
	sub := arena.NewContainer(geom.AxisY, wtree.LayoutTiles)
	arena.Bind(sub, ws.Root, -1, nil)
	w1 := arena.NewWindow(1, "")
	arena.Bind(w1, sub, -1, nil)
	w2 := arena.NewWindow(2, "")
	arena.Bind(w2, sub, -1, nil)

	require.Equal(t, []wtree.WindowID{1, 2}, arena.WindowLeaves(ws.Root))
	ws.RemoveWindow(2, true, false)
	// sub now has a single child (w1) and gets flattened into root.
	assert.Equal(t, ws.Root, arena.Parent(w1))
}

func TestScrollLayoutForcesHorizontalOrientation(t *testing.T) {
	ws := newTestWorkspace()
	ws.Arena.SetOrientation(ws.Root, geom.AxisY)
	ws.Arena.SetLayout(ws.Root, wtree.LayoutScroll)
	assert.Equal(t, geom.AxisX, ws.Arena.Orientation(ws.Root))
}

func TestLayoutChangeTearsDownCache(t *testing.T) {
	ws := newTestWorkspace()
	ws.Arena.SetLayout(ws.Root, wtree.LayoutDwindle)
	c := ws.Arena.EnsureDwindleCache(ws.Root, dwindlecache.DefaultConfig())
	require.NotNil(t, c)
	ws.Arena.SetLayout(ws.Root, wtree.LayoutTiles)
	assert.Nil(t, ws.Arena.DwindleCache(ws.Root))
}
