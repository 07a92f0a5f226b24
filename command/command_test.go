// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barutsrb/hyprspace-go/command"
	"github.com/barutsrb/hyprspace-go/geom"
	"github.com/barutsrb/hyprspace-go/wlayout"
	"github.com/barutsrb/hyprspace-go/wtree"
)

func newSessionWithWindows(t *testing.T, n int) (command.Session, []wtree.WindowID) {
	t.Helper()
	arena := wtree.NewArena()
	mon := geom.Monitor{Frame: geom.R(0, 0, 1000, 600), VisibleFrame: geom.R(0, 0, 1000, 600)}
	ws := wtree.NewWorkspace("main", arena, mon, wtree.Gaps{}, wtree.LayoutTiles, geom.AxisX)
	engine := wlayout.New(arena, wlayout.DefaultConfig())

	var ids []wtree.WindowID
	for i := 0; i < n; i++ {
		w := wtree.WindowID(i + 1)
		ws.AddWindow(w, "")
		ids = append(ids, w)
	}
	engine.LayoutWorkspace(ws)
	return command.NewSession(ws, engine), ids
}

func TestFloatThenTileRemembersFloatingRect(t *testing.T) {
	session, ids := newSessionWithWindows(t, 2)
	session = session.Focus(ids[0])

	before := session.Workspace.Arena.VirtualRect(session.Workspace.Arena.FindWindowNode(session.Workspace.Root, ids[0]))

	session, res := command.ApplyCommand(session, "layout floating")
	require.True(t, res.OK)

	memo, ok := session.Workspace.FloatingRect(ids[0])
	require.True(t, ok)
	assert.Equal(t, before, memo)

	session, res = command.ApplyCommand(session, "layout tiling")
	require.True(t, res.OK)

	memoAfterRetile, ok := session.Workspace.FloatingRect(ids[0])
	require.True(t, ok)
	assert.Equal(t, before, memoAfterRetile)
}

// TestRepeatedFloatTileTogglesKeepLastFloatedRect asserts the memo is
// sticky: once a window has been floated, an intervening re-tile and
// resize does not clobber the remembered floating rect the next time it
// floats again, since floatWindow only seeds the memo the first time.
func TestRepeatedFloatTileTogglesKeepLastFloatedRect(t *testing.T) {
	session, ids := newSessionWithWindows(t, 2)
	session = session.Focus(ids[0])

	session, res := command.ApplyCommand(session, "layout floating")
	require.True(t, res.OK)
	firstFloat, _ := session.Workspace.FloatingRect(ids[0])

	session, res = command.ApplyCommand(session, "layout tiling")
	require.True(t, res.OK)

	session, res = command.ApplyCommand(session, "resize width +50")
	require.True(t, res.OK)
	session.Engine.LayoutWorkspace(session.Workspace)

	session, res = command.ApplyCommand(session, "layout floating")
	require.True(t, res.OK)
	secondFloat, ok := session.Workspace.FloatingRect(ids[0])
	require.True(t, ok)

	assert.Equal(t, firstFloat, secondFloat)
}
