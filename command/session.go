// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package command implements the engine's command surface: the focused
// window is modeled as a Session value threaded through every command
// rather than held as ambient package state. The pointer-manipulated flag
// is not part of the Session; it lives on window nodes in the arena, and
// there is no command-mode state.
package command

import (
	"github.com/barutsrb/hyprspace-go/wlayout"
	"github.com/barutsrb/hyprspace-go/wtree"
)

// Session bundles the workspace, the layout engine and the focused
// window a command may read or mutate. ApplyCommand takes a Session by value and returns the
// (possibly updated) Session alongside the outcome, so callers never
// mutate global state directly.
type Session struct {
	Workspace *wtree.Workspace
	Engine    *wlayout.Engine
	Focused   wtree.WindowID // 0 = no window focused
}

// NewSession creates a session bound to a workspace and layout engine
// with no window focused.
func NewSession(ws *wtree.Workspace, engine *wlayout.Engine) Session {
	return Session{Workspace: ws, Engine: engine}
}

// focusedNode resolves the session's focused window to its tree node,
// or the zero NodeID if nothing is focused or the focused window is not
// currently part of the tiling tree (floating).
func (s Session) focusedNode() wtree.NodeID {
	if s.Focused == 0 {
		return wtree.NodeID{}
	}
	return s.Workspace.Arena.FindWindowNode(s.Workspace.Root, s.Focused)
}

// Focus sets the session's focused window directly (e.g. after a
// backend focus-changed event) and keeps the most-recent-child anchors
// used by Accordion/Scroll current along its tree path.
func (s Session) Focus(w wtree.WindowID) Session {
	s.Focused = w
	if node := s.focusedNode(); !node.IsZero() {
		s.Workspace.Arena.MarkMostRecentPath(node)
	}
	return s
}
