// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/barutsrb/hyprspace-go/geom"
	"github.com/barutsrb/hyprspace-go/internal/errs"
	"github.com/barutsrb/hyprspace-go/mastercache"
	"github.com/barutsrb/hyprspace-go/nav"
	"github.com/barutsrb/hyprspace-go/resize"
	"github.com/barutsrb/hyprspace-go/wtree"
)

// ApplyCommand parses and executes one command line against session,
// returning the (possibly updated) session and the outcome: user-input
// errors and structural preconditions are reported as a failure Result,
// never a Go error, and never mutate the session.
func ApplyCommand(session Session, line string) (Session, errs.Result) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return session, errs.Fail("empty command")
	}
	switch fields[0] {
	case "layout":
		if len(fields) != 2 {
			return session, errs.Fail("layout: expected one argument")
		}
		return session, applyLayout(session, fields[1])
	case "resize":
		if len(fields) != 3 {
			return session, errs.Fail("resize: expected dimension and amount")
		}
		return session, applyResize(session, fields[1], fields[2])
	case "balance-sizes":
		applyBalanceSizes(session)
		return session, errs.Ok()
	case "promote-master":
		return session, applyPromoteMaster(session)
	case "focus":
		if len(fields) != 2 {
			return session, errs.Fail("focus: expected one direction")
		}
		return applyFocus(session, fields[1])
	default:
		return session, errs.Fail(fmt.Sprintf("unknown command %q", fields[0]))
	}
}

func applyLayout(session Session, arg string) errs.Result {
	if session.Focused == 0 {
		return errs.Fail("no-window-focused")
	}
	node := session.focusedNode()
	if node.IsZero() {
		// A floating window has no tree node; only "tiling" applies to it.
		if arg == "tiling" {
			return unfloatWindow(session)
		}
		return errs.Fail("non-tiling")
	}
	arena := session.Workspace.Arena
	parent := arena.Parent(node)

	switch arg {
	case "tiles":
		arena.SetLayout(parent, wtree.LayoutTiles)
	case "accordion":
		arena.SetLayout(parent, wtree.LayoutAccordion)
	case "dwindle":
		arena.SetLayout(parent, wtree.LayoutDwindle)
	case "scroll":
		arena.SetLayout(parent, wtree.LayoutScroll)
	case "master":
		arena.SetLayout(parent, wtree.LayoutMaster)
	case "master-left":
		arena.SetLayout(parent, wtree.LayoutMaster)
		arena.EnsureMasterCache(parent, session.Engine.Cfg.MasterDefaultPercent, mastercache.SideLeft).Side = mastercache.SideLeft
	case "master-right":
		arena.SetLayout(parent, wtree.LayoutMaster)
		arena.EnsureMasterCache(parent, session.Engine.Cfg.MasterDefaultPercent, mastercache.SideRight).Side = mastercache.SideRight
	case "h-tiles":
		arena.SetLayout(parent, wtree.LayoutTiles)
		arena.SetOrientation(parent, geom.AxisX)
	case "v-tiles":
		arena.SetLayout(parent, wtree.LayoutTiles)
		arena.SetOrientation(parent, geom.AxisY)
	case "h-accordion":
		arena.SetLayout(parent, wtree.LayoutAccordion)
		arena.SetOrientation(parent, geom.AxisX)
	case "v-accordion":
		arena.SetLayout(parent, wtree.LayoutAccordion)
		arena.SetOrientation(parent, geom.AxisY)
	case "horizontal":
		arena.SetOrientation(parent, geom.AxisX)
	case "vertical":
		arena.SetOrientation(parent, geom.AxisY)
	case "floating":
		return floatWindow(session, node)
	case "tiling":
		return unfloatWindow(session)
	default:
		return errs.Fail(fmt.Sprintf("unknown layout argument %q", arg))
	}
	return errs.Ok()
}

// floatWindow unbinds the focused window from the tiling tree into the
// workspace's Floating bucket. Its rect is remembered at workspace scope
// (spec.md §3's floating-size memo) rather than on the arena node, which
// is freed while the window floats: if the window was floated before and
// the memo already holds a remembered floating rect, that rect wins over
// the just-vacated tiled rect, so repeated tile<->float toggles converge
// on the last rect the user actually floated it at.
func floatWindow(session Session, node wtree.NodeID) errs.Result {
	arena := session.Workspace.Arena
	if _, hasMemo := session.Workspace.FloatingRect(session.Focused); !hasMemo {
		session.Workspace.SetFloatingRect(session.Focused, arena.VirtualRect(node))
	}
	parent := arena.Parent(node)
	arena.Unbind(node)
	arena.Free(node)
	if !parent.IsZero() {
		arena.Normalize(parent, true, false)
	}
	session.Workspace.Floating = append(session.Workspace.Floating, session.Focused)
	return errs.Ok()
}

// unfloatWindow re-admits the focused window from the Floating bucket
// back into the tiling tree as the last child of the root.
func unfloatWindow(session Session) errs.Result {
	w := session.Focused
	idx := -1
	for i, f := range session.Workspace.Floating {
		if f == w {
			idx = i
			break
		}
	}
	if idx == -1 {
		return errs.Fail("non-tiling")
	}
	session.Workspace.Floating = append(session.Workspace.Floating[:idx], session.Workspace.Floating[idx+1:]...)
	session.Workspace.AddWindow(w, "")
	return errs.Ok()
}

func applyResize(session Session, dimStr, amtStr string) errs.Result {
	if session.Focused == 0 {
		return errs.Fail("no-window-focused")
	}
	node := session.focusedNode()
	if node.IsZero() {
		return errs.Fail("floating-not-supported")
	}
	dim, err := parseDimension(dimStr)
	if err != nil {
		return errs.Fail(err.Error())
	}
	amt, err := parseAmount(amtStr)
	if err != nil {
		return errs.Fail(err.Error())
	}
	return resize.Apply(session.Workspace.Arena, session.Engine.Cfg, node, dim, amt)
}

func parseDimension(s string) (resize.Dimension, error) {
	switch s {
	case "width":
		return resize.DimWidth, nil
	case "height":
		return resize.DimHeight, nil
	case "smart":
		return resize.DimSmart, nil
	case "smart-opposite":
		return resize.DimSmartOpposite, nil
	default:
		return 0, fmt.Errorf("unknown resize dimension %q", s)
	}
}

func parseAmount(s string) (resize.Amount, error) {
	switch {
	case strings.HasPrefix(s, "+"):
		v, err := strconv.ParseFloat(s[1:], 64)
		if err != nil {
			return resize.Amount{}, fmt.Errorf("bad resize amount %q", s)
		}
		return resize.Amount{Op: resize.OpAdd, Value: v}, nil
	case strings.HasPrefix(s, "-"):
		v, err := strconv.ParseFloat(s[1:], 64)
		if err != nil {
			return resize.Amount{}, fmt.Errorf("bad resize amount %q", s)
		}
		return resize.Amount{Op: resize.OpSubtract, Value: v}, nil
	default:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return resize.Amount{}, fmt.Errorf("bad resize amount %q", s)
		}
		return resize.Amount{Op: resize.OpSet, Value: v}, nil
	}
}

// applyBalanceSizes resets every cache ratio and tiling weight in the
// workspace to its configured default.
func applyBalanceSizes(session Session) {
	arena := session.Workspace.Arena
	cfg := session.Engine.Cfg
	var walk func(id wtree.NodeID)
	walk = func(id wtree.NodeID) {
		if arena.Kind(id) != wtree.KindContainer {
			return
		}
		switch arena.Layout(id) {
		case wtree.LayoutDwindle:
			if c := arena.DwindleCache(id); c != nil {
				c.Balance()
			}
		case wtree.LayoutMaster:
			if c := arena.MasterCache(id); c != nil {
				c.Balance(cfg.MasterDefaultPercent)
			}
		case wtree.LayoutTiles, wtree.LayoutScroll:
			for _, child := range arena.Children(id) {
				arena.SetWeight(child, geom.AxisX, 1)
				arena.SetWeight(child, geom.AxisY, 1)
				arena.ClearScrollWidth(child)
			}
		}
		for _, child := range arena.Children(id) {
			walk(child)
		}
	}
	walk(session.Workspace.Root)
}

func applyPromoteMaster(session Session) errs.Result {
	node := session.focusedNode()
	if node.IsZero() {
		return errs.Fail("no-window-focused")
	}
	return nav.PromoteMaster(session.Workspace.Arena, node)
}

func applyFocus(session Session, dirStr string) (Session, errs.Result) {
	node := session.focusedNode()
	if node.IsZero() {
		return session, errs.Fail("no-window-focused")
	}
	dir, err := parseDirection(dirStr)
	if err != nil {
		return session, errs.Fail(err.Error())
	}
	target, ok := nav.Navigate(session.Workspace.Arena, session.Engine.Cfg, node, dir)
	if !ok {
		return session, errs.Ok() // boundary: silent no-op
	}
	w := session.Workspace.Arena.WindowIDOf(target)
	return session.Focus(w), errs.Ok()
}

func parseDirection(s string) (geom.Direction, error) {
	switch s {
	case "left":
		return geom.DirLeft, nil
	case "right":
		return geom.DirRight, nil
	case "up":
		return geom.DirUp, nil
	case "down":
		return geom.DirDown, nil
	default:
		return 0, fmt.Errorf("unknown focus direction %q", s)
	}
}
