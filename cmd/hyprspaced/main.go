// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hyprspaced is a thin smoke-test wiring of the tiling layout
// engine: it loads a config (or the documented defaults), builds a fake
// in-process WindowBackend, opens a workspace with a few windows, and
// runs a handful of commands through the session/command surface,
// printing the resulting rects. Argument parsing, key-binding dispatch
// and the menu-bar UI are explicitly out of scope (spec.md §1); this
// exists only to exercise the library end to end, in the same spirit as
// the teacher's own thin cmd/ packages that just call into the module.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/barutsrb/hyprspace-go/backend/fake"
	"github.com/barutsrb/hyprspace-go/command"
	"github.com/barutsrb/hyprspace-go/config"
	"github.com/barutsrb/hyprspace-go/geom"
	"github.com/barutsrb/hyprspace-go/internal/errs"
	"github.com/barutsrb/hyprspace-go/resize"
	"github.com/barutsrb/hyprspace-go/wlayout"
	"github.com/barutsrb/hyprspace-go/wtree"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (defaults are used if omitted)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "hyprspaced: loading config:", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	monitor := geom.Monitor{
		Frame:        geom.R(0, 0, 1920, 1080),
		VisibleFrame: geom.R(0, 24, 1920, 1056),
	}
	be := fake.New([]geom.Monitor{monitor})

	arena := wtree.NewArena()
	ws := wtree.NewWorkspace("main", arena, monitor, cfg.WorkspaceGaps(), cfg.RootLayout(), cfg.RootOrientation(monitor))

	engine := wlayout.New(arena, cfg.LayoutConfig())
	session := command.NewSession(ws, engine)
	pointer := resize.NewPointerDriver(engine)

	for i, id := range []wtree.WindowID{1, 2, 3} {
		ws.AddWindow(id, "demo")
		be.Open(id, geom.R(float64(i)*100, 0, 400, 300))
		be.OnResized(id, func(r geom.Rect) {
			pointer.HandleResized(context.Background(), ws, id, r, time.Now())
		})
	}
	session = session.Focus(1)
	engine.LayoutWorkspace(ws)
	pushToBackend(be, arena, ws)

	for _, line := range []string{
		"layout dwindle",
		"resize width +50",
		"focus right",
		"promote-master",
		"balance-sizes",
	} {
		var result errs.Result
		session, result = command.ApplyCommand(session, line)
		if !result.OK {
			slog.Warn("command failed", "command", line, "message", result.Message)
			continue
		}
		engine.LayoutWorkspace(ws)
		pushToBackend(be, arena, ws)
		fmt.Printf("%-20s ok\n", line)
	}

	for _, w := range []wtree.WindowID{1, 2, 3} {
		node := arena.FindWindowNode(ws.Root, w)
		if node.IsZero() {
			continue
		}
		fmt.Printf("window %d: %s\n", w, arena.VirtualRect(node))
	}
}

// pushToBackend applies every window's newly computed virtual rect to
// the backend, the refresh pass's final step (spec.md §2).
func pushToBackend(be *fake.Backend, arena *wtree.Arena, ws *wtree.Workspace) {
	for _, w := range arena.WindowLeaves(ws.Root) {
		node := arena.FindWindowNode(ws.Root, w)
		if node.IsZero() {
			continue
		}
		rect := arena.VirtualRect(node)
		if err := be.SetFrame(context.Background(), w, rect); err != nil {
			slog.Warn("setFrame failed", "window", w, "err", err)
		}
	}
}
