// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wtree is the tree model: workspaces, tiling containers and
// windows, held in a generational arena so that unbind/bind operations
// exchange small value-typed ids rather than pointers.
package wtree

import (
	"fmt"

	"github.com/barutsrb/hyprspace-go/winid"
)

// WindowID identifies a window as reported by the WindowBackend. It is
// opaque to the engine.
type WindowID = winid.WindowID

// AppID identifies the owning application of a window. Opaque to the
// engine; used only for grouping/labels by callers.
type AppID = winid.AppID

// Kind distinguishes the two node shapes the arena stores.
type Kind uint8

const (
	KindContainer Kind = iota
	KindWindow
)

func (k Kind) String() string {
	if k == KindContainer {
		return "container"
	}
	return "window"
}

// NodeID is a generational index into an Arena. The zero value is never
// a valid live node and is used as the "no parent" / "not found" sentinel.
type NodeID struct {
	index uint32
	gen   uint32
}

func (id NodeID) String() string {
	if id.IsZero() {
		return "<nil>"
	}
	return fmt.Sprintf("#%d.%d", id.index, id.gen)
}

// IsZero reports whether id is the sentinel "no node" value.
func (id NodeID) IsZero() bool { return id.gen == 0 && id.index == 0 }
