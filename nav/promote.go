// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nav

import (
	"github.com/barutsrb/hyprspace-go/internal/errs"
	"github.com/barutsrb/hyprspace-go/wtree"
)

// PromoteMaster implements spec.md §4.6: the focused window must sit in
// a Master container and not already be its master (index 0); it is
// swapped with the index-0 child, preserving both bindings' indices and
// adaptive weights.
func PromoteMaster(arena *wtree.Arena, target wtree.NodeID) errs.Result {
	parent := arena.Parent(target)
	if parent.IsZero() || arena.Layout(parent) != wtree.LayoutMaster {
		return errs.Fail("not-master-layout")
	}
	if arena.OwnIndex(target) == 0 {
		return errs.Fail("already-master")
	}
	children := arena.Children(parent)
	arena.Swap(target, children[0])
	return errs.Ok()
}
