// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errs provides small error-handling helpers (Log, Log1, Must1)
// and the Result type that commands return instead of a Go error. No
// package in this module currently calls Log, Log1 or Must1.
package errs

import (
	"log/slog"
)

// Log logs err if non-nil and returns it unchanged.
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}

// Log1 logs err if non-nil and returns v regardless.
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error())
	}
	return v
}

// Must1 panics if err is non-nil, otherwise returns v. Reserved for
// configuration-load-time failures that have no recovery path; never used
// on the hot event-loop path.
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Result is the outcome of a command dispatched through the engine
// (spec.md §7): commands never return a Go error across the event-loop
// boundary, only a success flag and an optional user-facing message.
type Result struct {
	OK      bool
	Message string
}

// Ok is the zero-message success result.
func Ok() Result { return Result{OK: true} }

// Fail builds a failure result carrying a user-visible message.
func Fail(msg string) Result { return Result{OK: false, Message: msg} }
