// Package winid defines the opaque identifier types shared across the
// tree, cache, and backend packages, kept dependency-free so that the
// caches (dwindlecache, mastercache) never need to import the tree
// model that owns them.
package winid

// WindowID identifies a window as reported by the WindowBackend.
type WindowID uint64

// AppID identifies the owning application of a window.
type AppID string
