// Package state holds the session's record cache.
//
// # Overview
//
// The cache is filled at most once per session: the first time the Hiring Map
// pane is shown with nothing cached, the UI asks the Store whether to load,
// fetches and flattens the document off the UI loop, and hands the result back.
//
//	UI (Update loop):               Load command:
//	┌──────────────────┐           ┌──────────────────┐
//	│ store.Begin()    │──true────→│ loader.Load()    │
//	│   (false: skip)  │           │       ↓          │
//	│                  │←──────────│ store.Complete() │
//	│ store.Snapshot() │           └──────────────────┘
//	└──────────────────┘
//
// # Load-once guard
//
// Begin is checked synchronously before any fetch is issued. It refuses when a
// load is in flight or records are cached, so repeated pane activations never
// start a second fetch. A failed load leaves the cache empty with LastError
// set; the next activation may try again. Reload is the only way to drop
// cached records.
//
// # Copies
//
// Snapshot returns a copy of the record slice and wraps LastError, so callers
// can hold on to a snapshot while the store moves on. Records themselves are
// never mutated after Flatten builds them.
package state
