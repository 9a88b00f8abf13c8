// Package app is the composition root for the hiremap TUI.
//
// Run loads the config file, applies command line overrides, builds the
// document source and loader, routes logging away from the terminal, and
// starts the Bubble Tea program from the ui package. With watch enabled on a
// local source, WatchFile turns file changes into ui.ReloadMsg deliveries,
// debounced so an editor save triggers a single reload.
//
// Fatal errors (returned from Run):
//   - config file unreadable or invalid
//   - unknown start tab
//   - unusable source location
//   - log file or watch setup failures
//
// Document load failures are not fatal; the UI shows them in the Hiring Map
// pane and the user can retry with r.
package app
