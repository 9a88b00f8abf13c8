// Package ui provides the Bubble Tea terminal interface for hiremap.
//
// # Panes
//
// Three panes share the screen, exactly one active at a time:
//
//   - Overview: what the tool shows and where the document comes from
//   - Simple Signals: a decorative traffic light that steps red, yellow, green
//     every two seconds while the pane is showing
//   - Hiring Map: cards for every company, job posting, promise, vouch and
//     personal vouch in the document, filtered by free text and type
//
// # Activation
//
// Pane switches go through panes.Controller. Entering the Signals pane steps
// the light once and schedules a tick tagged with a generation number; leaving
// bumps the generation so the pending tick is dropped on arrival. Ticks never
// queue up while the pane is hidden.
//
// Entering the Hiring Map asks state.Store to begin a load. The store refuses
// while a load is in flight or records are cached, so the document is fetched
// once per session unless the user reloads with r or the watcher sends
// ReloadMsg. The fetch runs as a tea.Cmd and reports back with a
// recordsLoadedMsg.
//
// # Rendering
//
// Search input and type changes re-filter the cached records synchronously in
// Update. A failed load replaces the cards with "Error loading data: <message>"
// and a filter that matches nothing shows "No results found.".
//
// Theme and type filter choices are saved to the prefs file as they change.
package ui
