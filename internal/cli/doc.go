// Package cli defines the hiremap command line. The root command starts the
// interactive interface; search, flatten and version are non-interactive.
package cli
