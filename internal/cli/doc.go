// Package cli translates command-line arguments into an app.Config,
// keeping flag handling out of the application core.
package cli
