// Package cli builds the fuelctl cobra command tree.
//
// Commands talk to the server through [adapter.ServerAdapter] and keep the
// signed-in identity in a [SessionStore] between invocations. Reports and
// entry lists are rendered as lipgloss tables.
package cli
