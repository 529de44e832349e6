// Package ui contains the Bubble Tea program that draws the menu panel.
// Model is a render backend for internal/ui/state: it turns terminal
// messages into semantic events, feeds them to the session dispatcher and
// repaints the rows the session reports dirty.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Each tea.Msg is
//     routed through a typed handler registry so every message kind is
//     handled by a focused function.
//   - Key presses become state.KeyPress values carrying key symbols (see
//     keys.go). Mouse reports are compared against the panel rectangle to
//     derive pointer enter, move, leave and button events (see mouse.go).
//     Terminal resizes become full-height damage events.
//   - When the dispatcher asks for a redraw, the session walks its list and
//     calls Model.PaintRow for each dirty item only.
//
// Rendering:
//   - Model keeps one rendered string per item. PaintRow refreshes a single
//     cached row, and View joins the cache inside the bordered panel, offset
//     to the configured origin.
//   - An optional footer shows the key bindings using bubbles/help.
//
// Once the session reaches a terminal outcome the model returns tea.Quit and
// the caller reads the outcome with Model.Outcome.
package ui
