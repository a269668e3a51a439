/*
Package tui implements the terminal request editor.

# Architecture

The TUI follows the Bubble Tea framework's Model-Update-View pattern:
  - Model: wraps a session.Session plus the input widgets editing it
  - Update: processes messages and returns commands
  - View: renders the request panel, the response panel and a status bar

# Key Components

  - model.go: Model struct, Update and message types
  - keys.go: key bindings and focus routing
  - params_editor.go: params table, every edit resyncs the URL
  - header_editor.go: header rows with fuzzy header-name suggestions
  - actions.go: send, clipboard copy and paste
  - highlight.go: response body syntax highlighting
  - render.go: view rendering

# Sending

A send snapshots the session into a RequestSpec on the UI loop and executes it
inside a tea.Cmd. The result comes back as a responseMsg and replaces the
session outcome. Sends are ignored while one is loading, so at most one
request is in flight.
*/
package tui
