// Package ui provides terminal output components for the btconf CLI.
//
// Components follow a "render once and print" pattern built on Lipgloss:
//
//   - RenderConfig / RenderSection: aligned, colored section listings
//   - Result: success/failure/warning boxes
//   - Confirm: a warning box followed by a typed "yes" prompt
//
// Colors degrade automatically when stdout is not a terminal; callers that
// need machine-readable output should check IsTerminal and print plain text
// instead.
package ui
