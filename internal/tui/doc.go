// SPDX-License-Identifier: MPL-2.0

// Package tui implements the terminal display surface: a scrollable
// Bubble Tea pager for buffer display and a one-line status renderer, with
// plain-writer fallbacks when stdout is not a terminal.
package tui
