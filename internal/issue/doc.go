// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// It defines error types that carry remediation steps plus a small catalog of
// Markdown-formatted help texts for the failures this tool runs into, rendered
// with glamour for terminal display.
package issue
