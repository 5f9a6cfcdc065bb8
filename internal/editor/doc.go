// SPDX-License-Identifier: MPL-2.0

// Package editor defines the host editing surface the invocation pipeline
// talks to: documents, named scratch buffers, and a display frontend.
// Hosts (the CLI, an embedding editor) implement or construct these
// explicitly; nothing in this package reaches into ambient state.
package editor
