// SPDX-License-Identifier: MPL-2.0

// Package pipeline implements the invoke/capture/display pipeline: it feeds
// an input source to the external sq process on stdin, captures the merged
// stdout+stderr stream into the shared output buffer, and presents the
// result on the host frontend. All OpenPGP work happens inside sq; this
// package is a conduit, not an interpreter.
package pipeline
