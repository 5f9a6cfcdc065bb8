// SPDX-License-Identifier: MPL-2.0

package editor

// Frontend is the display surface the pipeline presents results on. The
// terminal implementation lives in internal/tui; tests use in-memory fakes.
type Frontend interface {
	// ShowBuffer displays the buffer, switching focus to it.
	ShowBuffer(b *Buffer) error

	// ShowStatus displays a transient one-line message without opening
	// a buffer.
	ShowStatus(msg string)

	// StatusWidth returns the number of columns available for a status
	// message. Content wider than this goes through ShowBuffer instead.
	StatusWidth() int

	// ReportError surfaces a failure through the host's standard
	// error-reporting channel. It is used for failures that produced no
	// process output, such as the external tool being missing.
	ReportError(err error)
}
