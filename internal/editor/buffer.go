// SPDX-License-Identifier: MPL-2.0

package editor

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type (
	// Buffer is a named, reusable text container. The invocation pipeline
	// clears and refills one well-known buffer on every run; no history of
	// previous contents is kept.
	Buffer struct {
		name     string
		text     string
		modified bool
	}

	// BufferSet is the host's registry of scratch buffers, keyed by name.
	// Buffers are created on first use and live until the set is dropped.
	BufferSet struct {
		buffers map[string]*Buffer
	}
)

// Name returns the buffer's name.
func (b *Buffer) Name() string {
	return b.name
}

// Text returns the buffer's current contents.
func (b *Buffer) Text() string {
	return b.text
}

// Modified reports whether the buffer has been written to since it was
// last marked unmodified.
func (b *Buffer) Modified() bool {
	return b.modified
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.text = ""
	b.modified = true
}

// SetText replaces the buffer's contents.
func (b *Buffer) SetText(text string) {
	b.text = text
	b.modified = true
}

// MarkUnmodified clears the modified flag so the host does not prompt to
// save the buffer.
func (b *Buffer) MarkUnmodified() {
	b.modified = false
}

// NewBufferSet creates an empty buffer registry.
func NewBufferSet() *BufferSet {
	return &BufferSet{buffers: make(map[string]*Buffer)}
}

// Acquire returns the buffer with the given name, creating it if absent.
func (s *BufferSet) Acquire(name string) *Buffer {
	if b, ok := s.buffers[name]; ok {
		return b
	}
	b := &Buffer{name: name}
	s.buffers[name] = b
	return b
}

// Lookup returns the named buffer if it exists.
func (s *BufferSet) Lookup(name string) (*Buffer, bool) {
	b, ok := s.buffers[name]
	return b, ok
}

// Names returns the names of all existing buffers in sorted order.
func (s *BufferSet) Names() []string {
	names := maps.Keys(s.buffers)
	slices.Sort(names)
	return names
}
