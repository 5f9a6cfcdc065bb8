// SPDX-License-Identifier: MPL-2.0

// Package keymap holds the chord-to-operation registration surface exposed
// to embedding hosts. Registration is an explicit setup-time call, not a
// load-time side effect; re-registering a chord replaces its binding and no
// teardown is required.
package keymap

import (
	"strings"

	"github.com/emacsmirror/sq/internal/pipeline"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DefaultPrefix is the two-key chord the default bindings hang off when no
// prefix is supplied.
const DefaultPrefix = "C-c p"

// defaultSuffixes maps the chord suffix under the prefix to the operation
// it triggers.
var defaultSuffixes = map[string]string{
	"d": pipeline.OpDump,
	"x": pipeline.OpHexDump,
	"m": pipeline.OpMPIDump,
	"i": pipeline.OpInspect,
	"!": pipeline.OpFreeForm,
}

type (
	// Binding pairs a full key chord with the operation it triggers.
	Binding struct {
		Chord string
		Op    string
	}

	// Keymap is a replaceable chord-to-operation table.
	Keymap struct {
		bindings map[string]string
	}
)

// New creates an empty keymap.
func New() *Keymap {
	return &Keymap{bindings: make(map[string]string)}
}

// Register binds a chord to an operation, replacing any existing binding
// for that chord.
func (k *Keymap) Register(chord, op string) {
	k.bindings[chord] = op
}

// Bind installs the five default operation bindings under the given prefix
// chord. An empty prefix means DefaultPrefix.
func (k *Keymap) Bind(prefix string) {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	for suffix, op := range defaultSuffixes {
		k.Register(prefix+" "+suffix, op)
	}
}

// Lookup returns the operation bound to a chord.
func (k *Keymap) Lookup(chord string) (string, bool) {
	op, ok := k.bindings[chord]
	return op, ok
}

// Bindings returns all bindings sorted by chord.
func (k *Keymap) Bindings() []Binding {
	chords := maps.Keys(k.bindings)
	slices.Sort(chords)

	out := make([]Binding, 0, len(chords))
	for _, chord := range chords {
		out = append(out, Binding{Chord: chord, Op: k.bindings[chord]})
	}
	return out
}

// Len returns the number of registered bindings.
func (k *Keymap) Len() int {
	return len(k.bindings)
}

// String renders the keymap as an aligned chord/operation table.
func (k *Keymap) String() string {
	var sb strings.Builder
	for _, b := range k.Bindings() {
		sb.WriteString(b.Chord)
		sb.WriteString("\t")
		sb.WriteString(b.Op)
		sb.WriteString("\n")
	}
	return sb.String()
}
