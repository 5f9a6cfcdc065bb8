// SPDX-License-Identifier: MPL-2.0

package pipeline

import (
	"reflect"
	"testing"
)

func TestArgsFor_FixedTables(t *testing.T) {
	t.Parallel()

	cases := []struct {
		op   string
		want []string
	}{
		{OpDump, []string{"packet", "dump"}},
		{OpHexDump, []string{"packet", "dump", "--hex"}},
		{OpMPIDump, []string{"packet", "dump", "--mpis"}},
		{OpInspect, []string{"inspect"}},
	}

	for _, tc := range cases {
		t.Run(tc.op, func(t *testing.T) {
			t.Parallel()

			got, ok := ArgsFor(tc.op)
			if !ok {
				t.Fatalf("expected ArgsFor(%q) to succeed", tc.op)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("expected args %v, got %v", tc.want, got)
			}
		})
	}
}

func TestArgsFor_Unknown(t *testing.T) {
	t.Parallel()

	if _, ok := ArgsFor("decrypt"); ok {
		t.Error("expected ArgsFor to miss on an unknown operation")
	}
	if _, ok := ArgsFor(OpFreeForm); ok {
		t.Error("expected the free-form operation to have no fixed args")
	}
}

func TestArgsFor_ReturnsCopy(t *testing.T) {
	t.Parallel()

	first, _ := ArgsFor(OpDump)
	first[0] = "mutated"

	second, _ := ArgsFor(OpDump)
	if second[0] != "packet" {
		t.Error("expected the operation table to be immutable")
	}
}

func TestOperations_Sorted(t *testing.T) {
	t.Parallel()

	want := []string{OpDump, OpHexDump, OpInspect, OpMPIDump}
	if got := Operations(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected operations %v, got %v", want, got)
	}
}

func TestSplitArgs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		line string
		want []string
	}{
		{"simple", "armor --kind secret-key", []string{"armor", "--kind", "secret-key"}},
		{"repeated whitespace", "packet   dump\t--hex", []string{"packet", "dump", "--hex"}},
		{"surrounding whitespace", "  inspect  ", []string{"inspect"}},
		{"no quoting support", `armor --label "secret key"`, []string{"armor", "--label", `"secret`, `key"`}},
		{"empty", "", nil},
		{"whitespace only", " \t ", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := SplitArgs(tc.line)
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
