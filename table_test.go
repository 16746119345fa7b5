package zzdoc

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTableSingleRow(t *testing.T) {
	out := convertBody(t, "[[ *Foo*\n:- bar\n:- baz\n")
	want := ".TS\nallbox;l c c.\n" +
		"T{\n\\fBFoo\\fR\nT}\tT{\nbar\nT}\tT{\nbaz\nT}\n" +
		".TE\n.sp 1\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestTableMultiRowWithInheritedAlignment(t *testing.T) {
	out := convertBody(t, "|[ a\n:] b\n|  c\n:  d\n\n")
	want := ".TS\nl r\nl r.\n" +
		"T{\na\nT}\tT{\nb\nT}\n" +
		"T{\nc\nT}\tT{\nd\nT}\n" +
		".TE\n.sp 1\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestTableBorderStyles(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{"[[ x\n", ".TS\nallbox;l.\nT{\nx\nT}\n.TE\n.sp 1\n"},
		{"][ x\n", ".TS\nbox;l.\nT{\nx\nT}\n.TE\n.sp 1\n"},
		{"|[ x\n", ".TS\nl.\nT{\nx\nT}\n.TE\n.sp 1\n"},
	}
	for _, tt := range tests {
		out := convertBody(t, tt.body)
		if diff := cmp.Diff(tt.want, out); diff != "" {
			t.Fatalf("%q: output mismatch (-want +got):\n%s", tt.body, diff)
		}
	}
}

func TestTableExpandAlignments(t *testing.T) {
	out := convertBody(t, "|< a\n:= b\n:> c\n")
	want := ".TS\nlx cx rx.\n" +
		"T{\na\nT}\tT{\nb\nT}\tT{\nc\nT}\n" +
		".TE\n.sp 1\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestTableEmptyCell(t *testing.T) {
	out := convertBody(t, "|[\n:[ x\n")
	want := ".TS\nl l.\nT{\n\nT}\tT{\nx\nT}\n.TE\n.sp 1\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestTableCellInlineFormatting(t *testing.T) {
	out := convertBody(t, "|[ _em_ and *strong*\n")
	want := ".TS\nl.\nT{\n\\fIem\\fR and \\fBstrong\\fR\nT}\n.TE\n.sp 1\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestTableBlankLineEndsTable(t *testing.T) {
	out := convertBody(t, "|[ x\n\nafter\n")
	want := ".TS\nl.\nT{\nx\nT}\n.TE\n.sp 1\nafter\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestTableErrors(t *testing.T) {
	tests := []struct {
		body string
		want error
	}{
		{"\t[[ x\n", ErrIndentedTable},
		{"|[ a\n:[ b\n|[ c\n\n", ErrUnevenColumns},
		{"|[ a\n|[ b\n:[ c\n\n", ErrUnevenColumns},
		{"|  a\n", ErrNoPreviousRow},
		{"|[ a\n:  b\n", ErrNoPreviousRow},
		{"|q a\n", ErrUnexpectedCharacter},
		{"|[x\n", ErrExpectedSpaceOrNewline},
		{"|[ aT}b\n", ErrIllegalCellContents},
	}
	for _, tt := range tests {
		err := convertErr(t, "test(8)\n"+tt.body)
		if !errors.Is(err, tt.want) {
			t.Fatalf("%q: got %v, want %v", tt.body, err, tt.want)
		}
	}
}
