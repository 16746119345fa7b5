package zzdoc

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLiteralBlock(t *testing.T) {
	out := convertBody(t, "```\nverbatim *text* _here_\n```\n")
	want := ".nf\n.RS 4\nverbatim *text* _here_\n.fi\n.RE\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestLiteralBlockEscaping(t *testing.T) {
	out := convertBody(t, "```\n.request 'quoted' a\\b\n```\n")
	want := ".nf\n.RS 4\n\\&.request \\&'quoted\\&' a\\\\b\n.fi\n.RE\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestLiteralBlockKeepsBlankLines(t *testing.T) {
	out := convertBody(t, "```\nfirst\n\nlast\n```\n")
	want := ".nf\n.RS 4\nfirst\n\nlast\n.fi\n.RE\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestLiteralBlockShortBacktickRunsAreLiteral(t *testing.T) {
	out := convertBody(t, "```\na ` b `` c\n```\n")
	want := ".nf\n.RS 4\na ` b `` c\n.fi\n.RE\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestLiteralBlockExtraIndentIsVerbatim(t *testing.T) {
	out := convertBody(t, "```\nif x {\n\treturn\n}\n```\n")
	want := ".nf\n.RS 4\nif x {\n\treturn\n}\n.fi\n.RE\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestIndentedLiteralBlockInteriorBelowEntryFails(t *testing.T) {
	// The interior line sits at depth zero while the block opened at one.
	if err := convertErr(t, "test(8)\nintro\n\t```\ncode\n\t```\n"); !errors.Is(err, ErrLiteralDedent) {
		t.Fatalf("got %v, want ErrLiteralDedent", err)
	}
}

func TestLiteralBlockDedentFails(t *testing.T) {
	src := "test(8)\na\n\tb\n\t\t```\n\t\tIndented\n\tDedented\n\t\t```\n"
	if err := convertErr(t, src); !errors.Is(err, ErrLiteralDedent) {
		t.Fatalf("got %v, want ErrLiteralDedent", err)
	}
}

func TestLiteralBlockAtDepthKeepsExtraTabs(t *testing.T) {
	out := convertBody(t, "a\n\t```\n\tkeep\n\t\textra\n\t```\n")
	want := "a\n.RS 4\n.nf\n.RS 4\nkeep\n\textra\n.fi\n.RE\n.RE\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestLiteralBlockOpenErrors(t *testing.T) {
	if err := convertErr(t, "test(8)\n``\ntext\n"); !errors.Is(err, ErrInvalidLiteralOpen) {
		t.Fatalf("got %v, want ErrInvalidLiteralOpen", err)
	}
	if err := convertErr(t, "test(8)\n```text\n"); !errors.Is(err, ErrInvalidLiteralOpen) {
		t.Fatalf("got %v, want ErrInvalidLiteralOpen", err)
	}
}

func TestLiteralBlockCloseErrors(t *testing.T) {
	if err := convertErr(t, "test(8)\n```\ntext\n```extra\n"); !errors.Is(err, ErrInvalidLiteralClose) {
		t.Fatalf("got %v, want ErrInvalidLiteralClose", err)
	}
	if err := convertErr(t, "test(8)\n```\nnever closed\n"); !errors.Is(err, ErrInvalidLiteralClose) {
		t.Fatalf("got %v, want ErrInvalidLiteralClose", err)
	}
}
