package zzdoc

import (
	"bytes"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// The golden pair in testdata exercises every block type in one document.
// Regenerate with: go run ./cmd/zzdoc -d 1970-01-01 -o testdata/zzdoc.roff testdata/zzdoc.scd
func TestGoldenDocument(t *testing.T) {
	src, err := os.ReadFile("testdata/zzdoc.scd")
	if err != nil {
		t.Fatalf("read source: %v", err)
	}
	want, err := os.ReadFile("testdata/zzdoc.roff")
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	var out bytes.Buffer
	if err := Generate(GenerateRequest{
		Reader: bytes.NewReader(src),
		Writer: &out,
		Date:   epoch,
	}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if diff := cmp.Diff(string(want), out.String()); diff != "" {
		t.Fatalf("golden mismatch (-want +got):\n%s", diff)
	}
}

func BenchmarkGenerate(b *testing.B) {
	data, err := os.ReadFile("testdata/zzdoc.scd")
	if err != nil {
		b.Fatalf("read: %v", err)
	}
	b.ReportAllocs()
	reader := bytes.NewReader(data)
	var out bytes.Buffer
	out.Grow(len(data) * 2)
	for i := 0; i < b.N; i++ {
		reader.Reset(data)
		out.Reset()
		_ = Generate(GenerateRequest{
			Reader: reader,
			Writer: &out,
			Date:   epoch,
		})
	}
}
