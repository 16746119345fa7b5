// Package zzdoc converts manual-page source text to roff macros.
//
// The input language is a small line-oriented markup: a mandatory preamble
// line naming the page and its manual section, followed by paragraphs,
// headings, tab-indented blocks, bullet and numbered lists, fenced literal
// blocks, tables, and comments, with inline bold, underline, and explicit
// line breaks. Output is the macro set consumed by man-page renderers
// (.TH, .SH, .RS/.RE, .IP, .TS/.TE and friends).
//
// Conversion is a single pass: the parser pulls bytes from the reader and
// writes roff as it goes, with no syntax tree and no backtracking. The
// first grammar violation aborts the conversion with a ParseError that
// names the violated rule and the input position.
//
// Core properties:
//   - Streaming-first parsing from io.Reader
//   - Byte-exact macro output, stable across runs
//   - Deterministic .TH date when GenerateRequest.Date is set
//   - Low allocations in hot paths
//
// Example:
//
//	reader := strings.NewReader("example(1)\nSimple manual page.\n")
//	err := zzdoc.Generate(zzdoc.GenerateRequest{
//		Reader: reader,
//		Writer: os.Stdout,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
package zzdoc
