package zzdoc

import (
	"errors"
	"fmt"
)

// Grammar violations. Generate wraps these in a *ParseError carrying the
// input position; match with errors.Is.
var (
	// ErrExpectedPreamble reports a missing or empty page name on the first line.
	ErrExpectedPreamble = errors.New("expected preamble 'name(section)'")
	// ErrExpectedSection reports a missing '(' after the page name.
	ErrExpectedSection = errors.New("expected '(' and manual section")
	// ErrInvalidSection reports a manual section outside 1-9.
	ErrInvalidSection = errors.New("invalid manual section")
	// ErrExpectedManualSection reports an unterminated '(section)'.
	ErrExpectedManualSection = errors.New("expected manual section terminated by ')'")
	// ErrTooManyPreambleFields reports a third quoted preamble field.
	ErrTooManyPreambleFields = errors.New("too many preamble fields (at most two)")
	// ErrUnclosedPreambleField reports an unterminated quoted preamble field.
	ErrUnclosedPreambleField = errors.New("unclosed quoted preamble field")

	// ErrIndentTooLarge reports an indent increase of more than one level.
	ErrIndentTooLarge = errors.New("indentation increased by more than one level")
	// ErrTabsRequired reports a line indented with spaces.
	ErrTabsRequired = errors.New("tabs are required for indentation")

	// ErrExpectedSpace reports a missing mandatory space after a marker.
	ErrExpectedSpace = errors.New("expected space")
	// ErrExpectedTwoSpaces reports a malformed list continuation indent.
	ErrExpectedTwoSpaces = errors.New("expected two spaces for list continuation")
	// ErrInvalidHeading reports a heading marker not followed by a space.
	ErrInvalidHeading = errors.New("invalid heading")
	// ErrHeadingTooDeep reports a heading below the second level.
	ErrHeadingTooDeep = errors.New("heading level too high (maximum two)")

	// ErrNestedFormat reports bold opened inside underline or vice versa.
	ErrNestedFormat = errors.New("cannot nest inline formatting")
	// ErrUnclosedFormat reports bold or underline left open at a paragraph break.
	ErrUnclosedFormat = errors.New("bold or underline open at paragraph break")
	// ErrBreakBeforeBlank reports an explicit line break directly before a blank line.
	ErrBreakBeforeBlank = errors.New("explicit line break before blank line")

	// ErrInvalidLiteralOpen reports a malformed literal block opening fence.
	ErrInvalidLiteralOpen = errors.New("literal block must open with '```' and a newline")
	// ErrInvalidLiteralClose reports a malformed literal block closing fence.
	ErrInvalidLiteralClose = errors.New("literal block must close with '```' and a newline")
	// ErrLiteralDedent reports a dedent inside a literal block.
	ErrLiteralDedent = errors.New("cannot dedent in literal block")

	// ErrIndentedTable reports a table started on an indented line.
	ErrIndentedTable = errors.New("tables cannot be indented")
	// ErrUnevenColumns reports rows with differing cell counts.
	ErrUnevenColumns = errors.New("expected the same number of columns in every row")
	// ErrNoPreviousRow reports alignment inheritance in the first table row.
	ErrNoPreviousRow = errors.New("no previous row to infer cell alignment from")
	// ErrExpectedSpaceOrNewline reports a malformed table cell introduction.
	ErrExpectedSpaceOrNewline = errors.New("expected space or newline after cell alignment")
	// ErrIllegalCellContents reports cell text that would terminate a roff text block.
	ErrIllegalCellContents = errors.New("illegal contents in table cell")

	// ErrUnexpectedCharacter reports a byte the grammar does not allow here.
	ErrUnexpectedCharacter = errors.New("unexpected character")
	// ErrUnexpectedEOF reports input ending inside a construct.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
)

// ParseError is a grammar violation at a specific input position. It wraps
// one of the sentinel errors above; Line and Col are 1-based and 0-based
// respectively and refer to the byte that triggered the violation.
type ParseError struct {
	Line int
	Col  int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %v", e.Line, e.Col, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
