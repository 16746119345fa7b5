package zzdoc

import (
	"bufio"
	"fmt"
	"io"
	"sync"
	"time"
)

var parserPool = sync.Pool{
	New: func() any {
		return &parser{}
	},
}

var readerPool = sync.Pool{
	New: func() any {
		return bufio.NewReaderSize(nil, 4096)
	},
}

var writerPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(nil, 4096)
	},
}

// GenerateRequest configures Generate.
type GenerateRequest struct {
	Reader io.Reader
	Writer io.Writer

	// Date is used for the .TH header date. The zero value means "today"
	// (wall clock); set it to make output deterministic.
	Date time.Time
}

// parser is the shared state of one conversion: the byte source, the output
// sink, the current tab-indent depth, and the inline formatting flags.
type parser struct {
	sc  scanner
	out *bufio.Writer

	indent    int
	bold      bool
	underline bool
	date      time.Time
}

func (p *parser) reset(out *bufio.Writer, in *bufio.Reader, date time.Time) {
	p.sc.reset(in)
	p.out = out
	p.indent = 0
	p.bold = false
	p.underline = false
	if date.IsZero() {
		date = time.Now()
	}
	p.date = date
}

// fatal wraps a grammar violation with the current input position.
func (p *parser) fatal(err error) error {
	return &ParseError{Line: p.sc.line, Col: p.sc.col, Err: err}
}

// Generate converts manual-page source from req.Reader and writes roff to
// req.Writer. The first grammar violation aborts the conversion; bytes may
// already have been written to the sink by then, so callers needing atomic
// output should write to a temporary location and rename on success.
func Generate(req GenerateRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("generate: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("generate: writer is nil")
	}
	in := readerPool.Get().(*bufio.Reader)
	out := writerPool.Get().(*bufio.Writer)
	in.Reset(req.Reader)
	out.Reset(req.Writer)
	p := parserPool.Get().(*parser)
	p.reset(out, in, req.Date)

	err := p.run()
	if ferr := out.Flush(); err == nil && ferr != nil {
		err = fmt.Errorf("generate: write: %w", ferr)
	}
	if err == nil && p.sc.err != nil {
		err = fmt.Errorf("generate: read: %w", p.sc.err)
	}

	in.Reset(nil)
	out.Reset(io.Discard)
	readerPool.Put(in)
	writerPool.Put(out)
	parserPool.Put(p)
	return err
}

func (p *parser) run() error {
	if err := p.parsePreamble(); err != nil {
		return err
	}
	return p.parseDocument()
}

// parseDocument is the top-level loop: evaluate indentation, then dispatch
// on the first byte of the line.
func (p *parser) parseDocument() error {
	for {
		if err := p.parseIndent(); err != nil {
			return err
		}
		b, ok := p.sc.next()
		if !ok {
			break
		}
		var err error
		switch b {
		case ';':
			err = p.parseComment()
		case '#':
			if p.indent == 0 {
				err = p.parseHeading()
			} else {
				p.sc.push('#')
				err = p.parseText()
			}
		case '-':
			err = p.parseList(false)
		case '.':
			nb, ok := p.sc.next()
			if ok && nb == ' ' {
				err = p.parseList(true)
			} else {
				// A leading '.' that is not list syntax is ordinary
				// text; return both bytes so the inline engine sees
				// the '.' as the first character of the run.
				if ok {
					p.sc.push(nb)
				}
				p.sc.push('.')
				err = p.parseText()
			}
		case '`':
			err = p.parseLiteral()
		case '[', '|', ']':
			if p.indent != 0 {
				return p.fatal(ErrIndentedTable)
			}
			err = p.parseTable(b)
		case ' ':
			return p.fatal(ErrTabsRequired)
		case '\n':
			if p.bold || p.underline {
				return p.fatal(ErrUnclosedFormat)
			}
			p.emit(macroPara)
		default:
			p.sc.push(b)
			err = p.parseText()
		}
		if err != nil {
			return err
		}
	}
	if p.bold || p.underline {
		return p.fatal(ErrUnclosedFormat)
	}
	return nil
}

// parseComment discards a ';' comment line. Exactly one space must follow
// the semicolon.
func (p *parser) parseComment() error {
	b, ok := p.sc.next()
	if !ok || b != ' ' {
		return p.fatal(ErrExpectedSpace)
	}
	for {
		b, ok := p.sc.next()
		if !ok || b == '\n' {
			return nil
		}
	}
}

// parseHeading handles '#' headings at indent zero. The heading text is
// copied verbatim through the newline.
func (p *parser) parseHeading() error {
	level := 1
	for {
		b, ok := p.sc.next()
		if !ok {
			return p.fatal(ErrInvalidHeading)
		}
		if b == '#' {
			level++
			continue
		}
		if b != ' ' {
			return p.fatal(ErrInvalidHeading)
		}
		break
	}
	switch level {
	case 1:
		p.emit(macroSection)
	case 2:
		p.emit(macroSubsection)
	default:
		return p.fatal(ErrHeadingTooDeep)
	}
	for {
		b, ok := p.sc.next()
		if !ok {
			p.emitByte('\n')
			return nil
		}
		p.emitByte(b)
		if b == '\n' {
			return nil
		}
	}
}
