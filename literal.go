package zzdoc

// parseLiteral renders a backtick-fenced literal block. The dispatcher has
// consumed the first backtick. Interior bytes pass through untouched except
// for the \& prefix on '.' and '\'' and backslash doubling; indentation may
// grow past the entry depth (emitted as literal tabs) but never shrink.
func (p *parser) parseLiteral() error {
	for i := 0; i < 2; i++ {
		b, ok := p.sc.next()
		if !ok || b != '`' {
			return p.fatal(ErrInvalidLiteralOpen)
		}
	}
	if b, ok := p.sc.next(); !ok || b != '\n' {
		return p.fatal(ErrInvalidLiteralOpen)
	}
	p.emit(macroNoFill)
	p.emit(macroIndentOpen)
	entry := p.indent
	if err := p.literalIndent(entry); err != nil {
		return err
	}
	stops := 0
	for {
		b, ok := p.sc.next()
		if !ok {
			return p.fatal(ErrInvalidLiteralClose)
		}
		if b == '`' {
			stops++
			if stops == 3 {
				if nb, ok := p.sc.next(); !ok || nb != '\n' {
					return p.fatal(ErrInvalidLiteralClose)
				}
				break
			}
			continue
		}
		// Backticks that did not complete a terminator are literal.
		for stops > 0 {
			p.emitByte('`')
			stops--
		}
		switch b {
		case '\\':
			p.emit("\\\\")
		case '.', '\'':
			p.emit(zeroWidth)
			p.emitByte(b)
		case '\n':
			p.emitByte('\n')
			if err := p.literalIndent(entry); err != nil {
				return err
			}
		default:
			p.emitByte(b)
		}
	}
	p.emit(macroFill)
	p.emit(macroIndentClose)
	return nil
}

// literalIndent measures the next line's indentation without touching the
// block-level depth. Shrinking below the entry depth is an error; anything
// beyond it is reproduced as literal tabs.
func (p *parser) literalIndent(entry int) error {
	n, err := p.measureIndent()
	if err != nil {
		return err
	}
	if n < entry {
		return p.fatal(ErrLiteralDedent)
	}
	for i := entry; i < n; i++ {
		p.emitByte('\t')
	}
	return nil
}
