package zzdoc

// parseText renders one run of inline text, ending at an unescaped newline
// (which is copied through) or end of input. Bold and underline flags live
// on the parser so they span the lines of a paragraph.
func (p *parser) parseText() error {
	emitted := 0
	last := byte(' ')
	for {
		b, ok := p.sc.next()
		if !ok {
			return nil
		}
		switch b {
		case '\\':
			esc, ok := p.sc.next()
			if !ok {
				return p.fatal(ErrUnexpectedEOF)
			}
			if esc == '\\' {
				// roff spells a literal backslash \e.
				p.emit("\\e")
			} else {
				p.emitByte(esc)
			}
			b = esc
		case '*':
			if err := p.toggleBold(); err != nil {
				return err
			}
		case '_':
			// Underscores inside words are literal; only at a word
			// boundary do they toggle underline.
			next := byte(0)
			nb, peeked := p.sc.next()
			if peeked {
				next = nb
			}
			if !isAlnum(last) || (p.underline && !isAlnum(next)) {
				if err := p.toggleUnderline(); err != nil {
					return err
				}
			} else {
				p.emitByte('_')
			}
			if peeked {
				p.sc.push(nb)
			}
		case '+':
			nb, ok := p.sc.next()
			if !ok || nb != '+' {
				p.emitByte('+')
				if ok {
					p.sc.push(nb)
				}
				break
			}
			nb2, ok := p.sc.next()
			if !ok || nb2 != '\n' {
				p.emit("++")
				if ok {
					p.sc.push(nb2)
				}
				break
			}
			p.emit(macroBreak)
			nb3, ok := p.sc.next()
			if ok {
				if nb3 == '\n' {
					return p.fatal(ErrBreakBeforeBlank)
				}
				p.sc.push(nb3)
			}
		case '\n':
			p.emitByte('\n')
			return nil
		case '.', '\'':
			if emitted == 0 {
				p.emit(zeroWidth)
			}
			p.emitByte(b)
			p.emit(zeroWidth)
		case '!', '?':
			p.emitByte(b)
			p.emit(zeroWidth)
		default:
			p.emitByte(b)
		}
		emitted++
		last = b
	}
}

func (p *parser) toggleBold() error {
	if p.underline {
		return p.fatal(ErrNestedFormat)
	}
	p.bold = !p.bold
	if p.bold {
		p.emit(boldOpen)
	} else {
		p.emit(formatClose)
	}
	return nil
}

func (p *parser) toggleUnderline() error {
	if p.bold {
		return p.fatal(ErrNestedFormat)
	}
	p.underline = !p.underline
	if p.underline {
		p.emit(underlineOpen)
	} else {
		p.emit(formatClose)
	}
	return nil
}

// isAlnum is deliberately ASCII-only: non-ASCII bytes never bind an
// underscore into a word.
func isAlnum(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}
