package zzdoc

// parseIndent counts leading tabs before a structural line and emits the
// matching .RS 4 / .RE transitions. Depth may grow by at most one level per
// line; it may shrink by any amount, closing one scope per level. A line
// that is only a newline keeps the current depth so blank lines inside an
// indented block do not dedent.
func (p *parser) parseIndent() error {
	n, err := p.measureIndent()
	if err != nil {
		return err
	}
	if n == p.indent {
		return nil
	}
	if n > p.indent+1 {
		return p.fatal(ErrIndentTooLarge)
	}
	if n == p.indent+1 {
		p.emit(macroIndentOpen)
		p.indent = n
		return nil
	}
	for p.indent > n {
		p.emit(macroIndentClose)
		p.indent--
	}
	return nil
}

// measureIndent counts leading tabs and pushes back the first byte after
// them. It applies the blank-line exception but does not change p.indent
// or emit anything; literal blocks use it to police dedents themselves.
func (p *parser) measureIndent() (int, error) {
	n := 0
	for {
		b, ok := p.sc.next()
		if !ok {
			return n, nil
		}
		if b == '\t' {
			n++
			continue
		}
		p.sc.push(b)
		if b == '\n' && p.indent != 0 {
			return p.indent, nil
		}
		return n, nil
	}
}
