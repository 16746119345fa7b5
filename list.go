package zzdoc

import "strconv"

// parseList renders a bullet or numbered list. The dispatcher has consumed
// the delimiter (and, for numbered lists, its mandatory space). Items are
// emitted immediately; only the running ordinal survives between items.
func (p *parser) parseList(ordered bool) error {
	if !ordered {
		b, ok := p.sc.next()
		if !ok || b != ' ' {
			return p.fatal(ErrExpectedSpace)
		}
	}
	num := 1
	p.emit(macroListTight)
	p.listHeader(ordered, &num)
	if err := p.parseText(); err != nil {
		return err
	}
	for {
		b, ok := p.sc.next()
		if !ok {
			break
		}
		switch b {
		case ' ':
			// Wrapped continuation of the current item.
			b, ok := p.sc.next()
			if !ok || b != ' ' {
				return p.fatal(ErrExpectedTwoSpaces)
			}
			if err := p.parseText(); err != nil {
				return err
			}
		case '-', '.':
			b, ok := p.sc.next()
			if !ok || b != ' ' {
				return p.fatal(ErrExpectedSpace)
			}
			p.listHeader(ordered, &num)
			if err := p.parseText(); err != nil {
				return err
			}
		default:
			p.sc.push(b)
			p.emit(macroListEnd)
			return nil
		}
	}
	p.emit(macroListEnd)
	return nil
}

func (p *parser) listHeader(ordered bool, num *int) {
	if !ordered {
		p.emit(macroBullet)
		return
	}
	p.emit(".IP ")
	p.emit(strconv.Itoa(*num))
	p.emit(". 4\n")
	*num++
}
