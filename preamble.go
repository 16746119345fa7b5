package zzdoc

import "strconv"

// parsePreamble consumes the mandatory first line, name(section) with up to
// two quoted extra fields, and emits the .TH header. The section is a digit
// 1-9 optionally followed by an alphanumeric subsection suffix.
func (p *parser) parsePreamble() error {
	var name []byte
	for {
		b, ok := p.sc.next()
		if !ok {
			break
		}
		if isNameByte(b) {
			name = append(name, b)
			continue
		}
		p.sc.push(b)
		break
	}
	if len(name) == 0 {
		return p.fatal(ErrExpectedPreamble)
	}
	if b, ok := p.sc.next(); !ok || b != '(' {
		return p.fatal(ErrExpectedSection)
	}
	var section []byte
	for {
		b, ok := p.sc.next()
		if !ok {
			return p.fatal(ErrExpectedManualSection)
		}
		if b == ')' {
			break
		}
		if b == '\n' {
			return p.fatal(ErrExpectedManualSection)
		}
		if !isAlnum(b) {
			return p.fatal(ErrUnexpectedCharacter)
		}
		section = append(section, b)
		continue
	}
	digits := 0
	for digits < len(section) && section[digits] >= '0' && section[digits] <= '9' {
		digits++
	}
	if digits == 0 {
		return p.fatal(ErrInvalidSection)
	}
	n, err := strconv.Atoi(string(section[:digits]))
	if err != nil || n < 1 || n > 9 {
		return p.fatal(ErrInvalidSection)
	}

	var extras [2][]byte
	nextras := 0
	for {
		b, ok := p.sc.next()
		if !ok || b == '\n' {
			break
		}
		switch b {
		case ' ':
			continue
		case '"':
			if nextras == 2 {
				return p.fatal(ErrTooManyPreambleFields)
			}
			field, err := p.readQuoted()
			if err != nil {
				return err
			}
			extras[nextras] = field
			nextras++
		default:
			return p.fatal(ErrUnexpectedCharacter)
		}
	}

	p.emit(macroTitle)
	p.emit(" \"")
	p.out.Write(name)
	p.emit("\" \"")
	p.out.Write(section)
	p.emit("\" \"")
	p.emit(p.date.UTC().Format("2006-01-02"))
	p.emitByte('"')
	for i := 0; i < nextras; i++ {
		p.emit(" \"")
		p.out.Write(extras[i])
		p.emitByte('"')
	}
	p.emitByte('\n')
	return nil
}

func (p *parser) readQuoted() ([]byte, error) {
	var field []byte
	for {
		b, ok := p.sc.next()
		if !ok || b == '\n' {
			return nil, p.fatal(ErrUnclosedPreambleField)
		}
		if b == '"' {
			return field, nil
		}
		field = append(field, b)
	}
}

func isNameByte(b byte) bool {
	return isAlnum(b) || b == '_' || b == '-' || b == '.'
}
