package zzdoc

import "bytes"

// tableCell is scratch state for one table parse; nothing survives the
// emission. Text is raw source, re-rendered through the inline engine when
// the table is written out.
type tableCell struct {
	align string
	text  []byte
}

// parseTable renders a table. The opening byte picks the border style:
// '[' draws all cell borders, ']' only the outer box, '|' none. Rows after
// the first open with '|'; ':' opens the next cell of the current row. The
// byte after a row or cell marker picks the column alignment, with a space
// inheriting from the previous row. A blank line ends the table.
func (p *parser) parseTable(style byte) error {
	var rows [][]tableCell
	var cur []tableCell
	for {
		cell, err := p.parseTableCell(rows, len(cur))
		if err != nil {
			return err
		}
		cur = append(cur, cell)

		b, ok := p.sc.next()
		if !ok || b == '\n' {
			// End of table.
			if len(rows) > 0 && len(cur) != len(rows[0]) {
				return p.fatal(ErrUnevenColumns)
			}
			rows = append(rows, cur)
			break
		}
		switch b {
		case '|':
			if len(rows) > 0 && len(cur) != len(rows[0]) {
				return p.fatal(ErrUnevenColumns)
			}
			rows = append(rows, cur)
			cur = nil
		case ':':
		default:
			return p.fatal(ErrUnexpectedCharacter)
		}
	}
	return p.emitTable(style, rows)
}

// parseTableCell reads one alignment marker and the raw cell text through
// the end of the line.
func (p *parser) parseTableCell(rows [][]tableCell, col int) (tableCell, error) {
	var cell tableCell
	b, ok := p.sc.next()
	if !ok {
		return cell, p.fatal(ErrUnexpectedEOF)
	}
	switch b {
	case '[':
		cell.align = "l"
	case '-':
		cell.align = "c"
	case ']':
		cell.align = "r"
	case '<':
		cell.align = "lx"
	case '=':
		cell.align = "cx"
	case '>':
		cell.align = "rx"
	case ' ':
		if len(rows) == 0 {
			return cell, p.fatal(ErrNoPreviousRow)
		}
		prev := rows[len(rows)-1]
		if col >= len(prev) {
			return cell, p.fatal(ErrNoPreviousRow)
		}
		cell.align = prev[col].align
	default:
		return cell, p.fatal(ErrUnexpectedCharacter)
	}

	b, ok = p.sc.next()
	if !ok {
		return cell, p.fatal(ErrExpectedSpaceOrNewline)
	}
	switch b {
	case '\n':
		return cell, nil
	case ' ':
	default:
		return cell, p.fatal(ErrExpectedSpaceOrNewline)
	}
	for {
		b, ok := p.sc.next()
		if !ok || b == '\n' {
			break
		}
		cell.text = append(cell.text, b)
		if b == '\\' {
			// Keep the escaped byte with its backslash so an escaped
			// newline does not end the cell.
			if esc, ok := p.sc.next(); ok {
				cell.text = append(cell.text, esc)
			}
		}
	}
	if bytes.Contains(cell.text, []byte(cellClose)) {
		return cell, p.fatal(ErrIllegalCellContents)
	}
	return cell, nil
}

func (p *parser) emitTable(style byte, rows [][]tableCell) error {
	p.emit(macroTableOpen)
	switch style {
	case '[':
		p.emit(tableAllBox)
	case ']':
		p.emit(tableBox)
	}
	for i, row := range rows {
		for j, cell := range row {
			if j > 0 {
				p.emitByte(' ')
			}
			p.emit(cell.align)
		}
		if i == len(rows)-1 {
			p.emitByte('.')
		}
		p.emitByte('\n')
	}
	for _, row := range rows {
		for j, cell := range row {
			p.emit(cellOpen)
			p.sc.inject(append(cell.text, '\n'))
			if err := p.parseText(); err != nil {
				return err
			}
			p.emit(cellClose)
			if j < len(row)-1 {
				p.emitByte('\t')
			} else {
				p.emitByte('\n')
			}
		}
	}
	p.emit(macroTableClose)
	p.emit(macroTableSpace)
	return nil
}
