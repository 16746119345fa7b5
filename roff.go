package zzdoc

// roff macro tokens. These must match byte-for-byte what existing manual
// renderers consume.
const (
	macroTitle       = ".TH"
	macroSection     = ".SH "
	macroSubsection  = ".SS "
	macroPara        = ".PP\n"
	macroIndentOpen  = ".RS 4\n"
	macroIndentClose = ".RE\n"
	macroBullet      = ".IP \\(bu 4\n"
	macroListTight   = ".PD 0\n"
	macroListEnd     = ".PD\n"
	macroNoFill      = ".nf\n"
	macroFill        = ".fi\n"
	macroBreak       = "\n.br\n"
	macroTableOpen   = ".TS\n"
	macroTableClose  = ".TE\n"
	macroTableSpace  = ".sp 1\n"

	tableAllBox = "allbox;"
	tableBox    = "box;"

	cellOpen  = "T{\n"
	cellClose = "T}"

	boldOpen      = "\\fB"
	underlineOpen = "\\fI"
	formatClose   = "\\fR"

	// zeroWidth suppresses roff's sentence-spacing and control heuristics.
	zeroWidth = "\\&"
)

func (p *parser) emit(s string) {
	p.out.WriteString(s)
}

func (p *parser) emitByte(b byte) {
	p.out.WriteByte(b)
}
