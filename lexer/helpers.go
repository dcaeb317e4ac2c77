package lexer

func (l *Lexer) read() {
	if l.readpos >= len(l.doc) {
		l.ch = 0
	} else {
		l.ch = l.doc[l.readpos]
	}
	l.pos = l.readpos
	l.readpos++
}

func (l *Lexer) eof() bool {
	return l.pos >= len(l.doc)
}
