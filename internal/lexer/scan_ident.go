package lexer

import (
	"jstrip/internal/token"
)

const utf8RuneSelf = 0x80

// scanIdentOrKeyword сканирует [Ident] и проверяет через LookupKeyword.
// Контекстные слова (record, sealed, var, yield, ...) остаются Ident.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	switch {
	case sz == 0:
		return lx.emit(token.Invalid, start)
	case r < utf8RuneSelf && !isIdentStartByte(byte(r)):
		return lx.scanOperatorOrPunct()
	case r >= utf8RuneSelf && !isIdentStartRune(r):
		return lx.scanOperatorOrPunct()
	}
	lx.bumpRune()

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r, _ := lx.peekRune()
		if !isIdentContinueRune(r) {
			break
		}
		lx.bumpRune()
	}

	tok := lx.emit(token.Ident, start)
	if k, ok := token.LookupKeyword(tok.Text); ok {
		tok.Kind = k
	}
	return tok
}
