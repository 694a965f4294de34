package lexer

import (
	"jstrip/internal/diag"
	"jstrip/internal/token"
)

// scanString сканирует "..." с escape-последовательностями.
// Перевод строки внутри литерала — ошибка; токен обрывается перед ним.
func (lx *Lexer) scanString() token.Token {
	return lx.scanQuoted('"', token.StringLit, diag.LexUnterminatedString, "unterminated string literal")
}

// scanChar сканирует '...'. Содержимое не проверяем: 'ab' тоже примет.
func (lx *Lexer) scanChar() token.Token {
	return lx.scanQuoted('\'', token.CharLit, diag.LexUnterminatedChar, "unterminated character literal")
}

func (lx *Lexer) scanQuoted(quote byte, kind token.Kind, code diag.Code, msg string) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // открывающая кавычка

	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case quote:
			lx.cursor.Bump()
			return lx.emit(kind, start)
		case '\\':
			lx.cursor.Bump()
			if c := lx.cursor.Peek(); c != '\n' && c != '\r' {
				lx.cursor.Bump()
			}
		case '\n', '\r':
			tok := lx.emit(token.Invalid, start)
			lx.errLex(code, tok.Span, msg)
			return tok
		default:
			lx.cursor.Bump()
		}
	}
	tok := lx.emit(token.Invalid, start)
	lx.errLex(code, tok.Span, msg)
	return tok
}

// scanTextBlock сканирует """...""". После открывающих кавычек обязателен перевод строки.
func (lx *Lexer) scanTextBlock() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.cursor.Bump()
	lx.cursor.Bump()

	for isSpace(lx.cursor.Peek()) && !lx.cursor.EOF() {
		lx.cursor.Bump()
	}
	if c := lx.cursor.Peek(); lx.cursor.EOF() || (c != '\n' && c != '\r') {
		tok := lx.emit(token.Invalid, start)
		lx.errLex(diag.LexUnterminatedTextBlock, tok.Span, "text block must start with a line break after \"\"\"")
		return tok
	}

	for !lx.cursor.EOF() {
		if lx.cursor.HasPrefix(`"""`) {
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.emit(token.TextBlock, start)
		}
		if lx.cursor.Bump() == '\\' {
			lx.cursor.Bump()
		}
	}
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnterminatedTextBlock, tok.Span, "unterminated text block")
	return tok
}
