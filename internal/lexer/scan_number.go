package lexer

import (
	"jstrip/internal/diag"
	"jstrip/internal/token"
)

// scanNumber сканирует числовые литералы Java:
//   - 0x/0X hex (в т.ч. hex float с p-экспонентой), 0b/0B binary, восьмеричные с ведущим 0
//   - десятичные: [0-9][0-9_]* (опц. .[0-9_]*) (опц. [eE][+-]?[0-9_]+)
//   - .[0-9_]+ (если вызваны после проверки isNumberAfterDot)
//   - суффиксы: L/l для целых, f/F/d/D для плавающих
//
// Расположение '_' не валидируем: для удаления комментариев это не важно.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		kind = token.FloatLit
		lx.eatDigits(isDec)
		goto exponent
	}

	if lx.cursor.Peek() == '0' {
		if _, b1, ok := lx.cursor.Peek2(); ok {
			switch b1 {
			case 'x', 'X':
				lx.cursor.Bump()
				lx.cursor.Bump()
				return lx.scanHexTail(start)
			case 'b', 'B':
				lx.cursor.Bump()
				lx.cursor.Bump()
				if lx.eatDigits(isBin) == 0 {
					return lx.badNumber(start, "expected binary digit after 0b")
				}
				goto suffix
			}
		}
	}

	lx.eatDigits(isDec)

	if lx.cursor.Peek() == '.' {
		// "1.foo" в Java не бывает, но 1..2 тоже не число; берём точку только перед цифрой,
		// экспонентой, суффиксом или не-идентификатором.
		if _, b1, ok := lx.cursor.Peek2(); !ok || !isIdentStartByte(b1) || isExpOrFloatSuffix(b1) {
			lx.cursor.Bump()
			kind = token.FloatLit
			lx.eatDigits(isDec)
		}
	}

exponent:
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		kind = token.FloatLit
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if lx.eatDigits(isDec) == 0 {
			return lx.badNumber(start, "expected digit after exponent")
		}
	}

suffix:
	switch lx.cursor.Peek() {
	case 'l', 'L':
		if kind == token.FloatLit {
			return lx.badNumber(start, "long suffix on floating point literal")
		}
		lx.cursor.Bump()
	case 'f', 'F', 'd', 'D':
		kind = token.FloatLit
		lx.cursor.Bump()
	}

	if isIdentContinueByte(lx.cursor.Peek()) && !lx.cursor.EOF() {
		for isIdentContinueByte(lx.cursor.Peek()) && !lx.cursor.EOF() {
			lx.cursor.Bump()
		}
		return lx.badNumber(start, "invalid character in number literal")
	}
	return lx.emit(kind, start)
}

// scanHexTail дочитывает hex после префикса 0x, включая hex float (0x1.8p3).
func (lx *Lexer) scanHexTail(start Mark) token.Token {
	kind := token.IntLit
	n := lx.eatDigits(isHex)
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		n += lx.eatDigits(isHex)
		kind = token.FloatLit
	}
	if n == 0 {
		return lx.badNumber(start, "expected hex digit after 0x")
	}
	if b := lx.cursor.Peek(); b == 'p' || b == 'P' {
		kind = token.FloatLit
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if lx.eatDigits(isDec) == 0 {
			return lx.badNumber(start, "expected digit after binary exponent")
		}
	} else if kind == token.FloatLit {
		return lx.badNumber(start, "hex float literal requires a binary exponent")
	}

	switch lx.cursor.Peek() {
	case 'l', 'L':
		if kind == token.IntLit {
			lx.cursor.Bump()
		}
	case 'f', 'F', 'd', 'D':
		if kind == token.FloatLit {
			lx.cursor.Bump()
		}
	}
	return lx.emit(kind, start)
}

// eatDigits съедает цифры и '_', возвращает число съеденных цифр.
func (lx *Lexer) eatDigits(ok func(byte) bool) int {
	n := 0
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '_' {
			lx.cursor.Bump()
			continue
		}
		if !ok(b) {
			break
		}
		lx.cursor.Bump()
		n++
	}
	return n
}

func isExpOrFloatSuffix(b byte) bool {
	switch b {
	case 'e', 'E', 'f', 'F', 'd', 'D':
		return true
	}
	return false
}

func (lx *Lexer) badNumber(start Mark, msg string) token.Token {
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexBadNumber, tok.Span, msg)
	return tok
}
