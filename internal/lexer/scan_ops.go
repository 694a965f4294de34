package lexer

import (
	"jstrip/internal/diag"
	"jstrip/internal/token"
)

// maxOperatorLen is the length of the longest Java operator (>>>=).
const maxOperatorLen = 4

// scanOperatorOrPunct жадно подбирает самый длинный оператор: 4, 3, 2, затем 1 байт.
// Угловые скобки отдаются как есть; склейку >> в дженериках разбирает парсер.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	rest := lx.file.Content[lx.cursor.Off:lx.cursor.limit()]
	for n := min(maxOperatorLen, len(rest)); n > 0; n-- {
		if k, ok := token.LookupOperator(string(rest[:n])); ok {
			for range n {
				lx.cursor.Bump()
			}
			return lx.emit(k, start)
		}
	}

	// неизвестный символ: съедаем руну целиком
	lx.bumpRune()
	if lx.cursor.Off == uint32(start) {
		lx.cursor.Bump()
	}
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnknownChar, tok.Span, "unknown character "+quoteText(tok.Text))
	return tok
}

func quoteText(s string) string {
	return "'" + s + "'"
}
