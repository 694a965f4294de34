package lexer

import (
	"jstrip/internal/diag"
	"jstrip/internal/token"
)

// collectLeadingTrivia собирает подряд идущие trivia перед значимым токеном.
// - ' ', '\t', '\f' коалесцируются в один TriviaSpace
// - подряд идущие '\n' и '\r' коалесцируются в один TriviaNewline
// - //... до конца строки -> TriviaLineComment
// - /** ... */ -> TriviaDocComment, /* ... */ -> TriviaBlockComment (без вложенности)
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		switch {
		case isSpace(b):
			for isSpace(lx.cursor.Peek()) && !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaSpace, start)
			continue

		case b == '\n' || b == '\r':
			for c := lx.cursor.Peek(); (c == '\n' || c == '\r') && !lx.cursor.EOF(); c = lx.cursor.Peek() {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaNewline, start)
			continue

		case b == '/':
			if lx.scanCommentIntoHold() {
				continue
			}
		}
		break
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\f'
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}

// //... , /*...*/ , /**...*/
func (lx *Lexer) scanCommentIntoHold() bool {
	start := lx.cursor.Mark()
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != '/' || (b1 != '/' && b1 != '*') {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()

	if b1 == '/' {
		for c := lx.cursor.Peek(); !lx.cursor.EOF() && c != '\n' && c != '\r'; c = lx.cursor.Peek() {
			lx.cursor.Bump()
		}
		lx.pushTrivia(token.TriviaLineComment, start)
		return true
	}

	// "/**/" — пустой блочный комментарий, а не doc.
	kind := token.TriviaBlockComment
	if lx.cursor.Peek() == '*' && !lx.cursor.HasPrefix("*/") {
		kind = token.TriviaDocComment
	}
	closed := false
	for !lx.cursor.EOF() {
		if lx.cursor.HasPrefix("*/") {
			lx.cursor.Bump()
			lx.cursor.Bump()
			closed = true
			break
		}
		lx.cursor.Bump()
	}
	if !closed {
		lx.errLex(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(start), "unterminated block comment")
	}
	lx.pushTrivia(kind, start)
	return true
}
