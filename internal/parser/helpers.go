package parser

import (
	"jstrip/internal/ast"
	"jstrip/internal/diag"
	"jstrip/internal/source"
	"jstrip/internal/token"
)

func (p *Parser) peek(n int) token.Token {
	i := min(p.pos+n, len(p.toks)-1)
	return p.toks[i]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek(0).Kind == k
}

// advance — съедает текущий токен; EOF не съедается никогда.
func (p *Parser) advance() token.Token {
	tok := p.peek(0)
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

// expectInto — ожидаем токен k и дописываем его в d. Если нет — репортим.
func (p *Parser) expectInto(d *ast.Decl, k token.Kind, code diag.Code, msg string) bool {
	if !p.at(k) {
		return p.err(code, msg+", found "+describe(p.peek(0)))
	}
	d.Tokens = append(d.Tokens, p.advance())
	return true
}

// err репортит ошибку на текущем токене и всегда возвращает false,
// чтобы вызывающий мог написать `return p.err(...)`.
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.errAt(code, p.diagSpan(), msg)
}

func (p *Parser) errAt(code diag.Code, sp source.Span, msg string) bool {
	if !p.failed {
		p.failed = true
		p.first = msg
		diag.ReportError(p.opts.Reporter, code, sp, msg)
	}
	return false
}

func (p *Parser) diagSpan() source.Span {
	return p.spanAt(0)
}

func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of file"
	case token.Ident:
		return "identifier '" + tok.Text + "'"
	}
	return "'" + tok.Text + "'"
}

func stopAt(kinds ...token.Kind) func(token.Kind) bool {
	return func(k token.Kind) bool {
		for _, s := range kinds {
			if k == s {
				return true
			}
		}
		return false
	}
}

func isOpener(k token.Kind) bool {
	return k == token.LParen || k == token.LBracket || k == token.LBrace
}

func isCloser(k token.Kind) bool {
	return k == token.RParen || k == token.RBracket || k == token.RBrace
}

func closerOf(k token.Kind) token.Kind {
	switch k {
	case token.LParen:
		return token.RParen
	case token.LBracket:
		return token.RBracket
	default:
		return token.RBrace
	}
}

// consumeGroup съедает открывающую скобку и всё до парной закрывающей включительно.
func (p *Parser) consumeGroup(dst *[]token.Token) bool {
	open := p.advance()
	*dst = append(*dst, open)
	stack := []token.Token{open}
	for len(stack) > 0 {
		tok := p.peek(0)
		switch {
		case tok.Kind == token.EOF:
			top := stack[len(stack)-1]
			return p.errAt(diag.SynUnclosedDelimiter, top.Span, "unclosed '"+top.Text+"'")
		case isOpener(tok.Kind):
			stack = append(stack, tok)
		case isCloser(tok.Kind):
			top := stack[len(stack)-1]
			if closerOf(top.Kind) != tok.Kind {
				return p.errAt(diag.SynUnmatchedCloser, tok.Span, "'"+tok.Text+"' does not match '"+top.Text+"'")
			}
			stack = stack[:len(stack)-1]
		}
		*dst = append(*dst, p.advance())
	}
	return true
}

// collectUntil дописывает токены в dst, пока на нулевой глубине не встретится stop.
// Сам stop-токен не съедается. Закрывающая скобка или EOF раньше stop — ошибка code.
func (p *Parser) collectUntil(dst *[]token.Token, stop func(token.Kind) bool, code diag.Code, msg string) bool {
	for {
		tok := p.peek(0)
		switch {
		case stop(tok.Kind):
			return true
		case isOpener(tok.Kind):
			if !p.consumeGroup(dst) {
				return false
			}
			continue
		case isCloser(tok.Kind), tok.Kind == token.EOF:
			return p.err(code, msg+", found "+describe(tok))
		}
		*dst = append(*dst, p.advance())
	}
}
