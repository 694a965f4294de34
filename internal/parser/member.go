package parser

import (
	"jstrip/internal/ast"
	"jstrip/internal/diag"
	"jstrip/internal/source"
	"jstrip/internal/token"
)

type memberShape uint8

const (
	shapeField memberShape = iota
	shapeMethod
	shapeConstructor
	shapeCompactConstructor
)

// parseMember разбирает один член тела типа owner.
func (p *Parser) parseMember(owner ast.TypeKind) (ast.Member, bool) {
	d := &ast.Decl{}
	if p.at(token.Semicolon) {
		d.Tokens = append(d.Tokens, p.advance())
		return ast.OtherMember("", d), true
	}
	if !p.parsePrefix(d) {
		return ast.Member{}, false
	}

	switch {
	case p.at(token.LBrace):
		// {...} или static {...}
		if !p.consumeGroup(&d.Tokens) {
			return ast.Member{}, false
		}
		return ast.OtherMember("", d), true
	case p.atTypeStart():
		td, ok := p.parseTypeDecl(d)
		if !ok {
			return ast.Member{}, false
		}
		return ast.TypeMember(td), true
	}

	shape, name, ok := p.classify(owner)
	if !ok {
		return ast.Member{}, false
	}
	switch shape {
	case shapeField:
		if !p.collectUntil(&d.Tokens, stopAt(token.Semicolon), diag.SynExpectSemicolon, "expected ';' after field "+name) {
			return ast.Member{}, false
		}
		d.Tokens = append(d.Tokens, p.advance())
		return ast.FieldMember(name, d), true

	case shapeCompactConstructor:
		if !p.collectUntil(&d.Tokens, stopAt(token.LBrace), diag.SynExpectMemberBody, "expected constructor body") {
			return ast.Member{}, false
		}
		if !p.consumeGroup(&d.Tokens) {
			return ast.Member{}, false
		}
		return ast.OtherMember(name, d), true
	}

	if !p.parseCallable(d, name) {
		return ast.Member{}, false
	}
	if shape == shapeConstructor || owner == ast.TypeAnnotation {
		return ast.OtherMember(name, d), true
	}
	return ast.MethodMember(name, d), true
}

// parseCallable: тип и имя, (параметры), throws/[]/default, затем тело или ';'.
func (p *Parser) parseCallable(d *ast.Decl, name string) bool {
	if !p.collectUntil(&d.Tokens, stopAt(token.LParen), diag.SynExpectMemberBody, "expected parameter list of "+name) {
		return false
	}
	if !p.consumeGroup(&d.Tokens) {
		return false
	}
	msg := "expected body or ';' after " + name + "(...)"
	if !p.collectUntil(&d.Tokens, stopAt(token.LBrace, token.Semicolon, token.KwDefault), diag.SynExpectMemberBody, msg) {
		return false
	}
	switch p.peek(0).Kind {
	case token.KwDefault:
		// элемент аннотации: default может быть {..., ...}
		d.Tokens = append(d.Tokens, p.advance())
		if !p.collectUntil(&d.Tokens, stopAt(token.Semicolon), diag.SynExpectSemicolon, "expected ';' after default value") {
			return false
		}
		d.Tokens = append(d.Tokens, p.advance())
	case token.LBrace:
		return p.consumeGroup(&d.Tokens)
	default:
		d.Tokens = append(d.Tokens, p.advance())
	}
	return true
}

// classify смотрит вперёд, не съедая токены, и решает, что перед нами:
// '=' или ';' на нулевой глубине раньше '(' — поле; '(' — метод или
// конструктор (одно имя без типа); '{' — компактный конструктор record.
func (p *Parser) classify(owner ast.TypeKind) (memberShape, string, bool) {
	i := 0
	if p.peek(0).Is(token.Lt) {
		i = p.skipTypeParams(0)
	}
	start := i
	name := ""
	depth, angle := 0, 0
	for {
		tok := p.peek(i)
		top := depth == 0 && angle == 0
		switch tok.Kind {
		case token.EOF:
			return 0, "", p.errAt(diag.SynExpectSemicolon, p.spanAt(i), "unexpected end of file in member declaration")
		case token.RBrace, token.RParen:
			return 0, "", p.errAt(diag.SynExpectSemicolon, p.spanAt(i), "expected ';' or a body before "+describe(tok))
		case token.At:
			if !p.peek(i + 1).Is(token.KwInterface) {
				i = p.skipAnnotation(i)
				continue
			}
		case token.LBracket:
			depth++
		case token.RBracket:
			depth--
		case token.Lt:
			angle++
		case token.Gt:
			angle--
		case token.Shr:
			angle -= 2
		case token.UShr:
			angle -= 3
		case token.Ident:
			if top {
				name = tok.Text
			}
		case token.Assign, token.Semicolon, token.Comma:
			if top {
				return shapeField, name, true
			}
		case token.LParen:
			if i == start+1 && p.peek(start).IsIdent() {
				return shapeConstructor, name, true
			}
			return shapeMethod, name, true
		case token.LBrace:
			if owner == ast.TypeRecord && i == start+1 && p.peek(start).IsIdent() {
				return shapeCompactConstructor, name, true
			}
			return 0, "", p.errAt(diag.SynUnexpectedToken, tok.Span, "unexpected '{' in member declaration")
		}
		i++
	}
}

// spanAt — span токена peek(i); у EOF берём конец предыдущего.
func (p *Parser) spanAt(i int) source.Span {
	tok := p.peek(i)
	if tok.Kind == token.EOF && p.pos+i > 0 {
		prev := p.toks[min(p.pos+i, len(p.toks)-1)-1].Span
		return source.Span{File: prev.File, Start: prev.End, End: prev.End}
	}
	return tok.Span
}

// skipTypeParams пропускает <...> начиная с peek(i), возвращает индекс после '>'.
func (p *Parser) skipTypeParams(i int) int {
	depth := 0
	for {
		switch p.peek(i).Kind {
		case token.Lt:
			depth++
		case token.Gt:
			depth--
		case token.Shr:
			depth -= 2
		case token.UShr:
			depth -= 3
		case token.EOF, token.LBrace, token.Semicolon:
			return i
		}
		i++
		if depth <= 0 {
			return i
		}
	}
}

// skipAnnotation пропускает @a.b.Name(...) начиная с peek(i).
func (p *Parser) skipAnnotation(i int) int {
	i++ // '@'
	for p.peek(i).IsIdent() {
		i++
		if !p.peek(i).Is(token.Dot) || !p.peek(i + 1).IsIdent() {
			break
		}
		i++
	}
	if !p.peek(i).Is(token.LParen) {
		return i
	}
	depth := 0
	for {
		switch p.peek(i).Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
		case token.EOF:
			return i
		}
		i++
		if depth == 0 {
			return i
		}
	}
}
