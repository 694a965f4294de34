package parser

import (
	"jstrip/internal/ast"
	"jstrip/internal/diag"
	"jstrip/internal/token"
)

// atTypeStart: class, interface, enum, @interface или record Name( / record Name<
func (p *Parser) atTypeStart() bool {
	switch p.peek(0).Kind {
	case token.KwClass, token.KwInterface, token.KwEnum:
		return true
	case token.At:
		return p.peek(1).Is(token.KwInterface)
	case token.Ident:
		return p.atRecordStart()
	}
	return false
}

func (p *Parser) atRecordStart() bool {
	if !p.peek(0).IsWord("record") || !p.peek(1).IsIdent() {
		return false
	}
	k := p.peek(2).Kind
	return k == token.LParen || k == token.Lt
}

func (p *Parser) atModuleStart() bool {
	i := 0
	if p.peek(0).IsWord("open") {
		i = 1
	}
	return p.peek(i).IsWord("module") && p.peek(i+1).IsIdent()
}

// parseTypeDecl разбирает заголовок и тело; d уже содержит префикс.
func (p *Parser) parseTypeDecl(d *ast.Decl) (*ast.TypeDecl, bool) {
	td := &ast.TypeDecl{}
	switch p.peek(0).Kind {
	case token.KwClass:
		td.Kind = ast.TypeClass
	case token.KwInterface:
		td.Kind = ast.TypeInterface
	case token.KwEnum:
		td.Kind = ast.TypeEnum
	case token.At:
		td.Kind = ast.TypeAnnotation
		d.Tokens = append(d.Tokens, p.advance()) // '@', дальше interface
	default:
		td.Kind = ast.TypeRecord
	}
	d.Tokens = append(d.Tokens, p.advance())

	if !p.at(token.Ident) {
		return nil, p.err(diag.SynExpectIdentifier, "expected "+td.Kind.String()+" name, found "+describe(p.peek(0)))
	}
	td.Name = p.peek(0).Text
	d.Tokens = append(d.Tokens, p.advance())

	// type parameters, record components, extends/implements/permits
	if !p.collectUntil(&d.Tokens, stopAt(token.LBrace, token.Semicolon), diag.SynExpectTypeBody, "expected '{' to open "+td.Name) {
		return nil, false
	}
	if !p.at(token.LBrace) {
		return nil, p.err(diag.SynExpectTypeBody, "expected '{' to open "+td.Name+", found "+describe(p.peek(0)))
	}
	open := p.advance()
	d.Tokens = append(d.Tokens, open)
	td.Header = *d

	if td.Kind == ast.TypeEnum && !p.parseEnumConstants(td) {
		return nil, false
	}
	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			return nil, p.errAt(diag.SynUnclosedDelimiter, open.Span, "unclosed '{' of "+td.Name)
		}
		m, ok := p.parseMember(td.Kind)
		if !ok {
			return nil, false
		}
		td.Members = append(td.Members, m)
	}
	td.Close = p.advance()
	return td, true
}

// parseEnumConstants забирает список констант до ';' или '}' одним членом Other.
func (p *Parser) parseEnumConstants(td *ast.TypeDecl) bool {
	d := &ast.Decl{}
	if !p.collectUntil(&d.Tokens, stopAt(token.Semicolon, token.RBrace), diag.SynUnclosedDelimiter, "unclosed enum body of "+td.Name) {
		return false
	}
	if p.at(token.Semicolon) {
		d.Tokens = append(d.Tokens, p.advance())
	}
	if len(d.Tokens) > 0 {
		td.Members = append(td.Members, ast.OtherMember("", d))
	}
	return true
}
