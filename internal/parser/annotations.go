package parser

import (
	"strings"

	"jstrip/internal/ast"
	"jstrip/internal/diag"
	"jstrip/internal/token"
)

// parsePrefix собирает аннотации и модификаторы в любом порядке:
// `@A public @B static final`. Аннотации выносятся в d.Annotations с якорем
// на следующий токен, модификаторы остаются в d.Tokens.
func (p *Parser) parsePrefix(d *ast.Decl) bool {
	for {
		switch {
		case p.atAnnotation():
			a, ok := p.parseAnnotation()
			if !ok {
				return false
			}
			a.At = len(d.Tokens)
			d.Annotations = append(d.Annotations, a)
		case p.peek(0).Kind.IsModifier():
			d.Tokens = append(d.Tokens, p.advance())
		case p.atContextualModifier():
			if p.peek(0).IsWord("non") {
				d.Tokens = append(d.Tokens, p.advance(), p.advance())
			}
			d.Tokens = append(d.Tokens, p.advance())
		default:
			return true
		}
	}
}

func (p *Parser) atAnnotation() bool {
	return p.at(token.At) && p.peek(1).Kind != token.KwInterface
}

// sealed и non-sealed — контекстные слова; модификаторами считаем их только
// перед другим модификатором или ключевым словом типа.
func (p *Parser) atContextualModifier() bool {
	n := 1
	switch {
	case p.peek(0).IsWord("sealed"):
	case p.peek(0).IsWord("non") && p.peek(1).Is(token.Minus) && p.peek(2).IsWord("sealed"):
		n = 3
	default:
		return false
	}
	next := p.peek(n)
	switch next.Kind {
	case token.KwClass, token.KwInterface, token.At:
		return true
	}
	return next.Kind.IsModifier() || next.IsWord("sealed") || next.IsWord("non") || next.IsWord("record")
}

// @Name, @a.b.Name, @Name(...)
func (p *Parser) parseAnnotation() (*ast.Annotation, bool) {
	a := &ast.Annotation{}
	a.Tokens = append(a.Tokens, p.advance())
	if !p.at(token.Ident) {
		return nil, p.err(diag.SynBadAnnotation, "expected annotation name after '@', found "+describe(p.peek(0)))
	}
	var name strings.Builder
	name.WriteString(p.peek(0).Text)
	a.Tokens = append(a.Tokens, p.advance())
	for p.at(token.Dot) && p.peek(1).Is(token.Ident) {
		a.Tokens = append(a.Tokens, p.advance())
		name.WriteByte('.')
		name.WriteString(p.peek(0).Text)
		a.Tokens = append(a.Tokens, p.advance())
	}
	a.Name = name.String()
	if p.at(token.LParen) && !p.consumeGroup(&a.Tokens) {
		return nil, false
	}
	return a, true
}
