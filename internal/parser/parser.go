package parser

import (
	"errors"
	"fmt"

	"jstrip/internal/ast"
	"jstrip/internal/diag"
	"jstrip/internal/lexer"
	"jstrip/internal/source"
	"jstrip/internal/token"
)

// ErrParse is returned when no usable tree could be built.
var ErrParse = errors.New("parse failed")

type Options struct {
	Reporter diag.Reporter
}

type Result struct {
	Unit *ast.Unit
	Bag  *diag.Bag
}

// Parser — состояние парсера на один файл
type Parser struct {
	file   *source.File
	toks   []token.Token // весь поток, последний всегда EOF
	pos    int
	opts   Options
	failed bool
	first  string // сообщение первой ошибки
}

// Parse лексит и разбирает файл, отправляя диагностики в opts.Reporter.
func Parse(file *source.File, opts Options) (Result, error) {
	lx := lexer.New(file, lexer.Options{Reporter: opts.Reporter})
	return ParseFile(file, lx, opts)
}

// ParseFile — входная точка для разбора одного файла уже созданным лексером.
// Ненулевая ошибка означает, что дерева нет: Result.Unit == nil.
func ParseFile(file *source.File, lx *lexer.Lexer, opts Options) (Result, error) {
	p := Parser{
		file: file,
		toks: lx.All(),
		opts: opts,
	}
	res := Result{Bag: bagOf(opts.Reporter)}

	if n := lx.ErrorCount(); n > 0 {
		return res, fmt.Errorf("%w: %d lexical error(s)", ErrParse, n)
	}
	unit, ok := p.parseUnit()
	if !ok {
		return res, fmt.Errorf("%w: %s", ErrParse, p.first)
	}
	res.Unit = unit
	return res, nil
}

func bagOf(r diag.Reporter) *diag.Bag {
	switch br := r.(type) {
	case *diag.BagReporter:
		return br.Bag
	case diag.BagReporter:
		return br.Bag
	}
	return nil
}

// parseUnit — верхний уровень: package, import, типы, module и пустые ';'.
func (p *Parser) parseUnit() (*ast.Unit, bool) {
	u := &ast.Unit{File: p.file.ID}
	seenType := false

	for !p.at(token.EOF) {
		if p.at(token.Semicolon) {
			u.Decls = append(u.Decls, ast.OtherMember("", &ast.Decl{Tokens: []token.Token{p.advance()}}))
			continue
		}

		d := &ast.Decl{}
		if !p.parsePrefix(d) {
			return nil, false
		}

		switch {
		case p.at(token.KwPackage):
			if u.Package != nil || len(u.Imports) > 0 || len(u.Decls) > 0 || len(d.Tokens) > 0 {
				return nil, p.err(diag.SynPackageNotFirst, "package declaration must be the first declaration")
			}
			if !p.parsePackage(d) {
				return nil, false
			}
			u.Package = d

		case p.at(token.KwImport):
			if len(d.Tokens) > 0 || len(d.Annotations) > 0 {
				return nil, p.err(diag.SynUnexpectedToken, "import cannot have modifiers or annotations")
			}
			if seenType {
				return nil, p.err(diag.SynImportAfterType, "import after type declaration")
			}
			if !p.parseImport(d) {
				return nil, false
			}
			u.Imports = append(u.Imports, d)

		case p.atTypeStart():
			td, ok := p.parseTypeDecl(d)
			if !ok {
				return nil, false
			}
			seenType = true
			u.Decls = append(u.Decls, ast.TypeMember(td))

		case p.atModuleStart():
			if !p.parseModule(d) {
				return nil, false
			}
			u.Decls = append(u.Decls, ast.OtherMember("module", d))

		default:
			return nil, p.err(diag.SynUnexpectedTopLevel, "expected package, import, type or module declaration, found "+describe(p.peek(0)))
		}
	}

	u.EOF = p.peek(0)
	return u, true
}

// package a.b.c;
func (p *Parser) parsePackage(d *ast.Decl) bool {
	d.Tokens = append(d.Tokens, p.advance())
	if !p.qualifiedName(d, false) {
		return false
	}
	return p.expectInto(d, token.Semicolon, diag.SynExpectSemicolon, "expected ';' after package name")
}

// import [static] a.b.C; | import a.b.*;
func (p *Parser) parseImport(d *ast.Decl) bool {
	d.Tokens = append(d.Tokens, p.advance())
	if p.at(token.KwStatic) {
		d.Tokens = append(d.Tokens, p.advance())
	}
	if !p.qualifiedName(d, true) {
		return false
	}
	return p.expectInto(d, token.Semicolon, diag.SynExpectSemicolon, "expected ';' after import")
}

// [open] module a.b { ... } — тело не разбираем.
func (p *Parser) parseModule(d *ast.Decl) bool {
	if !p.collectUntil(&d.Tokens, stopAt(token.LBrace), diag.SynExpectTypeBody, "expected '{' after module name") {
		return false
	}
	return p.consumeGroup(&d.Tokens)
}

func (p *Parser) qualifiedName(d *ast.Decl, allowStar bool) bool {
	if !p.expectInto(d, token.Ident, diag.SynExpectIdentifier, "expected identifier") {
		return false
	}
	for p.at(token.Dot) {
		d.Tokens = append(d.Tokens, p.advance())
		if allowStar && p.at(token.Star) {
			d.Tokens = append(d.Tokens, p.advance())
			return true
		}
		if !p.expectInto(d, token.Ident, diag.SynExpectIdentifier, "expected identifier after '.'") {
			return false
		}
	}
	return true
}
