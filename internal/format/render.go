package format

import (
	"errors"
	"fmt"

	"jstrip/internal/ast"
	"jstrip/internal/token"
)

// ErrMalformedTree is returned when the tree cannot be rendered.
var ErrMalformedTree = errors.New("malformed syntax tree")

type printer struct {
	w *Writer
}

// Render prints u. The tree is only read.
func Render(u *ast.Unit) ([]byte, error) {
	if u == nil {
		return nil, fmt.Errorf("%w: nil unit", ErrMalformedTree)
	}
	p := printer{w: NewWriter(1 << 12)}
	if err := p.unit(u); err != nil {
		return nil, err
	}
	return p.w.Bytes(), nil
}

func (p *printer) unit(u *ast.Unit) error {
	if u.Package != nil {
		if err := p.decl(u.Package, "package"); err != nil {
			return err
		}
	}
	for i, imp := range u.Imports {
		if imp == nil {
			return malformed("import #%d is nil", i)
		}
		if err := p.decl(imp, "import"); err != nil {
			return err
		}
	}
	if err := p.members(u.Decls, "unit"); err != nil {
		return err
	}
	if u.EOF.Kind != token.EOF {
		return malformed("unit does not end with EOF (got %v)", u.EOF.Kind)
	}
	p.w.WriteToken(&u.EOF)
	return nil
}

func (p *printer) members(ms []ast.Member, owner string) error {
	for i := range ms {
		if err := p.member(&ms[i], owner); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) member(m *ast.Member, owner string) error {
	switch m.Kind {
	case ast.MemberType:
		if m.Type == nil || m.Decl != nil {
			return malformed("%s: type member %q must carry only a type", owner, m.Name)
		}
		return p.typeDecl(m.Type)
	case ast.MemberField, ast.MemberMethod, ast.MemberOther:
		if m.Decl == nil || m.Type != nil {
			return malformed("%s: %s member %q must carry only a declaration", owner, m.Kind, m.Name)
		}
		return p.decl(m.Decl, owner+"."+m.Name)
	default:
		return malformed("%s: unknown member kind %d", owner, m.Kind)
	}
}

func (p *printer) typeDecl(t *ast.TypeDecl) error {
	if len(t.Header.Tokens) == 0 {
		return malformed("type %q has an empty header", t.Name)
	}
	if err := p.decl(&t.Header, t.Name); err != nil {
		return err
	}
	if err := p.members(t.Members, t.Name); err != nil {
		return err
	}
	if t.Close.Kind != token.RBrace {
		return malformed("type %q is not closed by '}'", t.Name)
	}
	p.w.WriteToken(&t.Close)
	return nil
}

// decl выводит токены, вставляя аннотации перед Tokens[At].
// Якоря должны быть в пределах и не убывать.
func (p *printer) decl(d *ast.Decl, where string) error {
	if len(d.Tokens) == 0 {
		return malformed("%s: empty declaration", where)
	}
	prev := 0
	for i, a := range d.Annotations {
		switch {
		case a == nil:
			return malformed("%s: annotation #%d is nil", where, i)
		case len(a.Tokens) == 0:
			return malformed("%s: annotation %q has no tokens", where, a.Name)
		case a.At < prev || a.At >= len(d.Tokens):
			return malformed("%s: annotation %q anchored at %d of %d tokens", where, a.Name, a.At, len(d.Tokens))
		}
		prev = a.At
	}

	k := 0
	for i := range d.Tokens {
		for k < len(d.Annotations) && d.Annotations[k].At == i {
			for j := range d.Annotations[k].Tokens {
				p.w.WriteToken(&d.Annotations[k].Tokens[j])
			}
			k++
		}
		p.w.WriteToken(&d.Tokens[i])
	}
	return nil
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedTree, fmt.Sprintf(format, args...))
}
