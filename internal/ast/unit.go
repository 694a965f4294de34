package ast

import (
	"jstrip/internal/source"
	"jstrip/internal/token"
)

// Unit is the root of one compilation unit.
type Unit struct {
	File    source.FileID
	Package *Decl
	Imports []*Decl
	Decls   []Member
	EOF     token.Token
}

// Types returns the top-level type declarations in source order.
func (u *Unit) Types() []*TypeDecl {
	if u == nil {
		return nil
	}
	out := make([]*TypeDecl, 0, len(u.Decls))
	for _, m := range u.Decls {
		if m.Kind == MemberType && m.Type != nil {
			out = append(out, m.Type)
		}
	}
	return out
}

// EachToken visits every token of the unit in render order, ending with EOF.
func (u *Unit) EachToken(fn func(*token.Token)) {
	if u == nil {
		return
	}
	u.Package.EachToken(fn)
	for _, imp := range u.Imports {
		imp.EachToken(fn)
	}
	for i := range u.Decls {
		u.Decls[i].EachToken(fn)
	}
	fn(&u.EOF)
}

// Comments lists every comment still attached to the unit.
func (u *Unit) Comments() []token.Trivia {
	var out []token.Trivia
	u.EachToken(func(tok *token.Token) {
		for _, tv := range tok.Leading {
			if tv.IsComment() {
				out = append(out, tv)
			}
		}
	})
	return out
}

// AnnotationCount counts annotation nodes on types, fields and methods at any depth.
func (u *Unit) AnnotationCount() int {
	if u == nil {
		return 0
	}
	n := 0
	var visit func(ms []Member)
	visit = func(ms []Member) {
		for _, m := range ms {
			switch m.Kind {
			case MemberType:
				if m.Type != nil {
					n += len(m.Type.Header.Annotations)
					visit(m.Type.Members)
				}
			case MemberField, MemberMethod:
				n += len(m.Annotations())
			}
		}
	}
	visit(u.Decls)
	return n
}
