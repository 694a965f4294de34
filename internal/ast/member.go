package ast

import "jstrip/internal/token"

// MemberKind is the closed set of things a type body (or a unit) can hold.
type MemberKind uint8

const (
	MemberField MemberKind = iota
	MemberMethod
	MemberType
	// MemberOther covers constructors, initializer blocks, enum constants,
	// annotation elements, module declarations and stray semicolons.
	MemberOther
)

func (k MemberKind) String() string {
	switch k {
	case MemberField:
		return "field"
	case MemberMethod:
		return "method"
	case MemberType:
		return "type"
	case MemberOther:
		return "other"
	default:
		return "member(?)"
	}
}

// Member is a tagged variant: Type is set for MemberType, Decl for the rest.
type Member struct {
	Kind MemberKind
	Name string
	Decl *Decl
	Type *TypeDecl
}

// FieldMember, MethodMember, OtherMember and TypeMember build well-formed members.
func FieldMember(name string, d *Decl) Member  { return Member{Kind: MemberField, Name: name, Decl: d} }
func MethodMember(name string, d *Decl) Member { return Member{Kind: MemberMethod, Name: name, Decl: d} }
func OtherMember(name string, d *Decl) Member  { return Member{Kind: MemberOther, Name: name, Decl: d} }
func TypeMember(t *TypeDecl) Member {
	m := Member{Kind: MemberType, Type: t}
	if t != nil {
		m.Name = t.Name
	}
	return m
}

// Annotations returns the annotations attached to the member itself.
func (m Member) Annotations() []*Annotation {
	if m.Kind == MemberType {
		if m.Type == nil {
			return nil
		}
		return m.Type.Header.Annotations
	}
	if m.Decl == nil {
		return nil
	}
	return m.Decl.Annotations
}

// EachToken visits every token of the member in render order.
func (m Member) EachToken(fn func(*token.Token)) {
	if m.Kind == MemberType {
		m.Type.EachToken(fn)
		return
	}
	m.Decl.EachToken(fn)
}
