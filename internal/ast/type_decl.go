package ast

import "jstrip/internal/token"

type TypeKind uint8

const (
	TypeClass TypeKind = iota
	TypeInterface
	TypeEnum
	TypeRecord
	TypeAnnotation // @interface
)

func (k TypeKind) String() string {
	switch k {
	case TypeClass:
		return "class"
	case TypeInterface:
		return "interface"
	case TypeEnum:
		return "enum"
	case TypeRecord:
		return "record"
	case TypeAnnotation:
		return "@interface"
	default:
		return "type(?)"
	}
}

// TypeDecl is a class-like declaration. Header holds everything from the
// first modifier up to and including the opening brace; Close is the
// matching closing brace.
type TypeDecl struct {
	Kind    TypeKind
	Name    string
	Header  Decl
	Members []Member
	Close   token.Token
}

// Nested returns the member types declared directly inside t.
func (t *TypeDecl) Nested() []*TypeDecl {
	if t == nil {
		return nil
	}
	var out []*TypeDecl
	for _, m := range t.Members {
		if m.Kind == MemberType && m.Type != nil {
			out = append(out, m.Type)
		}
	}
	return out
}

// EachToken visits every token of t in render order.
func (t *TypeDecl) EachToken(fn func(*token.Token)) {
	if t == nil {
		return
	}
	t.Header.EachToken(fn)
	for i := range t.Members {
		t.Members[i].EachToken(fn)
	}
	fn(&t.Close)
}
