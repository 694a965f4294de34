package ast

import (
	"testing"

	"jstrip/internal/token"
)

func sp(text string) token.Trivia { return token.Trivia{Kind: token.TriviaSpace, Text: text} }
func nl(text string) token.Trivia { return token.Trivia{Kind: token.TriviaNewline, Text: text} }

func tok(kind token.Kind, text string, leading ...token.Trivia) token.Token {
	return token.Token{Kind: kind, Text: text, Leading: leading}
}

func annotation(at int, name string, leading ...token.Trivia) *Annotation {
	return &Annotation{
		Name: name,
		At:   at,
		Tokens: []token.Token{
			tok(token.At, "@", leading...),
			tok(token.Ident, name),
		},
	}
}

func render(d *Decl) string {
	var out []byte
	d.EachToken(func(t *token.Token) {
		out = append(out, t.LeadingText()...)
		out = append(out, t.Text...)
	})
	return string(out)
}

func TestClearAnnotationsKeepsSameLineLayout(t *testing.T) {
	// "\n    @Override public void"
	d := &Decl{
		Annotations: []*Annotation{annotation(0, "Override", nl("\n"), sp("    "))},
		Tokens: []token.Token{
			tok(token.KwPublic, "public", sp(" ")),
			tok(token.KwVoid, "void", sp(" ")),
		},
	}
	if got := render(d); got != "\n    @Override public void" {
		t.Fatalf("before: %q", got)
	}
	if n := d.ClearAnnotations(); n != 1 {
		t.Fatalf("removed %d, want 1", n)
	}
	if got := render(d); got != "\n    public void" {
		t.Fatalf("after: %q", got)
	}
}

func TestClearAnnotationsOwnLine(t *testing.T) {
	// "\n    @A\n    @B(1)\n    int x"
	b := annotation(0, "B", nl("\n"), sp("    "))
	b.Tokens = append(b.Tokens, tok(token.LParen, "("), tok(token.IntLit, "1"), tok(token.RParen, ")"))
	d := &Decl{
		Annotations: []*Annotation{annotation(0, "A", nl("\n"), sp("    ")), b},
		Tokens: []token.Token{
			tok(token.KwInt, "int", nl("\n"), sp("    ")),
			tok(token.Ident, "x", sp(" ")),
		},
	}
	d.ClearAnnotations()
	if got := render(d); got != "\n    \n    int x" {
		t.Fatalf("after: %q", got)
	}
}

func TestClearAnnotationsBetweenModifiers(t *testing.T) {
	// " public @A static"
	d := &Decl{
		Annotations: []*Annotation{annotation(1, "A", sp(" "))},
		Tokens: []token.Token{
			tok(token.KwPublic, "public", sp(" ")),
			tok(token.KwStatic, "static", sp(" ")),
		},
	}
	d.ClearAnnotations()
	if got := render(d); got != " public static" {
		t.Fatalf("after: %q", got)
	}
}

func TestClearAnnotationsIdempotent(t *testing.T) {
	d := &Decl{
		Annotations: []*Annotation{annotation(0, "A", sp(" "))},
		Tokens:      []token.Token{tok(token.KwClass, "class", sp(" "))},
	}
	d.ClearAnnotations()
	once := render(d)
	if n := d.ClearAnnotations(); n != 0 {
		t.Fatalf("second pass removed %d", n)
	}
	if twice := render(d); twice != once {
		t.Fatalf("second pass changed output: %q vs %q", twice, once)
	}
	var nilDecl *Decl
	if nilDecl.ClearAnnotations() != 0 {
		t.Fatal("nil decl should be a no-op")
	}
}

func TestUnitWalks(t *testing.T) {
	inner := &TypeDecl{
		Kind: TypeClass,
		Name: "Inner",
		Header: Decl{
			Annotations: []*Annotation{annotation(0, "A", sp(" "))},
			Tokens:      []token.Token{tok(token.KwClass, "class", sp(" ")), tok(token.Ident, "Inner"), tok(token.LBrace, "{")},
		},
		Members: []Member{
			FieldMember("f", &Decl{
				Annotations: []*Annotation{annotation(0, "B")},
				Tokens: []token.Token{
					tok(token.KwInt, "int", sp(" "), token.Trivia{Kind: token.TriviaBlockComment, Text: "/* c */"}),
					tok(token.Ident, "f", sp(" ")),
					tok(token.Semicolon, ";"),
				},
			}),
		},
		Close: tok(token.RBrace, "}"),
	}
	outer := &TypeDecl{
		Kind:    TypeClass,
		Name:    "Outer",
		Header:  Decl{Tokens: []token.Token{tok(token.KwClass, "class"), tok(token.Ident, "Outer"), tok(token.LBrace, "{")}},
		Members: []Member{TypeMember(inner)},
		Close:   tok(token.RBrace, "}", sp(" ")),
	}
	u := &Unit{
		Decls: []Member{TypeMember(outer)},
		EOF:   tok(token.EOF, "", token.Trivia{Kind: token.TriviaLineComment, Text: "// end"}),
	}

	if got := len(u.Types()); got != 1 {
		t.Fatalf("Types() = %d", got)
	}
	if got := len(outer.Nested()); got != 1 {
		t.Fatalf("Nested() = %d", got)
	}
	if got := u.AnnotationCount(); got != 2 {
		t.Fatalf("AnnotationCount = %d, want 2", got)
	}
	if got := len(u.Comments()); got != 2 {
		t.Fatalf("Comments = %d, want 2", got)
	}
	count := 0
	u.EachToken(func(*token.Token) { count++ })
	if count != 16 {
		t.Fatalf("EachToken visited %d tokens, want 16", count)
	}
}
