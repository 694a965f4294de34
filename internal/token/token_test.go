package token_test

import (
	"testing"

	"jstrip/internal/source"
	"jstrip/internal/token"
)

func TestLookupKeyword(t *testing.T) {
	cases := map[string]token.Kind{
		"class":     token.KwClass,
		"interface": token.KwInterface,
		"enum":      token.KwEnum,
		"import":    token.KwImport,
		"package":   token.KwPackage,
		"null":      token.NullLit,
	}
	for lexeme, want := range cases {
		got, ok := token.LookupKeyword(lexeme)
		if !ok || got != want {
			t.Fatalf("LookupKeyword(%q) = %v,%v; want %v", lexeme, got, ok, want)
		}
	}

	// контекстные ключевые слова остаются идентификаторами
	for _, s := range []string{"record", "sealed", "permits", "var", "yield", "module", "Class"} {
		if _, ok := token.LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}

func TestKindString(t *testing.T) {
	cases := map[token.Kind]string{
		token.KwClass:    "class",
		token.UShrAssign: ">>>=",
		token.Ident:      "Ident",
		token.TextBlock:  "TextBlock",
		token.EOF:        "EOF",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}

func TestKindPredicates(t *testing.T) {
	if !token.KwSynchronized.IsKeyword() || token.Ident.IsKeyword() || token.TrueLit.IsKeyword() {
		t.Errorf("IsKeyword misclassifies")
	}
	if !token.TextBlock.IsLiteral() || token.At.IsLiteral() {
		t.Errorf("IsLiteral misclassifies")
	}
	if !token.KwDefault.IsModifier() || token.KwClass.IsModifier() {
		t.Errorf("IsModifier misclassifies")
	}
}

func TestTokenTrivia(t *testing.T) {
	tok := token.Token{
		Kind: token.KwClass,
		Span: source.Span{Start: 12, End: 17},
		Text: "class",
		Leading: []token.Trivia{
			{Kind: token.TriviaDocComment, Text: "/** A */"},
			{Kind: token.TriviaNewline, Text: "\n"},
		},
	}
	if !tok.HasComments() {
		t.Fatalf("doc comment must count as a comment")
	}
	if got := tok.LeadingText(); got != "/** A */\n" {
		t.Fatalf("LeadingText = %q", got)
	}
	if !tok.Is(token.KwClass) || tok.IsWord("class") {
		t.Fatalf("IsWord only matches identifiers")
	}
}
