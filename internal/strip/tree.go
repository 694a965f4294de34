package strip

import (
	"unicode"
	"unicode/utf8"

	"jstrip/internal/ast"
	"jstrip/internal/token"
)

// Imports removes every import declaration and reports how many were removed.
func Imports(u *ast.Unit) int {
	if u == nil {
		return 0
	}
	n := len(u.Imports)
	u.Imports = nil
	return n
}

// Annotations clears the annotations of every type declaration, at any depth,
// and of the fields and methods each type owns directly. Other members keep theirs.
func Annotations(u *ast.Unit) int {
	n := 0
	for _, t := range u.Types() {
		n += clearType(t)
	}
	return n
}

func clearType(t *ast.TypeDecl) int {
	n := t.Header.ClearAnnotations()
	for _, m := range t.Members {
		switch m.Kind {
		case ast.MemberField, ast.MemberMethod:
			n += m.Decl.ClearAnnotations()
		case ast.MemberType:
			if m.Type != nil {
				n += clearType(m.Type)
			}
		case ast.MemberOther:
		}
	}
	return n
}

// Comments removes every comment from the unit, wherever it is attached.
// Spacing around a removed comment is collapsed so that no trailing blanks
// or doubled spaces are left behind.
func Comments(u *ast.Unit) int {
	n := 0
	var prev *token.Token
	u.EachToken(func(tok *token.Token) {
		if tok.HasComments() {
			var removed int
			tok.Leading, removed = dropComments(tok.Leading)
			n += removed
			if len(tok.Leading) == 0 && prev != nil && wouldGlue(prev.Text, tok.Text) {
				tok.Leading = []token.Trivia{{Kind: token.TriviaSpace, Span: tok.Span, Text: " "}}
			}
		}
		prev = tok
	})
	return n
}

func dropComments(in []token.Trivia) ([]token.Trivia, int) {
	out := make([]token.Trivia, 0, len(in))
	removed := 0
	cut := false
	for _, tv := range in {
		last := len(out) - 1
		switch {
		case tv.IsComment():
			removed++
			cut = true
			continue
		case cut && tv.IsSpace() && last >= 0 && out[last].IsSpace():
			// пробел после комментария, перед ним уже есть пробел
		case cut && tv.IsNewline() && last >= 0 && out[last].IsSpace():
			out[last] = tv
		default:
			out = append(out, tv)
		}
		cut = false
	}
	return out, removed
}

// wouldGlue reports whether two adjacent tokens would lex differently without a separator.
func wouldGlue(left, right string) bool {
	if left == "" || right == "" {
		return false
	}
	l, _ := utf8.DecodeLastRuneInString(left)
	r, _ := utf8.DecodeRuneInString(right)
	if isWordRune(l) && isWordRune(r) {
		return true
	}
	return isOpRune(l) && isOpRune(r)
}

func isWordRune(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isOpRune(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '&', '|', '<', '>', '=', '!', '%', '^', '~', '?', ':', '.':
		return true
	}
	return false
}
