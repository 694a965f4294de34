package token

import (
	"jstrip/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// Is reports whether the token has the given kind.
func (t Token) Is(k Kind) bool { return t.Kind == k }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsWord reports whether the token is an identifier named word.
// Used for contextual keywords such as record or sealed.
func (t Token) IsWord(word string) bool {
	return t.Kind == Ident && t.Text == word
}

// HasComments reports whether any leading trivia is a comment.
func (t Token) HasComments() bool {
	for _, tv := range t.Leading {
		if tv.IsComment() {
			return true
		}
	}
	return false
}

// LeadingText concatenates the leading trivia text.
func (t Token) LeadingText() string {
	switch len(t.Leading) {
	case 0:
		return ""
	case 1:
		return t.Leading[0].Text
	}
	n := 0
	for _, tv := range t.Leading {
		n += len(tv.Text)
	}
	buf := make([]byte, 0, n)
	for _, tv := range t.Leading {
		buf = append(buf, tv.Text...)
	}
	return string(buf)
}
