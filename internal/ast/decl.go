package ast

import (
	"jstrip/internal/source"
	"jstrip/internal/token"
)

// Annotation is one `@Name(...)` marker. It renders immediately before
// the owning Decl's Tokens[At].
type Annotation struct {
	Name   string
	Tokens []token.Token
	At     int
}

// Span covers the annotation tokens.
func (a *Annotation) Span() source.Span {
	if a == nil || len(a.Tokens) == 0 {
		return source.Span{}
	}
	return a.Tokens[0].Span.Cover(a.Tokens[len(a.Tokens)-1].Span)
}

// Decl is a flat run of tokens with the annotations lifted out of it.
type Decl struct {
	Annotations []*Annotation
	Tokens      []token.Token
}

// Span covers the declaration including its annotations.
func (d *Decl) Span() source.Span {
	if d == nil {
		return source.Span{}
	}
	var sp source.Span
	first := true
	cover := func(s source.Span) {
		if first {
			sp, first = s, false
			return
		}
		sp = sp.Cover(s)
	}
	for _, a := range d.Annotations {
		if a != nil && len(a.Tokens) > 0 {
			cover(a.Span())
		}
	}
	for _, tok := range d.Tokens {
		cover(tok.Span)
	}
	return sp
}

// ClearAnnotations removes every annotation of d and returns how many were removed.
//
// The layout in front of each removed run moves to the token that followed it.
// If that token was only separated from the run by spaces, its own spacing is
// dropped, so `{ @A class` becomes `{ class` and a line holding
// `@Override public` keeps `public` in place.
func (d *Decl) ClearAnnotations() int {
	if d == nil || len(d.Annotations) == 0 {
		return 0
	}
	n := 0
	prev := -1
	for _, a := range d.Annotations {
		if a == nil {
			continue
		}
		n++
		if a.At != prev {
			d.mergeRun(a, a.At)
			prev = a.At
		}
	}
	d.Annotations = nil
	return n
}

func (d *Decl) mergeRun(first *Annotation, at int) {
	if first == nil || len(first.Tokens) == 0 || at < 0 || at >= len(d.Tokens) {
		return
	}
	removed := first.Tokens[0].Leading
	next := &d.Tokens[at]
	if len(removed) > 0 && spacesOnly(next.Leading) {
		next.Leading = append([]token.Trivia(nil), removed...)
		return
	}
	merged := make([]token.Trivia, 0, len(removed)+len(next.Leading))
	merged = append(merged, removed...)
	next.Leading = append(merged, next.Leading...)
}

func spacesOnly(tv []token.Trivia) bool {
	for _, t := range tv {
		if !t.IsSpace() {
			return false
		}
	}
	return true
}

// First returns the first token of the declaration in render order.
func (d *Decl) First() *token.Token {
	if d == nil {
		return nil
	}
	for _, a := range d.Annotations {
		if a != nil && a.At == 0 && len(a.Tokens) > 0 {
			return &a.Tokens[0]
		}
	}
	if len(d.Tokens) == 0 {
		return nil
	}
	return &d.Tokens[0]
}

// EachToken visits every token of d in render order.
func (d *Decl) EachToken(fn func(*token.Token)) {
	if d == nil {
		return
	}
	k := 0
	for i := range d.Tokens {
		for ; k < len(d.Annotations); k++ {
			a := d.Annotations[k]
			if a == nil {
				continue
			}
			if a.At > i {
				break
			}
			for t := range a.Tokens {
				fn(&a.Tokens[t])
			}
		}
		fn(&d.Tokens[i])
	}
}
