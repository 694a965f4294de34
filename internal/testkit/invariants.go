package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"jstrip/internal/ast"
	"jstrip/internal/source"
	"jstrip/internal/token"
)

// CheckSpanInvariants runs a minimal set of span invariants on a freshly parsed unit:
// 1) every token and trivia span points into sf and stays within its content
// 2) token and trivia text is exactly the bytes its span covers
// 3) in render order spans never go backwards, trivia before its token
// 4) EOF sits at the end of the content
func CheckSpanInvariants(u *ast.Unit, sf *source.File) error {
	if u == nil || sf == nil {
		return fmt.Errorf("nil unit or file")
	}
	size, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	check := func(what string, sp source.Span, text string) error {
		if sp.File != sf.ID {
			return fmt.Errorf("%s span points to different file id: got=%d want=%d", what, sp.File, sf.ID)
		}
		if sp.Start > sp.End || sp.End > size {
			return fmt.Errorf("%s span %v is outside content of %d bytes", what, sp, size)
		}
		if got := string(sf.Content[sp.Start:sp.End]); got != text {
			return fmt.Errorf("%s text %q does not match span %v (%q)", what, text, sp, got)
		}
		return nil
	}

	var (
		pos     uint32
		visited int
		failure error
	)
	u.EachToken(func(tok *token.Token) {
		if failure != nil {
			return
		}
		visited++
		for _, tv := range tok.Leading {
			if err := check("trivia", tv.Span, tv.Text); err != nil {
				failure = err
				return
			}
			if tv.Span.Start < pos {
				failure = fmt.Errorf("trivia %v starts before offset %d", tv.Span, pos)
				return
			}
			pos = tv.Span.End
		}
		if err := check("token "+tok.Kind.String(), tok.Span, tok.Text); err != nil {
			failure = err
			return
		}
		if tok.Span.Start < pos {
			failure = fmt.Errorf("token %q at %v starts before offset %d", tok.Text, tok.Span, pos)
			return
		}
		pos = tok.Span.End
	})
	if failure != nil {
		return failure
	}
	if visited == 0 {
		return fmt.Errorf("unit has no tokens")
	}
	if u.EOF.Kind != token.EOF || u.EOF.Span.End != size {
		return fmt.Errorf("EOF span %v does not end the content (%d bytes)", u.EOF.Span, size)
	}
	return nil
}
