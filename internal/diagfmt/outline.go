package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"jstrip/internal/ast"
	"jstrip/internal/token"
)

// Outline prints the declarations of u, one per line, indented by nesting:
//
//	package demo
//	import java.util.List
//	class Foo @1
//	  field names @1
//	  method run
func Outline(w io.Writer, u *ast.Unit) error {
	if u == nil {
		return nil
	}
	var sb strings.Builder
	if u.Package != nil && len(u.Package.Tokens) > 0 {
		fmt.Fprintf(&sb, "package %s%s\n", joinTokens(u.Package.Tokens[1:], ";"), annotationSuffix(len(u.Package.Annotations)))
	}
	for _, imp := range u.Imports {
		if imp == nil || len(imp.Tokens) < 2 {
			continue
		}
		rest := imp.Tokens[1:]
		if rest[0].Kind == token.KwStatic {
			fmt.Fprintf(&sb, "import static %s\n", joinTokens(rest[1:], ";"))
			continue
		}
		fmt.Fprintf(&sb, "import %s\n", joinTokens(rest, ";"))
	}
	outlineMembers(&sb, u.Decls, "")
	_, err := io.WriteString(w, sb.String())
	return err
}

func outlineMembers(sb *strings.Builder, ms []ast.Member, indent string) {
	for i := range ms {
		m := &ms[i]
		switch m.Kind {
		case ast.MemberType:
			if m.Type == nil {
				continue
			}
			fmt.Fprintf(sb, "%s%s %s%s\n", indent, m.Type.Kind, m.Type.Name, annotationSuffix(len(m.Type.Header.Annotations)))
			outlineMembers(sb, m.Type.Members, indent+"  ")
		default:
			name := m.Name
			if name == "" {
				name = "-"
			}
			fmt.Fprintf(sb, "%s%s %s%s\n", indent, m.Kind, name, annotationSuffix(len(m.Annotations())))
		}
	}
}

func annotationSuffix(n int) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprintf(" @%d", n)
}

// joinTokens concatenates token texts up to stop, ignoring trivia.
func joinTokens(toks []token.Token, stop string) string {
	var sb strings.Builder
	for _, t := range toks {
		if t.Text == stop {
			break
		}
		sb.WriteString(t.Text)
	}
	return sb.String()
}
