package parser

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"jstrip/internal/ast"
	"jstrip/internal/diag"
	"jstrip/internal/source"
	"jstrip/internal/testkit"
	"jstrip/internal/token"
)

func parseSrc(t *testing.T, src string) (Result, error) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("Test.java", []byte(src))
	bag := diag.NewBag(50)
	return Parse(fs.Get(id), Options{Reporter: &diag.BagReporter{Bag: bag}})
}

func mustParse(t *testing.T, src string) *ast.Unit {
	t.Helper()
	res, err := parseSrc(t, src)
	if err != nil {
		t.Fatalf("parse failed: %v\n%+v", err, res.Bag.Items())
	}
	return res.Unit
}

// outline печатает члены как "kind name @N" с отступом по вложенности.
func outline(u *ast.Unit) string {
	var sb strings.Builder
	var walk func(ms []ast.Member, indent string)
	walk = func(ms []ast.Member, indent string) {
		for _, m := range ms {
			fmt.Fprintf(&sb, "%s%s %s @%d\n", indent, m.Kind, m.Name, len(m.Annotations()))
			if m.Kind == ast.MemberType {
				walk(m.Type.Members, indent+"  ")
			}
		}
	}
	walk(u.Decls, "")
	return sb.String()
}

func render(u *ast.Unit) string {
	var sb strings.Builder
	u.EachToken(func(tok *token.Token) {
		sb.WriteString(tok.LeadingText())
		sb.WriteString(tok.Text)
	})
	return sb.String()
}

func TestParseMemberKinds(t *testing.T) {
	src := `package demo;

import java.util.List;
import static java.lang.Math.*;

@Deprecated
public final class Foo<T extends Comparable<T>> extends Base implements Runnable {
    private static final int X = 1, Y = 2;
    @Inject List<String> names;
    Map<String, List<Integer>> index = new HashMap<>();
    int[] data = {1, 2, 3};

    static { init(); }
    { count++; }

    public Foo(int x) { super(x); }
    <U> Foo(U u) { this(0); }

    @Override
    public void run() {
        Runnable r = new Runnable() { @Override public void run() {} };
    }

    public <R> Map<String, R> convert(List<? extends R> in) throws IOException { return null; }
    abstract int size();
    int legacy()[] { return null; }
    ;

    @Retention(RUNTIME) @interface Marker { int value() default 0; String[] tags() default {"a", "b"}; }
    enum Color { RED, @Deprecated GREEN { void f() {} }, BLUE; Color() {} int code() { return 0; } }
    record Point(int x, int y) implements Shape { Point { if (x < 0) throw new IllegalArgumentException(); } static Point origin() { return null; } }
    interface Shape { default double area() { return 0; } }
}
`
	u := mustParse(t, src)
	if u.Package == nil || len(u.Imports) != 2 {
		t.Fatalf("package=%v imports=%d", u.Package != nil, len(u.Imports))
	}

	want := `type Foo @1
  field X @0
  field names @1
  field index @0
  field data @0
  other  @0
  other  @0
  other Foo @0
  other Foo @0
  method run @1
  method convert @0
  method size @0
  method legacy @0
  other  @0
  type Marker @1
    other value @0
    other tags @0
  type Color @0
    other  @0
    other Color @0
    method code @0
  type Point @0
    other Point @0
    method origin @0
  type Shape @0
    method area @0
`
	if got := outline(u); got != want {
		t.Fatalf("outline mismatch:\n got:\n%s\nwant:\n%s", got, want)
	}
	if got := render(u); got != src {
		t.Fatalf("token walk does not reproduce the source:\n%s", got)
	}
}

func TestParseTopLevelVariants(t *testing.T) {
	cases := []struct {
		name, src, want string
	}{
		{"empty", "", ""},
		{"only comments", "// nothing here\n/* really */\n", ""},
		{"stray semicolons", "class A {};\n;", "type A @0\nother  @0\nother  @0\n"},
		{"record", "record R(int a) {}", "type R @0\n"},
		{"sealed", "public sealed interface S permits A, B {}\nnon-sealed class A implements S {}",
			"type S @0\ntype A @0\n"},
		{"module", "@Deprecated open module com.example { requires java.base; }", "other module @1\n"},
		{"annotated package", "@Gen package a.b;\nclass C {}", "type C @0\n"},
		{"record as field type", "class A { record r; }", "type A @0\n  field r @0\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := mustParse(t, tc.src)
			if got := outline(u); got != tc.want {
				t.Fatalf("outline:\n got %q\nwant %q", got, tc.want)
			}
		})
	}
}

func TestAnnotationAnchors(t *testing.T) {
	u := mustParse(t, "class A { public @A static @B.C(x = {1}) final int f; }")
	f := u.Types()[0].Members[0]
	if f.Kind != ast.MemberField {
		t.Fatalf("kind = %v", f.Kind)
	}
	anns := f.Decl.Annotations
	if len(anns) != 2 || anns[0].Name != "A" || anns[1].Name != "B.C" {
		t.Fatalf("annotations = %+v", anns)
	}
	if anns[0].At != 1 || anns[1].At != 2 {
		t.Fatalf("anchors = %d, %d", anns[0].At, anns[1].At)
	}
	if f.Decl.Tokens[anns[0].At].Text != "static" || f.Decl.Tokens[anns[1].At].Text != "final" {
		t.Fatal("anchors point at the wrong tokens")
	}
}

func TestParseFailures(t *testing.T) {
	cases := []struct {
		name string
		src  string
		code diag.Code
	}{
		{"unclosed class", "class A { void m() { }", diag.SynUnclosedDelimiter},
		{"extra brace", "class A { }\n}", diag.SynUnexpectedTopLevel},
		{"mismatched closer", "class A { void m() { foo(]; } }", diag.SynUnmatchedCloser},
		{"missing semicolon", "class A { int x }", diag.SynExpectSemicolon},
		{"missing import semicolon", "import a.b.C\nclass A {}", diag.SynExpectSemicolon},
		{"import after type", "class A {}\nimport a.b;", diag.SynImportAfterType},
		{"package late", "import a.B;\npackage x;", diag.SynPackageNotFirst},
		{"missing name", "class { }", diag.SynExpectIdentifier},
		{"missing body", "class A extends B;", diag.SynExpectTypeBody},
		{"bad annotation", "@ class A {}", diag.SynBadAnnotation},
		{"statement at top level", "x = 1;", diag.SynUnexpectedTopLevel},
		{"lexical error", "class A { String s = \"open; }", diag.LexUnterminatedString},
		{"brace in field", "class A { int x { } }", diag.SynUnexpectedToken},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := parseSrc(t, tc.src)
			if !errors.Is(err, ErrParse) {
				t.Fatalf("err = %v, want ErrParse", err)
			}
			if res.Unit != nil {
				t.Fatal("failed parse must not return a tree")
			}
			d, ok := res.Bag.FirstError()
			if !ok || d.Code != tc.code {
				t.Fatalf("first error = %v (%v), want %v", d.Code, d.Message, tc.code)
			}
		})
	}
}

func TestParsedSpansAreConsistent(t *testing.T) {
	sources := []string{
		"class A {}\n",
		"\n\n  package p;\nclass A {}",
		"// lead\nclass A { /* in */ int x; }\n// tail\n",
		"@A public @B class X { @C void m() {} }",
		"class G { Map<String, List<Integer>> m = new HashMap<>(); int s = a >>> 2; }\n",
		"enum E { A, B; }\r\n",
	}
	for _, src := range sources {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("Test.java", []byte(src)))
		res, err := Parse(file, Options{Reporter: &diag.BagReporter{Bag: diag.NewBag(10)}})
		if err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		if err := testkit.CheckSpanInvariants(res.Unit, file); err != nil {
			t.Errorf("%q: %v", src, err)
		}
	}
}
