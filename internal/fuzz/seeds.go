package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса
)

// javaSeeds покрывают конструкции, с которыми парсер обходится особо.
var javaSeeds = []string{
	"",
	"class A {}\n",
	"/*\n * Licensed under the Apache License.\n */\npackage a.b;\n\nimport java.util.List;\nimport static java.lang.Math.*;\n\n@Deprecated\npublic class C<T extends Comparable<T>> {\n  // note\n  @Inject List<String> names;\n  Map<String, List<Integer>> index = new HashMap<>();\n  int s = a >>> 2;\n  @Override public String toString() { return \"c\"; }\n}\n",
	"@Retention(RUNTIME) @interface Marker { int value() default 0; String[] tags() default {\"a\", \"b\"}; }",
	"enum Color { RED, @Deprecated GREEN { void f() {} }, BLUE; Color() {} }",
	"record Point(int x, int y) { Point { if (x < 0) throw new IllegalArgumentException(); } }",
	"class T { String s = \"\"\"\n  text /* not a comment */\n  \"\"\"; char c = '\\''; }",
	"@SuppressWarnings(\"unchecked\")\npackage p;\n",
	"class Broken {\n",
	"/* unterminated",
	"class A { void m() { } } }",
	"module m { requires java.base; }",
	"\ufeffclass Bom {}\r\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range javaSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

// addTestdataSeeds добавляет *.java из testdata/, если каталог есть.
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("testdata", "seeds")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".java" {
			return nil
		}
		// #nosec G304 -- path comes from the testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
