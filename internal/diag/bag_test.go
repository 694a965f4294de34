package diag

import (
	"testing"

	"jstrip/internal/source"
)

func span(start, end uint32) source.Span {
	return source.Span{File: 1, Start: start, End: end}
}

func TestNewBagClampsLimit(t *testing.T) {
	if got := NewBag(0).Cap(); got != 1 {
		t.Fatalf("NewBag(0).Cap() = %d, want 1", got)
	}
	if got := NewBag(1 << 20).Cap(); got != 65535 {
		t.Fatalf("NewBag(huge).Cap() = %d, want 65535", got)
	}
}

func TestBagAddRespectsLimit(t *testing.T) {
	b := NewBag(2)
	for i := range 3 {
		ok := b.Add(New(SevError, SynUnexpectedToken, span(uint32(i), uint32(i+1)), "x"))
		if want := i < 2; ok != want {
			t.Fatalf("Add #%d = %v, want %v", i, ok, want)
		}
	}
	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2", b.Len())
	}
}

func TestBagSortAndDedup(t *testing.T) {
	b := NewBag(10)
	b.Add(New(SevWarning, SynBadAnnotation, span(5, 6), "late"))
	b.Add(New(SevError, LexUnknownChar, span(1, 2), "early"))
	b.Add(New(SevError, LexUnknownChar, span(1, 2), "early again"))
	b.Sort()
	b.Dedup()

	items := b.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items after dedup, got %d", len(items))
	}
	if items[0].Message != "early" || items[1].Message != "late" {
		t.Fatalf("unexpected order: %q, %q", items[0].Message, items[1].Message)
	}
}

func TestBagFirstError(t *testing.T) {
	b := NewBag(10)
	if _, ok := b.FirstError(); ok {
		t.Fatal("empty bag reported an error")
	}
	b.Add(New(SevWarning, SynBadAnnotation, span(0, 1), "warn"))
	b.Add(New(SevError, SynExpectSemicolon, span(2, 3), "missing ;"))
	d, ok := b.FirstError()
	if !ok || d.Code != SynExpectSemicolon {
		t.Fatalf("FirstError = %v, %v", d, ok)
	}
	if !b.HasErrors() || !b.HasWarnings() {
		t.Fatal("HasErrors/HasWarnings should both be true")
	}
}

func TestBagMergeGrowsCapacity(t *testing.T) {
	a := NewBag(1)
	a.Add(New(SevError, LexBadNumber, span(0, 1), "a"))
	other := NewBag(4)
	other.Add(New(SevError, LexBadNumber, span(2, 3), "b"))
	other.Add(New(SevError, LexBadNumber, span(4, 5), "c"))

	a.Merge(other)
	a.Merge(nil)
	if a.Len() != 3 || a.Cap() < 3 {
		t.Fatalf("after merge Len=%d Cap=%d", a.Len(), a.Cap())
	}
}

func TestBagReporter(t *testing.T) {
	b := NewBag(4)
	r := BagReporter{Bag: b}
	ReportError(r, SynUnclosedDelimiter, span(0, 1), "unclosed {")
	ReportWarning(r, SynBadAnnotation, span(1, 2), "odd annotation")
	ReportError(nil, SynUnclosedDelimiter, span(0, 1), "dropped")
	NopReporter{}.Report(LexUnknownChar, SevError, span(0, 1), "dropped", nil)

	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2", b.Len())
	}
}

func TestCodeID(t *testing.T) {
	cases := map[Code]string{
		LexUnknownChar:     "LEX1001",
		SynExpectSemicolon: "SYN2004",
		IOLoadFileError:    "IO4001",
		UnknownCode:        "E0000",
	}
	for code, want := range cases {
		if got := code.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", code, got, want)
		}
	}
	if LexBadNumber.Title() != "Bad number literal" {
		t.Errorf("unexpected title %q", LexBadNumber.Title())
	}
}
