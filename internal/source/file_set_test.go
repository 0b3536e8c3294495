package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPositionMapping(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("test.ntl", []byte("ab\ncd\n\nef")))

	cases := []struct {
		off       uint32
		line, col uint32
	}{
		{0, 1, 1}, // a
		{1, 1, 2}, // b
		{2, 1, 3}, // the newline belongs to line 1
		{3, 2, 1}, // c
		{6, 3, 1}, // the empty line
		{7, 4, 1}, // e
		{8, 4, 2}, // f
	}
	for _, tc := range cases {
		got := f.Position(tc.off)
		if got.Line != tc.line || got.Col != tc.col {
			t.Errorf("Position(%d) = %d:%d, want %d:%d", tc.off, got.Line, got.Col, tc.line, tc.col)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("test.ntl", []byte("first\nsecond\nthird")))

	cases := []struct {
		line uint32
		want string
	}{
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{0, ""},
		{4, ""},
	}
	for _, tc := range cases {
		if got := f.GetLine(tc.line); got != tc.want {
			t.Errorf("GetLine(%d) = %q, want %q", tc.line, got, tc.want)
		}
	}
}

func TestResolveSpan(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.ntl", []byte("abc\ndef\n"))

	start, end := fs.Resolve(Span{File: id, Start: 4, End: 7})
	if start.Line != 2 || start.Col != 1 {
		t.Errorf("start = %d:%d, want 2:1", start.Line, start.Col)
	}
	if end.Line != 2 || end.Col != 4 {
		t.Errorf("end = %d:%d, want 2:4", end.Line, end.Col)
	}
}

func TestLoadNormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.ntl")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a\r\nb\r\n")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "a\nb\n" {
		t.Errorf("content not normalized: %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("expected BOM and CRLF flags, got %v", f.Flags)
	}
}

func TestReloadGetsFreshID(t *testing.T) {
	fs := NewFileSet()
	first := fs.AddVirtual("same.ntl", []byte("v1"))
	second := fs.AddVirtual("same.ntl", []byte("v2"))
	if first == second {
		t.Fatal("re-adding a path must mint a fresh ID")
	}
	latest, ok := fs.GetLatest("same.ntl")
	if !ok || latest != second {
		t.Errorf("index must point at the latest version, got %v", latest)
	}
	if fs.Get(first).Hash == fs.Get(second).Hash {
		t.Error("different contents must hash differently")
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}
	c := a.Cover(b)
	if c.Start != 2 || c.End != 8 {
		t.Errorf("Cover = %v, want 1:2-8", c)
	}
	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Error("Cover must ignore spans from another file")
	}
}

func TestZeroideToEnd(t *testing.T) {
	s := Span{File: 1, Start: 3, End: 9}.ZeroideToEnd()
	if !s.Empty() || s.Start != 9 {
		t.Errorf("ZeroideToEnd = %v, want empty at 9", s)
	}
}

func TestInterner(t *testing.T) {
	in := NewInterner()
	a := in.Intern("nilai")
	b := in.Intern("maks")
	if a == NoStringID || b == NoStringID {
		t.Fatal("interned strings must not map to NoStringID")
	}
	if in.Intern("nilai") != a {
		t.Error("re-interning must return the same ID")
	}
	if in.MustLookup(a) != "nilai" {
		t.Errorf("lookup mismatch: %q", in.MustLookup(a))
	}
	if s, ok := in.Lookup(StringID(999)); ok || s != "" {
		t.Error("invalid ID must fail lookup")
	}
	if in.MustLookup(NoStringID) != "" {
		t.Error("NoStringID must map to the empty string")
	}
}
