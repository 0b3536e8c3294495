package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"notal/internal/diag"
	"notal/internal/diagfmt"
	"notal/internal/token"
)

const goodSource = `program jumlahkan
kamus
    a, b : integer
algoritma
    input(a, b)
    output(a + b)
`

const badSource = `program rusak
algoritma
    x <- <- 1
`

func TestCheckSourceClean(t *testing.T) {
	res := CheckSource("good.ntl", []byte(goodSource), CheckOptions{})
	if res.Engine.HasErrors() {
		t.Fatalf("unexpected errors: %v", res.Engine.Items())
	}
	if res.Program == nil {
		t.Fatal("expected a program")
	}
	if len(res.Tokens) == 0 || res.Tokens[len(res.Tokens)-1].Kind != token.EOF {
		t.Error("token stream must end with EOF")
	}
	if len(res.Program.Body) != 2 {
		t.Errorf("expected 2 statements, got %d", len(res.Program.Body))
	}
}

func TestCheckSourceReportsErrors(t *testing.T) {
	res := CheckSource("bad.ntl", []byte(badSource), CheckOptions{})
	if !res.Engine.HasErrors() {
		t.Fatal("expected errors")
	}
	if res.Program == nil {
		t.Error("recovery must still produce a program")
	}
}

func TestCheckSourceWarningsAsErrors(t *testing.T) {
	src := []byte("program p\nalgoritma\n    if x > 0 do\n        output(x)\n")

	plain := CheckSource("slip.ntl", src, CheckOptions{})
	if plain.Engine.HasErrors() {
		t.Fatal("a substitution alone must not fail the run")
	}
	if !plain.Engine.HasWarnings() {
		t.Fatal("expected a substitution warning")
	}

	strict := CheckSource("slip.ntl", src, CheckOptions{WarningsAsErrors: true})
	if !strict.Engine.HasErrors() {
		t.Error("escalation must fail the run")
	}
}

func TestCheckOnReport(t *testing.T) {
	var codes []diag.Code
	res := CheckSource("bad.ntl", []byte(badSource), CheckOptions{
		OnReport: func(d diag.Diagnostic) { codes = append(codes, d.Code) },
	})
	if len(codes) != len(res.Engine.Items()) {
		t.Errorf("callback fired %d times for %d records", len(codes), len(res.Engine.Items()))
	}
}

func TestTokenizeSource(t *testing.T) {
	res := TokenizeSource("t.ntl", []byte("x <- 1 {comment}"), CheckOptions{})
	if res.Engine.HasErrors() {
		t.Fatalf("unexpected errors: %v", res.Engine.Items())
	}
	kinds := []token.Kind{token.Ident, token.Assign, token.IntLit, token.EOF}
	if len(res.Tokens) != len(kinds) {
		t.Fatalf("expected %d tokens, got %d", len(kinds), len(res.Tokens))
	}
	for i, k := range kinds {
		if res.Tokens[i].Kind != k {
			t.Errorf("token %d: expected %v, got %v", i, k, res.Tokens[i].Kind)
		}
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache := &DiskCache{dir: t.TempDir()}
	key := Digest{1, 2, 3}
	payload := &DiskPayload{
		Schema:    diskCacheSchemaVersion,
		Path:      "a.ntl",
		HadErrors: true,
		Diags: []DiagRecord{{
			Severity: uint8(diag.SevError),
			Code:     uint16(diag.SynExpectThen),
			Message:  "expected 'then'",
			Start:    4,
			End:      5,
		}},
	}
	if err := cache.Put(key, payload); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var got DiskPayload
	hit, err := cache.Get(key, &got)
	if err != nil || !hit {
		t.Fatalf("Get: hit=%v err=%v", hit, err)
	}
	if got.Path != "a.ntl" || !got.HadErrors || len(got.Diags) != 1 {
		t.Errorf("payload mangled: %+v", got)
	}
	if got.Diags[0].Message != "expected 'then'" || got.Diags[0].Start != 4 {
		t.Errorf("record mangled: %+v", got.Diags[0])
	}

	if hit, err := cache.Get(Digest{9, 9}, &got); err != nil || hit {
		t.Errorf("unknown key must miss cleanly: hit=%v err=%v", hit, err)
	}
}

func TestDiskCacheSchemaMismatchIsMiss(t *testing.T) {
	cache := &DiskCache{dir: t.TempDir()}
	key := Digest{7}
	if err := cache.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion + 1}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	var got DiskPayload
	if hit, err := cache.Get(key, &got); err != nil || hit {
		t.Errorf("stale schema must miss: hit=%v err=%v", hit, err)
	}
}

func TestEnginePayloadRoundTrip(t *testing.T) {
	res := CheckSource("bad.ntl", []byte(badSource), CheckOptions{})
	payload := payloadFromEngine("bad.ntl", res.Engine)

	replayed := engineFromPayload(payload, res.File, CheckOptions{})
	if replayed.ErrorCount() != res.Engine.ErrorCount() {
		t.Errorf("error count lost: %d vs %d", replayed.ErrorCount(), res.Engine.ErrorCount())
	}

	opts := diagfmt.PrettyOpts{Color: false}
	before := diagfmt.Report(res.Engine, opts)
	after := diagfmt.Report(replayed, opts)
	if before != after {
		t.Errorf("replayed report differs:\n--- live ---\n%s--- cached ---\n%s", before, after)
	}
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestCheckDir(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"aaa.ntl":   goodSource,
		"bbb.ntl":   badSource,
		"notes.txt": "ignored",
		"ccc.ntl":   goodSource,
	})

	results, err := CheckDir(context.Background(), dir, CheckOptions{}, 2, nil)
	if err != nil {
		t.Fatalf("CheckDir: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	// sorted order regardless of goroutine scheduling
	for i, base := range []string{"aaa.ntl", "bbb.ntl", "ccc.ntl"} {
		if filepath.Base(results[i].Path) != base {
			t.Errorf("result %d: expected %s, got %s", i, base, results[i].Path)
		}
	}
	if results[0].Result.Engine.HasErrors() {
		t.Error("aaa.ntl must be clean")
	}
	if !results[1].Result.Engine.HasErrors() {
		t.Error("bbb.ntl must fail")
	}
}

func TestCheckDirUsesCache(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.ntl": badSource})
	cache := &DiskCache{dir: t.TempDir()}

	first, err := CheckDir(context.Background(), dir, CheckOptions{}, 1, cache)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first[0].FromCache {
		t.Fatal("first run must not hit the cache")
	}

	second, err := CheckDir(context.Background(), dir, CheckOptions{}, 1, cache)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !second[0].FromCache {
		t.Fatal("second run must hit the cache")
	}
	if second[0].Result.Engine.HasErrors() != first[0].Result.Engine.HasErrors() {
		t.Error("cached verdict must match the live one")
	}
}

func TestCheckDirEmpty(t *testing.T) {
	results, err := CheckDir(context.Background(), t.TempDir(), CheckOptions{}, 0, nil)
	if err != nil {
		t.Fatalf("CheckDir: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}
