package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/TyOverby/snoot/diag"
	"github.com/TyOverby/snoot/driver"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestParseDir(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"ok.sexp":            "(a b)",
		"broken.sexp":        "(unclosed",
		"nested/deep.sexp":   "((x))",
		"ignored.txt":        "not picked up",
		"nested/skip.notsxp": "(also ignored",
	})

	fs, results, err := driver.ParseDir(context.Background(), dir, driver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if fs.Len() != 3 {
		t.Fatalf("fileset has %d files", fs.Len())
	}

	// results come back sorted by path
	if filepath.Base(results[0].Path) != "broken.sexp" {
		t.Fatalf("first result = %s", results[0].Path)
	}
	if !results[0].Bag.HasErrors() {
		t.Fatal("broken.sexp should carry an error")
	}
	if results[0].Bag.Items()[0].Code != diag.SynUnclosedList {
		t.Fatalf("diagnostics:\n%s", results[0].Bag)
	}

	for _, r := range results[1:] {
		if r.Bag.HasErrors() {
			t.Fatalf("%s:\n%s", r.Path, r.Bag)
		}
		if len(r.Roots) != 1 {
			t.Fatalf("%s parsed %d roots", r.Path, len(r.Roots))
		}
	}
}

func TestParseDirEmpty(t *testing.T) {
	_, results, err := driver.ParseDir(context.Background(), t.TempDir(), driver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Fatalf("got %d results", len(results))
	}
}

func TestParseDirCancelled(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.sexp": "(x)"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := driver.ParseDir(ctx, dir, driver.Options{}); err == nil {
		t.Fatal("expected context error")
	}
}

func TestParseFilesMissing(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.sexp": "(x)"})
	missing := filepath.Join(dir, "gone.sexp")

	_, results, err := driver.ParseFiles(context.Background(),
		[]string{filepath.Join(dir, "a.sexp"), missing}, driver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}
	var found bool
	for _, r := range results {
		if r.Path == missing {
			found = true
			if r.Roots != nil || !r.Bag.HasErrors() {
				t.Fatal("missing file should yield only an I/O diagnostic")
			}
			if r.Bag.Items()[0].Code != diag.IOLoadFile {
				t.Fatalf("diagnostics:\n%s", r.Bag)
			}
		}
	}
	if !found {
		t.Fatal("missing file produced no result")
	}
}

func TestParseDirCustomExt(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.lisp": "(x)",
		"b.sexp": "(y)",
	})
	_, results, err := driver.ParseDir(context.Background(), dir, driver.Options{Ext: ".lisp"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || filepath.Base(results[0].Path) != "a.lisp" {
		t.Fatalf("results = %+v", results)
	}
}

func TestDiskCachePutGet(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	key := [32]byte{1, 2, 3}
	in := driver.DiskPayload{
		Path:      "a.sexp",
		Hash:      key,
		HadErrors: true,
		Diags: []driver.CachedDiag{{
			Severity: uint8(diag.SevError), Code: uint16(diag.SynUnclosedList),
			Message: "unclosed parenthesis", ByteStart: 0, ByteEnd: 1,
			LineStart: 1, ColStart: 1, LineEnd: 1, ColEnd: 2,
		}},
	}
	if err := cache.Put(key, &in); err != nil {
		t.Fatal(err)
	}

	var out driver.DiskPayload
	hit, err := cache.Get(key, &out)
	if err != nil || !hit {
		t.Fatalf("hit=%v err=%v", hit, err)
	}
	if out.Path != "a.sexp" || !out.HadErrors || len(out.Diags) != 1 {
		t.Fatalf("payload = %+v", out)
	}
	if out.Diags[0].Message != "unclosed parenthesis" {
		t.Fatalf("diag = %+v", out.Diags[0])
	}
}

func TestDiskCacheMiss(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	var out driver.DiskPayload
	hit, err := cache.Get([32]byte{9}, &out)
	if err != nil || hit {
		t.Fatalf("hit=%v err=%v on empty cache", hit, err)
	}
}

func TestDiskCacheKeyMismatchIsMiss(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := [32]byte{7}
	if err := cache.Put(key, &driver.DiskPayload{Hash: [32]byte{8}}); err != nil {
		t.Fatal(err)
	}
	var out driver.DiskPayload
	if hit, _ := cache.Get(key, &out); hit {
		t.Fatal("payload with wrong hash must not hit")
	}
}

func TestCheckDirUsesCache(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"good.sexp": "(a)",
		"bad.sexp":  "(a",
	})
	cache, err := driver.OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	first, err := driver.CheckDir(context.Background(), dir, cache, driver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range first {
		if r.FromCache {
			t.Fatalf("%s served from cold cache", r.Path)
		}
	}

	second, err := driver.CheckDir(context.Background(), dir, cache, driver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	for i, r := range second {
		if !r.FromCache {
			t.Fatalf("%s not served from warm cache", r.Path)
		}
		if first[i].Bag.String() != r.Bag.String() {
			t.Fatalf("cached diagnostics differ for %s:\n%s\nvs\n%s", r.Path, first[i].Bag, r.Bag)
		}
	}

	// same diagnostics either way: bad.sexp sorts first
	if !second[0].Bag.HasErrors() || second[1].Bag.HasErrors() {
		t.Fatal("cached error status wrong")
	}
}
