package driver

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"tsig/internal/diag"
	"tsig/internal/docmodel"
)

func extractSrc(t *testing.T, src string) *ExtractResult {
	t.Helper()
	res, err := ExtractSource("test.ts", []byte(src), 100)
	if err != nil {
		t.Fatalf("ExtractSource: %v", err)
	}
	return res
}

func TestExtractSignatures(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			"simple",
			"function greet(name: string, count) {}",
			"function greet(name: string, count)",
		},
		{
			"optional and return type",
			"function f(x?: number): void {}",
			"function f(x?: number): void",
		},
		{
			"default value never leaks",
			"function f(x = compute()) {}",
			"function f(x)",
		},
		{
			"array holes preserved",
			"function f([, b]) {}",
			"function f([, b])",
		},
		{
			"object pattern keys only",
			"function f({ a: renamed, b = 1, ...rest }) {}",
			"function f({a, b, ...rest})",
		},
		{
			"rest with type",
			"function f(...xs: number[]) {}",
			"function f(...xs: number[])",
		},
		{
			"nested",
			"function f({ a: [b, ...c] }) {}",
			"function f({a})",
		},
		{
			"async",
			"export async function go(url: string) {}",
			"async function go(url: string)",
		},
		{
			"ambient",
			"declare function stat(path: string): Stats;",
			"declare function stat(path: string): Stats",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := extractSrc(t, tt.src)
			if len(res.Entries) != 1 {
				t.Fatalf("want 1 entry, got %d (diags: %v)", len(res.Entries), res.Bag.Items())
			}
			if got := res.Entries[0].Signature; got != tt.want {
				t.Errorf("signature = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractComputedKeySource(t *testing.T) {
	res := extractSrc(t, "function f({ [1+1]: two }) {}")
	if len(res.Entries) != 1 {
		t.Fatalf("want 1 entry, got %d", len(res.Entries))
	}
	params := res.Entries[0].Params
	if len(params) != 1 || params[0].Kind != docmodel.ParamObject {
		t.Fatalf("unexpected params: %+v", params)
	}
	// ключ — точная подстрока исходника, не вычисленное значение
	if key := params[0].Props[0].Key; key != "1+1" {
		t.Errorf("computed key = %q, want %q", key, "1+1")
	}
}

func TestExtractVariableDeclarations(t *testing.T) {
	res := extractSrc(t, "export const { host, port } = parse(), retries: number = 3;\nlet [first, ...others] = list;")
	if len(res.Entries) != 3 {
		t.Fatalf("want 3 entries, got %d: %+v", len(res.Entries), res.Entries)
	}

	sigs := []string{
		"const {host, port}",
		"const retries: number",
		"let [first, ...others]",
	}
	for i, want := range sigs {
		if got := res.Entries[i].Signature; got != want {
			t.Errorf("entry %d signature = %q, want %q", i, got, want)
		}
	}
	if res.Entries[1].Name != "retries" {
		t.Errorf("named variable entry should carry its name, got %q", res.Entries[1].Name)
	}
	if !res.Entries[0].Exported || res.Entries[2].Exported {
		t.Error("exported flag lost")
	}
}

func TestExtractAmbientDefaultDegradesEntry(t *testing.T) {
	res := extractSrc(t, "declare function bad(x = 1): void;\ndeclare function good(y: string): void;")
	if len(res.Entries) != 1 || res.Entries[0].Name != "good" {
		t.Fatalf("want only 'good' to survive, got %+v", res.Entries)
	}
	found := false
	for _, d := range res.Bag.Items() {
		if d.Code == diag.DocDefaultInFnType {
			found = true
		}
	}
	if !found {
		t.Errorf("expected DocDefaultInFnType, got %v", res.Bag.Items())
	}
}

func TestExtractJSONRoundTripRendersIdentically(t *testing.T) {
	res := extractSrc(t, "function f({ a: [b, ...c], d = 1 }?: Opts, ...rest: unknown[]) {}")
	if len(res.Entries) != 1 {
		t.Fatalf("want 1 entry, got %d (diags: %v)", len(res.Entries), res.Bag.Items())
	}
	for _, p := range res.Entries[0].Params {
		data, err := json.Marshal(p)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		var back docmodel.ParamDef
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("Unmarshal: %v", err)
		}
		if back.String() != p.String() {
			t.Errorf("round trip render = %q, want %q", back.String(), p.String())
		}
	}
}

func TestRenderSignatureAfterJSONRoundTrip(t *testing.T) {
	res := extractSrc(t, "declare function stat(path: string, opts?: StatOptions): Stats")
	if len(res.Entries) != 1 {
		t.Fatalf("want 1 entry, got %d (diags: %v)", len(res.Entries), res.Bag.Items())
	}

	data, err := json.Marshal(res.Entries[0])
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var back DocEntry
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got := back.RenderSignature(); got != res.Entries[0].Signature {
		t.Errorf("RenderSignature = %q, want %q", got, res.Entries[0].Signature)
	}
}

func TestExtractDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.ts"), "function a(x: number) {}")
	writeFile(t, filepath.Join(dir, "sub", "b.ts"), "export const b = 1;")
	writeFile(t, filepath.Join(dir, "skip.txt"), "not source")

	results, err := ExtractDir(context.Background(), dir, DirOptions{MaxDiagnostics: 10, Jobs: 2})
	if err != nil {
		t.Fatalf("ExtractDir: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("want 2 results, got %d", len(results))
	}
	// детерминированный порядок: сортировка по пути
	if filepath.Base(results[0].Path) != "a.ts" {
		t.Errorf("results out of order: %v", []string{results[0].Path, results[1].Path})
	}
	if len(results[0].Entries) != 1 || results[0].Entries[0].Name != "a" {
		t.Errorf("a.ts entries: %+v", results[0].Entries)
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenDiskCache("tsig-test")
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}

	key := [32]byte{1, 2, 3}
	payload := &DiskPayload{
		Schema: diskCacheSchemaVersion,
		Path:   "x.ts",
		Entries: []DocEntry{{
			Name:      "f",
			Kind:      "function",
			Signature: "function f(x)",
			Params: []*docmodel.ParamDef{
				{Kind: docmodel.ParamIdentifier, Name: "x"},
			},
		}},
	}
	if err := cache.Put(key, payload); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var out DiskPayload
	hit, err := cache.Get(key, &out)
	if err != nil || !hit {
		t.Fatalf("Get: hit=%v err=%v", hit, err)
	}
	if len(out.Entries) != 1 || out.Entries[0].Signature != "function f(x)" {
		t.Errorf("payload mismatch: %+v", out)
	}
	if out.Entries[0].Params[0].Name != "x" {
		t.Errorf("descriptor tree lost in cache: %+v", out.Entries[0].Params)
	}

	var miss DiskPayload
	if hit, _ := cache.Get([32]byte{9}, &miss); hit {
		t.Error("unexpected cache hit")
	}
}

func TestExtractDirUsesCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenDiskCache("tsig-test")
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.ts"), "function a(x) {}")

	opts := DirOptions{MaxDiagnostics: 10, Cache: cache}
	first, err := ExtractDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatalf("first pass: %v", err)
	}
	if first[0].Cached {
		t.Error("first pass must not be cached")
	}

	second, err := ExtractDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if !second[0].Cached {
		t.Error("second pass should hit the cache")
	}
	if second[0].Entries[0].Signature != first[0].Entries[0].Signature {
		t.Errorf("cached signature differs: %q vs %q", second[0].Entries[0].Signature, first[0].Entries[0].Signature)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
