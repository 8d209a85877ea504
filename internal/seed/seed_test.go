package seed

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "urls.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_ParsesRows(t *testing.T) {
	path := writeCSV(t, "url,status\nhttps://docs.example.com/guides/payouts,200\nhttps://docs.example.com/,200\n")
	p := &Provider{Path: path}
	docs, err := p.Load(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 docs, got %d", len(docs))
	}
	if docs[0].Domain != "docs.example.com" {
		t.Fatalf("domain = %q", docs[0].Domain)
	}
	if docs[0].PathDepth != 2 {
		t.Fatalf("pathDepth = %d", docs[0].PathDepth)
	}
	if docs[1].PathDepth != 0 {
		t.Fatalf("root pathDepth = %d", docs[1].PathDepth)
	}
}

func TestLoad_MissingFileIsEmptyNotError(t *testing.T) {
	p := &Provider{Path: filepath.Join(t.TempDir(), "absent.csv")}
	docs, err := p.Load(10)
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected no docs, got %d", len(docs))
	}
}

func TestLoad_SkipsUnparseableRows(t *testing.T) {
	path := writeCSV(t, "url\nhttps://a.example.com/x\n\n::::not-a-url\nhttps://b.example.com/y\n")
	p := &Provider{Path: path}
	docs, err := p.Load(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 docs, got %d: %+v", len(docs), docs)
	}
}

func TestLoad_RespectsLimit(t *testing.T) {
	path := writeCSV(t, "url\nhttps://e.com/1\nhttps://e.com/2\nhttps://e.com/3\n")
	p := &Provider{Path: path}
	docs, err := p.Load(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected limit of 2, got %d", len(docs))
	}
}

func TestLoad_NoURLColumn(t *testing.T) {
	path := writeCSV(t, "link\nhttps://e.com/1\n")
	p := &Provider{Path: path}
	if _, err := p.Load(10); err == nil {
		t.Fatalf("expected error for missing url column")
	}
}
