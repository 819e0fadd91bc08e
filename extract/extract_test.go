package extract

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestRegistryFormats(t *testing.T) {
	r := NewRegistry()
	for _, f := range []string{"pdf", "docx", "xlsx", "md", "html", "txt"} {
		if _, err := r.Get(f); err != nil {
			t.Errorf("Get(%q) failed: %v", f, err)
		}
	}
	if _, err := r.Get("exe"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestTextExtractorSinglePage(t *testing.T) {
	path := writeFile(t, "doc.txt", "Introduction\nSome body text here.")
	pages, err := (&TextExtractor{}).Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	if pages[0].Number != 1 {
		t.Errorf("page number = %d, want 1", pages[0].Number)
	}
	if !strings.Contains(pages[0].Text, "Introduction") {
		t.Errorf("page text missing content: %q", pages[0].Text)
	}
}

func TestTextExtractorFormFeedPages(t *testing.T) {
	path := writeFile(t, "doc.txt", "page one text\fpage two text\f\f")
	pages, err := (&TextExtractor{}).Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	if pages[1].Number != 2 || pages[1].Text != "page two text" {
		t.Errorf("page 2 = %+v", pages[1])
	}
}

func TestMarkdownExtractor(t *testing.T) {
	src := "# Overview\n\nFirst paragraph of the overview.\n\n## 1.1 Details\n\nDetail text."
	path := writeFile(t, "doc.md", src)
	pages, err := (&MarkdownExtractor{}).Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	text := pages[0].Text
	for _, want := range []string{"Overview", "First paragraph of the overview.", "1.1 Details"} {
		if !strings.Contains(text, want) {
			t.Errorf("missing %q in extracted text:\n%s", want, text)
		}
	}
	// Headings must sit on their own line for downstream detection.
	if !hasLine(text, "Overview") {
		t.Errorf("heading not on its own line:\n%s", text)
	}
}

func TestHTMLExtractor(t *testing.T) {
	src := `<html><head><title>T</title><style>p{}</style></head>
<body><h1>Overview</h1><p>Body paragraph.</p><script>evil()</script></body></html>`
	path := writeFile(t, "doc.html", src)
	pages, err := (&HTMLExtractor{}).Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	text := pages[0].Text
	if !hasLine(text, "Overview") {
		t.Errorf("missing heading line:\n%s", text)
	}
	if !strings.Contains(text, "Body paragraph.") {
		t.Errorf("missing paragraph:\n%s", text)
	}
	if strings.Contains(text, "evil") {
		t.Errorf("script content leaked into text:\n%s", text)
	}
}

func TestPDFExtractorMissingFile(t *testing.T) {
	_, err := (&PDFExtractor{}).Extract(context.Background(), "/nonexistent/file.pdf")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func hasLine(text, want string) bool {
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == want {
			return true
		}
	}
	return false
}
