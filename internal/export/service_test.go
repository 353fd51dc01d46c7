package export

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/joseph-ayodele/research-agent/constants"
	"github.com/joseph-ayodele/research-agent/internal/state"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s := NewService(t.TempDir(), false, nil)
	s.now = func() time.Time { return time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC) }
	return s
}

func TestExport_Markdown_AppendsSources(t *testing.T) {
	s := newTestService(t)
	path, err := s.Export(context.Background(), "# Title\n\nBody.", []string{"https://a.test", "https://b.test"}, constants.FormatMarkdown, "Solar Panels 2026!")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if filepath.Base(path) != "Solar_Panels_2026_20260314_092653.md" {
		t.Fatalf("unexpected filename %q", filepath.Base(path))
	}
	body, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(body), "## Sources") {
		t.Fatalf("missing sources section:\n%s", body)
	}
	if !strings.Contains(string(body), "1. https://a.test") || !strings.Contains(string(body), "2. https://b.test") {
		t.Fatalf("sources not numbered:\n%s", body)
	}
}

func TestExport_Markdown_DoesNotDuplicateSources(t *testing.T) {
	s := newTestService(t)
	article := "# Title\n\nBody.\n\n## Sources\n\n1. https://already.test"
	path, err := s.Export(context.Background(), article, []string{"https://x.test"}, constants.FormatMD, "q")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	body, _ := os.ReadFile(path)
	if strings.Count(string(body), "## Sources") != 1 {
		t.Fatalf("sources section duplicated:\n%s", body)
	}
}

func TestExport_UnknownFormatFallsBackToMarkdown(t *testing.T) {
	s := newTestService(t)
	path, err := s.Export(context.Background(), "Body.", nil, constants.ExportFormat("pdf"), "q")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if filepath.Ext(path) != ".md" {
		t.Fatalf("expected markdown fallback, got %q", path)
	}
}

func TestExport_NotionFallsBackToMarkdown(t *testing.T) {
	s := newTestService(t)
	path, err := s.Export(context.Background(), "Body.", nil, constants.FormatNotion, "q")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if filepath.Ext(path) != ".md" {
		t.Fatalf("expected markdown fallback, got %q", path)
	}
}

func TestExport_Docx_ProducesValidArchive(t *testing.T) {
	s := newTestService(t)
	article := "# Heading One\n\n## Heading Two\n\nA paragraph with <angle> brackets & ampersands."
	path, err := s.Export(context.Background(), article, []string{"https://a.test"}, constants.FormatDocx, "q")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if filepath.Ext(path) != ".docx" {
		t.Fatalf("expected docx, got %q", path)
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("output is not a zip: %v", err)
	}
	defer zr.Close()

	names := map[string]bool{}
	for _, f := range zr.File {
		names[f.Name] = true
	}
	for _, want := range []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml", "word/styles.xml"} {
		if !names[want] {
			t.Fatalf("missing part %q in %v", want, names)
		}
	}

	doc := readZipPart(t, &zr.Reader, "word/document.xml")
	if !strings.Contains(doc, `w:val="Heading1"`) || !strings.Contains(doc, `w:val="Heading2"`) {
		t.Fatalf("headings not styled:\n%s", doc)
	}
	if !strings.Contains(doc, "&lt;angle&gt; brackets &amp; ampersands") {
		t.Fatalf("text not XML-escaped:\n%s", doc)
	}
	if !strings.Contains(doc, "1. https://a.test") {
		t.Fatalf("sources missing from document:\n%s", doc)
	}
}

func TestWriteSourceLog_RespectsFlag(t *testing.T) {
	s := newTestService(t)
	results := []state.SearchResult{{SubQuestion: "q?", Title: "t", URL: "https://u.test", GradeScore: 4}}

	if path, err := s.WriteSourceLog(results, filepath.Join(s.OutputDir, "a.md")); err != nil || path != "" {
		t.Fatalf("disabled workbook should be a no-op, got path=%q err=%v", path, err)
	}

	s.SourceWorkbook = true
	path, err := s.WriteSourceLog(results, filepath.Join(s.OutputDir, "a.md"))
	if err != nil {
		t.Fatalf("write source log: %v", err)
	}
	if !strings.HasSuffix(path, "a_sources.xlsx") {
		t.Fatalf("unexpected workbook path %q", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("workbook not written: %v", err)
	}
}

func TestSafeFilename(t *testing.T) {
	cases := map[string]string{
		"Solar Panels 2026!":   "Solar_Panels_2026",
		"   ":                  "research",
		"":                     "research",
		"a/b\\c:d":             "a_b_c_d",
		strings.Repeat("x", 80): strings.Repeat("x", 50),
		// Multibyte letters clip on a rune boundary, never mid-rune.
		strings.Repeat("é", 80): strings.Repeat("é", 50),
	}
	for in, want := range cases {
		if got := SafeFilename(in); got != want {
			t.Fatalf("SafeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTruncateKeepsValidUTF8(t *testing.T) {
	in := strings.Repeat("ü", 200)
	got := truncate(in, 140)
	if !utf8.ValidString(got) {
		t.Fatalf("truncated string is not valid UTF-8")
	}
	if n := utf8.RuneCountInString(got); n != 140 {
		t.Fatalf("truncated to %d runes, want 140", n)
	}
	if short := truncate("short", 140); short != "short" {
		t.Fatalf("short input mutated: %q", short)
	}
}

func readZipPart(t *testing.T, zr *zip.Reader, name string) string {
	t.Helper()
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open part: %v", err)
		}
		defer rc.Close()
		var b strings.Builder
		buf := make([]byte, 4096)
		for {
			n, err := rc.Read(buf)
			b.Write(buf[:n])
			if err != nil {
				break
			}
		}
		return b.String()
	}
	t.Fatalf("part %q not found", name)
	return ""
}
