// Package export renders an approved article plus its source list to a file.
// Unknown formats and docx failures fall back to markdown so publishing never
// fails a job over formatting.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/joseph-ayodele/research-agent/constants"
)

// Exporter is the boundary the publish stage depends on.
type Exporter interface {
	Export(ctx context.Context, article string, sources []string, format constants.ExportFormat, query string) (string, error)
}

// Service writes article files under OutputDir. When SourceWorkbook is set it
// also writes an XLSX log of the graded sources next to the article.
type Service struct {
	OutputDir      string
	SourceWorkbook bool
	logger         *slog.Logger

	now func() time.Time // test seam
}

func NewService(outputDir string, sourceWorkbook bool, logger *slog.Logger) *Service {
	if outputDir == "" {
		outputDir = "./outputs"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{OutputDir: outputDir, SourceWorkbook: sourceWorkbook, logger: logger, now: time.Now}
}

// Export renders the article in the requested format and returns the file path.
func (s *Service) Export(ctx context.Context, article string, sources []string, format constants.ExportFormat, query string) (string, error) {
	if err := os.MkdirAll(s.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	base := SafeFilename(query) + "_" + s.now().Format("20060102_150405")

	switch constants.NormalizeFormat(string(format)) {
	case constants.FormatMarkdown:
		return s.exportMarkdown(article, sources, base)
	case constants.FormatDocx:
		path, err := s.exportDocx(article, sources, base)
		if err != nil {
			s.logger.Warn("export.docx.failed_falling_back", "error", err)
			return s.exportMarkdown(article, sources, base)
		}
		return path, nil
	case constants.FormatNotion:
		// Notion export is not wired up; markdown is the documented fallback.
		s.logger.Warn("export.notion.unsupported_falling_back")
		return s.exportMarkdown(article, sources, base)
	default:
		s.logger.Warn("export.unknown_format_falling_back", "format", format)
		return s.exportMarkdown(article, sources, base)
	}
}

func (s *Service) exportMarkdown(article string, sources []string, base string) (string, error) {
	body := article
	if !strings.Contains(body, "## Sources") && !strings.Contains(body, "## References") {
		var b strings.Builder
		b.WriteString(body)
		b.WriteString("\n\n---\n\n## Sources\n\n")
		for i, url := range sources {
			fmt.Fprintf(&b, "%d. %s\n", i+1, url)
		}
		body = b.String()
	}

	path := filepath.Join(s.OutputDir, base+".md")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return "", fmt.Errorf("write markdown: %w", err)
	}
	s.logger.Info("export.markdown.ok", "path", path, "bytes", len(body))
	return path, nil
}

// SafeFilename keeps alphanumerics, maps everything else to underscores, and
// caps the length so queries cannot produce hostile paths.
func SafeFilename(query string) string {
	if strings.TrimSpace(query) == "" {
		return "research"
	}
	var b strings.Builder
	for _, r := range query {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := b.String()
	for strings.Contains(out, "__") {
		out = strings.ReplaceAll(out, "__", "_")
	}
	out = strings.Trim(out, "_")
	if out == "" {
		return "research"
	}
	if rs := []rune(out); len(rs) > 50 {
		out = string(rs[:50])
	}
	return out
}
