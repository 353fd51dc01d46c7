package export

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/research-agent/internal/state"
)

// SourceLogWriter is implemented by exporters that can also write an audit
// log of graded sources. The publish stage type-asserts for it.
type SourceLogWriter interface {
	WriteSourceLog(results []state.SearchResult, articlePath string) (string, error)
}

// WriteSourceLog writes an XLSX workbook listing every graded result so a
// reviewer can audit which sources backed the article and how they scored.
// The workbook lands next to the article (<article>_sources.xlsx). No-op
// unless SourceWorkbook is enabled. Returns the workbook path.
func (s *Service) WriteSourceLog(results []state.SearchResult, articlePath string) (string, error) {
	if !s.SourceWorkbook || len(results) == 0 {
		return "", nil
	}
	base := articlePath[:len(articlePath)-len(filepath.Ext(articlePath))]
	f := excelize.NewFile()
	const sheet = "Sources"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return "", err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// Drop the default sheet excelize creates.
	_ = f.DeleteSheet("Sheet1")

	headers := []string{
		"Sub-Question",
		"Title",
		"URL",
		"Relevance",
		"Grade (1-5)",
		"Grade Reasoning",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range results {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, r.SubQuestion)
		write(2, r.Title)
		write(3, r.URL)
		write(4, r.RelevanceScore)
		write(5, r.GradeScore)
		write(6, truncate(r.GradeReasoning, 140))
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 40)
	_ = f.SetColWidth(sheet, "B", "B", 32)
	_ = f.SetColWidth(sheet, "C", "C", 48)
	_ = f.SetColWidth(sheet, "F", "F", 48)

	path := base + "_sources.xlsx"
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save source log: %w", err)
	}
	s.logger.Info("export.source_log.ok", "path", path, "rows", row-2)
	return path, nil
}

// truncate clips on a rune boundary so a clipped cell stays valid UTF-8.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n])
}
