package export

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// exportDocx writes a minimal WordprocessingML package. The article's
// markdown-style headings (#, ##, ###) become Heading1-3 paragraphs; the
// source list goes on a List-style tail section. A .docx is just a zip of
// XML parts, so this needs no external dependency.
func (s *Service) exportDocx(article string, sources []string, base string) (string, error) {
	path := filepath.Join(s.OutputDir, base+".docx")

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create docx: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)

	parts := map[string]string{
		"[Content_Types].xml": contentTypesXML,
		"_rels/.rels":         relsXML,
		"word/styles.xml":     stylesXML,
		"word/document.xml":   buildDocumentXML(article, sources),
	}
	// Deterministic part order keeps the archive reproducible.
	for _, name := range []string{"[Content_Types].xml", "_rels/.rels", "word/styles.xml", "word/document.xml"} {
		w, err := zw.Create(name)
		if err != nil {
			return "", fmt.Errorf("zip part %s: %w", name, err)
		}
		if _, err := w.Write([]byte(parts[name])); err != nil {
			return "", fmt.Errorf("write part %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("finish docx: %w", err)
	}

	s.logger.Info("export.docx.ok", "path", path)
	return path, nil
}

func buildDocumentXML(article string, sources []string) string {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	for _, line := range strings.Split(article, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "### "):
			writeParagraph(&b, "Heading3", strings.TrimPrefix(line, "### "))
		case strings.HasPrefix(line, "## "):
			writeParagraph(&b, "Heading2", strings.TrimPrefix(line, "## "))
		case strings.HasPrefix(line, "# "):
			writeParagraph(&b, "Heading1", strings.TrimPrefix(line, "# "))
		default:
			writeParagraph(&b, "", line)
		}
	}

	if len(sources) > 0 {
		writeParagraph(&b, "Heading2", "Sources")
		for i, url := range sources {
			writeParagraph(&b, "", fmt.Sprintf("%d. %s", i+1, url))
		}
	}

	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

func writeParagraph(b *strings.Builder, style, text string) {
	b.WriteString(`<w:p>`)
	if style != "" {
		fmt.Fprintf(b, `<w:pPr><w:pStyle w:val="%s"/></w:pPr>`, style)
	}
	var esc strings.Builder
	_ = xml.EscapeText(&esc, []byte(text))
	fmt.Fprintf(b, `<w:r><w:t xml:space="preserve">%s</w:t></w:r>`, esc.String())
	b.WriteString(`</w:p>`)
}

const contentTypesXML = xml.Header + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`</Types>`

const relsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

const stylesXML = xml.Header + `<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
	`<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:rPr><w:b/><w:sz w:val="48"/></w:rPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="heading 2"/><w:rPr><w:b/><w:sz w:val="36"/></w:rPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading3"><w:name w:val="heading 3"/><w:rPr><w:b/><w:sz w:val="28"/></w:rPr></w:style>` +
	`</w:styles>`
