package services

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDocx(t *testing.T, path, documentXML string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	files := map[string]string{
		"word/document.xml":            documentXML,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
	}
	for name, body := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
}

func TestDocumentExtractor_Docx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.docx")
	writeDocx(t, path, `<w:document><w:body>`+
		`<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>Go &amp; Postgres</w:t></w:r></w:p>`+
		`</w:body></w:document>`)

	text, err := NewDocumentExtractor().ExtractText(path)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nGo & Postgres", text)
	assert.Equal(t, "Jane Doe", GuessName(text))
}

func TestDocumentExtractor_EmptyDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.docx")
	writeDocx(t, path, `<w:document><w:body><w:p></w:p></w:body></w:document>`)

	_, err := NewDocumentExtractor().ExtractText(path)

	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestDocumentExtractor_UnsupportedExtension(t *testing.T) {
	_, err := NewDocumentExtractor().ExtractText("/tmp/resume.txt")

	assert.ErrorIs(t, err, ErrUnsupportedFile)
}

func TestDocumentExtractor_MissingFile(t *testing.T) {
	_, err := NewDocumentExtractor().ExtractText(filepath.Join(t.TempDir(), "missing.pdf"))

	assert.Error(t, err)
}

func TestDocumentExtractor_CorruptPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4\nthis is not really a pdf"), 0644))

	assert.NotPanics(t, func() {
		_, err := NewDocumentExtractor().ExtractText(path)
		assert.Error(t, err)
	})
}

func TestDocxPlainText(t *testing.T) {
	xml := `<w:p><w:r><w:t>Senior</w:t></w:r><w:tab/><w:r><w:t xml:space="preserve">  Engineer </w:t></w:r></w:p><w:p/><w:p><w:r><w:t>Remote</w:t></w:r></w:p>`

	assert.Equal(t, "Senior Engineer\nRemote", docxPlainText(xml))
}

// writePDF builds an uncompressed PDF with one line of WinAnsi text per page.
func writePDF(t *testing.T, path string, pages []string) {
	t.Helper()

	fontID := 3 + 2*len(pages)
	offsets := make([]int, fontID+1)

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	writeObj := func(id int, body string) {
		offsets[id] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", id, body)
	}

	kids := make([]string, 0, len(pages))
	for i := range pages {
		kids = append(kids, fmt.Sprintf("%d 0 R", 3+2*i))
	}

	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))
	for i, text := range pages {
		pageID, contentID := 3+2*i, 4+2*i
		content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		writeObj(pageID, fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>", fontID, contentID))
		writeObj(contentID, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}
	writeObj(fontID, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", fontID+1)
	for id := 1; id <= fontID; id++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[id])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", fontID+1, xrefOffset)

	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestDocumentExtractor_PDFReadsEveryPage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	writePDF(t, path, []string{"Jane Doe", "Senior Go Engineer", "Berlin"})

	text, err := NewDocumentExtractor().ExtractText(path)

	require.NoError(t, err)

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	assert.Equal(t, []string{"Jane Doe", "Senior Go Engineer", "Berlin"}, lines)
	assert.True(t, strings.HasSuffix(text, "Berlin\n"), "each page ends with a newline")
	assert.Equal(t, "Jane Doe", GuessName(text))
}
