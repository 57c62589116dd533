package services

import (
	"archive/zip"
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildTestPDF produces a minimal but well-formed PDF with one content
// stream per page, Helvetica with WinAnsiEncoding, and a correct xref table.
func buildTestPDF(pages []string) []byte {
	type object struct {
		num  int
		body string
	}

	catalogNum := 1
	pagesNum := 2
	fontNum := 3 + 2*len(pages)

	var kids []string
	for i := range pages {
		kids = append(kids, fmt.Sprintf("%d 0 R", 3+2*i))
	}

	objects := []object{
		{catalogNum, fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R >>", pagesNum)},
		{pagesNum, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages))},
	}

	for i, text := range pages {
		pageNum := 3 + 2*i
		contentNum := 4 + 2*i

		var stream string
		if text != "" {
			stream = fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", pdfEscapeWinAnsi(text))
		}

		objects = append(objects,
			object{pageNum, fmt.Sprintf(
				"<< /Type /Page /Parent %d 0 R /MediaBox [0 0 612 792] /Contents %d 0 R /Resources << /Font << /F1 %d 0 R >> >> >>",
				pagesNum, contentNum, fontNum)},
			object{contentNum, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream)},
		)
	}

	objects = append(objects, object{fontNum,
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>"})

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make(map[int]int, len(objects))
	for _, obj := range objects {
		offsets[obj.num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", obj.num, obj.body)
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for num := 1; num <= len(objects); num++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[num])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root %d 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(objects)+1, catalogNum, xrefOffset)

	return buf.Bytes()
}

// pdfEscapeWinAnsi escapes string delimiters and encodes the text as
// WinAnsi bytes; the em dash is the only non-ASCII rune the fixtures use.
func pdfEscapeWinAnsi(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '(' || r == ')' || r == '\\':
			b.WriteByte('\\')
			b.WriteByte(byte(r))
		case r == '—':
			b.WriteString("\\227")
		case r < 128:
			b.WriteByte(byte(r))
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}

func writeTestPDF(t *testing.T, dir string, pages []string) string {
	t.Helper()
	path := filepath.Join(dir, "resume.pdf")
	require.NoError(t, os.WriteFile(path, buildTestPDF(pages), 0644))
	return path
}

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const docxPackageRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const docxDocumentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

// buildTestDocxXML renders a document body with the given paragraphs and,
// when tableCells is non-empty, a one-row table after the paragraphs.
func buildTestDocxXML(paragraphs, tableCells []string) string {
	var body strings.Builder
	for _, p := range paragraphs {
		if p == "" {
			body.WriteString("<w:p/>")
			continue
		}
		fmt.Fprintf(&body, "<w:p><w:r><w:t>%s</w:t></w:r></w:p>", p)
	}
	if len(tableCells) > 0 {
		body.WriteString("<w:tbl><w:tr>")
		for _, cell := range tableCells {
			fmt.Fprintf(&body, "<w:tc><w:p><w:r><w:t>%s</w:t></w:r></w:p></w:tc>", cell)
		}
		body.WriteString("</w:tr></w:tbl>")
	}

	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + body.String() + `</w:body></w:document>`
}

func writeTestDocx(t *testing.T, dir, documentXML string) string {
	t.Helper()
	path := filepath.Join(dir, "resume.docx")

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	entries := []struct{ name, content string }{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxPackageRels},
		{"word/_rels/document.xml.rels", docxDocumentRels},
		{"word/document.xml", documentXML},
	}
	for _, e := range entries {
		w, err := zw.Create(e.name)
		require.NoError(t, err)
		_, err = w.Write([]byte(e.content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	return path
}

func writeTestPNG(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "resume.png")

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), B: 120, A: 255})
		}
	}

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))

	return path
}

func writeTestJPEG(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "resume.jpg")

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, jpeg.Encode(f, img, nil))

	return path
}
