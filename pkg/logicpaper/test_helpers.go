// test_helpers.go contains in-memory OOXML package builders used by the
// extraction and validation tests. Not for production use.

package logicpaper

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
)

func escapeXML(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return r.Replace(s)
}

func docxParagraphXML(text string) string {
	return "<w:p><w:r><w:t>" + escapeXML(text) + "</w:t></w:r></w:p>"
}

// buildDocxBytes assembles a minimal DOCX package: body paragraphs, an
// optional single-row table, and an optional header part.
func buildDocxBytes(paragraphs, tableCells, headerParagraphs []string) []byte {
	var body strings.Builder
	for _, p := range paragraphs {
		body.WriteString(docxParagraphXML(p))
	}
	if len(tableCells) > 0 {
		body.WriteString("<w:tbl><w:tr>")
		for _, cell := range tableCells {
			body.WriteString("<w:tc>" + docxParagraphXML(cell) + "</w:tc>")
		}
		body.WriteString("</w:tr></w:tbl>")
	}
	return buildDocxFromBodyXML(body.String(), headerParagraphs)
}

// buildDocxFromBodyXML is the raw-body variant for tests that need full
// control over run boundaries inside the document part.
func buildDocxFromBodyXML(bodyXML string, headerParagraphs []string) []byte {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	rels, _ := w.Create("_rels/.rels")
	io.WriteString(rels, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`)

	doc, _ := w.Create("word/document.xml")
	io.WriteString(doc, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>`+bodyXML+`</w:body>
</w:document>`)

	if len(headerParagraphs) > 0 {
		var header strings.Builder
		for _, p := range headerParagraphs {
			header.WriteString(docxParagraphXML(p))
		}
		hdr, _ := w.Create("word/header1.xml")
		io.WriteString(hdr, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:hdr xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`+header.String()+`</w:hdr>`)
	}

	ct, _ := w.Create("[Content_Types].xml")
	io.WriteString(ct, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`)

	w.Close()
	return buf.Bytes()
}

func pptxParagraphXML(text string) string {
	return "<a:p><a:r><a:t>" + escapeXML(text) + "</a:t></a:r></a:p>"
}

// buildPptxBytes assembles a minimal PPTX package with one slide holding the
// given paragraphs.
func buildPptxBytes(paragraphs []string) []byte {
	var body strings.Builder
	for _, p := range paragraphs {
		body.WriteString(pptxParagraphXML(p))
	}

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	rels, _ := w.Create("_rels/.rels")
	io.WriteString(rels, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="ppt/presentation.xml"/>
</Relationships>`)

	pres, _ := w.Create("ppt/presentation.xml")
	io.WriteString(pres, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"/>`)

	slide, _ := w.Create("ppt/slides/slide1.xml")
	io.WriteString(slide, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
  <p:cSld><p:spTree><p:sp><p:txBody>`+body.String()+`</p:txBody></p:sp></p:spTree></p:cSld>
</p:sld>`)

	ct, _ := w.Create("[Content_Types].xml")
	io.WriteString(ct, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>
</Types>`)

	w.Close()
	return buf.Bytes()
}
