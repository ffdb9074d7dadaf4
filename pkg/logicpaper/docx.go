package logicpaper

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
)

var (
	docxTextPartPattern  = regexp.MustCompile(`^word/(document|header\d+|footer\d+)\.xml$`)
	pptxSlidePartPattern = regexp.MustCompile(`^ppt/slides/slide\d+\.xml$`)
)

// DocxReader provides read access to the text-bearing parts of a DOCX
// package: the document body plus every header and footer part. Tables are
// covered implicitly because table cells contain ordinary paragraphs.
type DocxReader struct {
	parts map[string]*zip.File
}

// NewDocxReader opens a DOCX package from a random-access reader.
func NewDocxReader(r io.ReaderAt, size int64) (*DocxReader, error) {
	zipReader, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to read zip file: %w", err)
	}

	dr := &DocxReader{parts: make(map[string]*zip.File)}
	for _, file := range zipReader.File {
		dr.parts[file.Name] = file
	}

	if _, ok := dr.parts["word/document.xml"]; !ok {
		return nil, fmt.Errorf("not a valid DOCX file: missing word/document.xml")
	}
	return dr, nil
}

// ParagraphTexts returns the joined run text of every paragraph in the body,
// headers and footers. Runs are concatenated per paragraph so a tag split
// across runs by character formatting still comes out whole.
func (dr *DocxReader) ParagraphTexts() ([]string, error) {
	return collectPartParagraphs(dr.parts, docxTextPartPattern)
}

// PptxReader provides read access to the text-bearing parts of a PPTX
// package: every slide's shapes and table cells.
type PptxReader struct {
	parts map[string]*zip.File
}

// NewPptxReader opens a PPTX package from a random-access reader.
func NewPptxReader(r io.ReaderAt, size int64) (*PptxReader, error) {
	zipReader, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to read zip file: %w", err)
	}

	pr := &PptxReader{parts: make(map[string]*zip.File)}
	for _, file := range zipReader.File {
		pr.parts[file.Name] = file
	}

	if _, ok := pr.parts["ppt/presentation.xml"]; !ok {
		return nil, fmt.Errorf("not a valid PPTX file: missing ppt/presentation.xml")
	}
	return pr, nil
}

// ParagraphTexts returns the joined run text of every paragraph on every
// slide, including paragraphs inside table cells.
func (pr *PptxReader) ParagraphTexts() ([]string, error) {
	return collectPartParagraphs(pr.parts, pptxSlidePartPattern)
}

func collectPartParagraphs(parts map[string]*zip.File, pattern *regexp.Regexp) ([]string, error) {
	names := make([]string, 0, len(parts))
	for name := range parts {
		if pattern.MatchString(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var paragraphs []string
	for _, name := range names {
		rc, err := parts[name].Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", name, err)
		}
		paras, err := collectParagraphText(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		paragraphs = append(paragraphs, paras...)
	}
	return paragraphs, nil
}

// collectParagraphText streams one OOXML part and emits the concatenated
// text of each paragraph. Both WordprocessingML (w:p/w:t) and DrawingML
// (a:p/a:t) use the local names "p" and "t" for paragraphs and text runs.
func collectParagraphText(r io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(r)

	var paragraphs []string
	var current strings.Builder
	inParagraph := false
	inText := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				current.Reset()
				inParagraph = true
			case "t":
				inText = inParagraph
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if inParagraph {
					paragraphs = append(paragraphs, current.String())
					inParagraph = false
				}
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}
	return paragraphs, nil
}
