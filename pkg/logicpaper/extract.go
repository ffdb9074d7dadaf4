package logicpaper

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// tagNamePattern captures only the leading identifier of each tag; any filter
// clause after it is irrelevant for dependency extraction. A regex scan is
// robust against custom filters that crash template introspection tools.
var tagNamePattern = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_]+).*?\}\}`)

// extractTagNames collects the variable names referenced in one text span.
func extractTagNames(text string, into map[string]bool) {
	for _, match := range tagNamePattern.FindAllStringSubmatch(text, -1) {
		into[match[1]] = true
	}
}

// ExtractDocxVars returns the set of variable names a DOCX template
// requires, scanning body, tables, headers and footers.
func ExtractDocxVars(r io.ReaderAt, size int64) (map[string]bool, error) {
	reader, err := NewDocxReader(r, size)
	if err != nil {
		return nil, err
	}
	return varsFromParagraphs(reader.ParagraphTexts())
}

// ExtractPptxVars returns the set of variable names a PPTX template
// requires, scanning every slide including table cells.
func ExtractPptxVars(r io.ReaderAt, size int64) (map[string]bool, error) {
	reader, err := NewPptxReader(r, size)
	if err != nil {
		return nil, err
	}
	return varsFromParagraphs(reader.ParagraphTexts())
}

func varsFromParagraphs(paragraphs []string, err error) (map[string]bool, error) {
	if err != nil {
		return nil, err
	}
	vars := make(map[string]bool)
	for _, p := range paragraphs {
		extractTagNames(p, vars)
	}
	return vars, nil
}

// ExtractTemplateVars reads a template file and returns its required
// variable set, dispatching on the file extension.
func ExtractTemplateVars(path string) (map[string]bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewDocumentError("read", path, err)
	}

	reader := bytes.NewReader(data)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		vars, err := ExtractDocxVars(reader, int64(len(data)))
		if err != nil {
			return nil, NewDocumentError("parse", path, err)
		}
		return vars, nil
	case ".pptx":
		vars, err := ExtractPptxVars(reader, int64(len(data)))
		if err != nil {
			return nil, NewDocumentError("parse", path, err)
		}
		return vars, nil
	default:
		return nil, &UnsupportedFormatError{Path: path}
	}
}

// sortedVars flattens a variable set for stable report output.
func sortedVars(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
