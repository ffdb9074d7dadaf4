package logicpaper

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempTemplate(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestExtractTagNames(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"plain tag", "Hello {{ name }}", []string{"name"}},
		{"tight spacing", "{{name}}", []string{"name"}},
		{"filter clause ignored", "{{ total | format_currency('USD') }}", []string{"total"}},
		{"multiple tags", "{{a}} and {{ b | format_int() }}", []string{"a", "b"}},
		{"duplicates collapse", "{{x}} {{x}}", []string{"x"}},
		{"no tags", "plain text", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vars := make(map[string]bool)
			extractTagNames(tt.text, vars)
			assert.Equal(t, tt.want, sortedVars(vars))
		})
	}
}

func TestSortedVarsEmptySetIsNotNil(t *testing.T) {
	// Reports marshal these slices; an empty set must render as [] not null.
	out := sortedVars(map[string]bool{})
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestExtractDocxVars(t *testing.T) {
	data := buildDocxBytes(
		[]string{"Olá {{client_name}}", "Total: {{ total | format_currency('USD') }}"},
		[]string{"{{item}}"},
		[]string{"{{company}}"},
	)

	vars, err := ExtractDocxVars(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	assert.Equal(t, []string{"client_name", "company", "item", "total"}, sortedVars(vars))
}

func TestExtractPptxVars(t *testing.T) {
	data := buildPptxBytes([]string{"{{title}}", "Por {{ author }}"})

	vars, err := ExtractPptxVars(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	assert.Equal(t, []string{"author", "title"}, sortedVars(vars))
}

func TestExtractTemplateVars(t *testing.T) {
	t.Run("docx file", func(t *testing.T) {
		path := writeTempTemplate(t, "contract.docx",
			buildDocxBytes([]string{"{{client_name}} owes {{total}}"}, nil, nil))

		vars, err := ExtractTemplateVars(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"client_name", "total"}, sortedVars(vars))
	})

	t.Run("pptx file", func(t *testing.T) {
		path := writeTempTemplate(t, "deck.pptx", buildPptxBytes([]string{"{{title}}"}))

		vars, err := ExtractTemplateVars(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"title"}, sortedVars(vars))
	})

	t.Run("extension decides the parser", func(t *testing.T) {
		path := writeTempTemplate(t, "notes.txt", []byte("{{ignored}}"))

		_, err := ExtractTemplateVars(path)
		var unsupported *UnsupportedFormatError
		require.ErrorAs(t, err, &unsupported)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ExtractTemplateVars(filepath.Join(t.TempDir(), "nope.docx"))
		var docErr *DocumentError
		require.ErrorAs(t, err, &docErr)
		assert.Equal(t, "read", docErr.Operation)
	})

	t.Run("corrupt archive", func(t *testing.T) {
		path := writeTempTemplate(t, "broken.docx", []byte("not a zip"))

		_, err := ExtractTemplateVars(path)
		var docErr *DocumentError
		require.ErrorAs(t, err, &docErr)
		assert.Equal(t, "parse", docErr.Operation)
	})
}
