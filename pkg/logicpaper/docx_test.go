package logicpaper

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocxReaderParagraphTexts(t *testing.T) {
	data := buildDocxBytes(
		[]string{"Olá {{client_name}}", "Total: {{ total }}"},
		[]string{"{{item}}"},
		[]string{"{{company}} header"},
	)

	reader, err := NewDocxReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	paragraphs, err := reader.ParagraphTexts()
	require.NoError(t, err)

	assert.Contains(t, paragraphs, "Olá {{client_name}}")
	assert.Contains(t, paragraphs, "Total: {{ total }}")
	assert.Contains(t, paragraphs, "{{item}}")
	assert.Contains(t, paragraphs, "{{company}} header")
}

func TestDocxReaderJoinsSplitRuns(t *testing.T) {
	// Word often splits a tag across runs when formatting changes mid-tag.
	body := "<w:p><w:r><w:t>{{cli</w:t></w:r><w:r><w:t>ent}}</w:t></w:r></w:p>"
	split := buildDocxFromBodyXML(body, nil)

	reader, err := NewDocxReader(bytes.NewReader(split), int64(len(split)))
	require.NoError(t, err)

	paragraphs, err := reader.ParagraphTexts()
	require.NoError(t, err)
	assert.Contains(t, paragraphs, "{{client}}")
}

func TestNewDocxReaderRejectsNonDocx(t *testing.T) {
	t.Run("not a zip", func(t *testing.T) {
		data := []byte("plain text")
		_, err := NewDocxReader(bytes.NewReader(data), int64(len(data)))
		assert.Error(t, err)
	})

	t.Run("zip without document part", func(t *testing.T) {
		data := buildPptxBytes([]string{"slide"})
		_, err := NewDocxReader(bytes.NewReader(data), int64(len(data)))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "word/document.xml")
	})
}

func TestPptxReaderParagraphTexts(t *testing.T) {
	data := buildPptxBytes([]string{"Bem-vindo {{client_name}}", "{{ total }}"})

	reader, err := NewPptxReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	paragraphs, err := reader.ParagraphTexts()
	require.NoError(t, err)
	assert.Equal(t, []string{"Bem-vindo {{client_name}}", "{{ total }}"}, paragraphs)
}

func TestNewPptxReaderRejectsNonPptx(t *testing.T) {
	data := buildDocxBytes([]string{"doc"}, nil, nil)
	_, err := NewPptxReader(bytes.NewReader(data), int64(len(data)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ppt/presentation.xml")
}
