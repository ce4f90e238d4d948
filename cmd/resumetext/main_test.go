package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeparser/internal/extract"
	"resumeparser/internal/model"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	long := writeFile(t, dir, "cv.txt", strings.Repeat("b", 60))
	short := writeFile(t, dir, "short.txt", "tiny")
	sheet := writeFile(t, dir, "cv.xlsx", strings.Repeat("b", 60))
	missing := filepath.Join(dir, "gone.pdf")

	results := run(context.Background(), extract.New(50), []string{long, short, sheet, missing})
	require.Len(t, results, 4)

	assert.Equal(t, model.OutcomeSuccess, results[0].Outcome)
	assert.Equal(t, 60, results[0].TextLength)
	assert.Equal(t, model.OutcomeContentTooShort, results[1].Outcome)
	assert.Equal(t, model.OutcomeUnsupportedFileType, results[2].Outcome)
	assert.Equal(t, model.KindUnknown, results[2].Kind)
	assert.Equal(t, model.OutcomeExtractionFailure, results[3].Outcome)
	assert.NotEmpty(t, results[3].Error)
}

func TestWrite(t *testing.T) {
	results := []result{
		{File: "a.txt", Outcome: model.OutcomeSuccess, Text: "alpha"},
		{File: "b.txt", Outcome: model.OutcomeContentTooShort, Error: "extracted text too short"},
		{File: "c.txt", Outcome: model.OutcomeSuccess, Text: "gamma"},
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, write(&buf, results, false))
		assert.Equal(t, "==> a.txt <==\nalpha\n==> c.txt <==\ngamma", buf.String())
	})

	t.Run("single file has no header", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, write(&buf, results[:1], false))
		assert.Equal(t, "alpha", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, write(&buf, results, true))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)

		var second result
		require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
		assert.Equal(t, model.OutcomeContentTooShort, second.Outcome)
		assert.Empty(t, second.Text)
	})
}
