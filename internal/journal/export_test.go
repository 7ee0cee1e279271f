package journal

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportJSONL(t *testing.T) {
	s := openTestStore(t)

	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	_, err := s.Append(Run{Pattern: "builder", Category: "creational", Output: "plan", CreatedAt: base})
	require.NoError(t, err)
	_, err = s.Append(Run{Pattern: "visitor", Category: "behavioral", Output: "tax", CreatedAt: base.Add(time.Hour)})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.ExportJSONL(&buf))

	var runs []Run
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var r Run
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &r))
		runs = append(runs, r)
	}
	require.NoError(t, scanner.Err())

	require.Len(t, runs, 2)
	assert.Equal(t, "visitor", runs[0].Pattern, "newest first")
	assert.Equal(t, "builder", runs[1].Pattern)
	assert.True(t, base.Equal(runs[1].CreatedAt))
}

func TestExportJSONLEmptyJournal(t *testing.T) {
	s := openTestStore(t)

	var buf bytes.Buffer
	require.NoError(t, s.ExportJSONL(&buf))
	assert.Zero(t, buf.Len())
}

func TestExportJSONLFile(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Append(Run{Pattern: "proxy", Category: "structural", Output: "hit"})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "runs.jsonl")
	require.NoError(t, s.ExportJSONLFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var r Run
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &r))
	assert.Equal(t, "proxy", r.Pattern)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "no leftover temp files")
}

func TestExportJSONLFileClosedStore(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	path := filepath.Join(t.TempDir(), "runs.jsonl")
	err = s.ExportJSONLFile(path)
	assert.ErrorIs(t, err, ErrClosed)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "failed export must not leave a file")
}
