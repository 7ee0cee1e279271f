// JSONL export for the run journal.

package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ExportJSONL writes all recorded runs to w as JSONL, one run per
// line, newest first.
func (s *Store) ExportJSONL(w io.Writer) error {
	runs, err := s.List(Filter{})
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, run := range runs {
		line, err := json.Marshal(run)
		if err != nil {
			return fmt.Errorf("marshal run %s: %w", run.RunID, err)
		}
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("write run: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("write newline: %w", err)
		}
	}
	return bw.Flush()
}

// ExportJSONLFile writes the export to path atomically using the
// temp-file, fsync, rename sequence.
func (s *Store) ExportJSONLFile(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".journal-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := s.ExportJSONL(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}
