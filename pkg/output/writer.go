// Package output writes flattened records to disk.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/saturnines/notion-verbs/pkg/errors"
	"github.com/saturnines/notion-verbs/pkg/transform"
)

// Encode renders records as a JSON array indented with two spaces, with
// no trailing newline. Non-ASCII and HTML characters are written
// literally.
func Encode(records []transform.Record) ([]byte, error) {
	if records == nil {
		records = []transform.Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// WriteJSON writes records to path atomically.
//
// Behavior:
//   - Writes to a temp file in the same directory.
//   - Renames into place on success, replacing any existing file.
//   - On failure, removes the temp file and leaves path untouched.
func WriteJSON(path string, records []transform.Record) error {
	data, err := Encode(records)
	if err != nil {
		return errors.WrapError(err, errors.ErrWrite, "encode records")
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return errors.WrapError(err, errors.ErrWrite, fmt.Sprintf("create temp file in %s", dir))
	}
	tmpName := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()

	if writeErr != nil {
		_ = os.Remove(tmpName)
		return errors.WrapError(writeErr, errors.ErrWrite, "write temp file")
	}
	if closeErr != nil {
		_ = os.Remove(tmpName)
		return errors.WrapError(closeErr, errors.ErrWrite, "close temp file")
	}
	// CreateTemp uses 0600; match what a plain create would give.
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return errors.WrapError(err, errors.ErrWrite, "chmod temp file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return errors.WrapError(err, errors.ErrWrite, fmt.Sprintf("rename to %s", path))
	}
	return nil
}

// ReadJSON reads a file written by WriteJSON.
func ReadJSON(path string) ([]transform.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var records []transform.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return records, nil
}
