// Package output renders command results: indented JSON, filtered values,
// minified documents and formatted timestamps.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
)

// JSON writes raw JSON re-indented by two spaces and followed by a newline.
func JSON(w io.Writer, raw json.RawMessage) error {
	if len(raw) == 0 {
		raw = json.RawMessage("null")
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("indent json: %w", err)
	}
	buf.WriteByte('\n')

	_, err := w.Write(buf.Bytes())
	return err
}

// Value marshals v as indented JSON followed by a newline.
func Value(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = w.Write(append(data, '\n'))
	return err
}

// Emit writes a document to the file at path, or to stdout when path is empty.
func Emit(stdout io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	log.Info().Str("path", path).Int("bytes", len(data)).Msg("Document written")

	return nil
}
