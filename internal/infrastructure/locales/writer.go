package locales

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sheetloc/internal/domain/entities"
	"sheetloc/internal/ports/output"
)

var _ output.DocumentWriter = (*FileWriter)(nil)

// FileWriter writes one file per language and format into a directory,
// overwriting existing files.
type FileWriter struct {
	dir      string
	encoders []Encoder
}

// NewFileWriter builds a writer for the given formats (json, toml, yaml).
func NewFileWriter(dir string, formats []string) (*FileWriter, error) {
	if len(formats) == 0 {
		formats = []string{"json"}
	}
	w := &FileWriter{dir: dir}
	for _, f := range formats {
		enc, err := EncoderFor(f)
		if err != nil {
			return nil, err
		}
		w.encoders = append(w.encoders, enc)
	}
	return w, nil
}

// Prepare creates the output directory and its parents.
func (w *FileWriter) Prepare() error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return nil
}

// Write encodes doc once per format. A failing format does not stop the
// others; the paths written so far are returned with the joined errors.
func (w *FileWriter) Write(lang string, doc *entities.Document) ([]string, error) {
	if err := checkLanguage(lang); err != nil {
		return nil, err
	}

	var (
		written []string
		errs    []error
	)
	for _, enc := range w.encoders {
		path := filepath.Join(w.dir, lang+"."+enc.Ext())
		data, err := enc.Encode(doc)
		if err != nil {
			errs = append(errs, fmt.Errorf("encode %s: %w", path, err))
			continue
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			errs = append(errs, fmt.Errorf("write %s: %w", path, err))
			continue
		}
		written = append(written, path)
	}
	return written, errors.Join(errs...)
}

// checkLanguage keeps a language identifier from escaping the output directory.
func checkLanguage(lang string) error {
	if lang == "." || lang == ".." || strings.ContainsAny(lang, `/\`) {
		return fmt.Errorf("invalid language identifier %q", lang)
	}
	return nil
}
