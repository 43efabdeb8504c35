// Package output persists generated documents as JSON files. This is a
// collaborator surface: the pipeline itself only produces in-memory documents.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glowlabs/pagegen/app/pipeline"
)

const (
	FAQFile        = "faq.json"
	ProductFile    = "product_page.json"
	ComparisonFile = "comparison_page.json"
)

type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// WriteResult writes the three documents of a pipeline run into the output
// directory, creating it if needed.
func (w *Writer) WriteResult(result *pipeline.Result) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	documents := []struct {
		filename string
		body     any
	}{
		{FAQFile, result.FAQ},
		{ProductFile, result.Product},
		{ComparisonFile, result.Comparison},
	}

	for _, doc := range documents {
		if err := w.writeJSON(doc.filename, doc.body); err != nil {
			return err
		}
	}

	return nil
}

func (w *Writer) writeJSON(filename string, body any) error {
	data, err := json.MarshalIndent(body, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filename, err)
	}

	path := filepath.Join(w.dir, filename)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}

	return nil
}
