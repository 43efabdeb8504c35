package database

import (
	"encoding/json"
	"fmt"

	"github.com/glowlabs/pagegen/app/pipeline"
)

// PersistResult stores one pipeline run and its three document bodies.
// Shared by the HTTP generate handler and the one-shot driver so every run
// lands in the database regardless of how it was triggered.
func PersistResult(runRepo RunRepository, documentRepo DocumentRepository, result *pipeline.Result) (*Run, error) {
	run, err := runRepo.CreateRun(result.Record.Name)
	if err != nil {
		return nil, err
	}

	documents := map[string]any{
		result.FAQ.PageType:        result.FAQ,
		result.Product.PageType:    result.Product,
		result.Comparison.PageType: result.Comparison,
	}

	for pageType, doc := range documents {
		body, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s document: %w", pageType, err)
		}
		if _, err := documentRepo.SaveDocument(run.ID, pageType, body); err != nil {
			return nil, err
		}
	}

	return run, nil
}
