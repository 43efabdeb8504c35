package database

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

var _ DocumentRepository = (*documentRepository)(nil)

type documentRepository struct {
	db *DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) SaveDocument(runID, pageType string, body []byte) (string, error) {
	// On conflict the existing row keeps its id, so read the id back from
	// the row actually stored rather than trusting the fresh uuid.
	var id string
	err := r.db.QueryRow(`
		INSERT INTO documents (id, run_id, page_type, body, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (run_id, page_type) DO UPDATE SET body = excluded.body
		RETURNING id
	`, uuid.NewString(), runID, pageType, string(body), time.Now().UTC()).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to save document: %w", err)
	}

	return id, nil
}

func (r *documentRepository) GetDocuments(runID string) ([]Document, error) {
	rows, err := r.db.Query(`
		SELECT id, run_id, page_type, body, created_at
		FROM documents
		WHERE run_id = ?
		ORDER BY page_type
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get documents: %w", err)
	}
	defer rows.Close()

	documents := make([]Document, 0)
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.ID, &doc.RunID, &doc.PageType, &doc.Body, &doc.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		documents = append(documents, doc)
	}

	return documents, rows.Err()
}

func (r *documentRepository) GetDocumentCount() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM documents`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return count, nil
}
