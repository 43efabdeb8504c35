package database

type RunRepository interface {
	CreateRun(productName string) (*Run, error)
	GetRun(runID string) (*Run, error)
	ListRuns(limit int) ([]Run, error)
	GetRunCount() (int, error)
}

type DocumentRepository interface {
	SaveDocument(runID, pageType string, body []byte) (string, error)
	GetDocuments(runID string) ([]Document, error)
	GetDocumentCount() (int, error)
}
