package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/glowlabs/pagegen/app/database"
	"github.com/glowlabs/pagegen/app/product"
	"github.com/glowlabs/pagegen/app/templates"
)

func NewHandler(p PipelineInterface, registry *templates.Registry,
	runRepo database.RunRepository, documentRepo database.DocumentRepository) *Handler {
	return &Handler{
		pipeline:     p,
		registry:     registry,
		runRepo:      runRepo,
		documentRepo: documentRepo,
	}
}

// Generate runs the content pipeline for the raw product record in the
// request body, persists the produced documents, and returns all three.
func (h *Handler) Generate(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body must be a JSON object"})
		return
	}

	result, err := h.pipeline.Run(raw)
	if err != nil {
		if errors.Is(err, product.ErrMissingRequiredField) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.Error("Pipeline error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Content generation failed"})
		return
	}

	run, err := database.PersistResult(h.runRepo, h.documentRepo, result)
	if err != nil {
		slog.Error("Database error", "operation", "persist_result", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist generated documents"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"run_id":       run.ID,
		"product_name": result.Record.Name,
		"documents": gin.H{
			"faq":        result.FAQ,
			"product":    result.Product,
			"comparison": result.Comparison,
		},
	})
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]any{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"templates": len(h.registry.List()),
	}

	if runCount, err := h.runRepo.GetRunCount(); err == nil {
		health["runs"] = runCount
	}

	if documentCount, err := h.documentRepo.GetDocumentCount(); err == nil {
		health["documents"] = documentCount
	}

	c.JSON(http.StatusOK, health)
}

// GetTemplates lists the registered document templates.
func (h *Handler) GetTemplates(c *gin.Context) {
	types := h.registry.List()

	definitions := make([]map[string]any, 0, len(types))
	for _, pageType := range types {
		def, err := h.registry.Get(pageType)
		if err != nil {
			slog.Error("Template lookup failed", "page_type", pageType, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Template lookup failed"})
			return
		}

		fields := make([]map[string]any, 0, len(def.RequiredFields))
		for _, field := range def.RequiredFields {
			fields = append(fields, map[string]any{
				"name":      field.Name,
				"required":  field.Required,
				"data_type": field.DataType,
			})
		}

		definitions = append(definitions, map[string]any{
			"name":                  def.Name,
			"page_type":             def.PageType,
			"required_fields":       fields,
			"required_logic_blocks": def.RequiredBlocks,
			"sections":              def.Sections,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"templates": definitions,
		"total":     len(definitions),
	})
}

func (h *Handler) APIListRuns(c *gin.Context) {
	runs, err := h.runRepo.ListRuns(50)
	if err != nil {
		slog.Error("Database error", "operation", "list_runs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	items := make([]map[string]any, 0, len(runs))
	for _, run := range runs {
		items = append(items, map[string]any{
			"id":           run.ID,
			"product_name": run.ProductName,
			"created_at":   run.CreatedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, map[string]any{
		"runs":  items,
		"total": len(items),
	})
}

func (h *Handler) APIGetRunDocuments(c *gin.Context) {
	runID := c.Param("id")
	if runID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing run id parameter"})
		return
	}

	run, err := h.runRepo.GetRun(runID)
	if err != nil {
		slog.Error("Database error", "operation", "get_run", "run", runID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if run == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Run not found"})
		return
	}

	documents, err := h.documentRepo.GetDocuments(runID)
	if err != nil {
		slog.Error("Database error", "operation", "get_documents", "run", runID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	bodies := make(map[string]json.RawMessage, len(documents))
	for _, doc := range documents {
		bodies[doc.PageType] = json.RawMessage(doc.Body)
	}

	c.JSON(http.StatusOK, gin.H{
		"run_id":       run.ID,
		"product_name": run.ProductName,
		"created_at":   run.CreatedAt.Format(time.RFC3339),
		"documents":    bodies,
	})
}
