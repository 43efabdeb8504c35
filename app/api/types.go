package api

import (
	"github.com/glowlabs/pagegen/app/database"
	"github.com/glowlabs/pagegen/app/pipeline"
	"github.com/glowlabs/pagegen/app/templates"
)

type PipelineInterface interface {
	Run(raw map[string]any) (*pipeline.Result, error)
}

var _ PipelineInterface = (*pipeline.Pipeline)(nil)

type Handler struct {
	pipeline     PipelineInterface
	registry     *templates.Registry
	runRepo      database.RunRepository
	documentRepo database.DocumentRepository
}
