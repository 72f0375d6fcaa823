package usecase

import (
	"egy-discovery/internal/workflow"
	"egy-discovery/pkg/log"
	"egy-discovery/pkg/n8n"
)

// implUseCase is the private implementation of workflow.UseCase.
type implUseCase struct {
	l      log.Logger
	client n8n.IN8N
	cfg    workflow.Config
}

var _ workflow.UseCase = (*implUseCase)(nil)

// New creates a new workflow UseCase implementation.
func New(l log.Logger, client n8n.IN8N, cfg workflow.Config) *implUseCase {
	return &implUseCase{
		l:      l,
		client: client,
		cfg:    cfg,
	}
}
