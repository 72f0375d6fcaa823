package usecase

import (
	"egy-discovery/internal/analysis/repository"
	"egy-discovery/pkg/log"
)

// implUseCase is the private implementation of analysis.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new analysis UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
