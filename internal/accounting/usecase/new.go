package usecase

import (
	"egy-discovery/internal/accounting/repository"
	"egy-discovery/pkg/log"
)

// implUseCase is the private implementation of accounting.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new accounting UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
