package usecase

import (
	"egy-discovery/internal/marketing/repository"
	"egy-discovery/pkg/log"
)

// implUseCase is the private implementation of marketing.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new marketing UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
