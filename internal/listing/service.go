// Copyright (c) 2026 Travelist. All rights reserved.
// Author: platform@travelist.ru

package listing

import (
	"context"
	"log/slog"

	"github.com/travelist/tourcat/internal/catalog"
)

// SimilarLimit caps the similar-tours widget.
const SimilarLimit = 4

// Service implements the read use cases of the tour listing.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a listing service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListTours returns the public tours selected by params.
func (service *Service) ListTours(context context.Context, params ListParams) ([]*catalog.Tour, error) {
	tours, err := service.repo.List(context, params)
	if err != nil {
		return nil, err
	}

	service.logger.DebugContext(context, "tours_listed",
		slog.Int("count", len(tours)),
		slog.Int("requested_ids", len(params.TourIDs)),
		slog.Bool("shuffle", params.Shuffle),
	)
	return tours, nil
}

// SimilarTours returns up to [SimilarLimit] public tours resembling the tour
// with the given id. A missing reference tour yields a NOT_FOUND error.
func (service *Service) SimilarTours(context context.Context, id int64) ([]*catalog.Tour, error) {
	reference, err := service.repo.FindReference(context, id)
	if err != nil {
		return nil, err
	}

	return service.repo.Similar(context, reference, SimilarLimit)
}

// ExportTours returns the selection written by the export command.
func (service *Service) ExportTours(context context.Context, filter ExportFilter) ([]*catalog.Tour, error) {
	tours, err := service.repo.Export(context, filter)
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "tours_exported",
		slog.Int("count", len(tours)),
		slog.Bool("published_only", filter.PublishedOnly),
	)
	return tours, nil
}
