// Copyright (c) 2026 Travelist. All rights reserved.
// Author: platform@travelist.ru

package listing_test

import (
	"context"
	"errors"
	"slices"

	"github.com/travelist/tourcat/internal/catalog"
	"github.com/travelist/tourcat/internal/listing"
	"github.com/travelist/tourcat/internal/platform/apperr"
)

// fakeRepository keeps tours in memory and applies the public and similarity
// rules in Go.
type fakeRepository struct {
	tours []*catalog.Tour
	err   error

	lastParams    listing.ListParams
	lastReference *catalog.Tour
	lastLimit     int
	lastExport    listing.ExportFilter
}

func (repository *fakeRepository) List(_ context.Context, params listing.ListParams) ([]*catalog.Tour, error) {
	repository.lastParams = params
	if repository.err != nil {
		return nil, repository.err
	}

	var result []*catalog.Tour
	for _, tour := range repository.tours {
		if !isPublic(tour) {
			continue
		}
		if len(params.TourIDs) > 0 && !slices.Contains(params.TourIDs, tour.ID) {
			continue
		}
		result = append(result, tour)
	}
	if params.Limit > 0 && len(result) > params.Limit {
		result = result[:params.Limit]
	}
	return result, nil
}

func (repository *fakeRepository) FindReference(_ context.Context, id int64) (*catalog.Tour, error) {
	if repository.err != nil {
		return nil, repository.err
	}
	for _, tour := range repository.tours {
		if tour.ID == id {
			return tour, nil
		}
	}
	return nil, apperr.NotFound("Tour")
}

func (repository *fakeRepository) Similar(_ context.Context, reference *catalog.Tour, limit int) ([]*catalog.Tour, error) {
	repository.lastReference = reference
	repository.lastLimit = limit

	var result []*catalog.Tour
	for _, tour := range repository.tours {
		if !isPublic(tour) || tour.ID == reference.ID || tour.TourType != reference.TourType {
			continue
		}
		if reference.TourType == catalog.TourTypeRecreation &&
			(reference.TripType == nil || tour.TripType.ID != reference.TripType.ID) {
			continue
		}
		result = append(result, tour)
	}
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (repository *fakeRepository) Export(_ context.Context, filter listing.ExportFilter) ([]*catalog.Tour, error) {
	repository.lastExport = filter
	if repository.err != nil {
		return nil, repository.err
	}
	return repository.tours, nil
}

func isPublic(tour *catalog.Tour) bool {
	return tour.Published && tour.TripType != nil && tour.TripType.IsActive
}

var errDatabaseDown = errors.New("connection refused")
