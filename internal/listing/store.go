// Copyright (c) 2026 Travelist. All rights reserved.
// Author: platform@travelist.ru

package listing

import (
	"context"

	"github.com/travelist/tourcat/internal/catalog"
)

// ExportFilter selects the tours written by an export.
type ExportFilter struct {
	// IDs restricts the selection when non-empty.
	IDs []int64

	// PublishedOnly skips drafts.
	PublishedOnly bool
}

// Repository is the read-only storage contract of the listing endpoints.
//
// Every returned tour carries its city, country, trip type and provider.
// To-many associations are prefetched per method as documented; anything not
// listed reads as an empty [catalog.Prefetched].
type Repository interface {
	// List returns public tours matching params, with hotels (and their
	// accommodations), services and photos prefetched.
	List(context context.Context, params ListParams) ([]*catalog.Tour, error)

	// FindReference returns a tour by id regardless of publication state.
	FindReference(context context.Context, id int64) (*catalog.Tour, error)

	// Similar returns up to limit random public tours resembling reference,
	// with hotels prefetched.
	Similar(context context.Context, reference *catalog.Tour, limit int) ([]*catalog.Tour, error)

	// Export returns tours ordered by id with hotels prefetched.
	Export(context context.Context, filter ExportFilter) ([]*catalog.Tour, error)
}
