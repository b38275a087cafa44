// Copyright (c) 2026 Travelist. All rights reserved.
// Author: platform@travelist.ru

package listing_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelist/tourcat/internal/listing"
	"github.com/travelist/tourcat/internal/platform/apperr"
)

/*
TestParseListParams covers the leniency table of the listing query string.
*/
func TestParseListParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  listing.ListParams
	}{
		{"empty", "", listing.ListParams{}},
		{"ids", "tours_id=3,1,2", listing.ListParams{TourIDs: []int64{3, 1, 2}}},
		{"ids_with_spaces", "tours_id=3,%201", listing.ListParams{TourIDs: []int64{3, 1}}},
		{"max_price", "max_price=50000", listing.ListParams{MaxPrice: 50000}},
		{"max_price_malformed", "max_price=abc", listing.ListParams{}},
		{"max_price_float", "max_price=10.5", listing.ListParams{}},
		{"limit", "limit=10", listing.ListParams{Limit: 10}},
		{"limit_malformed", "limit=ten", listing.ListParams{}},
		{"limit_negative", "limit=-3", listing.ListParams{}},
		{"shuffle_on", "shuffle=1", listing.ListParams{Shuffle: true}},
		{"shuffle_off", "shuffle=0", listing.ListParams{}},
		{"shuffle_true_is_not_one", "shuffle=true", listing.ListParams{}},
		{
			"everything",
			"tours_id=7&max_price=1000&limit=2&shuffle=1",
			listing.ListParams{TourIDs: []int64{7}, MaxPrice: 1000, Limit: 2, Shuffle: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			got, err := listing.ParseListParams(values)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseListParams_RejectsMalformedIDs(t *testing.T) {
	for _, raw := range []string{"1,x,3", "abc", "1.5", "99999999999999999999", "", ",", "1,,2", "5,", " "} {
		t.Run(raw, func(t *testing.T) {
			_, err := listing.ParseListParams(url.Values{"tours_id": {raw}})
			require.Error(t, err)

			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, "VALIDATION_ERROR", appError.Code)
			assert.Equal(t, 400, appError.HTTPStatus)
			require.Len(t, appError.Details, 1)
			assert.Equal(t, "tours_id", appError.Details[0].Field)
		})
	}
}

func TestParseListParams_NamesOffendingToken(t *testing.T) {
	_, err := listing.ParseListParams(url.Values{"tours_id": {"1,x,3"}})

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Contains(t, appError.Details[0].Message, `"x"`)
}

/*
TestParseListParams_EmptyTokenIsNotAnID checks that an empty id never widens
the listing to the whole catalog.
*/
func TestParseListParams_EmptyTokenIsNotAnID(t *testing.T) {
	for _, target := range []string{"tours_id=", "tours_id=,", "tours_id=1,,2"} {
		t.Run(target, func(t *testing.T) {
			values, err := url.ParseQuery(target)
			require.NoError(t, err)

			_, err = listing.ParseListParams(values)
			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, "VALIDATION_ERROR", appError.Code)
			assert.Contains(t, appError.Details[0].Message, `""`)
		})
	}
}
