// Copyright (c) 2026 Travelist. All rights reserved.
// Author: platform@travelist.ru

package listing_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelist/tourcat/internal/catalog"
	"github.com/travelist/tourcat/internal/listing"
	"github.com/travelist/tourcat/pkg/pointer"
)

func fullTour() *catalog.Tour {
	beginsAt := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)
	endsAt := time.Date(2026, time.July, 8, 0, 0, 0, 0, time.UTC)

	tour := newTour(42, catalog.TourTypeGold, beach, true)
	tour.PriceType = catalog.PriceTypePerRoom
	tour.MinPrice = pointer.To("125000.00")
	tour.BeginsAt = &beginsAt
	tour.EndsAt = &endsAt
	tour.DurationDays = pointer.To(8)
	tour.CoverID = pointer.To(int64(501))
	tour.Tickets = 2
	tour.IsTransferIncluded = true
	tour.Flight.IsIncluded = true
	tour.Provider = &catalog.Provider{Entry: catalog.Entry{ID: 3, Name: "Пегас"}}
	tour.Photos = catalog.Prefetch([]int64{601, 602})
	tour.Services = catalog.Prefetch([]catalog.Service{serviceNamed(9, "Spa")})
	tour.Hotels = catalog.Prefetch([]catalog.Hotel{{
		ID: 77, TourID: 42, Name: "Rixos", Category: "5*",
		Accommodations: catalog.Prefetch([]catalog.Accommodation{{
			ID: 1, HotelID: 77, Food: &catalog.BoardType{Entry: catalog.Entry{ID: 1, Name: "All inclusive"}},
		}}),
	}})
	return tour
}

func serviceNamed(id int64, name string) catalog.Service {
	return catalog.Service{Entry: catalog.Entry{ID: id, Name: name}}
}

func TestNewTourView(t *testing.T) {
	view := listing.NewTourView(fullTour(), catalog.English)

	assert.Equal(t, int64(42), view.ID)
	assert.Equal(t, catalog.TourTypeGold, view.TourType)
	assert.Equal(t, "Золотой тур", view.TourTypeLabel)
	require.NotNil(t, view.TripType)
	assert.Equal(t, int64(1), *view.TripType)
	assert.Equal(t, "Турция", view.Country)
	assert.Equal(t, &listing.CityView{ID: 10, Name: "Анталья"}, view.City)
	assert.Equal(t, []int64{601, 602}, view.Photos)
	assert.Equal(t, &listing.HotelView{ID: 77, Name: "Rixos", Category: "5*"}, view.Hotel)
	assert.Len(t, view.Hotels, 1)
	assert.Equal(t, pointer.To("2026-07-01"), view.BeginsAt)
	assert.Equal(t, pointer.To("2026-07-08"), view.EndsAt)
	assert.Equal(t, "8 days / 7 nights", view.Durations)
	assert.Equal(t, []int64{9}, view.Services)
	assert.Equal(t, []string{"Spa", "Transfer", "Flight"}, view.ServicesList)
	assert.False(t, view.IsPerPerson)
	assert.True(t, view.Special)
	assert.Equal(t, "/tours/42/", view.Slug)
	assert.Contains(t, view.HTML, "<br />")
	assert.Contains(t, view.HTML, "All inclusive")
	assert.NotContains(t, view.HTML, "\n")
}

func TestNewSimilarTourView(t *testing.T) {
	t.Run("with_hotel", func(t *testing.T) {
		view := listing.NewSimilarTourView(fullTour(), catalog.Russian)

		assert.Equal(t, pointer.To("Rixos"), view.Hotel.Name)
		assert.Equal(t, pointer.To("5*"), view.Hotel.Category)
		assert.Equal(t, []string{"отель", "авиабилет", "трансфер", "билет на мероприятие"}, view.Services)
		assert.Equal(t, pointer.To(beach.Name), view.TripType)
	})

	t.Run("without_hotel_keeps_null_fields", func(t *testing.T) {
		view := listing.NewSimilarTourView(newTour(5, catalog.TourTypeEvent, ski, true), catalog.English)

		encoded, err := json.Marshal(view)
		require.NoError(t, err)

		var shape map[string]any
		require.NoError(t, json.Unmarshal(encoded, &shape))
		assert.Equal(t, map[string]any{"name": nil, "category": nil}, shape["hotel"])
		assert.Equal(t, []any{}, shape["services"])
		assert.Len(t, shape, 17)
	})
}
