// Copyright (c) 2026 Travelist. All rights reserved.
// Author: platform@travelist.ru

package listing

import (
	"time"

	"github.com/travelist/tourcat/internal/catalog"
	"github.com/travelist/tourcat/pkg/slice"
)

// # Response Projections
//
// Views never use omitempty: every key is always present so the front-end can
// rely on a stable shape. Empty lists render as [].

const viewDateLayout = "2006-01-02"

// ListResponse is the body of GET /pages/tours/.
type ListResponse struct {
	Tours []TourView `json:"tours"`
}

// CityView is the nested city of a projection.
type CityView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// HotelView is a hotel as shown in the listing.
type HotelView struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// TourView is the listing projection of a tour.
type TourView struct {
	ID            int64            `json:"id"`
	Title         *string          `json:"title"`
	TourType      catalog.TourType `json:"tour_type"`
	TourTypeLabel string           `json:"tour_type_label"`
	TripType      *int64           `json:"trip_type"`
	TripTypeName  string           `json:"trip_type_name"`
	City          *CityView        `json:"city"`
	Country       string           `json:"country"`
	CoverID       *int64           `json:"cover_id"`
	Photos        []int64          `json:"photos"`
	Description   string           `json:"description"`
	Comment       string           `json:"comment"`
	HTML          string           `json:"html"`

	Hotel    *HotelView        `json:"hotel"`
	Hotels   []HotelView       `json:"hotels"`
	Provider *catalog.Provider `json:"provider"`
	Tickets  int               `json:"tickets"`

	FlightInfo           catalog.Flight `json:"flight_info"`
	IsTransferIncluded   bool           `json:"is_transfer_included"`
	TransferDescription  string         `json:"transfer_description"`
	IsInsuranceIncluded  bool           `json:"is_insurance_included"`
	InsuranceDescription string         `json:"insurance_description"`

	BeginsAt       *string `json:"begins_at"`
	EndsAt         *string `json:"ends_at"`
	DurationDays   *int    `json:"duration_days"`
	DurationNights int     `json:"duration_nights"`
	Durations      string  `json:"durations"`

	Services     []int64  `json:"services"`
	ServicesList []string `json:"services_list"`

	MinPrice        *string `json:"min_price"`
	IsPerPerson     bool    `json:"is_per_person"`
	Priority        int     `json:"priority"`
	Special         bool    `json:"special"`
	Slug            string  `json:"slug"`
	IsBestTour      bool    `json:"is_best_tour"`
	IsBestPrice     bool    `json:"is_best_price"`
	IsEditorsChoice bool    `json:"is_editors_choice"`
}

// SimilarHotelView is always present; both fields are null without a hotel.
type SimilarHotelView struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
}

// SimilarTourView is the similar-tours widget projection of a tour.
type SimilarTourView struct {
	ID              int64            `json:"id"`
	Title           *string          `json:"title"`
	City            *CityView        `json:"city"`
	Country         string           `json:"country"`
	CoverID         *int64           `json:"cover_id"`
	Hotel           SimilarHotelView `json:"hotel"`
	BeginsAt        *string          `json:"begins_at"`
	EndsAt          *string          `json:"ends_at"`
	DurationDays    *int             `json:"duration_days"`
	DurationNights  int              `json:"duration_nights"`
	MinPrice        *string          `json:"min_price"`
	IsPerPerson     bool             `json:"is_per_person"`
	Services        []string         `json:"services"`
	TripType        *string          `json:"trip_type"`
	IsBestPrice     bool             `json:"is_best_price"`
	IsBestTour      bool             `json:"is_best_tour"`
	IsEditorsChoice bool             `json:"is_editors_choice"`
}

// NewTourView projects a tour prefetched by [Repository.List].
func NewTourView(tour *catalog.Tour, texts *catalog.Texts) TourView {
	view := TourView{
		ID:            tour.ID,
		Title:         tour.Title,
		TourType:      tour.TourType,
		TourTypeLabel: tour.TourType.Label(),
		TripTypeName:  tour.TripTypeName(),
		City:          newCityView(tour.City),
		Country:       tour.Country(),
		CoverID:       tour.CoverID,
		Photos:        nonNil(tour.Photos.All()),
		Description:   tour.Description,
		Comment:       tour.Comment,
		HTML:          tour.Info(texts, catalog.HTMLBreaks),

		Hotels:   nonNil(slice.Map(tour.Hotels.All(), newHotelView)),
		Provider: tour.Provider,
		Tickets:  tour.Tickets,

		FlightInfo:           tour.Flight,
		IsTransferIncluded:   tour.IsTransferIncluded,
		TransferDescription:  tour.TransferDescription,
		IsInsuranceIncluded:  tour.IsInsuranceIncluded,
		InsuranceDescription: tour.InsuranceDescription,

		BeginsAt:       formatDate(tour.BeginsAt),
		EndsAt:         formatDate(tour.EndsAt),
		DurationDays:   tour.DurationDays,
		DurationNights: tour.DurationNights,
		Durations:      tour.FormatDurations(texts),

		Services: nonNil(slice.Map(tour.Services.All(), func(service catalog.Service) int64 {
			return service.ID
		})),
		ServicesList: tour.ServicesList(texts),

		MinPrice:        tour.MinPrice,
		IsPerPerson:     tour.IsPerPerson(),
		Priority:        tour.Priority,
		Special:         tour.Special(),
		Slug:            tour.Slug(),
		IsBestTour:      tour.IsBestTour,
		IsBestPrice:     tour.IsBestPrice,
		IsEditorsChoice: tour.IsEditorsChoice,
	}

	if tour.TripType != nil {
		view.TripType = &tour.TripType.ID
	}
	if hotel := tour.Hotel(); hotel != nil {
		hotelView := newHotelView(*hotel)
		view.Hotel = &hotelView
	}

	return view
}

// NewSimilarTourView projects a tour prefetched by [Repository.Similar].
func NewSimilarTourView(tour *catalog.Tour, texts *catalog.Texts) SimilarTourView {
	view := SimilarTourView{
		ID:              tour.ID,
		Title:           tour.Title,
		City:            newCityView(tour.City),
		Country:         tour.Country(),
		CoverID:         tour.CoverID,
		BeginsAt:        formatDate(tour.BeginsAt),
		EndsAt:          formatDate(tour.EndsAt),
		DurationDays:    tour.DurationDays,
		DurationNights:  tour.DurationNights,
		MinPrice:        tour.MinPrice,
		IsPerPerson:     tour.IsPerPerson(),
		Services:        tour.InclusionSummary(texts),
		IsBestPrice:     tour.IsBestPrice,
		IsBestTour:      tour.IsBestTour,
		IsEditorsChoice: tour.IsEditorsChoice,
	}

	if hotel := tour.Hotel(); hotel != nil {
		view.Hotel = SimilarHotelView{Name: &hotel.Name, Category: &hotel.Category}
	}
	if tour.TripType != nil {
		view.TripType = &tour.TripType.Name
	}

	return view
}

func newCityView(city *catalog.City) *CityView {
	if city == nil {
		return nil
	}
	return &CityView{ID: city.ID, Name: city.Name}
}

func newHotelView(hotel catalog.Hotel) HotelView {
	return HotelView{ID: hotel.ID, Name: hotel.Name, Category: hotel.Category}
}

func formatDate(date *time.Time) *string {
	if date == nil {
		return nil
	}
	formatted := date.Format(viewDateLayout)
	return &formatted
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
