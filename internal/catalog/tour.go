// Copyright (c) 2026 Travelist. All rights reserved.
// Author: platform@travelist.ru

package catalog

import (
	"strconv"
	"time"
)

// # Core Entities

// Tour is the central aggregate of the catalogue.
type Tour struct {
	ID        int64
	TourType  TourType
	TripType  *TripType
	PriceType PriceType

	Title       *string
	Text        string
	Description string
	Comment     string

	City     *City
	Provider *Provider

	// Tickets is the number of event tickets bundled into an event tour.
	Tickets  int
	Priority int

	// MinPrice is the numeric(8,2) amount as rendered by the database.
	MinPrice *string

	IsBestTour      bool
	IsBestPrice     bool
	IsEditorsChoice bool
	Published       bool

	BeginsAt       *time.Time
	EndsAt         *time.Time
	DurationDays   *int
	DurationNights int

	Flight Flight

	IsTransferIncluded   bool
	TransferDescription  string
	IsInsuranceIncluded  bool
	InsuranceDescription string

	CoverID       *int64
	DatetimeCover *time.Time
	UserUpdatedID *int64

	// # Associations

	Services Prefetched[Service]
	Photos   Prefetched[int64]

	// Hotels is ordered by hotel id. Recreation tours are expected to have
	// exactly one hotel; nothing enforces it.
	Hotels Prefetched[Hotel]
}

// Flight groups the air travel part of a tour, including an optional transit leg.
type Flight struct {
	IsIncluded       bool       `json:"is_flight_included"`
	Airline          string     `json:"airline"`
	AirportDeparture string     `json:"airport_departure"`
	AirportArrival   string     `json:"airport_arrival"`
	DepartureAt      *time.Time `json:"departure_at"`
	ArrivalAt        *time.Time `json:"arrival_at"`

	Transit                 bool       `json:"transit_flight"`
	TransitAirportArrival   string     `json:"transit_airport_arrival"`
	TransitArrivalAt        *time.Time `json:"transit_arrival_at"`
	TransitAirportDeparture string     `json:"transit_airport_departure"`
	TransitDepartureAt      *time.Time `json:"transit_departure_at"`
}

// Hotel is a hotel booked as part of a tour.
type Hotel struct {
	ID       int64
	TourID   int64
	Name     string
	Category string

	// Accommodations is ordered by accommodation id.
	Accommodations Prefetched[Accommodation]
}

// Accommodation is the room and meal plan booked in a [Hotel].
type Accommodation struct {
	ID       int64
	HotelID  int64
	RoomType *RoomType
	Food     *BoardType
}

// Accommodation returns the first accommodation of the hotel, or nil.
func (h *Hotel) Accommodation() *Accommodation {
	return h.Accommodations.First()
}

// # Derived Fields

// IsPerPerson reports whether MinPrice is quoted per traveller.
func (t *Tour) IsPerPerson() bool {
	return t.PriceType == PriceTypePerPerson
}

// Special reports whether the tour is an event, gold or VIP tour.
func (t *Tour) Special() bool {
	return t.TourType > TourTypeRecreation
}

// Country returns the country name read through the tour's city.
func (t *Tour) Country() string {
	if t.City == nil {
		return ""
	}
	return t.City.Country.Name
}

// Slug returns the canonical site path of the tour.
func (t *Tour) Slug() string {
	return "/tours/" + strconv.FormatInt(t.ID, 10) + "/"
}

// Hotel returns the first prefetched hotel, or nil when the tour has none.
func (t *Tour) Hotel() *Hotel {
	return t.Hotels.First()
}

// TripTypeName returns the trip type name, or an empty string.
func (t *Tour) TripTypeName() string {
	if t.TripType == nil {
		return ""
	}
	return t.TripType.Name
}
