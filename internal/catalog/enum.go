// Copyright (c) 2026 Travelist. All rights reserved.
// Author: platform@travelist.ru

package catalog

// # Domain Enums

// TourType is the structural classification of a tour. Its numeric value is
// the stored and wire representation.
type TourType int16

const (
	// TourTypeRecreation is a regular package holiday built around one hotel.
	TourTypeRecreation TourType = 1

	// TourTypeEvent is a trip to a concert, match or festival.
	TourTypeEvent TourType = 2

	// TourTypeGold is a premium curated tour.
	TourTypeGold TourType = 3

	// TourTypeVIP is an individual tour with personal service.
	TourTypeVIP TourType = 4
)

var tourTypeLabels = map[TourType]string{
	TourTypeRecreation: "Тур",
	TourTypeEvent:      "Событие",
	TourTypeGold:       "Золотой тур",
	TourTypeVIP:        "VIP тур",
}

// IsValid reports whether t is a recognised [TourType] value.
func (t TourType) IsValid() bool {
	_, ok := tourTypeLabels[t]
	return ok
}

// Label returns the admin vocabulary name of the tour type.
func (t TourType) Label() string {
	return tourTypeLabels[t]
}

// PriceType tells whether the minimum price is quoted per traveller or per room.
type PriceType int16

const (
	PriceTypePerPerson PriceType = 1
	PriceTypePerRoom   PriceType = 2
)

var priceTypeLabels = map[PriceType]string{
	PriceTypePerPerson: "руб./чел.",
	PriceTypePerRoom:   "руб.",
}

// IsValid reports whether p is a recognised [PriceType] value.
func (p PriceType) IsValid() bool {
	_, ok := priceTypeLabels[p]
	return ok
}

// Label returns the price unit suffix shown next to the amount.
func (p PriceType) Label() string {
	return priceTypeLabels[p]
}
