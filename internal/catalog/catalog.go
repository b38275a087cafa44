// Copyright (c) 2026 Travelist. All rights reserved.
// Author: platform@travelist.ru

/*
Package catalog defines the core domain entities of the Travelist tour catalogue.

It describes the shape of a [Tour] and the reference catalogues it points to
(trip types, providers, services, room and board types), together with the
read-only views derived from them.

Core Responsibility:

  - Shape: Tours, hotels, accommodations and lookup rows as loaded from storage.
  - Derivation: Durations, service summaries, info blurbs and export rows.
  - Vocabulary: Locale-dependent labels live in [Texts], never in the entities.

Nothing in this package performs I/O against the database. Associations are
materialised by the storage layer into [Prefetched] containers before any
derived view is computed.
*/
package catalog

// # Reference Catalogues

// Entry is the set of columns shared by every lookup catalogue.
type Entry struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	NameEn      string `json:"name_en"`
	Description string `json:"description"`
}

// String returns the primary (Russian) name of the entry.
func (e Entry) String() string { return e.Name }

// TripType classifies the vacation style of a tour (beach, ski, excursion...).
type TripType struct {
	Entry

	// ShowOnMainPage marks trip types rendered in the landing page menu.
	ShowOnMainPage bool `json:"show_on_main_page"`

	// IsActive gates public visibility of every tour of this type.
	IsActive bool `json:"is_active"`

	// Ordering is the presentation priority; lower values come first.
	Ordering float64 `json:"ordering"`

	Highlight   bool    `json:"highlight"`
	IsHot       bool    `json:"is_hot"`
	HotTourLink *string `json:"hot_tour_link"`
}

// Provider is the operator that sells the tour.
type Provider struct {
	Entry
}

// Service is an extra included in the tour price (excursions, spa, guide...).
type Service struct {
	Entry
}

// RoomType is the accommodation unit of a hotel booking.
type RoomType struct {
	Entry
}

// BoardType is the meal plan of a hotel booking (BB, HB, AI...).
type BoardType struct {
	Entry
}

// # Geography

// Country is read-only geography owned by another service.
type Country struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// City is read-only geography owned by another service.
type City struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Country Country `json:"country"`
}
