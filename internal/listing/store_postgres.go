// Copyright (c) 2026 Travelist. All rights reserved.
// Author: platform@travelist.ru

package listing

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/travelist/tourcat/internal/catalog"
	"github.com/travelist/tourcat/internal/platform/dberr"
)

// # SQL

// tourSelect joins every to-one association so a tour row is complete after
// a single scan. Trip type and provider are optional, hence the COALESCE.
const tourSelect = `
	SELECT
		t.id, t.tourtype, t.pricetype, t.title, t.text, t.description, t.comment,
		t.tickets, t.priority, t.minprice::text,
		t.isbesttour, t.isbestprice, t.iseditorschoice, t.published,
		t.beginsat, t.endsat, t.durationdays, t.durationnights,
		t.isflightincluded, t.airline, t.airportdeparture, t.airportarrival, t.departureat, t.arrivalat,
		t.transitflight, t.transitairportarrival, t.transitarrivalat, t.transitairportdeparture, t.transitdepartureat,
		t.istransferincluded, t.transferdescription, t.isinsuranceincluded, t.insurancedescription,
		t.coverid, t.datetimecover, t.userupdatedid,
		ci.id, ci.name, co.id, co.name,
		tt.id, COALESCE(tt.name, ''), COALESCE(tt.nameen, ''), COALESCE(tt.description, ''),
		COALESCE(tt.showonmainpage, FALSE), COALESCE(tt.isactive, FALSE), COALESCE(tt.ordering, 0),
		COALESCE(tt.highlight, FALSE), COALESCE(tt.ishot, FALSE), tt.hottourlink,
		pr.id, COALESCE(pr.name, ''), COALESCE(pr.nameen, ''), COALESCE(pr.description, '')
	FROM catalog.tour t
	JOIN geo.city ci ON ci.id = t.cityid
	JOIN geo.country co ON co.id = ci.countryid
	LEFT JOIN catalog.triptype tt ON tt.id = t.triptypeid
	LEFT JOIN catalog.provider pr ON pr.id = t.providerid`

// publicPredicate gates everything shown on the site.
const publicPredicate = `t.published AND tt.isactive`

const (
	sqlPrefetchHotels = `
		SELECT h.id, h.tourid, h.name, h.category
		FROM catalog.hotel h
		WHERE h.tourid = ANY($1)
		ORDER BY h.id`

	sqlPrefetchAccommodations = `
		SELECT a.id, a.hotelid,
			rt.id, COALESCE(rt.name, ''), COALESCE(rt.nameen, ''), COALESCE(rt.description, ''),
			bt.id, COALESCE(bt.name, ''), COALESCE(bt.nameen, ''), COALESCE(bt.description, '')
		FROM catalog.accommodation a
		JOIN catalog.hotel h ON h.id = a.hotelid
		LEFT JOIN catalog.roomtype rt ON rt.id = a.roomtypeid
		LEFT JOIN catalog.boardtype bt ON bt.id = a.foodid
		WHERE h.tourid = ANY($1)
		ORDER BY a.id`

	sqlPrefetchServices = `
		SELECT ts.tourid, s.id, s.name, s.nameen, s.description
		FROM catalog.tourservice ts
		JOIN catalog.service s ON s.id = ts.serviceid
		WHERE ts.tourid = ANY($1)
		ORDER BY ts.id`

	sqlPrefetchPhotos = `
		SELECT p.tourid, p.imageid
		FROM catalog.tourphoto p
		WHERE p.tourid = ANY($1)
		ORDER BY p.id`
)

// prefetchSet selects the to-many associations loaded by [PostgresRepository.prefetch].
type prefetchSet uint8

const (
	prefetchHotels prefetchSet = 1 << iota
	prefetchAccommodations
	prefetchServices
	prefetchPhotos

	prefetchListing = prefetchHotels | prefetchAccommodations | prefetchServices | prefetchPhotos
)

func (set prefetchSet) has(flag prefetchSet) bool { return set&flag != 0 }

// # Repository

// PostgresRepository implements [Repository] on top of pgx.
//
// Every method costs one query for the tours plus at most one [pgx.Batch]
// for their associations, whatever the number of rows.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a repository using the shared pool.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List implements [Repository].
func (repository *PostgresRepository) List(context context.Context, params ListParams) ([]*catalog.Tour, error) {
	var sql strings.Builder
	sql.WriteString(tourSelect)
	sql.WriteString("\n\tWHERE " + publicPredicate)

	args := []any{}
	if len(params.TourIDs) > 0 {
		args = append(args, params.TourIDs)
		fmt.Fprintf(&sql, " AND t.id = ANY($%d)", len(args))
	}
	if params.MaxPrice != 0 {
		args = append(args, params.MaxPrice)
		fmt.Fprintf(&sql, " AND t.minprice <= $%d", len(args))
	}

	if params.Shuffle {
		sql.WriteString("\n\tORDER BY random()")
	} else {
		sql.WriteString("\n\tORDER BY t.priority DESC, t.id DESC")
	}

	if params.Limit > 0 {
		args = append(args, params.Limit)
		fmt.Fprintf(&sql, " LIMIT $%d", len(args))
	}

	tours, err := repository.queryTours(context, sql.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "Tour", "list_tours")
	}

	if err := repository.prefetch(context, tours, prefetchListing); err != nil {
		return nil, dberr.Wrap(err, "Tour", "prefetch_tours")
	}

	return tours, nil
}

// FindReference implements [Repository].
func (repository *PostgresRepository) FindReference(context context.Context, id int64) (*catalog.Tour, error) {
	row := repository.db.QueryRow(context, tourSelect+"\n\tWHERE t.id = $1", id)

	tour, err := scanTour(row)
	if err != nil {
		return nil, dberr.Wrap(err, "Tour", "find_tour")
	}
	return tour, nil
}

// Similar implements [Repository].
func (repository *PostgresRepository) Similar(context context.Context, reference *catalog.Tour, limit int) ([]*catalog.Tour, error) {
	sql := tourSelect + "\n\tWHERE " + publicPredicate + " AND t.tourtype = $1 AND t.id <> $2"
	args := []any{int16(reference.TourType), reference.ID}

	// Recreation tours only resemble tours of the same trip type. A reference
	// without trip type binds NULL and therefore matches nothing.
	if reference.TourType == catalog.TourTypeRecreation {
		var tripTypeID *int64
		if reference.TripType != nil {
			tripTypeID = &reference.TripType.ID
		}
		args = append(args, tripTypeID)
		sql += " AND t.triptypeid = $3"
	}

	args = append(args, limit)
	sql += fmt.Sprintf("\n\tORDER BY random() LIMIT $%d", len(args))

	tours, err := repository.queryTours(context, sql, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "Tour", "similar_tours")
	}

	if err := repository.prefetch(context, tours, prefetchHotels); err != nil {
		return nil, dberr.Wrap(err, "Tour", "prefetch_similar_tours")
	}

	return tours, nil
}

// Export implements [Repository].
func (repository *PostgresRepository) Export(context context.Context, filter ExportFilter) ([]*catalog.Tour, error) {
	var sql strings.Builder
	sql.WriteString(tourSelect)
	sql.WriteString("\n\tWHERE TRUE")

	args := []any{}
	if len(filter.IDs) > 0 {
		args = append(args, filter.IDs)
		fmt.Fprintf(&sql, " AND t.id = ANY($%d)", len(args))
	}
	if filter.PublishedOnly {
		sql.WriteString(" AND t.published")
	}
	sql.WriteString("\n\tORDER BY t.id")

	tours, err := repository.queryTours(context, sql.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "Tour", "export_tours")
	}

	if err := repository.prefetch(context, tours, prefetchHotels); err != nil {
		return nil, dberr.Wrap(err, "Tour", "prefetch_export_tours")
	}

	return tours, nil
}

// # Helpers

func (repository *PostgresRepository) queryTours(context context.Context, sql string, args ...any) ([]*catalog.Tour, error) {
	rows, err := repository.db.Query(context, sql, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*catalog.Tour, error) {
		return scanTour(row)
	})
}

// prefetch loads the selected associations of all tours in one batch and
// attaches them, so that every tour reports them as loaded even when empty.
func (repository *PostgresRepository) prefetch(context context.Context, tours []*catalog.Tour, set prefetchSet) error {
	if len(tours) == 0 || set == 0 {
		return nil
	}

	ids := make([]int64, len(tours))
	for i, tour := range tours {
		ids[i] = tour.ID
	}

	hotels := make(map[int64][]catalog.Hotel)
	accommodations := make(map[int64][]catalog.Accommodation)
	services := make(map[int64][]catalog.Service)
	photos := make(map[int64][]int64)

	batch := &pgx.Batch{}

	if set.has(prefetchHotels) {
		batch.Queue(sqlPrefetchHotels, ids).Query(func(rows pgx.Rows) error {
			for rows.Next() {
				var hotel catalog.Hotel
				if err := rows.Scan(&hotel.ID, &hotel.TourID, &hotel.Name, &hotel.Category); err != nil {
					return err
				}
				hotels[hotel.TourID] = append(hotels[hotel.TourID], hotel)
			}
			return rows.Err()
		})
	}

	if set.has(prefetchAccommodations) {
		batch.Queue(sqlPrefetchAccommodations, ids).Query(func(rows pgx.Rows) error {
			for rows.Next() {
				accommodation, err := scanAccommodation(rows)
				if err != nil {
					return err
				}
				accommodations[accommodation.HotelID] = append(accommodations[accommodation.HotelID], accommodation)
			}
			return rows.Err()
		})
	}

	if set.has(prefetchServices) {
		batch.Queue(sqlPrefetchServices, ids).Query(func(rows pgx.Rows) error {
			for rows.Next() {
				var tourID int64
				var service catalog.Service
				if err := rows.Scan(&tourID, &service.ID, &service.Name, &service.NameEn, &service.Description); err != nil {
					return err
				}
				services[tourID] = append(services[tourID], service)
			}
			return rows.Err()
		})
	}

	if set.has(prefetchPhotos) {
		batch.Queue(sqlPrefetchPhotos, ids).Query(func(rows pgx.Rows) error {
			for rows.Next() {
				var tourID, imageID int64
				if err := rows.Scan(&tourID, &imageID); err != nil {
					return err
				}
				photos[tourID] = append(photos[tourID], imageID)
			}
			return rows.Err()
		})
	}

	if err := repository.db.SendBatch(context, batch).Close(); err != nil {
		return err
	}

	for _, tour := range tours {
		if set.has(prefetchHotels) {
			tourHotels := hotels[tour.ID]
			if set.has(prefetchAccommodations) {
				for i := range tourHotels {
					tourHotels[i].Accommodations = catalog.Prefetch(accommodations[tourHotels[i].ID])
				}
			}
			tour.Hotels = catalog.Prefetch(tourHotels)
		}
		if set.has(prefetchServices) {
			tour.Services = catalog.Prefetch(services[tour.ID])
		}
		if set.has(prefetchPhotos) {
			tour.Photos = catalog.Prefetch(photos[tour.ID])
		}
	}

	return nil
}

func scanTour(row pgx.Row) (*catalog.Tour, error) {
	tour := &catalog.Tour{City: &catalog.City{}}

	var tripTypeID, providerID *int64
	var tripType catalog.TripType
	var provider catalog.Provider

	err := row.Scan(
		&tour.ID, &tour.TourType, &tour.PriceType, &tour.Title, &tour.Text, &tour.Description, &tour.Comment,
		&tour.Tickets, &tour.Priority, &tour.MinPrice,
		&tour.IsBestTour, &tour.IsBestPrice, &tour.IsEditorsChoice, &tour.Published,
		&tour.BeginsAt, &tour.EndsAt, &tour.DurationDays, &tour.DurationNights,
		&tour.Flight.IsIncluded, &tour.Flight.Airline, &tour.Flight.AirportDeparture, &tour.Flight.AirportArrival,
		&tour.Flight.DepartureAt, &tour.Flight.ArrivalAt,
		&tour.Flight.Transit, &tour.Flight.TransitAirportArrival, &tour.Flight.TransitArrivalAt,
		&tour.Flight.TransitAirportDeparture, &tour.Flight.TransitDepartureAt,
		&tour.IsTransferIncluded, &tour.TransferDescription, &tour.IsInsuranceIncluded, &tour.InsuranceDescription,
		&tour.CoverID, &tour.DatetimeCover, &tour.UserUpdatedID,
		&tour.City.ID, &tour.City.Name, &tour.City.Country.ID, &tour.City.Country.Name,
		&tripTypeID, &tripType.Name, &tripType.NameEn, &tripType.Description,
		&tripType.ShowOnMainPage, &tripType.IsActive, &tripType.Ordering,
		&tripType.Highlight, &tripType.IsHot, &tripType.HotTourLink,
		&providerID, &provider.Name, &provider.NameEn, &provider.Description,
	)
	if err != nil {
		return nil, err
	}

	if tripTypeID != nil {
		tripType.ID = *tripTypeID
		tour.TripType = &tripType
	}
	if providerID != nil {
		provider.ID = *providerID
		tour.Provider = &provider
	}

	return tour, nil
}

func scanAccommodation(row pgx.Row) (catalog.Accommodation, error) {
	var accommodation catalog.Accommodation
	var roomTypeID, foodID *int64
	var roomType catalog.RoomType
	var food catalog.BoardType

	err := row.Scan(
		&accommodation.ID, &accommodation.HotelID,
		&roomTypeID, &roomType.Name, &roomType.NameEn, &roomType.Description,
		&foodID, &food.Name, &food.NameEn, &food.Description,
	)
	if err != nil {
		return accommodation, err
	}

	if roomTypeID != nil {
		roomType.ID = *roomTypeID
		accommodation.RoomType = &roomType
	}
	if foodID != nil {
		food.ID = *foodID
		accommodation.Food = &food
	}

	return accommodation, nil
}
