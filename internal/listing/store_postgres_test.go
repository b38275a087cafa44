// Copyright (c) 2026 Travelist. All rights reserved.
// Author: platform@travelist.ru

package listing_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelist/tourcat/internal/catalog"
	"github.com/travelist/tourcat/internal/listing"
	"github.com/travelist/tourcat/internal/platform/apperr"
	"github.com/travelist/tourcat/internal/platform/migration"
	"github.com/travelist/tourcat/internal/platform/postgres"
)

/*
The tests in this file run against a disposable PostgreSQL database named by
TEST_DATABASE_URL. The catalogue tables are truncated before every test.
*/

func integrationPool(t *testing.T) (*pgxpool.Pool, *postgres.Tracer) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	require.NoError(t, migration.RunUp(dsn, "../../data/migrations", logger))

	tracer := postgres.NewTracer(nil)
	pool, err := postgres.NewPool(context.Background(), dsn, logger, tracer)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(context.Background(), `
		TRUNCATE catalog.accommodation, catalog.hotel, catalog.tourtag, catalog.tourphoto,
			catalog.tourservice, catalog.tour, catalog.boardtype, catalog.roomtype,
			catalog.service, catalog.provider, catalog.triptype, geo.city, geo.country
		RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return pool, tracer
}

type seededTour struct {
	tourType  catalog.TourType
	tripType  int64
	published bool
	priority  int
	minPrice  *int
}

// seed inserts geography, two trip types (1 active, 2 inactive) and the given
// tours. Every tour gets a hotel with an accommodation, a service and a photo.
func seed(t *testing.T, pool *pgxpool.Pool, tours []seededTour) {
	t.Helper()
	ctx := context.Background()

	statements := []string{
		`INSERT INTO geo.country (id, name) VALUES (1, 'Турция')`,
		`INSERT INTO geo.city (id, name, countryid) VALUES (1, 'Анталья', 1)`,
		`INSERT INTO catalog.triptype (id, name, isactive) VALUES (1, 'Пляжный отдых', TRUE), (2, 'Архив', FALSE)`,
		`INSERT INTO catalog.service (id, name) VALUES (1, 'Экскурсия')`,
		`INSERT INTO catalog.roomtype (id, name) VALUES (1, 'Standard')`,
		`INSERT INTO catalog.boardtype (id, name) VALUES (1, 'All inclusive')`,
	}
	for _, statement := range statements {
		_, err := pool.Exec(ctx, statement)
		require.NoError(t, err)
	}

	for i, tour := range tours {
		id := int64(i + 1)
		_, err := pool.Exec(ctx, `
			INSERT INTO catalog.tour (id, tourtype, triptypeid, title, cityid, published, priority, minprice, durationnights)
			VALUES ($1, $2, $3, $4, 1, $5, $6, $7, 7)`,
			id, int16(tour.tourType), tour.tripType, "Тур", tour.published, tour.priority, tour.minPrice,
		)
		require.NoError(t, err)

		_, err = pool.Exec(ctx, `
			WITH hotel AS (
				INSERT INTO catalog.hotel (tourid, name, category) VALUES ($1, 'Rixos', '5*') RETURNING id
			)
			INSERT INTO catalog.accommodation (hotelid, roomtypeid, foodid) SELECT id, 1, 1 FROM hotel`, id)
		require.NoError(t, err)

		_, err = pool.Exec(ctx, `INSERT INTO catalog.tourservice (tourid, serviceid) VALUES ($1, 1)`, id)
		require.NoError(t, err)

		_, err = pool.Exec(ctx, `INSERT INTO catalog.tourphoto (tourid, imageid) VALUES ($1, $2)`, id, 1000+id)
		require.NoError(t, err)
	}
}

func publicTours(n int) []seededTour {
	tours := make([]seededTour, n)
	for i := range tours {
		tours[i] = seededTour{tourType: catalog.TourTypeRecreation, tripType: 1, published: true}
	}
	return tours
}

func ids(tours []*catalog.Tour) []int64 {
	result := make([]int64, len(tours))
	for i, tour := range tours {
		result[i] = tour.ID
	}
	return result
}

/*
TestPostgresRepository_List_ConstantRoundTrips checks that the listing costs
the same number of round trips for 1 and 50 tours.
*/
func TestPostgresRepository_List_ConstantRoundTrips(t *testing.T) {
	pool, tracer := integrationPool(t)
	seed(t, pool, publicTours(50))
	repository := listing.NewPostgresRepository(pool)
	ctx := context.Background()

	count := func(params listing.ListParams) (int, int64) {
		before := tracer.RoundTrips()
		tours, err := repository.List(ctx, params)
		require.NoError(t, err)

		for _, tour := range tours {
			require.True(t, tour.Hotels.Loaded())
			require.NotNil(t, tour.Hotel())
			require.NotNil(t, tour.Hotel().Accommodation())
			require.Equal(t, 1, tour.Services.Len())
			require.Equal(t, 1, tour.Photos.Len())
			_ = tour.Info(catalog.Russian, catalog.HTMLBreaks)
		}
		return len(tours), tracer.RoundTrips() - before
	}

	oneRows, oneTrips := count(listing.ListParams{Limit: 1})
	allRows, allTrips := count(listing.ListParams{})

	assert.Equal(t, 1, oneRows)
	assert.Equal(t, 50, allRows)
	assert.Equal(t, int64(2), oneTrips)
	assert.Equal(t, oneTrips, allTrips)
}

func TestPostgresRepository_List_Filters(t *testing.T) {
	pool, _ := integrationPool(t)
	price := func(v int) *int { return &v }
	seed(t, pool, []seededTour{
		{catalog.TourTypeRecreation, 1, true, 0, price(500)},
		{catalog.TourTypeRecreation, 1, true, 5, price(1500)},
		{catalog.TourTypeRecreation, 1, false, 9, price(100)},
		{catalog.TourTypeRecreation, 2, true, 9, price(100)},
		{catalog.TourTypeEvent, 1, true, 5, nil},
	})
	repository := listing.NewPostgresRepository(pool)
	ctx := context.Background()

	t.Run("public_and_ordered", func(t *testing.T) {
		tours, err := repository.List(ctx, listing.ListParams{})
		require.NoError(t, err)
		assert.Equal(t, []int64{5, 2, 1}, ids(tours))
	})

	t.Run("ids", func(t *testing.T) {
		tours, err := repository.List(ctx, listing.ListParams{TourIDs: []int64{1, 3, 4}})
		require.NoError(t, err)
		assert.Equal(t, []int64{1}, ids(tours))
	})

	t.Run("max_price", func(t *testing.T) {
		tours, err := repository.List(ctx, listing.ListParams{MaxPrice: 1000})
		require.NoError(t, err)
		assert.Equal(t, []int64{1}, ids(tours))
	})

	t.Run("shuffle_with_limit", func(t *testing.T) {
		tours, err := repository.List(ctx, listing.ListParams{Shuffle: true, Limit: 2})
		require.NoError(t, err)
		assert.Len(t, tours, 2)
		assert.Subset(t, []int64{1, 2, 5}, ids(tours))
	})

	t.Run("min_price_rendering", func(t *testing.T) {
		tours, err := repository.List(ctx, listing.ListParams{TourIDs: []int64{1}})
		require.NoError(t, err)
		require.Len(t, tours, 1)
		require.NotNil(t, tours[0].MinPrice)
		assert.Equal(t, "500.00", *tours[0].MinPrice)
	})
}

func TestPostgresRepository_Similar(t *testing.T) {
	pool, tracer := integrationPool(t)
	tours := publicTours(8)
	tours = append(tours,
		seededTour{catalog.TourTypeEvent, 1, true, 0, nil},
		seededTour{catalog.TourTypeEvent, 1, true, 0, nil},
	)
	seed(t, pool, tours)
	repository := listing.NewPostgresRepository(pool)
	ctx := context.Background()

	reference, err := repository.FindReference(ctx, 1)
	require.NoError(t, err)

	before := tracer.RoundTrips()
	similar, err := repository.Similar(ctx, reference, listing.SimilarLimit)
	require.NoError(t, err)

	assert.Equal(t, int64(2), tracer.RoundTrips()-before)
	assert.Len(t, similar, 4)
	for _, tour := range similar {
		assert.NotEqual(t, int64(1), tour.ID)
		assert.Equal(t, catalog.TourTypeRecreation, tour.TourType)
		assert.NotNil(t, tour.Hotel())
	}

	event, err := repository.FindReference(ctx, 9)
	require.NoError(t, err)
	similar, err = repository.Similar(ctx, event, listing.SimilarLimit)
	require.NoError(t, err)
	assert.Equal(t, []int64{10}, ids(similar))
}

func TestPostgresRepository_FindReference_NotFound(t *testing.T) {
	pool, _ := integrationPool(t)
	repository := listing.NewPostgresRepository(pool)

	_, err := repository.FindReference(context.Background(), 999)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "NOT_FOUND", appError.Code)
}

func TestPostgresRepository_Export(t *testing.T) {
	pool, _ := integrationPool(t)
	tours := publicTours(3)
	tours[1].published = false
	seed(t, pool, tours)
	repository := listing.NewPostgresRepository(pool)
	ctx := context.Background()

	all, err := repository.Export(ctx, listing.ExportFilter{})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids(all))

	published, err := repository.Export(ctx, listing.ExportFilter{PublishedOnly: true})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, ids(published))

	selected, err := repository.Export(ctx, listing.ExportFilter{IDs: []int64{2}})
	require.NoError(t, err)
	require.Len(t, selected, 1)
	assert.Equal(t, "5*", selected[0].Hotel().Category)
}
