// Copyright (c) 2026 Travelist. All rights reserved.
// Author: platform@travelist.ru

package catalog_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/travelist/tourcat/internal/catalog"
	"github.com/travelist/tourcat/pkg/pointer"
)

func exportFixture() []*catalog.Tour {
	return []*catalog.Tour{
		{
			ID:             5,
			Title:          pointer.To("Rixos Premium"),
			TripType:       &catalog.TripType{Entry: catalog.Entry{ID: 1, Name: "Пляжный"}},
			City:           &catalog.City{ID: 2, Name: "Анталья", Country: catalog.Country{ID: 1, Name: "Турция"}},
			MinPrice:       pointer.To("45000.00"),
			DurationDays:   pointer.To(8),
			DurationNights: 7,
			BeginsAt:       pointer.To(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)),
			Hotels:         catalog.Prefetch([]catalog.Hotel{{ID: 1, Name: "Rixos", Category: "5*"}}),
		},
		{
			ID:             9,
			DurationNights: 1,
		},
	}
}

/*
TestWriteCSV verifies the header and per-tour rows of the CSV export.
*/
func TestWriteCSV(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, catalog.WriteCSV(&buffer, exportFixture(), catalog.English))

	records, err := csv.NewReader(&buffer).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, catalog.English.ExportHeader, records[0])
	assert.Equal(t, []string{
		"1", "5", "/tours/5/", "Пляжный", "Турция", "Анталья", "Rixos Premium",
		"5*", "45000.00", "8 days / 7 nights", "2026-06-01", "",
	}, records[1])
	assert.Equal(t, []string{
		"2", "9", "/tours/9/", "", "", "", "", "", "", "0 days / 1 night", "", "",
	}, records[2])
}

func TestWriteCSV_EmptySelection(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, catalog.WriteCSV(&buffer, nil, catalog.Russian))

	records, err := csv.NewReader(&buffer).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{catalog.Russian.ExportHeader}, records)
}

/*
TestWriteXLSX verifies that the spreadsheet export carries the CSV columns.
*/
func TestWriteXLSX(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, catalog.WriteXLSX(&buffer, exportFixture(), catalog.Russian))

	file, err := excelize.OpenReader(&buffer)
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows("Tours")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, catalog.Russian.ExportHeader, rows[0])
	assert.Equal(t, "/tours/5/", rows[1][2])
	assert.Equal(t, "8 дней / 7 ночей", rows[1][9])
	assert.Equal(t, "9", rows[2][1])
}
