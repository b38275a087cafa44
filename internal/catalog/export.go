// Copyright (c) 2026 Travelist. All rights reserved.
// Author: platform@travelist.ru

package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/travelist/tourcat/pkg/slice"
)

// exportSheet is the worksheet name of XLSX exports.
const exportSheet = "Tours"

// WriteCSV streams the header row and one row per tour to dst.
//
// Tours must come from a selection that already joined city, country and trip
// type and prefetched hotels; rows are written as they are produced.
func WriteCSV(dst io.Writer, tours []*Tour, texts *Texts) error {
	writer := csv.NewWriter(dst)

	if err := writer.Write(texts.ExportHeader); err != nil {
		return fmt.Errorf("catalog: write csv header: %w", err)
	}

	for i, tour := range tours {
		if err := writer.Write(tour.exportRow(i+1, texts)); err != nil {
			return fmt.Errorf("catalog: write csv row %d: %w", tour.ID, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("catalog: flush csv: %w", err)
	}

	return nil
}

// WriteXLSX writes the same columns as [WriteCSV] into a single worksheet.
func WriteXLSX(dst io.Writer, tours []*Tour, texts *Texts) error {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("catalog: rename sheet: %w", err)
	}

	stream, err := file.NewStreamWriter(exportSheet)
	if err != nil {
		return fmt.Errorf("catalog: open xlsx stream: %w", err)
	}

	if err := stream.SetRow("A1", toCells(texts.ExportHeader)); err != nil {
		return fmt.Errorf("catalog: write xlsx header: %w", err)
	}

	for i, tour := range tours {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("catalog: xlsx cell: %w", err)
		}
		if err := stream.SetRow(cell, toCells(tour.exportRow(i+1, texts))); err != nil {
			return fmt.Errorf("catalog: write xlsx row %d: %w", tour.ID, err)
		}
	}

	if err := stream.Flush(); err != nil {
		return fmt.Errorf("catalog: flush xlsx stream: %w", err)
	}

	if err := file.Write(dst); err != nil {
		return fmt.Errorf("catalog: write xlsx: %w", err)
	}

	return nil
}

func toCells(values []string) []any {
	return slice.Map(values, func(v string) any { return v })
}

// formatISODate renders a nullable date as YYYY-MM-DD.
func formatISODate(date *time.Time) string {
	if date == nil {
		return ""
	}
	return date.Format(time.DateOnly)
}
