// Copyright (c) 2026 Travelist. All rights reserved.
// Author: platform@travelist.ru

package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/travelist/tourcat/pkg/pointer"
)

// LineBreaks selects the separator used by [Tour.Info].
type LineBreaks int

const (
	// PlainBreaks joins lines with "\n" for plain-text contexts.
	PlainBreaks LineBreaks = iota

	// HTMLBreaks joins lines with "<br />" for HTML contexts.
	HTMLBreaks
)

func (b LineBreaks) separator() string {
	if b == HTMLBreaks {
		return "<br />"
	}
	return "\n"
}

// infoDateLayout renders dates as DD.MM.YYYY.
const infoDateLayout = "02.01.2006"

// FormatDurations renders the tour length as "D days / N nights" with the
// plural forms of the vocabulary. Missing counts read as zero.
func (t *Tour) FormatDurations(texts *Texts) string {
	days := pointer.Val(t.DurationDays)
	nights := t.DurationNights

	return fmt.Sprintf("%d %s / %d %s",
		days, texts.Plural(texts.Day, days),
		nights, texts.Plural(texts.Night, nights),
	)
}

// ServicesList returns the catalog service names in association order,
// followed by transfer, insurance and flight when included.
func (t *Tour) ServicesList(texts *Texts) []string {
	services := make([]string, 0, t.Services.Len()+3)
	for _, service := range t.Services.All() {
		services = append(services, service.Name)
	}

	if t.IsTransferIncluded {
		services = append(services, texts.Transfer)
	}
	if t.IsInsuranceIncluded {
		services = append(services, texts.Insurance)
	}
	if t.Flight.IsIncluded {
		services = append(services, texts.Flight)
	}

	return services
}

// InclusionSummary lists what the tour price covers for the similar-tours widget.
// It is worded differently from [Tour.ServicesList] and ignores catalog services.
func (t *Tour) InclusionSummary(texts *Texts) []string {
	included := make([]string, 0, 5)

	if t.Hotel() != nil {
		included = append(included, texts.IncludedHotel)
	}
	if t.Flight.IsIncluded {
		included = append(included, texts.IncludedFlightTicket)
	}
	if t.IsTransferIncluded {
		included = append(included, texts.IncludedTransfer)
	}
	if t.IsInsuranceIncluded {
		included = append(included, texts.IncludedInsurance)
	}
	if t.Tickets != 0 {
		included = append(included, texts.IncludedEventTicket)
	}

	return included
}

// Info assembles the multi-line summary used in mailings and listing cards.
//
// The price line is always present; a tour without a price renders an empty
// amount.
func (t *Tour) Info(texts *Texts, breaks LineBreaks) string {
	lines := []string{t.Country() + ", " + pointer.Val(t.Title)}

	if t.Description != "" {
		lines = append(lines, t.Description)
	}

	if t.BeginsAt != nil || t.EndsAt != nil {
		dates := texts.DatesPrefix
		if t.BeginsAt != nil {
			dates += " " + texts.DateFrom + " " + t.BeginsAt.Format(infoDateLayout)
		}
		if t.EndsAt != nil {
			dates += " " + texts.DateTo + " " + t.EndsAt.Format(infoDateLayout)
		}
		lines = append(lines, dates)
	}

	lines = append(lines, texts.DurationPrefix+" "+t.FormatDurations(texts))

	lines = append(lines, fmt.Sprintf(texts.PriceFormat, pointer.Val(t.MinPrice)))

	if hotel := t.Hotel(); hotel != nil {
		if accommodation := hotel.Accommodation(); accommodation != nil && accommodation.Food != nil {
			lines = append(lines, fmt.Sprintf(texts.BoardFormat, accommodation.Food.Name))
		}
	}

	if t.Services.Len() > 0 || t.IsTransferIncluded || t.IsInsuranceIncluded || t.Flight.IsIncluded {
		lines = append(lines, fmt.Sprintf(texts.IncludedFormat, strings.Join(t.ServicesList(texts), ", ")))
	}

	return strings.Join(lines, breaks.separator())
}

// exportRow projects a tour to the export columns, numbered from 1.
func (t *Tour) exportRow(seq int, texts *Texts) []string {
	cityName := ""
	if t.City != nil {
		cityName = t.City.Name
	}

	category := ""
	if hotel := t.Hotel(); hotel != nil {
		category = hotel.Category
	}

	return []string{
		strconv.Itoa(seq),
		strconv.FormatInt(t.ID, 10),
		t.Slug(),
		t.TripTypeName(),
		t.Country(),
		cityName,
		pointer.Val(t.Title),
		category,
		pointer.Val(t.MinPrice),
		t.FormatDurations(texts),
		formatISODate(t.BeginsAt),
		formatISODate(t.EndsAt),
	}
}
