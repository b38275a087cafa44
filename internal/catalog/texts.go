// Copyright (c) 2026 Travelist. All rights reserved.
// Author: platform@travelist.ru

package catalog

import (
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// Forms maps CLDR plural categories to word forms. [plural.Other] is the fallback.
type Forms map[plural.Form]string

// Texts is the vocabulary used to render human-readable tour views.
type Texts struct {
	Tag language.Tag

	Day   Forms
	Night Forms

	// Catalog-level service summary.
	Transfer  string
	Insurance string
	Flight    string

	// Similar-tours inclusion summary.
	IncludedHotel        string
	IncludedFlightTicket string
	IncludedTransfer     string
	IncludedInsurance    string
	IncludedEventTicket  string

	// Info blurb lines.
	DatesPrefix    string
	DateFrom       string
	DateTo         string
	DurationPrefix string
	PriceFormat    string
	BoardFormat    string
	IncludedFormat string

	// ExportHeader is the header row of CSV and XLSX exports.
	ExportHeader []string
}

// Russian is the vocabulary of the public site.
var Russian = &Texts{
	Tag:   language.Russian,
	Day:   Forms{plural.One: "день", plural.Few: "дня", plural.Many: "дней", plural.Other: "дня"},
	Night: Forms{plural.One: "ночь", plural.Few: "ночи", plural.Many: "ночей", plural.Other: "ночи"},

	Transfer:  "Трансфер",
	Insurance: "Страховка",
	Flight:    "Авиаперелет",

	IncludedHotel:        "отель",
	IncludedFlightTicket: "авиабилет",
	IncludedTransfer:     "трансфер",
	IncludedInsurance:    "страховка",
	IncludedEventTicket:  "билет на мероприятие",

	DatesPrefix:    "Даты:",
	DateFrom:       "с",
	DateTo:         "по",
	DurationPrefix: "Продолжительность тура",
	PriceFormat:    "Стоимость %s руб.",
	BoardFormat:    "Тип питания %s",
	IncludedFormat: "В тур включены %s",

	ExportHeader: []string{
		"№", "ID", "Ссылка", "Тип отдыха", "Страна", "Город", "Название",
		"Категория отеля", "Стоимость", "Продолжительность", "Дата начала", "Дата окончания",
	},
}

// English is used by partner feeds and in tests.
var English = &Texts{
	Tag:   language.English,
	Day:   Forms{plural.One: "day", plural.Other: "days"},
	Night: Forms{plural.One: "night", plural.Other: "nights"},

	Transfer:  "Transfer",
	Insurance: "Insurance",
	Flight:    "Flight",

	IncludedHotel:        "hotel",
	IncludedFlightTicket: "flight ticket",
	IncludedTransfer:     "transfer",
	IncludedInsurance:    "insurance",
	IncludedEventTicket:  "event ticket",

	DatesPrefix:    "Dates:",
	DateFrom:       "from",
	DateTo:         "to",
	DurationPrefix: "Tour duration",
	PriceFormat:    "Price %s rub.",
	BoardFormat:    "Board type %s",
	IncludedFormat: "Included: %s",

	ExportHeader: []string{
		"#", "ID", "URL", "Trip type", "Country", "City", "Title",
		"Hotel category", "Min price", "Duration", "Begins at", "Ends at",
	},
}

// TextsFor returns the vocabulary for a language code, defaulting to [Russian].
func TextsFor(code string) *Texts {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "en", "en-us", "en-gb":
		return English
	default:
		return Russian
	}
}

// Plural picks the word form for a non-negative integer count.
func (t *Texts) Plural(forms Forms, n int) string {
	if n < 0 {
		n = -n
	}
	// Integer operands: i = n, no visible fraction digits.
	form := plural.Cardinal.MatchPlural(t.Tag, n, 0, 0, 0, 0)
	if word, ok := forms[form]; ok {
		return word
	}
	return forms[plural.Other]
}
