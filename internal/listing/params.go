// Copyright (c) 2026 Travelist. All rights reserved.
// Author: platform@travelist.ru

package listing

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/travelist/tourcat/internal/platform/validate"
	"github.com/travelist/tourcat/pkg/convert"
	"github.com/travelist/tourcat/pkg/query"
)

// # Query Parameters

const (
	ParamTourIDs  = "tours_id"
	ParamMaxPrice = "max_price"
	ParamLimit    = "limit"
	ParamShuffle  = "shuffle"
)

// ListParams is the validated form of the listing query string.
//
// Zero values disable the corresponding clause: no id restriction, no price
// cap, no row limit, deterministic order.
type ListParams struct {
	TourIDs  []int64
	MaxPrice int
	Limit    int
	Shuffle  bool
}

// ParseListParams validates the raw listing query.
//
// tours_id is strict: any token that is not an integer, an empty token or a
// present but empty value included, fails the whole request with a
// VALIDATION_ERROR naming the token. max_price and limit are lenient and
// read as 0 when absent or malformed; a negative limit also reads as 0.
func ParseListParams(values url.Values) (ListParams, error) {
	params := ListParams{
		MaxPrice: convert.ToIntD(values.Get(ParamMaxPrice), 0),
		Limit:    max(convert.ToIntD(values.Get(ParamLimit), 0), 0),
		Shuffle:  values.Get(ParamShuffle) == "1",
	}

	validator := validate.New("Invalid query parameters")
	tokens := query.StringSlice(values.Get(ParamTourIDs))
	if values.Has(ParamTourIDs) && len(tokens) == 0 {
		tokens = []string{""}
	}
	for _, token := range tokens {
		id, err := strconv.ParseInt(token, 10, 64)
		if validator.Custom(ParamTourIDs, err != nil, fmt.Sprintf("%q is not an integer id", token)).HasErrors() {
			break
		}
		params.TourIDs = append(params.TourIDs, id)
	}

	if err := validator.Err(); err != nil {
		return ListParams{}, err
	}

	return params, nil
}
