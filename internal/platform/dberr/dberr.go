// Copyright (c) 2026 Travelist. All rights reserved.
// Author: platform@travelist.ru

// Package dberr maps low-level pgx errors to [apperr.AppError] values.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/travelist/tourcat/internal/platform/apperr"
)

// Wrap classifies a database error raised while performing action.
//
// A missing row becomes a 404 for resource; anything else is an internal
// error whose cause keeps the action name for the logs.
func Wrap(err error, resource, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}
