// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

// Package validation checks parsed query parameters with
// go-playground/validator v10.
//
// Request structs name their fields with a query tag; messages use that name:
//
//	type pageParams struct {
//	    Limit  int `query:"limit" validate:"min=1,max=1000"`
//	    Offset int `query:"offset" validate:"min=0"`
//	}
//
//	if verr := validation.ValidateStruct(&p); verr != nil {
//	    // verr.Message() == "limit must be at most 1000"
//	}
//
// The custom locationcode tag accepts 2 to 10 characters drawn from letters,
// digits, '_' and '-'. InvalidLocationCodes applies it to a list and returns
// the offenders so they can be reported back to the caller.
package validation
