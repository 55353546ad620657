// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared by the catalog loader (record
// validation) and the HTTP handlers (request bodies and query criteria).
// Error field names are taken from the json tags, so a failure on
// AnnotationPatch.Rating is reported as "rating".
//
// # Quick Start
//
//	type ratingRequest struct {
//	    Rating *int `json:"rating" validate:"required,min=0,max=5"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// # Error Format
//
// ToAPIError produces the VALIDATION_ERROR payload used by the API:
//
//	{
//	    "code": "VALIDATION_ERROR",
//	    "message": "rating must be at most 5",
//	    "details": {"field": "rating", "tag": "max", "value": 7}
//	}
//
// Multiple failures are joined with "; " and listed under details.fields.
package validation
