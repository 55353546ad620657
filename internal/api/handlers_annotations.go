// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

package api

import (
	"context"
	"net/http"

	"github.com/tomtom215/restotrack/internal/models"
	"github.com/tomtom215/restotrack/internal/tracker"
)

// AnnotationResult is returned by every annotation mutation.
type AnnotationResult struct {
	ID int `json:"id"`
	models.Annotation
}

// RecordVisit toggles the visited flag.
func (h *Handler) RecordVisit(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.tracker.RecordVisit)
}

// RecordToVisit toggles the want-to-visit flag. Visited restaurants are
// returned unchanged.
func (h *Handler) RecordToVisit(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.tracker.RecordToVisit)
}

// SetRating sets the 0..5 rating. Zero clears it.
func (h *Handler) SetRating(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	var req RatingRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	a, err := h.tracker.SetRating(r.Context(), id, *req.Rating)
	h.respondAnnotation(w, id, a, err)
}

// SetComment replaces the comment.
func (h *Handler) SetComment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	var req CommentRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	a, err := h.tracker.SetComment(r.Context(), id, *req.Comment)
	h.respondAnnotation(w, id, a, err)
}

// SaveDetails applies a full edit from the details form.
func (h *Handler) SaveDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	var req tracker.Details
	if !decodeJSONBody(w, r, &req) {
		return
	}

	a, err := h.tracker.SaveDetails(r.Context(), id, req)
	h.respondAnnotation(w, id, a, err)
}

// ClearAnnotations removes every annotation.
func (h *Handler) ClearAnnotations(w http.ResponseWriter, r *http.Request) {
	if err := h.tracker.ClearAll(r.Context()); err != nil {
		respondError(w, http.StatusInternalServerError, CodePersistence, "Failed to clear annotations", err)
		return
	}
	respondSuccess(w, h.tracker.Stats(), models.Metadata{})
}

func (h *Handler) mutate(w http.ResponseWriter, r *http.Request, fn func(context.Context, int) (models.Annotation, error)) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	a, err := fn(r.Context(), id)
	h.respondAnnotation(w, id, a, err)
}

func (h *Handler) respondAnnotation(w http.ResponseWriter, id int, a models.Annotation, err error) {
	if err != nil {
		respondError(w, http.StatusInternalServerError, CodePersistence, "Failed to save annotation", err)
		return
	}
	respondSuccess(w, AnnotationResult{ID: id, Annotation: a}, models.Metadata{})
}
