// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

/*
Package api provides the HTTP REST API for Restotrack.

The API is a thin presentation layer over tracker.Controller. Every list
request applies the caller's tab and filter selections to the controller the
same way the browser controls would, then returns the derived view.

Key Components:

  - Router: chi route table and middleware stack
  - Handler: request handlers, one per endpoint
  - ChiMiddleware: go-chi/cors and go-chi/httprate factories
  - Response formatting: models.APIResponse envelope encoded with goccy/go-json

Endpoints:

	GET    /api/v1/health
	GET    /api/v1/restaurants?tab=&search=&cuisine=&price=&distance=&sort=
	GET    /api/v1/restaurants/{id}
	POST   /api/v1/restaurants/{id}/visit
	POST   /api/v1/restaurants/{id}/to-visit
	PUT    /api/v1/restaurants/{id}/rating     {"rating": 4}
	PUT    /api/v1/restaurants/{id}/comment    {"comment": "..."}
	PUT    /api/v1/restaurants/{id}/details    {"rating":4,"comment":"...","visited":true,"toVisit":false}
	GET    /api/v1/stats
	GET    /api/v1/cuisines
	POST   /api/v1/filters/reset
	DELETE /api/v1/annotations
	GET    /metrics

Error responses use the envelope with status "error" and one of the codes
VALIDATION_ERROR, INVALID_ID, NOT_FOUND or PERSISTENCE_ERROR.

Usage Example:

	controller.SetCatalog(cat, "file", loadErr)
	handler := api.NewHandler(controller)
	router := api.NewRouter(handler, cfg.Security)
	srv := &http.Server{Addr: cfg.Addr(), Handler: router.SetupChi()}
*/
package api
