// Copyright (c) 2026 Travelist. All rights reserved.
// Author: platform@travelist.ru

package listing

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/travelist/tourcat/internal/catalog"
	"github.com/travelist/tourcat/internal/platform/apperr"
	requestutil "github.com/travelist/tourcat/internal/platform/request"
	"github.com/travelist/tourcat/internal/platform/respond"
)

// Handler serves the public listing endpoints.
type Handler struct {
	service *Service
	texts   *catalog.Texts
}

// NewHandler creates a listing handler rendering labels with texts.
func NewHandler(service *Service, texts *catalog.Texts) *Handler {
	return &Handler{service: service, texts: texts}
}

// RegisterRoutes mounts the listing endpoints. Paths keep the trailing slash
// the front-end already calls.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/pages/tours/", handler.listTours)
	router.Get("/api/similar-tours/{id}/", handler.similarTours)
}

func (handler *Handler) listTours(writer http.ResponseWriter, request *http.Request) {
	params, err := ParseListParams(request.URL.Query())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	tours, err := handler.service.ListTours(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	views := make([]TourView, 0, len(tours))
	for _, tour := range tours {
		views = append(views, NewTourView(tour, handler.texts))
	}

	respond.OK(writer, ListResponse{Tours: views})
}

func (handler *Handler) similarTours(writer http.ResponseWriter, request *http.Request) {
	// A non-numeric id can never name a tour.
	tourID, ok := requestutil.Int64Param(request, "id")
	if !ok {
		respond.Error(writer, request, apperr.NotFound("Tour"))
		return
	}

	tours, err := handler.service.SimilarTours(request.Context(), tourID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	views := make([]SimilarTourView, 0, len(tours))
	for _, tour := range tours {
		views = append(views, NewSimilarTourView(tour, handler.texts))
	}

	respond.OK(writer, views)
}
