// Copyright (c) 2026 Faunatlas. All rights reserved.
// Author: r.medina.dev@gmail.com

package region

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/rmedina/faunatlas/internal/platform/request"
	"github.com/rmedina/faunatlas/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listRegions)
	router.Get("/{id}", handler.getRegion)
}

func (handler *Handler) listRegions(writer http.ResponseWriter, request *http.Request) {
	regions, err := handler.service.ListRegions(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, regions)
}

func (handler *Handler) getRegion(writer http.ResponseWriter, request *http.Request) {
	regionID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	region, err := handler.service.GetRegion(request.Context(), regionID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, region)
}
