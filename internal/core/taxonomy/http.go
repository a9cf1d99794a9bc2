// Copyright (c) 2026 Faunatlas. All rights reserved.
// Author: r.medina.dev@gmail.com

package taxonomy

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
	router.Get("/", handler.listTaxonomies)
	router.Get("/{id}", handler.getTaxonomy)
}

func (handler *Handler) listTaxonomies(writer http.ResponseWriter, request *http.Request) {
	taxonomies, err := handler.service.ListTaxonomies(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, taxonomies)
}

func (handler *Handler) getTaxonomy(writer http.ResponseWriter, request *http.Request) {
	taxonomyID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	taxonomy, err := handler.service.GetTaxonomy(request.Context(), taxonomyID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, taxonomy)
}
