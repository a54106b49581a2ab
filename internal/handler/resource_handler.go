package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"storefront/api/internal/service"
)

// Service is the uniform operation set every resource manager exposes.
type Service[R, I any] interface {
	Create(ctx context.Context, in I) (R, error)
	List(ctx context.Context) ([]R, error)
	Get(ctx context.Context, id int) (*R, error)
	Replace(ctx context.Context, id int, in I) (R, error)
	Delete(ctx context.Context, id int) error
}

// ResourceHandler serves the five CRUD endpoints for one resource. The name
// is the capitalized singular ("Item") used in response messages.
type ResourceHandler[R, I any] struct {
	svc  Service[R, I]
	name string
}

func NewResourceHandler[R, I any](svc Service[R, I], name string) *ResourceHandler[R, I] {
	return &ResourceHandler[R, I]{svc: svc, name: name}
}

func (h *ResourceHandler[R, I]) Mount(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

func (h *ResourceHandler[R, I]) Create(w http.ResponseWriter, r *http.Request) {
	var in I
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.svc.Create(r.Context(), in)
	if err != nil {
		h.fail(w, err)
		return
	}
	respondJSON(w, http.StatusOK, record)
}

func (h *ResourceHandler[R, I]) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.List(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	if records == nil {
		records = []R{}
	}
	respondJSON(w, http.StatusOK, records)
}

func (h *ResourceHandler[R, I]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	record, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}
	if record == nil {
		respondError(w, http.StatusNotFound, strings.ToLower(h.name)+" not found")
		return
	}
	respondJSON(w, http.StatusOK, record)
}

func (h *ResourceHandler[R, I]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var in I
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Echo contract: the record combines the input with the path id even
	// when no row matched.
	record, err := h.svc.Replace(r.Context(), id, in)
	if err != nil {
		h.fail(w, err)
		return
	}
	respondJSON(w, http.StatusOK, record)
}

func (h *ResourceHandler[R, I]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.fail(w, err)
		return
	}
	// Fixed confirmation, whether or not a row existed.
	respondJSON(w, http.StatusOK, map[string]string{"message": h.name + " deleted"})
}

func (h *ResourceHandler[R, I]) pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func (h *ResourceHandler[R, I]) fail(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrMalformedDate) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	// Log error internally in production
	respondError(w, http.StatusInternalServerError, "internal server error")
}
