// Package api translates HTTP requests into entity-service calls and service
// results into responses. One generic Resource serves every entity type; the
// per-entity differences (labels, error codes, list filters, create events)
// are configuration.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/techify/inventora/internal/crud"
	"github.com/techify/inventora/internal/domain"
	"github.com/techify/inventora/internal/telemetry"
)

type errorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// ListFilter narrows a list request by a query parameter, e.g.
// GET /api/orderitem/?customer_order={id}.
type ListFilter[E any] struct {
	Param string
	List  func(ctx context.Context, value string) ([]E, error)
}

type Resource[E any, P crud.Patch[E]] struct {
	label       string // display name in error messages, e.g. "User"
	code        string // error-code prefix, e.g. "USER"
	svc         *crud.Service[E, P]
	logger      *slog.Logger
	filters     []ListFilter[E]
	afterCreate func(context.Context, *E)
}

func NewResource[E any, P crud.Patch[E]](label, code string, svc *crud.Service[E, P], logger *slog.Logger) *Resource[E, P] {
	return &Resource[E, P]{
		label:  label,
		code:   code,
		svc:    svc,
		logger: logger,
	}
}

// WithFilter registers a query-parameter list filter.
func (r *Resource[E, P]) WithFilter(param string, list func(ctx context.Context, value string) ([]E, error)) *Resource[E, P] {
	r.filters = append(r.filters, ListFilter[E]{Param: param, List: list})
	return r
}

// WithAfterCreate registers a hook run after a successful create, used to
// publish domain events. Hook failures must not fail the request.
func (r *Resource[E, P]) WithAfterCreate(fn func(context.Context, *E)) *Resource[E, P] {
	r.afterCreate = fn
	return r
}

// Register mounts the five CRUD routes under base, which must end in a
// slash, e.g. "/api/user/".
func (r *Resource[E, P]) Register(mux *http.ServeMux, base string) {
	mux.HandleFunc("GET "+base+"{$}", telemetry.WithHTTPRoute(r.HandleList))
	mux.HandleFunc("POST "+base+"{$}", telemetry.WithHTTPRoute(r.HandleCreate))
	mux.HandleFunc("GET "+base+"{id}", telemetry.WithHTTPRoute(r.HandleGet))
	mux.HandleFunc("PUT "+base+"{id}", telemetry.WithHTTPRoute(r.HandleUpdate))
	mux.HandleFunc("DELETE "+base+"{id}", telemetry.WithHTTPRoute(r.HandleDelete))
}

func (r *Resource[E, P]) HandleList(w http.ResponseWriter, req *http.Request) {
	for _, f := range r.filters {
		value := req.URL.Query().Get(f.Param)
		if value == "" {
			continue
		}
		entities, err := f.List(req.Context(), value)
		if err != nil {
			r.logger.Error("filtered list failed", "entity", r.label, "param", f.Param, "error", err)
			r.internalError(w)
			return
		}
		r.writeJSON(w, http.StatusOK, entities)
		return
	}

	entities, err := r.svc.List(req.Context())
	if err != nil {
		r.logger.Error("list failed", "entity", r.label, "error", err)
		r.internalError(w)
		return
	}

	r.writeJSON(w, http.StatusOK, entities)
}

func (r *Resource[E, P]) HandleGet(w http.ResponseWriter, req *http.Request) {
	id := req.PathValue("id")

	e, err := r.svc.Get(req.Context(), id)
	if err != nil {
		r.logger.Error("get failed", "entity", r.label, "id", id, "error", err)
		r.internalError(w)
		return
	}
	if e == nil {
		r.notFound(w, id)
		return
	}

	r.writeJSON(w, http.StatusOK, e)
}

func (r *Resource[E, P]) HandleCreate(w http.ResponseWriter, req *http.Request) {
	var e E
	if err := json.NewDecoder(req.Body).Decode(&e); err != nil {
		r.writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	created, err := r.svc.Create(req.Context(), &e)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			r.writeError(w, http.StatusBadRequest, verr.Message, verr.Code)
			return
		}
		r.logger.Error("create failed", "entity", r.label, "error", err)
		r.internalError(w)
		return
	}

	if r.afterCreate != nil {
		r.afterCreate(req.Context(), created)
	}

	r.logger.Info("created", "entity", r.label)
	r.writeJSON(w, http.StatusCreated, created)
}

func (r *Resource[E, P]) HandleUpdate(w http.ResponseWriter, req *http.Request) {
	id := req.PathValue("id")

	var patch P
	if err := json.NewDecoder(req.Body).Decode(&patch); err != nil {
		r.writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	e, err := r.svc.Update(req.Context(), id, patch)
	if err != nil {
		r.logger.Error("update failed", "entity", r.label, "id", id, "error", err)
		r.internalError(w)
		return
	}
	if e == nil {
		r.notFound(w, id)
		return
	}

	r.logger.Info("updated", "entity", r.label, "id", id)
	r.writeJSON(w, http.StatusOK, e)
}

func (r *Resource[E, P]) HandleDelete(w http.ResponseWriter, req *http.Request) {
	id := req.PathValue("id")

	deleted, err := r.svc.Delete(req.Context(), id)
	if err != nil {
		r.logger.Error("delete failed", "entity", r.label, "id", id, "error", err)
		r.internalError(w)
		return
	}
	if !deleted {
		r.notFound(w, id)
		return
	}

	r.logger.Info("deleted", "entity", r.label, "id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (r *Resource[E, P]) notFound(w http.ResponseWriter, id string) {
	message := fmt.Sprintf("%s not found with id: %s", r.label, id)
	r.writeError(w, http.StatusNotFound, message, r.code+"_NOT_FOUND")
}

func (r *Resource[E, P]) internalError(w http.ResponseWriter) {
	r.writeError(w, http.StatusInternalServerError, "internal server error", "INTERNAL_SERVER_ERROR")
}

func (r *Resource[E, P]) writeError(w http.ResponseWriter, status int, message, code string) {
	r.writeJSON(w, status, errorResponse{Message: message, Code: code})
}

func (r *Resource[E, P]) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		r.logger.Error("failed to encode response", "error", err)
	}
}
