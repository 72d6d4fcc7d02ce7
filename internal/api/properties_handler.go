package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"realty-api/internal/domain"
	"realty-api/internal/repository"
)

// PropertyHandler exposes listing CRUD and filtering over HTTP.
type PropertyHandler struct {
	repo repository.PropertyRepository
}

// NewPropertyHandler wraps the repository with the /api/properties endpoints.
func NewPropertyHandler(repo repository.PropertyRepository) *PropertyHandler {
	return &PropertyHandler{repo: repo}
}

func (h *PropertyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/properties"), "/")

	switch {
	case r.Method == http.MethodGet && id == "":
		h.handleList(w, r)
	case r.Method == http.MethodGet:
		h.handleGet(w, r, id)
	case r.Method == http.MethodPost && id == "":
		h.handleCreate(w, r)
	case r.Method == http.MethodPut && id != "":
		h.handleUpdate(w, r, id)
	case r.Method == http.MethodDelete && id != "":
		h.handleDelete(w, r, id)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// FilterFromQuery reads the structured filter out of the list endpoint's
// query parameters. Non-numeric price bounds degrade to "no constraint"
// rather than erroring.
func FilterFromQuery(query map[string][]string) domain.PropertyFilter {
	get := func(key string) string {
		if values := query[key]; len(values) > 0 {
			return strings.TrimSpace(values[0])
		}
		return ""
	}

	filter := domain.PropertyFilter{
		Status:       domain.Status(get("status")),
		PropertyType: get("propertyType"),
	}
	if raw := get("minPrice"); raw != "" {
		if value, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinPrice = &value
		}
	}
	if raw := get("maxPrice"); raw != "" {
		if value, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &value
		}
	}
	return filter
}

func (h *PropertyHandler) handleList(w http.ResponseWriter, r *http.Request) {
	filter := FilterFromQuery(r.URL.Query())

	properties, err := h.repo.List(r.Context(), filter)
	if err != nil {
		log.Printf("[HTTP] list properties failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch properties")
		return
	}

	if term := strings.TrimSpace(r.URL.Query().Get("search")); term != "" {
		properties = domain.NarrowBySearch(term, properties)
	}

	if properties == nil {
		properties = []domain.Property{}
	}
	writeJSON(w, http.StatusOK, properties)
}

func (h *PropertyHandler) handleGet(w http.ResponseWriter, r *http.Request, id string) {
	property, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Property not found")
			return
		}
		log.Printf("[HTTP] get property %s failed: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch property")
		return
	}
	writeJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var insert domain.PropertyInsert
	if err := json.NewDecoder(r.Body).Decode(&insert); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid property data")
		return
	}
	if err := validateStruct(insert); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid property data")
		return
	}

	property, err := h.repo.Create(r.Context(), insert)
	if err != nil {
		log.Printf("[HTTP] create property failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create property")
		return
	}
	writeJSON(w, http.StatusCreated, property)
}

func (h *PropertyHandler) handleUpdate(w http.ResponseWriter, r *http.Request, id string) {
	defer r.Body.Close()

	var update domain.PropertyUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid property data")
		return
	}
	if err := validateStruct(update); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid property data")
		return
	}

	property, err := h.repo.Update(r.Context(), id, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Property not found")
			return
		}
		log.Printf("[HTTP] update property %s failed: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to update property")
		return
	}
	writeJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) handleDelete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Property not found")
			return
		}
		log.Printf("[HTTP] delete property %s failed: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to delete property")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
