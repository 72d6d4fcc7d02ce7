package api

import (
	"encoding/json"
	"log"
	"net/http"

	"realty-api/internal/domain"
	"realty-api/internal/repository"
)

// InquiryHandler exposes inquiry creation over HTTP. Inquiries are
// create-only; no other methods are served.
type InquiryHandler struct {
	repo repository.InquiryRepository
}

// NewInquiryHandler wraps the repository with the /api/inquiries endpoint.
func NewInquiryHandler(repo repository.InquiryRepository) *InquiryHandler {
	return &InquiryHandler{repo: repo}
}

func (h *InquiryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	defer r.Body.Close()

	var insert domain.InquiryInsert
	if err := json.NewDecoder(r.Body).Decode(&insert); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid inquiry data")
		return
	}
	if err := validateStruct(insert); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid inquiry data")
		return
	}

	inquiry, err := h.repo.Create(r.Context(), insert)
	if err != nil {
		log.Printf("[HTTP] create inquiry failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create inquiry")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Inquiry sent successfully",
		"inquiry": inquiry,
	})
}
