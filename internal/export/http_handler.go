package export

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"realty-api/internal/api"
)

// Handler exposes the XLSX export as an HTTP endpoint. It accepts the same
// filter query parameters as the listing endpoint.
type Handler struct {
	service *Service
}

// NewHTTPHandler wraps the service with a GET endpoint.
func NewHTTPHandler(service *Service) http.Handler {
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filter := api.FilterFromQuery(r.URL.Query())

	fileName := fmt.Sprintf("listings_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))

	if err := h.service.WriteXLSX(r.Context(), filter, w); err != nil {
		// Headers may already be out; log and drop the connection state.
		log.Printf("[EXPORT] failed to export listings: %v", err)
		http.Error(w, "failed to export listings", http.StatusInternalServerError)
	}
}
