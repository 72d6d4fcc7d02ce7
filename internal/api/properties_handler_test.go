package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"realty-api/internal/domain"
	"realty-api/internal/repository"
)

const createBody = `{
	"title": "Suburban Retreat",
	"description": "Charming family home on a quiet street.",
	"price": "595000.00",
	"address": "321 Greenwood Estate",
	"city": "Springfield",
	"state": "CA",
	"zipCode": "90213",
	"propertyType": "house",
	"bedrooms": 5
}`

func newPropertyServer() *PropertyHandler {
	return NewPropertyHandler(repository.NewMemoryPropertyRepository())
}

func doJSON(t *testing.T, handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeProperty(t *testing.T, rec *httptest.ResponseRecorder) domain.Property {
	t.Helper()
	var p domain.Property
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("failed to decode property: %v\nbody: %s", err, rec.Body.String())
	}
	return p
}

func decodeProperties(t *testing.T, rec *httptest.ResponseRecorder) []domain.Property {
	t.Helper()
	var properties []domain.Property
	if err := json.Unmarshal(rec.Body.Bytes(), &properties); err != nil {
		t.Fatalf("failed to decode listing: %v\nbody: %s", err, rec.Body.String())
	}
	return properties
}

func TestCreateThenListEndToEnd(t *testing.T) {
	handler := newPropertyServer()

	rec := doJSON(t, handler, http.MethodPost, "/api/properties", createBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decodeProperty(t, rec)
	if created.Status != domain.StatusForSale {
		t.Fatalf("expected default status, got %q", created.Status)
	}
	if created.Bedrooms == nil || *created.Bedrooms != 5 {
		t.Fatal("expected bedrooms 5")
	}

	target := "/api/properties?" + url.Values{"status": {"For Sale"}}.Encode()
	rec = doJSON(t, handler, http.MethodGet, target, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	properties := decodeProperties(t, rec)
	if len(properties) != 1 || properties[0].ID != created.ID {
		t.Fatalf("expected the created listing in the For Sale results, got %d entries", len(properties))
	}
	price, err := strconv.ParseFloat(properties[0].Price, 64)
	if err != nil || price != 595000 {
		t.Fatalf("expected price 595000, got %q (%v)", properties[0].Price, err)
	}
}

func TestCreateRejectsInvalidPayloads(t *testing.T) {
	handler := newPropertyServer()

	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"title": `},
		{"missing title", `{"description":"x","price":"1","address":"x","city":"x","state":"x","zipCode":"x","propertyType":"x"}`},
		{"negative price", strings.Replace(createBody, `"595000.00"`, `"-1"`, 1)},
		{"non-decimal price", strings.Replace(createBody, `"595000.00"`, `"cheap"`, 1)},
		{"negative bedrooms", strings.Replace(createBody, `"bedrooms": 5`, `"bedrooms": -2`, 1)},
		{"unknown status", strings.Replace(createBody, `"propertyType": "house"`, `"propertyType": "house", "status": "Archived"`, 1)},
	}
	for _, tc := range cases {
		rec := doJSON(t, handler, http.MethodPost, "/api/properties", tc.body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", tc.name, rec.Code)
		}
	}
}

func TestCreateIgnoresUnknownFields(t *testing.T) {
	handler := newPropertyServer()

	body := strings.Replace(createBody, `"bedrooms": 5`, `"bedrooms": 5, "agentNotes": "call back"`, 1)
	rec := doJSON(t, handler, http.MethodPost, "/api/properties", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected unknown fields to be ignored, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestGetNotFound(t *testing.T) {
	handler := newPropertyServer()

	rec := doJSON(t, handler, http.MethodGet, "/api/properties/no-such-id", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUpdateOutcomes(t *testing.T) {
	handler := newPropertyServer()

	created := decodeProperty(t, doJSON(t, handler, http.MethodPost, "/api/properties", createBody))

	rec := doJSON(t, handler, http.MethodPut, "/api/properties/"+created.ID, `{"status": "Sold"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	updated := decodeProperty(t, rec)
	if updated.Status != domain.StatusSold {
		t.Fatalf("expected Sold, got %q", updated.Status)
	}
	if updated.Title != created.Title || updated.Price != created.Price {
		t.Fatal("expected unprovided fields to survive the update")
	}

	// Validation failure and not-found are distinct outcomes.
	rec = doJSON(t, handler, http.MethodPut, "/api/properties/"+created.ID, `{"price": "-5"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid partial update, got %d", rec.Code)
	}
	rec = doJSON(t, handler, http.MethodPut, "/api/properties/no-such-id", `{"status": "Sold"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", rec.Code)
	}
}

func TestDeleteThenDeleteAgain(t *testing.T) {
	handler := newPropertyServer()

	created := decodeProperty(t, doJSON(t, handler, http.MethodPost, "/api/properties", createBody))

	rec := doJSON(t, handler, http.MethodDelete, "/api/properties/"+created.ID, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}

	rec = doJSON(t, handler, http.MethodGet, "/api/properties/"+created.ID, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected deleted listing to be gone, got %d", rec.Code)
	}
	rec = doJSON(t, handler, http.MethodDelete, "/api/properties/"+created.ID, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected repeated delete to report 404, got %d", rec.Code)
	}
}

func TestListNonNumericPriceBoundsDegrade(t *testing.T) {
	handler := newPropertyServer()
	doJSON(t, handler, http.MethodPost, "/api/properties", createBody)

	// A junk bound acts as "no constraint", not a validation failure.
	rec := doJSON(t, handler, http.MethodGet, "/api/properties?minPrice=expensive", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := len(decodeProperties(t, rec)); got != 1 {
		t.Fatalf("expected unfiltered results, got %d", got)
	}
}

func TestListEmptyCatalogReturnsEmptyArray(t *testing.T) {
	handler := newPropertyServer()

	rec := doJSON(t, handler, http.MethodGet, "/api/properties", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected a JSON array, got %s", body)
	}
}

func TestListSearchNarrowing(t *testing.T) {
	handler := newPropertyServer()
	doJSON(t, handler, http.MethodPost, "/api/properties", createBody)
	doJSON(t, handler, http.MethodPost, "/api/properties",
		strings.Replace(createBody, "Suburban Retreat", "Downtown Loft", 1))

	rec := doJSON(t, handler, http.MethodGet, "/api/properties?search=RETREAT", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	properties := decodeProperties(t, rec)
	if len(properties) != 1 || properties[0].Title != "Suburban Retreat" {
		t.Fatalf("expected only the Retreat listing, got %d", len(properties))
	}
}
