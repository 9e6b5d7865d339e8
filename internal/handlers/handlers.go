package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sort"

	"github.com/importworks/hts-helpers/internal/calculator"
	"github.com/importworks/hts-helpers/internal/classify"
	"github.com/importworks/hts-helpers/internal/database"
	"github.com/importworks/hts-helpers/internal/remedy"
	"github.com/importworks/hts-helpers/internal/usitc"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	classifier *classify.Classifier
	searcher   usitc.Searcher
	db         *database.DB
}

// NewHandler creates a new handler
func NewHandler(classifier *classify.Classifier, searcher usitc.Searcher, db *database.DB) *Handler {
	return &Handler{
		classifier: classifier,
		searcher:   searcher,
		db:         db,
	}
}

// JSON response helper
func jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}

// Error response helper
func errorResponse(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// HealthCheck returns API health status
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{
		"status": "ok",
	}
	if h.db != nil {
		if n, err := h.db.CacheSize(); err == nil {
			resp["cachedSearches"] = n
		}
	}
	jsonResponse(w, http.StatusOK, resp)
}

// ClassifyRequest is the request body for the classify endpoint
type ClassifyRequest struct {
	ProductDescription string `json:"productDescription"`
	CountryOfOrigin    string `json:"countryOfOrigin"`
}

// Classify runs the full classification pipeline for a product description
// and country of origin.
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		errorResponse(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var req ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.classifier.Classify(r.Context(), req.ProductDescription, req.CountryOfOrigin)
	if err != nil {
		if errors.Is(err, classify.ErrEmptyDescription) || errors.Is(err, classify.ErrEmptyCountry) {
			errorResponse(w, http.StatusBadRequest, "Missing productDescription or countryOfOrigin")
			return
		}
		log.Printf("Classification error: %v", err)
		errorResponse(w, http.StatusInternalServerError, "Classification failed. Please try again.")
		return
	}

	jsonResponse(w, http.StatusOK, result)
}

// SearchHts searches the tariff schedule with multiple keyword strategies
// and returns the aggregated candidates, most specific first. Unlike the
// classify fan-out, an upstream failure here is surfaced to the caller.
func (h *Handler) SearchHts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		errorResponse(w, http.StatusBadRequest, "Missing 'query' parameter")
		return
	}

	keywords := classify.BuildKeywords(query)
	var all []classify.Candidate
	seen := make(map[string]bool)

	for _, keyword := range keywords {
		records, err := h.searcher.Search(r.Context(), keyword)
		if err != nil {
			log.Printf("HTS search error for %q: %v", keyword, err)
			status := http.StatusInternalServerError
			if usitc.IsUpstreamError(err) {
				status = http.StatusBadGateway
			}
			errorResponse(w, status, "Failed to search HTS database")
			return
		}
		for _, cand := range classify.ResolveRates(records) {
			if seen[cand.HtsCode] {
				continue
			}
			seen[cand.HtsCode] = true
			all = append(all, cand)
		}
	}

	// Prefer longer (more specific) codes, then deeper indents.
	sort.SliceStable(all, func(i, j int) bool {
		di, dj := digitCount(all[i].HtsCode), digitCount(all[j].HtsCode)
		if di != dj {
			return di > dj
		}
		return all[i].Indent > all[j].Indent
	})

	top := all
	if len(top) > 20 {
		top = top[:20]
	}

	jsonResponse(w, http.StatusOK, map[string]interface{}{
		"query":    query,
		"keywords": keywords,
		"results":  top,
		"total":    len(all),
	})
}

// DutyRequest is the request body for the duty calculation endpoint
type DutyRequest struct {
	EnteredValue           float64 `json:"enteredValue"`
	GeneralDutyRatePercent float64 `json:"generalDutyRatePercent"`
	Section301RatePercent  float64 `json:"section301RatePercent"`
	Section232RatePercent  float64 `json:"section232RatePercent"`
	AdCvdRatePercent       float64 `json:"adCvdRatePercent"`
	ShippingMethod         string  `json:"shippingMethod"`
}

// CalculateDuties computes the landed-cost breakdown for an entry
func (h *Handler) CalculateDuties(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		errorResponse(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var req DutyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	breakdown, err := calculator.Calculate(calculator.Params{
		EnteredValue:           req.EnteredValue,
		GeneralDutyRatePercent: req.GeneralDutyRatePercent,
		Section301RatePercent:  req.Section301RatePercent,
		Section232RatePercent:  req.Section232RatePercent,
		AdCvdRatePercent:       req.AdCvdRatePercent,
		ShippingMethod:         req.ShippingMethod,
	})
	if err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	jsonResponse(w, http.StatusOK, breakdown)
}

// RemedyRequest is the request body for the trade-remedy endpoint
type RemedyRequest struct {
	CountryOfOrigin    string `json:"countryOfOrigin"`
	HtsCode            string `json:"htsCode"`
	ProductDescription string `json:"productDescription"`
}

// CheckRemedies returns the trade remedies and FTA eligibility for a
// country/code pair
func (h *Handler) CheckRemedies(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		errorResponse(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var req RemedyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CountryOfOrigin == "" || req.HtsCode == "" {
		errorResponse(w, http.StatusBadRequest, "Missing countryOfOrigin or htsCode")
		return
	}

	jsonResponse(w, http.StatusOK, remedy.Resolve(req.CountryOfOrigin, req.HtsCode, req.ProductDescription))
}

// GetCountries returns the known countries with FTA eligibility
func (h *Handler) GetCountries(w http.ResponseWriter, r *http.Request) {
	countries := remedy.Countries()
	jsonResponse(w, http.StatusOK, map[string]interface{}{
		"countries": countries,
		"total":     len(countries),
	})
}

func digitCount(code string) int {
	n := 0
	for _, r := range code {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
