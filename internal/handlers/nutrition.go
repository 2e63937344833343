package handlers

import (
	"net/http"

	applog "saponify/internal/log"
	"saponify/internal/nutrition"
)

type analyzeRequest struct {
	Ingredients []nutrition.Ingredient `json:"ingredients"`
	Demographic string                 `json:"demographic,omitempty"`
}

type analyzeResponse struct {
	Nutrients map[string]float64 `json:"nutrients"`
	Analysis  nutrition.Analysis `json:"analysis"`
}

type suggestRequest struct {
	Nutrient     string  `json:"nutrient"`
	AmountNeeded float64 `json:"amount_needed"`
	Limit        int     `json:"limit,omitempty"`
}

// Foods lists the food database names.
func Foods(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if meals == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "nutrition data not available")
		return
	}
	writeJSON(w, http.StatusOK, meals.FoodNames())
}

// AnalyzeNutrition aggregates a meal's nutrients and grades them against the
// daily requirement band for the requested demographic.
func AnalyzeNutrition(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if meals == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "nutrition data not available")
		return
	}

	var req analyzeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	totals, err := meals.MealNutrients(req.Ingredients)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	analysis, err := meals.AnalyzeCompliance(totals, req.Demographic)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	applog.Debug(r.Context(), "meal analyzed",
		"ingredients", len(req.Ingredients),
		"compliance", analysis.CompliancePercent,
	)
	writeJSON(w, http.StatusOK, analyzeResponse{Nutrients: totals, Analysis: analysis})
}

// SuggestFoods ranks foods that would cover a nutrient deficiency.
func SuggestFoods(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if meals == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "nutrition data not available")
		return
	}

	var req suggestRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Nutrient == "" || req.AmountNeeded <= 0 {
		writeJSONError(w, http.StatusBadRequest, "nutrient and a positive amount_needed are required")
		return
	}
	limit := req.Limit
	if limit <= 0 {
		limit = 5
	}

	writeJSON(w, http.StatusOK, meals.SuggestFoods(req.Nutrient, req.AmountNeeded, limit))
}
