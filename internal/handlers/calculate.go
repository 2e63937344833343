package handlers

import (
	"net/http"
	"strings"

	applog "saponify/internal/log"
	"saponify/models"
)

type recipeRequest struct {
	Name             string             `json:"name"`
	Notes            string             `json:"notes"`
	Oils             map[string]float64 `json:"oils"`
	Modifiers        map[string]float64 `json:"modifiers"`
	SuperfatPercent  float64            `json:"superfat_percent"`
	LyeConcentration float64            `json:"lye_concentration"`
	FragrancePercent float64            `json:"fragrance_percent"`
	LyeType          string             `json:"lye_type"`
}

func (req recipeRequest) toModel() *models.Recipe {
	return &models.Recipe{
		Name:             strings.TrimSpace(req.Name),
		Notes:            req.Notes,
		Oils:             req.Oils,
		Modifiers:        req.Modifiers,
		SuperfatPercent:  req.SuperfatPercent,
		LyeConcentration: req.LyeConcentration,
		FragrancePercent: req.FragrancePercent,
		LyeType:          req.LyeType,
	}
}

// Calculate evaluates a formulation without persisting it: lye, water,
// fragrance, modifier adjustments, property scores, and the fatty acid
// profile.
func Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if calculator == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "calculator not available")
		return
	}

	var req recipeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	recipe := req.toModel()
	if err := calculator.Evaluate(recipe); err != nil {
		applog.Debug(r.Context(), "evaluation rejected", "error", err)
		writeEngineError(w, err)
		return
	}

	applog.Debug(r.Context(), "recipe evaluated",
		"totalOils", recipe.TotalOilWeight(),
		"lye", recipe.LyeAmount,
	)
	writeJSON(w, http.StatusOK, recipe)
}
