package handlers

import (
	"net/http"

	"saponify/internal/allocator"
	applog "saponify/internal/log"
	"saponify/models"
)

type generateRequest struct {
	Oils             []string           `json:"oils"`
	TotalMass        float64            `json:"total_mass"`
	Targets          map[string]float64 `json:"targets,omitempty"`
	SuperfatPercent  float64            `json:"superfat_percent"`
	LyeConcentration float64            `json:"lye_concentration"`
	FragrancePercent float64            `json:"fragrance_percent"`
	LyeType          string             `json:"lye_type"`
}

// Generate allocates oil weights for the selected oils, optionally steering
// toward target property values, then evaluates the resulting blend when
// enough lye parameters are supplied.
func Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if solver == nil || calculator == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "solver not available")
		return
	}

	var req generateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	weights, err := solver.Generate(allocator.Request{
		Oils:      req.Oils,
		TotalMass: req.TotalMass,
		Targets:   req.Targets,
	})
	if err != nil {
		applog.Debug(r.Context(), "generation rejected", "error", err)
		writeEngineError(w, err)
		return
	}

	applog.Debug(r.Context(), "recipe generated", "oils", len(weights), "targeted", len(req.Targets) > 0)

	// Without a lye concentration the caller only wanted the allocation.
	if req.LyeConcentration <= 0 {
		writeJSON(w, http.StatusOK, map[string]any{"oils": weights})
		return
	}

	recipe := &models.Recipe{
		Oils:             weights,
		SuperfatPercent:  req.SuperfatPercent,
		LyeConcentration: req.LyeConcentration,
		FragrancePercent: req.FragrancePercent,
		LyeType:          req.LyeType,
	}
	if err := calculator.Evaluate(recipe); err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recipe)
}
