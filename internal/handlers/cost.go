package handlers

import (
	"net/http"

	"saponify/internal/costing"
	applog "saponify/internal/log"
)

type costRequest struct {
	Oils map[string]float64 `json:"oils"`
}

// Cost prices a blend's oils against the catalog.
func Cost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if oilCatalog == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "catalog not available")
		return
	}

	var req costRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.Oils) == 0 {
		writeJSONError(w, http.StatusBadRequest, "oils are required")
		return
	}

	estimate := costing.ForBlend(oilCatalog, req.Oils)
	applog.Debug(r.Context(), "blend priced", "lines", len(estimate.Lines), "total", estimate.Total.String())
	writeJSON(w, http.StatusOK, estimate)
}
