package handlers

import (
	"net/http"

	applog "saponify/internal/log"
)

// Oils lists the oil catalog, or a single oil when ?name= is given.
func Oils(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if oilCatalog == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "catalog not available")
		return
	}

	if name := r.URL.Query().Get("name"); name != "" {
		oil, ok := oilCatalog.Oil(name)
		if !ok {
			writeJSONError(w, http.StatusNotFound, "unknown oil")
			return
		}
		writeJSON(w, http.StatusOK, oil)
		return
	}

	names := oilCatalog.OilNames()
	applog.Debug(r.Context(), "listing oils", "count", len(names))
	writeJSON(w, http.StatusOK, names)
}

// Modifiers lists the modifier catalog, or a single modifier when ?name= is
// given.
func Modifiers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if oilCatalog == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "catalog not available")
		return
	}

	if name := r.URL.Query().Get("name"); name != "" {
		modifier, ok := oilCatalog.Modifier(name)
		if !ok {
			writeJSONError(w, http.StatusNotFound, "unknown modifier")
			return
		}
		writeJSON(w, http.StatusOK, modifier)
		return
	}

	writeJSON(w, http.StatusOK, oilCatalog.ModifierNames())
}

// Colorants lists colorant suggestions for ?color=, or the available color
// names without a query.
func Colorants(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if oilCatalog == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "catalog not available")
		return
	}

	if color := r.URL.Query().Get("color"); color != "" {
		colorants := oilCatalog.Colorants(color)
		if len(colorants) == 0 {
			writeJSONError(w, http.StatusNotFound, "no colorants for that color")
			return
		}
		writeJSON(w, http.StatusOK, colorants)
		return
	}

	writeJSON(w, http.StatusOK, oilCatalog.ColorNames())
}
