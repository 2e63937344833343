// Package handlers exposes the formulation engine over a JSON HTTP API:
// account management, catalog lookups, blend evaluation, automatic recipe
// generation, stored recipes, batch reports, nutrition analysis, and cost
// estimation.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"gorm.io/gorm"

	"saponify/internal/allocator"
	"saponify/internal/catalog"
	"saponify/internal/chemistry"
	applog "saponify/internal/log"
	"saponify/internal/nutrition"
	"saponify/internal/recipes"
)

const (
	sessionAuthenticatedKey = "auth:authenticated"
	sessionUserIDKey        = "auth:user:id"
	sessionUserEmailKey     = "auth:user:email"
	sessionUserNameKey      = "auth:user:name"
	sessionWorkspaceKey     = "workspace:draft"
)

var (
	sessionManager *scs.SessionManager
	database       *gorm.DB
	oilCatalog     *catalog.Catalog
	calculator     *chemistry.Calculator
	solver         *allocator.Solver
	meals          *nutrition.Calculator
	recipeStore    *recipes.Store
)

// Configure installs the shared dependencies used by the HTTP handlers.
func Configure(sm *scs.SessionManager, db *gorm.DB, cat *catalog.Catalog) {
	sessionManager = sm
	database = db
	oilCatalog = cat
	calculator = chemistry.New(cat)
	solver = allocator.New(cat)
	meals = nutrition.New()
	recipeStore = nil
	if db != nil {
		recipeStore = recipes.New(db)
	}
}

// ActiveSession returns true when the current request has an authenticated session.
func ActiveSession(r *http.Request) bool {
	if sessionManager == nil {
		return false
	}
	return sessionManager.GetBool(r.Context(), sessionAuthenticatedKey) && sessionManager.GetInt(r.Context(), sessionUserIDKey) > 0
}

func currentUserID(r *http.Request) (uint, bool) {
	if sessionManager == nil {
		return 0, false
	}
	id := sessionManager.GetInt(r.Context(), sessionUserIDKey)
	if id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// RequireAuthentication ensures the user has an active session before
// reaching the wrapped resource.
func RequireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ActiveSession(r) {
			writeJSONError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		applog.Error(context.Background(), "failed to encode json response", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		applog.Debug(r.Context(), "failed to decode request payload", "error", err)
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return false
	}
	return true
}

// writeEngineError maps the chemistry sentinels onto HTTP statuses.
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, chemistry.ErrInvalidParameter):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, chemistry.ErrUnknownOil), errors.Is(err, chemistry.ErrEmptySelection):
		writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeJSONError(w, http.StatusInternalServerError, "calculation failed")
	}
}
