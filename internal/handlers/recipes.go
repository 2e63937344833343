package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	applog "saponify/internal/log"
	"saponify/internal/recipes"
	"saponify/internal/report"
)

// RecipeResource handles REST-style interactions for stored recipes.
// Recipes are addressed by their zero-based position in creation order:
//
//	GET    /api/recipes            list
//	POST   /api/recipes            evaluate and append
//	GET    /api/recipes/{i}        show
//	PUT    /api/recipes/{i}        re-evaluate and replace
//	DELETE /api/recipes/{i}        delete
//	GET    /api/recipes/{i}/report plain-text batch sheet
func RecipeResource(w http.ResponseWriter, r *http.Request) {
	if recipeStore == nil {
		applog.Debug(r.Context(), "recipe request without store")
		writeJSONError(w, http.StatusServiceUnavailable, "recipe storage not available")
		return
	}

	userID, ok := currentUserID(r)
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/recipes")
	path = strings.Trim(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			listRecipes(w, r, userID)
		case http.MethodPost:
			createRecipe(w, r, userID)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
		return
	}

	segments := strings.Split(path, "/")
	index, err := strconv.Atoi(segments[0])
	if err != nil || index < 0 {
		applog.Debug(r.Context(), "invalid recipe index", "index", segments[0])
		http.NotFound(w, r)
		return
	}

	if len(segments) > 1 && segments[1] == "report" {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		recipeReport(w, r, userID, index)
		return
	}

	switch r.Method {
	case http.MethodGet:
		showRecipe(w, r, userID, index)
	case http.MethodPut:
		updateRecipe(w, r, userID, index)
	case http.MethodDelete:
		deleteRecipe(w, r, userID, index)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func listRecipes(w http.ResponseWriter, r *http.Request, userID uint) {
	list, err := recipeStore.List(r.Context(), userID)
	if err != nil {
		applog.Error(r.Context(), "failed to list recipes", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to load recipes")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func createRecipe(w http.ResponseWriter, r *http.Request, userID uint) {
	var req recipeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeJSONError(w, http.StatusBadRequest, "name is required")
		return
	}

	recipe := req.toModel()
	recipe.OwnerID = userID
	if err := calculator.Evaluate(recipe); err != nil {
		writeEngineError(w, err)
		return
	}

	if err := recipeStore.Append(r.Context(), recipe); err != nil {
		applog.Error(r.Context(), "failed to store recipe", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to store recipe")
		return
	}
	applog.Debug(r.Context(), "recipe stored", "name", recipe.Name, "userID", userID)
	writeJSON(w, http.StatusCreated, recipe)
}

func showRecipe(w http.ResponseWriter, r *http.Request, userID uint, index int) {
	recipe, err := recipeStore.At(r.Context(), userID, index)
	if err != nil {
		if errors.Is(err, recipes.ErrIndexOutOfRange) {
			http.NotFound(w, r)
			return
		}
		applog.Error(r.Context(), "failed to load recipe", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to load recipe")
		return
	}
	writeJSON(w, http.StatusOK, recipe)
}

func updateRecipe(w http.ResponseWriter, r *http.Request, userID uint, index int) {
	var req recipeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeJSONError(w, http.StatusBadRequest, "name is required")
		return
	}

	recipe := req.toModel()
	if err := calculator.Evaluate(recipe); err != nil {
		writeEngineError(w, err)
		return
	}

	updated, err := recipeStore.UpdateAt(r.Context(), userID, index, recipe)
	if err != nil {
		if errors.Is(err, recipes.ErrIndexOutOfRange) {
			http.NotFound(w, r)
			return
		}
		applog.Error(r.Context(), "failed to update recipe", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to update recipe")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func deleteRecipe(w http.ResponseWriter, r *http.Request, userID uint, index int) {
	if err := recipeStore.DeleteAt(r.Context(), userID, index); err != nil {
		if errors.Is(err, recipes.ErrIndexOutOfRange) {
			http.NotFound(w, r)
			return
		}
		applog.Error(r.Context(), "failed to delete recipe", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to delete recipe")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func recipeReport(w http.ResponseWriter, r *http.Request, userID uint, index int) {
	recipe, err := recipeStore.At(r.Context(), userID, index)
	if err != nil {
		if errors.Is(err, recipes.ErrIndexOutOfRange) {
			http.NotFound(w, r)
			return
		}
		applog.Error(r.Context(), "failed to load recipe for report", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to load recipe")
		return
	}

	sheet := report.Build(oilCatalog, recipe, report.Options{
		TargetColor: r.URL.Query().Get("color"),
	})
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(sheet)); err != nil {
		applog.Error(r.Context(), "failed to write report", "error", err)
	}
}
