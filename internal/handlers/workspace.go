package handlers

import (
	"encoding/json"
	"net/http"

	"saponify/internal/chemistry"
	applog "saponify/internal/log"
)

// The workspace is the formulation currently being edited, scoped to the
// session so unsaved work survives page loads without touching the database.

func loadWorkspace(r *http.Request) recipeRequest {
	var draft recipeRequest
	if sessionManager == nil {
		return draft
	}
	raw := sessionManager.GetString(r.Context(), sessionWorkspaceKey)
	if raw == "" {
		return draft
	}
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		applog.Debug(r.Context(), "discarding unreadable workspace draft", "error", err)
		return recipeRequest{}
	}
	return draft
}

func saveWorkspace(r *http.Request, draft recipeRequest) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	sessionManager.Put(r.Context(), sessionWorkspaceKey, string(raw))
	return nil
}

// Workspace reads, replaces, or clears the session's draft formulation.
func Workspace(w http.ResponseWriter, r *http.Request) {
	if sessionManager == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "session not available")
		return
	}

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, loadWorkspace(r))
	case http.MethodPut:
		var draft recipeRequest
		if !decodeJSON(w, r, &draft) {
			return
		}
		if err := saveWorkspace(r, draft); err != nil {
			applog.Error(r.Context(), "failed to save workspace", "error", err)
			writeJSONError(w, http.StatusInternalServerError, "unable to save workspace")
			return
		}
		writeJSON(w, http.StatusOK, draft)
	case http.MethodDelete:
		sessionManager.Remove(r.Context(), sessionWorkspaceKey)
		writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

type workspaceModifierRequest struct {
	Name   string  `json:"name"`
	Active bool    `json:"active"`
	Amount float64 `json:"amount,omitempty"`
}

type workspaceModifierResponse struct {
	Name      string             `json:"name"`
	Active    bool               `json:"active"`
	Amount    float64            `json:"amount"`
	Modifiers map[string]float64 `json:"modifiers"`
}

// WorkspaceModifier toggles a modifier on the session draft. Activating
// without an explicit amount picks the catalog's typical usage scaled to the
// draft's oils.
func WorkspaceModifier(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if sessionManager == nil || calculator == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "session not available")
		return
	}

	var req workspaceModifierRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeJSONError(w, http.StatusBadRequest, "name is required")
		return
	}
	if _, ok := oilCatalog.Modifier(req.Name); !ok {
		writeJSONError(w, http.StatusNotFound, "unknown modifier")
		return
	}

	draft := loadWorkspace(r)
	selection := chemistry.NewModifierSelection(calculator)
	for name, amount := range draft.Modifiers {
		selection.SetAmount(name, amount)
	}

	total := 0.0
	for _, weight := range draft.Oils {
		total += weight
	}

	switch {
	case !req.Active:
		selection.Deactivate(req.Name)
	case req.Amount > 0:
		selection.SetAmount(req.Name, req.Amount)
	default:
		selection.Activate(req.Name, total)
	}

	draft.Modifiers = selection.Amounts()
	if err := saveWorkspace(r, draft); err != nil {
		applog.Error(r.Context(), "failed to save workspace", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to save workspace")
		return
	}

	writeJSON(w, http.StatusOK, workspaceModifierResponse{
		Name:      req.Name,
		Active:    selection.Active(req.Name),
		Amount:    draft.Modifiers[req.Name],
		Modifiers: draft.Modifiers,
	})
}
