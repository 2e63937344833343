package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWorkspaceRoundTrip(t *testing.T) {
	_, sm := withConfiguredHandlers(t)

	draft := recipeRequest{
		Name:             "Draft Bar",
		Oils:             map[string]float64{"Olive Oil": 500},
		LyeConcentration: 33,
	}
	req := httptest.NewRequest(http.MethodPut, "/api/workspace", jsonBody(t, draft))
	req = sessionRequest(t, sm, req)
	w := httptest.NewRecorder()
	Workspace(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("put: expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	// Read back on the same session context.
	getReq := httptest.NewRequest(http.MethodGet, "/api/workspace", nil).WithContext(req.Context())
	w = httptest.NewRecorder()
	Workspace(w, getReq)
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected status 200, got %d", w.Code)
	}
	var got recipeRequest
	decodeBody(t, w.Body.Bytes(), &got)
	if got.Name != "Draft Bar" || got.Oils["Olive Oil"] != 500 {
		t.Errorf("draft round trip = %+v", got)
	}

	// Clear.
	delReq := httptest.NewRequest(http.MethodDelete, "/api/workspace", nil).WithContext(req.Context())
	w = httptest.NewRecorder()
	Workspace(w, delReq)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected status 200, got %d", w.Code)
	}

	getReq = httptest.NewRequest(http.MethodGet, "/api/workspace", nil).WithContext(req.Context())
	w = httptest.NewRecorder()
	Workspace(w, getReq)
	decodeBody(t, w.Body.Bytes(), &got)
	if got.Name != "" {
		t.Errorf("expected cleared workspace, got %+v", got)
	}
}

func TestWorkspaceModifierLifecycle(t *testing.T) {
	_, sm := withConfiguredHandlers(t)

	// Seed a draft with oils so activation scales to the batch.
	draft := recipeRequest{Oils: map[string]float64{"Olive Oil": 500}}
	putReq := httptest.NewRequest(http.MethodPut, "/api/workspace", jsonBody(t, draft))
	putReq = sessionRequest(t, sm, putReq)
	w := httptest.NewRecorder()
	Workspace(w, putReq)
	if w.Code != http.StatusOK {
		t.Fatalf("put: expected status 200, got %d", w.Code)
	}
	ctx := putReq.Context()

	// Activate with the catalog default: 2% of 500 g.
	toggle := workspaceModifierRequest{Name: "Sodium Lactate", Active: true}
	req := httptest.NewRequest(http.MethodPost, "/api/workspace/modifiers", jsonBody(t, toggle)).WithContext(ctx)
	w = httptest.NewRecorder()
	WorkspaceModifier(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("activate: expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp workspaceModifierResponse
	decodeBody(t, w.Body.Bytes(), &resp)
	if !resp.Active || resp.Amount != 10 {
		t.Fatalf("activate: got active=%v amount=%v, want active 10g", resp.Active, resp.Amount)
	}

	// Override the amount.
	toggle = workspaceModifierRequest{Name: "Sodium Lactate", Active: true, Amount: 15}
	req = httptest.NewRequest(http.MethodPost, "/api/workspace/modifiers", jsonBody(t, toggle)).WithContext(ctx)
	w = httptest.NewRecorder()
	WorkspaceModifier(w, req)
	decodeBody(t, w.Body.Bytes(), &resp)
	if resp.Amount != 15 {
		t.Fatalf("override: amount = %v, want 15", resp.Amount)
	}

	// Deactivate drops it from the draft.
	toggle = workspaceModifierRequest{Name: "Sodium Lactate", Active: false}
	req = httptest.NewRequest(http.MethodPost, "/api/workspace/modifiers", jsonBody(t, toggle)).WithContext(ctx)
	w = httptest.NewRecorder()
	WorkspaceModifier(w, req)
	decodeBody(t, w.Body.Bytes(), &resp)
	if resp.Active {
		t.Fatal("deactivate: modifier still active")
	}
	if _, ok := resp.Modifiers["Sodium Lactate"]; ok {
		t.Fatalf("deactivate: modifier still in draft: %v", resp.Modifiers)
	}
}

func TestWorkspaceModifierUnknown(t *testing.T) {
	_, sm := withConfiguredHandlers(t)

	toggle := workspaceModifierRequest{Name: "Pixie Dust", Active: true}
	req := httptest.NewRequest(http.MethodPost, "/api/workspace/modifiers", jsonBody(t, toggle))
	req = sessionRequest(t, sm, req)
	w := httptest.NewRecorder()
	WorkspaceModifier(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}
