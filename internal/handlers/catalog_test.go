package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"saponify/internal/catalog"
)

func TestOils(t *testing.T) {
	withConfiguredHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/api/oils", nil)
	w := httptest.NewRecorder()
	Oils(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var names []string
	decodeBody(t, w.Body.Bytes(), &names)
	if len(names) == 0 {
		t.Fatal("expected oil names")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/oils?name=Olive+Oil", nil)
	w = httptest.NewRecorder()
	Oils(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var oil catalog.Oil
	decodeBody(t, w.Body.Bytes(), &oil)
	if oil.SapNaOH != 0.134 {
		t.Errorf("SapNaOH = %v, want 0.134", oil.SapNaOH)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/oils?name=Snake+Oil", nil)
	w = httptest.NewRecorder()
	Oils(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestModifiersEndpoint(t *testing.T) {
	withConfiguredHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/api/modifiers?name=Citric+Acid", nil)
	w := httptest.NewRecorder()
	Modifiers(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var modifier catalog.Modifier
	decodeBody(t, w.Body.Bytes(), &modifier)
	if modifier.LyeAdjustmentFactor != 0.6 {
		t.Errorf("LyeAdjustmentFactor = %v, want 0.6", modifier.LyeAdjustmentFactor)
	}
}

func TestColorantsEndpoint(t *testing.T) {
	withConfiguredHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/api/colorants?color=blue", nil)
	w := httptest.NewRecorder()
	Colorants(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var colorants []catalog.Colorant
	decodeBody(t, w.Body.Bytes(), &colorants)
	if len(colorants) == 0 || colorants[0].Name != "Indigo Powder" {
		t.Errorf("colorants = %+v, want Indigo Powder", colorants)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/colorants", nil)
	w = httptest.NewRecorder()
	Colorants(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var colors []string
	decodeBody(t, w.Body.Bytes(), &colors)
	if len(colors) == 0 {
		t.Fatal("expected color names")
	}
}
