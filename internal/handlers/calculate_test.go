package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"saponify/models"
)

func TestCalculate(t *testing.T) {
	withConfiguredHandlers(t)

	payload := recipeRequest{
		Name: "Kitchen Bar",
		Oils: map[string]float64{
			"Olive Oil":   400,
			"Coconut Oil": 300,
			"Palm Oil":    300,
		},
		Modifiers:        map[string]float64{"Citric Acid": 10},
		SuperfatPercent:  5,
		LyeConcentration: 33,
		FragrancePercent: 3,
	}
	req := httptest.NewRequest(http.MethodPost, "/api/calculate", jsonBody(t, payload))
	w := httptest.NewRecorder()
	Calculate(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.Recipe
	decodeBody(t, w.Body.Bytes(), &resp)
	if resp.LyeAmount != 143.26 {
		t.Errorf("lye = %v, want 143.26", resp.LyeAmount)
	}
	if resp.LyeAdjustment != 6 {
		t.Errorf("adjustment = %v, want 6", resp.LyeAdjustment)
	}
	if resp.WaterAmount != 303.04 {
		t.Errorf("water = %v, want 303.04", resp.WaterAmount)
	}
	if resp.Properties["hardness"] != 46.2 {
		t.Errorf("hardness = %v, want 46.2", resp.Properties["hardness"])
	}
}

func TestCalculateRejectsBadInput(t *testing.T) {
	withConfiguredHandlers(t)

	tests := []struct {
		name    string
		payload recipeRequest
		status  int
	}{
		{
			"empty selection",
			recipeRequest{LyeConcentration: 33},
			http.StatusUnprocessableEntity,
		},
		{
			"unknown oil",
			recipeRequest{Oils: map[string]float64{"Snake Oil": 500}, LyeConcentration: 33},
			http.StatusUnprocessableEntity,
		},
		{
			"invalid concentration",
			recipeRequest{Oils: map[string]float64{"Olive Oil": 500}, LyeConcentration: 100},
			http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/api/calculate", jsonBody(t, tt.payload))
		w := httptest.NewRecorder()
		Calculate(w, req)
		if w.Code != tt.status {
			t.Errorf("%s: expected status %d, got %d: %s", tt.name, tt.status, w.Code, w.Body.String())
		}
	}
}

func TestCalculateMethodNotAllowed(t *testing.T) {
	withConfiguredHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/api/calculate", nil)
	w := httptest.NewRecorder()
	Calculate(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", w.Code)
	}
}
