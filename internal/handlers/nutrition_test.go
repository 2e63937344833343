package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"saponify/internal/nutrition"
)

func TestAnalyzeNutrition(t *testing.T) {
	withConfiguredHandlers(t)

	payload := analyzeRequest{
		Ingredients: []nutrition.Ingredient{
			{Food: "Eggs", Amount: 150},
			{Food: "Wild Salmon", Amount: 100, Unit: "g"},
			{Food: "Spinach", Amount: 100},
		},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/nutrition/analyze", jsonBody(t, payload))
	w := httptest.NewRecorder()
	AnalyzeNutrition(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp analyzeResponse
	decodeBody(t, w.Body.Bytes(), &resp)
	if resp.Nutrients[nutrition.ProteinG] <= 0 {
		t.Error("expected protein total")
	}
	if resp.Analysis.CompliancePercent <= 0 {
		t.Errorf("expected some compliance, got %v", resp.Analysis.CompliancePercent)
	}
	if len(resp.Analysis.Deficient) == 0 {
		t.Error("one meal should leave daily gaps")
	}
}

func TestAnalyzeNutritionBadInput(t *testing.T) {
	withConfiguredHandlers(t)

	tests := []struct {
		name    string
		payload analyzeRequest
	}{
		{
			"unknown unit",
			analyzeRequest{Ingredients: []nutrition.Ingredient{{Food: "Eggs", Amount: 1, Unit: "carton"}}},
		},
		{
			"unknown demographic",
			analyzeRequest{Demographic: "newborn"},
		},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/api/nutrition/analyze", jsonBody(t, tt.payload))
		w := httptest.NewRecorder()
		AnalyzeNutrition(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected status 400, got %d", tt.name, w.Code)
		}
	}
}

func TestSuggestFoodsHandler(t *testing.T) {
	withConfiguredHandlers(t)

	payload := suggestRequest{Nutrient: nutrition.IronMG, AmountNeeded: 8, Limit: 2}
	req := httptest.NewRequest(http.MethodPost, "/api/nutrition/suggest", jsonBody(t, payload))
	w := httptest.NewRecorder()
	SuggestFoods(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp []nutrition.Suggestion
	decodeBody(t, w.Body.Bytes(), &resp)
	if len(resp) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(resp))
	}
	if resp[0].Food != "Pumpkin Seeds" {
		t.Errorf("top suggestion = %q, want Pumpkin Seeds", resp[0].Food)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/nutrition/suggest", jsonBody(t, suggestRequest{}))
	w = httptest.NewRecorder()
	SuggestFoods(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for empty request, got %d", w.Code)
	}
}

func TestFoods(t *testing.T) {
	withConfiguredHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/api/nutrition/foods", nil)
	w := httptest.NewRecorder()
	Foods(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var names []string
	decodeBody(t, w.Body.Bytes(), &names)
	if len(names) == 0 {
		t.Fatal("expected food names")
	}
}
