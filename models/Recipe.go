package models

import (
	"gorm.io/gorm"
)

// Recipe is a saved soap formulation. The Oils and Modifiers maps hold the
// caller's inputs; everything from LyeAmount down is derived by the
// chemistry calculator and persisted verbatim so a restored recipe reports
// exactly the numbers it was saved with, without recomputation.
type Recipe struct {
	gorm.Model
	Name    string `gorm:"not null" json:"name"`
	Notes   string `gorm:"type:text" json:"notes"`
	OwnerID uint   `gorm:"index" json:"owner_id"`

	Oils      map[string]float64 `gorm:"serializer:json;type:text" json:"oils"`
	Modifiers map[string]float64 `gorm:"serializer:json;type:text" json:"modifiers"`

	SuperfatPercent  float64 `json:"superfat_percent"`
	LyeConcentration float64 `json:"lye_concentration"`
	FragrancePercent float64 `json:"fragrance_percent"`
	LyeType          string  `gorm:"type:varchar(8);default:naoh" json:"lye_type"`

	// Derived fields, set only by chemistry.Evaluate.
	LyeAmount       float64            `json:"lye_amount"`
	LyeAdjustment   float64            `json:"lye_adjustment"`
	WaterAmount     float64            `json:"water_amount"`
	FragranceAmount float64            `json:"fragrance_amount"`
	Properties      map[string]float64 `gorm:"serializer:json;type:text" json:"properties"`
	FattyAcids      map[string]float64 `gorm:"serializer:json;type:text" json:"fatty_acids"`
}

// TotalOilWeight sums the oil weights in grams.
func (r Recipe) TotalOilWeight() float64 {
	total := 0.0
	for _, weight := range r.Oils {
		total += weight
	}
	return total
}

// TotalLye is the base lye requirement plus the modifier adjustment.
func (r Recipe) TotalLye() float64 {
	return r.LyeAmount + r.LyeAdjustment
}
