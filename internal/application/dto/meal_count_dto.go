package dto

import "time"

// SaveMealCountRequest upsert del conteo de comidas de una fecha (YYYY-MM-DD).
type SaveMealCountRequest struct {
	Date      string `json:"date"`
	Breakfast *int   `json:"breakfast"`
	Lunch     *int   `json:"lunch"`
	Dinner    *int   `json:"dinner"`
}

// MealCountResponse salida de un conteo diario.
type MealCountResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Breakfast int       `json:"breakfast"`
	Lunch     int       `json:"lunch"`
	Dinner    int       `json:"dinner"`
	Total     int       `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
