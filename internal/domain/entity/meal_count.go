package entity

import "time"

// DateLayout formato de fecha civil usado en la API (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// MealCount conteo diario de comidas servidas. Date es única (upsert por fecha).
type MealCount struct {
	ID        string
	Date      time.Time // medianoche UTC del día
	Breakfast int
	Lunch     int
	Dinner    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Total suma de las tres comidas.
func (m MealCount) Total() int {
	return m.Breakfast + m.Lunch + m.Dinner
}

// ParseDate interpreta una fecha YYYY-MM-DD como medianoche UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
