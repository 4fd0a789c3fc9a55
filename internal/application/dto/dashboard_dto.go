package dto

// DashboardDTO respuesta de GET /dashboard: conteos del día en curso (hora local del servidor).
type DashboardDTO struct {
	Date string `json:"date"` // YYYY-MM-DD

	JobRequestsToday  int            `json:"jobRequestsToday"`
	JobRequestsStatus map[string]int `json:"jobRequestsByStatus"`

	DeliveriesToday  int            `json:"deliveriesToday"`
	DeliveriesStatus map[string]int `json:"deliveriesByStatus"`

	PatrolsToday int `json:"patrolsToday"`
	ReportsToday int `json:"reportsToday"`

	Meals MealCountResponse `json:"meals"`
}
