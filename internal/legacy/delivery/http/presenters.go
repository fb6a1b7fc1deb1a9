package http

// --- Request DTOs ---

type recommendReq struct {
	Occasion        string  `json:"occasion" binding:"required"`
	BudgetMin       float64 `json:"budget_min"`
	BudgetMax       float64 `json:"budget_max"`
	StylePreference string  `json:"style_preference"`
	MetalPreference string  `json:"metal_preference"`
	StonePreference string  `json:"stone_preference"`
}

type appointmentReq struct {
	CustomerName     string `json:"customer_name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone" binding:"required"`
	PreferredDate    string `json:"preferred_date" binding:"required"`
	ConsultationType string `json:"consultation_type" binding:"required"`
	Message          string `json:"message"`
}

// --- Response DTOs ---

type recommendationResp struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type recommendResp struct {
	Occasion        string               `json:"occasion"`
	Recommendations []recommendationResp `json:"recommendations"`
	Notice          string               `json:"notice"`
}

type appointmentResp struct {
	AppointmentID string `json:"appointment_id"`
	Customer      string `json:"customer"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Date          string `json:"date"`
	Type          string `json:"type"`
	Status        string `json:"status"`
	Message       string `json:"message"`
	Notice        string `json:"notice"`
}

type inventoryItemResp struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PriceRange  string `json:"price_range"`
	Available   bool   `json:"available"`
	Description string `json:"description"`
}

type inventoryResp struct {
	Query       string              `json:"query"`
	BudgetRange string              `json:"budget_range"`
	Results     []inventoryItemResp `json:"results"`
	TotalCount  int                 `json:"total_count"`
	Notice      string              `json:"notice"`
}
