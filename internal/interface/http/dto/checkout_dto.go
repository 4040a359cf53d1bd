package dto

type CreateCheckoutRequest struct {
	LawyerID        string `json:"lawyer_id"`
	DurationMinutes int    `json:"duration_minutes"`
}

type CreateCheckoutResponse struct {
	URL string `json:"url"`
}

type CheckoutErrorResponse struct {
	Error string `json:"error"`
}
