package dto

import "time"

// SubmitOrderRequest mirrors the submission form field names.
type SubmitOrderRequest struct {
	TextField     string   `json:"textField"`
	CheckboxValue bool     `json:"checkboxValue"`
	SelectValue   string   `json:"selectValue"`
	PhoneNumber   string   `json:"phoneNumber"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

// SubmitOrderResponse confirms a stored submission.
type SubmitOrderResponse struct {
	Success bool   `json:"success"`
	OrderID int64  `json:"orderId"`
	Message string `json:"message,omitempty"`
}

// OrderResponse represents a stored order in listings.
type OrderResponse struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Consent     bool      `json:"consent"`
	Phone       string    `json:"phone"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	CreatedAt   time.Time `json:"created_at"`
}
