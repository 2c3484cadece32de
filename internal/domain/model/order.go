package model

import "time"

// Coordinates is a geographic point picked on the map.
// Latitude and longitude always travel together.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// OrderSubmission is the raw payload a client submits, before validation.
// Latitude and longitude arrive independently optional; validation turns
// them into Coordinates or rejects the half-filled pair.
type OrderSubmission struct {
	Description string
	Category    string
	Consent     bool
	Phone       string
	Latitude    *float64
	Longitude   *float64
}

// OrderDraft holds a submission that passed validation but is not yet persisted.
type OrderDraft struct {
	Description string
	Category    string
	Consent     bool
	Phone       string
	Location    *Coordinates
}

// Order describes a service request owned by exactly one account.
type Order struct {
	ID          int64
	AccountID   int64
	Description string
	Category    string
	Consent     bool
	Phone       string
	Location    *Coordinates
	CreatedAt   time.Time
}
