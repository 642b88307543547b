package models

import "github.com/shopspring/decimal"

// BookingRequest represents a massage booking submitted from the storefront
type BookingRequest struct {
	ForWhom      string             `json:"forWhom"`
	Services     []ServiceSelection `json:"services"`
	SelectedTime string             `json:"selectedTime,omitempty"`
	Email        string             `json:"email"`
}

// ServiceSelection is one treatment picked by the customer
type ServiceSelection struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Duration int             `json:"duration"`
}
