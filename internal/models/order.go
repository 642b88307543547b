package models

import "github.com/shopspring/decimal"

// OrderRequest represents an incoming storefront order
// Schema matches the checkout payload sent by the web client
type OrderRequest struct {
	Items          []LineItem       `json:"items"`
	Total          decimal.Decimal  `json:"total"`
	Email          string           `json:"email"`
	DeliveryOption string           `json:"deliveryOption"`
	Delivery       *DeliveryDetails `json:"deliveryDetails,omitempty"`
}

// LineItem represents a single item in an order
type LineItem struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	SalePrice decimal.Decimal `json:"salePrice,omitempty"`
}

// DeliveryDetails holds the recipient details for a courier delivery
type DeliveryDetails struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// EffectivePrice returns the unit price charged for the item.
// The sale price only applies when it is positive and strictly
// below the regular price.
func (i LineItem) EffectivePrice() decimal.Decimal {
	if i.SalePrice.IsPositive() && i.SalePrice.LessThan(i.Price) {
		return i.SalePrice
	}
	return i.Price
}

// LineTotal returns the effective price multiplied by the quantity.
func (i LineItem) LineTotal() decimal.Decimal {
	return i.EffectivePrice().Mul(decimal.NewFromInt(int64(i.Quantity)))
}
