package models

// GiftInquiry represents a gift/voucher question submitted from the storefront
type GiftInquiry struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}
