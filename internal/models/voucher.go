package models

// Voucher represents a discount code in the catalog
type Voucher struct {
	Code        string  `json:"code"`
	Type        string  `json:"type"` // "percent" or "fixed"
	Value       float64 `json:"value"`
	Description string  `json:"description"`
	Active      bool    `json:"active"`
}

// PublicVoucher is the client-facing view of a voucher.
// Active is implied by a successful lookup and never echoed back.
type PublicVoucher struct {
	Code        string  `json:"code"`
	Type        string  `json:"type"`
	Value       float64 `json:"value"`
	Description string  `json:"description"`
}

// Public returns the fields safe to expose to the storefront.
func (v Voucher) Public() PublicVoucher {
	return PublicVoucher{
		Code:        v.Code,
		Type:        v.Type,
		Value:       v.Value,
		Description: v.Description,
	}
}

// VoucherLookupRequest is the body of a voucher validation call
type VoucherLookupRequest struct {
	Code string `json:"code"`
}
