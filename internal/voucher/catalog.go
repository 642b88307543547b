package voucher

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/FulloMyself/tassel-shop-backend/internal/models"
)

// Catalog holds the discount codes defined for the shop.
// It is built once at startup and never mutated afterwards, so
// lookups are safe from concurrent requests without locking.
type Catalog struct {
	vouchers map[string]models.Voucher
}

// defaultVouchers is the built-in catalog, used unless a voucher
// file is configured.
var defaultVouchers = []models.Voucher{
	{
		Code:        "TASSEL10",
		Type:        "percent",
		Value:       10,
		Description: "10% off your order",
		Active:      true,
	},
	{
		Code:        "SPRING50",
		Type:        "fixed",
		Value:       50,
		Description: "R50 off your total order",
		Active:      true,
	},
	{
		Code:        "28BLACKFRIDAYYY50",
		Type:        "percent",
		Value:       50,
		Description: "50% off your Cart Total",
		Active:      true,
	},
}

// NewCatalog creates a catalog seeded with the built-in voucher list.
func NewCatalog() *Catalog {
	return newCatalog(defaultVouchers)
}

// LoadFromFile creates a catalog from a JSON file containing an array
// of vouchers. The lookup contract is identical to the built-in catalog.
func LoadFromFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read voucher file: %w", err)
	}

	var vouchers []models.Voucher
	if err := json.Unmarshal(data, &vouchers); err != nil {
		return nil, fmt.Errorf("failed to parse voucher file: %w", err)
	}

	if len(vouchers) == 0 {
		return nil, fmt.Errorf("voucher file %s contains no vouchers", path)
	}

	return newCatalog(vouchers), nil
}

func newCatalog(vouchers []models.Voucher) *Catalog {
	m := make(map[string]models.Voucher, len(vouchers))
	for _, v := range vouchers {
		m[strings.ToUpper(v.Code)] = v
	}
	return &Catalog{vouchers: m}
}

// Find looks up a voucher by code, case-insensitively.
// Inactive codes are reported exactly like unknown ones; the caller
// cannot tell "expired" from "never existed".
func (c *Catalog) Find(code string) (models.Voucher, bool) {
	v, ok := c.vouchers[strings.ToUpper(strings.TrimSpace(code))]
	if !ok || !v.Active {
		return models.Voucher{}, false
	}
	return v, true
}

// Size returns the number of defined vouchers, active or not.
func (c *Catalog) Size() int {
	return len(c.vouchers)
}
