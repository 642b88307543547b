package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/FulloMyself/tassel-shop-backend/internal/models"
)

// voucherFinder is the interface for catalog lookups
type voucherFinder interface {
	Find(code string) (models.Voucher, bool)
}

// VoucherHandler handles HTTP requests for voucher validation
type VoucherHandler struct {
	catalog voucherFinder
	log     *slog.Logger
}

// NewVoucherHandler creates a new VoucherHandler
func NewVoucherHandler(catalog voucherFinder, log *slog.Logger) *VoucherHandler {
	return &VoucherHandler{
		catalog: catalog,
		log:     log,
	}
}

// ValidateVoucher handles POST /api/validate-voucher.
// A miss and an inactive code produce the same response.
func (h *VoucherHandler) ValidateVoucher(w http.ResponseWriter, r *http.Request) {
	var req models.VoucherLookupRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Code) == "" {
		WriteJSON(w, http.StatusBadRequest, map[string]interface{}{
			"valid":   false,
			"message": "Invalid request.",
		}, h.log)
		return
	}

	v, found := h.catalog.Find(req.Code)
	if !found {
		WriteJSON(w, http.StatusNotFound, map[string]interface{}{
			"valid":   false,
			"message": "Invalid or expired code.",
		}, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"valid":   true,
		"voucher": v.Public(),
	}, h.log)
}
