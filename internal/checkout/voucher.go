package checkout

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wildmart/wildmart-go/internal/api"
	pkgerrors "github.com/wildmart/wildmart-go/pkg/errors"
)

// DiscountType enumerates the voucher kinds the backend issues.
type DiscountType string

const (
	DiscountPercentage  DiscountType = "PERCENTAGE"
	DiscountFixedAmount DiscountType = "FIXED_AMOUNT"
	DiscountShipping    DiscountType = "SHIPPING"
)

// Voucher is immutable once fetched; at most one is applied per checkout
// session.
type Voucher struct {
	ID                 int64
	DiscountCode       string
	DiscountType       DiscountType
	DiscountValue      decimal.Decimal
	MinimumOrderAmount *decimal.Decimal
	ValidFrom          *time.Time
	ValidUntil         *time.Time
	IsActive           bool
	UsageLimit         *int
	UsageCount         int
}

// VoucherFromPayload maps the wire voucher.
func VoucherFromPayload(payload api.VoucherPayload) Voucher {
	return Voucher{
		ID:                 payload.ID,
		DiscountCode:       payload.DiscountCode,
		DiscountType:       DiscountType(strings.ToUpper(strings.TrimSpace(payload.DiscountType))),
		DiscountValue:      payload.DiscountValue,
		MinimumOrderAmount: payload.MinimumOrderAmount,
		ValidFrom:          payload.ValidFrom,
		ValidUntil:         payload.ValidUntil,
		IsActive:           payload.IsActive,
		UsageLimit:         payload.UsageLimit,
		UsageCount:         payload.UsageCount,
	}
}

// FindVoucher looks a code up case-insensitively.
func FindVoucher(vouchers []Voucher, code string) (*Voucher, bool) {
	needle := strings.TrimSpace(code)
	for i := range vouchers {
		if strings.EqualFold(vouchers[i].DiscountCode, needle) {
			return &vouchers[i], true
		}
	}
	return nil, false
}

// Validate checks applicability in the same order the backend does, so the
// inline message matches what a submit would have returned.
func (v Voucher) Validate(subtotal decimal.Decimal, now time.Time) error {
	if !v.IsActive {
		return pkgerrors.New(pkgerrors.CodeValidation, "This voucher is no longer active")
	}
	if v.ValidFrom != nil && v.ValidFrom.After(now) {
		return pkgerrors.New(pkgerrors.CodeValidation, "This voucher is not yet valid")
	}
	if v.ValidUntil != nil && v.ValidUntil.Before(now) {
		return pkgerrors.New(pkgerrors.CodeValidation, "This voucher has expired")
	}
	if v.UsageLimit != nil && v.UsageCount >= *v.UsageLimit {
		return pkgerrors.New(pkgerrors.CodeValidation, "This voucher has reached its usage limit")
	}
	if v.MinimumOrderAmount != nil && subtotal.LessThan(*v.MinimumOrderAmount) {
		return pkgerrors.New(pkgerrors.CodeValidation, "Minimum order amount not met for this voucher")
	}
	return nil
}
