package checkout

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wildmart/wildmart-go/internal/api"
	"github.com/wildmart/wildmart-go/internal/cart"
	pkgerrors "github.com/wildmart/wildmart-go/pkg/errors"
	"github.com/wildmart/wildmart-go/pkg/logger"
)

// State is the checkout submission lifecycle:
// idle → validating → submitting → back to idle (with an error on
// failure; success hands the receipt to the caller for navigation).
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
)

// PaymentMethods are the options the checkout form offers.
var PaymentMethods = []string{"Cash on Delivery", "GCash", "Bank Transfer"}

type checkoutAPI interface {
	ListVouchers(ctx context.Context) ([]api.VoucherPayload, error)
	Checkout(ctx context.Context, req api.CheckoutRequest) (*api.OrderPayload, error)
}

// Session prices a single-seller checkout and places the order. It holds
// the item set handed over from the cart, the fetched voucher list, and
// the one applied voucher.
type Session struct {
	api      checkoutAPI
	log      *logger.Logger
	validate *validator.Validate
	now      func() time.Time

	items    []cart.Item
	vouchers []Voucher
	applied  *Voucher
	state    State
}

// NewSession builds a checkout session over the handed-over items. The
// item set must be non-empty and single-seller; the cart engine enforces
// both before navigation, this re-checks on entry.
func NewSession(client checkoutAPI, log *logger.Logger, items []cart.Item) (*Session, error) {
	if client == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "api client is required")
	}
	if log == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	if len(items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "there is nothing to check out")
	}
	sellers := make(map[string]struct{})
	for _, item := range items {
		sellers[item.Product.SellerKey] = struct{}{}
	}
	if len(sellers) > 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "an order can only contain items from a single seller")
	}

	return &Session{
		api:      client,
		log:      log,
		validate: validator.New(),
		now:      time.Now,
		items:    items,
		state:    StateIdle,
	}, nil
}

// State reports where the submission lifecycle stands.
func (s *Session) State() State {
	return s.state
}

// Items returns the checkout item set.
func (s *Session) Items() []cart.Item {
	return s.items
}

// FetchVouchers loads the applicable voucher list.
func (s *Session) FetchVouchers(ctx context.Context) error {
	payloads, err := s.api.ListVouchers(ctx)
	if err != nil {
		s.log.Error(ctx, "fetch vouchers failed", err)
		return err
	}
	vouchers := make([]Voucher, 0, len(payloads))
	for _, payload := range payloads {
		vouchers = append(vouchers, VoucherFromPayload(payload))
	}
	s.vouchers = vouchers
	return nil
}

// ApplyVoucher looks the code up case-insensitively and validates it
// against the current subtotal. Applying a new voucher replaces the
// previous one.
func (s *Session) ApplyVoucher(code string) error {
	voucher, ok := FindVoucher(s.vouchers, code)
	if !ok {
		return pkgerrors.New(pkgerrors.CodeValidation, "Invalid voucher code")
	}
	if err := voucher.Validate(Subtotal(s.items), s.now()); err != nil {
		return err
	}
	s.applied = voucher
	return nil
}

// RemoveVoucher clears the applied voucher and re-enables manual entry.
func (s *Session) RemoveVoucher() {
	s.applied = nil
}

// AppliedVoucher returns the active voucher, or nil.
func (s *Session) AppliedVoucher() *Voucher {
	return s.applied
}

// Summary prices the session under the applied voucher.
func (s *Session) Summary() Summary {
	return Summarize(s.items, s.applied)
}

// PlaceOrderForm carries the user's shipping and payment choices.
type PlaceOrderForm struct {
	ShippingAddress string `validate:"required"`
	PaymentMethod   string `validate:"required"`
}

// PlaceOrder validates the form and submits once. While a submission is in
// flight further calls are refused, which is all the duplicate-order
// protection the client provides. Failures return to idle with the error;
// nothing retries automatically.
func (s *Session) PlaceOrder(ctx context.Context, form PlaceOrderForm) (*api.OrderPayload, error) {
	if s.state == StateSubmitting {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "an order submission is already in progress")
	}

	s.state = StateValidating
	form.ShippingAddress = strings.TrimSpace(form.ShippingAddress)
	if err := s.validate.Struct(form); err != nil {
		s.state = StateIdle
		if form.ShippingAddress == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "Please enter a shipping address")
		}
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Please select a payment method")
	}
	if !validPaymentMethod(form.PaymentMethod) {
		s.state = StateIdle
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Please select a payment method")
	}
	if s.applied != nil {
		if err := s.applied.Validate(Subtotal(s.items), s.now()); err != nil {
			s.state = StateIdle
			return nil, err
		}
	}

	req := api.CheckoutRequest{
		ShippingAddress: form.ShippingAddress,
		PaymentMethod:   form.PaymentMethod,
	}
	if s.applied != nil {
		req.VoucherCode = s.applied.DiscountCode
	}

	s.state = StateSubmitting
	receipt, err := s.api.Checkout(ctx, req)
	s.state = StateIdle
	if err != nil {
		s.log.Error(ctx, "place order failed", err)
		return nil, err
	}
	return receipt, nil
}

func validPaymentMethod(method string) bool {
	for _, candidate := range PaymentMethods {
		if candidate == method {
			return true
		}
	}
	return false
}

