package orders

import (
	"context"

	"github.com/wildmart/wildmart-go/internal/api"
	"github.com/wildmart/wildmart-go/internal/media"
	pkgerrors "github.com/wildmart/wildmart-go/pkg/errors"
	"github.com/wildmart/wildmart-go/pkg/logger"
)

type ordersAPI interface {
	ListOrders(ctx context.Context) ([]api.OrderPayload, error)
	GetOrder(ctx context.Context, orderID int64) (*api.OrderPayload, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status string) error
}

// Service drives the buyer-side order views.
type Service struct {
	api ordersAPI
	log *logger.Logger
}

// NewService builds the orders service.
func NewService(client ordersAPI, log *logger.Logger) (*Service, error) {
	if client == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "api client is required")
	}
	if log == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &Service{api: client, log: log}, nil
}

// List fetches the caller's orders.
func (s *Service) List(ctx context.Context) ([]Order, error) {
	payloads, err := s.api.ListOrders(ctx)
	if err != nil {
		s.log.Error(ctx, "fetch orders failed", err)
		return nil, err
	}
	return FromPayloads(payloads), nil
}

// Get fetches one order.
func (s *Service) Get(ctx context.Context, orderID int64) (*Order, error) {
	payload, err := s.api.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order := FromPayload(*payload)
	return &order, nil
}

// Cancel transitions a pending order to cancelled. Anything past pending
// is already with the seller and can only be cancelled by them.
func (s *Service) Cancel(ctx context.Context, order Order) error {
	if order.Status != StatusPending {
		return pkgerrors.New(pkgerrors.CodeValidation, "only pending orders can be cancelled")
	}
	return s.api.UpdateOrderStatus(ctx, order.ID, string(StatusCancelled))
}

// ConfirmDelivery marks a shipped order delivered. The confirmation
// dialog stages a validated photo first; the staged image accompanies the
// caller's proof-of-delivery upload, which lives outside this client.
func (s *Service) ConfirmDelivery(ctx context.Context, order Order, photo *media.StagedImage) error {
	if photo == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "Please choose an image")
	}
	if order.Status != StatusShipped {
		return pkgerrors.New(pkgerrors.CodeValidation, "only shipped orders can be confirmed as delivered")
	}
	return s.api.UpdateOrderStatus(ctx, order.ID, string(StatusDelivered))
}
