package products

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/wildmart/wildmart-go/internal/api"
	"github.com/wildmart/wildmart-go/internal/catalog"
	"github.com/wildmart/wildmart-go/internal/orders"
	pkgerrors "github.com/wildmart/wildmart-go/pkg/errors"
	"github.com/wildmart/wildmart-go/pkg/logger"
)

type sellerAPI interface {
	ListMyProducts(ctx context.Context) ([]api.ProductPayload, error)
	CreateProduct(ctx context.Context, input api.ProductInput) (*api.ProductPayload, error)
	UpdateProduct(ctx context.Context, productID int64, input api.ProductInput) (*api.ProductPayload, error)
	DeleteProduct(ctx context.Context, productID int64) error
	ListSales(ctx context.Context) ([]api.OrderPayload, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status string) error
}

// Service drives the seller management views: product CRUD, the sales
// list, and per-order status moves.
type Service struct {
	api      sellerAPI
	log      *logger.Logger
	validate *validator.Validate
}

// NewService builds the seller management service.
func NewService(client sellerAPI, log *logger.Logger) (*Service, error) {
	if client == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "api client is required")
	}
	if log == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &Service{
		api:      client,
		log:      log,
		validate: validator.New(),
	}, nil
}

// ProductForm carries the create/edit product inputs.
type ProductForm struct {
	Name              string `validate:"required,max=120"`
	Description       string `validate:"max=2000"`
	Category          string `validate:"required"`
	Price             decimal.Decimal
	QuantityAvailable int    `validate:"min=0"`
	ImageURL          string `validate:"omitempty,url"`
}

func (s *Service) checkForm(form ProductForm) error {
	form.Name = strings.TrimSpace(form.Name)
	if err := s.validate.Struct(form); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "please fill in the required product fields")
	}
	if !form.Price.IsPositive() {
		return pkgerrors.New(pkgerrors.CodeValidation, "price must be greater than zero")
	}
	return nil
}

func toInput(form ProductForm) api.ProductInput {
	return api.ProductInput{
		ProductName:       strings.TrimSpace(form.Name),
		Description:       strings.TrimSpace(form.Description),
		Category:          form.Category,
		Price:             form.Price,
		QuantityAvailable: form.QuantityAvailable,
		ImageURL:          form.ImageURL,
	}
}

// Mine fetches the caller's own listings.
func (s *Service) Mine(ctx context.Context) ([]catalog.Product, error) {
	payloads, err := s.api.ListMyProducts(ctx)
	if err != nil {
		s.log.Error(ctx, "fetch own products failed", err)
		return nil, err
	}
	return catalog.NormalizeAll(payloads), nil
}

// Create validates the form and lists the product.
func (s *Service) Create(ctx context.Context, form ProductForm) (*catalog.Product, error) {
	if err := s.checkForm(form); err != nil {
		return nil, err
	}
	payload, err := s.api.CreateProduct(ctx, toInput(form))
	if err != nil {
		return nil, err
	}
	product := catalog.Normalize(*payload)
	return &product, nil
}

// Update validates the form and replaces the product's mutable fields.
func (s *Service) Update(ctx context.Context, productID int64, form ProductForm) (*catalog.Product, error) {
	if err := s.checkForm(form); err != nil {
		return nil, err
	}
	payload, err := s.api.UpdateProduct(ctx, productID, toInput(form))
	if err != nil {
		return nil, err
	}
	product := catalog.Normalize(*payload)
	return &product, nil
}

// Delete removes one of the caller's listings.
func (s *Service) Delete(ctx context.Context, productID int64) error {
	return s.api.DeleteProduct(ctx, productID)
}

// Sales fetches orders containing the caller's products.
func (s *Service) Sales(ctx context.Context) ([]orders.Order, error) {
	payloads, err := s.api.ListSales(ctx)
	if err != nil {
		s.log.Error(ctx, "fetch sales failed", err)
		return nil, err
	}
	return orders.FromPayloads(payloads), nil
}

// AdvanceSale moves a sale to the next status. Invalid transitions are
// refused before any network call.
func (s *Service) AdvanceSale(ctx context.Context, order orders.Order, to orders.Status) error {
	if !orders.CanTransition(order.Status, to) {
		return pkgerrors.New(pkgerrors.CodeValidation, "that status change is not allowed")
	}
	return s.api.UpdateOrderStatus(ctx, order.ID, string(to))
}
