package catalog

import (
	"context"

	"github.com/wildmart/wildmart-go/internal/api"
	pkgerrors "github.com/wildmart/wildmart-go/pkg/errors"
	"github.com/wildmart/wildmart-go/pkg/logger"
	"github.com/wildmart/wildmart-go/pkg/pagination"
)

type catalogAPI interface {
	ListProducts(ctx context.Context, page pagination.Params) ([]api.ProductPayload, error)
	GetProduct(ctx context.Context, productID int64) (*api.ProductPayload, error)
	LikeProduct(ctx context.Context, productID int64) error
	UnlikeProduct(ctx context.Context, productID int64) error
	AddToCart(ctx context.Context, productID int64, quantity int) (*api.AddToCartResult, error)
}

// Service drives the catalog and product-detail views. It holds the last
// fetched product list; filtering and sorting happen locally over it.
type Service struct {
	api      catalogAPI
	log      *logger.Logger
	products []Product
}

// NewService builds the catalog service.
func NewService(client catalogAPI, log *logger.Logger) (*Service, error) {
	if client == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "api client is required")
	}
	if log == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &Service{api: client, log: log}, nil
}

// Fetch replaces the cached catalog with a fresh page. On failure the prior
// list is kept; the user refreshes manually.
func (s *Service) Fetch(ctx context.Context, page pagination.Params) error {
	payloads, err := s.api.ListProducts(ctx, page)
	if err != nil {
		s.log.Error(ctx, "fetch catalog failed", err)
		return err
	}
	s.products = NormalizeAll(payloads)
	return nil
}

// Products returns the cached catalog.
func (s *Service) Products() []Product {
	return s.products
}

// Visible applies the filter over the cached catalog.
func (s *Service) Visible(filter Filter) []Product {
	return filter.Apply(s.products)
}

// Detail fetches one product fresh from the API.
func (s *Service) Detail(ctx context.Context, productID int64) (*Product, error) {
	payload, err := s.api.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	product := Normalize(*payload)
	return &product, nil
}

// SetLiked records or removes a like for the product.
func (s *Service) SetLiked(ctx context.Context, productID int64, liked bool) error {
	if liked {
		return s.api.LikeProduct(ctx, productID)
	}
	return s.api.UnlikeProduct(ctx, productID)
}

// AddToCart validates the requested quantity against the product's stock
// before issuing the call; server-side stock errors still surface verbatim.
func (s *Service) AddToCart(ctx context.Context, product Product, quantity int) (*api.AddToCartResult, error) {
	if quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}
	if quantity > product.QuantityAvailable {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "requested quantity exceeds available stock")
	}
	return s.api.AddToCart(ctx, product.ID, quantity)
}
