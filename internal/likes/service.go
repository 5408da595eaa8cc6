package likes

import (
	"context"

	"github.com/wildmart/wildmart-go/internal/api"
	"github.com/wildmart/wildmart-go/internal/catalog"
	pkgerrors "github.com/wildmart/wildmart-go/pkg/errors"
	"github.com/wildmart/wildmart-go/pkg/logger"
)

type likesAPI interface {
	ListLikedProducts(ctx context.Context) ([]api.ProductPayload, error)
	LikeProduct(ctx context.Context, productID int64) error
	UnlikeProduct(ctx context.Context, productID int64) error
}

// Service drives the liked-products view.
type Service struct {
	api likesAPI
	log *logger.Logger
}

// NewService builds the likes service.
func NewService(client likesAPI, log *logger.Logger) (*Service, error) {
	if client == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "api client is required")
	}
	if log == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &Service{api: client, log: log}, nil
}

// List fetches the products the caller has liked.
func (s *Service) List(ctx context.Context) ([]catalog.Product, error) {
	payloads, err := s.api.ListLikedProducts(ctx)
	if err != nil {
		s.log.Error(ctx, "fetch likes failed", err)
		return nil, err
	}
	return catalog.NormalizeAll(payloads), nil
}

// Like records a like.
func (s *Service) Like(ctx context.Context, productID int64) error {
	return s.api.LikeProduct(ctx, productID)
}

// Unlike removes a like.
func (s *Service) Unlike(ctx context.Context, productID int64) error {
	return s.api.UnlikeProduct(ctx, productID)
}
