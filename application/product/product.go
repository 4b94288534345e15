package product

import (
	"context"

	"github.com/muhammadheryan/student-marketplace/constant"
	"github.com/muhammadheryan/student-marketplace/model"
	productRepo "github.com/muhammadheryan/student-marketplace/repository/product"
	"github.com/muhammadheryan/student-marketplace/utils/errors"
	"github.com/muhammadheryan/student-marketplace/utils/logger"
	"go.uber.org/zap"
)

const (
	defaultPerPage = 10
	maxPerPage     = 50
)

type ProductApp interface {
	// ListProducts pages through listings open for sale, newest first.
	ListProducts(ctx context.Context, page, perPage int) (*model.ProductListResponse, error)
	GetProduct(ctx context.Context, id uint64) (*model.Product, error)
}

type productAppImpl struct {
	productRepo productRepo.ProductRepository
}

func NewProductApp(productRepo productRepo.ProductRepository) ProductApp {
	return &productAppImpl{productRepo: productRepo}
}

func (s *productAppImpl) ListProducts(ctx context.Context, page, perPage int) (*model.ProductListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	items, total, err := s.productRepo.List(ctx, page, perPage)
	if err != nil {
		logger.Error("[ListProducts] error productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ProductListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

// GetProduct hides listings that are deleted, unmoderated or no longer for
// sale behind ErrNotFound.
func (s *productAppImpl) GetProduct(ctx context.Context, id uint64) (*model.Product, error) {
	result, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if result == nil || !result.IsSearchable() {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return result, nil
}
