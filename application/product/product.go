package product

import (
	"context"

	"go.uber.org/zap"

	"github.com/ShohjahonSohibov/Aberno/constant"
	"github.com/ShohjahonSohibov/Aberno/model"
	productRepo "github.com/ShohjahonSohibov/Aberno/repository/product"
	"github.com/ShohjahonSohibov/Aberno/utils/errors"
	"github.com/ShohjahonSohibov/Aberno/utils/logger"
)

type ProductApp interface {
	CreateProduct(ctx context.Context, req *model.ProductRequest) (*model.Product, error)
	ListProducts(ctx context.Context, filter model.ListFilter) (*model.Page[model.Product], error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, req *model.ProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type productAppImpl struct {
	productRepo productRepo.ProductRepository
}

func NewProductApp(productRepo productRepo.ProductRepository) ProductApp {
	return &productAppImpl{productRepo: productRepo}
}

func (s *productAppImpl) CreateProduct(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	data := &model.Product{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		Image:            req.Image,
		CategoryID:       req.Category,
		IsActive:         true,
	}
	if req.Rate != nil {
		data.Rate = *req.Rate
	}
	if req.IsActive != nil {
		data.IsActive = *req.IsActive
	}

	result, err := s.productRepo.Create(ctx, data)
	if err != nil {
		logger.Error("[CreateProduct] error productRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return result, nil
}

func (s *productAppImpl) ListProducts(ctx context.Context, filter model.ListFilter) (*model.Page[model.Product], error) {
	filter.Normalize()
	items, total, err := s.productRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListProducts] error productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return model.NewPage(items, total, filter), nil
}

func (s *productAppImpl) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	result, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if result == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return result, nil
}

// UpdateProduct overwrites only the fields present in req.
func (s *productAppImpl) UpdateProduct(ctx context.Context, id string, req *model.ProductRequest) (*model.Product, error) {
	result, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	result.Title = result.Title.Merge(req.Title)
	result.ShortDescription = result.ShortDescription.Merge(req.ShortDescription)
	result.Description = result.Description.Merge(req.Description)
	if req.Image != "" {
		result.Image = req.Image
	}
	if req.Category != "" {
		result.CategoryID = req.Category
	}
	if req.Rate != nil {
		result.Rate = *req.Rate
	}
	if req.IsActive != nil {
		result.IsActive = *req.IsActive
	}

	if err := s.productRepo.Update(ctx, result); err != nil {
		logger.Error("[UpdateProduct] error productRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return s.GetProduct(ctx, id)
}

func (s *productAppImpl) DeleteProduct(ctx context.Context, id string) error {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return err
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteProduct] error productRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
