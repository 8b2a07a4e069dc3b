package brand

import (
	"context"

	"go.uber.org/zap"

	"github.com/ShohjahonSohibov/Aberno/constant"
	"github.com/ShohjahonSohibov/Aberno/model"
	brandrepo "github.com/ShohjahonSohibov/Aberno/repository/brand"
	"github.com/ShohjahonSohibov/Aberno/utils/errors"
	"github.com/ShohjahonSohibov/Aberno/utils/logger"
)

type BrandApp interface {
	CreateBrand(ctx context.Context, req *model.NamedRequest) (*model.Brand, error)
	ListBrands(ctx context.Context, filter model.ListFilter) (*model.Page[model.Brand], error)
	// ListBrandsWithCategories returns active brands only.
	ListBrandsWithCategories(ctx context.Context, filter model.ListFilter) (*model.Page[model.BrandWithCategories], error)
	GetBrand(ctx context.Context, id string) (*model.Brand, error)
	UpdateBrand(ctx context.Context, id string, req *model.NamedRequest) (*model.Brand, error)
	DeleteBrand(ctx context.Context, id string) error
}

type brandAppImpl struct {
	brandRepo brandrepo.BrandRepository
}

func NewBrandApp(brandRepo brandrepo.BrandRepository) BrandApp {
	return &brandAppImpl{brandRepo: brandRepo}
}

func (s *brandAppImpl) CreateBrand(ctx context.Context, req *model.NamedRequest) (*model.Brand, error) {
	if req.Name.IsEmpty() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := s.checkName(ctx, req.Name, ""); err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	brand, err := s.brandRepo.Create(ctx, &model.Brand{Name: req.Name, IsActive: isActive})
	if err != nil {
		logger.Error("[CreateBrand] error brandRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return brand, nil
}

func (s *brandAppImpl) ListBrands(ctx context.Context, filter model.ListFilter) (*model.Page[model.Brand], error) {
	filter.Normalize()
	items, total, err := s.brandRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListBrands] error brandRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return model.NewPage(items, total, filter), nil
}

func (s *brandAppImpl) ListBrandsWithCategories(ctx context.Context, filter model.ListFilter) (*model.Page[model.BrandWithCategories], error) {
	active := true
	filter.IsActive = &active
	filter.Normalize()

	items, total, err := s.brandRepo.ListWithCategories(ctx, filter)
	if err != nil {
		logger.Error("[ListBrandsWithCategories] error brandRepo.ListWithCategories", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return model.NewPage(items, total, filter), nil
}

func (s *brandAppImpl) GetBrand(ctx context.Context, id string) (*model.Brand, error) {
	brand, err := s.brandRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetBrand] error brandRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if brand == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return brand, nil
}

func (s *brandAppImpl) UpdateBrand(ctx context.Context, id string, req *model.NamedRequest) (*model.Brand, error) {
	if req.Name.IsEmpty() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	brand, err := s.GetBrand(ctx, id)
	if err != nil {
		return nil, err
	}

	name := brand.Name.Merge(req.Name)
	if name != brand.Name {
		if err := s.checkName(ctx, name, id); err != nil {
			return nil, err
		}
		brand.Name = name
	}
	if req.IsActive != nil {
		brand.IsActive = *req.IsActive
	}

	if err := s.brandRepo.Update(ctx, brand); err != nil {
		logger.Error("[UpdateBrand] error brandRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return brand, nil
}

func (s *brandAppImpl) DeleteBrand(ctx context.Context, id string) error {
	if _, err := s.GetBrand(ctx, id); err != nil {
		return err
	}
	if err := s.brandRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteBrand] error brandRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *brandAppImpl) checkName(ctx context.Context, name model.LocalizedText, excludeID string) error {
	exists, err := s.brandRepo.ExistsByName(ctx, name, excludeID)
	if err != nil {
		logger.Error("[checkName] error brandRepo.ExistsByName", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if exists {
		return errors.SetCustomError(constant.ErrAlreadyExists)
	}
	return nil
}
