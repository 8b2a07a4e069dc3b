package category

import (
	"context"

	"go.uber.org/zap"

	"github.com/ShohjahonSohibov/Aberno/constant"
	"github.com/ShohjahonSohibov/Aberno/model"
	categoryrepo "github.com/ShohjahonSohibov/Aberno/repository/category"
	"github.com/ShohjahonSohibov/Aberno/utils/errors"
	"github.com/ShohjahonSohibov/Aberno/utils/logger"
)

type CategoryApp interface {
	CreateCategory(ctx context.Context, req *model.CategoryRequest) (*model.Category, error)
	ListCategories(ctx context.Context, filter model.ListFilter) (*model.Page[model.Category], error)
	GetCategory(ctx context.Context, id string) (*model.Category, error)
	UpdateCategory(ctx context.Context, id string, req *model.CategoryRequest) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type categoryAppImpl struct {
	categoryRepo categoryrepo.CategoryRepository
}

func NewCategoryApp(categoryRepo categoryrepo.CategoryRepository) CategoryApp {
	return &categoryAppImpl{categoryRepo: categoryRepo}
}

func (s *categoryAppImpl) CreateCategory(ctx context.Context, req *model.CategoryRequest) (*model.Category, error) {
	if req.Name.IsEmpty() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := s.checkName(ctx, req.Name, ""); err != nil {
		return nil, err
	}

	data := &model.Category{Name: req.Name, BrandID: req.Brand, IsActive: true}
	if req.IsActive != nil {
		data.IsActive = *req.IsActive
	}

	category, err := s.categoryRepo.Create(ctx, data)
	if err != nil {
		logger.Error("[CreateCategory] error categoryRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return category, nil
}

func (s *categoryAppImpl) ListCategories(ctx context.Context, filter model.ListFilter) (*model.Page[model.Category], error) {
	filter.Normalize()
	items, total, err := s.categoryRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListCategories] error categoryRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return model.NewPage(items, total, filter), nil
}

func (s *categoryAppImpl) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetCategory] error categoryRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if category == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return category, nil
}

func (s *categoryAppImpl) UpdateCategory(ctx context.Context, id string, req *model.CategoryRequest) (*model.Category, error) {
	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	name := category.Name.Merge(req.Name)
	if name != category.Name {
		if err := s.checkName(ctx, name, id); err != nil {
			return nil, err
		}
		category.Name = name
	}
	if req.Brand != "" {
		category.BrandID = req.Brand
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		logger.Error("[UpdateCategory] error categoryRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return s.GetCategory(ctx, id)
}

func (s *categoryAppImpl) DeleteCategory(ctx context.Context, id string) error {
	if _, err := s.GetCategory(ctx, id); err != nil {
		return err
	}
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteCategory] error categoryRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *categoryAppImpl) checkName(ctx context.Context, name model.LocalizedText, excludeID string) error {
	exists, err := s.categoryRepo.ExistsByName(ctx, name, excludeID)
	if err != nil {
		logger.Error("[checkName] error categoryRepo.ExistsByName", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if exists {
		return errors.SetCustomError(constant.ErrAlreadyExists)
	}
	return nil
}
