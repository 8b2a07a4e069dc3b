package postcategory

import (
	"context"

	"go.uber.org/zap"

	"github.com/ShohjahonSohibov/Aberno/constant"
	"github.com/ShohjahonSohibov/Aberno/model"
	postcategoryrepo "github.com/ShohjahonSohibov/Aberno/repository/postcategory"
	"github.com/ShohjahonSohibov/Aberno/utils/errors"
	"github.com/ShohjahonSohibov/Aberno/utils/logger"
)

type PostCategoryApp interface {
	CreatePostCategory(ctx context.Context, req *model.NamedRequest) (*model.PostCategory, error)
	ListPostCategories(ctx context.Context, filter model.ListFilter) (*model.Page[model.PostCategory], error)
	GetPostCategory(ctx context.Context, id string) (*model.PostCategory, error)
	UpdatePostCategory(ctx context.Context, id string, req *model.NamedRequest) (*model.PostCategory, error)
	DeletePostCategory(ctx context.Context, id string) error
}

type postCategoryAppImpl struct {
	postCategoryRepo postcategoryrepo.PostCategoryRepository
}

func NewPostCategoryApp(postCategoryRepo postcategoryrepo.PostCategoryRepository) PostCategoryApp {
	return &postCategoryAppImpl{postCategoryRepo: postCategoryRepo}
}

func (s *postCategoryAppImpl) CreatePostCategory(ctx context.Context, req *model.NamedRequest) (*model.PostCategory, error) {
	if req.Name.IsEmpty() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := s.checkName(ctx, req.Name, ""); err != nil {
		return nil, err
	}

	data := &model.PostCategory{Name: req.Name, IsActive: true}
	if req.IsActive != nil {
		data.IsActive = *req.IsActive
	}

	postCategory, err := s.postCategoryRepo.Create(ctx, data)
	if err != nil {
		logger.Error("[CreatePostCategory] error postCategoryRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return postCategory, nil
}

func (s *postCategoryAppImpl) ListPostCategories(ctx context.Context, filter model.ListFilter) (*model.Page[model.PostCategory], error) {
	filter.Normalize()
	items, total, err := s.postCategoryRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListPostCategories] error postCategoryRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return model.NewPage(items, total, filter), nil
}

func (s *postCategoryAppImpl) GetPostCategory(ctx context.Context, id string) (*model.PostCategory, error) {
	postCategory, err := s.postCategoryRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetPostCategory] error postCategoryRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if postCategory == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return postCategory, nil
}

func (s *postCategoryAppImpl) UpdatePostCategory(ctx context.Context, id string, req *model.NamedRequest) (*model.PostCategory, error) {
	postCategory, err := s.GetPostCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	name := postCategory.Name.Merge(req.Name)
	if name != postCategory.Name {
		if err := s.checkName(ctx, name, id); err != nil {
			return nil, err
		}
		postCategory.Name = name
	}
	if req.IsActive != nil {
		postCategory.IsActive = *req.IsActive
	}

	if err := s.postCategoryRepo.Update(ctx, postCategory); err != nil {
		logger.Error("[UpdatePostCategory] error postCategoryRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return postCategory, nil
}

func (s *postCategoryAppImpl) DeletePostCategory(ctx context.Context, id string) error {
	if _, err := s.GetPostCategory(ctx, id); err != nil {
		return err
	}
	if err := s.postCategoryRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeletePostCategory] error postCategoryRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *postCategoryAppImpl) checkName(ctx context.Context, name model.LocalizedText, excludeID string) error {
	exists, err := s.postCategoryRepo.ExistsByName(ctx, name, excludeID)
	if err != nil {
		logger.Error("[checkName] error postCategoryRepo.ExistsByName", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if exists {
		return errors.SetCustomError(constant.ErrAlreadyExists)
	}
	return nil
}
