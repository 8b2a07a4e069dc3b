package tag

import (
	"context"

	"go.uber.org/zap"

	"github.com/ShohjahonSohibov/Aberno/constant"
	"github.com/ShohjahonSohibov/Aberno/model"
	tagrepo "github.com/ShohjahonSohibov/Aberno/repository/tag"
	"github.com/ShohjahonSohibov/Aberno/utils/errors"
	"github.com/ShohjahonSohibov/Aberno/utils/logger"
)

type TagApp interface {
	CreateTag(ctx context.Context, req *model.NamedRequest) (*model.Tag, error)
	ListTags(ctx context.Context, filter model.ListFilter) (*model.Page[model.Tag], error)
	GetTag(ctx context.Context, id string) (*model.Tag, error)
	UpdateTag(ctx context.Context, id string, req *model.NamedRequest) (*model.Tag, error)
	DeleteTag(ctx context.Context, id string) error
}

type tagAppImpl struct {
	tagRepo tagrepo.TagRepository
}

func NewTagApp(tagRepo tagrepo.TagRepository) TagApp {
	return &tagAppImpl{tagRepo: tagRepo}
}

func (s *tagAppImpl) CreateTag(ctx context.Context, req *model.NamedRequest) (*model.Tag, error) {
	if req.Name.IsEmpty() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := s.checkName(ctx, req.Name, ""); err != nil {
		return nil, err
	}

	data := &model.Tag{Name: req.Name, IsActive: true}
	if req.IsActive != nil {
		data.IsActive = *req.IsActive
	}

	tag, err := s.tagRepo.Create(ctx, data)
	if err != nil {
		logger.Error("[CreateTag] error tagRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return tag, nil
}

func (s *tagAppImpl) ListTags(ctx context.Context, filter model.ListFilter) (*model.Page[model.Tag], error) {
	filter.Normalize()
	items, total, err := s.tagRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListTags] error tagRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return model.NewPage(items, total, filter), nil
}

func (s *tagAppImpl) GetTag(ctx context.Context, id string) (*model.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetTag] error tagRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if tag == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return tag, nil
}

func (s *tagAppImpl) UpdateTag(ctx context.Context, id string, req *model.NamedRequest) (*model.Tag, error) {
	tag, err := s.GetTag(ctx, id)
	if err != nil {
		return nil, err
	}

	name := tag.Name.Merge(req.Name)
	if name != tag.Name {
		if err := s.checkName(ctx, name, id); err != nil {
			return nil, err
		}
		tag.Name = name
	}
	if req.IsActive != nil {
		tag.IsActive = *req.IsActive
	}

	if err := s.tagRepo.Update(ctx, tag); err != nil {
		logger.Error("[UpdateTag] error tagRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return tag, nil
}

func (s *tagAppImpl) DeleteTag(ctx context.Context, id string) error {
	if _, err := s.GetTag(ctx, id); err != nil {
		return err
	}
	if err := s.tagRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteTag] error tagRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *tagAppImpl) checkName(ctx context.Context, name model.LocalizedText, excludeID string) error {
	exists, err := s.tagRepo.ExistsByName(ctx, name, excludeID)
	if err != nil {
		logger.Error("[checkName] error tagRepo.ExistsByName", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if exists {
		return errors.SetCustomError(constant.ErrAlreadyExists)
	}
	return nil
}
