package comment

import (
	"context"

	"go.uber.org/zap"

	"github.com/ShohjahonSohibov/Aberno/constant"
	"github.com/ShohjahonSohibov/Aberno/model"
	adminrepo "github.com/ShohjahonSohibov/Aberno/repository/admin"
	commentrepo "github.com/ShohjahonSohibov/Aberno/repository/comment"
	utilsContext "github.com/ShohjahonSohibov/Aberno/utils/context"
	"github.com/ShohjahonSohibov/Aberno/utils/errors"
	"github.com/ShohjahonSohibov/Aberno/utils/logger"
)

type CommentApp interface {
	// CreateComment records a comment authored by a user; admin tokens are refused.
	CreateComment(ctx context.Context, authorID string, req *model.CommentRequest) (*model.Comment, error)
	ListComments(ctx context.Context, filter model.ListFilter) (*model.Page[model.Comment], error)
	GetComment(ctx context.Context, id string) (*model.Comment, error)
	// UpdateComment is open to the author and to admins; only admins may toggle isActive.
	UpdateComment(ctx context.Context, callerID, id string, req *model.UpdateCommentRequest) (*model.Comment, error)
	DeleteComment(ctx context.Context, callerID, id string) error
}

type commentAppImpl struct {
	commentRepo commentrepo.CommentRepository
	adminRepo   adminrepo.AdminRepository
}

func NewCommentApp(commentRepo commentrepo.CommentRepository, adminRepo adminrepo.AdminRepository) CommentApp {
	return &commentAppImpl{commentRepo: commentRepo, adminRepo: adminRepo}
}

func (s *commentAppImpl) CreateComment(ctx context.Context, authorID string, req *model.CommentRequest) (*model.Comment, error) {
	// authors are resolved from users only
	if role, ok := utilsContext.GetRole(ctx); ok && role != constant.RoleUser {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	data := &model.Comment{
		Content:   req.Content,
		AuthorID:  authorID,
		PostID:    req.Post,
		ProductID: req.Product,
		IsActive:  true,
	}
	if req.Rate != nil {
		data.Rate = *req.Rate
	}

	result, err := s.commentRepo.Create(ctx, data)
	if err != nil {
		logger.Error("[CreateComment] error commentRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return result, nil
}

func (s *commentAppImpl) ListComments(ctx context.Context, filter model.ListFilter) (*model.Page[model.Comment], error) {
	filter.Normalize()
	items, total, err := s.commentRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListComments] error commentRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return model.NewPage(items, total, filter), nil
}

func (s *commentAppImpl) GetComment(ctx context.Context, id string) (*model.Comment, error) {
	result, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetComment] error commentRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if result == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return result, nil
}

func (s *commentAppImpl) UpdateComment(ctx context.Context, callerID, id string, req *model.UpdateCommentRequest) (*model.Comment, error) {
	result, err := s.GetComment(ctx, id)
	if err != nil {
		return nil, err
	}

	toggles := req.IsActive != nil && *req.IsActive != result.IsActive
	if toggles || callerID != result.AuthorID {
		admin, err := s.isAdmin(ctx, callerID)
		if err != nil {
			return nil, err
		}
		if !admin {
			return nil, errors.SetCustomError(constant.ErrForbidden)
		}
	}

	if req.Content != "" {
		result.Content = req.Content
	}
	if req.Rate != nil {
		result.Rate = *req.Rate
	}
	if req.IsActive != nil {
		result.IsActive = *req.IsActive
	}

	if err := s.commentRepo.Update(ctx, result); err != nil {
		logger.Error("[UpdateComment] error commentRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return result, nil
}

func (s *commentAppImpl) DeleteComment(ctx context.Context, callerID, id string) error {
	result, err := s.GetComment(ctx, id)
	if err != nil {
		return err
	}

	if callerID != result.AuthorID {
		admin, err := s.isAdmin(ctx, callerID)
		if err != nil {
			return err
		}
		if !admin {
			return errors.SetCustomError(constant.ErrForbidden)
		}
	}

	if err := s.commentRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteComment] error commentRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *commentAppImpl) isAdmin(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, nil
	}
	if role, ok := utilsContext.GetRole(ctx); ok && role == constant.RoleUser {
		return false, nil
	}
	admin, err := s.adminRepo.Get(ctx, &model.AdminFilter{ID: id})
	if err != nil {
		logger.Error("[isAdmin] error adminRepo.Get", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	return admin != nil && admin.Type == constant.RoleAdmin, nil
}
