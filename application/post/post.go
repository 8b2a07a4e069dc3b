package post

import (
	"context"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/ShohjahonSohibov/Aberno/constant"
	"github.com/ShohjahonSohibov/Aberno/model"
	commentrepo "github.com/ShohjahonSohibov/Aberno/repository/comment"
	postrepo "github.com/ShohjahonSohibov/Aberno/repository/post"
	"github.com/ShohjahonSohibov/Aberno/utils/errors"
	"github.com/ShohjahonSohibov/Aberno/utils/logger"
)

type PostApp interface {
	// CreatePost credits callerID as author when req names none.
	CreatePost(ctx context.Context, callerID string, req *model.PostRequest) (*model.Post, error)
	ListPosts(ctx context.Context, filter model.ListFilter) (*model.Page[model.Post], error)
	// GetPost returns the post with its active comments.
	GetPost(ctx context.Context, id string) (*model.Post, error)
	UpdatePost(ctx context.Context, callerID, id string, req *model.PostRequest) (*model.Post, error)
	DeletePost(ctx context.Context, callerID, id string) error
}

type postAppImpl struct {
	postRepo    postrepo.PostRepository
	commentRepo commentrepo.CommentRepository
	now         func() time.Time
}

func NewPostApp(postRepo postrepo.PostRepository, commentRepo commentrepo.CommentRepository) PostApp {
	return &postAppImpl{postRepo: postRepo, commentRepo: commentRepo, now: time.Now}
}

func (s *postAppImpl) CreatePost(ctx context.Context, callerID string, req *model.PostRequest) (*model.Post, error) {
	if req.Title.IsEmpty() || req.Content.IsEmpty() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	data := &model.Post{
		Title:       req.Title,
		Content:     req.Content,
		Image:       req.Image,
		PublishedAt: req.PublishedAt,
		ScheduledAt: req.ScheduledAt,
		Status:      constant.PostStatusDraft,
		IsActive:    true,
	}
	if data.PublishedAt == nil {
		now := s.now().UTC()
		data.PublishedAt = &now
	}
	if req.Status != "" {
		data.Status = constant.PostStatus(req.Status)
	}
	if req.IsActive != nil {
		data.IsActive = *req.IsActive
	}

	authors := req.Author
	if len(authors) == 0 {
		authors = []string{callerID}
	}
	refs := model.PostRefs{
		Authors:    authors,
		Categories: req.Category,
		Brands:     req.Brand,
		Tags:       req.Tags,
	}

	created, err := s.postRepo.Create(ctx, data, refs)
	if err != nil {
		logger.Error("[CreatePost] error postRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return s.load(ctx, created.ID)
}

func (s *postAppImpl) ListPosts(ctx context.Context, filter model.ListFilter) (*model.Page[model.Post], error) {
	filter.Normalize()
	items, total, err := s.postRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListPosts] error postRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return model.NewPage(items, total, filter), nil
}

func (s *postAppImpl) GetPost(ctx context.Context, id string) (*model.Post, error) {
	result, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	active := true
	filter := model.ListFilter{PostID: id, IsActive: &active, Limit: model.MaxLimit}
	filter.Normalize()
	comments, _, err := s.commentRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[GetPost] error commentRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if comments == nil {
		comments = []model.Comment{}
	}
	result.Comments = comments
	return result, nil
}

func (s *postAppImpl) UpdatePost(ctx context.Context, callerID, id string, req *model.PostRequest) (*model.Post, error) {
	result, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkAuthor(ctx, callerID, id); err != nil {
		return nil, err
	}

	result.Title = result.Title.Merge(req.Title)
	result.Content = result.Content.Merge(req.Content)
	if req.Image != "" {
		result.Image = req.Image
	}
	if req.PublishedAt != nil {
		result.PublishedAt = req.PublishedAt
	}
	if req.ScheduledAt != nil {
		result.ScheduledAt = req.ScheduledAt
	}
	if req.Status != "" {
		result.Status = constant.PostStatus(req.Status)
	}
	if req.IsActive != nil {
		result.IsActive = *req.IsActive
	}

	// nil reference lists are left untouched
	refs := model.PostRefs{
		Authors:    req.Author,
		Categories: req.Category,
		Brands:     req.Brand,
		Tags:       req.Tags,
	}
	if err := s.postRepo.Update(ctx, result, refs); err != nil {
		logger.Error("[UpdatePost] error postRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return s.load(ctx, id)
}

func (s *postAppImpl) DeletePost(ctx context.Context, callerID, id string) error {
	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	if err := s.checkAuthor(ctx, callerID, id); err != nil {
		return err
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeletePost] error postRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *postAppImpl) load(ctx context.Context, id string) (*model.Post, error) {
	result, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[load] error postRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if result == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return result, nil
}

// checkAuthor passes only when callerID is linked to the post as an author.
func (s *postAppImpl) checkAuthor(ctx context.Context, callerID, id string) error {
	authors, err := s.postRepo.AuthorIDs(ctx, id)
	if err != nil {
		logger.Error("[checkAuthor] error postRepo.AuthorIDs", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !slices.Contains(authors, callerID) {
		return errors.SetCustomError(constant.ErrForbidden)
	}
	return nil
}
