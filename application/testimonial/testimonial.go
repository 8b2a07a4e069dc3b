package testimonial

import (
	"context"

	"go.uber.org/zap"

	"github.com/ShohjahonSohibov/Aberno/constant"
	"github.com/ShohjahonSohibov/Aberno/model"
	testimonialrepo "github.com/ShohjahonSohibov/Aberno/repository/testimonial"
	"github.com/ShohjahonSohibov/Aberno/utils/errors"
	"github.com/ShohjahonSohibov/Aberno/utils/logger"
)

type TestimonialApp interface {
	CreateTestimonial(ctx context.Context, req *model.TestimonialRequest) (*model.Testimonial, error)
	ListTestimonials(ctx context.Context, filter model.ListFilter) (*model.Page[model.Testimonial], error)
	GetTestimonial(ctx context.Context, id string) (*model.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id string, req *model.TestimonialRequest) (*model.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id string) error
}

type testimonialAppImpl struct {
	testimonialRepo testimonialrepo.TestimonialRepository
}

func NewTestimonialApp(testimonialRepo testimonialrepo.TestimonialRepository) TestimonialApp {
	return &testimonialAppImpl{testimonialRepo: testimonialRepo}
}

func (s *testimonialAppImpl) CreateTestimonial(ctx context.Context, req *model.TestimonialRequest) (*model.Testimonial, error) {
	data := &model.Testimonial{
		Fullname: req.Fullname,
		Title:    req.Title,
		Content:  req.Content,
		Image:    req.Image,
		IsActive: true,
	}
	if req.Rate != nil {
		data.Rate = *req.Rate
	}
	if req.IsActive != nil {
		data.IsActive = *req.IsActive
	}

	result, err := s.testimonialRepo.Create(ctx, data)
	if err != nil {
		logger.Error("[CreateTestimonial] error testimonialRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return result, nil
}

func (s *testimonialAppImpl) ListTestimonials(ctx context.Context, filter model.ListFilter) (*model.Page[model.Testimonial], error) {
	filter.Normalize()
	items, total, err := s.testimonialRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListTestimonials] error testimonialRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return model.NewPage(items, total, filter), nil
}

func (s *testimonialAppImpl) GetTestimonial(ctx context.Context, id string) (*model.Testimonial, error) {
	result, err := s.testimonialRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetTestimonial] error testimonialRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if result == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return result, nil
}

func (s *testimonialAppImpl) UpdateTestimonial(ctx context.Context, id string, req *model.TestimonialRequest) (*model.Testimonial, error) {
	result, err := s.GetTestimonial(ctx, id)
	if err != nil {
		return nil, err
	}

	result.Fullname = result.Fullname.Merge(req.Fullname)
	result.Title = result.Title.Merge(req.Title)
	result.Content = result.Content.Merge(req.Content)
	if req.Image != "" {
		result.Image = req.Image
	}
	if req.Rate != nil {
		result.Rate = *req.Rate
	}
	if req.IsActive != nil {
		result.IsActive = *req.IsActive
	}

	if err := s.testimonialRepo.Update(ctx, result); err != nil {
		logger.Error("[UpdateTestimonial] error testimonialRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return result, nil
}

func (s *testimonialAppImpl) DeleteTestimonial(ctx context.Context, id string) error {
	if _, err := s.GetTestimonial(ctx, id); err != nil {
		return err
	}
	if err := s.testimonialRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteTestimonial] error testimonialRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
