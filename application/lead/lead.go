package lead

import (
	"context"

	"go.uber.org/zap"

	"github.com/ShohjahonSohibov/Aberno/constant"
	"github.com/ShohjahonSohibov/Aberno/model"
	leadrepo "github.com/ShohjahonSohibov/Aberno/repository/lead"
	"github.com/ShohjahonSohibov/Aberno/thirdparty/rabbitmq"
	"github.com/ShohjahonSohibov/Aberno/utils/errors"
	"github.com/ShohjahonSohibov/Aberno/utils/logger"
)

type LeadApp interface {
	CreateLead(ctx context.Context, req *model.CreateLeadRequest) (*model.Lead, error)
	ListLeads(ctx context.Context, filter model.ListFilter) (*model.Page[model.Lead], error)
	GetLead(ctx context.Context, id string) (*model.Lead, error)
	UpdateLead(ctx context.Context, id string, req *model.UpdateLeadRequest) (*model.Lead, error)
	UpdateLeadStatus(ctx context.Context, id, status string) (*model.Lead, error)
	DeleteLead(ctx context.Context, id string) error
}

type Publisher interface {
	PublishLeadCreated(ctx context.Context, msg rabbitmq.LeadCreatedMessage) error
}

type leadAppImpl struct {
	leadRepo  leadrepo.LeadRepository
	publisher Publisher
}

// NewLeadApp accepts a nil publisher; lead events are then not emitted.
func NewLeadApp(leadRepo leadrepo.LeadRepository, publisher Publisher) LeadApp {
	return &leadAppImpl{leadRepo: leadRepo, publisher: publisher}
}

func (s *leadAppImpl) CreateLead(ctx context.Context, req *model.CreateLeadRequest) (*model.Lead, error) {
	status := constant.LeadStatusNew
	if req.Status != "" {
		status = constant.LeadStatus(req.Status)
	}

	lead, err := s.leadRepo.Create(ctx, &model.Lead{
		Name:     req.Name,
		Text:     req.Text,
		Phone:    req.Phone,
		Email:    req.Email,
		Status:   status,
		IsActive: true,
	})
	if err != nil {
		logger.Error("[CreateLead] error leadRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if s.publisher != nil {
		err = s.publisher.PublishLeadCreated(ctx, rabbitmq.LeadCreatedMessage{
			LeadID:    lead.ID,
			Name:      lead.Name,
			Phone:     lead.Phone,
			Email:     lead.Email,
			CreatedAt: lead.CreatedAt,
		})
		if err != nil {
			logger.Error("[CreateLead] error publisher.PublishLeadCreated", zap.String("lead_id", lead.ID), zap.String("error", err.Error()))
		}
	}
	return lead, nil
}

func (s *leadAppImpl) ListLeads(ctx context.Context, filter model.ListFilter) (*model.Page[model.Lead], error) {
	filter.Normalize()
	items, total, err := s.leadRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListLeads] error leadRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return model.NewPage(items, total, filter), nil
}

func (s *leadAppImpl) GetLead(ctx context.Context, id string) (*model.Lead, error) {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetLead] error leadRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if lead == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return lead, nil
}

func (s *leadAppImpl) UpdateLead(ctx context.Context, id string, req *model.UpdateLeadRequest) (*model.Lead, error) {
	lead, err := s.GetLead(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		lead.Name = req.Name
	}
	if req.Text != "" {
		lead.Text = req.Text
	}
	if req.Phone != "" {
		lead.Phone = req.Phone
	}
	if req.Email != "" {
		lead.Email = req.Email
	}
	if req.Status != "" {
		lead.Status = constant.LeadStatus(req.Status)
	}
	if req.IsActive != nil {
		lead.IsActive = *req.IsActive
	}

	if err := s.leadRepo.Update(ctx, lead); err != nil {
		logger.Error("[UpdateLead] error leadRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return lead, nil
}

func (s *leadAppImpl) UpdateLeadStatus(ctx context.Context, id, status string) (*model.Lead, error) {
	next := constant.LeadStatus(status)
	if !next.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	lead, err := s.GetLead(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.leadRepo.UpdateStatus(ctx, id, next); err != nil {
		logger.Error("[UpdateLeadStatus] error leadRepo.UpdateStatus", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	lead.Status = next
	return lead, nil
}

func (s *leadAppImpl) DeleteLead(ctx context.Context, id string) error {
	if _, err := s.GetLead(ctx, id); err != nil {
		return err
	}
	if err := s.leadRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteLead] error leadRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
