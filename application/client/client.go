package client

import (
	"context"

	"go.uber.org/zap"

	"github.com/ShohjahonSohibov/Aberno/constant"
	"github.com/ShohjahonSohibov/Aberno/model"
	clientrepo "github.com/ShohjahonSohibov/Aberno/repository/client"
	"github.com/ShohjahonSohibov/Aberno/utils/errors"
	"github.com/ShohjahonSohibov/Aberno/utils/logger"
)

type ClientApp interface {
	CreateClient(ctx context.Context, req *model.ClientRequest) (*model.Client, error)
	ListClients(ctx context.Context, filter model.ListFilter) (*model.Page[model.Client], error)
	GetClient(ctx context.Context, id string) (*model.Client, error)
	UpdateClient(ctx context.Context, id string, req *model.ClientRequest) (*model.Client, error)
	DeleteClient(ctx context.Context, id string) error
}

type clientAppImpl struct {
	clientRepo clientrepo.ClientRepository
}

func NewClientApp(clientRepo clientrepo.ClientRepository) ClientApp {
	return &clientAppImpl{clientRepo: clientRepo}
}

func (s *clientAppImpl) CreateClient(ctx context.Context, req *model.ClientRequest) (*model.Client, error) {
	data := &model.Client{Name: req.Name, Image: req.Image, BrandID: req.Brand, IsActive: true}
	if req.IsActive != nil {
		data.IsActive = *req.IsActive
	}

	result, err := s.clientRepo.Create(ctx, data)
	if err != nil {
		logger.Error("[CreateClient] error clientRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return result, nil
}

func (s *clientAppImpl) ListClients(ctx context.Context, filter model.ListFilter) (*model.Page[model.Client], error) {
	filter.Normalize()
	items, total, err := s.clientRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListClients] error clientRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return model.NewPage(items, total, filter), nil
}

func (s *clientAppImpl) GetClient(ctx context.Context, id string) (*model.Client, error) {
	result, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetClient] error clientRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if result == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return result, nil
}

func (s *clientAppImpl) UpdateClient(ctx context.Context, id string, req *model.ClientRequest) (*model.Client, error) {
	result, err := s.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}

	result.Name = result.Name.Merge(req.Name)
	if req.Image != "" {
		result.Image = req.Image
	}
	if req.Brand != "" {
		result.BrandID = req.Brand
	}
	if req.IsActive != nil {
		result.IsActive = *req.IsActive
	}

	if err := s.clientRepo.Update(ctx, result); err != nil {
		logger.Error("[UpdateClient] error clientRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return s.GetClient(ctx, id)
}

func (s *clientAppImpl) DeleteClient(ctx context.Context, id string) error {
	if _, err := s.GetClient(ctx, id); err != nil {
		return err
	}
	if err := s.clientRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteClient] error clientRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
