package notification

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/ShohjahonSohibov/Aberno/constant"
	"github.com/ShohjahonSohibov/Aberno/model"
	notificationrepo "github.com/ShohjahonSohibov/Aberno/repository/notification"
	"github.com/ShohjahonSohibov/Aberno/utils/errors"
	"github.com/ShohjahonSohibov/Aberno/utils/logger"
)

type NotificationApp interface {
	// CreateNotification stamps senderID as the sender; it may be empty for
	// system notifications.
	CreateNotification(ctx context.Context, senderID string, req *model.NotificationRequest) (*model.Notification, error)
	ListNotifications(ctx context.Context, filter model.ListFilter) (*model.Page[model.Notification], error)
	GetNotification(ctx context.Context, id string) (*model.Notification, error)
	UpdateNotification(ctx context.Context, id string, req *model.NotificationRequest) (*model.Notification, error)
	DeleteNotification(ctx context.Context, id string) error
}

type notificationAppImpl struct {
	notificationRepo notificationrepo.NotificationRepository
}

func NewNotificationApp(notificationRepo notificationrepo.NotificationRepository) NotificationApp {
	return &notificationAppImpl{notificationRepo: notificationRepo}
}

func (s *notificationAppImpl) CreateNotification(ctx context.Context, senderID string, req *model.NotificationRequest) (*model.Notification, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	result, err := s.notificationRepo.Create(ctx, &model.Notification{Message: req.Message, SenderID: senderID})
	if err != nil {
		logger.Error("[CreateNotification] error notificationRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return result, nil
}

func (s *notificationAppImpl) ListNotifications(ctx context.Context, filter model.ListFilter) (*model.Page[model.Notification], error) {
	filter.Normalize()
	items, total, err := s.notificationRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListNotifications] error notificationRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return model.NewPage(items, total, filter), nil
}

func (s *notificationAppImpl) GetNotification(ctx context.Context, id string) (*model.Notification, error) {
	result, err := s.notificationRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetNotification] error notificationRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if result == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return result, nil
}

func (s *notificationAppImpl) UpdateNotification(ctx context.Context, id string, req *model.NotificationRequest) (*model.Notification, error) {
	result, err := s.GetNotification(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Message != "" {
		result.Message = req.Message
	}

	if err := s.notificationRepo.Update(ctx, result); err != nil {
		logger.Error("[UpdateNotification] error notificationRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return result, nil
}

func (s *notificationAppImpl) DeleteNotification(ctx context.Context, id string) error {
	if _, err := s.GetNotification(ctx, id); err != nil {
		return err
	}
	if err := s.notificationRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteNotification] error notificationRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
