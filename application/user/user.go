package user

import (
	"context"

	"go.uber.org/zap"

	"github.com/ShohjahonSohibov/Aberno/constant"
	"github.com/ShohjahonSohibov/Aberno/model"
	adminrepo "github.com/ShohjahonSohibov/Aberno/repository/admin"
	userrepo "github.com/ShohjahonSohibov/Aberno/repository/user"
	"github.com/ShohjahonSohibov/Aberno/utils/errors"
	"github.com/ShohjahonSohibov/Aberno/utils/logger"
	"github.com/ShohjahonSohibov/Aberno/utils/password"
)

type UserApp interface {
	GetUser(ctx context.Context, id string) (*model.UserEntity, error)
	// UpdateUser and DeleteUser act only on the caller's own record.
	UpdateUser(ctx context.Context, callerID, id string, req *model.UpdateUserRequest) (*model.UserEntity, error)
	DeleteUser(ctx context.Context, callerID, id string) error

	CreateAdmin(ctx context.Context, req *model.CreateAdminRequest) (*model.AdminEntity, error)
	GetAdmin(ctx context.Context, id string) (*model.AdminEntity, error)
	UpdateAdmin(ctx context.Context, callerID, id string, req *model.UpdateAdminRequest) (*model.AdminEntity, error)
	DeleteAdmin(ctx context.Context, callerID, id string) error
	// EnsureAdmin creates the bootstrap admin when username is free.
	EnsureAdmin(ctx context.Context, username, plain string) error
}

type UserAppImpl struct {
	userRepo  userrepo.UserRepository
	adminRepo adminrepo.AdminRepository
	hasher    password.Hasher
}

func NewUserApp(userRepo userrepo.UserRepository, adminRepo adminrepo.AdminRepository, hasher password.Hasher) UserApp {
	return &UserAppImpl{
		userRepo:  userRepo,
		adminRepo: adminRepo,
		hasher:    hasher,
	}
}

func (s *UserAppImpl) GetUser(ctx context.Context, id string) (*model.UserEntity, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: id})
	if err != nil {
		logger.Error("[GetUser] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return user, nil
}

func (s *UserAppImpl) UpdateUser(ctx context.Context, callerID, id string, req *model.UpdateUserRequest) (*model.UserEntity, error) {
	if callerID != id {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != "" && req.Email != user.Email {
		if err := s.userTaken(ctx, &model.UserFilter{Email: req.Email}, id); err != nil {
			return nil, err
		}
		user.Email = req.Email
	}
	if req.Phone != "" && req.Phone != user.Phone {
		if err := s.userTaken(ctx, &model.UserFilter{Phone: req.Phone}, id); err != nil {
			return nil, err
		}
		user.Phone = req.Phone
	}
	if req.Fullname != "" {
		user.Fullname = req.Fullname
	}
	if req.Password != "" {
		hash, err := s.hasher.Hash(req.Password)
		if password.IsTooLong(err) {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		if err != nil {
			logger.Error("[UpdateUser] err hasher.Hash", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		logger.Error("[UpdateUser] err userRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return user, nil
}

func (s *UserAppImpl) DeleteUser(ctx context.Context, callerID, id string) error {
	if callerID != id {
		return errors.SetCustomError(constant.ErrForbidden)
	}
	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteUser] err userRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *UserAppImpl) CreateAdmin(ctx context.Context, req *model.CreateAdminRequest) (*model.AdminEntity, error) {
	if err := s.adminTaken(ctx, &model.AdminFilter{Username: req.Username}, ""); err != nil {
		return nil, err
	}
	if err := s.adminTaken(ctx, &model.AdminFilter{Phone: req.Phone}, ""); err != nil {
		return nil, err
	}
	if req.Email != "" {
		if err := s.adminTaken(ctx, &model.AdminFilter{Email: req.Email}, ""); err != nil {
			return nil, err
		}
	}

	hash, err := s.hasher.Hash(req.Password)
	if password.IsTooLong(err) {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err != nil {
		logger.Error("[CreateAdmin] err hasher.Hash", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	admin, err := s.adminRepo.Create(ctx, &model.AdminEntity{
		Username:       req.Username,
		Fullname:       req.Fullname,
		Phone:          req.Phone,
		Email:          req.Email,
		PasswordHash:   hash,
		ProfilePicture: req.ProfilePicture,
		Bio:            req.Bio,
		Type:           constant.RoleAdmin,
	})
	if err != nil {
		logger.Error("[CreateAdmin] err adminRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return admin, nil
}

func (s *UserAppImpl) GetAdmin(ctx context.Context, id string) (*model.AdminEntity, error) {
	admin, err := s.adminRepo.Get(ctx, &model.AdminFilter{ID: id})
	if err != nil {
		logger.Error("[GetAdmin] err adminRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if admin == nil {
		return nil, errors.SetCustomError(constant.ErrAdminNotFound)
	}
	return admin, nil
}

func (s *UserAppImpl) UpdateAdmin(ctx context.Context, callerID, id string, req *model.UpdateAdminRequest) (*model.AdminEntity, error) {
	if callerID != id {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	admin, err := s.GetAdmin(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != "" && req.Username != admin.Username {
		if err := s.adminTaken(ctx, &model.AdminFilter{Username: req.Username}, id); err != nil {
			return nil, err
		}
		admin.Username = req.Username
	}
	if req.Phone != "" && req.Phone != admin.Phone {
		if err := s.adminTaken(ctx, &model.AdminFilter{Phone: req.Phone}, id); err != nil {
			return nil, err
		}
		admin.Phone = req.Phone
	}
	if req.Email != "" && req.Email != admin.Email {
		if err := s.adminTaken(ctx, &model.AdminFilter{Email: req.Email}, id); err != nil {
			return nil, err
		}
		admin.Email = req.Email
	}
	if req.Fullname != "" {
		admin.Fullname = req.Fullname
	}
	if req.Bio != "" {
		admin.Bio = req.Bio
	}
	if req.ProfilePicture != "" {
		admin.ProfilePicture = req.ProfilePicture
	}
	if req.Password != "" {
		hash, err := s.hasher.Hash(req.Password)
		if password.IsTooLong(err) {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		if err != nil {
			logger.Error("[UpdateAdmin] err hasher.Hash", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		admin.PasswordHash = hash
	}

	if err := s.adminRepo.Update(ctx, admin); err != nil {
		logger.Error("[UpdateAdmin] err adminRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return admin, nil
}

func (s *UserAppImpl) DeleteAdmin(ctx context.Context, callerID, id string) error {
	if callerID != id {
		return errors.SetCustomError(constant.ErrForbidden)
	}
	if _, err := s.GetAdmin(ctx, id); err != nil {
		return err
	}
	// the stored refresh token goes with the row
	if err := s.adminRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteAdmin] err adminRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *UserAppImpl) EnsureAdmin(ctx context.Context, username, plain string) error {
	if username == "" || plain == "" {
		return nil
	}

	existing, err := s.adminRepo.Get(ctx, &model.AdminFilter{Username: username})
	if err != nil {
		logger.Error("[EnsureAdmin] err adminRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil
	}

	hash, err := s.hasher.Hash(plain)
	if password.IsTooLong(err) {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err != nil {
		logger.Error("[EnsureAdmin] err hasher.Hash", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if _, err := s.adminRepo.Create(ctx, &model.AdminEntity{
		Username:     username,
		Fullname:     username,
		PasswordHash: hash,
		Type:         constant.RoleAdmin,
	}); err != nil {
		logger.Error("[EnsureAdmin] err adminRepo.Create", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	logger.Info("bootstrap admin created", zap.String("username", username))
	return nil
}

func (s *UserAppImpl) userTaken(ctx context.Context, filter *model.UserFilter, selfID string) error {
	other, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		logger.Error("[userTaken] err userRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if other != nil && other.ID != selfID {
		return errors.SetCustomError(constant.ErrUserExists)
	}
	return nil
}

func (s *UserAppImpl) adminTaken(ctx context.Context, filter *model.AdminFilter, selfID string) error {
	other, err := s.adminRepo.Get(ctx, filter)
	if err != nil {
		logger.Error("[adminTaken] err adminRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if other != nil && other.ID != selfID {
		return errors.SetCustomError(constant.ErrAdminExists)
	}
	return nil
}
