package auth

import (
	"context"
	"crypto/subtle"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/ShohjahonSohibov/Aberno/application/token"
	"github.com/ShohjahonSohibov/Aberno/cmd/config"
	"github.com/ShohjahonSohibov/Aberno/constant"
	"github.com/ShohjahonSohibov/Aberno/model"
	adminrepo "github.com/ShohjahonSohibov/Aberno/repository/admin"
	redisrepo "github.com/ShohjahonSohibov/Aberno/repository/redis"
	userrepo "github.com/ShohjahonSohibov/Aberno/repository/user"
	utilsContext "github.com/ShohjahonSohibov/Aberno/utils/context"
	"github.com/ShohjahonSohibov/Aberno/utils/errors"
	"github.com/ShohjahonSohibov/Aberno/utils/logger"
	"github.com/ShohjahonSohibov/Aberno/utils/password"
)

type AuthApp interface {
	RegisterUser(ctx context.Context, req *model.RegisterRequest) (*model.TokenResponse, error)
	LoginUser(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error)
	LoginAdmin(ctx context.Context, req *model.AdminLoginRequest) (*model.TokenResponse, error)
	RefreshToken(ctx context.Context, req *model.RefreshTokenRequest) (*model.TokenResponse, error)
	// Authenticate resolves a bearer token to its subject and role.
	Authenticate(ctx context.Context, accessToken string) (string, constant.Role, error)
	// RequireAdmin passes only when subjectID names an admin credential.
	RequireAdmin(ctx context.Context, subjectID string) error
}

type AuthAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	adminRepo adminrepo.AdminRepository
	redisRepo redisrepo.Repository
	tokens    token.Service
	hasher    password.Hasher
	now       func() time.Time
}

func NewAuthApp(config *config.Config, userRepo userrepo.UserRepository, adminRepo adminrepo.AdminRepository,
	redisRepo redisrepo.Repository, tokens token.Service, hasher password.Hasher) AuthApp {
	return &AuthAppImpl{
		config:    config,
		userRepo:  userRepo,
		adminRepo: adminRepo,
		redisRepo: redisRepo,
		tokens:    tokens,
		hasher:    hasher,
		now:       time.Now,
	}
}

func (s *AuthAppImpl) RegisterUser(ctx context.Context, req *model.RegisterRequest) (*model.TokenResponse, error) {
	if req.Email != "" {
		existing, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
		if err != nil {
			logger.Error("[RegisterUser] err userRepo.Get email", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if existing != nil {
			return nil, errors.SetCustomError(constant.ErrUserExists)
		}
	}

	if req.Phone != "" {
		existing, err := s.userRepo.Get(ctx, &model.UserFilter{Phone: req.Phone})
		if err != nil {
			logger.Error("[RegisterUser] err userRepo.Get phone", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if existing != nil {
			return nil, errors.SetCustomError(constant.ErrUserExists)
		}
	}

	hash, err := s.hasher.Hash(req.Password)
	if password.IsTooLong(err) {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err != nil {
		logger.Error("[RegisterUser] err hasher.Hash", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	user, err := s.userRepo.Create(ctx, &model.UserEntity{
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
	})
	if err != nil {
		logger.Error("[RegisterUser] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	accessToken, err := s.tokens.IssueAccess(user.ID, constant.RoleUser)
	if err != nil {
		logger.Error("[RegisterUser] err tokens.IssueAccess", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.TokenResponse{Token: accessToken}, nil
}

func (s *AuthAppImpl) LoginUser(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error) {
	filter := &model.UserFilter{Phone: req.Phone}
	identifier := req.Phone
	if req.Email != "" {
		filter = &model.UserFilter{Email: req.Email}
		identifier = req.Email
	}
	attemptKey := loginAttemptKey(ctx, "user", identifier)

	if s.locked(ctx, attemptKey) {
		return nil, errors.SetCustomError(constant.ErrTooManyAttempts)
	}

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		logger.Error("[LoginUser] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil || !s.hasher.Verify(req.Password, user.PasswordHash) {
		s.recordFailure(ctx, attemptKey)
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}
	s.clearFailures(ctx, attemptKey)

	accessToken, err := s.tokens.IssueAccess(user.ID, constant.RoleUser)
	if err != nil {
		logger.Error("[LoginUser] err tokens.IssueAccess", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.TokenResponse{Token: accessToken}, nil
}

func (s *AuthAppImpl) LoginAdmin(ctx context.Context, req *model.AdminLoginRequest) (*model.TokenResponse, error) {
	attemptKey := loginAttemptKey(ctx, "admin", req.Username)
	if s.locked(ctx, attemptKey) {
		return nil, errors.SetCustomError(constant.ErrTooManyAttempts)
	}

	admin, err := s.adminRepo.Get(ctx, &model.AdminFilter{Username: req.Username})
	if err != nil {
		logger.Error("[LoginAdmin] err adminRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if admin == nil || !s.hasher.Verify(req.Password, admin.PasswordHash) {
		s.recordFailure(ctx, attemptKey)
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}
	s.clearFailures(ctx, attemptKey)

	accessToken, err := s.tokens.IssueAccess(admin.ID, constant.RoleAdmin)
	if err != nil {
		logger.Error("[LoginAdmin] err tokens.IssueAccess", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	refreshToken, err := s.tokens.IssueRefresh(admin.ID)
	if err != nil {
		logger.Error("[LoginAdmin] err tokens.IssueRefresh", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// only the latest refresh token stays valid
	if err := s.adminRepo.UpdateRefreshToken(ctx, admin.ID, refreshToken, s.now().UTC()); err != nil {
		logger.Error("[LoginAdmin] err adminRepo.UpdateRefreshToken", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.TokenResponse{Token: accessToken, RefreshToken: refreshToken}, nil
}

func (s *AuthAppImpl) RefreshToken(ctx context.Context, req *model.RefreshTokenRequest) (*model.TokenResponse, error) {
	claims, err := s.tokens.VerifyRefresh(req.RefreshToken)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRefreshToken)
	}

	admin, err := s.adminRepo.Get(ctx, &model.AdminFilter{ID: claims.Subject})
	if err != nil {
		logger.Error("[RefreshToken] err adminRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if admin == nil || subtle.ConstantTimeCompare([]byte(admin.RefreshToken), []byte(req.RefreshToken)) != 1 {
		return nil, errors.SetCustomError(constant.ErrInvalidRefreshToken)
	}

	accessToken, err := s.tokens.IssueAccess(admin.ID, constant.RoleAdmin)
	if err != nil {
		logger.Error("[RefreshToken] err tokens.IssueAccess", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.TokenResponse{Token: accessToken}, nil
}

func (s *AuthAppImpl) Authenticate(ctx context.Context, accessToken string) (string, constant.Role, error) {
	claims, err := s.tokens.Verify(accessToken)
	if err != nil {
		return "", "", errors.SetCustomError(constant.ErrUnauthorize)
	}
	role := claims.Role
	if role == "" {
		role = constant.RoleUser
	}
	return claims.Subject, role, nil
}

func (s *AuthAppImpl) RequireAdmin(ctx context.Context, subjectID string) error {
	if subjectID == "" {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}

	admin, err := s.adminRepo.Get(ctx, &model.AdminFilter{ID: subjectID})
	if err != nil {
		logger.Error("[RequireAdmin] err adminRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if admin == nil {
		return errors.SetCustomError(constant.ErrAdminNotFound)
	}
	if admin.Type != constant.RoleAdmin {
		return errors.SetCustomError(constant.ErrForbidden)
	}
	return nil
}

// loginAttemptKey scopes the failure counter to one identifier from one client address.
func loginAttemptKey(ctx context.Context, kind, identifier string) string {
	key := "login_attempts:" + kind + ":" + identifier
	if ip := utilsContext.GetClientIP(ctx); ip != "" {
		key += ":" + ip
	}
	return key
}

// locked reports whether key has used up its login attempts. Redis failures
// never block a login.
func (s *AuthAppImpl) locked(ctx context.Context, key string) bool {
	if s.config.Auth.LoginMaxAttempts <= 0 {
		return false
	}
	val, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		logger.Warn("[locked] err redisRepo.Get", zap.String("error", err.Error()))
		return false
	}
	if val == "" {
		return false
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return false
	}
	return n >= s.config.Auth.LoginMaxAttempts
}

func (s *AuthAppImpl) recordFailure(ctx context.Context, key string) {
	if s.config.Auth.LoginMaxAttempts <= 0 {
		return
	}
	if _, err := s.redisRepo.Incr(ctx, key, s.config.Auth.LoginLockout); err != nil {
		logger.Warn("[recordFailure] err redisRepo.Incr", zap.String("error", err.Error()))
	}
}

func (s *AuthAppImpl) clearFailures(ctx context.Context, key string) {
	if s.config.Auth.LoginMaxAttempts <= 0 {
		return
	}
	if err := s.redisRepo.Delete(ctx, key); err != nil {
		logger.Warn("[clearFailures] err redisRepo.Delete", zap.String("error", err.Error()))
	}
}
